// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// SpecialCharacters is the set a signup password must draw at least one
// character from.
const SpecialCharacters = `!@#$%^&*(),.?":{}|<>`

// PasswordPolicy defines the requirements for account passwords.
type PasswordPolicy struct {
	MinLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigit     bool
	RequireSpecial   bool
}

// SignupPasswordPolicy is the policy enforced on registration.
func SignupPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigit:     true,
		RequireSpecial:   true,
	}
}

type charClasses struct {
	hasUpper   bool
	hasLower   bool
	hasDigit   bool
	hasSpecial bool
}

func analyzeCharClasses(password string) charClasses {
	var cc charClasses
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			cc.hasUpper = true
		case r >= 'a' && r <= 'z':
			cc.hasLower = true
		case r >= '0' && r <= '9':
			cc.hasDigit = true
		case strings.ContainsRune(SpecialCharacters, r):
			cc.hasSpecial = true
		}
	}
	return cc
}

// Check returns the first unmet requirement, or "" when password passes.
// Requirements are checked in a fixed order: length, upper, lower, digit,
// special. Length counts characters, not bytes.
func (p PasswordPolicy) Check(password string) string {
	if utf8.RuneCountInString(password) < p.MinLength {
		return fmt.Sprintf("Password must be at least %d characters long", p.MinLength)
	}

	cc := analyzeCharClasses(password)
	switch {
	case p.RequireUppercase && !cc.hasUpper:
		return "Password must contain at least one uppercase letter"
	case p.RequireLowercase && !cc.hasLower:
		return "Password must contain at least one lowercase letter"
	case p.RequireDigit && !cc.hasDigit:
		return "Password must contain at least one number"
	case p.RequireSpecial && !cc.hasSpecial:
		return "Password must contain at least one special character"
	}
	return ""
}

// ValidatePassword checks password against SignupPasswordPolicy.
func ValidatePassword(password string) string {
	return SignupPasswordPolicy().Check(password)
}
