// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// emailPattern accepts anything shaped like local@domain.tld without whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError is a single field failure.
type ValidationError struct {
	field   string
	tag     string
	param   string
	message string
}

// Field returns the struct field name that failed validation.
func (e *ValidationError) Field() string { return e.field }

// Tag returns the validation tag that failed.
func (e *ValidationError) Tag() string { return e.tag }

// Param returns the tag parameter (e.g. "5" for "max=5").
func (e *ValidationError) Param() string { return e.param }

// Error returns the user-facing message.
func (e *ValidationError) Error() string { return e.message }

// RequestValidationError collects the failures of one ValidateStruct call.
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the failures in struct-field order.
func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

// First returns the first failure, or nil when there is none.
func (ve *RequestValidationError) First() *ValidationError {
	if len(ve.errors) == 0 {
		return nil
	}
	return &ve.errors[0]
}

// Messages returns every failure message.
func (ve *RequestValidationError) Messages() []string {
	out := make([]string, 0, len(ve.errors))
	for i := range ve.errors {
		out = append(out, ve.errors[i].message)
	}
	return out
}

// Error joins all messages.
func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}
	return strings.Join(ve.Messages(), "; ")
}

// GetValidator returns the singleton validator with the custom tags registered.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		mustRegister(v, "emailaddr", func(fl validator.FieldLevel) bool {
			return ValidEmail(fl.Field().String())
		})
		mustRegister(v, "strongpassword", func(fl validator.FieldLevel) bool {
			return ValidatePassword(fl.Field().String()) == ""
		})
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidateStruct validates s (a struct or pointer to struct).
// Returns nil when every rule passes.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &RequestValidationError{errors: []ValidationError{{
			field:   "unknown",
			tag:     "unknown",
			message: err.Error(),
		}}}
	}

	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	out := make([]ValidationError, len(fieldErrs))
	for i, fe := range fieldErrs {
		out[i] = ValidationError{
			field:   fe.Field(),
			tag:     fe.Tag(),
			param:   fe.Param(),
			message: translateError(t, fe),
		}
	}
	return &RequestValidationError{errors: out}
}

// translateError prefers the field's msg tag, then the password policy
// message, then a generic template.
func translateError(t reflect.Type, fe validator.FieldError) string {
	if t.Kind() == reflect.Struct {
		if sf, ok := t.FieldByName(fe.StructField()); ok {
			if msg := lookupMessage(sf.Tag.Get("msg"), fe.Tag()); msg != "" {
				return msg
			}
		}
	}

	if fe.Tag() == "strongpassword" {
		if s, ok := fe.Value().(string); ok {
			if msg := ValidatePassword(s); msg != "" {
				return msg
			}
		}
	}

	return defaultMessage(fe)
}

// lookupMessage parses "tag:message|tag2:message2". An entry without a tag
// prefix applies to every tag.
func lookupMessage(spec, tag string) string {
	if spec == "" {
		return ""
	}
	fallback := ""
	for _, part := range strings.Split(spec, "|") {
		name, msg, found := strings.Cut(part, ":")
		if !found {
			fallback = part
			continue
		}
		if name == tag {
			return msg
		}
	}
	return fallback
}

var errorMessageTemplates = map[string]string{
	"required":  "%s is required",
	"notblank":  "%s is required",
	"emailaddr": "%s must be a valid email address",
	"email":     "%s must be a valid email address",
}

var errorMessageWithParam = map[string]string{
	"oneof":   "%s must be one of: %s",
	"eqfield": "%s must match %s",
	"gte":     "%s must be greater than or equal to %s",
	"lte":     "%s must be less than or equal to %s",
}

func defaultMessage(fe validator.FieldError) string {
	field, tag, param := fe.Field(), fe.Tag(), fe.Param()

	if tmpl, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(tmpl, field)
	}
	if tmpl, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(tmpl, field, param)
	}

	isString := fe.Kind() == reflect.String
	switch tag {
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s items", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
