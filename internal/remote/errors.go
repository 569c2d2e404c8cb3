// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package remote

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tourguide/internal/models"
)

// maxErrorBodySize limits how much of an error response is read.
const maxErrorBodySize = 64 * 1024 // 64KB

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Endpoint string
	Status   int
	// Message is the server's "message" field or "HTTP error! status: N".
	Message string
	// FromServer is true when Message came from the response body.
	FromServer bool
}

func (e *StatusError) Error() string {
	return e.Message
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}

// ServerMessage returns the message the server sent with a failed
// response, or "" when there was none.
func ServerMessage(err error) string {
	var se *StatusError
	if errors.As(err, &se) && se.FromServer {
		return se.Message
	}
	return ""
}

// IsClientError reports whether err is a 4xx response.
func IsClientError(err error) bool {
	code := StatusCode(err)
	return code >= 400 && code < 500
}

// readBodyForError reads at most maxErrorBodySize bytes of r.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return nil
	}
	return body
}

// newStatusError builds a StatusError from a failed response.
func newStatusError(endpoint string, resp *http.Response) *StatusError {
	se := &StatusError{
		Endpoint: endpoint,
		Status:   resp.StatusCode,
		Message:  fmt.Sprintf("HTTP error! status: %d", resp.StatusCode),
	}
	var body models.ErrorResponse
	if err := json.Unmarshal(readBodyForError(resp.Body), &body); err == nil && body.Message != "" {
		se.Message = body.Message
		se.FromServer = true
	}
	return se
}
