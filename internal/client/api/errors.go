package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/iudanet/storefront/pkg/api"
)

// ErrNoRefreshToken indicates that a 401 could not be recovered because no refresh token is stored
var ErrNoRefreshToken = errors.New("no refresh token stored")

// NetworkError reports that the server could not be reached or the call timed out
type NetworkError struct {
	Err    error
	Method string
	Path   string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request %s %s failed: %v", e.Method, e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// AuthExpiredError means the session cannot be continued: either there was no
// refresh token or the refresh call failed. The caller has to log in again.
type AuthExpiredError struct {
	Err error
}

func (e *AuthExpiredError) Error() string {
	return fmt.Sprintf("session expired: %v", e.Err)
}

func (e *AuthExpiredError) Unwrap() error {
	return e.Err
}

// ValidationError is a 4xx answer. Fields carries per-field messages when the server sent them.
type ValidationError struct {
	Fields     map[string][]string
	Message    string
	StatusCode int
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	if len(e.Fields) > 0 {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, formatFields(e.Fields))
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// ServerError is a 5xx answer
type ServerError struct {
	Message    string
	StatusCode int
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// IsUnauthorized reports whether err is a 401 answer that was not recovered by a refresh
func IsUnauthorized(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr) && validationErr.StatusCode == http.StatusUnauthorized
}

// IsAuthExpired reports whether the session ended and the user has to log in again
func IsAuthExpired(err error) bool {
	var authErr *AuthExpiredError
	return errors.As(err, &authErr)
}

// newStatusError classifies a non-2xx response
func newStatusError(resp *Response) error {
	message, fields := parseErrorBody(resp.Body)

	if resp.StatusCode >= http.StatusInternalServerError {
		if message == "" && len(fields) > 0 {
			message = formatFields(fields)
		}
		return &ServerError{StatusCode: resp.StatusCode, Message: message}
	}

	return &ValidationError{
		StatusCode: resp.StatusCode,
		Message:    message,
		Fields:     fields,
	}
}

// maxErrorText ограничивает длину текста не-JSON ошибки в символах
const maxErrorText = 200

// parseErrorBody understands {"detail": ...}, {"message": ...}, {"error": ...}
// and DRF field errors {"field": ["msg", ...]}. Non-JSON bodies become the message.
func parseErrorBody(body []byte) (string, map[string][]string) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return "", nil
	}

	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		// Не JSON или не объект: отдаём как есть, обрезав HTML-простыни
		if runes := []rune(trimmed); len(runes) > maxErrorText {
			trimmed = string(runes[:maxErrorText]) + "..."
		}
		return trimmed, nil
	}

	message := errResp.Detail
	if message == "" {
		message = errResp.Message
	}
	if message == "" {
		message = errResp.Error
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return message, nil
	}

	fields := make(map[string][]string)
	for name, value := range raw {
		switch name {
		case "detail", "message", "error", "code":
			continue
		}

		var list []string
		if err := json.Unmarshal(value, &list); err == nil {
			fields[name] = list
			continue
		}
		var single string
		if err := json.Unmarshal(value, &single); err == nil {
			fields[name] = []string{single}
		}
	}

	if nonField, ok := fields["non_field_errors"]; ok && message == "" {
		message = strings.Join(nonField, "; ")
		delete(fields, "non_field_errors")
	}
	if len(fields) == 0 {
		fields = nil
	}

	return message, fields
}

func formatFields(fields map[string][]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(fields[name], ", ")))
	}
	return strings.Join(parts, "; ")
}
