package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/weatherdesk/internal/common"
)

// APIError describes a failed upstream call. Kind is one of the common
// sentinels; Err, when set, is the underlying transport or decode error.
type APIError struct {
	Op         string
	StatusCode int
	// Message is the human-readable reason returned by the upstream, if any.
	Message string
	Kind    error
	Err     error
}

func (e *APIError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %v (%d): %s", e.Op, e.Kind, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("%s: %v (%d)", e.Op, e.Kind, e.StatusCode)
	}
}

func (e *APIError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// UpstreamMessage returns the message carried by an *APIError in err's chain.
func UpstreamMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// Status classifiers, one per endpoint. They return nil for success.

func loginStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusBadRequest, code == http.StatusUnauthorized:
		return common.ErrInvalidCredentials
	default:
		return common.ErrUnavailable
	}
}

func signupStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusBadRequest, code == http.StatusUnprocessableEntity:
		return common.ErrValidation
	default:
		return common.ErrUnavailable
	}
}

func usersStatus(code int) error {
	if code >= 200 && code < 300 {
		return nil
	}
	return common.ErrUnavailable
}

func weatherStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return common.ErrNotFound
	default:
		return common.ErrUnavailable
	}
}

// messageOf pulls {"message": "..."} out of an error body. Both upstreams
// use that key.
func messageOf(body []byte) string {
	var m struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &m); err != nil {
		return ""
	}
	return m.Message
}

// outcome is the metrics label for a finished call.
func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, common.ErrNotFound):
		return "not_found"
	case errors.Is(err, common.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, common.ErrValidation):
		return "rejected"
	default:
		return "unavailable"
	}
}
