// Package errors classifies failed backend responses.
package errors

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// DefaultMessage is used when neither the body nor the status line explain
// the failure.
const DefaultMessage = "Request failed"

// RequestError is a non-2xx backend response.
type RequestError struct {
	StatusCode int
	Message    string
	// Body is the raw response body, kept for logging.
	Body string
}

func (e *RequestError) Error() string {
	return e.Message
}

// ParseRequestError builds a RequestError from resp. The message is the body's
// "error" field, else its "message" field, else the status text, else
// DefaultMessage. A body that is not JSON is tolerated. It returns nil only
// for 2xx responses; an unfollowed redirect is an error. The body is consumed
// but not closed.
func ParseRequestError(resp *http.Response) error {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	body, _ := io.ReadAll(resp.Body)
	return &RequestError{
		StatusCode: resp.StatusCode,
		Message:    messageFor(resp.StatusCode, body),
		Body:       string(body),
	}
}

func messageFor(status int, body []byte) string {
	var payload struct {
		Error   any `json:"error"`
		Message any `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		if s := asText(payload.Error); s != "" {
			return s
		}
		if s := asText(payload.Message); s != "" {
			return s
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return DefaultMessage
}

// asText accepts strings and, for APIs that nest errors, {"message": "..."}.
func asText(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		s, _ := val["message"].(string)
		return s
	default:
		return ""
	}
}

// AsRequestError unwraps err to a *RequestError.
func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}

// StatusCode returns the backend status carried by err, or 0.
func StatusCode(err error) int {
	if reqErr, ok := AsRequestError(err); ok {
		return reqErr.StatusCode
	}
	return 0
}
