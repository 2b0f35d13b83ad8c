package ercx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is returned for any response outside 200/201. Message carries the
// server's error text when one was sent.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("ercx: request failed with status %d", e.StatusCode)
	}

	return fmt.Sprintf("ercx: request failed with status %d: %s", e.StatusCode, e.Message)
}

func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func newError(statusCode int, body []byte) *Error {
	// Error payloads are usually {"message": "..."}; fall back to raw text.
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	message := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			message = payload.Message
		} else {
			message = payload.Error
		}
	}
	if message == "" {
		message = strings.TrimSpace(string(body))
	}

	return &Error{StatusCode: statusCode, Message: message}
}
