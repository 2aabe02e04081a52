package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNotFound reports that the requested record does not exist
var ErrNotFound = errors.New("record not found")

// StatusError carries a non-2xx backend response that is not a plain 404
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// decodeDetail extracts the backend's {"detail": "..."} error message
func decodeDetail(r io.Reader) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return ""
	}
	return payload.Detail
}
