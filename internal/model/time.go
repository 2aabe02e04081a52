package model

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// apiTimeLayouts covers RFC 3339 and the backend's zone-less UTC timestamps
// (utcnow() serialized without an offset suffix)
var apiTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// APITime is a time.Time that also decodes the backend's naive UTC timestamps
type APITime struct {
	time.Time
}

// UnmarshalJSON parses RFC 3339 or zone-less timestamps; null clears the value
func (t *APITime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", data, err)
	}

	var lastErr error
	for _, layout := range apiTimeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("invalid timestamp %q: %w", s, lastErr)
}
