package solana

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimestamp indicates a string that is not a valid RFC 3339
// timestamp.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// ParseTimestamp parses a strict RFC 3339 timestamp into Unix epoch seconds.
// Any deviation (missing time, missing zone, malformed date) is an error.
func ParseTimestamp(s string) (int64, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidTimestamp, s, err)
	}
	return t.Unix(), nil
}
