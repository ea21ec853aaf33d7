package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDuration is returned for interval strings ParseDuration rejects.
var ErrInvalidDuration = errors.New("invalid duration format (use '1s' or '500ms')")

// ParseDuration parses a poll interval: a non-negative integer followed by
// "ms" or "s". Surrounding whitespace around the number is ignored.
func ParseDuration(s string) (time.Duration, error) {
	// "ms" must be tried first: "500ms" also ends in "s".
	if n, ok := strings.CutSuffix(s, "ms"); ok {
		return scaled(s, n, time.Millisecond)
	}
	if n, ok := strings.CutSuffix(s, "s"); ok {
		return scaled(s, n, time.Second)
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
}

func scaled(orig, num string, unit time.Duration) (time.Duration, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(num), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, orig)
	}
	if n > uint64(math.MaxInt64/int64(unit)) {
		return 0, fmt.Errorf("%w: %q overflows", ErrInvalidDuration, orig)
	}
	return time.Duration(n) * unit, nil
}
