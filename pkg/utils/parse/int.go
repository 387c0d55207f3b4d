// ABOUTME: Utility functions for parsing integers from strings
// ABOUTME: Accepts integral floats such as "42.0" and saturates at the int64 range

package parse

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Int64 parses a whole number. Plain integers and floats without a fractional
// part ("42", "4.2e1") are accepted; values beyond int64 saturate.
func Int64(s string) (int64, error) {
	s = strings.TrimSpace(s)

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("not a whole number: %q", s)
	}

	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64, nil
	case f <= math.MinInt64:
		return math.MinInt64, nil
	}
	return int64(f), nil
}
