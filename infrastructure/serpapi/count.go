package serpapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"email-shield-api/pkg/utils/parse"
)

// parseTotalResults coerces the provider's total_results value to a count.
// Absent or null values count as zero. Integers, integral floats and numeric
// strings are accepted; anything else is an error.
func parseTotalResults(raw json.RawMessage) (int64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, nil
	}

	var text string
	switch raw[0] {
	case '"':
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, fmt.Errorf("invalid total_results: %w", err)
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		text = string(raw)
	default:
		return 0, fmt.Errorf("invalid total_results: %s", raw)
	}

	n, err := parse.Int64(text)
	if err != nil {
		return 0, fmt.Errorf("invalid total_results: %w", err)
	}
	return clamp(n), nil
}

func clamp(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
