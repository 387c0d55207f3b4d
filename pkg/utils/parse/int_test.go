package parse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt64(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"42", 42},
		{" 7 ", 7},
		{"-3", -3},
		{"42.0", 42},
		{"4.2e1", 42},
		{"1e30", math.MaxInt64},
		{"-1e30", math.MinInt64},
		{"9223372036854775807", math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n, err := Int64(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}
}

func TestInt64_Rejects(t *testing.T) {
	for _, input := range []string{"", "lots", "4.2", "4.2e", "NaN", "Inf", "1,000"} {
		t.Run(input, func(t *testing.T) {
			_, err := Int64(input)
			assert.Error(t, err)
		})
	}
}
