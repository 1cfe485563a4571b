package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFormatSize tests the FormatSize function.
func TestFormatSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		size     int64
		expected string
	}{
		{
			name:     "zero is unknown",
			size:     0,
			expected: UnknownSize,
		},
		{
			name:     "negative is unknown",
			size:     -5,
			expected: UnknownSize,
		},
		{
			name:     "single byte",
			size:     1,
			expected: "1 B",
		},
		{
			name:     "bytes",
			size:     512,
			expected: "512 B",
		},
		{
			name:     "just below a kilobyte",
			size:     1023,
			expected: "1023 B",
		},
		{
			name:     "exactly a kilobyte",
			size:     1024,
			expected: "1.00 KB",
		},
		{
			name:     "kilobytes",
			size:     2048,
			expected: "2.00 KB",
		},
		{
			name:     "fractional kilobytes",
			size:     1536,
			expected: "1.50 KB",
		},
		{
			name:     "just below a megabyte",
			size:     1024*1024 - 1,
			expected: "1024.00 KB",
		},
		{
			name:     "megabytes",
			size:     5 * 1024 * 1024,
			expected: "5.00 MB",
		},
		{
			name:     "gigabytes stay in megabytes",
			size:     3 * 1024 * 1024 * 1024,
			expected: "3072.00 MB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatSize(tt.size))
		})
	}
}
