package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytes(t *testing.T) {
	type test struct {
		name     string
		bytes    uint64
		expected string
	}

	tests := []*test{
		{
			name:     "Zero",
			bytes:    0,
			expected: "0B",
		},
		{
			name:     "Bytes",
			bytes:    1023,
			expected: "1023B",
		},
		{
			name:     "Kibibytes",
			bytes:    1024,
			expected: "1.00KiB",
		},
		{
			name:     "Mebibytes",
			bytes:    5 * 1024 * 1024,
			expected: "5.00MiB",
		},
		{
			name:     "MebibytesFractional",
			bytes:    (5 * 1024 * 1024) + (512 * 1024),
			expected: "5.50MiB",
		},
		{
			name:     "Gibibytes",
			bytes:    1024 * 1024 * 1024,
			expected: "1.00GiB",
		},
		{
			name:     "Tebibytes",
			bytes:    1024 * 1024 * 1024 * 1024,
			expected: "1.00TiB",
		},
		{
			name:     "Pebibytes",
			bytes:    1024 * 1024 * 1024 * 1024 * 1024,
			expected: "1.00PiB",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, Bytes(test.bytes))
		})
	}
}
