package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSequentialID(t *testing.T) {
	cases := []struct {
		prefix string
		width  int
		value  int64
		want   string
	}{
		{"B", 7, 1, "B0000001"},
		{"B", 7, 42, "B0000042"},
		{"B", 7, 9999999, "B9999999"},
		{"D", 3, 5, "D005"},
		{"O", 8, 12, "O00000012"},
		{"U", 3, 100, "U100"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatSequentialID(tc.prefix, tc.width, tc.value))
	}
}

func TestGenerateFallbackIDOutsideSequentialNamespace(t *testing.T) {
	id := GenerateFallbackID()
	assert.NotEmpty(t, id)
	// Random IDs must never look like counter-issued ones.
	assert.NotRegexp(t, `^B\d{7}$`, id)

	assert.NotEqual(t, id, GenerateFallbackID())
}
