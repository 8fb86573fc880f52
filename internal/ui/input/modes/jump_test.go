package modes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		text  string
		total int
		want  int
		ok    bool
	}{
		{"1", 3, 0, true},
		{" 3 ", 3, 2, true},
		{"4", 3, 0, false},
		{"0", 3, 0, false},
		{"-1", 3, 0, false},
		{"two", 3, 0, false},
		{"", 3, 0, false},
		{"1", 0, 0, false},
	}

	for _, tt := range tests {
		got, ok := ParsePage(tt.text, tt.total)
		assert.Equal(t, tt.ok, ok, "text %q", tt.text)
		if tt.ok {
			assert.Equal(t, tt.want, got, "text %q", tt.text)
		}
	}
}
