package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSplitPart(t *testing.T) {
	part, err := GetSplitPart("a/b/c", "/", 1)
	assert.NoError(t, err)
	assert.Equal(t, "b", part)

	_, err = GetSplitPart("a/b", "/", 5)
	assert.Error(t, err)
}

func TestSplitFirst(t *testing.T) {
	tests := []struct {
		name   string
		target string
		first  string
		second string
	}{
		{"city and region", "Stewartbury, AA", "Stewartbury", " AA"},
		{"sentinel", "NC,--", "NC", "--"},
		{"no separator", "Stewartbury", "Stewartbury", ""},
		{"multiple separators", "a,b,c", "a", "b,c"},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, second := SplitFirst(tt.target, ",")
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.second, second)
		})
	}
}
