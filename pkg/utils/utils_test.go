package utils

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "None"},
		{"validation", fmt.Errorf("%w: max_size must be > 0", ErrValidation), "Config_Validation"},
		{"format", fmt.Errorf("%w: %q", ErrFormat, "atom"), "Render_UnknownFormat"},
		{"item priority", fmt.Errorf("%w: priority %q out of range", ErrItemValidation, "1.5"), "Item_Priority"},
		{"item freq", fmt.Errorf("%w: freq %q unknown", ErrItemValidation, "sometimes"), "Item_Freq"},
		{"compression", fmt.Errorf("%w: short write", ErrCompression), "Output_Compression"},
		{"storage", fmt.Errorf("%w: disk full", ErrStorage), "Storage_Other"},
		{"cache", fmt.Errorf("%w: closed", ErrCache), "Cache_Other"},
		{"unknown", fmt.Errorf("something else"), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategorizeError(tt.err))
		})
	}
}

func TestHashString(t *testing.T) {
	a := HashString("xml||0")
	b := HashString("xml||0")
	c := HashString("xml||1")

	assert.Equal(t, a, b, "identical input hashes identically")
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64) // SHA-256 hex
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"sitemap.xml", "sitemap.xml"},
		{"site/map.xml", "site_map.xml"},
		{`a<b>c:"d"`, "a_b_c_d"},
		{"___x___", "x"},
		{"", "sitemap"},
		{"///", "sitemap"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.input))
		})
	}
}

func TestSanitizeFilename_TruncatesLongNames(t *testing.T) {
	long := strings.Repeat("a", 300)

	got := SanitizeFilename(long)

	assert.LessOrEqual(t, len(got), 100)
	assert.NotEmpty(t, got)
}
