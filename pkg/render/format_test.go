package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RumenDamyanov/go-sitemap/pkg/config"
	"github.com/RumenDamyanov/go-sitemap/pkg/models"
	"github.com/RumenDamyanov/go-sitemap/pkg/utils"
)

func TestParseFormat(t *testing.T) {
	for _, f := range Formats() {
		parsed, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
}

func TestParseFormat_Unknown(t *testing.T) {
	for _, name := range []string{"atom", "XML", "", "text"} {
		_, err := ParseFormat(name)
		require.Error(t, err, name)
		assert.ErrorIs(t, err, utils.ErrFormat)
	}
}

func TestRender_AllFormats(t *testing.T) {
	m := testModel(t, models.Item{Loc: "https://example.com/"})
	opts := config.New()

	for _, f := range Formats() {
		doc, err := Render(f, m, opts)
		require.NoError(t, err, f)
		if f != GoogleNews {
			assert.Contains(t, doc, "https://example.com/", f)
		}
	}
}

func TestRender_StrictModeFailsEveryFormat(t *testing.T) {
	tests := []struct {
		name string
		item models.Item
	}{
		{"priority out of range", models.Item{Loc: "https://example.com/", Priority: "2.0"}},
		{"unknown freq", models.Item{Loc: "https://example.com/", Freq: "sometimes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModel(t, tt.item)
			opts := config.New()
			opts.StrictMode = true

			for _, f := range Formats() {
				_, err := Render(f, m, opts)
				require.Error(t, err, f)
				assert.ErrorIs(t, err, utils.ErrItemValidation, f)
			}
		})
	}
}

func TestRender_LenientModeOmitsInvalidFields(t *testing.T) {
	m := testModel(t, models.Item{Loc: "https://example.com/", Priority: "2.0", Freq: "sometimes"})
	opts := config.New()

	for _, f := range Formats() {
		doc, err := Render(f, m, opts)
		require.NoError(t, err, f)
		assert.NotContains(t, doc, "2.0", f)
		assert.NotContains(t, doc, "sometimes", f)
	}
}

func TestRender_Deterministic(t *testing.T) {
	m := testModel(t,
		models.Item{Loc: "https://example.com/", Title: "Home", LastMod: "2024-01-01", Priority: "0.7", Freq: "weekly"},
	)
	opts := config.New()
	opts.Domain = "https://example.com"

	for _, f := range Formats() {
		first, err := Render(f, m, opts)
		require.NoError(t, err)
		again, err := Render(f, m, opts)
		require.NoError(t, err)
		assert.Equal(t, first, again, f)
	}
}
