package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWriter() *FileWriter {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return NewFileWriter(logrus.NewEntry(logger))
}

func TestFileWriter_WritesExactBytes(t *testing.T) {
	dir := t.TempDir()
	w := newTestWriter()

	data := []byte("<?xml version=\"1.0\"?>\n<urlset/>\n")
	require.NoError(t, w.Write(dir, "sitemap.xml", data))

	got, err := os.ReadFile(filepath.Join(dir, "sitemap.xml"))
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestFileWriter_CreatesDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	w := newTestWriter()

	require.NoError(t, w.Write(dir, "sitemap.txt", []byte("https://example.com/")))

	_, err := os.Stat(filepath.Join(dir, "sitemap.txt"))
	assert.NoError(t, err)
}

func TestFileWriter_SanitizesFilename(t *testing.T) {
	dir := t.TempDir()
	w := newTestWriter()

	require.NoError(t, w.Write(dir, "site/map.xml", []byte("x")))

	_, err := os.Stat(filepath.Join(dir, "site_map.xml"))
	assert.NoError(t, err)
}

func TestFileWriter_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	w := newTestWriter()

	require.NoError(t, w.Write(dir, "sitemap.xml", []byte("x")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "sitemap.xml", entries[0].Name())
}

func TestFileWriter_Overwrites(t *testing.T) {
	dir := t.TempDir()
	w := newTestWriter()

	require.NoError(t, w.Write(dir, "sitemap.xml", []byte("first")))
	require.NoError(t, w.Write(dir, "sitemap.xml", []byte("second")))

	got, err := os.ReadFile(filepath.Join(dir, "sitemap.xml"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}
