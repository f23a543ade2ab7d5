package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/RumenDamyanov/go-sitemap/pkg/utils"
)

// FileWriter implements Writer on the local filesystem. Documents land via a
// uuid-suffixed temp file and a rename, so a crashed write never leaves a
// truncated sitemap at the published path.
type FileWriter struct {
	log *logrus.Entry
}

// NewFileWriter returns a filesystem-backed Writer.
func NewFileWriter(logger *logrus.Entry) *FileWriter {
	return &FileWriter{log: logger}
}

// Write implements Writer.
func (w *FileWriter) Write(dir, filename string, data []byte) error {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: cannot create output directory %s: %v", utils.ErrStorage, dir, err)
	}

	final := filepath.Join(dir, utils.SanitizeFilename(filename))
	tmp := final + "." + uuid.NewString() + ".tmp"

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("%w: cannot write %s: %v", utils.ErrStorage, tmp, err)
	}
	if err := os.Rename(tmp, final); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: cannot move %s into place: %v", utils.ErrStorage, tmp, err)
	}

	w.log.Debugf("Wrote %d bytes to %s", len(data), final)
	return nil
}
