package crawler

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer places files atomically: content goes to a temp file in the target
// directory which is then renamed over the destination.
type Writer struct {
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// NewWriter creates a writer with the default permissions.
func NewWriter() *Writer {
	return &Writer{dirPerm: 0o755, filePerm: 0o644}
}

// WriteFile writes content to path. On failure no file is left at path.
func (w *Writer) WriteFile(path string, content []byte) error {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, w.dirPerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}

	if err := os.Chmod(tmpName, w.filePerm); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("failed to set permissions on %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("failed to move report into place: %w", err)
	}

	return nil
}
