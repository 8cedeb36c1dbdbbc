package csvfile

import (
	"os"
	"path/filepath"

	"github.com/doeshing/cmdkit/internal/domain"
	"github.com/doeshing/cmdkit/internal/ports"
)

// Files reads and writes exported command lists on the local filesystem.
type Files struct{}

// New returns the filesystem adapter.
func New() *Files {
	return &Files{}
}

// Read returns the file contents. A missing file is an error wrapping
// fs.ErrNotExist; callers that start new lists check for it.
func (f *Files) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write replaces path atomically: temp file in the same directory, then rename.
func (f *Files) Write(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(domain.ExportFilePermissions); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

var _ ports.CSVFiles = (*Files)(nil)
