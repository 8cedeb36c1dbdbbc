package helpers

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/doeshing/cmdkit/internal/application/library"
	"github.com/doeshing/cmdkit/internal/ports"
)

// LoadLibrary reads a command CSV into a fresh store. A missing file yields
// an empty store.
func LoadLibrary(files ports.CSVFiles, path string) (*library.Store, error) {
	store := library.NewStore()
	text, err := files.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := store.ImportCSV(text); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return store, nil
}
