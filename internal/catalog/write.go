// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vorlif/spreak/catalog/po"
)

// Write encodes file to path. The parent directory is created if missing,
// and the catalog is written to a temporary file in the same directory and
// renamed into place, so a partial write can never be mistaken for a
// complete catalog. Long msgid lines are not wrapped.
func Write(file *po.File, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("creating temporary catalog file: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	// The encoder sorts messages unconditionally; entries arrive pre-sorted
	// from Group anyway.
	enc := po.NewEncoder(tmp)
	enc.SetWrapWidth(-1)
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing catalog %s: %w", path, err)
	}
	return nil
}
