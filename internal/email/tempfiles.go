package email

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// DiskStorage keeps attachment bytes in a private directory, one file per ID.
type DiskStorage struct {
	dir string
}

// NewDiskStorage creates dir if needed.
func NewDiskStorage(dir string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create temp file dir: %w", err)
	}
	return &DiskStorage{dir: dir}, nil
}

// Dir returns the storage directory.
func (d *DiskStorage) Dir() string {
	return d.dir
}

// Write stores data under id and returns the file path. id must be a bare name.
func (d *DiskStorage) Write(id string, data []byte) (string, error) {
	if id == "" || filepath.Base(id) != id {
		return "", fmt.Errorf("invalid temp file id %q", id)
	}
	path := filepath.Join(d.dir, id)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write temp file: %w", err)
	}
	return path, nil
}

// Remove deletes the file at path. A missing file is not an error.
func (d *DiskStorage) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove temp file: %w", err)
	}
	return nil
}

// RemoveOlderThan deletes regular files last modified before cutoff and
// returns how many were removed.
func (d *DiskStorage) RemoveOlderThan(cutoff time.Time) (int, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return 0, fmt.Errorf("read temp file dir: %w", err)
	}
	removed := 0
	var errs []error
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			errs = append(errs, err)
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}
		if err := d.Remove(filepath.Join(d.dir, entry.Name())); err != nil {
			errs = append(errs, err)
			continue
		}
		removed++
	}
	return removed, errors.Join(errs...)
}
