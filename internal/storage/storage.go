// Package storage reads and writes whole files for the codec tools.
//
// Every error returned here wraps ErrIO together with the underlying cause,
// so callers can tell I/O failures apart from malformed documents while
// errors.Is(err, fs.ErrNotExist) keeps working.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrIO marks failures of the underlying filesystem or raster container.
var ErrIO = errors.New("io failure")

// DefaultPerm is the permission used for files written by the tools.
const DefaultPerm fs.FileMode = 0o644

// ReadFile reads the whole file at path.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrIO, path, err)
	}
	return data, nil
}

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// SamePath reports whether a and b name the same file location once both
// are made absolute and cleaned. Symlinks are not resolved.
func SamePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// WriteFileAtomic writes data to path so that readers observe either the
// previous content or the complete new content, never a partial file.
//
// The data goes to a uniquely named temporary file in the same directory,
// which is synced and then renamed over path.
func WriteFileAtomic(path string, data []byte, perm fs.FileMode) (err error) {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file for %s: %w", ErrIO, path, err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", ErrIO, tmp, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("%w: failed to sync %s: %w", ErrIO, tmp, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: failed to close %s: %w", ErrIO, tmp, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: failed to rename %s to %s: %w", ErrIO, tmp, path, err)
	}
	return nil
}
