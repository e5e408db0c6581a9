package filesystem

import (
	"io/fs"

	"github.com/spf13/afero"
)

// aferoFS implements FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(fs afero.Fs) FS {
	return &aferoFS{fs: fs}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

// Writable approximates access(2) with the owner write bit. A read-only
// afero layer is never writable.
func (a *aferoFS) Writable(path string) bool {
	if _, ok := a.fs.(*afero.ReadOnlyFs); ok {
		return false
	}
	info, err := a.fs.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().Perm()&0200 != 0
}
