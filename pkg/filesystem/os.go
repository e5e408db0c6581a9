package filesystem

import (
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

// osFS implements FS using the OS filesystem
type osFS struct{}

// NewOS creates a new OS filesystem implementation
func NewOS() FS {
	return &osFS{}
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (o *osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Writable asks the kernel, so ACLs, read-only mounts and the effective
// uid are all taken into account.
func (o *osFS) Writable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}
