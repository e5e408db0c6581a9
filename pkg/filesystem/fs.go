package filesystem

import "io/fs"

// FS is the subset of filesystem operations probes need.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	// Writable reports whether the current user may create files in path.
	Writable(path string) bool
}
