// Package fs defines the read-side filesystem abstraction used by linelint.
// Implementations live in subpackages (see fs/billy).
package fs

import (
	"io/fs"
	"path/filepath"
)

// File represents an open, read-only file handle.
// Implementations should behave consistently with the standard library.
type File interface {
	Close() error
	Name() string
	Read(p []byte) (n int, err error)
	Stat() (fs.FileInfo, error)
}

// Filesystem is the set of operations the linter needs to discover and read files.
type Filesystem interface {
	Open(name string) (File, error)
	Stat(name string) (fs.FileInfo, error)
	// Lstat is like Stat but does not follow a final symlink.
	Lstat(name string) (fs.FileInfo, error)
	// Readlink returns the target of the symlink at name.
	Readlink(name string) (string, error)
	Walk(root string, walkFn filepath.WalkFunc) error
}

// WriteFS extends Filesystem with the operations used to lay out fixtures.
type WriteFS interface {
	Filesystem
	MkdirAll(path string, perm fs.FileMode) error
	WriteFile(filename string, data []byte, perm fs.FileMode) error
	Symlink(target, link string) error
}
