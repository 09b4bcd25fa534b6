// Package billy adapts go-billy filesystems to the linelint fs interfaces.
package billy

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/input-output-hk/catalyst-forge-libs/linelint/errors"
	parentfs "github.com/input-output-hk/catalyst-forge-libs/linelint/fs"
)

// FS implements parentfs.WriteFS using go-billy.
type FS struct {
	fs billy.Filesystem
}

var _ parentfs.WriteFS = (*FS)(nil)

// Open implements Filesystem.Open.
//
//nolint:ireturn // API returns the fs.File interface by design for flexibility.
func (b *FS) Open(name string) (parentfs.File, error) {
	f, err := b.fs.Open(name)
	if err != nil {
		return nil, wrapPathError(err, "failed to open file", name)
	}
	return &File{
		file: f,
		fs:   b,
	}, nil
}

// Stat implements Filesystem.Stat.
func (b *FS) Stat(name string) (fs.FileInfo, error) {
	info, err := b.fs.Stat(name)
	if err != nil {
		return nil, wrapPathError(err, "failed to stat path", name)
	}
	return info, nil
}

// Lstat implements Filesystem.Lstat.
func (b *FS) Lstat(name string) (fs.FileInfo, error) {
	info, err := b.fs.Lstat(name)
	if err != nil {
		return nil, wrapPathError(err, "failed to lstat path", name)
	}
	return info, nil
}

// Readlink implements Filesystem.Readlink.
func (b *FS) Readlink(name string) (string, error) {
	target, err := b.fs.Readlink(name)
	if err != nil {
		return "", wrapPathError(err, "failed to read link", name)
	}
	return target, nil
}

// Walk implements Filesystem.Walk. Entries are visited in lexical order
// within each directory; symlinked directories are not followed.
func (b *FS) Walk(root string, walkFn filepath.WalkFunc) error {
	if err := util.Walk(b.fs, root, walkFn); err != nil {
		return errors.WrapWithContext(err, errors.CodeIO, "failed to walk directory",
			map[string]interface{}{"root": root})
	}
	return nil
}

// MkdirAll implements WriteFS.MkdirAll.
func (b *FS) MkdirAll(path string, perm os.FileMode) error {
	if err := b.fs.MkdirAll(path, perm); err != nil {
		return wrapPathError(err, "failed to create directory", path)
	}
	return nil
}

// WriteFile implements WriteFS.WriteFile. Parent directories are created as needed.
func (b *FS) WriteFile(filename string, data []byte, perm os.FileMode) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := b.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := util.WriteFile(b.fs, filename, data, perm); err != nil {
		return wrapPathError(err, "failed to write file", filename)
	}
	return nil
}

// Symlink implements WriteFS.Symlink.
func (b *FS) Symlink(target, link string) error {
	if err := b.fs.Symlink(target, link); err != nil {
		return wrapPathError(err, "failed to create symlink", link)
	}
	return nil
}

// Raw returns the underlying go-billy filesystem.
//
//nolint:ireturn // returning interface here is intentional to expose the adapter target.
func (b *FS) Raw() billy.Filesystem {
	return b.fs
}

// NewFS creates a new FS using the given go-billy filesystem.
func NewFS(fsys billy.Filesystem) *FS {
	return &FS{
		fs: fsys,
	}
}

// NewInMemoryFS creates a new in-memory filesystem.
func NewInMemoryFS() *FS {
	return &FS{
		fs: memfs.New(),
	}
}

// BaseOSFS is a billy.Filesystem over the host operating system that
// passes absolute paths straight through instead of joining them to a root.
type BaseOSFS struct {
	osfs.ChrootOS
}

// Chroot returns a new filesystem rooted at the provided path.
//
//nolint:ireturn // billy.Filesystem is an interface; signature is dictated by upstream.
func (b *BaseOSFS) Chroot(path string) (billy.Filesystem, error) {
	return osfs.New(path), nil
}

// Root returns "/".
func (b *BaseOSFS) Root() string {
	return "/"
}

// NewBaseOSFS creates the host filesystem used by the command line.
func NewBaseOSFS() *FS {
	return &FS{
		fs: &BaseOSFS{},
	}
}

func wrapPathError(err error, message, path string) error {
	code := errors.CodeIO
	if os.IsNotExist(err) {
		code = errors.CodeNotFound
	}
	return errors.WrapWithContext(err, code, message, map[string]interface{}{"path": path})
}
