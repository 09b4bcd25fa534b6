package billy

import (
	stderrors "errors"
	"io"
	"io/fs"

	"github.com/go-git/go-billy/v5"

	"github.com/input-output-hk/catalyst-forge-libs/linelint/errors"
)

// File wraps a go-billy File and satisfies the parent fs.File interface.
type File struct {
	file billy.File
	fs   *FS
}

// Close implements File.Close.
func (f *File) Close() error {
	if err := f.file.Close(); err != nil {
		return wrapPathError(err, "failed to close file", f.file.Name())
	}
	return nil
}

// Name implements File.Name.
func (f *File) Name() string {
	return f.file.Name()
}

// Read implements File.Read. io.EOF is returned unwrapped so callers
// such as bufio can compare against it.
func (f *File) Read(p []byte) (n int, err error) {
	n, err = f.file.Read(p)
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return n, io.EOF
		}
		return n, errors.WrapWithContext(err, errors.CodeIO, "failed to read file",
			map[string]interface{}{"path": f.file.Name()})
	}
	return n, nil
}

// Stat implements File.Stat.
func (f *File) Stat() (fs.FileInfo, error) {
	return f.fs.Stat(f.file.Name())
}
