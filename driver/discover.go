package driver

import (
	"context"
	"os"
	"path/filepath"

	"github.com/input-output-hk/catalyst-forge-libs/linelint/errors"
	"github.com/input-output-hk/catalyst-forge-libs/linelint/fs"
)

// maxLinkHops bounds symlink resolution of the root, like the kernel's ELOOP limit.
const maxLinkHops = 40

// discover calls process for root if it is a regular file, or for every
// non-directory entry beneath root, in walk order. A root that is a symlink
// to a directory is walked through the link and paths are reported under
// root; nested directory links are not followed. The first error from the
// filesystem or from process stops the traversal and is returned.
func discover(ctx context.Context, fsys fs.Filesystem, root string, process func(path string) error) error {
	info, err := fsys.Stat(root)
	if err != nil {
		return errors.Wrap(err, errors.CodeIO, "failed to access path")
	}

	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			return nil
		}
		return process(root)
	}

	walkRoot, err := resolveLinks(fsys, root)
	if err != nil {
		return errors.Wrap(err, errors.CodeIO, "failed to access path")
	}

	var processErr error
	walkErr := fsys.Walk(walkRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if info.IsDir() || isDirLink(fsys, path, info) {
			return nil
		}
		if err := process(underRoot(root, walkRoot, path)); err != nil {
			processErr = err
			return err
		}
		return nil
	})

	// Errors from process are returned as-is rather than wrapped as walk failures.
	if processErr != nil {
		return processErr
	}
	return walkErr
}

// resolveLinks follows path while it is a symlink and returns the final
// target. Relative targets are resolved against the link's directory.
func resolveLinks(fsys fs.Filesystem, path string) (string, error) {
	for hop := 0; hop < maxLinkHops; hop++ {
		info, err := fsys.Lstat(path)
		if err != nil {
			return "", err
		}
		if info.Mode()&os.ModeSymlink == 0 {
			return path, nil
		}

		target, err := fsys.Readlink(path)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(path), target)
		}
		path = target
	}
	return "", errors.Newf(errors.CodeIO, "too many levels of symbolic links: %s", path)
}

// underRoot maps a path found beneath walkRoot back beneath root.
func underRoot(root, walkRoot, path string) string {
	if root == walkRoot {
		return path
	}
	rel, err := filepath.Rel(walkRoot, path)
	if err != nil {
		return path
	}
	return filepath.Join(root, rel)
}

// isDirLink reports whether info describes a symlink that resolves to a directory.
// Directory links are listed but never descended into or linted.
func isDirLink(fsys fs.Filesystem, path string, info os.FileInfo) bool {
	if info.Mode()&os.ModeSymlink == 0 {
		return false
	}
	target, err := fsys.Stat(path)
	return err == nil && target.IsDir()
}
