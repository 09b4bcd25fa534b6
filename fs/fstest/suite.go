// Package fstest provides a conformance test suite for filesystem
// implementations of the linelint fs.WriteFS interface.
//
// The suite checks the behaviour the linter relies on: files written can be
// opened and read back byte for byte, missing paths report CodeNotFound,
// symlinks can be inspected without being followed, and Walk visits every
// file beneath a root.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func() fs.WriteFS {
//	        return myprovider.New()
//	    }, "/")
//	}
package fstest

import (
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/linelint/fs"
)

// TestSuite runs all conformance tests against a filesystem.
// The newFS function should return a fresh filesystem for each test; root is
// an existing, writable directory inside it under which fixtures are created.
func TestSuite(t *testing.T, newFS func() fs.WriteFS, root string) {
	t.Run("ReadFS", func(t *testing.T) {
		TestReadFS(t, newFS(), root)
	})

	t.Run("WalkFS", func(t *testing.T) {
		TestWalkFS(t, newFS(), root)
	})

	t.Run("SymlinkFS", func(t *testing.T) {
		TestSymlinkFS(t, newFS(), root)
	})
}
