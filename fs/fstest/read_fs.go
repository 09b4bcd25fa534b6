package fstest

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/linelint/errors"
	"github.com/input-output-hk/catalyst-forge-libs/linelint/fs"
)

// TestReadFS tests Open, File.Read, File.Stat and Stat, including the
// error codes reported for missing paths.
func TestReadFS(t *testing.T, filesystem fs.WriteFS, root string) {
	testContent := []byte("def main():\n    pass\n")
	file := filepath.Join(root, "testdir", "testfile.py")

	if err := filesystem.WriteFile(file, testContent, 0o644); err != nil {
		t.Fatalf("WriteFile(%s): setup failed: %v", file, err)
	}

	t.Run("Open", func(t *testing.T) {
		f, err := filesystem.Open(file)
		if err != nil {
			t.Fatalf("Open(%s) failed: %v", file, err)
		}
		defer func() { _ = f.Close() }()

		got, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("ReadAll failed: %v", err)
		}
		if !bytes.Equal(got, testContent) {
			t.Errorf("content = %q, want %q", got, testContent)
		}

		info, err := f.Stat()
		if err != nil {
			t.Fatalf("File.Stat failed: %v", err)
		}
		if info.Size() != int64(len(testContent)) {
			t.Errorf("File.Stat size = %d, want %d", info.Size(), len(testContent))
		}
	})

	t.Run("StatDir", func(t *testing.T) {
		info, err := filesystem.Stat(filepath.Join(root, "testdir"))
		if err != nil {
			t.Fatalf("Stat(testdir) failed: %v", err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(testdir).IsDir() = false, want true")
		}
	})

	t.Run("OpenNotExist", func(t *testing.T) {
		_, err := filesystem.Open(filepath.Join(root, "missing.py"))
		if err == nil {
			t.Fatal("Open(missing.py) succeeded, want error")
		}
		if !errors.HasCode(err, errors.CodeNotFound) {
			t.Errorf("Open(missing.py) error %v, want code %s", err, errors.CodeNotFound)
		}
	})

	t.Run("StatNotExist", func(t *testing.T) {
		_, err := filesystem.Stat(filepath.Join(root, "missing"))
		if !errors.HasCode(err, errors.CodeNotFound) {
			t.Errorf("Stat(missing) error %v, want code %s", err, errors.CodeNotFound)
		}
	})
}

// TestWalkFS tests that Walk reports every file and directory under a root
// and that walking a missing root fails.
func TestWalkFS(t *testing.T, filesystem fs.WriteFS, root string) {
	base := filepath.Join(root, "walk")
	want := []string{
		filepath.Join(base, "a.py"),
		filepath.Join(base, "b.scala"),
		filepath.Join(base, "x", "y", "z.txt"),
	}
	for _, p := range want {
		if err := filesystem.WriteFile(p, []byte(filepath.Base(p)), 0o644); err != nil {
			t.Fatalf("WriteFile(%s): setup failed: %v", p, err)
		}
	}

	t.Run("VisitsAllFiles", func(t *testing.T) {
		var files []string
		dirs := 0
		err := filesystem.Walk(base, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				dirs++
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk failed: %v", err)
		}

		sort.Strings(files)
		if len(files) != len(want) {
			t.Fatalf("Walk saw files %v, want %v", files, want)
		}
		for i := range want {
			if files[i] != want[i] {
				t.Errorf("file[%d] = %s, want %s", i, files[i], want[i])
			}
		}
		if dirs != 3 {
			t.Errorf("Walk saw %d directories, want 3", dirs)
		}
	})

	t.Run("MissingRoot", func(t *testing.T) {
		err := filesystem.Walk(filepath.Join(root, "nowhere"), func(_ string, _ os.FileInfo, err error) error {
			return err
		})
		if !errors.HasCode(err, errors.CodeIO) {
			t.Errorf("Walk(nowhere) error %v, want code %s", err, errors.CodeIO)
		}
	})
}

// TestSymlinkFS tests Lstat and Readlink on a link to a directory, and that
// Stat follows the link.
func TestSymlinkFS(t *testing.T, filesystem fs.WriteFS, root string) {
	target := filepath.Join(root, "linked", "real")
	link := filepath.Join(root, "linked", "link")

	if err := filesystem.WriteFile(filepath.Join(target, "a.py"), []byte("a\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: setup failed: %v", err)
	}
	if err := filesystem.Symlink(target, link); err != nil {
		t.Fatalf("Symlink(%s, %s): setup failed: %v", target, link, err)
	}

	info, err := filesystem.Lstat(link)
	if err != nil {
		t.Fatalf("Lstat(link) failed: %v", err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Errorf("Lstat(link) mode = %v, want symlink", info.Mode())
	}

	info, err = filesystem.Stat(link)
	if err != nil {
		t.Fatalf("Stat(link) failed: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("Stat(link).IsDir() = false, want true")
	}

	got, err := filesystem.Readlink(link)
	if err != nil {
		t.Fatalf("Readlink(link) failed: %v", err)
	}
	if got != target {
		t.Errorf("Readlink(link) = %s, want %s", got, target)
	}

	_, err = filesystem.Readlink(filepath.Join(root, "linked", "missing"))
	if !errors.HasCode(err, errors.CodeNotFound) {
		t.Errorf("Readlink(missing) error %v, want code %s", err, errors.CodeNotFound)
	}
}
