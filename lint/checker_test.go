package lint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/linelint/errors"
	"github.com/input-output-hk/catalyst-forge-libs/linelint/fs/billy"
)

// echoRule reports every line it sees, so tests can observe exactly what
// the checker hands to rules.
func echoRule() LineRule {
	return SimpleRule("echo", "reports every line", func(line Line) []Violation {
		return []Violation{NewViolation("echo", line, 0, line.Text)}
	})
}

func newTestFS(t *testing.T, files map[string]string) *billy.FS {
	t.Helper()
	fsys := billy.NewInMemoryFS()
	for path, content := range files {
		require.NoError(t, fsys.WriteFile(path, []byte(content), 0o644))
	}
	return fsys
}

func TestFileChecker_Matches(t *testing.T) {
	checker := NewSuffixChecker(billy.NewInMemoryFS(), ".py")

	tests := []struct {
		path string
		want bool
	}{
		{path: "/src/a.py", want: true},
		{path: "/src/a.PY", want: false},
		{path: "/src/a.pyc", want: false},
		{path: "/src/a.scala", want: false},
		{path: "/src/py", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, checker.Matches(tt.path))
		})
	}
}

func TestFileChecker_Check(t *testing.T) {
	t.Run("lines are numbered from zero with terminators stripped", func(t *testing.T) {
		fsys := newTestFS(t, map[string]string{"/src/a.py": "first\nsecond\r\nthird\n"})
		checker := NewSuffixChecker(fsys, ".py", echoRule())

		violations, err := checker.Check("/src/a.py")
		require.NoError(t, err)
		require.Len(t, violations, 3)

		for i, want := range []string{"first", "second", "third"} {
			assert.Equal(t, i, violations[i].Line)
			assert.Equal(t, want, violations[i].Content)
			assert.Equal(t, "/src/a.py", violations[i].File)
		}
	})

	t.Run("final line without terminator is checked intact", func(t *testing.T) {
		fsys := newTestFS(t, map[string]string{"/src/a.py": "one\nlast"})
		checker := NewSuffixChecker(fsys, ".py", echoRule())

		violations, err := checker.Check("/src/a.py")
		require.NoError(t, err)
		require.Len(t, violations, 2)
		assert.Equal(t, "last", violations[1].Content)
		assert.Equal(t, 1, violations[1].Line)
	})

	t.Run("only one terminator is stripped", func(t *testing.T) {
		fsys := newTestFS(t, map[string]string{"/src/a.py": "a\n\n"})
		checker := NewSuffixChecker(fsys, ".py", echoRule())

		violations, err := checker.Check("/src/a.py")
		require.NoError(t, err)
		require.Len(t, violations, 2)
		assert.Equal(t, "a", violations[0].Content)
		assert.Equal(t, "", violations[1].Content)
	})

	t.Run("a lone carriage return ends a line", func(t *testing.T) {
		fsys := newTestFS(t, map[string]string{"/src/a.py": "a\rb\r\nc\n\r"})
		checker := NewSuffixChecker(fsys, ".py", echoRule())

		violations, err := checker.Check("/src/a.py")
		require.NoError(t, err)
		require.Len(t, violations, 4)
		for i, want := range []string{"a", "b", "c", ""} {
			assert.Equal(t, i, violations[i].Line)
			assert.Equal(t, want, violations[i].Content)
		}
	})

	t.Run("lines joined by carriage returns are measured separately", func(t *testing.T) {
		half := strings.Repeat("x", 50)
		fsys := newTestFS(t, map[string]string{"/src/mac.py": half + "\r" + half + "\r"})
		checker := NewSuffixChecker(fsys, ".py", echoRule())

		violations, err := checker.Check("/src/mac.py")
		require.NoError(t, err)
		require.Len(t, violations, 2)
		assert.Equal(t, half, violations[0].Content)
		assert.Equal(t, 1, violations[1].Line)
	})

	t.Run("empty file yields nothing", func(t *testing.T) {
		fsys := newTestFS(t, map[string]string{"/src/empty.py": ""})
		checker := NewSuffixChecker(fsys, ".py", echoRule())

		violations, err := checker.Check("/src/empty.py")
		require.NoError(t, err)
		assert.Empty(t, violations)
	})

	t.Run("lines longer than a read buffer are kept whole", func(t *testing.T) {
		long := strings.Repeat("x", 70000)
		fsys := newTestFS(t, map[string]string{"/src/wide.py": long + "\n"})
		checker := NewSuffixChecker(fsys, ".py", echoRule())

		violations, err := checker.Check("/src/wide.py")
		require.NoError(t, err)
		require.Len(t, violations, 1)
		assert.Len(t, violations[0].Content, 70000)
	})

	t.Run("every rule is applied to every line", func(t *testing.T) {
		fsys := newTestFS(t, map[string]string{"/src/a.py": "x\ny\n"})
		checker := NewSuffixChecker(fsys, ".py", echoRule(), echoRule())

		violations, err := checker.Check("/src/a.py")
		require.NoError(t, err)
		assert.Len(t, violations, 4)
	})

	t.Run("missing file is an IO error", func(t *testing.T) {
		checker := NewSuffixChecker(billy.NewInMemoryFS(), ".py", echoRule())

		violations, err := checker.Check("/src/missing.py")
		require.Error(t, err)
		assert.Nil(t, violations)
		assert.Equal(t, errors.CodeIO, errors.CodeOf(err))
	})

	t.Run("undecodable content is an IO error", func(t *testing.T) {
		fsys := newTestFS(t, map[string]string{"/src/bin.py": "ok\n\xff\xfe\n"})
		checker := NewSuffixChecker(fsys, ".py", echoRule())

		_, err := checker.Check("/src/bin.py")
		require.Error(t, err)
		assert.Equal(t, errors.CodeIO, errors.CodeOf(err))
		assert.Contains(t, err.Error(), "/src/bin.py")
		assert.Contains(t, err.Error(), "invalid UTF-8 on line 1")
	})
}
