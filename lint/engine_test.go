package lint

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/linelint/errors"
)

// stubChecker is a Checker with canned results.
type stubChecker struct {
	match      Matcher
	violations []Violation
	err        error
	calls      []string
}

func (s *stubChecker) Matches(path string) bool {
	return s.match(path)
}

func (s *stubChecker) Check(path string) ([]Violation, error) {
	s.calls = append(s.calls, path)
	if s.err != nil {
		return nil, s.err
	}
	return s.violations, nil
}

func violationFor(path, message string) Violation {
	return NewViolation("stub", Line{Path: path}, 0, message)
}

func TestEngine_Process(t *testing.T) {
	t.Run("dispatches only to matching checkers", func(t *testing.T) {
		py := &stubChecker{match: SuffixMatcher(".py"), violations: []Violation{violationFor("/a.py", "py")}}
		scala := &stubChecker{match: SuffixMatcher(".scala")}

		engine := NewEngine()
		engine.Register(py)
		engine.Register(scala)

		require.NoError(t, engine.Process("/a.py"))

		assert.Equal(t, []string{"/a.py"}, py.calls)
		assert.Empty(t, scala.calls)
		assert.Len(t, engine.Violations(), 1)
	})

	t.Run("unmatched file yields no violations", func(t *testing.T) {
		py := &stubChecker{match: SuffixMatcher(".py"), violations: []Violation{violationFor("/a.py", "py")}}

		engine := NewEngine()
		engine.Register(py)

		require.NoError(t, engine.Process("/notes.txt"))
		assert.Empty(t, engine.Violations())
		assert.Empty(t, py.calls)
	})

	t.Run("same file matched twice is checked twice", func(t *testing.T) {
		first := &stubChecker{match: SuffixMatcher(".py"), violations: []Violation{violationFor("/a.py", "first")}}
		second := &stubChecker{match: SuffixMatcher(".py"), violations: []Violation{violationFor("/a.py", "second")}}

		engine := NewEngine()
		engine.Register(first)
		engine.Register(second)
		assert.Equal(t, 2, engine.Checkers())

		require.NoError(t, engine.Process("/a.py"))

		got := engine.Violations()
		require.Len(t, got, 2)
		assert.Equal(t, "first", got[0].Message)
		assert.Equal(t, "second", got[1].Message)
	})

	t.Run("violations accumulate across files in order", func(t *testing.T) {
		checker := &stubChecker{match: SuffixMatcher(".py"), violations: []Violation{violationFor("x", "v")}}

		engine := NewEngine()
		engine.Register(checker)

		require.NoError(t, engine.Process("/b.py"))
		require.NoError(t, engine.Process("/a.py"))

		assert.Equal(t, []string{"/b.py", "/a.py"}, checker.calls)
		assert.Len(t, engine.Violations(), 2)
	})

	t.Run("checker error aborts and discards the file", func(t *testing.T) {
		ok := &stubChecker{match: SuffixMatcher(".py"), violations: []Violation{violationFor("/a.py", "ok")}}
		broken := &stubChecker{match: SuffixMatcher(".py"), err: errors.New(errors.CodeIO, "unreadable")}

		engine := NewEngine()
		engine.Register(ok)
		engine.Register(broken)

		err := engine.Process("/a.py")
		require.Error(t, err)
		assert.Equal(t, errors.CodeIO, errors.CodeOf(err))
		assert.Empty(t, engine.Violations())
	})

	t.Run("separate engines do not share state", func(t *testing.T) {
		checker := &stubChecker{match: SuffixMatcher(".py"), violations: []Violation{violationFor("/a.py", "v")}}

		first := NewEngine()
		first.Register(checker)
		require.NoError(t, first.Process("/a.py"))

		second := NewEngine()
		second.Register(checker)

		assert.Len(t, first.Violations(), 1)
		assert.Empty(t, second.Violations())
	})
}

func TestEngine_Violations_ReturnsCopy(t *testing.T) {
	checker := &stubChecker{match: SuffixMatcher(".py"), violations: []Violation{violationFor("/a.py", "v")}}
	engine := NewEngine()
	engine.Register(checker)
	require.NoError(t, engine.Process("/a.py"))

	got := engine.Violations()
	got[0].Message = "mutated"

	assert.Equal(t, "v", engine.Violations()[0].Message)
}

func TestEngine_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	engine := NewEngine(WithLogger(logger))
	engine.Register(&stubChecker{match: SuffixMatcher(".py")})
	require.NoError(t, engine.Process("/a.py"))

	assert.Contains(t, buf.String(), "processed file")
	assert.Contains(t, buf.String(), "path=/a.py")
}
