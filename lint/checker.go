package lint

import (
	"bufio"
	stderrors "errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/input-output-hk/catalyst-forge-libs/linelint/errors"
	"github.com/input-output-hk/catalyst-forge-libs/linelint/fs"
)

// Checker binds a file-type predicate to a check routine.
type Checker interface {
	// Matches reports whether the checker applies to the file at path.
	Matches(path string) bool

	// Check reads the file at path and returns every violation found, in
	// line order. Any failure to open, read or decode the file is returned
	// as an errors.CodeIO error.
	Check(path string) ([]Violation, error)
}

// FileChecker is the one checking implementation shared by every file type.
// File types differ only in the Matcher they are registered with.
type FileChecker struct {
	fs    fs.Filesystem
	match Matcher
	rules []LineRule
}

var _ Checker = (*FileChecker)(nil)

// NewFileChecker creates a checker that reads files from fsys and applies
// rules to every line of the files accepted by match.
func NewFileChecker(fsys fs.Filesystem, match Matcher, rules ...LineRule) *FileChecker {
	return &FileChecker{
		fs:    fsys,
		match: match,
		rules: rules,
	}
}

// NewSuffixChecker creates a checker for files whose name ends in suffix.
func NewSuffixChecker(fsys fs.Filesystem, suffix string, rules ...LineRule) *FileChecker {
	return NewFileChecker(fsys, SuffixMatcher(suffix), rules...)
}

// Matches implements Checker.
func (c *FileChecker) Matches(path string) bool {
	return c.match(path)
}

// Check implements Checker.
func (c *FileChecker) Check(path string) ([]Violation, error) {
	f, err := c.fs.Open(path)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeIO, "failed to open file",
			map[string]interface{}{"path": path})
	}
	defer func() { _ = f.Close() }()

	var violations []Violation
	reader := bufio.NewReader(f)
	for lineno := 0; ; lineno++ {
		text, readErr := readLine(reader)
		if readErr != nil && !stderrors.Is(readErr, io.EOF) {
			return nil, errors.WrapWithContext(readErr, errors.CodeIO, "failed to read file",
				map[string]interface{}{"path": path, "line": lineno})
		}
		if readErr != nil && text == "" {
			break
		}
		if !utf8.ValidString(text) {
			return nil, errors.WrapWithContext(
				errors.Newf(errors.CodeInvalidInput, "invalid UTF-8 on line %d", lineno),
				errors.CodeIO,
				"failed to decode file",
				map[string]interface{}{"path": path, "line": lineno},
			)
		}

		line := Line{Path: path, Number: lineno, Text: text}
		for _, rule := range c.rules {
			violations = append(violations, rule.CheckLine(line)...)
		}

		if readErr != nil {
			break
		}
	}

	return violations, nil
}

// readLine returns the next line without its terminator. "\n", "\r\n" and a
// lone "\r" all end a line. At the end of input it returns the unterminated
// remainder, possibly empty, together with io.EOF.
func readLine(r *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		b, err := r.ReadByte()
		if err != nil {
			return sb.String(), err
		}
		switch b {
		case '\n':
			return sb.String(), nil
		case '\r':
			if next, err := r.Peek(1); err == nil && next[0] == '\n' {
				_, _ = r.ReadByte()
			}
			return sb.String(), nil
		}
		sb.WriteByte(b)
	}
}
