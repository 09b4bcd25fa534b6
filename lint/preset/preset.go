// Package preset registers the file types linelint checks out of the box.
package preset

import (
	"github.com/input-output-hk/catalyst-forge-libs/linelint/fs"
	"github.com/input-output-hk/catalyst-forge-libs/linelint/lint"
	"github.com/input-output-hk/catalyst-forge-libs/linelint/lint/rules/style"
)

// Extensions lists the recognized file name suffixes in registration order.
var Extensions = []string{".py", ".scala"}

// Rules returns the line rules applied to every recognized file type.
func Rules() []lint.LineRule {
	return []lint.LineRule{style.NewMaxLineLengthRule(style.DefaultMaxLineLength)}
}

// Checkers returns one checker per recognized extension followed by one per
// glob pattern, all reading from fsys and sharing the same rules. It fails
// if any pattern is malformed.
func Checkers(fsys fs.Filesystem, patterns ...string) ([]lint.Checker, error) {
	rules := Rules()
	checkers := make([]lint.Checker, 0, len(Extensions)+len(patterns))
	for _, ext := range Extensions {
		checkers = append(checkers, lint.NewSuffixChecker(fsys, ext, rules...))
	}
	for _, pattern := range patterns {
		match, err := lint.GlobMatcher(pattern)
		if err != nil {
			return nil, err
		}
		checkers = append(checkers, lint.NewFileChecker(fsys, match, rules...))
	}
	return checkers, nil
}

// Register registers the default checkers, plus one per extra glob pattern,
// with engine. A file matched by both a default suffix and a pattern is
// checked by each. Nothing is registered if a pattern is malformed.
func Register(engine *lint.Engine, fsys fs.Filesystem, patterns ...string) error {
	checkers, err := Checkers(fsys, patterns...)
	if err != nil {
		return err
	}
	for _, checker := range checkers {
		engine.Register(checker)
	}
	return nil
}
