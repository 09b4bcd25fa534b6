// Package lint provides a small, rule-based linting framework for source files.
// File-type checkers bind a path matcher to a shared set of line rules, an
// Engine dispatches discovered files to every matching checker, and a
// Reporter renders the collected violations.
package lint

// Line is a single line of a file handed to a LineRule.
type Line struct {
	// Path is the absolute path of the file the line belongs to.
	Path string
	// Number is the zero-based index of the line within the file.
	Number int
	// Text is the line content with its trailing terminator stripped.
	Text string
}

// LineRule defines the interface that all line-oriented rules must implement.
// Rules must be pure: the same Line always yields the same violations.
type LineRule interface {
	// Name returns a unique identifier for the rule.
	// This should be a kebab-case string like "max-line-length".
	Name() string

	// Description returns a human-readable description of what the rule checks.
	Description() string

	// CheckLine examines a single line and returns any violations found.
	CheckLine(line Line) []Violation
}
