package lint

import "fmt"

// Violation is a single rule infraction at a specific file and line.
// Violations are values and are never modified after creation.
type Violation struct {
	// Rule is the identifier of the rule that produced the violation.
	Rule string `json:"rule"`
	// File is the absolute path of the offending file.
	File string `json:"file"`
	// Line is the zero-based line number.
	Line int `json:"line"`
	// Content is the offending line, verbatim, without its terminator.
	Content string `json:"content"`
	// Column is where the caret is drawn under Content.
	Column int `json:"column"`
	// Message is a human-readable description of the problem.
	Message string `json:"message"`
}

// NewViolation creates a Violation for the given line.
func NewViolation(rule string, line Line, column int, message string) Violation {
	return Violation{
		Rule:    rule,
		File:    line.Path,
		Line:    line.Number,
		Content: line.Text,
		Column:  column,
		Message: message,
	}
}

// String returns the "file:line: message" header used by the text reporter.
func (v Violation) String() string {
	return fmt.Sprintf("%s:%d: %s", v.File, v.Line, v.Message)
}
