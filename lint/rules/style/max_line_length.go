// Package style provides style-related line rules.
package style

import (
	"fmt"
	"unicode/utf8"

	"github.com/input-output-hk/catalyst-forge-libs/linelint/lint"
)

// DefaultMaxLineLength is the maximum line length enforced by default.
const DefaultMaxLineLength = 88

// RuleName identifies violations produced by the max line length rule.
const RuleName = "max-line-length"

// CheckLineLength reports a violation if line is longer than maxLength
// characters. Length is counted in Unicode code points. The caret column is
// maxLength, marking where the allowed text ends.
func CheckLineLength(path string, lineno int, line string, maxLength int) (lint.Violation, bool) {
	length := utf8.RuneCountInString(line)
	if length <= maxLength {
		return lint.Violation{}, false
	}
	return lint.NewViolation(
		RuleName,
		lint.Line{Path: path, Number: lineno, Text: line},
		maxLength,
		fmt.Sprintf("Line length %d, max %d.", length, maxLength),
	), true
}

// MaxLineLengthRule enforces a maximum line length.
type MaxLineLengthRule struct {
	maxLength int
}

var _ lint.LineRule = (*MaxLineLengthRule)(nil)

// NewMaxLineLengthRule creates a new max line length rule.
// If maxLength is 0 or negative, DefaultMaxLineLength is used.
func NewMaxLineLengthRule(maxLength int) *MaxLineLengthRule {
	if maxLength <= 0 {
		maxLength = DefaultMaxLineLength
	}
	return &MaxLineLengthRule{
		maxLength: maxLength,
	}
}

// Name returns the unique identifier for this rule.
func (r *MaxLineLengthRule) Name() string {
	return RuleName
}

// Description returns a human-readable description of what this rule checks.
func (r *MaxLineLengthRule) Description() string {
	return fmt.Sprintf("Enforces maximum line length of %d characters", r.maxLength)
}

// CheckLine implements lint.LineRule.
func (r *MaxLineLengthRule) CheckLine(line lint.Line) []lint.Violation {
	v, ok := CheckLineLength(line.Path, line.Number, line.Text, r.maxLength)
	if !ok {
		return nil
	}
	return []lint.Violation{v}
}
