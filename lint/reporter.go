package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Format represents the output format for reporting violations.
type Format int

const (
	// FormatText outputs violations as "file:line: message" blocks with a caret line.
	FormatText Format = iota
	// FormatJSON outputs violations as a JSON document.
	FormatJSON
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat converts a format name into a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unsupported format: %s", name)
	}
}

// Outcome is the pass/fail result of a run.
type Outcome int

const (
	// OutcomePass means no violations were found.
	OutcomePass Outcome = iota
	// OutcomeFail means at least one violation was found.
	OutcomeFail
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	if o == OutcomePass {
		return "pass"
	}
	return "fail"
}

// ExitCode returns the process exit status for the outcome.
func (o Outcome) ExitCode() int {
	if o == OutcomePass {
		return 0
	}
	return 1
}

// Reporter renders violations and computes the outcome of a run.
// Diagnostics go to diag, the summary line goes to info.
type Reporter struct {
	diag   io.Writer
	info   io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(diag, info io.Writer, format Format) *Reporter {
	return &Reporter{
		diag:   diag,
		info:   info,
		format: format,
	}
}

// Render writes the violations to the diagnostic stream in encounter order.
func (r *Reporter) Render(violations []Violation) error {
	switch r.format {
	case FormatText:
		return r.renderText(violations)
	case FormatJSON:
		return r.renderJSON(violations)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

// renderText writes one three-line block per violation: the header, the
// verbatim line, and a caret under Column.
func (r *Reporter) renderText(violations []Violation) error {
	for _, v := range violations {
		block := fmt.Sprintf("%s\n%s\n%s^\n", v.String(), v.Content, strings.Repeat(" ", v.Column))
		if _, err := io.WriteString(r.diag, block); err != nil {
			return fmt.Errorf("failed to write text output: %w", err)
		}
	}
	return nil
}

func (r *Reporter) renderJSON(violations []Violation) error {
	if violations == nil {
		violations = []Violation{}
	}
	output := struct {
		Violations []Violation `json:"violations"`
	}{
		Violations: violations,
	}

	encoder := json.NewEncoder(r.diag)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}

// Outcome returns OutcomeFail if violations is non-empty, after writing the
// summary line to the informational stream. An empty run writes nothing.
func (r *Reporter) Outcome(violations []Violation) (Outcome, error) {
	if len(violations) == 0 {
		return OutcomePass, nil
	}
	if _, err := fmt.Fprintln(r.info, Summary(len(violations))); err != nil {
		return OutcomeFail, fmt.Errorf("failed to write summary: %w", err)
	}
	return OutcomeFail, nil
}

// Summary returns the one-line summary for count violations.
func Summary(count int) string {
	noun := "errors"
	if count == 1 {
		noun = "error"
	}
	return fmt.Sprintf("%d lint %s found.", count, noun)
}
