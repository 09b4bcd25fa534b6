package lint

import (
	"io"
	"log/slog"
)

// Engine owns the registered checkers and the violations accumulated
// during one run. It is not safe for concurrent use.
type Engine struct {
	checkers   []Checker
	violations []Violation
	logger     *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an Engine with no checkers registered.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Register adds a checker. Checkers run in registration order.
func (e *Engine) Register(checker Checker) {
	e.checkers = append(e.checkers, checker)
}

// Checkers returns the number of registered checkers.
func (e *Engine) Checkers() int {
	return len(e.checkers)
}

// Process runs every matching checker against path and appends their
// violations in order. A file matched by several checkers is checked by
// each of them; nothing is deduplicated. The first checker error aborts
// processing of the file, discards its violations and is returned unchanged.
func (e *Engine) Process(path string) error {
	var collected []Violation
	matched := 0
	for _, checker := range e.checkers {
		if !checker.Matches(path) {
			continue
		}
		matched++

		found, err := checker.Check(path)
		if err != nil {
			e.logger.Debug("check failed", "path", path, "error", err)
			return err
		}
		collected = append(collected, found...)
	}
	e.violations = append(e.violations, collected...)

	e.logger.Debug("processed file", "path", path, "checkers", matched, "total", len(e.violations))
	return nil
}

// Violations returns a copy of the violations accumulated so far, in
// encounter order.
func (e *Engine) Violations() []Violation {
	out := make([]Violation, len(e.violations))
	copy(out, e.violations)
	return out
}
