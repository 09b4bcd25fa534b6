// Package driver resolves a path to the files to lint, runs them through a
// lint.Engine configured with the default checkers, and reports the result.
package driver

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/input-output-hk/catalyst-forge-libs/linelint/errors"
	"github.com/input-output-hk/catalyst-forge-libs/linelint/fs"
	"github.com/input-output-hk/catalyst-forge-libs/linelint/fs/billy"
	"github.com/input-output-hk/catalyst-forge-libs/linelint/lint"
	"github.com/input-output-hk/catalyst-forge-libs/linelint/lint/preset"
)

// Options configures a single lint run.
type Options struct {
	// Path is the file or directory to lint.
	Path string `validate:"required"`
	// Format selects the diagnostic format: "text" (default) or "json".
	Format string `validate:"omitempty,oneof=text json"`
	// Include adds glob patterns (doublestar syntax, matched against absolute
	// paths) for files to check in addition to the default extensions.
	Include []string `validate:"dive,required"`

	// FS is the filesystem to read from. Defaults to the host filesystem.
	FS fs.Filesystem
	// Stdout receives the summary line. Defaults to os.Stdout.
	Stdout io.Writer
	// Stderr receives the per-violation diagnostics. Defaults to os.Stderr.
	Stderr io.Writer
	// Logger receives debug logging. Defaults to a discarding logger.
	Logger *slog.Logger
}

var validate = validator.New()

// Run lints every file reachable from opts.Path and reports the violations.
//
// A regular file is linted on its own; a directory is walked recursively.
// Any failure to stat, walk or read a file aborts the run immediately with
// an errors.CodeIO error and nothing is reported. Invalid options yield an
// errors.CodeInvalidConfig error before any file is touched. A nil ctx is
// treated as context.Background().
func Run(ctx context.Context, opts Options) (lint.Outcome, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := validate.Struct(opts); err != nil {
		return lint.OutcomeFail, errors.Wrap(err, errors.CodeInvalidConfig, "invalid options")
	}
	opts = withDefaults(opts)

	format, err := lint.ParseFormat(opts.Format)
	if err != nil {
		return lint.OutcomeFail, errors.Wrap(err, errors.CodeInvalidConfig, "invalid options")
	}

	root, err := fs.GetAbs(opts.Path)
	if err != nil {
		return lint.OutcomeFail, errors.Wrap(err, errors.CodeIO, "failed to resolve path")
	}

	engine := lint.NewEngine(lint.WithLogger(opts.Logger))
	if err := preset.Register(engine, opts.FS, opts.Include...); err != nil {
		return lint.OutcomeFail, errors.Wrap(err, errors.CodeInvalidConfig, "invalid include pattern")
	}
	opts.Logger.Debug("starting lint run", "path", root, "checkers", engine.Checkers())

	if err := discover(ctx, opts.FS, root, engine.Process); err != nil {
		return lint.OutcomeFail, err
	}

	violations := engine.Violations()
	opts.Logger.Debug("lint run complete", "path", root, "violations", len(violations))

	reporter := lint.NewReporter(opts.Stderr, opts.Stdout, format)
	if err := reporter.Render(violations); err != nil {
		return lint.OutcomeFail, errors.Wrap(err, errors.CodeIO, "failed to render violations")
	}
	outcome, err := reporter.Outcome(violations)
	if err != nil {
		return outcome, errors.Wrap(err, errors.CodeIO, "failed to report outcome")
	}
	return outcome, nil
}

func withDefaults(opts Options) Options {
	if opts.FS == nil {
		opts.FS = billy.NewBaseOSFS()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return opts
}
