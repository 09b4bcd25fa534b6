// Package main provides the linelint command line tool.
package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/input-output-hk/catalyst-forge-libs/linelint/driver"
	"github.com/input-output-hk/catalyst-forge-libs/linelint/lint"
)

// errLintFailed signals that violations were found. It is not printed.
var errLintFailed = stderrors.New("lint failed")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		if !stderrors.Is(err, errLintFailed) {
			fmt.Fprintf(stdout, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		path     string
		format   string
		logLevel string
		include  []string
	)

	cmd := &cobra.Command{
		Use:   "linelint",
		Short: "Run basic lint checks.",
		Long: "Run basic lint checks.\n\n" +
			"Reports lines longer than 88 characters in .py and .scala files under a path.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Flags parsed; from here on failures are not usage errors.
			cmd.SilenceUsage = true

			outcome, err := driver.Run(cmd.Context(), driver.Options{
				Path:    path,
				Format:  format,
				Include: include,
				Stdout:  stdout,
				Stderr:  stderr,
				Logger:  setupLogger(logLevel, stderr),
			})
			if err != nil {
				return err
			}
			if outcome == lint.OutcomeFail {
				return errLintFailed
			}
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVarP(&path, "path", "p", "",
		"Path to specific file to check, or directory to check recursively.")
	cmd.Flags().StringVar(&format, "format", "text", "Diagnostic format: text|json")
	cmd.Flags().StringArrayVar(&include, "include", nil,
		"Extra glob pattern of absolute file paths to check, e.g. '/src/**/*.sbt' (repeatable)")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level: debug|info|warn|error")

	if err := cmd.MarkFlagRequired("path"); err != nil {
		panic(fmt.Sprintf("failed to mark path flag as required: %v", err))
	}

	return cmd
}

// setupLogger creates an slog.Logger writing text records to w.
func setupLogger(level string, w io.Writer) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel})
	return slog.New(handler)
}
