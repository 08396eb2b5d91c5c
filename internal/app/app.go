// Package app wires configuration, orchestration and presentation into the
// runnable fibext application.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/cainthebest/fibext/internal/cli"
	"github.com/cainthebest/fibext/internal/config"
	apperrors "github.com/cainthebest/fibext/internal/errors"
	"github.com/cainthebest/fibext/internal/tui"
	"github.com/cainthebest/fibext/internal/ui"
)

// Application represents the fibext application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "fibext"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	return &Application{Config: cfg, ErrWriter: errWriter}, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	ui.InitTheme(false)

	if a.Config.TUI {
		return a.runTUI(ctx)
	}

	if a.Config.All {
		return a.runCompare(ctx, out)
	}

	return a.runGenerate(ctx, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runTUI launches the interactive sequence viewer.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	return tui.Run(ctx, a.Config, Version)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// exitCodeForError maps a run error to the process exit code.
func exitCodeForError(err error) int {
	switch {
	case err == nil:
		return apperrors.ExitSuccess
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return apperrors.ExitErrorCanceled
	default:
		return apperrors.ExitErrorGeneric
	}
}
