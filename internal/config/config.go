// Package config defines the application configuration and its resolution
// chain: command-line flags first, then FIBEXT_* environment variables,
// then defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/cainthebest/fibext/internal/errors"
)

// EnvPrefix is prepended to every environment variable key recognized by the
// application (e.g. FIBEXT_COUNT).
const EnvPrefix = "FIBEXT_"

// Element widths accepted by the --width flag.
const (
	Width8   = "8"
	Width16  = "16"
	Width32  = "32"
	Width64  = "64"
	Width128 = "128"
	WidthBig = "big"
)

// Defaults for flag values.
const (
	DefaultCount   = 10
	DefaultWidth   = Width64
	DefaultTimeout = 5 * time.Minute
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Count is the number of terms to generate.
	Count uint64
	// Width selects the element type: "8", "16", "32", "64", "128" or "big".
	Width string
	// Checked selects the checked overflow policy instead of wrapping.
	Checked bool
	// All runs a saturation comparison across every fixed width.
	All bool
	// TUI launches the interactive terminal viewer.
	TUI bool
	// Quiet suppresses everything except the terms themselves.
	Quiet bool
	// OutputFile, when non-empty, receives the generated terms.
	OutputFile string
	// MetricsAddr, when non-empty, serves Prometheus metrics on that address.
	MetricsAddr string
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Completion selects a shell to emit a completion script for.
	Completion string
}

// ValidWidths lists the accepted --width values in display order.
func ValidWidths() []string {
	return []string{Width8, Width16, Width32, Width64, Width128, WidthBig}
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment variable overrides for flags not explicitly set, and validates
// the result.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments, without the program name.
//   - errWriter: Destination for flag parsing and usage messages.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{}
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.Uint64Var(&cfg.Count, "n", DefaultCount, "number of terms to generate")
	fs.Uint64Var(&cfg.Count, "count", DefaultCount, "number of terms to generate (alias of -n)")
	fs.StringVar(&cfg.Width, "w", DefaultWidth, "element width: 8, 16, 32, 64, 128 or big")
	fs.StringVar(&cfg.Width, "width", DefaultWidth, "element width (alias of -w)")
	fs.BoolVar(&cfg.Checked, "checked", false, "stop at overflow instead of wrapping")
	fs.BoolVar(&cfg.All, "all", false, "compare checked saturation across all fixed widths")
	fs.BoolVar(&cfg.TUI, "tui", false, "open the interactive sequence viewer")
	fs.BoolVar(&cfg.Quiet, "q", false, "print terms only")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print terms only (alias of -q)")
	fs.StringVar(&cfg.OutputFile, "output", "", "write the terms to this file")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "maximum run duration")
	fs.StringVar(&cfg.Completion, "completion", "", "emit a completion script for the given shell (bash, zsh)")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [options]\n\nGenerates the Fibonacci sequence over unsigned integer element types.\n\nOptions:\n", programName)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	cfg = ApplyEnvOverrides(cfg, fs)

	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks cross-field consistency of a configuration.
func Validate(cfg AppConfig) error {
	valid := false
	for _, w := range ValidWidths() {
		if cfg.Width == w {
			valid = true
			break
		}
	}
	if !valid {
		return apperrors.ValidationError{Field: "width", Message: fmt.Sprintf("%q is not one of 8, 16, 32, 64, 128, big", cfg.Width)}
	}
	if cfg.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be positive"}
	}
	if cfg.Completion != "" && cfg.Completion != "bash" && cfg.Completion != "zsh" {
		return apperrors.ValidationError{Field: "completion", Message: fmt.Sprintf("unsupported shell %q", cfg.Completion)}
	}
	if cfg.TUI && cfg.Quiet {
		return apperrors.NewConfigError("--tui and --quiet are mutually exclusive")
	}
	return nil
}
