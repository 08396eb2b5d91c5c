package config

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	apperrors "github.com/cainthebest/fibext/internal/errors"
)

func parseArgs(t *testing.T, args ...string) (AppConfig, error) {
	t.Helper()
	return ParseConfig("fibext", args, io.Discard)
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseArgs(t)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	if cfg.Count != DefaultCount {
		t.Errorf("Count = %d, want %d", cfg.Count, DefaultCount)
	}
	if cfg.Width != Width64 {
		t.Errorf("Width = %q, want %q", cfg.Width, Width64)
	}
	if cfg.Checked {
		t.Error("Checked = true, want false (wrapping is the default policy)")
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
}

func TestParseConfig_Flags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg AppConfig)
	}{
		{
			name: "short and long count aliases",
			args: []string{"-n", "42"},
			check: func(t *testing.T, cfg AppConfig) {
				if cfg.Count != 42 {
					t.Errorf("Count = %d, want 42", cfg.Count)
				}
			},
		},
		{
			name: "long count flag",
			args: []string{"--count", "7"},
			check: func(t *testing.T, cfg AppConfig) {
				if cfg.Count != 7 {
					t.Errorf("Count = %d, want 7", cfg.Count)
				}
			},
		},
		{
			name: "width and policy",
			args: []string{"-w", "8", "--checked"},
			check: func(t *testing.T, cfg AppConfig) {
				if cfg.Width != Width8 || !cfg.Checked {
					t.Errorf("got width=%q checked=%v, want 8/true", cfg.Width, cfg.Checked)
				}
			},
		},
		{
			name: "big width",
			args: []string{"--width", "big"},
			check: func(t *testing.T, cfg AppConfig) {
				if cfg.Width != WidthBig {
					t.Errorf("Width = %q, want big", cfg.Width)
				}
			},
		},
		{
			name: "metrics address and timeout",
			args: []string{"--metrics-addr", ":9090", "--timeout", "30s"},
			check: func(t *testing.T, cfg AppConfig) {
				if cfg.MetricsAddr != ":9090" {
					t.Errorf("MetricsAddr = %q, want :9090", cfg.MetricsAddr)
				}
				if cfg.Timeout != 30*time.Second {
					t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseArgs(t, tt.args...)
			if err != nil {
				t.Fatalf("ParseConfig(%v) error = %v", tt.args, err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown width", []string{"-w", "12"}},
		{"positional argument", []string{"extra"}},
		{"bad completion shell", []string{"--completion", "fish"}},
		{"tui with quiet", []string{"--tui", "--quiet"}},
		{"zero timeout", []string{"--timeout", "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseArgs(t, tt.args...); err == nil {
				t.Errorf("ParseConfig(%v) succeeded, want error", tt.args)
			}
		})
	}
}

func TestParseConfig_HelpFlag(t *testing.T) {
	_, err := parseArgs(t, "--help")
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("ParseConfig(--help) error = %v, want flag.ErrHelp", err)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Run("env applies when flag unset", func(t *testing.T) {
		t.Setenv(EnvPrefix+"COUNT", "99")
		t.Setenv(EnvPrefix+"CHECKED", "yes")

		cfg, err := parseArgs(t)
		if err != nil {
			t.Fatalf("ParseConfig() error = %v", err)
		}
		if cfg.Count != 99 {
			t.Errorf("Count = %d, want 99 from environment", cfg.Count)
		}
		if !cfg.Checked {
			t.Error("Checked = false, want true from environment")
		}
	})

	t.Run("explicit flag wins over env", func(t *testing.T) {
		t.Setenv(EnvPrefix+"COUNT", "99")

		cfg, err := parseArgs(t, "-n", "5")
		if err != nil {
			t.Fatalf("ParseConfig() error = %v", err)
		}
		if cfg.Count != 5 {
			t.Errorf("Count = %d, want 5 from flag", cfg.Count)
		}
	})

	t.Run("invalid env value is ignored", func(t *testing.T) {
		t.Setenv(EnvPrefix+"COUNT", "not-a-number")

		cfg, err := parseArgs(t)
		if err != nil {
			t.Fatalf("ParseConfig() error = %v", err)
		}
		if cfg.Count != DefaultCount {
			t.Errorf("Count = %d, want default %d", cfg.Count, DefaultCount)
		}
	})

	t.Run("env width is validated", func(t *testing.T) {
		t.Setenv(EnvPrefix+"WIDTH", "7")

		_, err := parseArgs(t)
		var validationErr apperrors.ValidationError
		if !errors.As(err, &validationErr) {
			t.Errorf("ParseConfig() error = %v, want ValidationError", err)
		}
	})
}
