// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// parseBool interprets the usual truthy/falsy spellings, case-insensitively.
func parseBool(val string) (bool, bool) {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no":
		return false, true
	}
	return false, false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the FIBEXT_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	{"COUNT", []string{"n", "count"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Count = parsed
		}
	}},
	{"WIDTH", []string{"w", "width"}, func(c *AppConfig, v string) {
		c.Width = v
	}},
	{"CHECKED", []string{"checked"}, func(c *AppConfig, v string) {
		if b, ok := parseBool(v); ok {
			c.Checked = b
		}
	}},
	{"QUIET", []string{"q", "quiet"}, func(c *AppConfig, v string) {
		if b, ok := parseBool(v); ok {
			c.Quiet = b
		}
	}},
	{"OUTPUT", []string{"output"}, func(c *AppConfig, v string) {
		c.OutputFile = v
	}},
	{"METRICS_ADDR", []string{"metrics-addr"}, func(c *AppConfig, v string) {
		c.MetricsAddr = v
	}},
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},
}

// ApplyEnvOverrides applies FIBEXT_* environment variables for every flag
// the user did not set explicitly. CLI flags always win over the environment.
func ApplyEnvOverrides(cfg AppConfig, fs *flag.FlagSet) AppConfig {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(&cfg, val)
		}
	}
	return cfg
}
