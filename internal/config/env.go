// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the QOL_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*DemoConfig, string)
}

// envOverrides is the declarative table of all environment variable
// overrides, grouped by value type (string, numeric, bool).
var envOverrides = []envOverride{
	// String overrides
	{"SECTION", []string{"section"}, func(c *DemoConfig, v string) {
		c.Section = v
	}},
	{"THEME", []string{"theme"}, func(c *DemoConfig, v string) {
		c.Theme = v
	}},

	// Numeric overrides
	{"WORKERS", []string{"workers"}, func(c *DemoConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Workers = parsed
		}
	}},
	{"TASKS", []string{"tasks"}, func(c *DemoConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Tasks = parsed
		}
	}},

	// Boolean overrides
	{"NO_COLOR", []string{"no-color"}, func(c *DemoConfig, v string) {
		c.NoColor = parseBoolEnv(v, c.NoColor)
	}},
	{"VERBOSE", []string{"v", "verbose"}, func(c *DemoConfig, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
	{"FAST", []string{"fast"}, func(c *DemoConfig, v string) {
		c.Fast = parseBoolEnv(v, c.Fast)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with QOL_):
//   - SECTION, THEME, WORKERS, TASKS, NO_COLOR, VERBOSE, FAST
func applyEnvOverrides(config *DemoConfig, fs *flag.FlagSet) {
	for _, override := range envOverrides {
		if isFlagSetAny(fs, override.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + override.envKey); val != "" {
			override.apply(config, val)
		}
	}
}

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
