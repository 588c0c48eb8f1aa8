// Package config handles command-line flag parsing and environment
// variable overrides for the demo program.
//
// Configuration priority, highest first:
//  1. CLI flags (--section, --theme, ...)
//  2. Environment variables (QOL_SECTION, QOL_THEME, ...)
//  3. Defaults
package config

import (
	"flag"
	"fmt"
	"io"
	"runtime"
	"strings"

	apperrors "github.com/jpratte/qol/internal/errors"
)

// EnvPrefix is prepended to every environment variable read by this
// package.
const EnvPrefix = "QOL_"

// SectionAll selects every demo section.
const SectionAll = "all"

// Sections lists the selectable demo sections in presentation order.
var Sections = []string{
	"colors", "messages", "spinner", "progress", "tables", "charts", "art", "workers",
}

// Themes lists the selectable color themes.
var Themes = []string{"dark", "light", "none"}

// DemoConfig holds the parsed demo program configuration.
type DemoConfig struct {
	// Section selects which demo sections run, comma separated, or "all".
	Section string
	// Theme names the color theme applied before rendering.
	Theme string
	// NoColor disables all styling regardless of theme.
	NoColor bool
	// Verbose enables debug-level structured logging.
	Verbose bool
	// Workers is the goroutine count for the parallel workers section.
	// Zero means pick a hardware-appropriate default.
	Workers int
	// Tasks is the number of units of work the workers section processes.
	Tasks int
	// Fast skips animation delays, mainly for CI runs.
	Fast bool
}

// SelectedSections expands the Section flag into the ordered list of
// sections to run.
func (c DemoConfig) SelectedSections() []string {
	if c.Section == SectionAll {
		return Sections
	}
	return strings.Split(c.Section, ",")
}

// ParseConfig parses command-line arguments into a DemoConfig, applies
// environment overrides for flags not set explicitly, and validates the
// result.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments, excluding the program name.
//   - output: The writer for usage and parse error output.
//
// Returns:
//   - DemoConfig: The parsed configuration.
//   - error: flag.ErrHelp when help was requested, a ConfigError on
//     invalid values, or nil.
func ParseConfig(programName string, args []string, output io.Writer) (DemoConfig, error) {
	cfg := DemoConfig{
		Section: SectionAll,
		Theme:   "dark",
		Tasks:   24,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.Section, "section", cfg.Section,
		fmt.Sprintf("demo sections to run, comma separated (%s or %s)",
			strings.Join(Sections, ","), SectionAll))
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme,
		fmt.Sprintf("color theme (%s)", strings.Join(Themes, ", ")))
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "enable verbose logging (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable verbose logging")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers,
		"worker count for the parallel section (0 = auto)")
	fs.IntVar(&cfg.Tasks, "tasks", cfg.Tasks, "task count for the parallel section")
	fs.BoolVar(&cfg.Fast, "fast", cfg.Fast, "skip animation delays")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// validate rejects configurations the demo cannot run with.
func validate(cfg DemoConfig) error {
	for _, section := range cfg.SelectedSections() {
		if !validSection(section) {
			return apperrors.NewConfigError("unknown section %q (valid: %s, %s)",
				section, strings.Join(Sections, ", "), SectionAll)
		}
	}
	if !contains(Themes, cfg.Theme) {
		return apperrors.NewConfigError("unknown theme %q (valid: %s)",
			cfg.Theme, strings.Join(Themes, ", "))
	}
	if cfg.Workers < 0 {
		return apperrors.NewConfigError("workers must be >= 0, got %d", cfg.Workers)
	}
	if cfg.Tasks < 1 {
		return apperrors.NewConfigError("tasks must be >= 1, got %d", cfg.Tasks)
	}
	return nil
}

func validSection(name string) bool {
	return name == SectionAll || contains(Sections, name)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// DefaultWorkers estimates a reasonable worker count from the available
// CPU cores when none was configured. It keeps small machines from
// oversubscribing and large machines from idling.
func DefaultWorkers() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 2:
		return 2
	case numCPU <= 8:
		return numCPU
	default:
		return 8
	}
}
