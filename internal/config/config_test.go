package config

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	apperrors "github.com/jpratte/qol/internal/errors"
)

func parse(t *testing.T, args ...string) (DemoConfig, error) {
	t.Helper()
	var buf bytes.Buffer
	return ParseConfig("qol-demo", args, &buf)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Section != SectionAll {
		t.Errorf("Section = %q, want %q", cfg.Section, SectionAll)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want %q", cfg.Theme, "dark")
	}
	if cfg.Tasks != 24 {
		t.Errorf("Tasks = %d, want 24", cfg.Tasks)
	}
	if cfg.NoColor || cfg.Verbose || cfg.Fast {
		t.Errorf("boolean flags should default to false, got %+v", cfg)
	}
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := parse(t, "-section", "tables,charts", "-theme", "light",
		"-no-color", "-workers", "4", "-fast")
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	sections := cfg.SelectedSections()
	if len(sections) != 2 || sections[0] != "tables" || sections[1] != "charts" {
		t.Errorf("SelectedSections() = %v, want [tables charts]", sections)
	}
	if cfg.Theme != "light" || !cfg.NoColor || cfg.Workers != 4 || !cfg.Fast {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestParseConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown section", []string{"-section", "widgets"}},
		{"unknown theme", []string{"-theme", "solarized"}},
		{"negative workers", []string{"-workers", "-1"}},
		{"zero tasks", []string{"-tasks", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			var configErr apperrors.ConfigError
			if !errors.As(err, &configErr) {
				t.Errorf("ParseConfig(%v) error = %v, want ConfigError", tt.args, err)
			}
		})
	}
}

func TestParseConfigHelp(t *testing.T) {
	_, err := parse(t, "-h")
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("ParseConfig(-h) error = %v, want flag.ErrHelp", err)
	}
}

func TestSelectedSectionsAll(t *testing.T) {
	cfg := DemoConfig{Section: SectionAll}
	if got := cfg.SelectedSections(); len(got) != len(Sections) {
		t.Errorf("SelectedSections() = %v, want all of %v", got, Sections)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Run("env applies when flag absent", func(t *testing.T) {
		t.Setenv("QOL_THEME", "light")
		cfg, err := parse(t)
		if err != nil {
			t.Fatalf("ParseConfig() error = %v", err)
		}
		if cfg.Theme != "light" {
			t.Errorf("Theme = %q, want %q from QOL_THEME", cfg.Theme, "light")
		}
	})

	t.Run("explicit flag wins over env", func(t *testing.T) {
		t.Setenv("QOL_THEME", "light")
		cfg, err := parse(t, "-theme", "none")
		if err != nil {
			t.Fatalf("ParseConfig() error = %v", err)
		}
		if cfg.Theme != "none" {
			t.Errorf("Theme = %q, want flag value %q", cfg.Theme, "none")
		}
	})

	t.Run("invalid env value falls back to validation", func(t *testing.T) {
		t.Setenv("QOL_SECTION", "nonsense")
		_, err := parse(t)
		var configErr apperrors.ConfigError
		if !errors.As(err, &configErr) {
			t.Errorf("error = %v, want ConfigError", err)
		}
	})

	t.Run("bool and numeric envs parse", func(t *testing.T) {
		t.Setenv("QOL_FAST", "yes")
		t.Setenv("QOL_WORKERS", "3")
		cfg, err := parse(t)
		if err != nil {
			t.Fatalf("ParseConfig() error = %v", err)
		}
		if !cfg.Fast || cfg.Workers != 3 {
			t.Errorf("env overrides not applied: %+v", cfg)
		}
	})
}

func TestDefaultWorkers(t *testing.T) {
	if got := DefaultWorkers(); got < 2 || got > 8 {
		t.Errorf("DefaultWorkers() = %d, want within [2, 8]", got)
	}
}
