// Package app wires configuration, theming, and the demo sections into
// a runnable application.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/jpratte/qol/ansi"
	"github.com/jpratte/qol/internal/config"
	apperrors "github.com/jpratte/qol/internal/errors"
	"github.com/jpratte/qol/logging"
	"github.com/jpratte/qol/widget"
)

// Application represents the qol-demo application instance.
type Application struct {
	Config    config.DemoConfig
	ErrWriter io.Writer
	Logger    logging.Logger
	// Indicator, when set, replaces the spinner used by the spinner
	// section. Tests inject a mock here.
	Indicator widget.Indicator
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom structured logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithIndicator sets a custom spinner implementation.
func WithIndicator(ind widget.Indicator) AppOption {
	return func(a *Application) { a.Indicator = ind }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "qol-demo"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "qol-demo")
	}
	return app, nil
}

// Run executes the configured demo sections in order and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if a.Config.NoColor {
		ansi.InitTheme(true)
	} else {
		ansi.SetTheme(a.Config.Theme)
	}

	for _, section := range a.Config.SelectedSections() {
		if err := ctx.Err(); err != nil {
			return apperrors.ExitErrorCanceled
		}
		a.Logger.Debug("running section", logging.String("section", section))

		if err := a.runSection(ctx, out, section); err != nil {
			if apperrors.IsContextError(err) {
				return apperrors.ExitErrorCanceled
			}
			renderErr := apperrors.RenderError{Section: section, Cause: err}
			a.Logger.Error("section failed", renderErr)
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", renderErr)
			return apperrors.ExitErrorGeneric
		}
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// pause sleeps for d unless fast mode is enabled.
func (a *Application) pause(d time.Duration) {
	if !a.Config.Fast {
		time.Sleep(d)
	}
}

// delay returns d, or zero in fast mode, for APIs that take a duration.
func (a *Application) delay(d time.Duration) time.Duration {
	if a.Config.Fast {
		return 0
	}
	return d
}
