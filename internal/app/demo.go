package app

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jpratte/qol/ansi"
	"github.com/jpratte/qol/art"
	"github.com/jpratte/qol/chart"
	"github.com/jpratte/qol/format"
	"github.com/jpratte/qol/internal/config"
	apperrors "github.com/jpratte/qol/internal/errors"
	"github.com/jpratte/qol/logging"
	"github.com/jpratte/qol/msg"
	"github.com/jpratte/qol/table"
	"github.com/jpratte/qol/widget"
)

// runSection dispatches one demo section by name. Names are validated at
// config parse time, so the default branch only fires on a programming
// error.
func (a *Application) runSection(ctx context.Context, out io.Writer, section string) error {
	switch section {
	case "colors":
		return a.demoColors(out)
	case "messages":
		return a.demoMessages(out)
	case "spinner":
		return a.demoSpinner(out)
	case "progress":
		return a.demoProgress(out)
	case "tables":
		return a.demoTables(out)
	case "charts":
		return a.demoCharts(out)
	case "art":
		return a.demoArt(out)
	case "workers":
		return a.demoWorkers(ctx, out)
	default:
		return apperrors.NewConfigError("unknown section %q", section)
	}
}

// heading separates demo sections visually.
func heading(out io.Writer, title string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, art.Separator())
	fmt.Fprintln(out, ansi.Colorize(ansi.Bold, title))
}

func (a *Application) demoColors(out io.Writer) error {
	heading(out, "Colors")

	named := []struct{ name, token string }{
		{"red", ansi.Red}, {"green", ansi.Green}, {"yellow", ansi.Yellow},
		{"blue", ansi.Blue}, {"magenta", ansi.Magenta}, {"cyan", ansi.Cyan},
	}
	for _, c := range named {
		fmt.Fprintf(out, "%s ", ansi.Colorize(c.token, c.name))
	}
	fmt.Fprintln(out)

	for code := 196; code <= 231; code++ {
		fmt.Fprint(out, ansi.Colorize(ansi.FG256(code), "■"))
	}
	fmt.Fprintln(out)

	token, err := ansi.FGHex("#FF6B6B")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, ansi.Colorize(token, "hex #FF6B6B"))
	fmt.Fprintln(out, ansi.Colorize(ansi.FGRGB(127, 255, 212), "rgb 127,255,212"))

	fmt.Fprintln(out, ansi.Gradient("the quick brown fox jumps over the lazy dog", ansi.Rainbow))
	fmt.Fprintln(out, ansi.Gradient("soft pastel shades", ansi.Pastel))
	return nil
}

func (a *Application) demoMessages(out io.Writer) error {
	heading(out, "Messages")

	m := msg.NewService(out)
	m.Info("starting up")
	m.Pending("fetching manifests")
	m.Success("connection established")
	m.Success2("cache warmed")
	m.Warning("certificate expires in 7 days")
	m.Error("upstream not reachable")
	m.Question("retry with backoff?")
	m.Debug("worker pool sized to 8")

	m.RegisterStyle("deploy", msg.Style{Prefix: "[>>]", Color: ansi.Magenta, Icon: "🚀"})
	m.Custom("deploy", "pushing release v2.1.0")

	m.Configure(msg.ShowIcons(true), msg.ShowTimestamps(true))
	m.Info("icons and timestamps enabled")
	m.Info("nested detail", msg.WithIndent(4))
	return nil
}

func (a *Application) demoSpinner(out io.Writer) error {
	heading(out, "Spinner")

	ind := a.Indicator
	if ind == nil {
		ind = widget.NewSpinner(
			widget.WithWriter(out),
			widget.WithMessage("resolving dependencies"),
		)
	}
	ind.Start()
	a.pause(600 * time.Millisecond)
	ind.UpdateMessage("downloading modules")
	a.pause(600 * time.Millisecond)
	ind.Stop()

	return widget.WithSpinner("compiling packages", func(update func(string)) error {
		a.pause(400 * time.Millisecond)
		update("linking binary")
		a.pause(400 * time.Millisecond)
		return nil
	}, widget.WithWriter(out))
}

func (a *Application) demoProgress(out io.Writer) error {
	heading(out, "Progress")

	return widget.Run(a.Config.Tasks, func(p *widget.ProgressBar) error {
		for i := 0; i < a.Config.Tasks; i++ {
			a.pause(30 * time.Millisecond)
			p.Increment(1)
		}
		return nil
	}, widget.WithDescription("processing"), widget.WithProgressWriter(out))
}

func (a *Application) demoTables(out io.Writer) error {
	heading(out, "Tables")

	services := table.New([]string{"Service", "Status", "Latency"},
		table.WithAlignments(table.Left, table.Center, table.Right),
		table.WithZebra(ansi.Dim),
	)
	services.AddRow("auth", ansi.InGreen("up"), "12ms")
	services.AddRow("billing", ansi.InYellow("degraded"), "311ms")
	services.AddRow("search", ansi.InRed("down"), "-")
	services.Render(out)
	fmt.Fprintln(out)

	doubled := table.New([]string{"Region", "Nodes"}, table.WithBorder(table.Double))
	doubled.AddRow("us-east", "12").AddRow("eu-west", "8")
	doubled.Render(out)
	fmt.Fprintln(out)

	plain := table.New([]string{"Key", "Value"}, table.WithBorder(table.Plain))
	plain.AddRow("version", Version).AddRow("theme", a.Config.Theme)
	plain.Render(out)
	return nil
}

func (a *Application) demoCharts(out io.Writer) error {
	heading(out, "Charts")

	chart.NewBarChart(chart.WithMaxHeight(12)).
		Add("us-east", 42.5).
		Add("eu-west", 31).
		Add("ap-south", 7).
		Render(out)

	history := chart.NewHistory(16)
	for _, v := range []float64{3, 5, 9, 4, 7, 12, 10, 6, 8, 11} {
		history.Push(v)
	}
	fmt.Fprintf(out, "requests: %s\n", history.Sparkline())
	return nil
}

func (a *Application) demoArt(out io.Writer) error {
	heading(out, "Art")

	fmt.Fprintln(out, art.Banner("QOL"))
	fmt.Fprintln(out, art.Box("terminal presentation toolkit\nfor command-line programs",
		art.WithTitle("About")))

	glitcher := art.NewGlitcher(
		art.WithGlitchWriter(out),
		art.WithGlitchDelay(a.delay(30*time.Millisecond)),
	)
	glitcher.Print("SYSTEM ONLINE")

	widget.TypingEffect(out, "Ready.", a.delay(40*time.Millisecond),
		ansi.Green, ".", a.delay(300*time.Millisecond))
	if !a.Config.Fast {
		widget.Countdown(out, 3, "launch in", "liftoff")
	}
	return nil
}

// demoWorkers fans a fixed batch of tasks out to a worker pool and
// reports progress on a shared bar. The bar is not goroutine safe, so
// updates are serialized with a mutex.
func (a *Application) demoWorkers(ctx context.Context, out io.Writer) error {
	heading(out, "Parallel workers")

	workers := a.Config.Workers
	if workers == 0 {
		workers = config.DefaultWorkers()
	}
	tasks := a.Config.Tasks

	bar, err := widget.NewProgressBar(tasks,
		widget.WithDescription(fmt.Sprintf("%d workers", workers)),
		widget.WithProgressWriter(out),
	)
	if err != nil {
		return err
	}

	var mu sync.Mutex
	jobs := make(chan int)
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < tasks; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				a.pause(20 * time.Millisecond)

				mu.Lock()
				bar.Increment(1)
				ratio := bar.Ratio()
				mu.Unlock()

				a.Logger.Debug("task done",
					logging.Float64("ratio", ratio),
					logging.String("eta",
						format.FormatETA(format.EstimateRemaining(time.Since(start), ratio))))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	mu.Lock()
	bar.Finish()
	mu.Unlock()

	fmt.Fprintf(out, "completed %d tasks in %s\n",
		tasks, format.FormatExecutionDuration(time.Since(start)))
	return nil
}
