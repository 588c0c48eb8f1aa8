package widget

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

// frames splits carriage-return-delimited redraws into individual frames.
func frames(output string) []string {
	parts := strings.Split(output, "\r")
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func fillCount(frame string) int {
	return strings.Count(frame, "█")
}

func TestNewProgressBarRejectsInvalidTotal(t *testing.T) {
	t.Parallel()
	for _, total := range []int{0, -1, -100} {
		_, err := NewProgressBar(total)
		if err == nil {
			t.Fatalf("NewProgressBar(%d) expected error", total)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("NewProgressBar(%d) error type = %T, want *ValidationError", total, err)
		}
	}
}

func TestProgressBarSingleSteps(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	p, err := NewProgressBar(4, WithProgressWriter(&buf), WithBarLength(8))
	if err != nil {
		t.Fatalf("NewProgressBar: %v", err)
	}

	for i := 1; i <= 4; i++ {
		p.Increment(1)
	}

	if p.Current() != 4 {
		t.Errorf("Current() = %d, want 4", p.Current())
	}
	if p.Ratio() != 1.0 {
		t.Errorf("Ratio() = %f, want 1.0", p.Ratio())
	}

	rendered := frames(buf.String())
	if len(rendered) != 4 {
		t.Fatalf("expected 4 redraws, got %d: %q", len(rendered), rendered)
	}

	// Fill fraction is strictly non-decreasing across updates.
	prev := -1
	for i, frame := range rendered {
		n := fillCount(frame)
		if n < prev {
			t.Errorf("frame %d fill count %d decreased from %d", i, n, prev)
		}
		prev = n
	}
	if prev != 8 {
		t.Errorf("final frame fill count = %d, want full bar (8)", prev)
	}
	if !strings.Contains(rendered[len(rendered)-1], "100.0%") {
		t.Errorf("final frame should show 100.0%%, got %q", rendered[len(rendered)-1])
	}
}

func TestProgressBarNeverDecreases(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	p, err := NewProgressBar(10, WithProgressWriter(&buf))
	if err != nil {
		t.Fatalf("NewProgressBar: %v", err)
	}

	p.Set(7)
	p.Set(3)
	if p.Current() != 7 {
		t.Errorf("Set(3) after Set(7): Current() = %d, want 7", p.Current())
	}

	p.Set(99)
	if p.Current() != 10 {
		t.Errorf("Set above total: Current() = %d, want clamp to 10", p.Current())
	}
}

func TestProgressBarSegments(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		opts     []ProgressOption
		contains []string
		excludes []string
	}{
		{
			name:     "all segments",
			opts:     []ProgressOption{WithDescription("loading")},
			contains: []string{"loading", "[", "]", "50.0%", "1/2"},
		},
		{
			name:     "no percentage",
			opts:     []ProgressOption{WithoutPercentage()},
			contains: []string{"1/2"},
			excludes: []string{"%"},
		},
		{
			name:     "no counter",
			opts:     []ProgressOption{WithoutCounter()},
			contains: []string{"50.0%"},
			excludes: []string{"1/2"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			opts := append([]ProgressOption{WithProgressWriter(&buf), WithBarLength(4)}, tt.opts...)
			p, err := NewProgressBar(2, opts...)
			if err != nil {
				t.Fatalf("NewProgressBar: %v", err)
			}
			p.Increment(1)

			out := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output should contain %q, got %q", want, out)
				}
			}
			for _, not := range tt.excludes {
				if strings.Contains(out, not) {
					t.Errorf("output should not contain %q, got %q", not, out)
				}
			}
		})
	}
}

func TestProgressBarTimeSegment(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	current := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return current }

	p, err := NewProgressBar(4, WithProgressWriter(&buf), WithProgressClock(clock), WithBarLength(4))
	if err != nil {
		t.Fatalf("NewProgressBar: %v", err)
	}

	// Half done after 10s: estimate 10s remaining.
	current = current.Add(10 * time.Second)
	p.Set(2)
	if out := buf.String(); !strings.Contains(out, "[10<10s]") {
		t.Errorf("partial frame should show elapsed<remaining, got %q", out)
	}

	// Complete: only elapsed, one decimal.
	buf.Reset()
	current = current.Add(10 * time.Second)
	p.Set(4)
	if out := buf.String(); !strings.Contains(out, "[20.0s]") {
		t.Errorf("final frame should show only elapsed, got %q", out)
	}
}

func TestProgressBarZeroFrameHasNoTimeSegment(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	p, err := NewProgressBar(4, WithProgressWriter(&buf), WithBarLength(4))
	if err != nil {
		t.Fatalf("NewProgressBar: %v", err)
	}
	p.Set(0)

	if out := buf.String(); strings.Contains(out, "<") || strings.Contains(out, "s]") {
		t.Errorf("0%% frame should omit the time segment, got %q", out)
	}
}

func TestFinish(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	p, err := NewProgressBar(5, WithProgressWriter(&buf), WithBarLength(5))
	if err != nil {
		t.Fatalf("NewProgressBar: %v", err)
	}

	p.Increment(2)
	p.Finish()

	if p.Current() != 5 {
		t.Errorf("Finish should force current to total, got %d", p.Current())
	}
	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Error("Finish must terminate the line with a newline")
	}
	if !strings.Contains(out, "100.0%") {
		t.Errorf("Finish should render the final frame, got %q", out)
	}
}

func TestRunScoped(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	err := Run(3, func(p *ProgressBar) error {
		p.Increment(1)
		return nil
	}, WithProgressWriter(&buf), WithBarLength(3))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	rendered := frames(buf.String())
	if len(rendered) < 3 {
		t.Fatalf("expected initial, update, and final frames, got %q", rendered)
	}
	if fillCount(rendered[0]) != 0 {
		t.Errorf("first frame should be the 0%% frame, got %q", rendered[0])
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("Run must finalize the bar with a newline")
	}
}

func TestRunFinalizesOnError(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	wantErr := errors.New("boom")

	err := Run(3, func(p *ProgressBar) error {
		p.Increment(1)
		return wantErr
	}, WithProgressWriter(&buf))

	if !errors.Is(err, wantErr) {
		t.Errorf("Run should propagate fn's error, got %v", err)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("Run must finalize the bar even when fn fails")
	}
}

func TestRunInvalidTotal(t *testing.T) {
	t.Parallel()
	err := Run(0, func(p *ProgressBar) error { return nil })
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("Run(0) error type = %T, want *ValidationError", err)
	}
}
