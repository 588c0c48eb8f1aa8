package widget

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer is a goroutine-safe buffer for capturing spinner output.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// MockIndicator records lifecycle calls for orchestration tests.
type MockIndicator struct {
	started bool
	stopped bool
	message string
}

func (m *MockIndicator) Start() { m.started = true }
func (m *MockIndicator) Stop()  { m.stopped = true }
func (m *MockIndicator) UpdateMessage(message string) {
	m.message = message
}

func TestSpinnerImplementsIndicator(t *testing.T) {
	t.Parallel()
	var _ Indicator = NewSpinner()
	var _ Indicator = &MockIndicator{}
}

func TestSpinnerLifecycle(t *testing.T) {
	t.Parallel()
	out := &syncBuffer{}
	sp := NewSpinner(
		WithMessage("working"),
		WithDelay(5*time.Millisecond),
		WithWriter(out),
	)

	if sp.Active() {
		t.Fatal("spinner should be idle before Start")
	}

	sp.Start()
	if !sp.Active() {
		t.Fatal("spinner should be active after Start")
	}

	time.Sleep(30 * time.Millisecond)
	sp.Stop()

	if sp.Active() {
		t.Error("spinner should be inactive after Stop")
	}
	if got := out.String(); !strings.Contains(got, "working") {
		t.Errorf("spinner output should contain the message, got %q", got)
	}
}

func TestSpinnerMessageSwap(t *testing.T) {
	t.Parallel()
	out := &syncBuffer{}
	sp := NewSpinner(
		WithMessage("phase one"),
		WithDelay(5*time.Millisecond),
		WithWriter(out),
	)

	sp.Start()
	time.Sleep(20 * time.Millisecond)
	sp.UpdateMessage("phase two")
	time.Sleep(30 * time.Millisecond)
	sp.Stop()

	got := out.String()
	if !strings.Contains(got, "phase two") {
		t.Errorf("swapped message should appear within a tick, got %q", got)
	}
}

func TestSpinnerCustomFrames(t *testing.T) {
	t.Parallel()
	out := &syncBuffer{}
	sp := NewSpinner(
		WithFrames([]string{"-", "\\", "|", "/"}),
		WithDelay(5*time.Millisecond),
		WithWriter(out),
	)

	sp.Start()
	time.Sleep(40 * time.Millisecond)
	sp.Stop()

	got := out.String()
	if !strings.ContainsAny(got, `-\|/`) {
		t.Errorf("output should contain a custom frame glyph, got %q", got)
	}
}

func TestSpinnerDoubleStartStop(t *testing.T) {
	t.Parallel()
	sp := NewSpinner(WithDelay(5*time.Millisecond), WithWriter(&syncBuffer{}))

	// Repeated transitions must not panic or leak a second redraw goroutine.
	sp.Start()
	sp.Start()
	sp.Stop()
	sp.Stop()

	if sp.Active() {
		t.Error("spinner should be inactive after Stop")
	}
}

func TestWithSpinnerScoped(t *testing.T) {
	t.Parallel()
	out := &syncBuffer{}
	var updated bool

	err := WithSpinner("scoped", func(update func(string)) error {
		update("midway")
		updated = true
		time.Sleep(20 * time.Millisecond)
		return nil
	}, WithDelay(5*time.Millisecond), WithWriter(out))

	if err != nil {
		t.Fatalf("WithSpinner: %v", err)
	}
	if !updated {
		t.Error("fn should have run")
	}
}

func TestWithSpinnerPropagatesError(t *testing.T) {
	t.Parallel()
	wantErr := errors.New("task failed")

	err := WithSpinner("doomed", func(update func(string)) error {
		return wantErr
	}, WithDelay(5*time.Millisecond), WithWriter(&syncBuffer{}))

	if !errors.Is(err, wantErr) {
		t.Errorf("WithSpinner should propagate fn's error, got %v", err)
	}
}
