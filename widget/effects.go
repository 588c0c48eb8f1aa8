package widget

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jpratte/qol/ansi"
)

// sleep is swapped out by tests to avoid real delays.
var sleep = time.Sleep

// Countdown writes a per-second countdown on a single overwritten line, then
// replaces it with endMessage. It blocks the caller for the full duration;
// there is no cancellation short of process termination.
func Countdown(w io.Writer, seconds int, message, endMessage string) {
	for i := seconds; i > 0; i-- {
		fmt.Fprintf(w, "\r%s: %s sec.   ", message, ansi.Colorize(ansi.Yellow, fmt.Sprintf("%d", i)))
		sleep(time.Second)
	}
	fmt.Fprintf(w, "\r%s%s\n", endMessage, strings.Repeat(" ", 20))
}

// TypingEffect writes text one character at a time in the given color,
// pausing longer after any character in pauseChars. Like Countdown, it
// blocks until the full text has been written.
func TypingEffect(w io.Writer, text string, speed time.Duration, color string, pauseChars string, pauseDuration time.Duration) {
	for _, r := range text {
		fmt.Fprint(w, ansi.Colorize(color, string(r)))
		if strings.ContainsRune(pauseChars, r) {
			sleep(pauseDuration)
		} else {
			sleep(speed)
		}
	}
	fmt.Fprintln(w)
}
