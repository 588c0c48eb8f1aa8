package format

import (
	"fmt"
	"time"
)

// FormatETA renders an estimated time remaining in a compact form.
// Non-positive estimates render as "calculating..." since no rate has been
// established yet; sub-second estimates render as "< 1s".
//
// Parameters:
//   - eta: The estimated remaining duration.
//
// Returns:
//   - string: A compact representation such as "45s", "2m30s", or "1h15m".
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "calculating..."
	}
	if eta < time.Second {
		return "< 1s"
	}

	hours := int(eta.Hours())
	minutes := int(eta.Minutes()) % 60
	seconds := int(eta.Seconds()) % 60

	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh%dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	case minutes > 0 && seconds > 0:
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// EstimateRemaining projects the time left for an operation that has
// completed the given ratio of its work in elapsed time. A ratio outside
// (0, 1) yields 0 since no meaningful projection exists.
func EstimateRemaining(elapsed time.Duration, ratio float64) time.Duration {
	if ratio <= 0 || ratio >= 1 {
		return 0
	}
	return time.Duration(float64(elapsed) / ratio * (1 - ratio))
}
