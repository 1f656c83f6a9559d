package bench

import (
	"fmt"
	"slices"
	"time"
)

// Measure runs fn and returns how long it took. time.Since reads the
// monotonic clock, so wall-clock adjustments do not skew the result.
func Measure(fn func() error) (time.Duration, error) {
	start := time.Now()
	err := fn()
	return time.Since(start), err
}

// ToMilliseconds converts d for display.
func ToMilliseconds(d time.Duration) float64 {
	return float64(d) / 1_000_000
}

// FormatMillis renders ms with two decimals, e.g. "1.50 ms".
func FormatMillis(ms float64) string {
	return fmt.Sprintf("%.2f ms", ms)
}

// Median sorts a copy of samples and averages the elements at len/2 and
// (len-1)/2, which are the same element for odd lengths. The average is
// truncated to whole nanoseconds. An empty slice yields 0.
func Median(samples []time.Duration) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	n := len(sorted)
	lo, hi := sorted[(n-1)/2], sorted[n/2]
	return lo + (hi-lo)/2
}
