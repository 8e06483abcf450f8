package overlay

import (
	"fmt"
	"math"
	"time"

	"github.com/marquee-cli/marquee/player"
)

const (
	kib = 1024
	mib = 1024 * kib
)

// ThroughputEstimator guesses the download rate from how fast the buffered
// range grows, assuming a constant bitrate. It is a display aid only.
type ThroughputEstimator struct {
	interval time.Duration
	bitrate  float64

	sampled  bool
	lastEnd  float64
	lastAt   time.Time
	estimate string
}

func newThroughputEstimator(interval time.Duration, bitrate float64) *ThroughputEstimator {
	return &ThroughputEstimator{interval: interval, bitrate: bitrate}
}

// Sample feeds the buffered end position observed at the given instant.
// Samples closer than the interval to the previous one are ignored.
func (t *ThroughputEstimator) Sample(at time.Time, bufferedEnd float64) {
	if !t.sampled {
		t.sampled = true
		t.lastEnd, t.lastAt = bufferedEnd, at
		return
	}

	elapsed := at.Sub(t.lastAt)
	if elapsed < t.interval {
		return
	}

	growth := bufferedEnd - t.lastEnd
	t.lastEnd, t.lastAt = bufferedEnd, at

	// The buffer moved backwards after a seek; start a new baseline.
	if growth < 0 {
		return
	}

	t.estimate = FormatRate(growth * t.bitrate / 8 / elapsed.Seconds())
}

// Estimate is the last formatted rate, empty before the first estimate.
func (t *ThroughputEstimator) Estimate() string {
	return t.estimate
}

// FormatRate renders bytes per second as KB/s below one MiB/s and MB/s above.
func FormatRate(bytesPerSecond float64) string {
	if bytesPerSecond < mib {
		return fmt.Sprintf("%d KB/s", int(math.Round(bytesPerSecond/kib)))
	}
	return fmt.Sprintf("%.1f MB/s", bytesPerSecond/mib)
}

// BufferedEnd is the end of the range holding position, or of the last range otherwise.
func BufferedEnd(ranges []player.Range, position float64) float64 {
	if len(ranges) == 0 {
		return 0
	}
	for _, r := range ranges {
		if position >= r.Start && position <= r.End {
			return r.End
		}
	}
	return ranges[len(ranges)-1].End
}
