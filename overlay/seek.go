package overlay

import (
	"math"
	"time"

	"github.com/marquee-cli/marquee/util"
)

// SeekFeedback is the transient on-screen delta of a seek burst.
type SeekFeedback struct {
	Visible bool
	Side    Side
	// Total is the signed sum of the gestures, not of the clamped result.
	Total float64
}

// SeekAccumulator coalesces a burst of relative seeks on one side into a
// running total for display. The seeks themselves apply immediately; the
// burst ends after a quiet period without a seek on the same side.
type SeekAccumulator struct {
	loop     Loop
	debounce time.Duration
	quiet    Timer

	active bool
	side   Side
	total  float64
	// target is the last position handed out during the burst.
	target float64
}

func newSeekAccumulator(loop Loop, debounce time.Duration) *SeekAccumulator {
	return &SeekAccumulator{loop: loop, debounce: debounce, quiet: noTimer{}}
}

// Add records a seek of amount seconds and returns the absolute position
// it lands on, clamped to the media. The first seek of a burst starts from
// now; later ones start from the previous target, so position reports that
// predate the engine's seek do not shift the chain. duration may be NaN
// while unknown, in which case only the lower bound applies.
func (s *SeekAccumulator) Add(side Side, amount, now, duration float64) float64 {
	from := now
	if s.active {
		from = s.target
	}

	if s.active && s.side == side {
		s.total += amount
	} else {
		s.active = true
		s.side = side
		s.total = amount
	}

	s.quiet.Stop()
	s.quiet = s.loop.AfterFunc(s.debounce, s.Reset)

	s.target = clampPosition(from+amount, duration)
	return s.target
}

// Rebase moves the burst origin to position, for when a target was not applied.
func (s *SeekAccumulator) Rebase(position float64) {
	s.target = position
}

// Feedback describes the burst in progress.
func (s *SeekAccumulator) Feedback() SeekFeedback {
	return SeekFeedback{Visible: s.active, Side: s.side, Total: s.total}
}

// Reset ends the burst and cancels its quiet period.
func (s *SeekAccumulator) Reset() {
	s.quiet.Stop()
	s.active = false
	s.total = 0
}

func clampPosition(t, duration float64) float64 {
	if util.Finite(duration) && duration > 0 {
		return util.Clamp(t, 0, duration)
	}
	return math.Max(t, 0)
}
