package overlay

import (
	"math"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// AspectMode is the fitting strategy applied to the rendered picture.
type AspectMode string

const (
	AspectFit      AspectMode = "Fit"
	AspectFill     AspectMode = "Fill"
	AspectOriginal AspectMode = "Original"
	AspectStretch  AspectMode = "Stretch"
	AspectWide     AspectMode = "16:9"
)

// AspectModes is the cycling order of CycleAspectRatio.
var AspectModes = []AspectMode{AspectFit, AspectFill, AspectOriginal, AspectStretch, AspectWide}

// PlaybackRates is the cycling order of CyclePlaybackRate.
var PlaybackRates = []float64{1, 1.25, 1.5, 2, 0.5}

// next returns the element after cur in order, wrapping around.
// An unknown cur restarts the cycle.
func next[T comparable](order []T, cur T) T {
	i := lo.IndexOf(order, cur)
	return order[(i+1)%len(order)]
}

// Session is the state of one open player.
type Session struct {
	ID        uuid.UUID
	ContentID string
	Title     string
	Quality   string
	Source    string
	// FellBack is set once the fallback source has been substituted.
	FellBack bool

	CurrentTime float64
	Duration    float64

	IsPlaying   bool
	IsBuffering bool
	Errored     bool
	Locked      bool

	Volume       float64
	Brightness   float64
	PlaybackRate float64
	AspectMode   AspectMode
}

func newSession(contentID string) *Session {
	return &Session{
		ID:           uuid.New(),
		ContentID:    contentID,
		Duration:     math.NaN(),
		Volume:       1,
		Brightness:   0.5,
		PlaybackRate: 1,
		AspectMode:   AspectFit,
	}
}

// active reports whether the visibility countdown may run.
func (s *Session) active() bool {
	return s.IsPlaying || s.IsBuffering
}
