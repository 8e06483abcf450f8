package overlay

import (
	"github.com/marquee-cli/marquee/player"
	"github.com/marquee-cli/marquee/util"
)

// HandleMediaEvent applies the session transition named by e.
// Events arriving after Close are dropped.
func (c *Controller) HandleMediaEvent(e player.Event) {
	if c.session == nil {
		return
	}

	switch e.Kind {
	case player.TimeUpdate:
		c.onTimeUpdate()
	case player.LoadedMetadata:
		c.onLoadedMetadata()
	case player.Waiting:
		c.onWaiting()
	case player.Playing:
		c.onPlaying()
	case player.Play:
		c.onPlay()
	case player.Pause:
		c.onPause()
	case player.Progress:
		c.onProgress()
	case player.Error:
		c.fail(e.Err)
	case player.Ended:
		c.onEnded()
	}
}

func (c *Controller) onTimeUpdate() {
	c.session.CurrentTime = c.handle.CurrentTime()
	if d := c.handle.Duration(); util.Finite(d) {
		c.session.Duration = d
	}
}

func (c *Controller) onLoadedMetadata() {
	c.session.Duration = c.handle.Duration()
	c.session.CurrentTime = c.handle.CurrentTime()
}

// onWaiting marks the session buffering until the next Playing, however long that takes.
func (c *Controller) onWaiting() {
	c.session.IsBuffering = true
	c.vis.Resumed()
}

func (c *Controller) onPlaying() {
	c.session.IsBuffering = false
	c.session.IsPlaying = true
	c.session.Errored = false
	c.vis.Resumed()
}

func (c *Controller) onPlay() {
	c.session.IsPlaying = true
	c.vis.Resumed()
}

func (c *Controller) onPause() {
	c.session.IsPlaying = false
	c.vis.Activity()
}

func (c *Controller) onProgress() {
	if !c.opts.EstimateThroughput {
		return
	}
	c.meter.Sample(c.loop.Now(), BufferedEnd(c.handle.Buffered(), c.session.CurrentTime))
}

func (c *Controller) onEnded() {
	c.session.IsPlaying = false
	c.session.IsBuffering = false
	c.vis.Activity()
}

// Snapshot is a read-only view of the controller for rendering.
type Snapshot struct {
	Open      bool
	SessionID string
	ContentID string
	Title     string
	Quality   string
	Source    string
	FellBack  bool
	Errored   bool

	CurrentTime float64
	Duration    float64
	BufferedEnd float64

	IsPlaying   bool
	IsBuffering bool
	Locked      bool

	Volume       float64
	Brightness   float64
	PlaybackRate float64
	Aspect       AspectMode

	// ControlsVisible gates the whole surface; LockVisible the lock affordance alone.
	ControlsVisible bool
	LockVisible     bool

	Seek       SeekFeedback
	Axis       AxisFeedback
	Throughput string

	Fullscreen bool
	Rotated    bool
}

// Snapshot captures the current state. A closed controller yields the zero Snapshot.
func (c *Controller) Snapshot() Snapshot {
	s := c.session
	if s == nil {
		return Snapshot{}
	}

	snap := Snapshot{
		Open:         true,
		SessionID:    s.ID.String(),
		ContentID:    s.ContentID,
		Title:        s.Title,
		Quality:      s.Quality,
		Source:       s.Source,
		FellBack:     s.FellBack,
		Errored:      s.Errored,
		CurrentTime:  s.CurrentTime,
		Duration:     s.Duration,
		BufferedEnd:  BufferedEnd(c.handle.Buffered(), s.CurrentTime),
		IsPlaying:    s.IsPlaying,
		IsBuffering:  s.IsBuffering,
		Locked:       s.Locked,
		Volume:       s.Volume,
		Brightness:   s.Brightness,
		PlaybackRate: s.PlaybackRate,
		Aspect:       s.AspectMode,
		LockVisible:  c.vis.Visible(),
		Seek:         c.seek.Feedback(),
		Axis:         c.axis,
	}

	snap.ControlsVisible = snap.LockVisible && !s.Locked && !snap.Seek.Visible

	if c.opts.EstimateThroughput && s.IsBuffering {
		snap.Throughput = c.meter.Estimate()
	}

	if c.screen != nil {
		snap.Fullscreen = c.screen.Engaged()
		snap.Rotated = c.screen.Rotated()
	}

	return snap
}
