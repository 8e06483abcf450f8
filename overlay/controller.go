package overlay

import (
	"context"
	"errors"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/log"
	"github.com/marquee-cli/marquee/player"
	"github.com/marquee-cli/marquee/util"
	"github.com/sirupsen/logrus"
)

// ErrAlreadyOpen is returned by Open when a session is live.
var ErrAlreadyOpen = errors.New("player already open")

// AxisFeedback is the transient level indicator of a volume or brightness change.
type AxisFeedback struct {
	Visible bool
	Axis    Axis
	Value   float64
}

// Controller owns one playback session and the media handle behind it.
// All methods must be called on the loop the controller was created with.
type Controller struct {
	loop     Loop
	opts     Options
	handle   player.Handle
	resolver catalog.Resolver
	platform any

	// OnClose runs once the player is torn down, so the host can unmount it.
	OnClose func()
	// Notify surfaces a short message to the user.
	Notify func(msg string)

	session *Session
	log     *logrus.Entry

	router *GestureRouter
	seek   *SeekAccumulator
	vis    *Visibility
	screen *Screen
	meter  *ThroughputEstimator

	axis      AxisFeedback
	axisTimer Timer
	enter     Timer
	unobserve func()
	resumed   bool
	closed    bool
}

// New creates a controller for handle. platform may implement any of the
// capability interfaces of this package and may be nil.
func New(loop Loop, handle player.Handle, resolver catalog.Resolver, platform any, opts Options) *Controller {
	c := &Controller{
		loop:      loop,
		opts:      opts,
		handle:    handle,
		resolver:  resolver,
		platform:  platform,
		log:       log.WithFields(log.Fields{}),
		seek:      newSeekAccumulator(loop, opts.SeekDebounce),
		meter:     newThroughputEstimator(opts.SampleInterval, opts.AssumedBitrate),
		axisTimer: noTimer{},
		enter:     noTimer{},
	}

	c.vis = newVisibility(loop, opts.HideAfter, func() bool {
		return c.session != nil && c.session.active()
	})
	c.router = newGestureRouter(loop, opts, c.dispatch, c.locked, c.level)

	return c
}

// Open resolves id and starts playing it. Resolution failures are not
// surfaced: the fallback source plays instead.
func (c *Controller) Open(ctx context.Context, id string) error {
	if c.closed {
		return player.ErrClosed
	}
	if c.session != nil {
		return ErrAlreadyOpen
	}

	return c.OpenRecord(c.Resolve(ctx, id))
}

// Resolve looks id up. A failed lookup yields a record without a source,
// which OpenRecord replaces with the fallback. It touches no session state
// and may run off the loop.
func (c *Controller) Resolve(ctx context.Context, id string) catalog.Record {
	if c.resolver == nil {
		return catalog.Record{ID: id}
	}

	ctx, cancel := context.WithTimeout(ctx, catalog.Timeout())
	defer cancel()

	record, err := c.resolver.Resolve(ctx, id)
	if err != nil {
		log.WithFields(log.Fields{"content": id}).WithError(err).Warn("resolution failed, using fallback source")
		return catalog.Record{ID: id}
	}
	return record
}

// OpenRecord starts playing an already resolved record.
func (c *Controller) OpenRecord(record catalog.Record) error {
	if c.closed {
		return player.ErrClosed
	}
	if c.session != nil {
		return ErrAlreadyOpen
	}

	s := newSession(record.ID)
	s.Title = record.Title
	s.Quality = record.Quality
	s.Source = record.Source()

	switch {
	case c.opts.ForceURL != "":
		s.Source = c.opts.ForceURL
	case s.Source == "":
		s.Source = c.opts.FallbackURL
		s.FellBack = true
	}

	c.session = s
	c.log = log.WithFields(log.Fields{"session": s.ID.String(), "content": s.ContentID})
	if c.opts.ForceURL != "" {
		c.log.WithField("url", c.opts.ForceURL).Warn("forced source overrides the catalog")
	}

	c.unobserve = c.handle.Observe(func(e player.Event) {
		c.loop.Post(func() { c.HandleMediaEvent(e) })
	})

	c.screen = newScreen(c.platform, c.loop, c.log, c.Close)
	c.screen.Attach()

	if v := c.handle.Volume(); util.Finite(v) && v >= 0 && v <= 1 {
		s.Volume = v
	}

	if err := c.load(); err != nil {
		c.fail(err)
	}
	c.vis.Activity()

	if c.opts.Fullscreen {
		c.enter = c.loop.AfterFunc(c.opts.EnterDelay, c.enterFullscreen)
	}

	c.log.WithFields(log.Fields{"title": s.Title, "fallback": s.FellBack}).Info("player opened")
	return nil
}

// load starts the session source from the beginning.
func (c *Controller) load() error {
	s := c.session
	if err := c.handle.Load(s.Source, s.Title); err != nil {
		return err
	}
	if err := c.handle.Play(); err != nil {
		return err
	}

	s.IsPlaying = true
	s.Errored = false
	return nil
}

// fail substitutes the fallback source once, then gives up into a paused error state.
func (c *Controller) fail(cause error) {
	s := c.session
	c.log.WithError(cause).WithField("source", s.Source).Warn("playback failed")

	if !s.FellBack && s.Source != c.opts.FallbackURL {
		s.FellBack = true
		s.Source = c.opts.FallbackURL
		s.CurrentTime = 0

		err := c.load()
		if err == nil {
			c.notify("Source unavailable, playing fallback")
			return
		}
		c.log.WithError(err).Warn("fallback source failed")
	}

	s.Errored = true
	s.IsPlaying = false
	s.IsBuffering = false
	_ = c.handle.Pause()
	c.vis.Activity()
}

func (c *Controller) enterFullscreen() {
	c.enter = noTimer{}
	if c.closed || c.screen == nil {
		return
	}
	_ = c.screen.Enter()
}

// usable reports whether control operations are accepted.
func (c *Controller) usable() bool {
	return c.session != nil && !c.session.Locked
}

func (c *Controller) locked() bool {
	return c.session != nil && c.session.Locked
}

func (c *Controller) level(axis Axis) float64 {
	if c.session == nil {
		return 0
	}
	if axis == AxisVolume {
		return c.session.Volume
	}
	return c.session.Brightness
}

// TogglePlayPause flips play and pause. The first resume retries fullscreen
// when it is not engaged yet. While locked it only counts as activity.
func (c *Controller) TogglePlayPause() {
	s := c.session
	if s == nil {
		return
	}
	if s.Locked {
		c.vis.Activity()
		return
	}

	if s.IsPlaying {
		if err := c.handle.Pause(); err != nil {
			c.log.WithError(err).Warn("pause")
			return
		}
		s.IsPlaying = false
		c.vis.Activity()
		return
	}

	var err error
	if s.Errored {
		err = c.load()
	} else {
		err = c.handle.Play()
	}
	if err != nil {
		c.log.WithError(err).Warn("play")
		return
	}
	s.IsPlaying = true

	if !c.resumed {
		c.resumed = true
		if c.opts.Fullscreen && !c.screen.Engaged() {
			c.enter.Stop()
			c.enterFullscreen()
		}
	}

	c.vis.Activity()
}

// Seek moves playback by amount seconds, negative being backwards.
func (c *Controller) Seek(amount float64) {
	if !c.usable() || !util.Finite(amount) || amount == 0 {
		return
	}

	side := Right
	if amount < 0 {
		side = Left
	}
	c.seekBy(side, amount)
}

func (c *Controller) seekBy(side Side, amount float64) {
	s := c.session

	target := c.seek.Add(side, amount, s.CurrentTime, s.Duration)
	if target != s.CurrentTime {
		if err := c.handle.Seek(target); err != nil {
			c.log.WithError(err).Warn("seek")
			c.seek.Rebase(s.CurrentTime)
		} else {
			s.CurrentTime = target
		}
	}

	c.vis.Activity()
}

// Scrub seeks to an absolute position.
func (c *Controller) Scrub(to float64) {
	if !c.usable() || !util.Finite(to) {
		return
	}

	s := c.session
	c.seek.Reset()
	to = clampPosition(to, s.Duration)
	if err := c.handle.Seek(to); err != nil {
		c.log.WithError(err).Warn("scrub")
	} else {
		s.CurrentTime = to
	}

	c.vis.Activity()
}

func (c *Controller) SetVolume(v float64) {
	if !c.usable() || !util.Finite(v) {
		return
	}
	c.apply(AxisVolume, v)
	c.vis.Activity()
}

// SetBrightness only changes the picture filter, never the media.
func (c *Controller) SetBrightness(v float64) {
	if !c.usable() || !util.Finite(v) {
		return
	}
	c.apply(AxisBrightness, v)
	c.vis.Activity()
}

// AdjustBy moves axis by delta and flashes its level indicator.
func (c *Controller) AdjustBy(axis Axis, delta float64) {
	if !c.usable() || !util.Finite(delta) {
		return
	}
	c.showAxis(axis, c.apply(axis, c.level(axis)+delta))
	c.lingerAxis()
	c.vis.Activity()
}

// apply sets a clamped level and returns it.
func (c *Controller) apply(axis Axis, v float64) float64 {
	s := c.session
	v = util.Clamp(v, 0, 1)

	if axis == AxisVolume {
		if err := c.handle.SetVolume(v); err != nil {
			c.log.WithError(err).Warn("set volume")
			return s.Volume
		}
		s.Volume = v
		return v
	}

	s.Brightness = v
	if f, ok := c.platform.(VisualFilter); ok {
		if err := f.SetBrightness(v); err != nil {
			c.log.WithError(err).Debug("brightness filter")
		}
	}
	return v
}

func (c *Controller) CyclePlaybackRate() {
	if !c.usable() {
		return
	}

	s := c.session
	rate := next(PlaybackRates, s.PlaybackRate)
	if err := c.handle.SetPlaybackRate(rate); err != nil {
		c.log.WithError(err).Warn("set playback rate")
		return
	}
	s.PlaybackRate = rate

	c.vis.Activity()
}

func (c *Controller) CycleAspectRatio() {
	if !c.usable() {
		return
	}

	s := c.session
	s.AspectMode = next(AspectModes, s.AspectMode)
	if f, ok := c.platform.(AspectFitter); ok {
		if err := f.SetAspect(string(s.AspectMode)); err != nil {
			c.log.WithError(err).Debug("aspect mode")
		}
	}

	c.vis.Activity()
}

// ToggleLock is always accepted.
func (c *Controller) ToggleLock() {
	s := c.session
	if s == nil {
		return
	}

	s.Locked = !s.Locked
	c.router.Reset()
	// A drag cut short never reports its release.
	if c.axis.Visible {
		c.lingerAxis()
	}
	c.vis.SetLocked(s.Locked)
	c.log.WithField("locked", s.Locked).Debug("lock toggled")
}

// SelectAudioTrack is a placeholder: only the default track is played.
func (c *Controller) SelectAudioTrack() {
	if !c.usable() {
		return
	}
	c.notify("Only the default audio track is available")
	c.vis.Activity()
}

// Activity shows the controls and restarts their countdown. Accepted while locked.
func (c *Controller) Activity() {
	if c.session == nil {
		return
	}
	c.vis.Activity()
}

// Resize sets the surface width the pointer coordinates refer to.
func (c *Controller) Resize(width float64) {
	c.router.Resize(width)
}

func (c *Controller) PointerDown(p Point) {
	if c.session != nil {
		c.router.Down(p)
	}
}

func (c *Controller) PointerMove(p Point) {
	if c.session != nil {
		c.router.Move(p)
	}
}

func (c *Controller) PointerUp(p Point) {
	if c.session != nil {
		c.router.Up(p)
	}
}

// Hover is pointer movement without a press.
func (c *Controller) Hover() {
	if c.session != nil {
		c.router.Hover()
	}
}

func (c *Controller) dispatch(cmd Command) {
	if c.session == nil {
		return
	}

	switch cmd.Kind {
	case CmdToggleVisibility:
		c.vis.Toggle()
	case CmdSeekBy:
		if c.usable() {
			c.seekBy(cmd.Side, cmd.Amount)
		}
	case CmdAdjustAxis:
		if c.usable() {
			c.showAxis(cmd.Axis, c.apply(cmd.Axis, cmd.Value))
			c.vis.Activity()
		}
	case CmdAdjustDone:
		c.lingerAxis()
	case CmdActivity:
		c.vis.Activity()
	}
}

func (c *Controller) showAxis(axis Axis, value float64) {
	c.axisTimer.Stop()
	c.axis = AxisFeedback{Visible: true, Axis: axis, Value: value}
}

func (c *Controller) lingerAxis() {
	c.axisTimer.Stop()
	c.axisTimer = c.loop.AfterFunc(c.opts.AxisLinger, func() {
		c.axis.Visible = false
	})
}

func (c *Controller) notify(msg string) {
	if c.Notify != nil {
		c.Notify(msg)
	}
}

// Close tears the player down: timers first, then observers, fullscreen and
// finally the media handle. It is idempotent.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true

	c.enter.Stop()
	c.vis.Stop()
	c.seek.Reset()
	c.router.Reset()
	c.axisTimer.Stop()

	if c.unobserve != nil {
		c.unobserve()
		c.unobserve = nil
	}

	if c.screen != nil {
		c.screen.Detach()
		c.screen.Exit()
	}

	if err := c.handle.Close(); err != nil {
		c.log.WithError(err).Warn("release player")
	}

	c.session = nil
	c.log.Info("player closed")

	if c.OnClose != nil {
		c.OnClose()
	}
}

// Closed reports whether Close has run.
func (c *Controller) Closed() bool {
	return c.closed
}
