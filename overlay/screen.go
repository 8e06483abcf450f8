package overlay

import (
	"github.com/sirupsen/logrus"
)

const landscape = "landscape"

// Screen drives the best-effort fullscreen and landscape transition.
// No failure here is fatal: every step degrades to the next one or to nothing.
type Screen struct {
	platform any
	loop     Loop
	log      *logrus.Entry

	engaged bool
	rotated bool
	leaving bool

	// onExit runs when fullscreen is left from outside the controller.
	onExit  func()
	cancels []func()
}

func newScreen(platform any, loop Loop, entry *logrus.Entry, onExit func()) *Screen {
	return &Screen{
		platform: platform,
		loop:     loop,
		log:      entry,
		onExit:   onExit,
	}
}

// Attach subscribes to the platform's fullscreen and viewport notifications.
func (s *Screen) Attach() {
	if w, ok := s.platform.(FullscreenWatcher); ok {
		s.cancels = append(s.cancels, w.OnFullscreenChange(func(fullscreen bool) {
			s.loop.Post(func() { s.fullscreenChanged(fullscreen) })
		}))
	}

	if w, ok := s.platform.(ViewportWatcher); ok {
		s.cancels = append(s.cancels, w.OnViewportChange(func(width, height int) {
			s.loop.Post(func() { s.viewportChanged(width, height) })
		}))
	}
}

// Detach drops every subscription made by Attach.
func (s *Screen) Detach() {
	for _, cancel := range s.cancels {
		cancel()
	}
	s.cancels = nil
}

// Enter requests fullscreen, then a landscape lock, then falls back to
// rotating the picture. The returned error only describes the fullscreen request.
func (s *Screen) Enter() error {
	if s.leaving {
		return nil
	}

	req, ok := s.platform.(FullscreenRequester)
	if !ok {
		s.log.Debug("fullscreen unavailable")
		return ErrUnsupported
	}

	if err := req.RequestFullscreen(); err != nil {
		s.log.WithError(err).Warn("fullscreen request refused")
		return err
	}
	s.engaged = true

	if locker, ok := s.platform.(OrientationLocker); ok {
		err := locker.LockOrientation(landscape)
		if err == nil {
			return nil
		}
		s.log.WithError(err).Debug("orientation lock refused")
	}

	if r, ok := s.platform.(ViewportReporter); ok {
		if w, h := r.Viewport(); w > h {
			return nil
		}
	}

	s.rotate(true)
	return nil
}

// Exit leaves fullscreen and undoes the rotation fallback. Later
// notifications are ignored, so Exit does not trigger onExit.
func (s *Screen) Exit() {
	s.leaving = true

	if s.rotated {
		s.rotate(false)
	}

	if !s.engaged {
		return
	}
	s.engaged = false

	if exiter, ok := s.platform.(FullscreenExiter); ok {
		if err := exiter.ExitFullscreen(); err != nil {
			s.log.WithError(err).Debug("exit fullscreen")
		}
	}
}

func (s *Screen) Engaged() bool {
	return s.engaged
}

// Rotated reports whether the rotation fallback is in effect.
func (s *Screen) Rotated() bool {
	return s.rotated
}

// rotate swaps the layout and forwards the turn to the platform when it can rotate the picture.
func (s *Screen) rotate(on bool) {
	s.rotated = on

	r, ok := s.platform.(Rotator)
	if !ok {
		s.log.Debug("picture rotation unavailable, layout only")
		return
	}

	degrees := 0
	if on {
		degrees = 90
	}
	if err := r.SetRotation(degrees); err != nil {
		s.log.WithError(err).Debug("rotate picture")
	}
}

func (s *Screen) fullscreenChanged(fullscreen bool) {
	if s.leaving {
		return
	}

	if fullscreen {
		s.engaged = true
		return
	}

	if !s.engaged {
		return
	}

	s.engaged = false
	s.log.Info("fullscreen left externally, closing")
	if s.onExit != nil {
		s.onExit()
	}
}

func (s *Screen) viewportChanged(width, height int) {
	if s.rotated && width > height {
		s.rotate(false)
	}
}
