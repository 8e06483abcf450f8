package player

import (
	"fmt"
	"math"
)

// The methods below expose the mpv window as the rendering surface of the
// player. mpv has no notion of a screen orientation lock, so callers relying
// on one have to fall back to rotating the picture.

// RequestFullscreen puts the video window into fullscreen.
func (m *MPV) RequestFullscreen() error {
	return m.set("fullscreen", true)
}

// ExitFullscreen leaves fullscreen. It is a no-op once the handle is closed.
func (m *MPV) ExitFullscreen() error {
	if m.isClosed() {
		return nil
	}
	return m.set("fullscreen", false)
}

// IsFullscreen reports the last observed fullscreen state.
func (m *MPV) IsFullscreen() bool {
	m.state.mu.RLock()
	defer m.state.mu.RUnlock()
	return m.state.fullscreen
}

// Viewport returns the last observed window size in pixels, zero until mpv reports one.
func (m *MPV) Viewport() (width, height int) {
	m.state.mu.RLock()
	defer m.state.mu.RUnlock()
	return m.state.width, m.state.height
}

// OnFullscreenChange registers fn for fullscreen transitions, including those made by the user in the mpv window.
func (m *MPV) OnFullscreenChange(fn func(fullscreen bool)) (cancel func()) {
	m.obsMu.Lock()
	defer m.obsMu.Unlock()

	id := m.nextID
	m.nextID++
	m.fsWatchers[id] = fn

	return func() {
		m.obsMu.Lock()
		defer m.obsMu.Unlock()
		delete(m.fsWatchers, id)
	}
}

// OnViewportChange registers fn for window size changes in pixels.
func (m *MPV) OnViewportChange(fn func(width, height int)) (cancel func()) {
	m.obsMu.Lock()
	defer m.obsMu.Unlock()

	id := m.nextID
	m.nextID++
	m.vpWatchers[id] = fn

	return func() {
		m.obsMu.Lock()
		defer m.obsMu.Unlock()
		delete(m.vpWatchers, id)
	}
}

// SetRotation rotates the picture clockwise by the given multiple of 90 degrees.
func (m *MPV) SetRotation(degrees int) error {
	degrees = ((degrees % 360) + 360) % 360
	if degrees%90 != 0 {
		return fmt.Errorf("rotation must be a multiple of 90, got %d", degrees)
	}
	return m.set("video-rotate", degrees)
}

// SetBrightness applies a visual brightness filter. level 0.5 is neutral;
// 0 halves and 1 amplifies the picture by half.
func (m *MPV) SetBrightness(level float64) error {
	return m.set("brightness", BrightnessProperty(level))
}

// BrightnessProperty maps a 0..1 filter level onto mpv's -100..100 brightness.
func BrightnessProperty(level float64) int {
	return int(math.Round((level - 0.5) * 100))
}

// aspectProperties describes how each aspect mode maps onto mpv's scaling properties.
var aspectProperties = map[string]map[string]interface{}{
	"Fit":      {"keepaspect": true, "panscan": 0.0, "video-unscaled": "no", "video-aspect-override": "no"},
	"Fill":     {"keepaspect": true, "panscan": 1.0, "video-unscaled": "no", "video-aspect-override": "no"},
	"Original": {"keepaspect": true, "panscan": 0.0, "video-unscaled": "yes", "video-aspect-override": "no"},
	"Stretch":  {"keepaspect": false, "panscan": 0.0, "video-unscaled": "no", "video-aspect-override": "no"},
	"16:9":     {"keepaspect": true, "panscan": 0.0, "video-unscaled": "no", "video-aspect-override": "16:9"},
}

// SetAspect fits the picture into the window according to mode.
func (m *MPV) SetAspect(mode string) error {
	props, ok := aspectProperties[mode]
	if !ok {
		return fmt.Errorf("unknown aspect mode %q", mode)
	}

	for _, name := range []string{"keepaspect", "panscan", "video-unscaled", "video-aspect-override"} {
		if err := m.set(name, props[name]); err != nil {
			return fmt.Errorf("aspect %s: %w", mode, err)
		}
	}
	return nil
}
