package overlay

import (
	"context"
	"math"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/player"
)

// fakeHandle records commands and answers queries from plain fields.
type fakeHandle struct {
	loaded   []string
	paused   bool
	position float64
	duration float64
	volume   float64
	rate     float64
	buffered []player.Range
	seeks    []float64
	closed   int

	failLoad  map[string]error
	observers map[int]func(player.Event)
	next      int
}

func newFakeHandle() *fakeHandle {
	return &fakeHandle{
		paused:    true,
		duration:  math.NaN(),
		volume:    1,
		rate:      1,
		failLoad:  map[string]error{},
		observers: map[int]func(player.Event){},
	}
}

func (f *fakeHandle) Load(source, _ string) error {
	if err, ok := f.failLoad[source]; ok {
		return err
	}
	f.loaded = append(f.loaded, source)
	f.position = 0
	f.paused = true
	return nil
}

func (f *fakeHandle) Play() error  { f.paused = false; return nil }
func (f *fakeHandle) Pause() error { f.paused = true; return nil }
func (f *fakeHandle) Paused() bool { return f.paused }

func (f *fakeHandle) Seek(seconds float64) error {
	f.seeks = append(f.seeks, seconds)
	f.position = seconds
	return nil
}

func (f *fakeHandle) CurrentTime() float64 { return f.position }
func (f *fakeHandle) Duration() float64    { return f.duration }

func (f *fakeHandle) Volume() float64 { return f.volume }
func (f *fakeHandle) SetVolume(v float64) error {
	f.volume = v
	return nil
}

func (f *fakeHandle) PlaybackRate() float64 { return f.rate }
func (f *fakeHandle) SetPlaybackRate(rate float64) error {
	f.rate = rate
	return nil
}

func (f *fakeHandle) Buffered() []player.Range { return f.buffered }

func (f *fakeHandle) Observe(fn func(player.Event)) func() {
	id := f.next
	f.next++
	f.observers[id] = fn
	return func() { delete(f.observers, id) }
}

func (f *fakeHandle) Close() error {
	f.closed++
	return nil
}

func (f *fakeHandle) emit(kind player.EventKind) {
	for _, fn := range f.observers {
		fn(player.Event{Kind: kind})
	}
}

// fakeScreen is a platform with every capability; refuse* switches single ones off.
type fakeScreen struct {
	refuseFullscreen  error
	refuseOrientation error

	fullscreenCalls int
	exitCalls       int
	orientation     string
	rotation        int
	brightness      float64
	aspect          string
	width, height   int

	fsWatch func(bool)
	vpWatch func(int, int)
}

func (p *fakeScreen) RequestFullscreen() error {
	p.fullscreenCalls++
	return p.refuseFullscreen
}

func (p *fakeScreen) ExitFullscreen() error {
	p.exitCalls++
	return nil
}

func (p *fakeScreen) LockOrientation(orientation string) error {
	if p.refuseOrientation != nil {
		return p.refuseOrientation
	}
	p.orientation = orientation
	return nil
}

func (p *fakeScreen) OnFullscreenChange(fn func(bool)) func() {
	p.fsWatch = fn
	return func() { p.fsWatch = nil }
}

func (p *fakeScreen) OnViewportChange(fn func(int, int)) func() {
	p.vpWatch = fn
	return func() { p.vpWatch = nil }
}

func (p *fakeScreen) Viewport() (int, int) { return p.width, p.height }

func (p *fakeScreen) SetRotation(degrees int) error {
	p.rotation = degrees
	return nil
}

func (p *fakeScreen) SetBrightness(level float64) error {
	p.brightness = level
	return nil
}

func (p *fakeScreen) SetAspect(mode string) error {
	p.aspect = mode
	return nil
}

// fullscreenOnly can request fullscreen but nothing else.
type fullscreenOnly struct {
	calls int
}

func (p *fullscreenOnly) RequestFullscreen() error {
	p.calls++
	return nil
}

func records(known ...catalog.Record) catalog.Resolver {
	return catalog.ResolverFunc(func(_ context.Context, id string) (catalog.Record, error) {
		for _, r := range known {
			if r.ID == id {
				return r, nil
			}
		}
		return catalog.Record{}, catalog.ErrNotFound
	})
}

const movieURL = "https://cdn.example.com/movie.mp4"

func movie() catalog.Record {
	return catalog.Record{ID: "m1", Title: "Movie", Quality: "HD", MediaURL: movieURL}
}

func testOptions() Options {
	o := DefaultOptions()
	o.Fullscreen = false
	return o
}
