package overlay

import (
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFullscreen(t *testing.T) {
	Convey("Given a player that enters fullscreen on open", t, func() {
		loop := NewManualLoop()
		handle := newFakeHandle()
		opts := testOptions()
		opts.Fullscreen = true
		screen := &fakeScreen{width: 600, height: 800}

		Convey("Fullscreen and the landscape lock follow the enter delay", func() {
			c := openMovie(loop, handle, screen, opts)
			loop.Advance(599 * time.Millisecond)
			So(screen.fullscreenCalls, ShouldEqual, 0)

			loop.Advance(time.Millisecond)
			So(screen.fullscreenCalls, ShouldEqual, 1)
			So(screen.orientation, ShouldEqual, "landscape")
			So(c.Snapshot().Fullscreen, ShouldBeTrue)
			So(c.Snapshot().Rotated, ShouldBeFalse)
		})

		Convey("A refused orientation lock rotates the picture instead", func() {
			screen.refuseOrientation = errors.New("not allowed")
			c := openMovie(loop, handle, screen, opts)
			loop.Advance(opts.EnterDelay)
			So(screen.rotation, ShouldEqual, 90)
			So(c.Snapshot().Rotated, ShouldBeTrue)

			Convey("Until the viewport turns landscape by itself", func() {
				screen.vpWatch(800, 600)
				So(screen.rotation, ShouldEqual, 0)
				So(c.Snapshot().Rotated, ShouldBeFalse)
			})
		})

		Convey("A viewport that is already landscape needs no rotation", func() {
			screen.refuseOrientation = errors.New("not allowed")
			screen.width, screen.height = 1920, 1080
			c := openMovie(loop, handle, screen, opts)
			loop.Advance(opts.EnterDelay)
			So(c.Snapshot().Rotated, ShouldBeFalse)
			So(c.Snapshot().Fullscreen, ShouldBeTrue)
		})

		Convey("A refused fullscreen skips the orientation entirely", func() {
			screen.refuseFullscreen = errors.New("denied")
			c := openMovie(loop, handle, screen, opts)
			loop.Advance(opts.EnterDelay)
			So(screen.orientation, ShouldBeEmpty)
			So(screen.rotation, ShouldEqual, 0)
			So(c.Snapshot().Fullscreen, ShouldBeFalse)

			Convey("And the first resume tries again", func() {
				c.TogglePlayPause()
				c.TogglePlayPause()
				So(screen.fullscreenCalls, ShouldEqual, 2)
				c.TogglePlayPause()
				c.TogglePlayPause()
				So(screen.fullscreenCalls, ShouldEqual, 2)
			})
		})

		Convey("A platform with fullscreen alone still engages", func() {
			only := &fullscreenOnly{}
			c := openMovie(loop, handle, only, opts)
			loop.Advance(opts.EnterDelay)
			So(only.calls, ShouldEqual, 1)
			So(c.Snapshot().Fullscreen, ShouldBeTrue)

			Convey("And swaps the layout without a picture rotator", func() {
				So(c.Snapshot().Rotated, ShouldBeTrue)

				c.Close()
				So(c.Snapshot().Rotated, ShouldBeFalse)
			})
		})

		Convey("Without any capability nothing happens", func() {
			c := openMovie(loop, handle, nil, opts)
			loop.Advance(opts.EnterDelay)
			So(c.Snapshot().Fullscreen, ShouldBeFalse)
		})

		Convey("Leaving fullscreen from outside closes the player", func() {
			c := openMovie(loop, handle, screen, opts)
			closed := 0
			c.OnClose = func() { closed++ }

			loop.Advance(opts.EnterDelay)
			screen.fsWatch(true)
			screen.fsWatch(false)

			So(c.Closed(), ShouldBeTrue)
			So(closed, ShouldEqual, 1)
			So(handle.closed, ShouldEqual, 1)
		})

		Convey("Closing exits fullscreen without reporting an external exit", func() {
			c := openMovie(loop, handle, screen, opts)
			closed := 0
			c.OnClose = func() { closed++ }

			loop.Advance(opts.EnterDelay)
			c.Close()
			So(screen.exitCalls, ShouldEqual, 1)
			So(closed, ShouldEqual, 1)
		})

		Convey("Brightness and aspect reach the platform filters", func() {
			c := openMovie(loop, handle, screen, opts)
			c.SetBrightness(0.2)
			c.CycleAspectRatio()
			So(screen.brightness, ShouldEqual, 0.2)
			So(screen.aspect, ShouldEqual, "Fill")
			So(handle.volume, ShouldEqual, 1)
		})
	})
}
