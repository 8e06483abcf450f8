package overlay

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestManualLoop(t *testing.T) {
	Convey("Given a manual loop", t, func() {
		loop := NewManualLoop()
		start := loop.Now()
		var fired []string

		Convey("Timers fire in deadline order", func() {
			loop.AfterFunc(2*time.Second, func() { fired = append(fired, "b") })
			loop.AfterFunc(time.Second, func() { fired = append(fired, "a") })
			loop.Advance(3 * time.Second)
			So(fired, ShouldResemble, []string{"a", "b"})
			So(loop.Now(), ShouldEqual, start.Add(3*time.Second))
		})

		Convey("A stopped timer never fires and stopping twice is harmless", func() {
			timer := loop.AfterFunc(time.Second, func() { fired = append(fired, "x") })
			timer.Stop()
			timer.Stop()
			loop.Advance(time.Minute)
			So(fired, ShouldBeEmpty)
			So(loop.Pending(), ShouldEqual, 0)
		})

		Convey("Timers scheduled by callbacks run within the same advance", func() {
			loop.AfterFunc(time.Second, func() {
				fired = append(fired, "outer")
				loop.AfterFunc(time.Second, func() { fired = append(fired, "inner") })
			})
			loop.Advance(1500 * time.Millisecond)
			So(fired, ShouldResemble, []string{"outer"})
			loop.Advance(500 * time.Millisecond)
			So(fired, ShouldResemble, []string{"outer", "inner"})
		})

		Convey("Callbacks observe their own deadline", func() {
			var at time.Time
			loop.AfterFunc(time.Second, func() { at = loop.Now() })
			loop.Advance(time.Hour)
			So(at, ShouldEqual, start.Add(time.Second))
		})
	})
}
