package cmd

import (
	"testing"

	"github.com/marquee-cli/marquee/config"
	"github.com/marquee-cli/marquee/key"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseValue(t *testing.T) {
	Convey("Values take the type of the default", t, func() {
		v, err := parseValue(config.Default[key.GestureSeekStep], []string{"15"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 15)

		v, err = parseValue(config.Default[key.PlayerFullscreen], []string{"false"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, false)

		v, err = parseValue(config.Default[key.PlayerForceURL], []string{"https://cdn.example.com/a.mp4"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "https://cdn.example.com/a.mp4")
	})

	Convey("Malformed values are rejected", t, func() {
		_, err := parseValue(config.Default[key.OverlayHideAfter], []string{"soon"})
		So(err, ShouldNotBeNil)

		_, err = parseValue(config.Default[key.OverlayHideAfter], []string{"-1"})
		So(err, ShouldNotBeNil)

		_, err = parseValue(config.Default[key.LogsWrite], []string{"maybe"})
		So(err, ShouldNotBeNil)

		_, err = parseValue(config.Default[key.LogsWrite], nil)
		So(err, ShouldNotBeNil)
	})
}

func TestUnknownKey(t *testing.T) {
	Convey("The nearest key is suggested", t, func() {
		err := errUnknownKey("gesture.seek_stp")
		So(err.Error(), ShouldContainSubstring, key.GestureSeekStep)
	})
}
