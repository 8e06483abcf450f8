package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFormatRate(t *testing.T) {
	Convey("Playback rates drop trailing zeros", t, func() {
		So(formatRate(1), ShouldEqual, "1x")
		So(formatRate(1.25), ShouldEqual, "1.25x")
		So(formatRate(1.5), ShouldEqual, "1.5x")
		So(formatRate(0.5), ShouldEqual, "0.5x")
	})
}

func TestToSurface(t *testing.T) {
	Convey("Cells map to the center of their surface area", t, func() {
		p := toSurface(0, 0)
		So(p.X, ShouldEqual, 4)
		So(p.Y, ShouldEqual, 8)

		p = toSurface(10, 2)
		So(p.X, ShouldEqual, 84)
		So(p.Y, ShouldEqual, 40)
	})
}

func TestListItem(t *testing.T) {
	Convey("Given a rendition", t, func() {
		item := &listItem{link: catalog.Link{URL: "https://cdn.example.com/a/b.mp4", Label: "1080p", Size: "2 GB"}}

		Convey("It is labelled by quality and served host", func() {
			So(item.FilterValue(), ShouldEqual, "1080p")
			So(item.Title(), ShouldContainSubstring, "2 GB")
			So(item.Description(), ShouldEqual, "cdn.example.com")
		})

		Convey("A missing label reads HD", func() {
			item.link.Label = ""
			So(item.FilterValue(), ShouldEqual, "HD")
		})
	})
}

func TestKeymap(t *testing.T) {
	Convey("Given the player keymap", t, func() {
		k := newStatefulKeymap()
		k.setState(playerState)

		helpKeys := func() []string {
			return lo.Map(k.ShortHelp(), func(b key.Binding, _ int) string { return b.Help().Key })
		}

		Convey("Playback controls are offered while unlocked", func() {
			So(helpKeys(), ShouldContain, "space")
		})

		Convey("Only unlocking and closing are offered while locked", func() {
			k.locked = true
			So(helpKeys(), ShouldResemble, []string{"L", "q"})
			So(k.ShortHelp()[0].Help().Desc, ShouldEqual, "unlock")
		})
	})
}
