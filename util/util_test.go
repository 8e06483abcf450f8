package util

import (
	"math"
	"testing"

	"github.com/marquee-cli/marquee/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("cache"), ShouldEqual, "Cache")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestClamp(t *testing.T) {
	Convey("Clamp", t, func() {
		So(Clamp(1.4, 0, 1), ShouldEqual, 1.0)
		So(Clamp(-0.2, 0, 1), ShouldEqual, 0.0)
		So(Clamp(0.37, 0, 1), ShouldEqual, 0.37)
		So(Clamp(7, 0, 5), ShouldEqual, 5)
	})
}

func TestFormatClock(t *testing.T) {
	Convey("FormatClock", t, func() {
		Convey("Should use m:ss under an hour", func() {
			So(FormatClock(0), ShouldEqual, "0:00")
			So(FormatClock(65.9), ShouldEqual, "1:05")
			So(FormatClock(3599), ShouldEqual, "59:59")
		})

		Convey("Should use h:mm:ss from an hour", func() {
			So(FormatClock(3600), ShouldEqual, "1:00:00")
			So(FormatClock(5025), ShouldEqual, "1:23:45")
		})

		Convey("Should render unknown values as zero", func() {
			So(FormatClock(math.NaN()), ShouldEqual, "0:00")
			So(FormatClock(math.Inf(1)), ShouldEqual, "0:00")
			So(FormatClock(-4), ShouldEqual, "0:00")
		})
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()

		Convey("Should remove directories recursively", func() {
			So(fs.MkdirAll("/cache/nested", 0o755), ShouldBeNil)
			So(fs.WriteFile("/cache/nested/a.json", []byte("{}"), 0o644), ShouldBeNil)
			So(Delete("/cache"), ShouldBeNil)
			exists, _ := fs.Exists("/cache")
			So(exists, ShouldBeFalse)
		})

		Convey("Should fail on a missing path", func() {
			So(Delete("/missing"), ShouldNotBeNil)
		})
	})
}
