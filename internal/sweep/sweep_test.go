package sweep

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/marquee-cli/marquee/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDir(t *testing.T) {
	Convey("Given a directory with fresh and stale files", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()

		now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
		dir := "/logs"

		write := func(name string, age time.Duration) string {
			path := filepath.Join(dir, name)
			So(fs.WriteFile(path, []byte("x"), 0o644), ShouldBeNil)
			stamp := now.Add(-age)
			So(fs.Chtimes(path, stamp, stamp), ShouldBeNil)
			return path
		}

		fresh := write("2026-03-09.log", 24*time.Hour)
		stale := write("2026-02-01.log", 37*24*time.Hour)
		nested := write("old/2026-01-01.log", 68*24*time.Hour)

		Convey("Only files older than the ttl are removed", func() {
			removed, err := Dir(dir, LogsTTL, now)
			So(err, ShouldBeNil)
			So(removed, ShouldEqual, 2)

			ok, _ := fs.Exists(fresh)
			So(ok, ShouldBeTrue)
			ok, _ = fs.Exists(stale)
			So(ok, ShouldBeFalse)
			ok, _ = fs.Exists(nested)
			So(ok, ShouldBeFalse)
		})

		Convey("A missing directory is ignored", func() {
			removed, err := Dir("/nowhere", LogsTTL, now)
			So(err, ShouldBeNil)
			So(removed, ShouldEqual, 0)
		})
	})
}
