package open

import (
	"testing"

	"github.com/marquee-cli/marquee/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("Each platform has its own opener", t, func() {
		const link = "https://cdn.example.com/title.mp4"

		cmd, ok := command(constant.Linux, link)
		So(ok, ShouldBeTrue)
		So(cmd.Args, ShouldResemble, []string{"xdg-open", link})

		cmd, ok = command(constant.Darwin, link)
		So(ok, ShouldBeTrue)
		So(cmd.Args, ShouldResemble, []string{"open", link})

		cmd, ok = command(constant.Android, link)
		So(ok, ShouldBeTrue)
		So(cmd.Args[0], ShouldEqual, "termux-open")

		_, ok = command("plan9", link)
		So(ok, ShouldBeFalse)
	})
}
