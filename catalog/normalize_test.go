package catalog

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func decode(s string) map[string]any {
	var raw map[string]any
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		panic(err)
	}
	return raw
}

func TestNormalize(t *testing.T) {
	Convey("Given a sparse entry", t, func() {
		r := Normalize("abc", decode(`{}`))

		Convey("Defaults are filled in", func() {
			So(r.ID, ShouldEqual, "abc")
			So(r.Title, ShouldEqual, "Untitled")
			So(r.Quality, ShouldEqual, "HD")
			So(r.Source(), ShouldBeEmpty)
			So(r.Series, ShouldBeFalse)
		})
	})

	Convey("Given an entry with an original title only", t, func() {
		r := Normalize("abc", decode(`{"original_title":"Le Film","release_year":1999,"runtime":104,"rating":7.5}`))

		Convey("It falls back to the original title and stringifies numbers", func() {
			So(r.Title, ShouldEqual, "Le Film")
			So(r.Year, ShouldEqual, "1999")
			So(r.Runtime, ShouldEqual, "104m")
			So(r.Rating, ShouldEqual, "7.5")
		})
	})

	Convey("Given genres as an array", t, func() {
		r := Normalize("abc", decode(`{"genre":["Action","","Drama"]}`))
		So(r.Genre, ShouldEqual, "Action, Drama")
	})

	Convey("Given download links", t, func() {
		Convey("As an array with mixed url keys", func() {
			r := Normalize("abc", decode(`{"download_links":[
				{"quality":"1080p","url":"https://a/1080.mp4","size":"2GB"},
				{"link":"https://a/720.mp4"},
				{"quality":"480p"}
			]}`))

			So(r.Links, ShouldHaveLength, 2)
			So(r.Links[0], ShouldResemble, Link{URL: "https://a/1080.mp4", Label: "1080p", Size: "2GB"})
			So(r.Links[1].Label, ShouldEqual, "HD")
			So(r.Source(), ShouldEqual, "https://a/1080.mp4")
		})

		Convey("As an object keyed by position", func() {
			r := Normalize("abc", decode(`{"qualities":{"b":{"movie_link":"https://a/2.mp4"},"a":{"movie_link":"https://a/1.mp4"}}}`))
			So(r.Links, ShouldHaveLength, 2)
			So(r.Links[0].URL, ShouldEqual, "https://a/1.mp4")
		})

		Convey("As a JSON encoded string", func() {
			r := Normalize("abc", decode(`{"download_links":"[{\"url\":\"https://a/s.mp4\"}]"}`))
			So(r.Source(), ShouldEqual, "https://a/s.mp4")
		})

		Convey("As a malformed string", func() {
			r := Normalize("abc", decode(`{"download_links":"[{"}`))
			So(r.Links, ShouldBeEmpty)
		})

		Convey("An empty download_links falls through to qualities", func() {
			r := Normalize("abc", decode(`{"download_links":"","qualities":[{"url":"https://a/b.mp4"}]}`))
			So(r.Links, ShouldHaveLength, 1)
			So(r.Source(), ShouldEqual, "https://a/b.mp4")

			r = Normalize("abc", decode(`{"download_links":"  ","qualities":[{"url":"https://a/b.mp4"}]}`))
			So(r.Source(), ShouldEqual, "https://a/b.mp4")
		})

		Convey("The explicit video url wins", func() {
			r := Normalize("abc", decode(`{"video_url":"https://a/main.mp4","download_links":[{"url":"https://a/alt.mp4"}]}`))
			So(r.Source(), ShouldEqual, "https://a/main.mp4")
		})
	})

	Convey("Given a series", t, func() {
		r := Normalize("abc", decode(`{"seasons":[{"n":1}],"download_links":[{"url":"https://a/x.mp4"}]}`))

		Convey("Links are not collected", func() {
			So(r.Series, ShouldBeTrue)
			So(r.Links, ShouldBeEmpty)
		})
	})
}
