package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFirebase(t *testing.T) {
	Convey("Given a realtime database", t, func() {
		var lastQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lastQuery = r.URL.RawQuery
			switch r.URL.Path {
			case "/movies_by_id/m1.json":
				_, _ = w.Write([]byte(`{"title":"Heat","video_url":"https://cdn/heat.mp4","quality_name":"4K"}`))
			case "/movies_by_id/broken.json":
				w.WriteHeader(http.StatusInternalServerError)
			case "/movies_by_id/garbage.json":
				_, _ = w.Write([]byte(`{`))
			default:
				_, _ = w.Write([]byte("null"))
			}
		}))
		defer srv.Close()

		fb := &Firebase{BaseURL: srv.URL + "/", Client: srv.Client()}
		ctx := context.Background()

		Convey("A known id is normalized", func() {
			r, err := fb.Resolve(ctx, "m1")
			So(err, ShouldBeNil)
			So(r.ID, ShouldEqual, "m1")
			So(r.Title, ShouldEqual, "Heat")
			So(r.Quality, ShouldEqual, "4K")
			So(r.Source(), ShouldEqual, "https://cdn/heat.mp4")
			So(lastQuery, ShouldBeEmpty)
		})

		Convey("A null body is not found", func() {
			_, err := fb.Resolve(ctx, "nope")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})

		Convey("A server error is reported", func() {
			_, err := fb.Resolve(ctx, "broken")
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrNotFound), ShouldBeFalse)
		})

		Convey("An undecodable body is reported", func() {
			_, err := fb.Resolve(ctx, "garbage")
			So(err, ShouldNotBeNil)
		})

		Convey("A token is sent as the auth parameter", func() {
			fb.Token = func() string { return "s3cret" }
			_, err := fb.Resolve(ctx, "m1")
			So(err, ShouldBeNil)
			So(lastQuery, ShouldEqual, "auth=s3cret")
		})
	})

	Convey("Given no base url", t, func() {
		fb := &Firebase{}
		_, err := fb.Resolve(context.Background(), "m1")
		So(errors.Is(err, ErrNotFound), ShouldBeTrue)
	})
}
