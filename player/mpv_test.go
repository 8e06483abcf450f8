package player

import (
	"bufio"
	"encoding/json"
	"errors"
	"math"
	"net"
	"path/filepath"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

// fakeServer answers mpv IPC commands on a unix socket. Before every reply it
// broadcasts an unrelated event, the way mpv does to all clients.
type fakeServer struct {
	listener net.Listener
	mu       sync.Mutex
	commands [][]interface{}
	refuse   map[string]string
	silent   bool
}

func newFakeServer(t *testing.T) *fakeServer {
	path := filepath.Join(t.TempDir(), "mpv.sock")
	l, err := net.Listen("unix", path)
	if err != nil {
		t.Fatal(err)
	}

	s := &fakeServer{listener: l, refuse: map[string]string{}}
	go s.serve()
	t.Cleanup(func() { _ = l.Close() })
	return s
}

func (s *fakeServer) path() string {
	return s.listener.Addr().String()
}

func (s *fakeServer) serve() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}
		go s.handle(conn)
	}
}

func (s *fakeServer) handle(conn net.Conn) {
	defer conn.Close()
	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			return
		}

		var cmd ipcCommand
		if err := json.Unmarshal(line, &cmd); err != nil {
			return
		}

		s.mu.Lock()
		s.commands = append(s.commands, cmd.Command)
		reason := s.refuse[cmd.Command[0].(string)]
		silent := s.silent
		s.mu.Unlock()

		if silent {
			continue
		}

		if reason == "" {
			reason = "success"
		}
		_, _ = conn.Write([]byte(`{"event":"playback-restart"}` + "\n"))
		reply, _ := json.Marshal(map[string]interface{}{"request_id": cmd.RequestID, "error": reason, "data": nil})
		_, _ = conn.Write(append(reply, '\n'))
	}
}

func (s *fakeServer) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.commands)
}

func (s *fakeServer) last() []interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.commands) == 0 {
		return nil
	}
	return s.commands[len(s.commands)-1]
}

func TestSanitizeMediaTarget(t *testing.T) {
	Convey("Given media targets", t, func() {
		Convey("http and https URLs pass", func() {
			u, err := sanitizeMediaTarget(" https://cdn.example/a.mp4 ")
			So(err, ShouldBeNil)
			So(u, ShouldEqual, "https://cdn.example/a.mp4")
		})

		Convey("Flags and control characters are rejected", func() {
			_, err := sanitizeMediaTarget("--script=evil.lua")
			So(err, ShouldNotBeNil)
			_, err = sanitizeMediaTarget("https://a/b\n--x")
			So(err, ShouldNotBeNil)
			_, err = sanitizeMediaTarget("")
			So(err, ShouldNotBeNil)
		})

		Convey("Other schemes are rejected", func() {
			_, err := sanitizeMediaTarget("file:///etc/passwd")
			So(err, ShouldNotBeNil)
		})

		Convey("Local paths are cleaned", func() {
			p, err := sanitizeMediaTarget("movies/../movies/a.mkv")
			So(err, ShouldBeNil)
			So(p, ShouldEqual, filepath.Clean("movies/a.mkv"))
		})
	})

	Convey("Titles are flattened", t, func() {
		So(sanitizeTitle(" A\nB\tC\x00 "), ShouldEqual, "A B C")
	})
}

func TestTranslate(t *testing.T) {
	Convey("Given a fresh mirror", t, func() {
		s := newMirror()

		kinds := func(events []Event) []EventKind {
			out := make([]EventKind, len(events))
			for i, e := range events {
				out[i] = e.Kind
			}
			return out
		}

		Convey("Duration starts unknown", func() {
			So(math.IsNaN(s.duration), ShouldBeTrue)
		})

		Convey("Unpausing emits play and playing", func() {
			events, _, _ := s.translate("pause", false)
			So(kinds(events), ShouldResemble, []EventKind{Play, Playing})
		})

		Convey("Unpausing while stalled emits play only", func() {
			_, _, _ = s.translate("paused-for-cache", true)
			events, _, _ := s.translate("pause", false)
			So(kinds(events), ShouldResemble, []EventKind{Play})

			Convey("and playing once the cache refills", func() {
				events, _, _ := s.translate("paused-for-cache", false)
				So(kinds(events), ShouldResemble, []EventKind{Playing})
			})
		})

		Convey("A cache stall emits waiting", func() {
			events, _, _ := s.translate("paused-for-cache", true)
			So(kinds(events), ShouldResemble, []EventKind{Waiting})
		})

		Convey("Repeated values are ignored", func() {
			events, _, _ := s.translate("pause", true)
			So(events, ShouldBeEmpty)
		})

		Convey("Position and duration are mirrored", func() {
			events, _, _ := s.translate("time-pos", 12.5)
			So(kinds(events), ShouldResemble, []EventKind{TimeUpdate})
			So(s.position, ShouldEqual, 12.5)

			events, _, _ = s.translate("duration", 600.0)
			So(kinds(events), ShouldResemble, []EventKind{LoadedMetadata})
			So(s.duration, ShouldEqual, 600)
		})

		Convey("Volume is scaled to 0..1", func() {
			_, _, _ = s.translate("volume", 37.0)
			So(s.volume, ShouldAlmostEqual, 0.37)
		})

		Convey("Cache state becomes buffered ranges", func() {
			events, _, _ := s.translate("demuxer-cache-state", map[string]interface{}{
				"seekable-ranges": []interface{}{
					map[string]interface{}{"start": 30.0, "end": 45.0},
					map[string]interface{}{"start": 0.0, "end": 10.0},
				},
			})
			So(kinds(events), ShouldResemble, []EventKind{Progress})
			So(s.snapshotBuffered(), ShouldResemble, []Range{{0, 10}, {30, 45}})
		})

		Convey("Cache end is used without ranges", func() {
			_, _, _ = s.translate("demuxer-cache-state", map[string]interface{}{"cache-end": 8.0})
			So(s.snapshotBuffered(), ShouldResemble, []Range{{0, 8}})
		})

		Convey("A failed file emits an error", func() {
			events, _, _ := s.translate("end-file", map[string]interface{}{"reason": "error", "file_error": "loading failed"})
			So(events, ShouldHaveLength, 1)
			So(events[0].Kind, ShouldEqual, Error)
			So(events[0].Err.Error(), ShouldContainSubstring, "loading failed")
		})

		Convey("Surface changes are reported separately", func() {
			_, fs, _ := s.translate("fullscreen", true)
			So(fs, ShouldNotBeNil)
			So(*fs, ShouldBeTrue)

			_, _, view := s.translate("osd-dimensions", map[string]interface{}{"w": 1920.0, "h": 1080.0})
			So(view, ShouldResemble, &viewport{width: 1920, height: 1080})
		})
	})
}

func TestIPC(t *testing.T) {
	Convey("Given an mpv IPC server", t, func() {
		srv := newFakeServer(t)
		m := NewMPV("mpv")
		m.socketPath = srv.path()

		Convey("Replies are matched past broadcast events", func() {
			So(m.SetVolume(0.37), ShouldBeNil)
			cmd := srv.last()
			So(cmd[:2], ShouldResemble, []interface{}{"set_property", "volume"})
			So(cmd[2], ShouldAlmostEqual, 37.0, 1e-9)
			So(m.Volume(), ShouldEqual, 0.37)
		})

		Convey("Seeks are absolute", func() {
			So(m.Seek(42), ShouldBeNil)
			So(srv.last(), ShouldResemble, []interface{}{"seek", 42.0, "absolute"})
			So(m.CurrentTime(), ShouldEqual, 42)
		})

		Convey("Refusals are returned without retrying", func() {
			srv.refuse["set_property"] = "property unavailable"
			err := m.SetPlaybackRate(2)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "property unavailable")
			So(m.PlaybackRate(), ShouldEqual, 1)
		})

		Convey("An unanswered setter gives up after one short attempt", func() {
			srv.mu.Lock()
			srv.silent = true
			srv.mu.Unlock()

			started := time.Now()
			So(m.SetVolume(0.5), ShouldNotBeNil)
			So(time.Since(started), ShouldBeLessThan, setupBudget.deadline)
			So(srv.count(), ShouldEqual, 1)
			So(m.Volume(), ShouldEqual, 1)

			So(m.Seek(30), ShouldNotBeNil)
			So(srv.count(), ShouldEqual, 2)
		})

		Convey("Aspect modes set every scaling property", func() {
			So(m.SetAspect("16:9"), ShouldBeNil)
			So(srv.last(), ShouldResemble, []interface{}{"set_property", "video-aspect-override", "16:9"})
			So(m.SetAspect("Zoom"), ShouldNotBeNil)
		})

		Convey("Commands after Close fail", func() {
			m.socketPath = ""
			So(m.Close(), ShouldBeNil)
			So(m.Close(), ShouldBeNil)
			So(errors.Is(m.Play(), ErrClosed), ShouldBeTrue)
			So(errors.Is(m.Load("https://a/b.mp4", "t"), ErrClosed), ShouldBeTrue)
		})
	})
}

func TestObservers(t *testing.T) {
	Convey("Given an observed handle", t, func() {
		m := NewMPV("")
		var got []EventKind
		cancel := m.Observe(func(e Event) { got = append(got, e.Kind) })

		var fullscreen []bool
		m.OnFullscreenChange(func(fs bool) { fullscreen = append(fullscreen, fs) })

		Convey("Translated events reach observers", func() {
			m.handle("paused-for-cache", true)
			m.handle("fullscreen", true)
			So(got, ShouldResemble, []EventKind{Waiting})
			So(fullscreen, ShouldResemble, []bool{true})
		})

		Convey("Cancelled observers are detached", func() {
			cancel()
			m.handle("paused-for-cache", true)
			So(got, ShouldBeEmpty)
		})

		Convey("Nothing is delivered after Close", func() {
			So(m.Close(), ShouldBeNil)
			m.handle("paused-for-cache", true)
			So(got, ShouldBeEmpty)
		})
	})

	Convey("The listener forwards property changes and events", t, func() {
		var names []string
		el := NewEventListener("", func(name string, _ interface{}) { names = append(names, name) })
		el.processEvent([]byte(`{"event":"property-change","name":"pause","data":true}`))
		el.processEvent([]byte(`{"event":"end-file","reason":"eof"}`))
		el.processEvent([]byte(`{"request_id":3,"error":"success"}`))
		el.processEvent([]byte(`not json`))
		So(names, ShouldResemble, []string{"pause", "end-file"})
	})
}

func TestBrightnessProperty(t *testing.T) {
	Convey("Brightness levels map around a neutral midpoint", t, func() {
		So(BrightnessProperty(0.5), ShouldEqual, 0)
		So(BrightnessProperty(0), ShouldEqual, -50)
		So(BrightnessProperty(1), ShouldEqual, 50)
	})
}
