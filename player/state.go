package player

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
)

// mirror is the most recently observed engine state.
type mirror struct {
	mu sync.RWMutex

	position   float64
	duration   float64
	paused     bool
	stalled    bool
	volume     float64
	speed      float64
	buffered   []Range
	fullscreen bool
	width      int
	height     int
}

func newMirror() *mirror {
	return &mirror{
		duration: math.NaN(),
		paused:   true,
		volume:   1,
		speed:    1,
	}
}

// viewport is a change of the rendering surface size.
type viewport struct {
	width, height int
}

// translate folds one mpv notification into the mirror and returns the
// media events it implies. Surface notifications are returned separately.
func (s *mirror) translate(name string, data interface{}) (events []Event, fullscreen *bool, view *viewport) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch name {
	case "time-pos":
		if v, ok := data.(float64); ok {
			s.position = v
			events = append(events, Event{Kind: TimeUpdate})
		}
	case "duration":
		if v, ok := data.(float64); ok && v > 0 {
			s.duration = v
			events = append(events, Event{Kind: LoadedMetadata})
		} else {
			s.duration = math.NaN()
		}
	case "pause":
		v, ok := data.(bool)
		if !ok || v == s.paused {
			return
		}
		s.paused = v
		if v {
			events = append(events, Event{Kind: Pause})
		} else {
			events = append(events, Event{Kind: Play})
			if !s.stalled {
				events = append(events, Event{Kind: Playing})
			}
		}
	case "paused-for-cache":
		v, ok := data.(bool)
		if !ok || v == s.stalled {
			return
		}
		s.stalled = v
		if v {
			events = append(events, Event{Kind: Waiting})
		} else if !s.paused {
			events = append(events, Event{Kind: Playing})
		}
	case "demuxer-cache-state":
		s.buffered = parseCacheState(data)
		events = append(events, Event{Kind: Progress})
	case "volume":
		if v, ok := data.(float64); ok {
			s.volume = v / 100
		}
	case "speed":
		if v, ok := data.(float64); ok && v > 0 {
			s.speed = v
		}
	case "eof-reached":
		if v, ok := data.(bool); ok && v {
			events = append(events, Event{Kind: Ended})
		}
	case "fullscreen":
		if v, ok := data.(bool); ok && v != s.fullscreen {
			s.fullscreen = v
			fullscreen = &v
		}
	case "osd-dimensions":
		m, ok := data.(map[string]interface{})
		if !ok {
			return
		}
		w, _ := m["w"].(float64)
		h, _ := m["h"].(float64)
		if w > 0 && h > 0 && (int(w) != s.width || int(h) != s.height) {
			s.width, s.height = int(w), int(h)
			view = &viewport{width: s.width, height: s.height}
		}
	case "file-loaded":
		s.position = 0
		s.buffered = nil
	case "end-file":
		m, _ := data.(map[string]interface{})
		switch reason, _ := m["reason"].(string); reason {
		case "error":
			detail, _ := m["file_error"].(string)
			if detail == "" {
				detail = "unknown error"
			}
			events = append(events, Event{Kind: Error, Err: fmt.Errorf("playback failed: %w", errors.New(detail))})
		case "eof":
			events = append(events, Event{Kind: Ended})
		}
	}

	return
}

// parseCacheState extracts the seekable ranges of demuxer-cache-state.
// When mpv reports no ranges, cache-end is used as a single range from 0.
func parseCacheState(data interface{}) []Range {
	m, ok := data.(map[string]interface{})
	if !ok {
		return nil
	}

	var ranges []Range
	if raw, ok := m["seekable-ranges"].([]interface{}); ok {
		for _, item := range raw {
			r, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			start, ok1 := r["start"].(float64)
			end, ok2 := r["end"].(float64)
			if ok1 && ok2 && end >= start {
				ranges = append(ranges, Range{Start: start, End: end})
			}
		}
	}

	if len(ranges) == 0 {
		if end, ok := m["cache-end"].(float64); ok && end > 0 {
			ranges = append(ranges, Range{Start: 0, End: end})
		}
	}

	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Start < ranges[j].Start })
	return ranges
}

func (s *mirror) snapshotBuffered() []Range {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Range, len(s.buffered))
	copy(out, s.buffered)
	return out
}
