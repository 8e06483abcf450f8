// Package player defines the control surface of a native media engine.
// The primary implementation drives 'mpv' over its JSON-IPC interface.
package player

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by commands issued after the handle was released.
var ErrClosed = errors.New("player closed")

// EventKind enumerates the media notifications a Handle emits.
type EventKind int

const (
	// TimeUpdate fires whenever the playback position changes.
	TimeUpdate EventKind = iota + 1
	// LoadedMetadata fires once the duration of a newly loaded source is known.
	LoadedMetadata
	// Waiting fires when playback stalls on an empty buffer.
	Waiting
	// Playing fires when frames are being presented again.
	Playing
	// Play fires when playback was requested.
	Play
	// Pause fires when playback was suspended.
	Pause
	// Progress fires when the buffered ranges change.
	Progress
	// Error fires when the source cannot be played.
	Error
	// Ended fires when the end of the source is reached.
	Ended
)

var kindNames = map[EventKind]string{
	TimeUpdate:     "timeupdate",
	LoadedMetadata: "loadedmetadata",
	Waiting:        "waiting",
	Playing:        "playing",
	Play:           "play",
	Pause:          "pause",
	Progress:       "progress",
	Error:          "error",
	Ended:          "ended",
}

func (k EventKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is a single media notification. Err is set for Error events.
type Event struct {
	Kind EventKind
	Err  error
}

// Range is a buffered time span in seconds.
type Range struct {
	Start, End float64
}

// Handle encapsulates the commands and queries of a media engine.
//
// Queries never block: they answer from the most recently observed state.
// Observers are invoked on a goroutine owned by the handle and must hand the
// event over to their own event loop.
type Handle interface {
	// Load replaces the current source. Playback stays paused until Play.
	Load(source, title string) error

	Play() error
	Pause() error
	Paused() bool

	// Seek moves playback to an absolute position in seconds.
	Seek(seconds float64) error
	CurrentTime() float64
	// Duration is NaN while unknown.
	Duration() float64

	// Volume and SetVolume use the 0..1 range.
	Volume() float64
	SetVolume(v float64) error

	PlaybackRate() float64
	SetPlaybackRate(rate float64) error

	// Buffered reports the buffered ranges in ascending order.
	Buffered() []Range

	// Observe registers fn for every future event. The returned function detaches it.
	Observe(fn func(Event)) (cancel func())

	// Close terminates the engine and releases all associated resources.
	Close() error
}
