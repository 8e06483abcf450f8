package overlay

import (
	"sort"
	"time"
)

// Timer is a pending callback. Stop is idempotent and also suppresses a
// callback that has fired but not yet run on the loop.
type Timer interface {
	Stop()
}

// Loop is the single logical thread the controller lives on.
// Every callback passed to AfterFunc or Post runs on the loop, one at a time.
type Loop interface {
	Now() time.Time
	// AfterFunc runs fn on the loop once d has elapsed.
	AfterFunc(d time.Duration, fn func()) Timer
	// Post runs fn on the loop as soon as possible. Safe from any goroutine.
	Post(fn func())
}

// noTimer is a stopped timer, so holders never need a nil check.
type noTimer struct{}

func (noTimer) Stop() {}

// ManualLoop is a deterministic Loop for tests. Time only moves through
// Advance, and Post runs its callback immediately.
type ManualLoop struct {
	now    time.Time
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	at      time.Time
	seq     int
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() {
	t.stopped = true
}

// NewManualLoop creates a loop whose clock starts at a fixed instant.
func NewManualLoop() *ManualLoop {
	return &ManualLoop{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (l *ManualLoop) Now() time.Time {
	return l.now
}

func (l *ManualLoop) AfterFunc(d time.Duration, fn func()) Timer {
	l.seq++
	t := &manualTimer{at: l.now.Add(d), seq: l.seq, fn: fn}
	l.timers = append(l.timers, t)
	return t
}

func (l *ManualLoop) Post(fn func()) {
	fn()
}

// Advance moves the clock forward by d, running every timer that falls due
// in deadline order. Timers scheduled by those callbacks run too when they
// fall within the window.
func (l *ManualLoop) Advance(d time.Duration) {
	end := l.now.Add(d)

	for {
		next := l.popDue(end)
		if next == nil {
			break
		}
		l.now = next.at
		next.fn()
	}

	l.now = end
}

func (l *ManualLoop) popDue(end time.Time) *manualTimer {
	live := l.timers[:0]
	for _, t := range l.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	l.timers = live

	sort.SliceStable(l.timers, func(i, j int) bool {
		if l.timers[i].at.Equal(l.timers[j].at) {
			return l.timers[i].seq < l.timers[j].seq
		}
		return l.timers[i].at.Before(l.timers[j].at)
	})

	if len(l.timers) == 0 || l.timers[0].at.After(end) {
		return nil
	}

	t := l.timers[0]
	l.timers = l.timers[1:]
	t.stopped = true
	return t
}

// Pending reports how many timers are still armed.
func (l *ManualLoop) Pending() int {
	n := 0
	for _, t := range l.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}
