package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marquee-cli/marquee/overlay"
)

// loopMsg carries a callback onto the bubbletea update goroutine.
type loopMsg struct {
	fn func()
}

// teaLoop runs overlay callbacks inside Update, so the controller never
// sees two callbacks at once.
type teaLoop struct {
	program *tea.Program
}

func (l *teaLoop) Now() time.Time {
	return time.Now()
}

// Post is a no-op once the program has finished.
func (l *teaLoop) Post(fn func()) {
	l.program.Send(loopMsg{fn: fn})
}

func (l *teaLoop) AfterFunc(d time.Duration, fn func()) overlay.Timer {
	t := &teaTimer{}
	t.timer = time.AfterFunc(d, func() {
		l.Post(func() {
			if !t.stopped.Load() {
				fn()
			}
		})
	})
	return t
}

// teaTimer also suppresses a callback that fired but is still queued.
type teaTimer struct {
	timer   *time.Timer
	stopped atomic.Bool
}

func (t *teaTimer) Stop() {
	t.stopped.Store(true)
	t.timer.Stop()
}
