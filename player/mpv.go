package player

import (
	"fmt"
	"math"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/marquee-cli/marquee/log"
	"github.com/marquee-cli/marquee/where"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
	quitGrace         = 3 * time.Second
)

// MPV implements Handle using mpv's JSON-IPC protocol.
// The process is started lazily by the first Load and kept idle between sources.
type MPV struct {
	binary     string
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{} // closed when the mpv process exits
	mu         sync.Mutex    // serializes socket exchanges

	state    *mirror
	listener *EventListener

	obsMu      sync.Mutex
	closed     bool
	nextID     int
	observers  map[int]func(Event)
	fsWatchers map[int]func(bool)
	vpWatchers map[int]func(width, height int)
}

// NewMPV creates an MPV handle for the given executable (does not start it).
func NewMPV(binary string) *MPV {
	if binary == "" {
		binary = "mpv"
	}
	return &MPV{
		binary:     binary,
		exited:     make(chan struct{}),
		state:      newMirror(),
		observers:  make(map[int]func(Event)),
		fsWatchers: make(map[int]func(bool)),
		vpWatchers: make(map[int]func(int, int)),
	}
}

// Start launches an idle mpv with an IPC server and subscribes to its state.
// Load calls it on demand; calling it early keeps the first Load fast.
func (m *MPV) Start() error {
	if m.isClosed() {
		return ErrClosed
	}
	if m.socketPath != "" {
		return nil
	}

	m.socketPath = filepath.Join(where.Temp(), fmt.Sprintf("mpv-%s.sock", uuid.NewString()[:8]))

	// Only the socket and window behavior are forced; the user's mpv.conf stays in charge otherwise.
	args := []string{
		"--no-terminal",
		"--really-quiet",
		fmt.Sprintf("--input-ipc-server=%s", m.socketPath),
		"--force-window=yes",
		"--idle=yes",
		"--keep-open=yes",
	}

	m.cmd = exec.Command(m.binary, args...)
	m.cmd.SysProcAttr = sysProcAttr()
	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	if err := m.cmd.Start(); err != nil {
		m.socketPath = ""
		return fmt.Errorf("start %s: %w", m.binary, err)
	}

	exited := m.exited
	go func() {
		_ = m.cmd.Wait()
		close(exited)
	}()

	if err := m.waitForSocket(); err != nil {
		select {
		case <-m.exited:
		default:
			log.Warnf("mpv: killing process, socket never became ready")
			_ = killProcess(m.cmd)
		}
		m.socketPath = ""
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	m.listener = NewEventListener(m.socketPath, m.handle)
	if err := m.listener.Start(); err != nil {
		return err
	}

	log.Infof("mpv: started pid %d on %s", m.cmd.Process.Pid, m.socketPath)
	return nil
}

// waitForSocket polls until the mpv IPC socket is accepting connections.
func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return fmt.Errorf("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// Wait returns a channel that is closed when the mpv process exits.
func (m *MPV) Wait() <-chan struct{} {
	return m.exited
}

func (m *MPV) isClosed() bool {
	m.obsMu.Lock()
	defer m.obsMu.Unlock()
	return m.closed
}

// Load replaces the current source, leaving playback paused.
func (m *MPV) Load(source, title string) error {
	if m.isClosed() {
		return ErrClosed
	}

	target, err := sanitizeMediaTarget(source)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	if m.socketPath == "" {
		if err := m.Start(); err != nil {
			return err
		}
	}

	if _, err := m.sendCommand("set_property", "pause", true); err != nil {
		return err
	}
	if t := sanitizeTitle(title); t != "" {
		if _, err := m.sendCommand("set_property", "force-media-title", t); err != nil {
			log.Warnf("mpv: set title: %v", err)
		}
	}
	if _, err := m.sendCommand("loadfile", target, "replace"); err != nil {
		return err
	}

	m.state.mu.Lock()
	m.state.position = 0
	m.state.duration = math.NaN()
	m.state.buffered = nil
	m.state.mu.Unlock()

	return nil
}

func (m *MPV) Play() error {
	return m.set("pause", false)
}

func (m *MPV) Pause() error {
	return m.set("pause", true)
}

// Paused reflects the last observed pause state; it changes once mpv confirms a command.
func (m *MPV) Paused() bool {
	m.state.mu.RLock()
	defer m.state.mu.RUnlock()
	return m.state.paused
}

func (m *MPV) Seek(seconds float64) error {
	if m.isClosed() {
		return ErrClosed
	}
	if _, err := m.sendInteractive("seek", seconds, "absolute"); err != nil {
		return err
	}

	m.state.mu.Lock()
	m.state.position = seconds
	m.state.mu.Unlock()
	return nil
}

func (m *MPV) CurrentTime() float64 {
	m.state.mu.RLock()
	defer m.state.mu.RUnlock()
	return m.state.position
}

func (m *MPV) Duration() float64 {
	m.state.mu.RLock()
	defer m.state.mu.RUnlock()
	return m.state.duration
}

func (m *MPV) Volume() float64 {
	m.state.mu.RLock()
	defer m.state.mu.RUnlock()
	return m.state.volume
}

// SetVolume maps the 0..1 range onto mpv's 0..100 volume.
func (m *MPV) SetVolume(v float64) error {
	if err := m.set("volume", v*100); err != nil {
		return err
	}

	m.state.mu.Lock()
	m.state.volume = v
	m.state.mu.Unlock()
	return nil
}

func (m *MPV) PlaybackRate() float64 {
	m.state.mu.RLock()
	defer m.state.mu.RUnlock()
	return m.state.speed
}

func (m *MPV) SetPlaybackRate(rate float64) error {
	if err := m.set("speed", rate); err != nil {
		return err
	}

	m.state.mu.Lock()
	m.state.speed = rate
	m.state.mu.Unlock()
	return nil
}

func (m *MPV) Buffered() []Range {
	return m.state.snapshotBuffered()
}

// Observe registers fn for media events. fn runs on the IPC reader goroutine.
func (m *MPV) Observe(fn func(Event)) (cancel func()) {
	m.obsMu.Lock()
	defer m.obsMu.Unlock()

	id := m.nextID
	m.nextID++
	m.observers[id] = fn

	return func() {
		m.obsMu.Lock()
		defer m.obsMu.Unlock()
		delete(m.observers, id)
	}
}

// handle is the EventListener callback.
func (m *MPV) handle(name string, data interface{}) {
	events, fullscreen, view := m.state.translate(name, data)

	m.obsMu.Lock()
	if m.closed {
		m.obsMu.Unlock()
		return
	}
	observers := make([]func(Event), 0, len(m.observers))
	for _, fn := range m.observers {
		observers = append(observers, fn)
	}
	fsWatchers := make([]func(bool), 0, len(m.fsWatchers))
	for _, fn := range m.fsWatchers {
		fsWatchers = append(fsWatchers, fn)
	}
	vpWatchers := make([]func(int, int), 0, len(m.vpWatchers))
	for _, fn := range m.vpWatchers {
		vpWatchers = append(vpWatchers, fn)
	}
	m.obsMu.Unlock()

	for _, e := range events {
		if e.Kind == Error {
			log.Warnf("mpv: %v", e.Err)
		}
		for _, fn := range observers {
			fn(e)
		}
	}

	if fullscreen != nil {
		for _, fn := range fsWatchers {
			fn(*fullscreen)
		}
	}

	if view != nil {
		for _, fn := range vpWatchers {
			fn(view.width, view.height)
		}
	}
}

// Close shuts down the mpv process and cleans up resources. It is idempotent.
func (m *MPV) Close() error {
	m.obsMu.Lock()
	if m.closed {
		m.obsMu.Unlock()
		return nil
	}
	m.closed = true
	clear(m.observers)
	clear(m.fsWatchers)
	clear(m.vpWatchers)
	m.obsMu.Unlock()

	if m.listener != nil {
		m.listener.Stop()
	}

	if m.socketPath == "" {
		return nil
	}

	_, _ = m.sendCommand("quit")

	select {
	case <-m.exited:
	case <-time.After(quitGrace):
		_ = killProcess(m.cmd)
	}

	_ = os.Remove(m.socketPath)
	return nil
}

// set writes a property on the interactive budget.
func (m *MPV) set(property string, value interface{}) error {
	if m.isClosed() {
		return ErrClosed
	}
	_, err := m.sendInteractive("set_property", property, value)
	return err
}

// sanitizeMediaTarget validates that a source is safe to pass to mpv.
// Catalog entries are untrusted, so flag injection and exotic schemes are rejected.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}

// sanitizeTitle flattens whitespace and strips NUL bytes.
func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
