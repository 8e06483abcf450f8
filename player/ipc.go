package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync/atomic"
	"time"
)

// ipcCommand is the JSON structure sent to mpv's IPC socket.
type ipcCommand struct {
	Command   []interface{} `json:"command"`
	RequestID int64         `json:"request_id"`
}

// ipcResponse is the JSON structure received from mpv's IPC socket.
// Broadcast events share the connection and carry Event instead of RequestID.
type ipcResponse struct {
	Data      interface{} `json:"data"`
	Error     string      `json:"error"`
	RequestID int64       `json:"request_id"`
	Event     string      `json:"event"`
}

// budget bounds how long a command may block its caller.
type budget struct {
	attempts int
	deadline time.Duration
}

const retryDelay = 100 * time.Millisecond

var (
	// setupBudget covers startup and source loads, where mpv may still be busy.
	setupBudget = budget{attempts: 3, deadline: 1 * time.Second}

	// interactiveBudget covers commands issued from a key press or gesture.
	// A missed reply costs one short wait; the next input issues a fresh command.
	interactiveBudget = budget{attempts: 1, deadline: 250 * time.Millisecond}
)

var requestIDs atomic.Int64

// sendCommand sends a JSON-IPC command to mpv via Unix domain socket.
// Transient connection errors are retried; writes are serialized.
func (m *MPV) sendCommand(command ...interface{}) (interface{}, error) {
	return m.send(setupBudget, command)
}

// sendInteractive sends a command without retrying, so the caller is never held up for long.
func (m *MPV) sendInteractive(command ...interface{}) (interface{}, error) {
	return m.send(interactiveBudget, command)
}

func (m *MPV) send(b budget, command []interface{}) (interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.socketPath == "" {
		return nil, fmt.Errorf("mpv is not running")
	}

	var lastErr error

	for attempt := 0; attempt < b.attempts; attempt++ {
		if attempt > 0 {
			time.Sleep(retryDelay)
		}

		result, err := doSendCommand(m.socketPath, command, b.deadline)
		if err == nil {
			return result, nil
		}
		if _, ok := err.(*mpvError); ok {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("ipc command failed after %d attempts: %w", b.attempts, lastErr)
}

// mpvError is a well-formed refusal from mpv. It is never retried.
type mpvError struct {
	command interface{}
	reason  string
}

func (e *mpvError) Error() string {
	return fmt.Sprintf("mpv %v: %s", e.command, e.reason)
}

// doSendCommand performs a single IPC command attempt and waits for the
// reply carrying the same request id.
func doSendCommand(socketPath string, command []interface{}, deadline time.Duration) (interface{}, error) {
	conn, err := net.DialTimeout("unix", socketPath, deadline)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	return exchange(conn, command, deadline)
}

func exchange(conn net.Conn, command []interface{}, deadline time.Duration) (interface{}, error) {
	id := requestIDs.Add(1)

	payload, err := json.Marshal(ipcCommand{Command: command, RequestID: id})
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	// mpv requires newline-delimited JSON
	if _, err = conn.Write(append(payload, '\n')); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(deadline)); err != nil {
		return nil, fmt.Errorf("set deadline: %w", err)
	}

	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			return nil, fmt.Errorf("read: %w", err)
		}

		var resp ipcResponse
		if err := json.Unmarshal(line, &resp); err != nil {
			return nil, fmt.Errorf("unmarshal: %w", err)
		}

		if resp.Event != "" || resp.RequestID != id {
			continue
		}

		if resp.Error != "" && resp.Error != "success" {
			return nil, &mpvError{command: command[0], reason: resp.Error}
		}

		return resp.Data, nil
	}
}
