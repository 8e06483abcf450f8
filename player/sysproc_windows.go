//go:build windows

package player

import (
	"os/exec"
	"syscall"
)

// mpv serves IPC on a named pipe on Windows rather than a unix socket;
// commands will fail to connect there and playback reports an error.
func sysProcAttr() *syscall.SysProcAttr {
	return nil
}

func killProcess(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
