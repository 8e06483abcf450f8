// Package sweep prunes stale files left behind by earlier sessions.
package sweep

import (
	"os"
	"time"

	"github.com/marquee-cli/marquee/filesystem"
	"github.com/marquee-cli/marquee/log"
	"github.com/spf13/afero"
)

// LogsTTL is how long daily log files are kept.
const LogsTTL = 7 * 24 * time.Hour

// SocketsTTL bounds how long an mpv IPC socket may outlive its session.
const SocketsTTL = 24 * time.Hour

// Dir removes regular files under dir whose modification time is older than ttl.
// It returns how many files were removed. A missing dir is not an error.
func Dir(dir string, ttl time.Duration, now time.Time) (removed int, err error) {
	fs := filesystem.API()

	if ok, _ := fs.DirExists(dir); !ok {
		return 0, nil
	}

	err = afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if now.Sub(info.ModTime()) <= ttl {
			return nil
		}
		if fs.Remove(path) == nil {
			removed++
		}
		return nil
	})

	return removed, err
}

// CollectGarbage sweeps every directory in targets in the background.
func CollectGarbage(targets map[string]time.Duration) {
	go func() {
		now := time.Now()
		for dir, ttl := range targets {
			removed, err := Dir(dir, ttl, now)
			if err != nil {
				log.Warnf("sweep %s: %v", dir, err)
				continue
			}
			if removed > 0 {
				log.Debugf("sweep %s: removed %d stale files", dir, removed)
			}
		}
	}()
}
