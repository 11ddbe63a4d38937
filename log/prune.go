package log

import (
	"os"
	"path/filepath"
	"time"

	"github.com/bulmaswatch/swatchport/filesystem"
	"github.com/bulmaswatch/swatchport/where"
)

// Retention is how long daily log files are kept.
const Retention = 14 * 24 * time.Hour

// Prune removes log files in dir last written before now minus retention and returns how many
// it removed. Unreadable entries are left alone.
func Prune(dir string, retention time.Duration, now time.Time) int {
	fs := filesystem.API()
	var removed int

	_ = fs.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || filepath.Ext(path) != ".log" {
			return nil
		}
		if now.Sub(info.ModTime()) > retention && fs.Remove(path) == nil {
			removed++
		}
		return nil
	})

	return removed
}

// PruneDefault prunes the log directory with the default retention.
func PruneDefault() {
	if n := Prune(where.Logs(), Retention, time.Now()); n > 0 {
		Debugf("Removed %d old log files", n)
	}
}
