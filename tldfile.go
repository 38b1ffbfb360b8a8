package ircdconf

import (
	"os"
	"strings"
	"time"
)

// loadTldFile reads path and splits it into lines, stamping mtime with
// the file's modification time (or the current time if the filesystem
// doesn't report one). Read failures leave cache/mtime untouched - the
// validator already confirmed the file opened at validate time, so a
// failure here means the file vanished between validate and commit,
// which is surfaced by the caller's next rehash rather than aborting
// this one.
func loadTldFile(path string, cache *[]string, mtime *time.Time) {
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	*cache = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if st, err := os.Stat(path); err == nil {
		*mtime = st.ModTime()
	} else {
		*mtime = time.Now()
	}
}
