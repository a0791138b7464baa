package file

import (
	"time"

	"github.com/djherbis/times"
	"github.com/spf13/afero"
)

// creationTime prefers the birth time (statx on Linux) and falls back to the
// inode change time. Only the OS filesystem carries either.
func creationTime(fs afero.Fs, path string) (time.Time, bool) {
	if _, ok := fs.(*afero.OsFs); !ok {
		return time.Time{}, false
	}

	ts, err := times.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	if ts.HasBirthTime() {
		return ts.BirthTime(), true
	}
	if ts.HasChangeTime() {
		return ts.ChangeTime(), true
	}
	return time.Time{}, false
}
