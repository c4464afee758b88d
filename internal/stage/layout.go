// Package stage prepares the on-disk session layout consumed by the
// capture processing pipeline and copies operator-supplied videos into it.
package stage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DefaultDataDir is the base data directory, a sibling of the working directory.
const DefaultDataDir = "../Data"

// DefaultCameras is the camera count used when none is given.
const DefaultCameras = 2

// now is swapped in tests.
var now = time.Now

// Layout resolves paths inside a base data directory.
//
//	<base>/
//	    <session>/
//	        Videos/
//	            Cam<N>/
//	                InputMedia/
type Layout struct {
	Base string
}

// NewLayout returns a Layout rooted at base, or DefaultDataDir when base is empty.
func NewLayout(base string) Layout {
	if base == "" {
		base = DefaultDataDir
	}
	return Layout{Base: base}
}

// SessionDir returns <base>/<session>.
func (l Layout) SessionDir(session string) string {
	return filepath.Join(l.Base, session)
}

// VideosDir returns <base>/<session>/Videos.
func (l Layout) VideosDir(session string) string {
	return filepath.Join(l.Base, session, "Videos")
}

// InputMediaDir returns <base>/<session>/Videos/Cam<cam>/InputMedia.
func (l Layout) InputMediaDir(session string, cam int) string {
	return filepath.Join(l.VideosDir(session), fmt.Sprintf("Cam%d", cam), "InputMedia")
}

// TimestampSession names a session after the current Unix time, with
// sub-second precision.
func TimestampSession() string {
	t := now()
	return strconv.FormatFloat(float64(t.Unix())+float64(t.Nanosecond())/1e9, 'f', -1, 64)
}

// EnsureSessionLayout creates the base directory and, if the session directory
// does not exist yet, the InputMedia directory for each camera in [0, cameras).
// An existing session directory is left untouched. An empty session name is
// replaced with TimestampSession. The session directory path is returned.
func (l Layout) EnsureSessionLayout(session string, cameras int) (string, error) {
	if err := os.MkdirAll(l.Base, 0o755); err != nil {
		return "", fmt.Errorf("create data dir %s: %w", l.Base, err)
	}

	if session == "" {
		session = TimestampSession()
	}
	dir := l.SessionDir(session)

	if _, err := os.Stat(dir); err == nil {
		slog.Debug("session exists, layout unchanged", "session", dir)
		return dir, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("stat session %s: %w", dir, err)
	}

	for i := 0; i < cameras; i++ {
		media := l.InputMediaDir(session, i)
		if err := os.MkdirAll(media, 0o755); err != nil {
			return "", fmt.Errorf("create %s: %w", media, err)
		}
		slog.Debug("created camera slot", "path", media)
	}
	return dir, nil
}
