// Package reporter renders the staged state of a capture session.
package reporter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ppiankov/capstage/internal/metadata"
	"github.com/ppiankov/capstage/internal/stage"
)

// CameraSlot is one Cam<N>/InputMedia directory and the files staged in it.
type CameraSlot struct {
	Index    int
	Path     string
	HasMedia bool
	Files    []string
}

// SessionStatus is a read-only snapshot of a session directory.
type SessionStatus struct {
	Name         string
	Dir          string
	Exists       bool
	Cameras      []CameraSlot
	MetadataPath string
	Metadata     *metadata.Record
	MetadataErr  error
}

// Videos returns the number of staged files across all cameras.
func (s *SessionStatus) Videos() int {
	n := 0
	for _, c := range s.Cameras {
		n += len(c.Files)
	}
	return n
}

// Inspect collects the status of session under l. metadataName is the
// document name looked up inside the session directory.
func Inspect(l stage.Layout, session, metadataName string) (*SessionStatus, error) {
	st := &SessionStatus{
		Name:         session,
		Dir:          l.SessionDir(session),
		MetadataPath: filepath.Join(l.SessionDir(session), metadataName),
	}

	if _, err := os.Stat(st.Dir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return st, nil
		}
		return nil, fmt.Errorf("stat session: %w", err)
	}
	st.Exists = true

	entries, err := os.ReadDir(l.VideosDir(session))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read videos dir: %w", err)
	}
	for _, e := range entries {
		idx, ok := camIndex(e)
		if !ok {
			continue
		}
		slot := CameraSlot{Index: idx, Path: l.InputMediaDir(session, idx)}
		files, err := os.ReadDir(slot.Path)
		if err == nil {
			slot.HasMedia = true
			for _, f := range files {
				if !f.IsDir() {
					slot.Files = append(slot.Files, f.Name())
				}
			}
		}
		st.Cameras = append(st.Cameras, slot)
	}
	sort.Slice(st.Cameras, func(i, j int) bool { return st.Cameras[i].Index < st.Cameras[j].Index })

	if _, err := os.Stat(st.MetadataPath); err == nil {
		st.Metadata, st.MetadataErr = metadata.Read(st.MetadataPath)
	}
	return st, nil
}

func camIndex(e os.DirEntry) (int, bool) {
	if !e.IsDir() {
		return 0, false
	}
	rest, ok := strings.CutPrefix(e.Name(), "Cam")
	if !ok {
		return 0, false
	}
	idx, err := strconv.Atoi(rest)
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

// SessionReporter writes a styled session summary.
type SessionReporter struct {
	w io.Writer
}

// NewSessionReporter creates a reporter writing to w, or os.Stdout if w is nil.
func NewSessionReporter(w io.Writer) *SessionReporter {
	if w == nil {
		w = os.Stdout
	}
	return &SessionReporter{w: w}
}

// Print writes the status of one session.
func (r *SessionReporter) Print(st *SessionStatus) {
	fmt.Fprintf(r.w, "%s %s\n", headerStyle.Render("session"), st.Name)
	fmt.Fprintf(r.w, "  %s\n", dimStyle.Render(st.Dir))
	if !st.Exists {
		fmt.Fprintf(r.w, "  %s\n", warnStyle.Render("not created"))
		return
	}

	fmt.Fprintf(r.w, "\n%s (%d)\n", headerStyle.Render("CAMERAS"), len(st.Cameras))
	for _, c := range st.Cameras {
		switch {
		case !c.HasMedia:
			fmt.Fprintf(r.w, "  Cam%d  %s\n", c.Index, failedStyle.Render("missing InputMedia"))
		case len(c.Files) == 0:
			fmt.Fprintf(r.w, "  Cam%d  %s\n", c.Index, warnStyle.Render("empty"))
		default:
			fmt.Fprintf(r.w, "  Cam%d  %s\n", c.Index, doneStyle.Render(strings.Join(c.Files, ", ")))
		}
	}

	fmt.Fprintf(r.w, "\n%s\n", headerStyle.Render("METADATA"))
	switch {
	case st.MetadataErr != nil:
		fmt.Fprintf(r.w, "  %s\n", failedStyle.Render(st.MetadataErr.Error()))
	case st.Metadata == nil:
		fmt.Fprintf(r.w, "  %s\n", warnStyle.Render("none at "+st.MetadataPath))
	default:
		m := st.Metadata
		fmt.Fprintf(r.w, "  subject  %s (%s kg, %s m)\n", m.SubjectName, m.MassKg, m.HeightM)
		devices := m.Devices()
		fmt.Fprintf(r.w, "  devices  %s\n", strings.Join(devices, ", "))
		if len(devices) != len(st.Cameras) {
			fmt.Fprintf(r.w, "  %s\n", warnStyle.Render(fmt.Sprintf("%d devices listed for %d cameras", len(devices), len(st.Cameras))))
		}
	}
}
