package stage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func countInputMedia(t *testing.T, l Layout, session string) int {
	t.Helper()
	entries, err := os.ReadDir(l.VideosDir(session))
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for _, e := range entries {
		info, err := os.Stat(filepath.Join(l.VideosDir(session), e.Name(), "InputMedia"))
		if err == nil && info.IsDir() {
			n++
		}
	}
	return n
}

func TestEnsureSessionLayout_CameraCounts(t *testing.T) {
	for _, n := range []int{2, 3, 4} {
		l := NewLayout(filepath.Join(t.TempDir(), "Data"))
		dir, err := l.EnsureSessionLayout("s1", n)
		if err != nil {
			t.Fatalf("cameras=%d: %v", n, err)
		}
		if dir != filepath.Join(l.Base, "s1") {
			t.Errorf("dir = %q, want %q", dir, filepath.Join(l.Base, "s1"))
		}
		if got := countInputMedia(t, l, "s1"); got != n {
			t.Errorf("cameras=%d: got %d InputMedia dirs", n, got)
		}
	}
}

func TestEnsureSessionLayout_ExistingSessionUntouched(t *testing.T) {
	l := NewLayout(filepath.Join(t.TempDir(), "Data"))
	if _, err := l.EnsureSessionLayout("s1", 2); err != nil {
		t.Fatal(err)
	}
	if _, err := l.EnsureSessionLayout("s1", 4); err != nil {
		t.Fatal(err)
	}
	if got := countInputMedia(t, l, "s1"); got != 2 {
		t.Errorf("existing session changed: got %d InputMedia dirs, want 2", got)
	}
	if _, err := os.Stat(l.InputMediaDir("s1", 2)); !os.IsNotExist(err) {
		t.Errorf("Cam2 should not exist, stat err = %v", err)
	}
}

func TestEnsureSessionLayout_CreatesBase(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "Data")
	l := NewLayout(base)
	if _, err := l.EnsureSessionLayout("s1", 0); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(base)
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Error("base is not a directory")
	}
}

func TestEnsureSessionLayout_TimestampName(t *testing.T) {
	orig := now
	now = func() time.Time { return time.Unix(1700000000, 500000000) }
	defer func() { now = orig }()

	l := NewLayout(filepath.Join(t.TempDir(), "Data"))
	dir, err := l.EnsureSessionLayout("", 2)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(dir) != "1700000000.5" {
		t.Errorf("session name = %q, want 1700000000.5", filepath.Base(dir))
	}
	if _, err := os.Stat(l.InputMediaDir("1700000000.5", 1)); err != nil {
		t.Errorf("Cam1 missing: %v", err)
	}
}

func TestNewLayout_Default(t *testing.T) {
	if got := NewLayout("").Base; got != DefaultDataDir {
		t.Errorf("Base = %q, want %q", got, DefaultDataDir)
	}
}

func TestInputMediaDir(t *testing.T) {
	l := NewLayout("/data")
	want := filepath.Join("/data", "s1", "Videos", "Cam3", "InputMedia")
	if got := l.InputMediaDir("s1", 3); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
