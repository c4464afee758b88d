package stage

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Allowed video container suffixes, matched case-sensitively on the last four characters.
var videoExts = []string{".mov", ".avi"}

// Supported camera counts per session.
const (
	MinCameras = 2
	MaxCameras = 4
)

// AddVideos copies two to four source videos into the session, one per camera
// slot in argument order. Empty paths are dropped before camera indices are
// assigned. The layout is created first, then every path is validated, and
// only then is anything copied.
func (l Layout) AddVideos(session string, paths ...string) error {
	if session == "" {
		return Errorf(ErrFormat, "a session name is required to add videos")
	}

	var videos []string
	for _, p := range paths {
		if p != "" {
			videos = append(videos, p)
		}
	}
	if len(videos) < MinCameras || len(videos) > MaxCameras {
		return Errorf(ErrFormat, "expected between %d and %d video paths, got %d", MinCameras, MaxCameras, len(videos))
	}

	slog.Debug("adding videos", "session", session, "paths", videos)

	if _, err := l.EnsureSessionLayout(session, len(videos)); err != nil {
		return err
	}

	for i, p := range videos {
		videos[i] = NormalizePath(p)
	}

	for i, p := range videos {
		if err := l.checkVideo(session, i, p); err != nil {
			return err
		}
	}

	for i, p := range videos {
		dst := l.InputMediaDir(session, i)
		if err := copyIntoDir(p, dst); err != nil {
			return fmt.Errorf("copy video%d: %w", i, err)
		}
		slog.Debug("copied video", "src", p, "dst", dst)
	}
	return nil
}

// NormalizePath strips one pair of wrapping double quotes, as added by
// "copy as path" on Windows. Backslashes are left as they are.
func NormalizePath(p string) string {
	if len(p) >= 2 && p[0] == '"' && p[len(p)-1] == '"' {
		return p[1 : len(p)-1]
	}
	return p
}

func (l Layout) checkVideo(session string, idx int, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Errorf(ErrNotFound, "the path to video%d does not exist: %s", idx, path)
		}
		return fmt.Errorf("stat video%d: %w", idx, err)
	}

	if !hasVideoExt(path) {
		return Errorf(ErrFormat, "video%d and all other videos must be a .mov or a .avi file: %s", idx, path)
	}

	media := l.InputMediaDir(session, idx)
	if info, err := os.Stat(media); err != nil || !info.IsDir() {
		return Errorf(ErrLayout,
			"session %q has no folder structure for %d videos (missing %s)\n"+
				"run the layout step with a camera count between %d and %d\n"+
				"if you never put any other videos in %s, you can delete the folder and reuse the name",
			session, idx+1, media, MinCameras, MaxCameras, session)
	}
	return nil
}

func hasVideoExt(path string) bool {
	if len(path) < 4 {
		return false
	}
	suffix := path[len(path)-4:]
	for _, ext := range videoExts {
		if suffix == ext {
			return true
		}
	}
	return false
}

// copyIntoDir copies src into dir under its base name, overwriting any
// existing file and carrying over the permission bits.
func copyIntoDir(src, dir string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	dst := filepath.Join(dir, filepath.Base(src))
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chmod(dst, info.Mode().Perm())
}
