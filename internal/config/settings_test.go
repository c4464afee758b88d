package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".capstage.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSettings_Valid(t *testing.T) {
	content := `
data_dir: /srv/capture/Data
metadata_input: subject.txt
metadata_output: subject.yml
checker_only: true
`
	s, err := LoadSettings(writeTemp(t, content))
	if err != nil {
		t.Fatal(err)
	}

	if s.DataDir != "/srv/capture/Data" {
		t.Errorf("data_dir: got %q", s.DataDir)
	}
	if s.MetadataInput != "subject.txt" {
		t.Errorf("metadata_input: got %q", s.MetadataInput)
	}
	if s.MetadataOutput != "subject.yml" {
		t.Errorf("metadata_output: got %q", s.MetadataOutput)
	}
	if !s.CheckerOnly {
		t.Error("checker_only: got false, want true")
	}
}

func TestLoadSettings_MissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nonexistent.yml"))
	if err != nil {
		t.Fatal(err)
	}
	if s.DataDir != "../Data" {
		t.Errorf("data_dir: got %q, want ../Data", s.DataDir)
	}
	if s.MetadataInput != "metadata.txt" || s.MetadataOutput != "metadata.yaml" {
		t.Errorf("metadata defaults: got %q, %q", s.MetadataInput, s.MetadataOutput)
	}
	if s.CheckerOnly {
		t.Error("checker_only should default to false")
	}
}

func TestLoadSettings_InvalidYAML(t *testing.T) {
	if _, err := LoadSettings(writeTemp(t, "data_dir: [unclosed")); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoadSettings_BadOutputExtension(t *testing.T) {
	_, err := LoadSettings(writeTemp(t, "metadata_output: metadata.json\n"))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "MetadataOutput") {
		t.Errorf("error should name the field: %v", err)
	}
}

func TestLoadSettings_EnvOverride(t *testing.T) {
	t.Setenv("CAPSTAGE_DATA_DIR", "/env/Data")
	t.Setenv("CAPSTAGE_CHECKER_ONLY", "true")

	s, err := LoadSettings(writeTemp(t, "data_dir: /file/Data\n"))
	if err != nil {
		t.Fatal(err)
	}
	if s.DataDir != "/env/Data" {
		t.Errorf("data_dir: got %q, want /env/Data", s.DataDir)
	}
	if !s.CheckerOnly {
		t.Error("checker_only: env override not applied")
	}
}

func TestLoadSettings_HomeExpansion(t *testing.T) {
	home, err := homedir.Dir()
	if err != nil {
		t.Skip("no home directory")
	}
	s, err := LoadSettings(writeTemp(t, "data_dir: ~/capture/Data\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(home, "capture", "Data")
	if s.DataDir != want {
		t.Errorf("data_dir: got %q, want %q", s.DataDir, want)
	}
}
