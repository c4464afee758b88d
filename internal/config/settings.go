package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/capstage/internal/metadata"
	"github.com/ppiankov/capstage/internal/stage"
)

// DefaultPath is the settings file looked up in the working directory.
const DefaultPath = ".capstage.yml"

// Settings holds persistent CLI defaults loaded from a config file.
// Every field can be overridden from the environment.
type Settings struct {
	DataDir        string `yaml:"data_dir" env:"CAPSTAGE_DATA_DIR" validate:"required"`
	MetadataInput  string `yaml:"metadata_input" env:"CAPSTAGE_METADATA_INPUT" validate:"required"`
	MetadataOutput string `yaml:"metadata_output" env:"CAPSTAGE_METADATA_OUTPUT" validate:"required,endswith=.yaml|endswith=.yml"`
	CheckerOnly    bool   `yaml:"checker_only" env:"CAPSTAGE_CHECKER_ONLY"`
}

var validate = validator.New()

// LoadSettings reads a YAML config file into Settings, applies environment
// overrides and defaults, and validates the result.
// A missing file is not an error.
func LoadSettings(path string) (*Settings, error) {
	var s Settings

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cleanenv.ReadEnv(&s); err != nil {
		return nil, fmt.Errorf("read config env: %w", err)
	}

	if err := s.applyDefaults(); err != nil {
		return nil, err
	}

	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &s, nil
}

func (s *Settings) applyDefaults() error {
	if s.DataDir == "" {
		s.DataDir = stage.DefaultDataDir
	}
	if s.MetadataInput == "" {
		s.MetadataInput = metadata.DefaultInput
	}
	if s.MetadataOutput == "" {
		s.MetadataOutput = metadata.DefaultOutput
	}

	dir, err := homedir.Expand(s.DataDir)
	if err != nil {
		return fmt.Errorf("expand data_dir: %w", err)
	}
	s.DataDir = dir
	return nil
}
