package metadata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/capstage/internal/stage"
)

// Default file names used when none are given.
const (
	DefaultInput  = "metadata.txt"
	DefaultOutput = "metadata.yaml"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Parse reads "parameter value" lines from r and validates them. Blank lines
// are skipped; line numbers in errors count from 0 and include blank lines.
// name identifies the input in error messages.
func Parse(r io.Reader, name string) (Fields, error) {
	fields := make(Fields)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	n := -1
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		content := strings.Split(line, " ")
		slog.Debug("metadata line", "line", n, "tokens", content)

		if len(content) != 2 {
			return nil, stage.LineErrorf(stage.ErrFormat, n,
				"recheck the formatting of %s at line %d: expected two arguments '[parameter] [value]', got %d",
				name, n, len(content))
		}
		param, value := content[0], content[1]

		if err := checkValue(n, param, value); err != nil {
			return nil, err
		}
		fields[param] = value
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, stage.LineErrorf(stage.ErrFormat, n+1,
				"line %d of %s is longer than %d bytes", n+1, name, maxLineSize)
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	for _, k := range knownKeys {
		if optionalKeys[k] {
			continue
		}
		if _, ok := fields[k]; !ok {
			return nil, stage.Errorf(stage.ErrValidation,
				"missing one or more parameters\nrequired parameters: %s\nprovided parameters: %s",
				strings.Join(knownKeys, ", "), strings.Join(fields.keys(), ", "))
		}
	}

	return fields, nil
}

func checkValue(n int, param, value string) error {
	switch param {
	case KeyMass, KeyHeight:
		if !canBeFloat(value) {
			return stage.LineErrorf(stage.ErrValidation, n,
				"the value %s passed alongside %s cannot be converted to a float", value, param)
		}
	case KeySubjectName:
	case KeyDevice1, KeyDevice2, KeyDevice3, KeyDevice4:
		if !IsValidDevice(value) {
			return stage.LineErrorf(stage.ErrValidation, n,
				"the device model %s is not a valid device identifier\nsee %s and look at the identifier column for that device",
				value, DeviceReference)
		}
	default:
		return stage.LineErrorf(stage.ErrFormat, n,
			"invalid parameter %q at line %d; the recognized parameters are: %s",
			param, n, strings.Join(knownKeys, ", "))
	}
	return nil
}

// canBeFloat accepts anything ParseFloat reads, including out-of-range
// magnitudes that round to infinity.
func canBeFloat(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}

// keys returns the provided keys in recognized-key order.
func (f Fields) keys() []string {
	var out []string
	for _, k := range knownKeys {
		if _, ok := f[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// Load parses input, enriches it with defaults and writes the document to
// output. Nothing is written unless the whole input validates.
func Load(input, output string, checkerOnly bool) (*Record, error) {
	if input == "" {
		input = DefaultInput
	}
	if output == "" {
		output = DefaultOutput
	}

	f, err := os.Open(input)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, stage.Errorf(stage.ErrNotFound, "metadata input %s does not exist", input)
		}
		return nil, fmt.Errorf("open metadata input: %w", err)
	}
	defer func() { _ = f.Close() }()

	fields, err := Parse(f, input)
	if err != nil {
		return nil, err
	}

	rec := Enrich(fields, checkerOnly)
	if err := Write(rec, output); err != nil {
		return nil, err
	}
	slog.Debug("metadata written", "path", output, "checker_only", checkerOnly)
	return &rec, nil
}

// Write marshals rec to path, replacing any existing file atomically.
func Write(rec Record, path string) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create metadata dir: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename metadata: %w", err)
	}
	return nil
}

// Read loads a previously written metadata document.
func Read(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse metadata %s: %w", path, err)
	}
	return &rec, nil
}
