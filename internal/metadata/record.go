// Package metadata turns a hand-written "key value" text file into the
// session metadata document read by the processing pipeline.
package metadata

// Keys recognized in the input file, in the order they are reported.
const (
	KeyMass        = "mass_kg"
	KeyHeight      = "height_m"
	KeySubjectName = "subject_name"
	KeyDevice1     = "device1"
	KeyDevice2     = "device2"
	KeyDevice3     = "device3"
	KeyDevice4     = "device4"
)

var knownKeys = []string{KeyMass, KeyHeight, KeySubjectName, KeyDevice1, KeyDevice2, KeyDevice3, KeyDevice4}

// optionalKeys may be absent from a complete input.
var optionalKeys = map[string]bool{KeyDevice3: true, KeyDevice4: true}

// Record is the enriched metadata document. Fields are declared in the
// document's key order.
type Record struct {
	AugmenterModel  string       `yaml:"augmentermodel,omitempty"`
	CheckerBoard    CheckerBoard `yaml:"checkerBoard"`
	Device1         string       `yaml:"device1"`
	Device2         string       `yaml:"device2"`
	Device3         string       `yaml:"device3,omitempty"`
	Device4         string       `yaml:"device4,omitempty"`
	FilterFrequency string       `yaml:"filterFrequency,omitempty"`
	HeightM         string       `yaml:"height_m"`
	MassKg          string       `yaml:"mass_kg"`
	OpenSimModel    string       `yaml:"openSimModel,omitempty"`
	PoseModel       string       `yaml:"posemodel,omitempty"`
	SubjectName     string       `yaml:"subject_name"`
}

// CheckerBoard describes the calibration target.
type CheckerBoard struct {
	CornersHeight    int    `yaml:"black2BlackCornersHeight_n"`
	CornersWidth     int    `yaml:"black2BlackCornersWidth_n"`
	Placement        string `yaml:"placement"`
	SquareSideLength int    `yaml:"squareSideLength_mm"`
}

// Fields holds the validated operator-supplied values, keyed by input key.
type Fields map[string]string

// Devices returns the recorded device identifiers in camera order,
// skipping absent optional devices.
func (r Record) Devices() []string {
	var out []string
	for _, d := range []string{r.Device1, r.Device2, r.Device3, r.Device4} {
		if d != "" {
			out = append(out, d)
		}
	}
	return out
}
