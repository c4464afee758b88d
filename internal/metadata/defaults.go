package metadata

// Values the pipeline assumes when the capture client does not send them.
const (
	DefaultPoseModel       = "openpose"
	DefaultOpenSimModel    = "LaiUhlrich2022"
	DefaultFilterFrequency = "default"
	DefaultAugmenterModel  = "v0.2"
)

// DefaultCheckerBoard is the recommended printed calibration board.
var DefaultCheckerBoard = CheckerBoard{
	SquareSideLength: 35,
	CornersWidth:     5,
	CornersHeight:    4,
	Placement:        "backWall",
}

// Enrich builds the metadata document from validated fields. With
// checkerOnly set, only the checkerboard is added and the model defaults
// are left out.
func Enrich(f Fields, checkerOnly bool) Record {
	r := Record{
		MassKg:       f[KeyMass],
		HeightM:      f[KeyHeight],
		SubjectName:  f[KeySubjectName],
		Device1:      f[KeyDevice1],
		Device2:      f[KeyDevice2],
		Device3:      f[KeyDevice3],
		Device4:      f[KeyDevice4],
		CheckerBoard: DefaultCheckerBoard,
	}
	if !checkerOnly {
		r.PoseModel = DefaultPoseModel
		r.OpenSimModel = DefaultOpenSimModel
		r.FilterFrequency = DefaultFilterFrequency
		r.AugmenterModel = DefaultAugmenterModel
	}
	return r
}
