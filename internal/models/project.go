package models

const (
	// ProgramVersion is the program version tag written at the start of
	// every project file
	ProgramVersion = "EBS05"

	// ProjectVersion is the project file structure version tag written
	// after the interval list
	ProjectVersion = "V02"

	// MagicNumber is the uninterpreted integer value that appears at the
	// end of project files
	MagicNumber = 704
)

// Project represents a complete EbSynth project file.
// Numeric fields are stored exactly as found on disk; nothing is
// range-checked here or in the codec.
type Project struct {
	// ProgramVersion is the version tag of the program that wrote the file
	ProgramVersion string

	// ProjectVersion is the version tag of the file structure
	ProjectVersion string

	// FramesPerSecond is used for the After Effects export
	FramesPerSecond float32

	// KeysPath is the relative path template to the keyframe images
	KeysPath string

	// VideoPath is the relative path template to the video images
	VideoPath string

	// MaskPath is the relative path template to the mask images
	MaskPath string

	// UseMask reports whether the mask images are used
	UseMask bool

	// KeysWeight is the weight of the keyframe images
	KeysWeight float32

	// VideoWeight is the weight of the video images
	VideoWeight float32

	// MaskWeight is the weight of the mask images
	MaskWeight float32

	// Mapping encourages strokes to appear at the same location
	Mapping float32

	// DeFlicker suppresses texture flickering between frames
	DeFlicker float32

	// Diversity controls the visual richness of the style
	Diversity float32

	// Intervals lists all frame intervals that are synthesized, in
	// on-disk order
	Intervals []Interval

	// SynthesisDetail is the quality level of the synthesis (1-4)
	SynthesisDetail int32

	// UseGPU reports whether the GPU is used for the synthesis
	UseGPU bool

	// MagicNumber is the trailing sentinel value, 704 by convention
	MagicNumber int32
}

// DefaultProject returns a project with the stock EbSynth values and a
// single default interval
func DefaultProject() Project {
	return Project{
		ProgramVersion:  ProgramVersion,
		ProjectVersion:  ProjectVersion,
		FramesPerSecond: 30.0,
		KeysPath:        `keys\[#####].png`,
		VideoPath:       `video\[#####].png`,
		MaskPath:        `mask\[#####].png`,
		KeysWeight:      1.0,
		VideoWeight:     4.0,
		MaskWeight:      1.0,
		Mapping:         10.0,
		DeFlicker:       1.0,
		Diversity:       3500.0,
		Intervals:       []Interval{DefaultInterval()},
		SynthesisDetail: 2,
		UseGPU:          true,
		MagicNumber:     MagicNumber,
	}
}

// SynthesisDetailName returns the display name for a synthesis detail level
func SynthesisDetailName(level int32) string {
	switch level {
	case 1:
		return "High"
	case 2:
		return "Medium"
	case 3:
		return "Low"
	case 4:
		return "Garbage"
	default:
		return "Unknown"
	}
}
