package models

// Interval represents one synthesized frame range in an EbSynth project.
// A keyframe propagates its style to every frame between FirstFrame and
// FinalFrame inclusive.
type Interval struct {
	// KeyFrame is the number of the frame used as the style source
	KeyFrame int32

	// FirstFrameIsUsed reports whether the first frame boundary is active
	FirstFrameIsUsed bool

	// FinalFrameIsUsed reports whether the final frame boundary is active
	FinalFrameIsUsed bool

	// FirstFrame is the number of the first frame in the range
	FirstFrame int32

	// FinalFrame is the number of the final frame in the range
	FinalFrame int32

	// OutputPath is the relative path template for the synthesized frames
	OutputPath string
}

// DefaultInterval returns an interval with the stock EbSynth values
func DefaultInterval() Interval {
	return Interval{
		KeyFrame:   1,
		FirstFrame: 1,
		FinalFrame: 1,
		OutputPath: `out\[#####].png`,
	}
}
