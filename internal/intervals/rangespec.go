package intervals

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/ebstools/ebsedit/internal/models"
)

// ErrInvalidRangeSpec is returned for a malformed compact range description
var ErrInvalidRangeSpec = errors.New("invalid range description")

// RangeSpec is the parsed form of a compact first:final:step:template
// range description.
type RangeSpec struct {
	First    int
	Final    int
	Step     int
	Template string
}

// ParseRangeSpec splits a colon-delimited first:final:step:template string
// into its four fields. The template keeps any further colons. A wrong
// field count, a non-integer numeric field, a frame number that does not
// fit the project file's int32 frame fields or a non-positive step all
// return ErrInvalidRangeSpec.
func ParseRangeSpec(s string) (RangeSpec, error) {
	parts := strings.SplitN(s, ":", 4)
	if len(parts) != 4 {
		return RangeSpec{}, fmt.Errorf("%w: expected first:final:step:template, got %d field(s)",
			ErrInvalidRangeSpec, len(parts))
	}

	first, err := parseFrame("first", parts[0])
	if err != nil {
		return RangeSpec{}, err
	}
	final, err := parseFrame("final", parts[1])
	if err != nil {
		return RangeSpec{}, err
	}
	step, err := strconv.Atoi(parts[2])
	if err != nil {
		return RangeSpec{}, fmt.Errorf("%w: step %q is not an integer", ErrInvalidRangeSpec, parts[2])
	}
	if step <= 0 {
		return RangeSpec{}, fmt.Errorf("%w: step must be positive, got %d", ErrInvalidRangeSpec, step)
	}

	return RangeSpec{First: first, Final: final, Step: step, Template: parts[3]}, nil
}

// parseFrame parses a frame number field, bounding it to the int32 range
// the project file stores frames in
func parseFrame(name, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s frame %q is not an integer", ErrInvalidRangeSpec, name, raw)
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s frame %d does not fit a 32-bit frame number", ErrInvalidRangeSpec, name, v)
	}
	return v, nil
}

// Intervals returns the generated interval sequence for the spec
func (rs RangeSpec) Intervals() iter.Seq[models.Interval] {
	return Generate(rs.First, rs.Final, rs.Step, rs.Template)
}
