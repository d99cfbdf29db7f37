// Package intervals generates overlapping frame intervals from a compact
// range description. A stepped sequence of sample points is slid over with
// a three-point window, so every produced interval has its key frame
// flanked by real neighboring sample points from the same sequence.
package intervals

import (
	"iter"

	"github.com/ebstools/ebsedit/internal/models"
)

// Generate returns a lazy, finite sequence of intervals built from the
// stepped sequence first, first+step, ... up to and including final. Each
// window of three consecutive sample points (a, b, c) yields one interval
// with first frame a, key frame b and final frame c, both boundary flags
// set. Fewer than three sample points produce no intervals, as does a
// non-positive step. Sample values are stored in the interval's int32
// frame fields; ParseRangeSpec rejects frame numbers outside that range
// before they can reach this truncation.
//
// The template's index placeholder is expanded with the 1-based position
// of the produced interval; see OutputPath for the placeholder syntax.
// Ranging over the result again restarts the computation.
func Generate(first, final, step int, template string) iter.Seq[models.Interval] {
	return func(yield func(models.Interval) bool) {
		if step <= 0 {
			return
		}
		pat, hasIndex := indexPattern(template)
		var back2, back1 int
		seen := 0
		index := 0
		for v := first; v <= final; v += step {
			seen++
			if seen >= 3 {
				index++
				path := template
				if hasIndex {
					path = expandIndex(pat, index)
				}
				iv := models.Interval{
					KeyFrame:         int32(back1),
					FirstFrameIsUsed: true,
					FinalFrameIsUsed: true,
					FirstFrame:       int32(back2),
					FinalFrame:       int32(v),
					OutputPath:       path,
				}
				if !yield(iv) {
					return
				}
			}
			back2, back1 = back1, v
		}
	}
}
