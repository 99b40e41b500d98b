// Package estimate predicts compressed archive sizes for display purposes.
// The curve is a heuristic: the real size depends on the archiver and the
// actual file content, neither of which is known at estimation time.
package estimate

import "math"

// Per-level shrink factor. Level 0 is stored as-is; each level above it
// removes a further 8% of the input, bottoming out at 28% for level 9.
const shrinkPerLevel = 0.08

// CompressedSize predicts the archive size for totalBytes of input at the
// given deflate level. Monotonic: more input never predicts fewer bytes,
// a higher level never predicts more. Levels outside 0-9 are clamped.
func CompressedSize(totalBytes int64, level int) int64 {
	if totalBytes <= 0 {
		return 0
	}
	if level < 0 {
		level = 0
	}
	if level > 9 {
		level = 9
	}

	ratio := 1.0 - shrinkPerLevel*float64(level)
	return int64(math.Ceil(float64(totalBytes) * ratio))
}
