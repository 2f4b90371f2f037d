package system

import "math"

const (
	// FillStartAlpha is the fill opacity of a freshly created warning.
	FillStartAlpha = 25
	// OutlineStartAlpha is the outline opacity of a freshly created warning.
	OutlineStartAlpha = 255
)

// fadeAlpha scales start linearly down to 0 as progress goes from 0 to 1.
// The result is truncated toward zero and clamped to [0,255] whatever the
// progress, so clock skew can never produce an invalid opacity.
func fadeAlpha(progress float64, start int) uint8 {
	v := (1 - progress) * float64(start)
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(int(v))
}

// WarningAlphas returns the fill and outline opacity for a warning that is
// progress of the way through its lifetime.
func WarningAlphas(progress float64) (fill, outline uint8) {
	return fadeAlpha(progress, FillStartAlpha), fadeAlpha(progress, OutlineStartAlpha)
}
