package cefr

// DefaultSEMax is the standard error at (or above) which confidence in a
// placement bottoms out at zero. Like the band cut-points, it is a tuning
// constant rather than a psychometric truth.
const DefaultSEMax = 2.0

// Confidence converts a standard error into a [0, 1] confidence value.
// Confidence falls linearly with SE and is clamped at both ends.
func Confidence(se float64) float64 {
	return ConfidenceWithMax(se, DefaultSEMax)
}

// ConfidenceWithMax is Confidence with a caller-supplied SE ceiling.
func ConfidenceWithMax(se, seMax float64) float64 {
	if seMax <= 0 {
		return 0
	}
	c := 1 - se/seMax
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
