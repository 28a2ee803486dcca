// Package cefr maps between the engine's latent ability scale (theta) and
// the six CEFR proficiency bands A1-C2.
package cefr

import (
	"fmt"
	"strings"
)

// Level is one of the six CEFR proficiency bands.
type Level string

const (
	A1 Level = "A1"
	A2 Level = "A2"
	B1 Level = "B1"
	B2 Level = "B2"
	C1 Level = "C1"
	C2 Level = "C2"
)

// AllLevels returns the levels in ascending order of proficiency.
func AllLevels() []Level {
	return []Level{A1, A2, B1, B2, C1, C2}
}

// Valid reports whether l is a known level.
func (l Level) Valid() bool {
	switch l {
	case A1, A2, B1, B2, C1, C2:
		return true
	}
	return false
}

// Index returns the level's position on the ascending scale (A1=0 .. C2=5),
// or -1 for an unknown level.
func (l Level) Index() int {
	for i, lv := range AllLevels() {
		if l == lv {
			return i
		}
	}
	return -1
}

// DisplayName returns a human-readable label for the level.
func (l Level) DisplayName() string {
	switch l {
	case A1:
		return "A1 — Beginner"
	case A2:
		return "A2 — Elementary"
	case B1:
		return "B1 — Intermediate"
	case B2:
		return "B2 — Upper Intermediate"
	case C1:
		return "C1 — Advanced"
	case C2:
		return "C2 — Proficient"
	default:
		return string(l)
	}
}

// ParseLevel converts a user-supplied string ("b1", "B1") to a Level.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToUpper(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("unknown CEFR level: %q", s)
	}
	return l, nil
}

// Band is one row of the theta-to-level mapping table. Theta values in
// [Lower, Upper) fall into the band; Midpoint is used when a level must be
// converted back to a theta (e.g. seeding a test from a self-reported
// level). The outer bands are open-ended, so their midpoints are anchored
// half a unit past the finite bound.
type Band struct {
	Level    Level
	Lower    float64 // inclusive; -inf for A1
	Upper    float64 // exclusive; +inf for C2
	Midpoint float64
}

// Bands is the cut-point table mapping theta onto CEFR bands. The
// thresholds are calibration data, not business logic; adjust them here if
// the bank is recalibrated.
var Bands = []Band{
	{Level: A1, Lower: negInf, Upper: -1.5, Midpoint: -2.0},
	{Level: A2, Lower: -1.5, Upper: -0.5, Midpoint: -1.0},
	{Level: B1, Lower: -0.5, Upper: 0.5, Midpoint: 0.0},
	{Level: B2, Lower: 0.5, Upper: 1.25, Midpoint: 0.875},
	{Level: C1, Lower: 1.25, Upper: 2.0, Midpoint: 1.625},
	{Level: C2, Lower: 2.0, Upper: posInf, Midpoint: 2.5},
}

const (
	negInf = -1e308
	posInf = 1e308
)

// LevelForTheta maps an ability estimate onto its CEFR band.
func LevelForTheta(theta float64) Level {
	for _, b := range Bands {
		if theta >= b.Lower && theta < b.Upper {
			return b.Level
		}
	}
	return C2
}

// ThetaForLevel returns the band midpoint for a level, used to seed a test
// from a prior level. Unknown levels map to 0 (the B1 midpoint).
func ThetaForLevel(l Level) float64 {
	for _, b := range Bands {
		if b.Level == l {
			return b.Midpoint
		}
	}
	return 0
}
