// Package selector picks the next item to administer: the unused item
// carrying the most Fisher information at the current ability estimate.
package selector

import (
	"math"

	"github.com/abhisek/linguiz/internal/cefr"
	"github.com/abhisek/linguiz/internal/irt"
)

// infoTolerance is the absolute tolerance within which two items count as
// equally informative and the tie-break applies.
const infoTolerance = 1e-9

// NextItem returns the item from pool maximizing Fisher information at
// theta, skipping any item whose ID appears in administered. Ties within
// tolerance are broken by proximity of the item's target level to theta,
// then by lowest ID so selection is deterministic.
//
// ok is false when every pool item has already been administered.
func NextItem(pool []*irt.Item, administered map[string]bool, theta float64) (item *irt.Item, ok bool) {
	var best *irt.Item
	bestInfo := math.Inf(-1)

	for _, candidate := range pool {
		if administered[candidate.ID] {
			continue
		}

		info := irt.FisherInformation(candidate, theta)
		switch {
		case best == nil || info > bestInfo+infoTolerance:
			best = candidate
			bestInfo = info
		case info > bestInfo-infoTolerance:
			if preferOnTie(candidate, best, theta) {
				best = candidate
				bestInfo = info
			}
		}
	}

	if best == nil {
		return nil, false
	}
	return best, true
}

// preferOnTie reports whether candidate should replace incumbent when both
// carry the same information.
func preferOnTie(candidate, incumbent *irt.Item, theta float64) bool {
	cd := levelDistance(candidate.TargetLevel, theta)
	id := levelDistance(incumbent.TargetLevel, theta)
	if cd != id {
		return cd < id
	}
	return candidate.ID < incumbent.ID
}

// levelDistance measures how far an item's calibrated target level sits
// from the current ability estimate, on the theta scale.
func levelDistance(level cefr.Level, theta float64) float64 {
	return math.Abs(cefr.ThetaForLevel(level) - theta)
}
