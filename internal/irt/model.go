// Package irt implements the three-parameter logistic (3PL) item response
// model used by the placement engine: calibrated items, response
// probabilities, and Fisher information.
package irt

import "math"

// maxExponent bounds the logistic exponent so that exp() never overflows.
// exp(±35) is already far past the point where the curve is numerically
// indistinguishable from its asymptote.
const maxExponent = 35.0

// ProbabilityCorrect returns the 3PL probability that a learner with
// ability theta answers the item correctly:
//
//	p = c + (1-c) / (1 + exp(-a(theta-b)))
//
// The result is strictly increasing in theta and bounded in [c, 1).
func ProbabilityCorrect(item *Item, theta float64) float64 {
	exponent := item.Discrimination * (theta - item.Difficulty)
	if exponent > maxExponent {
		exponent = maxExponent
	} else if exponent < -maxExponent {
		exponent = -maxExponent
	}
	return item.Guessing + (1-item.Guessing)/(1+math.Exp(-exponent))
}

// FisherInformation returns the information the item carries about theta:
//
//	I = a² (p-c)² (1-p) / (p (1-c)²)
//
// It is non-negative for any valid item and finite theta, and 0 for a
// degenerate item (c >= 1) or when p is 0.
func FisherInformation(item *Item, theta float64) float64 {
	if item.Guessing >= 1 {
		return 0
	}
	p := ProbabilityCorrect(item, theta)
	if p <= 0 {
		return 0
	}
	a := item.Discrimination
	c := item.Guessing
	num := a * a * (p - c) * (p - c) * (1 - p)
	den := p * (1 - c) * (1 - c)
	return num / den
}
