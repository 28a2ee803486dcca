// Package ability estimates a learner's latent ability (theta) from a set
// of graded item responses by maximum likelihood.
package ability

import (
	"math"

	"github.com/abhisek/linguiz/internal/irt"
)

// Response pairs an administered item with whether the learner answered it
// correctly.
type Response struct {
	Item    *irt.Item
	Correct bool
}

// Config holds the numerical settings for the estimator. The defaults are
// reasonable working values, not verified psychometric constants; callers
// that care should tune them.
type Config struct {
	// Epsilon is the convergence threshold on successive theta updates.
	Epsilon float64
	// MaxIterations caps the Newton-Raphson loop. Non-convergence is not
	// an error: the best iterate is returned.
	MaxIterations int
	// ThetaMin and ThetaMax clamp the estimate. A response set that is all
	// correct or all incorrect has no interior likelihood maximum, so the
	// estimate pegs at a bound instead of diverging.
	ThetaMin float64
	ThetaMax float64
	// MaxSE is the standard error reported when no information is
	// available (zero responses, or total information ~0).
	MaxSE float64
}

// DefaultConfig returns the estimator settings used by the placement
// controller.
func DefaultConfig() Config {
	return Config{
		Epsilon:       1e-4,
		MaxIterations: 25,
		ThetaMin:      -4,
		ThetaMax:      4,
		MaxSE:         10,
	}
}

// Estimate is a maximum-likelihood ability estimate with its uncertainty.
type Estimate struct {
	Theta float64
	// SE is the standard error, 1/sqrt(total Fisher information at Theta).
	SE float64
	// Information is the total Fisher information at Theta.
	Information float64
}

// Estimator computes maximum-likelihood ability estimates. It holds no
// state beyond its configuration, so one instance can serve any number of
// tests.
type Estimator struct {
	cfg Config
}

// NewEstimator creates an estimator with the given settings.
func NewEstimator(cfg Config) *Estimator {
	return &Estimator{cfg: cfg}
}

// Config returns the estimator's settings.
func (e *Estimator) Config() Config {
	return e.cfg
}

// minInformation is the total-information floor below which the Newton step
// and the standard error are considered undefined.
const minInformation = 1e-10

// maxStep caps the magnitude of a single Newton update on the theta scale.
// Early in a test the history is often all-correct or all-incorrect and the
// estimate sits at a clamp bound, where information is tiny; an uncapped
// step would shoot to the opposite bound and oscillate instead of
// converging.
const maxStep = 1.0

// Estimate computes the MLE of theta from the responses, starting the
// search at start (callers pass the previous estimate or a seeded prior).
//
// The estimator never fails: with zero responses it returns the prior
// (start, MaxSE), and a degenerate likelihood yields a bound-clamped theta
// rather than a divergent one. Re-running it on the same responses always
// produces the same result.
func (e *Estimator) Estimate(responses []Response, start float64) Estimate {
	cfg := e.cfg
	theta := clamp(start, cfg.ThetaMin, cfg.ThetaMax)

	if len(responses) == 0 {
		return Estimate{Theta: theta, SE: cfg.MaxSE}
	}

	for i := 0; i < cfg.MaxIterations; i++ {
		score, info := scoreAndInformation(responses, theta)
		if info < minInformation {
			break
		}

		// Fisher scoring step: ascend the likelihood using the expected
		// (Fisher) information in place of the observed second derivative,
		// damped so a low-information iterate cannot overshoot.
		step := score / info
		if step > maxStep {
			step = maxStep
		} else if step < -maxStep {
			step = -maxStep
		}
		next := clamp(theta+step, cfg.ThetaMin, cfg.ThetaMax)
		delta := math.Abs(next - theta)
		theta = next
		if delta < cfg.Epsilon {
			break
		}
	}

	totalInfo := totalInformation(responses, theta)
	se := cfg.MaxSE
	if totalInfo > minInformation {
		se = 1 / math.Sqrt(totalInfo)
		if se > cfg.MaxSE {
			se = cfg.MaxSE
		}
	}

	return Estimate{Theta: theta, SE: se, Information: totalInfo}
}

// scoreAndInformation accumulates the log-likelihood first derivative and
// the total Fisher information across all responses at theta.
func scoreAndInformation(responses []Response, theta float64) (score, info float64) {
	for _, r := range responses {
		p := irt.ProbabilityCorrect(r.Item, theta)
		if p <= 0 || p >= 1 {
			continue
		}

		// dP/dtheta for the 3PL model.
		c := r.Item.Guessing
		pPrime := r.Item.Discrimination * (p - c) * (1 - p) / (1 - c)

		y := 0.0
		if r.Correct {
			y = 1.0
		}
		score += pPrime * (y - p) / (p * (1 - p))
		info += irt.FisherInformation(r.Item, theta)
	}
	return score, info
}

// totalInformation sums per-item Fisher information at theta.
func totalInformation(responses []Response, theta float64) float64 {
	total := 0.0
	for _, r := range responses {
		total += irt.FisherInformation(r.Item, theta)
	}
	return total
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
