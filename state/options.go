package state

import (
	"fmt"
	"math/rand"
)

// DefaultPortalProbability is the chance that a portal teleports the robot to
// the other portals instead of sending it back to the start.
const DefaultPortalProbability = 0.7

// HazardWeight scales the Euclidean distance to the fire cell.
const HazardWeight = 7.0

// Option configures a robot Factory.
// If an Option is invalid it is recorded and surfaced as ErrOptionViolation
// when the Factory is invoked.
type Option func(*Options)

// Options holds the parameters of a robot Factory.
type Options struct {
	// Rand drives the portal outcome. Not safe for concurrent use, so a
	// Factory and the states it builds must stay on one goroutine.
	Rand *rand.Rand

	// PortalProbability is the teleport chance in [0, 1].
	PortalProbability float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns clock-seeded randomness and the 0.7 teleport chance.
func DefaultOptions() Options {
	return Options{
		PortalProbability: DefaultPortalProbability,
	}
}

// WithSeed pins the portal stream. Seed 0 selects a fixed default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rngFromSeed(seed)
	}
}

// WithRand injects a caller-owned random source.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithPortalProbability sets the teleport chance.
//
//	0 ≤ p ≤ 1: valid
//	otherwise: ErrOptionViolation
func WithPortalProbability(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: portal probability %v outside [0, 1]", ErrOptionViolation, p)
			return
		}
		o.PortalProbability = p
	}
}
