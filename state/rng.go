package state

import (
	"math/rand"
	"time"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// rngFromClock returns an unpinned stream, used when no seed was requested.
func rngFromClock() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
