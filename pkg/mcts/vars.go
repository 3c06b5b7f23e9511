package mcts

import (
	"math"
	"math/rand"
	"time"
)

// DefaultExplorationConstant is the c used in the UCT formula
// (winrate + c*sqrt(ln(parentVisits)/childVisits)) when a Tree is created
// with NewTree. Theoretical value is sqrt(2); callers may tune it per
// game with Tree.SetExplorationConstant.
const DefaultExplorationConstant = math.Sqrt2

// SeedGeneratorFunc produces a seed for a worker's thread-local PRNG.
type SeedGeneratorFunc func() int64

// seedGeneratorFn is swappable so tests can make the worker-local PRNGs,
// and with them the Mixed-strategy coin flips, reproducible. It has no
// effect on the order in which scheduler workers run jobs.
var seedGeneratorFn SeedGeneratorFunc = func() int64 {
	return time.Now().UnixNano()
}

// SetSeedGeneratorFn overrides how worker-local PRNGs are seeded. Default
// uses the current time in nanoseconds. Primarily useful for
// reproducible tests.
func SetSeedGeneratorFn(f SeedGeneratorFunc) {
	if f != nil {
		seedGeneratorFn = f
	}
}

// newWorkerRand builds a worker-local PRNG for worker #offset, seeded
// once when the worker goroutine starts.
func newWorkerRand(offset int64) *rand.Rand {
	return rand.New(rand.NewSource(seedGeneratorFn() + offset))
}
