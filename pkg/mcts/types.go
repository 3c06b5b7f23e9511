// Package mcts implements a general-purpose Monte Carlo Tree Search engine:
// a mutable search tree grown under a UCT selection policy, a pluggable
// rollout-strategy registry, and a small worker pool that fans out the
// simulation step of each iteration.
//
// Concrete games are external collaborators: implement Move and GameState
// against the contract in game.go and hand a GameState to NewAgent or
// NewTree.
package mcts

// Result is a rollout/backpropagation reward: a self-side win probability
// in [0, 1].
type Result = float64

// StopReason explains why Tree.GrowTree stopped growing the tree.
type StopReason int

const (
	// StopNone means GrowTree has not run, or is still running.
	StopNone StopReason = iota
	// StopIterations means the iteration cap (maxIter) was reached.
	StopIterations
	// StopTime means the wall-clock cap (maxSeconds) was reached.
	StopTime
	// StopExternal means the context attached with Tree.SetContext was
	// cancelled, as observed between iterations.
	StopExternal
)

func (r StopReason) String() string {
	switch r {
	case StopIterations:
		return "Iterations"
	case StopTime:
		return "Time"
	case StopExternal:
		return "External"
	default:
		return "None"
	}
}
