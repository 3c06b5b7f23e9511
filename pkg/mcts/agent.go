package mcts

// Default search budget used by NewAgent when the caller passes a
// non-positive value.
const (
	DefaultMaxIterations = 100000
	DefaultMaxSeconds    = 30.0
)

// Agent is the caller-facing driver loop: one persistent Tree plus the
// iteration/time budget applied on every Genmove call. It is the natural
// entry point for a host embedding this engine instead of managing a
// Tree directly.
type Agent struct {
	tree       *Tree
	maxIter    int
	maxSeconds float64
}

// NewAgent constructs an Agent rooted at initial. maxIter <= 0 and
// maxSeconds <= 0 fall back to DefaultMaxIterations/DefaultMaxSeconds
// respectively.
func NewAgent(initial GameState, maxIter int, maxSeconds float64) *Agent {
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	if maxSeconds <= 0 {
		maxSeconds = DefaultMaxSeconds
	}
	return &Agent{
		tree:       NewTree(initial),
		maxIter:    maxIter,
		maxSeconds: maxSeconds,
	}
}

// Tree exposes the underlying search tree, e.g. to attach a StatsListener
// or override the exploration constant.
func (a *Agent) Tree() *Tree { return a.tree }

// CurrentState returns the game state at the agent's current root.
func (a *Agent) CurrentState() GameState { return a.tree.root.state }

// Genmove advances past the opponent's move (if any), grows the tree
// under the agent's budget, and advances to the chosen reply. enemyMove
// == nil means the agent moves first from its current root.
//
// If enemyMove does not match any expanded child, the tree is rebuilt
// from the resulting state rather than left stale. If the position after
// the opponent's move is terminal, Genmove returns (nil, nil): game over
// is not an error.
func (a *Agent) Genmove(enemyMove Move) (Move, error) {
	if enemyMove != nil {
		if !a.tree.AdvanceTree(enemyMove) {
			next, err := applyMove(a.tree.root.state, enemyMove)
			if err != nil {
				return nil, err
			}
			a.tree = NewTree(next)
			a.tree.listener = nil
		}
	}

	if a.tree.root.terminal {
		return nil, nil
	}

	if _, err := a.tree.GrowTree(a.maxIter, a.maxSeconds); err != nil {
		return nil, err
	}

	best := a.tree.SelectBestChild()
	if best == nil {
		// No children were ever expanded: GrowTree checks its budget before
		// the first iteration, so a maxSeconds that has already elapsed by
		// then (or a cancelled context on the tree) runs zero iterations.
		return nil, &InvalidArgumentError{Arg: "max_iter/max_seconds", Value: "too small to expand any move"}
	}

	move := best.move
	a.tree.AdvanceTree(move)
	return move, nil
}

// Feedback prints the current tree's search diagnostics to stdout via
// PrintStats.
func (a *Agent) Feedback() {
	a.tree.PrintStats()
}
