package mcts

import (
	"context"
	"time"
)

// Tree owns exactly one root Node. Its lifetime spans the time a caller
// is reasoning about one position.
type Tree struct {
	root         *Node
	explorationC float64
	scheduler    *Scheduler
	listener     *StatsListener

	cycles       int
	stopReason   StopReason
	maxDepth     int
	searchStart  time.Time
	searching    bool
	finalElapsed time.Duration

	ctx    context.Context
	cancel context.CancelFunc
}

// NewTree builds a tree rooted at initial, taking ownership of it. Uses
// DefaultExplorationConstant for UCT selection.
func NewTree(initial GameState) *Tree {
	return &Tree{
		root:         newNode(nil, initial, nil),
		explorationC: DefaultExplorationConstant,
		ctx:          context.Background(),
	}
}

// Root returns the current root node.
func (t *Tree) Root() *Node { return t.root }

// Size returns the number of nodes in the tree.
func (t *Tree) Size() int { return t.root.size }

// ExplorationConstant returns the c used in UCT child selection.
func (t *Tree) ExplorationConstant() float64 { return t.explorationC }

// SetExplorationConstant overrides the c used in UCT child selection
// (default DefaultExplorationConstant, i.e. sqrt(2)).
func (t *Tree) SetExplorationConstant(c float64) { t.explorationC = c }

// SetListener attaches a StatsListener for live search telemetry.
func (t *Tree) SetListener(l *StatsListener) { t.listener = l }

// SetContext attaches a context whose cancellation stops GrowTree between
// iterations. A running iteration always completes; this only affects
// the check made between iterations.
func (t *Tree) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	t.ctx = ctx
}

// StopReason reports why the last GrowTree call stopped.
func (t *Tree) StopReason() StopReason { return t.stopReason }

// Cycles reports the total number of iterations run across all GrowTree
// calls on this tree.
func (t *Tree) Cycles() int { return t.cycles }

// MaxDepth returns the deepest node reached during selection/expansion
// since this tree (or its current root, after an AdvanceTree) was
// created.
func (t *Tree) MaxDepth() int { return t.maxDepth }

// GrowTree grows the tree under an iteration cap and/or wall-clock cap.
// maxIter <= 0 means no iteration cap; maxSeconds <= 0 means no time cap;
// at least one of the two must be set, or GrowTree returns an
// *InvalidArgumentError. Time is sampled between iterations only.
func (t *Tree) GrowTree(maxIter int, maxSeconds float64) (StopReason, error) {
	if maxIter <= 0 && maxSeconds <= 0 {
		return StopNone, &InvalidArgumentError{Arg: "max_iter/max_seconds", Value: "both unbounded"}
	}

	sched := getScheduler()
	t.searchStart = time.Now()
	t.searching = true
	ran := 0
	reason := StopNone

	for {
		select {
		case <-t.ctx.Done():
			reason = StopExternal
		default:
		}
		if reason == StopNone && maxIter > 0 && ran >= maxIter {
			reason = StopIterations
		}
		if reason == StopNone && maxSeconds > 0 && time.Since(t.searchStart).Seconds() >= maxSeconds {
			reason = StopTime
		}
		if reason != StopNone {
			break
		}

		depthBefore := t.maxDepth
		if err := t.iterate(sched); err != nil {
			t.stopReason = StopNone
			return StopNone, err
		}
		ran++
		t.cycles++

		if t.listener != nil && t.listener.onDepth != nil && t.maxDepth > depthBefore {
			t.listener.onDepth(t.snapshotStats())
		}
		if t.listener != nil && t.listener.onCycle != nil && t.listener.nCycles > 0 &&
			ran%t.listener.nCycles == 0 {
			t.listener.onCycle(t.snapshotStats())
		}
	}

	t.stopReason = reason
	t.finalElapsed = time.Since(t.searchStart)
	t.searching = false

	if t.listener != nil && t.listener.onStop != nil {
		t.listener.onStop(t.snapshotStats())
	}

	return reason, nil
}

// iterate runs exactly one search iteration: Selection, Expansion,
// Simulation, Backpropagation, in that order. Each expansion requests one
// simulation per rollout-pool worker so a single iteration keeps the
// whole pool busy; a terminal leaf always uses k=1.
func (t *Tree) iterate(sched *Scheduler) error {
	// 1. Select: walk down via UCT while non-terminal and fully expanded.
	node := t.root
	for !node.terminal && node.IsFullyExpanded() {
		node = node.selectBestChild(t.explorationC)
	}

	// 2. Expand: stopping node is either terminal or not fully expanded.
	var leaf *Node
	if node.terminal {
		leaf = node
	} else {
		child, err := node.Expand()
		if err != nil {
			return err
		}
		leaf = child
	}

	if leaf.depth > t.maxDepth {
		t.maxDepth = leaf.depth
	}

	// 3. Simulate.
	k := 1
	if !leaf.terminal {
		k = sched.Workers()
	}
	reward, err := leaf.RolloutBatch(sched, k)
	if err != nil {
		return err
	}

	// 4. Backpropagate.
	leaf.Backpropagate(reward, k)
	return nil
}

// SelectBestChild returns the root child with the highest visit count,
// ties broken by lowest index — visit count is the more robust signal
// than raw winrate, and this is deliberately different from UCT's
// internal selection. Returns nil if the root has no children.
func (t *Tree) SelectBestChild() *Node {
	return selectMostVisited(t.root)
}

func selectMostVisited(n *Node) *Node {
	var best *Node
	bestVisits := -1
	for _, child := range n.children {
		if child.visits > bestVisits {
			bestVisits = child.visits
			best = child
		}
	}
	return best
}

// AdvanceTree locates the unique child whose move equals move, discards
// the rest of the tree, and makes that child the new root. Returns false
// if move was never expanded as a child — the caller must rebuild the
// tree from a fresh state in that case.
func (t *Tree) AdvanceTree(move Move) bool {
	next := t.root.advanceTo(move)
	if next == nil {
		return false
	}
	t.root = next
	if t.maxDepth > 0 {
		t.maxDepth--
	}
	return true
}
