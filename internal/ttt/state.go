package ttt

import (
	"math/bits"
	"math/rand"

	"github.com/arborsearch/mcts"
)

// State is a Tic-Tac-Toe position. Implements mcts.GameState.
//
// self is fixed at construction and carried unchanged through Clone and
// Apply: it names the player whose win probability Rollout and the
// optional evaluator methods report, independent of whose turn it is to
// move in this particular state (mcts.GameState.SelfSideTurn's
// contract).
type State struct {
	board     [9]Player
	bitboards [2]uint16
	toMove    Player
	self      Player
	winner    Player // None until terminal; stays None on a draw
	draw      bool
}

var _ mcts.GameState = (*State)(nil)

// NewInitialState returns an empty board with X to move first; self names
// the side whose win probability is reported (None defaults to X).
func NewInitialState(self Player) *State {
	if self == None {
		self = X
	}
	return &State{toMove: X, self: self}
}

// NewStateFromCells builds a position directly from a row-major 9-cell
// board and whose turn it is, bypassing move-by-move construction. Used
// to set up fixed test positions that aren't reachable move-by-move
// under this package's strict X-moves-first convention.
func NewStateFromCells(cells [9]Player, toMove, self Player) *State {
	if self == None {
		self = X
	}
	s := &State{toMove: toMove, self: self}
	for pos, p := range cells {
		if p == None {
			continue
		}
		s.board[pos] = p
		s.bitboards[idxOf(p)] |= 1 << uint(pos)
	}
	s.checkTermination()
	return s
}

func idxOf(p Player) int {
	if p == X {
		return bbX
	}
	return bbO
}

// LegalMoves enumerates the empty squares, lowest index first.
func (s *State) LegalMoves() []mcts.Move {
	free := uint(fullBoard ^ (uint16(s.bitboards[bbX]) | uint16(s.bitboards[bbO])))
	moves := make([]mcts.Move, 0, bits.OnesCount(free))
	for free != 0 {
		moves = append(moves, Move{Pos: Pos(bits.TrailingZeros(free))})
		free &= free - 1
	}
	return moves
}

// Apply plays move for the side to move and returns the resulting state.
func (s *State) Apply(move mcts.Move) (mcts.GameState, error) {
	mv, ok := move.(Move)
	if !ok {
		return nil, nil
	}
	if mv.Pos > 8 || s.board[mv.Pos] != None {
		return nil, nil
	}

	next := *s
	idx := idxOf(s.toMove)
	next.bitboards[idx] ^= 1 << mv.Pos
	next.board[mv.Pos] = s.toMove
	next.toMove = s.toMove.other()
	next.checkTermination()

	return &next, nil
}

// checkTermination scans every winning bitboard pattern for each player,
// then falls back to a full-board draw.
func (s *State) checkTermination() {
	xbb := uint16(s.bitboards[bbX])
	obb := uint16(s.bitboards[bbO])

	for _, pattern := range winningPatterns {
		if xbb&pattern == pattern {
			s.winner = X
			return
		}
		if obb&pattern == pattern {
			s.winner = O
			return
		}
	}
	if xbb|obb == fullBoard {
		s.draw = true
	}
}

// Terminal reports whether the position has a winner or is a full-board
// draw.
func (s *State) Terminal() bool {
	return s.winner != None || s.draw
}

// SelfSideTurn reports whether self moves next from this state.
func (s *State) SelfSideTurn() bool {
	return s.toMove == s.self
}

// Rollout plays uniformly random legal moves to completion and returns
// self's win probability: 1 for a self win, 0 for a loss, 0.5 for a draw.
// Uses the package-level math/rand functions (internally mutex-guarded)
// rather than a state-owned *rand.Rand, so concurrent rollouts on
// clones — or even the same receiver, per mcts.GameState's contract —
// never race.
func (s *State) Rollout() mcts.Result {
	cur := s.clone()
	for !cur.Terminal() {
		free := cur.freePositions()
		cur.playInPlace(free[rand.Intn(len(free))])
	}
	return cur.outcomeFor(s.self)
}

// playInPlace mutates s by playing pos for the side to move — used only
// on the private scratch copies of Rollout and HeuristicRollout, never on
// a shared state.
func (s *State) playInPlace(pos Pos) {
	idx := idxOf(s.toMove)
	s.bitboards[idx] ^= 1 << pos
	s.board[pos] = s.toMove
	s.toMove = s.toMove.other()
	s.checkTermination()
}

func (s *State) outcomeFor(who Player) mcts.Result {
	switch {
	case s.winner == who:
		return 1
	case s.winner == None:
		return 0.5
	default:
		return 0
	}
}

// clone returns a private scratch copy sharing no mutable state with s,
// safe to mutate in place via playInPlace.
func (s *State) clone() *State {
	c := *s
	return &c
}

// Clone returns an independent copy of this state.
func (s *State) Clone() mcts.GameState {
	return s.clone()
}
