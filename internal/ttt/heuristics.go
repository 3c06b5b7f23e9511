package ttt

import (
	"math/bits"
	"math/rand"

	"github.com/arborsearch/mcts"
)

var _ mcts.HeuristicRoller = (*State)(nil)
var _ mcts.MoveEvaluator = (*State)(nil)
var _ mcts.PositionEvaluator = (*State)(nil)

// HeuristicRollout plays one move ahead by priority — take an immediate
// win, else block the opponent's immediate win, else prefer the center
// square, else uniformly random — then finishes the game with Rollout's
// random playout.
func (s *State) HeuristicRollout() mcts.Result {
	cur := s.clone()
	if !cur.Terminal() {
		cur.playInPlace(cur.heuristicChoice())
	}
	return cur.Rollout()
}

// heuristicChoice picks a move for the side to move: win now, else block
// the opponent's win, else the center square if free, else a random
// legal move.
func (s *State) heuristicChoice() Pos {
	if p, ok := s.findWinningMove(s.toMove); ok {
		return p
	}
	if p, ok := s.findWinningMove(s.toMove.other()); ok {
		return p
	}
	if s.board[4] == None {
		return 4
	}

	free := s.freePositions()
	return free[rand.Intn(len(free))]
}

// findWinningMove reports a free square that completes a winning pattern
// for player, if one exists.
func (s *State) findWinningMove(player Player) (Pos, bool) {
	bb := uint16(s.bitboards[idxOf(player)])
	occupied := uint16(s.bitboards[bbX]) | uint16(s.bitboards[bbO])

	for _, pattern := range winningPatterns {
		missing := pattern &^ bb
		hasTwo := missing != 0 && missing&(missing-1) == 0
		if hasTwo && missing&occupied == 0 {
			return Pos(bits.TrailingZeros16(missing)), true
		}
	}
	return 0, false
}

func (s *State) freePositions() []Pos {
	occupied := uint16(s.bitboards[bbX]) | uint16(s.bitboards[bbO])
	free := uint16(fullBoard ^ occupied)
	out := make([]Pos, 0, 9)
	for free != 0 {
		out = append(out, Pos(bits.TrailingZeros16(free)))
		free &= free - 1
	}
	return out
}

// EvaluateMove gives an advisory score for playing move: 1 for an
// immediate win, 0.75 for blocking the opponent's immediate win, 0.6 for
// the center square, 0.5 otherwise.
func (s *State) EvaluateMove(move mcts.Move) mcts.Result {
	mv, ok := move.(Move)
	if !ok {
		return 0.5
	}
	if win, ok := s.findWinningMove(s.toMove); ok && win == mv.Pos {
		return 1
	}
	if block, ok := s.findWinningMove(s.toMove.other()); ok && block == mv.Pos {
		return 0.75
	}
	if mv.Pos == 4 {
		return 0.6
	}
	return 0.5
}

// EvaluatePosition gives an advisory score for the position from self's
// perspective: the terminal outcome if decided, else a neutral 0.5.
func (s *State) EvaluatePosition() mcts.Result {
	if s.Terminal() {
		return s.outcomeFor(s.self)
	}
	return 0.5
}
