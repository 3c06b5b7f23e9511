package ttt

import (
	"fmt"

	"github.com/arborsearch/mcts"
)

// Move places a mark on a single square. Implements mcts.Move.
type Move struct {
	Pos Pos
}

var _ mcts.Move = Move{}

// Equal reports whether other is a ttt Move for the same square.
func (m Move) Equal(other mcts.Move) bool {
	o, ok := other.(Move)
	return ok && o.Pos == m.Pos
}

func (m Move) String() string {
	return fmt.Sprintf("%d,%d", m.Pos/3, m.Pos%3)
}
