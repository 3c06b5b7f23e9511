package mcts

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/muesli/termenv"
)

// feedbackOutput renders Tree.PrintStats through termenv, so diagnostic
// output degrades gracefully (plain text) on terminals/pipes that don't
// support ANSI color, and shows colorized win-rate rows on ones that do.
var feedbackOutput = termenv.NewOutput(os.Stdout)

// PrintStats prints root-level search diagnostics: total size/visits,
// max depth reached, cycles per second, then one row per root child
// sorted by visit count, with its move, visit count, and win rate.
// Diagnostic output only — never consumed programmatically.
func (t *Tree) PrintStats() {
	t.fprintStats(os.Stdout)
}

func (t *Tree) fprintStats(w io.Writer) {
	root := t.root
	stats := t.snapshotStats()
	header := fmt.Sprintf("mcts: size=%d visits=%d cycles=%d depth=%d cps=%.0f stop=%s",
		root.size, root.visits, t.cycles, stats.MaxDepth, stats.Cps, t.stopReason)
	fmt.Fprintln(w, feedbackOutput.String(header).Bold())

	type row struct {
		move    Move
		visits  int
		winRate float64
	}
	rows := make([]row, 0, len(root.children))
	for _, child := range root.children {
		wr := 0.0
		if child.visits > 0 {
			wr = child.score / float64(child.visits)
		}
		rows = append(rows, row{child.move, child.visits, wr})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].visits > rows[j].visits })

	for _, r := range rows {
		line := fmt.Sprintf("  %-16v visits=%-8d winrate=%.3f", r.move, r.visits, r.winRate)
		styled := feedbackOutput.String(line)
		if r.winRate >= 0.5 {
			styled = styled.Foreground(termenv.ANSIGreen)
		} else {
			styled = styled.Foreground(termenv.ANSIRed)
		}
		fmt.Fprintln(w, styled)
	}
}
