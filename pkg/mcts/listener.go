package mcts

import "time"

// SearchStats is a snapshot of tree statistics handed to a StatsListener
// callback. The search driver is single-threaded, so no thread-id gating
// is needed here: only the driver goroutine ever calls a listener.
type SearchStats struct {
	Cycles     int
	ElapsedMs  int64
	Cps        float64 // cycles per second; 0 until any measurable time has elapsed
	MaxDepth   int
	StopReason StopReason
	RootVisits int
	RootScore  Result
	BestMove   Move
}

// ListenerFunc receives a SearchStats snapshot.
type ListenerFunc func(SearchStats)

// StatsListener attaches optional callbacks to a Tree's search loop:
// OnDepth whenever a new maximum depth is reached, OnCycle every
// nCycles iterations, and OnStop once when GrowTree's loop stops (not
// when GrowTree returns an error).
type StatsListener struct {
	onDepth ListenerFunc
	onCycle ListenerFunc
	onStop  ListenerFunc
	nCycles int
}

// NewStatsListener returns an empty listener; attach callbacks with
// OnDepth/OnCycle/OnStop.
func NewStatsListener() *StatsListener { return &StatsListener{} }

// OnDepth attaches f to be called the first time each new tree depth is
// reached during a search.
func (l *StatsListener) OnDepth(f ListenerFunc) *StatsListener {
	l.onDepth = f
	return l
}

// OnCycle attaches f to be called every nCycles completed iterations.
func (l *StatsListener) OnCycle(nCycles int, f ListenerFunc) *StatsListener {
	l.nCycles = nCycles
	l.onCycle = f
	return l
}

// OnStop attaches f to be called once when GrowTree's loop stops. It is
// not called when GrowTree returns an error.
func (l *StatsListener) OnStop(f ListenerFunc) *StatsListener {
	l.onStop = f
	return l
}

func (t *Tree) snapshotStats() SearchStats {
	elapsed := t.finalElapsed
	if t.searching {
		elapsed = time.Since(t.searchStart)
	}
	stats := SearchStats{
		Cycles:     t.cycles,
		ElapsedMs:  elapsed.Milliseconds(),
		MaxDepth:   t.maxDepth,
		StopReason: t.stopReason,
		RootVisits: t.root.visits,
	}
	if secs := elapsed.Seconds(); secs > 0 {
		stats.Cps = float64(t.cycles) / secs
	}
	if best := t.SelectBestChild(); best != nil {
		stats.BestMove = best.move
		if best.visits > 0 {
			stats.RootScore = best.score / float64(best.visits)
		}
	}
	return stats
}
