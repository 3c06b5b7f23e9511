package mcts

import "sync"

// The scheduler pool is process-wide and lazily initialized. getScheduler
// rebuilds it whenever GetRolloutThreads() has changed since the last
// build; this is only well defined between searches.
var (
	schedMu sync.Mutex
	shared  *Scheduler
)

func getScheduler() *Scheduler {
	schedMu.Lock()
	defer schedMu.Unlock()
	want := GetRolloutThreads()
	if shared == nil || shared.Workers() != want {
		if shared != nil {
			shared.Shutdown()
		}
		shared = NewScheduler(want)
	}
	return shared
}
