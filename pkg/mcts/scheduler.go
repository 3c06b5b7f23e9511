package mcts

import (
	"math/rand"
	"sync"
)

// rolloutJob is one unit of scheduler work: a state snapshot paired with
// the output slot its result gets written to.
type rolloutJob struct {
	state  GameState
	result *Result
}

// Scheduler is a fixed pool of worker goroutines draining a single FIFO
// job queue, with an exact batch barrier so RunBatch can block on "all
// jobs in this batch done" without polling. Plain sync.Mutex/sync.Cond
// is the idiomatic choice here over a third-party worker-pool library:
// the job shape (fixed-size batch, block until done) doesn't need more
// than what the standard library already provides.
//
// Workers never touch the search tree: they only read the immutable
// state snapshot handed to them and write their dedicated output slot.
type Scheduler struct {
	mu      sync.Mutex
	notEmpty *sync.Cond
	queue   []*rolloutJob
	workers int
	started bool
	shutdown bool

	batchMu   sync.Mutex
	batchDone *sync.Cond
	pending   int
	panics    []any
}

// NewScheduler creates a scheduler with the given worker count. workers
// <= 1 degenerates to inline execution with no goroutine creation.
func NewScheduler(workers int) *Scheduler {
	if workers < 1 {
		workers = 1
	}
	s := &Scheduler{workers: workers}
	s.notEmpty = sync.NewCond(&s.mu)
	s.batchDone = sync.NewCond(&s.batchMu)
	return s
}

// Workers returns the configured worker-pool size.
func (s *Scheduler) Workers() int {
	return s.workers
}

func (s *Scheduler) ensureStarted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.workers <= 1 {
		return
	}
	s.started = true
	for i := 0; i < s.workers; i++ {
		go s.workerLoop(newWorkerRand(int64(i)))
	}
}

func (s *Scheduler) workerLoop(rng *rand.Rand) {
	for {
		s.mu.Lock()
		for len(s.queue) == 0 && !s.shutdown {
			s.notEmpty.Wait()
		}
		if len(s.queue) == 0 && s.shutdown {
			s.mu.Unlock()
			return
		}
		job := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		s.runJob(job, rng)
	}
}

func (s *Scheduler) runJob(job *rolloutJob, rng *rand.Rand) {
	var panicked any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicked = r
			}
		}()
		*job.result = simulate(job.state, rng)
	}()

	s.batchMu.Lock()
	if panicked != nil {
		s.panics = append(s.panics, panicked)
	}
	s.pending--
	if s.pending == 0 {
		s.batchDone.Broadcast()
	}
	s.batchMu.Unlock()
}

// RunBatch runs one strategy-dispatched simulation per state and returns
// one result per state, in the same order. With a 1-worker scheduler (or
// a batch of 1) it executes inline; otherwise it fans the batch out
// across the pool and blocks on the exact batch barrier — no spurious
// wakeups are observed by the caller.
//
// If any job panicked, RunBatch returns that panic wrapped as a
// *UserCallbackFailureError after the barrier — a panicking job never
// fails silently.
func (s *Scheduler) RunBatch(states []GameState) ([]Result, error) {
	results := make([]Result, len(states))
	if len(states) == 0 {
		return results, nil
	}

	if s.workers <= 1 || len(states) == 1 {
		rng := newWorkerRand(0)
		var err error
		for i, st := range states {
			if callErr := runInline(st, rng, &results[i]); callErr != nil && err == nil {
				err = callErr
			}
		}
		return results, err
	}

	s.ensureStarted()

	s.batchMu.Lock()
	s.pending = len(states)
	s.panics = nil
	s.batchMu.Unlock()

	s.mu.Lock()
	for i := range states {
		s.queue = append(s.queue, &rolloutJob{state: states[i], result: &results[i]})
	}
	s.notEmpty.Broadcast()
	s.mu.Unlock()

	s.batchMu.Lock()
	for s.pending > 0 {
		s.batchDone.Wait()
	}
	var err error
	if len(s.panics) > 0 {
		err = &UserCallbackFailureError{Recovered: s.panics[0]}
	}
	s.batchMu.Unlock()

	return results, err
}

func runInline(state GameState, rng *rand.Rand, out *Result) (err error) {
	defer recoverUserCallback(&err)
	*out = simulate(state, rng)
	return nil
}

// Shutdown flips the shutdown flag and wakes all workers so they drain
// the queue and exit. Safe to call on a scheduler that was never started.
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	s.shutdown = true
	s.notEmpty.Broadcast()
	s.mu.Unlock()
}
