// Package swarm provides the bounded worker pool shared by all probe tasks.
package swarm

import (
	"context"
	"sync"
	"time"
)

// Task is a unit of work for the pool. Tasks signal their own completion;
// callers group related tasks with a sync.WaitGroup.
type Task func(ctx context.Context)

// Pool executes tasks over a bounded set of workers. The bound caps total
// in-flight provider calls across every concurrent service scan. When
// adaptive mode is on, the worker target shrinks on throttle feedback and
// recovers additively, between the configured min and max.
type Pool struct {
	aimd  *AIMD
	tasks chan Task
	quit  chan struct{}
	wg    sync.WaitGroup

	mu        sync.Mutex
	active    int
	completed int64
}

// DefaultWorkers is the default pool bound.
const DefaultWorkers = 15

// New creates a pool with a fixed worker bound. A bound of 1 degenerates to
// serial execution with identical results.
func New(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		aimd:  NewAIMD(workers, workers, workers),
		tasks: make(chan Task, 256),
		quit:  make(chan struct{}),
	}
}

// NewAdaptive creates a pool whose bound floats between min and max under
// AIMD control, starting at start.
func NewAdaptive(start, min, max int) *Pool {
	return &Pool{
		aimd:  NewAIMD(start, min, max),
		tasks: make(chan Task, 256),
		quit:  make(chan struct{}),
	}
}

// Start launches the supervisor loop. Workers are spawned up to the current
// concurrency target and retire themselves when the target drops.
func (p *Pool) Start(ctx context.Context) {
	go p.loop(ctx)
}

// Submit queues a task, blocking when the buffer is full. Admission order is
// preserved; execution order is not.
func (p *Pool) Submit(t Task) {
	p.tasks <- t
}

// Throttled reports provider rate limiting to the concurrency controller.
func (p *Pool) Throttled() {
	p.aimd.Feedback(true)
}

// Stop retires all workers after their current task. Queued tasks that have
// not started are abandoned.
func (p *Pool) Stop() {
	close(p.quit)
	p.wg.Wait()
}

// Completed returns the number of finished tasks.
func (p *Pool) Completed() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.completed
}

func (p *Pool) loop(ctx context.Context) {
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()

	p.spawn(ctx, p.aimd.Concurrency())
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.quit:
			return
		case <-ticker.C:
			if target := p.aimd.Concurrency(); target > p.activeCount() {
				p.spawn(ctx, target-p.activeCount())
			}
			// Excess workers retire themselves between tasks.
		}
	}
}

// spawn reserves the worker slots before the goroutines run, so a fast
// supervisor tick can never launch past the target.
func (p *Pool) spawn(ctx context.Context, n int) {
	p.mu.Lock()
	p.active += n
	p.mu.Unlock()
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) activeCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

func (p *Pool) worker(ctx context.Context) {
	defer func() {
		p.mu.Lock()
		p.active--
		p.mu.Unlock()
		p.wg.Done()
	}()

	for {
		if p.activeCount() > p.aimd.Concurrency() {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-p.quit:
			return
		case task := <-p.tasks:
			task(ctx)
			p.aimd.Feedback(false)
			p.mu.Lock()
			p.completed++
			p.mu.Unlock()
		}
	}
}
