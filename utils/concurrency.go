package utils

import (
	"sync"
	"time"
)

// WorkerPool bounds the number of goroutines running at once and spaces
// out job starts by a minimum interval, so parallel look-ups against the
// same host stay polite.
type WorkerPool struct {
	semaphore   chan struct{}
	minInterval time.Duration

	wg        sync.WaitGroup
	mu        sync.Mutex
	lastStart time.Time
}

// NewWorkerPool creates a WorkerPool running at most maxWorkers jobs
// concurrently, starting no more than one job per minInterval.
func NewWorkerPool(maxWorkers int, minInterval time.Duration) *WorkerPool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &WorkerPool{
		semaphore:   make(chan struct{}, maxWorkers),
		minInterval: minInterval,
	}
}

// Submit enqueues a job for execution in the pool.
func (p *WorkerPool) Submit(job func()) {
	p.wg.Add(1)
	p.semaphore <- struct{}{}

	go func() {
		defer p.wg.Done()
		defer func() { <-p.semaphore }()

		p.throttle()
		job()
	}()
}

// Wait blocks until every submitted job has completed.
func (p *WorkerPool) Wait() {
	p.wg.Wait()
}

func (p *WorkerPool) throttle() {
	if p.minInterval <= 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if elapsed := time.Since(p.lastStart); elapsed < p.minInterval {
		time.Sleep(p.minInterval - elapsed)
	}
	p.lastStart = time.Now()
}
