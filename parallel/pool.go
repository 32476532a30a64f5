// Package parallel runs independent jobs on a fixed number of goroutines.
package parallel

import (
	"runtime"
	"sync"
)

type (
	// WorkerFunc schedules a job.
	WorkerFunc func(func())
	// WaitFunc blocks until every scheduled job finished. With done set no
	// further jobs may be scheduled.
	WaitFunc func(done bool)
)

// Pool dispatches jobs to its workers. A pool with a single worker runs
// every job inline on the calling goroutine.
type Pool struct {
	wg      sync.WaitGroup
	work    chan func()
	workers int
	stop    func()
}

// Start returns a pool of numWorkers goroutines, or GOMAXPROCS when
// numWorkers is below 1. The pool never starts more workers than jobs
// when jobs is positive.
func Start(numWorkers int, jobs ...int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	if len(jobs) > 0 && jobs[0] > 0 && jobs[0] < numWorkers {
		numWorkers = jobs[0]
	}

	pool := &Pool{
		workers: numWorkers,
		stop:    func() {},
	}
	if numWorkers == 1 {
		return pool
	}

	pool.work = make(chan func(), numWorkers)
	for range numWorkers {
		pool.wg.Go(func() {
			for f := range pool.work {
				f()
			}
		})
	}
	pool.stop = sync.OnceFunc(func() { close(pool.work) })

	return pool
}

// Workers returns the number of workers.
func (p *Pool) Workers() int {
	return p.workers
}

// Do runs f on the next free worker.
func (p *Pool) Do(f func()) {
	if p.work == nil {
		f()
		return
	}
	p.work <- f
}

// Wait blocks until the workers exit. It only returns once done has been
// passed, as workers otherwise keep waiting for jobs.
func (p *Pool) Wait(done bool) {
	if p.work == nil {
		return
	}
	if done {
		p.stop()
	}
	p.wg.Wait()
}

// Cancel stops accepting jobs without waiting for the workers.
func (p *Pool) Cancel() {
	p.stop()
}
