// Package worker provides a worker pool for replaying move scripts in parallel.
// Each job owns everything it touches; workers share nothing but the channels.
package worker

import (
	"sync"
	"sync/atomic"
)

// WorkItem is one move script to replay.
type WorkItem struct {
	Name  string   // Source of the script, usually a file name
	Lines []string // Script text, one entry per line
	Index int      // Submission order, for reporting results in order
}

// ProcessResult is the outcome of replaying one script.
type ProcessResult struct {
	Name    string
	Index   int
	Outcome interface{} // Opaque replay summary; typed by the consumer
	Error   error
}

// ProcessFunc replays a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a fixed number of workers over a buffered job channel.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. Defaults: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain without replaying
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a script. It blocks while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip the scripts still queued.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the job channel, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
