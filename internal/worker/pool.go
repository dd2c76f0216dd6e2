// Package worker provides a worker pool for answering position queries in
// parallel.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/query"
)

// WorkItem represents a query to be answered.
type WorkItem struct {
	Query query.Query
	Index int // Original index for tracking
}

// ProcessResult represents the answer to one query.
type ProcessResult struct {
	Index  int
	Report query.Report
	Error  error
}

// QueryProcessor answers each item against a fresh board. It is the
// ProcessFunc used by batch mode.
func QueryProcessor(item WorkItem) ProcessResult {
	report, err := query.Run(chess.NewBoard(), item.Query)
	return ProcessResult{Index: item.Index, Report: report, Error: err}
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers for parallel query processing.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
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

// NewPoolWithOptions creates a new worker pool using functional options.
// processFunc is required; other settings have sensible defaults.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
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

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// SubmitContext submits a work item, giving up when ctx is done first.
func (p *Pool) SubmitContext(ctx context.Context, item WorkItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case p.workChan <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop signals workers to stop answering new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// RunOrdered answers every item on a pool built from opts and returns the
// results sorted by Index. When ctx is cancelled, submission stops, the pool
// is stopped, and only the results produced so far are returned along with
// ctx's error.
func RunOrdered(ctx context.Context, items []WorkItem, processFunc ProcessFunc, opts ...PoolOption) ([]ProcessResult, error) {
	pool := NewPoolWithOptions(processFunc, opts...)
	pool.Start()

	var submitErr error
	go func() {
		defer pool.Close()
		for _, item := range items {
			if err := pool.SubmitContext(ctx, item); err != nil {
				submitErr = err
				pool.Stop()
				return
			}
		}
	}()

	results := make([]ProcessResult, 0, len(items))
	for r := range pool.Results() {
		results = append(results, r)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results, submitErr
}
