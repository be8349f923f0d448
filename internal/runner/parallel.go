package runner

import (
	"context"
	"sync"
	"time"

	"github.com/cybertec-postgresql/coolex/internal/discovery"
	"github.com/cybertec-postgresql/coolex/internal/logger"
)

// WorkerPool manages parallel lexing across independent source files.
// Parallelism exists only between files; every individual pass remains a
// strictly sequential scan with exclusive ownership of its cursor.
type WorkerPool struct {
	executor   *Executor
	maxWorkers int
}

// NewWorkerPool creates a new worker pool for parallel lexing
func NewWorkerPool(executor *Executor, maxWorkers int) *WorkerPool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &WorkerPool{
		executor:   executor,
		maxWorkers: maxWorkers,
	}
}

// LexParallel runs passes over multiple files with the configured
// concurrency limit, preserving input order in the returned slice.
func (wp *WorkerPool) LexParallel(ctx context.Context, files []discovery.DiscoveredFile) ([]*LexRun, error) {
	numFiles := len(files)
	if numFiles == 0 {
		return nil, nil
	}

	// One worker or one file: sequential execution is equivalent and cheaper.
	if wp.maxWorkers == 1 || numFiles == 1 {
		return wp.executor.ExecuteBatch(ctx, files)
	}

	logger.Debug("starting parallel lexing with %d workers for %d files", wp.maxWorkers, numFiles)

	// Buffered channels for job distribution and result collection
	jobs := make(chan *lexJob, numFiles)
	results := make(chan *lexResult, numFiles)

	var wg sync.WaitGroup
	for i := 0; i < wp.maxWorkers; i++ {
		wg.Add(1)
		go wp.worker(ctx, i, jobs, results, &wg)
	}

	for i := range files {
		jobs <- &lexJob{file: &files[i], index: i}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	// Collect results back into input order.
	runs := make([]*LexRun, numFiles)
	for result := range results {
		runs[result.index] = result.run
		status := "PASS"
		if result.run.Status == RunFailed {
			status = "FAIL"
		}
		logger.Debug("[%s] %s (worker %d)", status, result.run.File.RelativePath, result.workerID)
	}

	return runs, nil
}

// lexJob represents a single file to lex
type lexJob struct {
	file  *discovery.DiscoveredFile
	index int
}

// lexResult represents the outcome of one pass
type lexResult struct {
	run      *LexRun
	index    int
	workerID int
}

// worker is the goroutine that processes lex jobs
func (wp *WorkerPool) worker(ctx context.Context, workerID int, jobs <-chan *lexJob, results chan<- *lexResult, wg *sync.WaitGroup) {
	defer wg.Done()

	for job := range jobs {
		// Jobs queued behind a cancelled context are failed, not skipped,
		// so the result slice stays fully populated.
		if ctx.Err() != nil {
			results <- &lexResult{
				run: &LexRun{
					File:      job.file,
					StartTime: time.Now(),
					EndTime:   time.Now(),
					Status:    RunFailed,
					Error:     ctx.Err(),
				},
				index:    job.index,
				workerID: workerID,
			}
			continue
		}

		results <- &lexResult{
			run:      wp.executor.Execute(job.file),
			index:    job.index,
			workerID: workerID,
		}
	}
}
