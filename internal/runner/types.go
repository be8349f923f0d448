package runner

import (
	stderrors "errors"
	"time"

	"github.com/cybertec-postgresql/coolex/internal/discovery"
	"github.com/cybertec-postgresql/coolex/internal/errors"
	"github.com/cybertec-postgresql/coolex/pkg/token"
)

// LexRun represents a single lexing pass over one source file
type LexRun struct {
	File       *discovery.DiscoveredFile
	Tokens     []token.Token // Produced stream; nil when the pass failed
	OutputPath string        // Where the stream was written; empty in check mode
	StartTime  time.Time
	EndTime    time.Time
	Status     RunStatus
	Error      error // Non-nil if the pass failed; usually a *errors.LexError
}

// RunStatus represents the outcome of a lexing pass
type RunStatus int

const (
	RunPending RunStatus = iota
	RunPassed
	RunFailed
)

// String returns a string representation of RunStatus
func (rs RunStatus) String() string {
	switch rs {
	case RunPending:
		return "pending"
	case RunPassed:
		return "passed"
	case RunFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Duration returns the pass duration
func (r *LexRun) Duration() time.Duration {
	if r.EndTime.IsZero() {
		return time.Since(r.StartTime)
	}
	return r.EndTime.Sub(r.StartTime)
}

// ExitKind returns the failure kind of the pass, or errors.OK when it passed.
func (r *LexRun) ExitKind() errors.Kind {
	if r.Status != RunFailed || r.Error == nil {
		return errors.OK
	}
	var lexErr *errors.LexError
	if stderrors.As(r.Error, &lexErr) {
		return lexErr.Kind
	}
	// Non-lexical failure surfaced from the filesystem.
	return errors.FileIO
}

// Summary aggregates the outcome of a batch of lexing passes
type Summary struct {
	TotalFiles    int
	PassedFiles   int
	FailedFiles   int
	TotalDuration time.Duration
	FirstFailure  errors.Kind // Failure kind of the first failed file, in input order
}

// AllPassed returns true if every file lexed cleanly
func (s *Summary) AllPassed() bool {
	return s.FailedFiles == 0
}

// ExitCode returns the process exit code for the batch: success when all
// files passed, otherwise the code of the first failing file in input order
// so that the single-file invocation keeps its 1:1 code-to-kind contract.
func (s *Summary) ExitCode() int {
	if s.AllPassed() {
		return 0
	}
	return s.FirstFailure.ExitCode()
}

// SummarizeRuns creates a summary of lexing results; runs must be in
// input order.
func SummarizeRuns(runs []*LexRun) *Summary {
	summary := &Summary{
		TotalFiles: len(runs),
	}

	for _, run := range runs {
		summary.TotalDuration += run.Duration()

		switch run.Status {
		case RunPassed:
			summary.PassedFiles++
		case RunFailed:
			summary.FailedFiles++
			if summary.FirstFailure == errors.OK {
				summary.FirstFailure = run.ExitKind()
			}
		}
	}

	return summary
}
