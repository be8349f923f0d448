package runner

import (
	"context"
	"fmt"
	"testing"

	"github.com/cybertec-postgresql/coolex/internal/discovery"
	"github.com/cybertec-postgresql/coolex/internal/errors"
	"github.com/cybertec-postgresql/coolex/internal/report"
)

func TestLexParallelPreservesInputOrder(t *testing.T) {
	dir := t.TempDir()
	var files []discovery.DiscoveredFile
	for i := 0; i < 20; i++ {
		name := fmt.Sprintf("f%02d.cl", i)
		files = append(files, writeSource(t, dir, name, fmt.Sprintf("%d", i)))
	}

	pool := NewWorkerPool(NewExecutor(report.FormatPlain, true), 4)
	runs, err := pool.LexParallel(context.Background(), files)
	if err != nil {
		t.Fatalf("LexParallel: %v", err)
	}
	if len(runs) != len(files) {
		t.Fatalf("got %d runs, want %d", len(runs), len(files))
	}
	for i, run := range runs {
		if run == nil {
			t.Fatalf("run %d missing", i)
		}
		if run.File.RelativePath != files[i].RelativePath {
			t.Errorf("run %d is for %s, want %s", i, run.File.RelativePath, files[i].RelativePath)
		}
		if run.Status != RunPassed {
			t.Errorf("%s failed: %v", run.File.RelativePath, run.Error)
		}
	}
}

func TestLexParallelMixedOutcomes(t *testing.T) {
	dir := t.TempDir()
	files := []discovery.DiscoveredFile{
		writeSource(t, dir, "good1.cl", "class Main { x }"),
		writeSource(t, dir, "bad.cl", "If"), // uppercase keyword
		writeSource(t, dir, "good2.cl", "42"),
	}

	pool := NewWorkerPool(NewExecutor(report.FormatPlain, true), 3)
	runs, err := pool.LexParallel(context.Background(), files)
	if err != nil {
		t.Fatalf("LexParallel: %v", err)
	}

	if runs[0].Status != RunPassed || runs[2].Status != RunPassed {
		t.Error("clean files did not pass")
	}
	if runs[1].ExitKind() != errors.UppercaseBooleanKeyword {
		t.Errorf("bad.cl: got kind %v", runs[1].ExitKind())
	}

	summary := SummarizeRuns(runs)
	if summary.ExitCode() != errors.UppercaseBooleanKeyword.ExitCode() {
		t.Errorf("batch exit code %d", summary.ExitCode())
	}
}

func TestLexParallelEmptyInput(t *testing.T) {
	pool := NewWorkerPool(NewExecutor(report.FormatPlain, true), 4)
	runs, err := pool.LexParallel(context.Background(), nil)
	if err != nil || runs != nil {
		t.Fatalf("got runs=%v err=%v, want nil/nil", runs, err)
	}
}

func TestLexParallelSingleWorkerFallsBackToSequential(t *testing.T) {
	dir := t.TempDir()
	files := []discovery.DiscoveredFile{
		writeSource(t, dir, "a.cl", "a"),
		writeSource(t, dir, "b.cl", "b"),
	}

	pool := NewWorkerPool(NewExecutor(report.FormatPlain, true), 1)
	runs, err := pool.LexParallel(context.Background(), files)
	if err != nil {
		t.Fatalf("LexParallel: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs", len(runs))
	}
}

func TestLexParallelCancelledContextFailsQueuedJobs(t *testing.T) {
	dir := t.TempDir()
	var files []discovery.DiscoveredFile
	for i := 0; i < 8; i++ {
		files = append(files, writeSource(t, dir, fmt.Sprintf("f%d.cl", i), "x"))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := NewWorkerPool(NewExecutor(report.FormatPlain, true), 4)
	runs, err := pool.LexParallel(ctx, files)
	if err != nil {
		t.Fatalf("LexParallel: %v", err)
	}
	// Every slot is populated even though nothing was lexed.
	for i, run := range runs {
		if run == nil {
			t.Fatalf("run %d missing", i)
		}
		if run.Status != RunFailed {
			t.Errorf("run %d: status %v, want failed", i, run.Status)
		}
	}
}

func TestNewWorkerPoolClampsWorkerCount(t *testing.T) {
	pool := NewWorkerPool(NewExecutor(report.FormatPlain, true), 0)
	if pool.maxWorkers != 1 {
		t.Fatalf("got %d workers, want 1", pool.maxWorkers)
	}
}
