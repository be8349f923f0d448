package runner

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/cybertec-postgresql/coolex/internal/discovery"
	"github.com/cybertec-postgresql/coolex/internal/errors"
	"github.com/cybertec-postgresql/coolex/internal/lexer"
	"github.com/cybertec-postgresql/coolex/internal/logger"
	"github.com/cybertec-postgresql/coolex/internal/report"
)

// Executor runs lexing passes and writes their token streams. Each pass is
// strictly sequential; the Executor itself is stateless per pass, so one
// instance can be shared by the worker pool.
type Executor struct {
	format report.FormatType
	check  bool // Lex only; discard the stream and report errors

	// Output receives every formatted stream when non-nil, overriding the
	// per-file <input>-lex convention. Only valid for single-file batches.
	Output io.Writer
}

// NewExecutor creates a new lexing executor
func NewExecutor(format report.FormatType, check bool) *Executor {
	return &Executor{
		format: format,
		check:  check,
	}
}

// Execute runs a single lexing pass: open the source, scan it to the end
// or to the first fatal error, and (unless in check mode) write the
// formatted token stream. The input file is closed on every path; a
// failed pass leaves no output file behind.
func (e *Executor) Execute(file *discovery.DiscoveredFile) *LexRun {
	run := &LexRun{
		File:      file,
		StartTime: time.Now(),
		Status:    RunPending,
	}

	if err := e.runPass(run); err != nil {
		run.Status = RunFailed
		run.Error = err
		logger.Debug("lex failed: %s: %v", file.RelativePath, err)
	} else {
		run.Status = RunPassed
	}

	run.EndTime = time.Now()
	return run
}

func (e *Executor) runPass(run *LexRun) error {
	in, err := os.Open(run.File.Path)
	if err != nil {
		return errors.NewFileIO(run.File.RelativePath, "could not open file %s", run.File.RelativePath)
	}
	defer in.Close()

	scanner, err := lexer.NewScanner(in, run.File.RelativePath)
	if err != nil {
		return err
	}

	tokens, err := scanner.ScanAll()
	if err != nil {
		return err
	}
	run.Tokens = tokens

	if e.check {
		return nil
	}

	stream := &report.Stream{Source: run.File.RelativePath, Tokens: tokens}

	if e.Output != nil {
		return report.FormatToWriter(stream, e.format, e.Output)
	}

	outPath := run.File.Path + discovery.GeneratedSuffix
	out, err := os.Create(outPath)
	if err != nil {
		return errors.NewFileIO(run.File.RelativePath, "could not open output file %s", outPath)
	}

	if err := report.FormatToWriter(stream, e.format, out); err != nil {
		out.Close()
		os.Remove(outPath)
		return errors.NewFileIO(run.File.RelativePath, "could not write output file %s: %v", outPath, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(outPath)
		return errors.NewFileIO(run.File.RelativePath, "could not write output file %s: %v", outPath, err)
	}

	run.OutputPath = outPath
	return nil
}

// ExecuteBatch runs passes over multiple files sequentially, in input
// order. Cancellation is honored between files only; a running pass has
// no suspension points.
func (e *Executor) ExecuteBatch(ctx context.Context, files []discovery.DiscoveredFile) ([]*LexRun, error) {
	var runs []*LexRun

	for i := range files {
		if ctx.Err() != nil {
			return runs, ctx.Err()
		}

		logger.Debug("lexing %s", files[i].RelativePath)
		runs = append(runs, e.Execute(&files[i]))
	}

	return runs, nil
}
