package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"github.com/cybertec-postgresql/coolex/internal/discovery"
	"github.com/cybertec-postgresql/coolex/internal/errors"
	"github.com/cybertec-postgresql/coolex/internal/logger"
	"github.com/cybertec-postgresql/coolex/internal/report"
	"github.com/cybertec-postgresql/coolex/internal/runner"
)

// Run executes the lexing workflow over the given path arguments and
// returns the process exit code. Environment-level failures (bad flags,
// unresolvable arguments) are returned as errors for the command boundary
// to render; per-file lexical failures are rendered here and folded into
// the exit code, first failing file in input order winning.
func Run(ctx context.Context, config *Config, args []string) (int, error) {
	startTime := time.Now()

	if len(args) == 0 {
		return 0, errors.NewUsage("expected usage: coolex [command] [file...]")
	}

	if err := config.Validate(); err != nil {
		return 0, err
	}

	// Step 1: Resolve arguments to source files
	var files []discovery.DiscoveredFile
	for _, arg := range args {
		resolved, err := discovery.FromArg(arg)
		if err != nil {
			return 0, errors.NewFileIO(arg, "could not open file %s", arg)
		}
		files = append(files, resolved...)
	}

	if len(files) == 0 {
		fmt.Println("No source files found (*" + discovery.SourceExtension + ")")
		return 0, nil
	}

	logger.Debug("found %d source file(s)", len(files))

	// Step 2: Set up the executor and its output target
	if config.OutputPath != "" && len(files) > 1 {
		return 0, errors.NewUsage("--output requires a single input file, got %d", len(files))
	}

	executor := runner.NewExecutor(report.FormatType(config.Format), config.CheckOnly)

	if config.OutputPath == "-" {
		executor.Output = os.Stdout
	} else if config.OutputPath != "" {
		out, err := os.Create(config.OutputPath)
		if err != nil {
			return 0, errors.NewFileIO(config.OutputPath, "could not open output file %s", config.OutputPath)
		}
		defer out.Close()
		executor.Output = out
	}

	// Step 3: Lex files (parallel or sequential based on config)
	var runs []*runner.LexRun
	var err error
	if config.Parallelism > 1 {
		logger.Debug("lexing files in parallel (workers: %d)", config.Parallelism)
		pool := runner.NewWorkerPool(executor, config.Parallelism)
		runs, err = pool.LexParallel(ctx, files)
	} else {
		runs, err = executor.ExecuteBatch(ctx, files)
	}
	if err != nil {
		return 0, fmt.Errorf("lexing aborted: %w", err)
	}

	// Step 4: Render diagnostics for failed files
	for _, run := range runs {
		if run.Status != runner.RunFailed {
			continue
		}
		var lexErr *errors.LexError
		if stderrors.As(run.Error, &lexErr) {
			lexErr.Render(os.Stderr)
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mERROR:\033[0m %v\n", run.Error)
		}
	}

	// Step 5: Summarize
	summary := runner.SummarizeRuns(runs)

	if config.Verbose {
		logger.Info("files:  %d passed, %d failed, %d total",
			summary.PassedFiles, summary.FailedFiles, summary.TotalFiles)
		logger.Info("time:   %v", time.Since(startTime).Round(time.Millisecond))
	}

	return summary.ExitCode(), nil
}
