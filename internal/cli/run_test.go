package cli

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cybertec-postgresql/coolex/internal/errors"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func runKind(t *testing.T, err error) errors.Kind {
	t.Helper()
	var lexErr *errors.LexError
	if !stderrors.As(err, &lexErr) {
		t.Fatalf("error is %T (%v), want *errors.LexError", err, err)
	}
	return lexErr.Kind
}

func TestRunNoArgumentsIsUsageError(t *testing.T) {
	config := DefaultConfig
	_, err := Run(context.Background(), &config, nil)
	if runKind(t, err) != errors.IncorrectUsage {
		t.Fatalf("got %v", err)
	}
}

func TestRunLexesFileToConventionalOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "main.cl", "class Main { 1 }")

	config := DefaultConfig
	code, err := Run(context.Background(), &config, []string{path})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}

	out, err := os.ReadFile(path + "-lex")
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(out) != "1\nclass\n1\ntype\nMain\n1\nlbrace\n1\ninteger\n1\n1\nrbrace\n" {
		t.Fatalf("output %q", out)
	}
}

func TestRunExitCodeReflectsFirstFailure(t *testing.T) {
	dir := t.TempDir()
	good := writeSource(t, dir, "good.cl", "x")
	bad := writeSource(t, dir, "bad.cl", `"abc`)

	config := DefaultConfig
	config.CheckOnly = true
	code, err := Run(context.Background(), &config, []string{good, bad})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if code != errors.InvalidStringCharacter.ExitCode() {
		t.Fatalf("exit code %d, want %d", code, errors.InvalidStringCharacter.ExitCode())
	}
}

func TestRunMissingArgumentIsFileIO(t *testing.T) {
	config := DefaultConfig
	_, err := Run(context.Background(), &config, []string{filepath.Join(t.TempDir(), "ghost.cl")})
	if runKind(t, err) != errors.FileIO {
		t.Fatalf("got %v", err)
	}
}

func TestRunOutputOverrideRejectsMultipleInputs(t *testing.T) {
	dir := t.TempDir()
	a := writeSource(t, dir, "a.cl", "x")
	b := writeSource(t, dir, "b.cl", "y")

	config := DefaultConfig
	config.OutputPath = filepath.Join(dir, "combined")
	_, err := Run(context.Background(), &config, []string{a, b})
	if runKind(t, err) != errors.IncorrectUsage {
		t.Fatalf("got %v", err)
	}
}

func TestRunOutputOverrideToFile(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "main.cl", "42")
	dst := filepath.Join(dir, "tokens.out")

	config := DefaultConfig
	config.OutputPath = dst
	code, err := Run(context.Background(), &config, []string{src})
	if err != nil || code != 0 {
		t.Fatalf("Run: code=%d err=%v", code, err)
	}
	out, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(out) != "1\ninteger\n42\n" {
		t.Fatalf("output %q", out)
	}
	// The conventional path must not also appear.
	if _, err := os.Stat(src + "-lex"); !os.IsNotExist(err) {
		t.Fatal("override still created the conventional output file")
	}
}

func TestRunDirectoryArgument(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.cl", "a")
	writeSource(t, dir, "b.cl", "b")
	writeSource(t, dir, "skip.txt", "#") // would fail if lexed

	config := DefaultConfig
	config.CheckOnly = true
	config.Parallelism = 2
	code, err := Run(context.Background(), &config, []string{dir})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
}

func TestRunInvalidFormatIsUsageError(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "main.cl", "x")

	config := DefaultConfig
	config.Format = "yaml"
	_, err := Run(context.Background(), &config, []string{path})
	if runKind(t, err) != errors.IncorrectUsage {
		t.Fatalf("got %v", err)
	}
}
