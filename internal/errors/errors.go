package errors

import (
	"fmt"
	"io"
)

// Kind identifies one fatal failure class. Each kind maps 1:1 to a
// process exit code so that scripted consumers can branch on the code
// alone; the mapping is part of the tool's external contract and must
// not be renumbered.
type Kind int

const (
	// OK is the success code; it is never carried by a LexError.
	OK Kind = iota
	IncorrectUsage
	FileIO
	IdentifierNameTooLong
	StringLiteralTooLong
	WrongInteger32Format
	UppercaseBooleanKeyword
	InvalidCharacter
	InvalidStringCharacter
	NonEscapedNewline
)

// ExitCode returns the process exit code for the kind.
func (k Kind) ExitCode() int { return int(k) }

// String returns a stable identifier for the kind.
func (k Kind) String() string {
	switch k {
	case OK:
		return "ok"
	case IncorrectUsage:
		return "incorrect-usage"
	case FileIO:
		return "file-io"
	case IdentifierNameTooLong:
		return "identifier-name-too-long"
	case StringLiteralTooLong:
		return "string-literal-too-long"
	case WrongInteger32Format:
		return "wrong-integer32-format"
	case UppercaseBooleanKeyword:
		return "uppercase-boolean-keyword"
	case InvalidCharacter:
		return "invalid-character"
	case InvalidStringCharacter:
		return "invalid-string-character"
	case NonEscapedNewline:
		return "non-escaped-newline"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// LexError represents a fatal lexing failure. The first LexError ends the
// pass; there is no resynchronization and no multi-error batching.
type LexError struct {
	Kind    Kind
	File    string // Source name as given on the command line
	Line    int    // 1-indexed line at the point of failure; 0 if not positional
	Message string
	Hint    string // Optional remediation hint shown after the diagnostic
}

func (e *LexError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	return e.Message
}

/*
 * Render writes the user-facing diagnostic: a file-and-line prefix when
 * the error is positional, a red ERROR marker, the message, and the hint
 * (when present) on its own line with a cyan HINT marker.
 */
func (e *LexError) Render(w io.Writer) {
	if e.Line > 0 {
		fmt.Fprintf(w, "%s:%d: \033[31mERROR:\033[0m %s\n", e.File, e.Line, e.Message)
	} else {
		fmt.Fprintf(w, "\033[31mERROR:\033[0m %s\n", e.Message)
	}
	if e.Hint != "" {
		fmt.Fprintf(w, "\033[36mHINT:\033[0m %s\n", e.Hint)
	}
}

/// New creates a LexError positioned at file:line.
func New(kind Kind, file string, line int, format string, args ...any) *LexError {
	return &LexError{
		Kind:    kind,
		File:    file,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithHint attaches a remediation hint and returns the error.
func (e *LexError) WithHint(hint string) *LexError {
	e.Hint = hint
	return e
}

// NewFileIO creates a FileIO error that is not tied to a source position.
func NewFileIO(file string, format string, args ...any) *LexError {
	return New(FileIO, file, 0, format, args...)
}

// NewUsage creates an IncorrectUsage error.
func NewUsage(format string, args ...any) *LexError {
	return New(IncorrectUsage, "", 0, format, args...)
}
