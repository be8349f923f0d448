package report

import (
	"fmt"
	"io"

	"github.com/cybertec-postgresql/coolex/pkg/token"
)

// Stream is one source file's ordered token stream plus its provenance.
type Stream struct {
	Source string        // Source path the tokens came from
	Tokens []token.Token // In source order
}

// Formatter is an interface for token-stream output formatters
type Formatter interface {
	// Format writes the token stream to the writer
	Format(s *Stream, writer io.Writer) error

	// FormatString returns the token stream as a string
	FormatString(s *Stream) (string, error)

	// Name returns the name of this formatter
	Name() string
}

// FormatType represents supported output formats
type FormatType string

const (
	// FormatPlain is the line-oriented record format consumed by the
	// downstream parser; it must stay bit-exact.
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatHTML  FormatType = "html"
)

// GetFormatter returns a formatter for the specified format type
func GetFormatter(format FormatType) (Formatter, error) {
	switch format {
	case FormatPlain:
		return NewPlainWriter(), nil
	case FormatJSON:
		return NewJSONWriter(), nil
	case FormatHTML:
		return NewHTMLWriter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: plain, json, html)", format)
	}
}

// FormatToWriter formats a token stream to a writer using the specified format
func FormatToWriter(s *Stream, format FormatType, writer io.Writer) error {
	formatter, err := GetFormatter(format)
	if err != nil {
		return err
	}
	return formatter.Format(s, writer)
}

// ValidFormat checks if a format string is valid
func ValidFormat(format string) bool {
	switch FormatType(format) {
	case FormatPlain, FormatJSON, FormatHTML:
		return true
	default:
		return false
	}
}

// SupportedFormats returns a list of supported format names
func SupportedFormats() []string {
	return []string{string(FormatPlain), string(FormatJSON), string(FormatHTML)}
}
