package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

/*
 * PlainWriter emits the line-oriented textual record format the downstream
 * parser consumes: for every token, the line number on its own line, then
 * the kind name, then (only for kinds that carry text: string, integer,
 * identifier, type) the lexeme on a third line.
 *
 * This format is the tool's primary output contract and is reproduced
 * bit-exactly; the other formatters exist for humans and tooling.
 */
type PlainWriter struct{}

// NewPlainWriter creates a new plain-format writer
func NewPlainWriter() *PlainWriter {
	return &PlainWriter{}
}

// Format writes the token stream in the plain record format
func (w *PlainWriter) Format(s *Stream, writer io.Writer) error {
	bw := bufio.NewWriter(writer)
	for _, tok := range s.Tokens {
		if _, err := fmt.Fprintf(bw, "%d\n", tok.Line); err != nil {
			return err
		}
		if tok.Kind.HasLexeme() {
			if _, err := fmt.Fprintf(bw, "%s\n%s\n", tok.Kind, tok.Lexeme); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s\n", tok.Kind); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// FormatString returns the token stream as a plain-format string
func (w *PlainWriter) FormatString(s *Stream) (string, error) {
	var buf strings.Builder
	if err := w.Format(s, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Name returns the name of this formatter
func (w *PlainWriter) Name() string {
	return "plain"
}
