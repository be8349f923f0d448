package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONWriter formats a token stream as JSON
type JSONWriter struct{}

// NewJSONWriter creates a new JSON writer
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{}
}

// jsonToken is the wire shape of one token record
type jsonToken struct {
	Line   int    `json:"line"`
	Kind   string `json:"kind"`
	Lexeme string `json:"lexeme,omitempty"`
}

// jsonStream is the wire shape of a whole stream
type jsonStream struct {
	Source string      `json:"source"`
	Tokens []jsonToken `json:"tokens"`
}

func toJSONStream(s *Stream) *jsonStream {
	out := &jsonStream{
		Source: s.Source,
		Tokens: make([]jsonToken, len(s.Tokens)),
	}
	for i, tok := range s.Tokens {
		out.Tokens[i] = jsonToken{Line: tok.Line, Kind: tok.Kind.String()}
		if tok.Kind.HasLexeme() {
			out.Tokens[i].Lexeme = tok.Lexeme
		}
	}
	return out
}

// Format formats the token stream as JSON and writes to the writer
func (w *JSONWriter) Format(s *Stream, writer io.Writer) error {
	data, err := json.MarshalIndent(toJSONStream(s), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal token stream to JSON: %w", err)
	}

	if _, err = writer.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}

	// Add newline
	_, err = writer.Write([]byte("\n"))
	return err
}

// FormatString returns the token stream as a JSON string
func (w *JSONWriter) FormatString(s *Stream) (string, error) {
	data, err := json.MarshalIndent(toJSONStream(s), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal token stream to JSON: %w", err)
	}
	return string(data), nil
}

// Name returns the name of this formatter
func (w *JSONWriter) Name() string {
	return "json"
}
