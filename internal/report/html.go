package report

import (
	"fmt"
	"html"
	"io"
	"strings"
	"time"

	"github.com/cybertec-postgresql/coolex/pkg/token"
)

// HTMLWriter formats a token stream as a standalone HTML page for human
// inspection, one row per token with a color class per token family.
type HTMLWriter struct{}

// NewHTMLWriter creates a new HTML writer
func NewHTMLWriter() *HTMLWriter {
	return &HTMLWriter{}
}

// Format formats the token stream as HTML and writes to the writer
func (w *HTMLWriter) Format(s *Stream, writer io.Writer) error {
	if err := w.writeHeader(s, writer); err != nil {
		return err
	}

	for _, tok := range s.Tokens {
		display := tok.Kind.String()
		if tok.Kind.HasLexeme() {
			display = tok.Lexeme
		}
		_, err := fmt.Fprintf(writer, `            <div class="token-row">
                <div class="line-number">%d</div>
                <div class="token-kind">%s</div>
                <div class="token-text %s">%s</div>
            </div>
`, tok.Line, html.EscapeString(tok.Kind.String()), tokenClass(tok.Kind), html.EscapeString(display))
		if err != nil {
			return err
		}
	}

	return w.writeFooter(s, writer)
}

// tokenClass maps a token kind to its CSS class
func tokenClass(k token.Kind) string {
	switch {
	case k.IsKeyword():
		return "keyword"
	case k == token.String:
		return "string"
	case k == token.Integer:
		return "integer"
	case k == token.Type:
		return "type"
	case k == token.Identifier:
		return "identifier"
	default:
		return "operator"
	}
}

// writeHeader writes the HTML document header with CSS
func (w *HTMLWriter) writeHeader(s *Stream, writer io.Writer) error {
	_, err := fmt.Fprintf(writer, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>coolex Token Stream - %s</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Arial, sans-serif; background: #f5f5f5; color: #333; }
        .container { max-width: 900px; margin: 0 auto; padding: 20px; }
        header { background: #2c3e50; color: white; padding: 30px 0; margin-bottom: 30px; }
        header h1 { font-size: 1.8em; margin-bottom: 10px; }
        header .meta { opacity: 0.8; font-size: 0.9em; }
        .stream { background: #282c34; color: #abb2bf; font-family: 'Courier New', monospace; font-size: 0.9em; line-height: 1.6; border-radius: 6px; padding: 15px 0; overflow-x: auto; }
        .token-row { display: flex; padding: 1px 0; }
        .token-row:hover { background: rgba(255,255,255,0.05); }
        .line-number { padding: 0 15px; text-align: right; user-select: none; color: #5c6370; min-width: 60px; }
        .token-kind { padding: 0 10px; min-width: 110px; color: #61afef; }
        .token-text { padding: 0 15px; flex: 1; white-space: pre; }
        .keyword { color: #c678dd; }
        .string { color: #98c379; }
        .integer { color: #d19a66; }
        .type { color: #e5c07b; }
        .identifier { color: #abb2bf; }
        .operator { color: #56b6c2; }
        footer { text-align: center; padding: 30px 0; color: #7f8c8d; font-size: 0.9em; }
    </style>
</head>
<body>
    <header>
        <div class="container">
            <h1>Token Stream</h1>
            <div class="meta">%s | %d tokens | Generated: %s</div>
        </div>
    </header>
    <div class="container">
        <div class="stream">
`, html.EscapeString(s.Source), html.EscapeString(s.Source), len(s.Tokens),
		time.Now().Format(time.RFC1123))
	return err
}

// writeFooter writes the HTML document footer
func (w *HTMLWriter) writeFooter(_ *Stream, writer io.Writer) error {
	_, err := fmt.Fprintf(writer, `        </div>
        <footer>
            Generated by <strong>coolex</strong>
        </footer>
    </div>
</body>
</html>
`)
	return err
}

// FormatString returns the token stream as an HTML string
func (w *HTMLWriter) FormatString(s *Stream) (string, error) {
	var buf strings.Builder
	if err := w.Format(s, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Name returns the name of this formatter
func (w *HTMLWriter) Name() string {
	return "html"
}
