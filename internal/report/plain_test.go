package report

import (
	"strings"
	"testing"

	"github.com/cybertec-postgresql/coolex/pkg/token"
)

func sampleStream() *Stream {
	return &Stream{
		Source: "main.cl",
		Tokens: []token.Token{
			{Kind: token.KwClass, Line: 1},
			{Kind: token.Type, Line: 1, Lexeme: "Main"},
			{Kind: token.LBrace, Line: 1},
			{Kind: token.Identifier, Line: 2, Lexeme: "x"},
			{Kind: token.LArrow, Line: 2},
			{Kind: token.Integer, Line: 2, Lexeme: "42"},
			{Kind: token.Semi, Line: 2},
			{Kind: token.String, Line: 3, Lexeme: `hello\nworld`},
			{Kind: token.RBrace, Line: 4},
		},
	}
}

// ── record layout ────────────────────────────────────────────────────────────

func TestPlainFormatRecords(t *testing.T) {
	// Two records per token, three when the kind carries a lexeme.
	// This layout is the output contract; every byte matters.
	want := strings.Join([]string{
		"1", "class",
		"1", "type", "Main",
		"1", "lbrace",
		"2", "identifier", "x",
		"2", "larrow",
		"2", "integer", "42",
		"2", "semi",
		"3", "string", `hello\nworld`,
		"4", "rbrace",
		"", // trailing newline after the final record
	}, "\n")

	got, err := NewPlainWriter().FormatString(sampleStream())
	if err != nil {
		t.Fatalf("FormatString: %v", err)
	}
	if got != want {
		t.Fatalf("plain output mismatch\n  got:  %q\n  want: %q", got, want)
	}
}

func TestPlainFormatEmptyStream(t *testing.T) {
	got, err := NewPlainWriter().FormatString(&Stream{Source: "empty.cl"})
	if err != nil {
		t.Fatalf("FormatString: %v", err)
	}
	if got != "" {
		t.Fatalf("empty stream produced %q, want no output", got)
	}
}

func TestPlainFormatKeepsBackslashesVerbatim(t *testing.T) {
	s := &Stream{Tokens: []token.Token{{Kind: token.String, Line: 1, Lexeme: `a\"b`}}}
	got, err := NewPlainWriter().FormatString(s)
	if err != nil {
		t.Fatalf("FormatString: %v", err)
	}
	if got != "1\nstring\na\\\"b\n" {
		t.Fatalf("got %q", got)
	}
}

// A string body may legitimately contain a raw newline; the plain format
// writes it through unchanged even though it breaks the one-field-per-line
// reading of the output. Pinned as part of the contract.
func TestPlainFormatRawNewlineInLexeme(t *testing.T) {
	s := &Stream{Tokens: []token.Token{{Kind: token.String, Line: 1, Lexeme: "\nab"}}}
	got, err := NewPlainWriter().FormatString(s)
	if err != nil {
		t.Fatalf("FormatString: %v", err)
	}
	if got != "1\nstring\n\nab\n" {
		t.Fatalf("got %q", got)
	}
}

// ── dispatch ─────────────────────────────────────────────────────────────────

func TestGetFormatter(t *testing.T) {
	for _, ft := range []FormatType{FormatPlain, FormatJSON, FormatHTML} {
		f, err := GetFormatter(ft)
		if err != nil {
			t.Errorf("%s: %v", ft, err)
			continue
		}
		if f.Name() != string(ft) {
			t.Errorf("%s: formatter names itself %q", ft, f.Name())
		}
	}
	if _, err := GetFormatter("xml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestValidFormat(t *testing.T) {
	for _, name := range SupportedFormats() {
		if !ValidFormat(name) {
			t.Errorf("%s: listed as supported but not valid", name)
		}
	}
	if ValidFormat("yaml") || ValidFormat("") {
		t.Error("unknown format accepted")
	}
}

func TestFormatToWriter(t *testing.T) {
	var sb strings.Builder
	if err := FormatToWriter(sampleStream(), FormatPlain, &sb); err != nil {
		t.Fatalf("FormatToWriter: %v", err)
	}
	if !strings.HasPrefix(sb.String(), "1\nclass\n") {
		t.Fatalf("got %q", sb.String())
	}
}
