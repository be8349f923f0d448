package token

import "fmt"

// Kind is the lexical category of a token. The String spelling of every
// Kind is the exact kind name written to the token-stream output, so the
// values double as the wire vocabulary consumed by the downstream parser.
type Kind int

const (
	// Single-character operators
	LParen Kind = iota // (
	RParen             // )
	Times              // *
	Plus               // +
	Comma              // ,
	Minus              // -
	Dot                // .
	Divide             // /
	Colon              // :
	Semi               // ;
	At                 // @
	LBrace             // {
	RBrace             // }
	Tilde              // ~

	// Operators requiring one character of lookahead
	LArrow // <-
	Le     // <=
	Lt     // <
	RArrow // =>
	Equals // =

	// Literals and names (these carry a lexeme)
	String
	Integer
	Identifier
	Type

	// Keywords (case-insensitive in the source, canonical lowercase here)
	KwClass
	KwElse
	KwFalse
	KwFi
	KwIf
	KwIn
	KwInherits
	KwIsvoid
	KwLet
	KwLoop
	KwPool
	KwThen
	KwWhile
	KwCase
	KwEsac
	KwNew
	KwOf
	KwNot
	KwTrue
)

var kindNames = [...]string{
	LParen: "lparen", RParen: "rparen", Times: "times", Plus: "plus",
	Comma: "comma", Minus: "minus", Dot: "dot", Divide: "divide",
	Colon: "colon", Semi: "semi", At: "at", LBrace: "lbrace",
	RBrace: "rbrace", Tilde: "tilde",

	LArrow: "larrow", Le: "le", Lt: "lt", RArrow: "rarrow", Equals: "equals",

	String: "string", Integer: "integer", Identifier: "identifier", Type: "type",

	KwClass: "class", KwElse: "else", KwFalse: "false", KwFi: "fi",
	KwIf: "if", KwIn: "in", KwInherits: "inherits", KwIsvoid: "isvoid",
	KwLet: "let", KwLoop: "loop", KwPool: "pool", KwThen: "then",
	KwWhile: "while", KwCase: "case", KwEsac: "esac", KwNew: "new",
	KwOf: "of", KwNot: "not", KwTrue: "true",
}

// String returns the wire spelling of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// HasLexeme reports whether tokens of this kind carry a lexeme record in
// the output stream. Operator and keyword kinds are fully identified by
// their kind name alone.
func (k Kind) HasLexeme() bool {
	switch k {
	case String, Integer, Identifier, Type:
		return true
	}
	return false
}

// IsKeyword reports whether k is one of the language keywords.
func (k Kind) IsKeyword() bool { return k >= KwClass && k <= KwTrue }

// Token is a single classified lexical unit. Immutable once produced.
type Token struct {
	Kind   Kind   // Lexical category
	Line   int    // 1-indexed source line recorded at dispatch time
	Lexeme string // Literal text; empty unless Kind.HasLexeme()
}

// String renders the token for diagnostics and test failure output.
func (t Token) String() string {
	if t.Kind.HasLexeme() {
		return fmt.Sprintf("%d:%s(%s)", t.Line, t.Kind, t.Lexeme)
	}
	return fmt.Sprintf("%d:%s", t.Line, t.Kind)
}
