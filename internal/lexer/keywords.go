package lexer

import (
	"math"
	"strconv"
	"strings"

	"github.com/cybertec-postgresql/coolex/pkg/token"
)

/*
 * keywords maps the canonical lowercase spelling of every language keyword
 * to its token kind. Built once, never mutated, so it is safe to share
 * across concurrent passes. Keyword matching is case-insensitive, but see
 * the uppercase-initial rule in classifySpan.
 */
var keywords = map[string]token.Kind{
	"class":    token.KwClass,
	"else":     token.KwElse,
	"false":    token.KwFalse,
	"fi":       token.KwFi,
	"if":       token.KwIf,
	"in":       token.KwIn,
	"inherits": token.KwInherits,
	"isvoid":   token.KwIsvoid,
	"let":      token.KwLet,
	"loop":     token.KwLoop,
	"pool":     token.KwPool,
	"then":     token.KwThen,
	"while":    token.KwWhile,
	"case":     token.KwCase,
	"esac":     token.KwEsac,
	"new":      token.KwNew,
	"of":       token.KwOf,
	"not":      token.KwNot,
	"true":     token.KwTrue,
}

// lookupKeyword resolves a span against the keyword table, ignoring case.
func lookupKeyword(span string) (token.Kind, bool) {
	kind, ok := keywords[strings.ToLower(span)]
	return kind, ok
}

/*
 * checkInteger reports whether a digit-initial span is a valid positive
 * 32-bit signed integer literal:
 *
 *   - digits only (a span like "12ab3" fails here, and the driver treats
 *     the failure as fatal rather than downgrading to an identifier);
 *   - at most 10 digits;
 *   - when exactly 10 digits, the first may not exceed '2', so the value
 *     stays inside uint32 range for parsing;
 *   - numeric value at most 2147483647.
 */
func checkInteger(span string) bool {
	if len(span) > 10 {
		return false
	}
	for i := 0; i < len(span); i++ {
		if span[i] < '0' || span[i] > '9' {
			return false
		}
	}
	if len(span) == 10 && span[0] > '2' {
		return false
	}
	n, err := strconv.ParseUint(span, 10, 32)
	return err == nil && n <= math.MaxInt32
}
