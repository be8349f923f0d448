package lexer

// Character-class predicates. The language is byte/ASCII only, so these
// operate on the cursor's int representation directly; eof matches none
// of them.

// isWhitespace reports whether ch is insignificant between tokens.
func isWhitespace(ch int) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// isNameChar reports whether ch can appear in an identifier, keyword,
// type name or integer span.
func isNameChar(ch int) bool {
	return isDigit(ch) || ch == '_' ||
		(ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// isDigit reports whether ch is an ASCII decimal digit.
func isDigit(ch int) bool { return ch >= '0' && ch <= '9' }

// isUpper reports whether ch is an ASCII uppercase letter.
func isUpper(ch int) bool { return ch >= 'A' && ch <= 'Z' }
