package lexer

import "github.com/cybertec-postgresql/coolex/pkg/token"

/*
 * scanOperator recognizes an operator token starting at the cursor's
 * current character. Single-character operators map directly; '<' and '='
 * need one character of lookahead to pick the two-character forms, and the
 * second character is consumed only when it completes one of them.
 *
 * Reports false for any character that is not an operator; the driver
 * turns that into an InvalidCharacter diagnostic (it has already ruled out
 * whitespace, comment openers, quotes and name characters).
 */
func scanOperator(cur *Cursor) (token.Kind, bool) {
	switch cur.Current() {
	case '(':
		return token.LParen, true
	case ')':
		return token.RParen, true
	case '*':
		return token.Times, true
	case '+':
		return token.Plus, true
	case ',':
		return token.Comma, true
	case '-':
		return token.Minus, true
	case '.':
		return token.Dot, true
	case '/':
		return token.Divide, true
	case ':':
		return token.Colon, true
	case ';':
		return token.Semi, true
	case '<':
		switch cur.Peek() {
		case '-':
			cur.Advance()
			return token.LArrow, true
		case '=':
			cur.Advance()
			return token.Le, true
		default:
			return token.Lt, true
		}
	case '=':
		if cur.Peek() == '>' {
			cur.Advance()
			return token.RArrow, true
		}
		return token.Equals, true
	case '@':
		return token.At, true
	case '{':
		return token.LBrace, true
	case '}':
		return token.RBrace, true
	case '~':
		return token.Tilde, true
	}
	return 0, false
}
