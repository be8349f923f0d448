package lexer

import "github.com/cybertec-postgresql/coolex/internal/errors"

/*
 * Bounds for the scan buffer. Exceeding either limit is fatal; spans are
 * never silently truncated. Note the asymmetry produced by where each loop
 * performs its check (both are pinned by test): a name of exactly
 * maxNameSize characters is accepted, while a string body can hold at most
 * maxStringSize-1 characters because the string loop checks before every
 * iteration, including the one that would consume the closing quote.
 */
const (
	maxNameSize   = 1024
	maxStringSize = 1024
)

/*
 * scanString extracts a quoted string body. The opening '"' has already
 * been consumed by the driver.
 *
 * Each iteration works on a previous/current/lookahead triple:
 *
 *   - an unescaped '"' terminates the string. It is escaped (and kept)
 *     exactly when the previously consumed character was '\'. No escape
 *     decoding happens; backslashes are preserved verbatim for the
 *     downstream consumer.
 *   - a NUL byte or end of input inside the string is fatal
 *     (InvalidStringCharacter).
 *   - a newline at the lookahead position is fatal (NonEscapedNewline)
 *     unless the current character is '\', in which case both are consumed
 *     and excluded from the body (line continuation) and scanning resumes
 *     on the next line.
 *
 * Two consequences of the lookahead-based newline rule are preserved
 * rather than fixed, both pinned by test: a newline standing as the very
 * first body character is consumed and kept (no earlier iteration ever saw
 * it at the lookahead position), and a body ending in '\' prevents the
 * following '"' from terminating even when that backslash was itself
 * escaped, so the string keeps running.
 */
func scanString(cur *Cursor) (string, error) {
	buf := make([]byte, 0, maxStringSize)

	for {
		if len(buf) == maxStringSize {
			return "", errors.New(errors.StringLiteralTooLong, cur.Name(), cur.Line(),
				"literal string too long (max %d chars allowed)", maxStringSize)
		}

		prev := cur.Current()
		ch := cur.Advance()

		// Unescaped closing quote; also handles the empty string.
		if prev != '\\' && ch == '"' {
			break
		}

		if ch == 0 || ch == eof {
			return "", errors.New(errors.InvalidStringCharacter, cur.Name(), cur.Line(),
				"literal string may not contain null character or EOF")
		}

		if cur.Peek() == '\n' {
			if ch == '\\' {
				// Line continuation: drop both the backslash and the newline.
				cur.Advance()
				continue
			}
			return "", errors.New(errors.NonEscapedNewline, cur.Name(), cur.Line(),
				"non-escaped newline character inside literal string").
				WithHint(`add \ before newline or close this string with "`)
		}

		buf = append(buf, byte(ch))
	}

	return string(buf), nil
}

/*
 * scanName extracts an identifier/keyword/integer span. The character that
 * triggered the call is the span's first character; further name characters
 * are consumed greedily via lookahead, so the first non-name character is
 * left unconsumed for the driver.
 */
func scanName(cur *Cursor) (string, error) {
	buf := make([]byte, 0, 64)
	buf = append(buf, byte(cur.Current()))

	for isNameChar(cur.Peek()) {
		if len(buf) == maxNameSize {
			return "", errors.New(errors.IdentifierNameTooLong, cur.Name(), cur.Line(),
				"identifier or keyword name too long (max %d chars allowed)", maxNameSize)
		}
		buf = append(buf, byte(cur.Advance()))
	}

	return string(buf), nil
}
