package lexer

import (
	"io"

	"github.com/cybertec-postgresql/coolex/internal/errors"
)

/*
 * blockSize is the refill window size in bytes. It is a performance
 * parameter only: the cursor behaves identically for any positive size,
 * and tests exercise the refill boundary with tiny windows via newCursorSize.
 */
const blockSize = 4096

/*
 * eof is the end-of-input marker returned by Advance, Peek and Current.
 * It is deliberately outside the byte range so that no input byte can be
 * mistaken for it; all cursor methods therefore traffic in int, not byte.
 */
const eof = -1

/*
 * Cursor is a buffered, strictly forward, single-pass reader over a source
 * byte stream with exactly one character of lookahead.
 *
 * Invariants:
 *   - pos <= length at all times; a refill happens exactly when pos == length.
 *   - end of input is signaled once a refill yields zero bytes.
 *   - line is 1-based and incremented on every consumed '\n', including
 *     newlines consumed inside comments and string line continuations.
 *
 * A Cursor is exclusively owned by one lexing pass; it is not safe for
 * concurrent use and offers no rewind.
 */
type Cursor struct {
	r    io.Reader
	name string

	window []byte
	length int
	pos    int

	line int
	last int // most recently consumed character; eof before the first Advance

	done bool  // a refill has returned zero bytes
	err  error // sticky read error, surfaced at the end of the pass
}

// NewCursor primes a cursor over r. The source name is used only for
// diagnostics. Construction fails if the first window cannot be read.
func NewCursor(r io.Reader, name string) (*Cursor, error) {
	return newCursorSize(r, name, blockSize)
}

func newCursorSize(r io.Reader, name string, size int) (*Cursor, error) {
	c := &Cursor{
		r:      r,
		name:   name,
		window: make([]byte, size),
		line:   1,
		last:   eof,
	}
	c.refill()
	if c.err != nil {
		return nil, errors.NewFileIO(name, "could not read file %s: %v", name, c.err)
	}
	return c, nil
}

/*
 * Advance consumes and returns the next character, refilling the window
 * transparently. It returns eof once the input is exhausted and keeps
 * returning eof on further calls. The line counter is incremented before
 * returning a '\n'.
 */
func (c *Cursor) Advance() int {
	if c.pos == c.length {
		c.refill()
		if c.length == 0 {
			return eof
		}
	}
	b := c.window[c.pos]
	c.pos++
	if b == '\n' {
		c.line++
	}
	c.last = int(b)
	return int(b)
}

/*
 * Peek returns the character the next Advance would return, without
 * consuming it. Peeking at a window boundary triggers a refill, which is
 * harmless: the consumed/unconsumed split is tracked by pos, and Current
 * reads the explicitly remembered last character rather than the window.
 */
func (c *Cursor) Peek() int {
	if c.pos == c.length {
		c.refill()
		if c.length == 0 {
			return eof
		}
	}
	return int(c.window[c.pos])
}

// Current returns the most recently consumed character, or eof if nothing
// has been consumed yet.
func (c *Cursor) Current() int { return c.last }

// Line returns the 1-based line number of the cursor position.
func (c *Cursor) Line() int { return c.line }

// Name returns the source name given at construction.
func (c *Cursor) Name() string { return c.name }

// Err returns the sticky read error, if any. After a read failure the
// cursor reports end of input; the pass boundary turns Err into a FileIO
// diagnostic so a truncated read is never mistaken for a clean EOF.
func (c *Cursor) Err() error { return c.err }

func (c *Cursor) refill() {
	c.pos = 0
	c.length = 0
	if c.done {
		return
	}
	for {
		n, err := c.r.Read(c.window)
		if n > 0 {
			c.length = n
			if err != nil && err != io.EOF {
				c.err = err
				c.done = true
			}
			return
		}
		if err != nil {
			if err != io.EOF {
				c.err = err
			}
			c.done = true
			return
		}
		// Read returned (0, nil); retry per the io.Reader contract.
	}
}
