package snbt

import nbt "github.com/ValentiMS/amulet-nbt-go"

// cursor is the single stateful object the parser advances through the
// input text. Each grammar alternative commits on its first
// distinguishing character, with one exception: parseNumber rewinds the
// cursor to re-read a token as a bare word when it runs straight into
// more bare-word characters, and rewinds past an 'e' that starts no
// exponent.
type cursor struct {
	src string
	pos int
}

func (c *cursor) eof() bool { return c.pos >= len(c.src) }

func (c *cursor) cur() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.pos]
}

func (c *cursor) peekAt(off int) byte {
	i := c.pos + off
	if i < 0 || i >= len(c.src) {
		return 0
	}
	return c.src[i]
}

func (c *cursor) skipWhitespace() {
	for !c.eof() {
		switch c.cur() {
		case ' ', '\t', '\n', '\r':
			c.pos++
		default:
			return
		}
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isBareWordChar(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', isDigit(b):
		return true
	case b == '_', b == '-', b == '.', b == '+':
		return true
	}
	return false
}

func isSuffixLetter(b byte) bool {
	switch b {
	case 'b', 'B', 's', 'S', 'l', 'L', 'f', 'F', 'd', 'D':
		return true
	}
	return false
}

func parseErr(msg string, offset int) error {
	return &nbt.SNBTParseError{Msg: msg, Offset: offset}
}
