package snbt

import (
	"strconv"
	"strings"

	nbt "github.com/ValentiMS/amulet-nbt-go"
)

// Parse reads one SNBT value from s, requiring the entire string (modulo
// surrounding whitespace) to be consumed.
func Parse(s string) (nbt.Tag, error) {
	c := &cursor{src: s}
	c.skipWhitespace()
	v, err := c.parseValue()
	if err != nil {
		return nil, err
	}
	c.skipWhitespace()
	if !c.eof() {
		return nil, parseErr("unexpected trailing data", c.pos)
	}
	return v, nil
}

func (c *cursor) parseValue() (nbt.Tag, error) {
	c.skipWhitespace()
	if c.eof() {
		return nil, parseErr("unexpected end of input", c.pos)
	}
	switch b := c.cur(); {
	case b == '{':
		return c.parseCompound()
	case b == '[':
		return c.parseListOrArray()
	case b == '"' || b == '\'':
		s, err := c.parseQuotedString()
		if err != nil {
			return nil, err
		}
		return nbt.String(s), nil
	case isDigit(b), (b == '+' || b == '-') && isDigit(c.peekAt(1)):
		return c.parseNumber()
	default:
		s, err := c.parseBareWord()
		if err != nil {
			return nil, err
		}
		return nbt.String(s), nil
	}
}

func (c *cursor) parseBareWord() (string, error) {
	start := c.pos
	for !c.eof() && isBareWordChar(c.cur()) {
		c.pos++
	}
	if c.pos == start {
		return "", parseErr("unexpected token", c.pos)
	}
	return c.src[start:c.pos], nil
}

func (c *cursor) parseQuotedString() (string, error) {
	quote := c.cur()
	start := c.pos
	c.pos++
	var b strings.Builder
	for {
		if c.eof() {
			return "", parseErr("unterminated string", start)
		}
		ch := c.cur()
		if ch == quote {
			c.pos++
			return b.String(), nil
		}
		if ch == '\\' {
			c.pos++
			if c.eof() {
				return "", parseErr("unterminated string", start)
			}
			esc := c.cur()
			switch esc {
			case '\\', '"', '\'':
				b.WriteByte(esc)
			default:
				b.WriteByte(esc)
			}
			c.pos++
			continue
		}
		b.WriteByte(ch)
		c.pos++
	}
}

// parseNumber scans a numeric literal starting at the cursor's current
// position. If the scanned token turns out to be followed directly by
// more bare-word characters (e.g. "12bar"), the whole span is reinterpreted
// as a bare string instead — numbers only commit once a word boundary
// confirms they aren't just the prefix of an identifier.
func (c *cursor) parseNumber() (nbt.Tag, error) {
	start := c.pos
	if c.cur() == '+' || c.cur() == '-' {
		c.pos++
	}
	c.scanDigits()
	hasDot := false
	if c.cur() == '.' {
		hasDot = true
		c.pos++
		c.scanDigits()
	}
	hasExp := false
	if c.cur() == 'e' || c.cur() == 'E' {
		save := c.pos
		c.pos++
		if c.cur() == '+' || c.cur() == '-' {
			c.pos++
		}
		if isDigit(c.cur()) {
			hasExp = true
			c.scanDigits()
		} else {
			c.pos = save
		}
	}
	var suffix byte
	if isSuffixLetter(c.cur()) {
		suffix = c.cur()
		c.pos++
	}
	if isBareWordChar(c.cur()) {
		c.pos = start
		s, err := c.parseBareWord()
		if err != nil {
			return nil, err
		}
		return nbt.String(s), nil
	}

	tok := c.src[start:c.pos]
	numPart := tok
	if suffix != 0 {
		numPart = tok[:len(tok)-1]
	}

	switch suffix {
	case 'b', 'B':
		v, err := strconv.ParseInt(numPart, 10, 64)
		if err != nil {
			return nil, parseErr("bad numeric suffix", start)
		}
		return nbt.NewByte(v), nil
	case 's', 'S':
		v, err := strconv.ParseInt(numPart, 10, 64)
		if err != nil {
			return nil, parseErr("bad numeric suffix", start)
		}
		return nbt.NewShort(v), nil
	case 'l', 'L':
		v, err := strconv.ParseInt(numPart, 10, 64)
		if err != nil {
			return nil, parseErr("bad numeric suffix", start)
		}
		return nbt.NewLong(v), nil
	case 'f', 'F':
		v, err := strconv.ParseFloat(numPart, 64)
		if err != nil {
			return nil, parseErr("bad numeric suffix", start)
		}
		return nbt.NewFloat(v), nil
	case 'd', 'D':
		v, err := strconv.ParseFloat(numPart, 64)
		if err != nil {
			return nil, parseErr("bad numeric suffix", start)
		}
		return nbt.NewDouble(v), nil
	default:
		if hasDot || hasExp {
			v, err := strconv.ParseFloat(numPart, 64)
			if err != nil {
				return nil, parseErr("bad numeric literal", start)
			}
			return nbt.NewDouble(v), nil
		}
		v, err := strconv.ParseInt(numPart, 10, 64)
		if err != nil {
			return nil, parseErr("bad numeric literal", start)
		}
		return nbt.NewInt(v), nil
	}
}

func (c *cursor) scanDigits() {
	for !c.eof() && isDigit(c.cur()) {
		c.pos++
	}
}

func (c *cursor) parseKey() (string, error) {
	c.skipWhitespace()
	if c.eof() {
		return "", parseErr("unexpected end of input", c.pos)
	}
	if c.cur() == '"' || c.cur() == '\'' {
		return c.parseQuotedString()
	}
	return c.parseBareWord()
}

func (c *cursor) expect(b byte, what string) error {
	c.skipWhitespace()
	if c.eof() || c.cur() != b {
		return parseErr("expected "+what, c.pos)
	}
	c.pos++
	return nil
}

func (c *cursor) parseCompound() (*nbt.Compound, error) {
	if err := c.expect('{', "'{'"); err != nil {
		return nil, err
	}
	out := nbt.NewCompound()
	c.skipWhitespace()
	if c.cur() == '}' {
		c.pos++
		return out, nil
	}
	for {
		keyOffset := c.pos
		key, err := c.parseKey()
		if err != nil {
			return nil, err
		}
		if out.Has(key) {
			return nil, parseErr("duplicate compound key "+key, keyOffset)
		}
		if err := c.expect(':', "':'"); err != nil {
			return nil, err
		}
		c.skipWhitespace()
		val, err := c.parseValue()
		if err != nil {
			return nil, err
		}
		out.Set(key, val)

		c.skipWhitespace()
		if c.cur() == ',' {
			c.pos++
			c.skipWhitespace()
			if c.cur() == '}' {
				c.pos++
				return out, nil
			}
			continue
		}
		if c.cur() == '}' {
			c.pos++
			return out, nil
		}
		return nil, parseErr("expected ',' or '}'", c.pos)
	}
}

func (c *cursor) parseListOrArray() (nbt.Tag, error) {
	if err := c.expect('[', "'['"); err != nil {
		return nil, err
	}
	c.skipWhitespace()

	if tagLetter := c.cur(); (tagLetter == 'B' || tagLetter == 'I' || tagLetter == 'L') && c.peekAt(1) == ';' {
		c.pos += 2
		return c.parseArrayBody(tagLetter)
	}

	list, _ := nbt.NewList()
	c.skipWhitespace()
	if c.cur() == ']' {
		c.pos++
		return list, nil
	}
	for {
		elemOffset := c.pos
		v, err := c.parseValue()
		if err != nil {
			return nil, err
		}
		if err := list.Append(v); err != nil {
			return nil, &nbt.SNBTParseError{Msg: "list element variant mismatch", Offset: elemOffset, Cause: err}
		}
		c.skipWhitespace()
		if c.cur() == ',' {
			c.pos++
			c.skipWhitespace()
			if c.cur() == ']' {
				c.pos++
				return list, nil
			}
			continue
		}
		if c.cur() == ']' {
			c.pos++
			return list, nil
		}
		return nil, parseErr("expected ',' or ']'", c.pos)
	}
}

// parseArrayBody parses the comma-separated integer elements of a
// "[B;...]"/"[I;...]"/"[L;...]" array, after the header has already been
// consumed.
func (c *cursor) parseArrayBody(tagLetter byte) (nbt.Tag, error) {
	var byteArr *nbt.ByteArray
	var intArr *nbt.IntArray
	var longArr *nbt.LongArray
	switch tagLetter {
	case 'B':
		byteArr = nbt.NewByteArray[int8]()
	case 'I':
		intArr = nbt.NewIntArray[int32]()
	case 'L':
		longArr = nbt.NewLongArray[int64]()
	}

	c.skipWhitespace()
	if c.cur() == ']' {
		c.pos++
		switch tagLetter {
		case 'B':
			return byteArr, nil
		case 'I':
			return intArr, nil
		default:
			return longArr, nil
		}
	}

	for {
		elemOffset := c.pos
		v, err := c.parseValue()
		if err != nil {
			return nil, err
		}
		n, ok := integralValue(v)
		if !ok {
			return nil, parseErr("non-integer array element", elemOffset)
		}
		switch tagLetter {
		case 'B':
			byteArr.Append(n)
		case 'I':
			intArr.Append(n)
		default:
			longArr.Append(n)
		}

		c.skipWhitespace()
		if c.cur() == ',' {
			c.pos++
			c.skipWhitespace()
			if c.cur() == ']' {
				c.pos++
				goto done
			}
			continue
		}
		if c.cur() == ']' {
			c.pos++
			goto done
		}
		return nil, parseErr("expected ',' or ']'", c.pos)
	}
done:
	switch tagLetter {
	case 'B':
		return byteArr, nil
	case 'I':
		return intArr, nil
	default:
		return longArr, nil
	}
}

func integralValue(t nbt.Tag) (int64, bool) {
	switch v := t.(type) {
	case nbt.Byte:
		return int64(v.Value()), true
	case nbt.Short:
		return int64(v.Value()), true
	case nbt.Int:
		return int64(v.Value()), true
	case nbt.Long:
		return v.Value(), true
	default:
		return 0, false
	}
}
