package token

const hexDigits = "0123456789abcdef"

// QuoteJSON renders v as a double-quoted JSON string literal. The
// escape set exactly inverts the JSON string grammar accepted by the
// parser: quote, backslash, the control letters, and \u00XX for the
// remaining control characters. Everything else, including any invalid
// UTF-8 the parser let through, is copied byte for byte so quoting
// never loses data.
func QuoteJSON(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch c {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if c < 0x20 {
				d = append(d, '\\', 'u', '0', '0',
					hexDigits[(c>>4)&0xf], hexDigits[c&0xf])
			} else {
				d = append(d, c)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// QuoteLSON renders v as a double-quoted LSON (Lua style) string
// literal. Lua has \a and \v but no \u escape, so control characters
// outside the named set are emitted raw; the parser accepts them raw.
// As in QuoteJSON, non-ASCII bytes are copied through untouched.
func QuoteLSON(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch c {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\a':
			d = append(d, '\\', 'a')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		case '\v':
			d = append(d, '\\', 'v')
		default:
			d = append(d, c)
		}
	}
	d = append(d, '"')
	return string(d)
}

// Ident scans an identifier at the start of d and returns its byte
// length, 0 when d does not start with one. Identifiers are ASCII:
// a letter or underscore, then letters, digits and underscores.
func Ident(d []byte) int {
	if len(d) == 0 || !identStart(d[0]) {
		return 0
	}
	i := 1
	for i < len(d) && identPart(d[i]) {
		i++
	}
	return i
}

func identStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func identPart(c byte) bool {
	return identStart(c) || AsciiDigit(c)
}
