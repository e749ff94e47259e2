package json

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dhamidi/pars/parse"
)

// stringLiteral matches a double-quoted JSON string and yields its decoded
// contents. It is written directly against the Location rather than
// assembled from combinators: escape decoding and surrogate pairing need
// lookahead that is clumsy to express with Char and Or.
var stringLiteral parse.Parser[string] = scanString

func scanString(loc parse.Location) (string, parse.Location, *parse.Error) {
	rest := loc.Rest()
	if len(rest) == 0 {
		return "", loc, parse.NewError(loc, "unexpected end of input, expected a string")
	}
	if rest[0] != '"' {
		return "", loc, parse.NewError(loc, "expected a string")
	}
	var b strings.Builder
	i := 1
	for {
		if i >= len(rest) {
			return "", loc, parse.NewError(loc.Advance(i), "unterminated string")
		}
		switch c := rest[i]; {
		case c == '"':
			return b.String(), loc.Advance(i + 1), nil
		case c == '\\':
			next, err := scanEscape(loc, rest, i, &b)
			if err != nil {
				return "", loc, err
			}
			i = next
		case c < 0x20:
			return "", loc, parse.NewError(loc.Advance(i), "unescaped control character in string")
		case c < utf8.RuneSelf:
			b.WriteByte(c)
			i++
		default:
			_, size := utf8.DecodeRuneInString(rest[i:])
			b.WriteString(rest[i : i+size])
			i += size
		}
	}
}

// scanEscape decodes the escape sequence starting at rest[i] (the
// backslash), appends the decoded text to b, and returns the index just
// past the sequence. Errors are anchored at the backslash.
func scanEscape(loc parse.Location, rest string, i int, b *strings.Builder) (int, *parse.Error) {
	start := i
	i++
	if i >= len(rest) {
		return 0, parse.NewError(loc.Advance(i), "unterminated string")
	}
	switch c := rest[i]; c {
	case '"', '\\', '/':
		b.WriteByte(c)
		return i + 1, nil
	case 'b':
		b.WriteByte('\b')
		return i + 1, nil
	case 'f':
		b.WriteByte('\f')
		return i + 1, nil
	case 'n':
		b.WriteByte('\n')
		return i + 1, nil
	case 'r':
		b.WriteByte('\r')
		return i + 1, nil
	case 't':
		b.WriteByte('\t')
		return i + 1, nil
	case 'u':
		hi, err := scanHex4(loc, rest, i+1)
		if err != nil {
			return 0, err
		}
		i += 5
		r := rune(hi)
		if !utf16.IsSurrogate(r) {
			b.WriteRune(r)
			return i, nil
		}
		if r >= 0xDC00 {
			return 0, parse.NewError(loc.Advance(start), "unpaired low surrogate in string")
		}
		if !strings.HasPrefix(rest[i:], `\u`) {
			return 0, parse.NewError(loc.Advance(start), "unpaired high surrogate in string")
		}
		lo, err := scanHex4(loc, rest, i+2)
		if err != nil {
			return 0, err
		}
		pair := utf16.DecodeRune(r, rune(lo))
		if pair == utf8.RuneError {
			return 0, parse.NewError(loc.Advance(start), "invalid surrogate pair in string")
		}
		b.WriteRune(pair)
		return i + 6, nil
	default:
		return 0, parse.Errorf(loc.Advance(start), "invalid escape '\\%c'", c)
	}
}

// scanHex4 reads exactly four hex digits at rest[i].
func scanHex4(loc parse.Location, rest string, i int) (uint32, *parse.Error) {
	if i+4 > len(rest) {
		return 0, parse.NewError(loc.Advance(i), "expected four hex digits after '\\u'")
	}
	v, err := strconv.ParseUint(rest[i:i+4], 16, 32)
	if err != nil {
		return 0, parse.NewError(loc.Advance(i), "expected four hex digits after '\\u'")
	}
	return uint32(v), nil
}
