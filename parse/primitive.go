package parse

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Literal matches s exactly at the current location and yields s.
func Literal(s string) Parser[string] {
	return func(loc Location) (string, Location, *Error) {
		if strings.HasPrefix(loc.Rest(), s) {
			return s, loc.Advance(len(s)), nil
		}
		if loc.AtEnd() {
			return "", loc, Errorf(loc, "unexpected end of input, expected '%s'", s)
		}
		return "", loc, Errorf(loc, "expected '%s'", s)
	}
}

// Char matches a single rune satisfying pred, described in failures as desc.
func Char(pred func(rune) bool, desc string) Parser[rune] {
	return func(loc Location) (rune, Location, *Error) {
		if loc.AtEnd() {
			return 0, loc, NewError(loc, "unexpected end of input, expected "+desc)
		}
		r, size := utf8.DecodeRuneInString(loc.Rest())
		if !pred(r) {
			return 0, loc, NewError(loc, "expected "+desc)
		}
		return r, loc.Advance(size), nil
	}
}

// Rune matches one specific rune.
func Rune(r rune) Parser[rune] {
	return Char(func(c rune) bool { return c == r }, fmt.Sprintf("'%c'", r))
}

// Succeed always matches, consumes nothing, and yields v.
func Succeed[A any](v A) Parser[A] {
	return func(loc Location) (A, Location, *Error) {
		return v, loc, nil
	}
}

// Fail always fails with a one-frame error at the current location.
func Fail[A any](msg string) Parser[A] {
	return func(loc Location) (A, Location, *Error) {
		var zero A
		return zero, loc, NewError(loc, msg)
	}
}

// TakeWhile consumes the longest, possibly empty, prefix of runes satisfying
// pred and yields it as a string. It never fails.
func TakeWhile(pred func(rune) bool) Parser[string] {
	return func(loc Location) (string, Location, *Error) {
		rest := loc.Rest()
		n := 0
		for n < len(rest) {
			r, size := utf8.DecodeRuneInString(rest[n:])
			if !pred(r) {
				break
			}
			n += size
		}
		return rest[:n], loc.Advance(n), nil
	}
}

// TakeWhile1 is TakeWhile requiring at least one rune, failing with
// "expected desc" otherwise.
func TakeWhile1(pred func(rune) bool, desc string) Parser[string] {
	some := TakeWhile(pred)
	return func(loc Location) (string, Location, *Error) {
		s, next, _ := some(loc)
		if s == "" {
			if loc.AtEnd() {
				return "", loc, NewError(loc, "unexpected end of input, expected "+desc)
			}
			return "", loc, NewError(loc, "expected "+desc)
		}
		return s, next, nil
	}
}
