package json

import (
	"fmt"
	"strconv"

	"github.com/dhamidi/pars/parse"
)

// Parse reads one complete JSON document: a single value surrounded by
// optional whitespace. Anything left over after the value is an error.
func Parse(input string) (Value, error) {
	return parse.Run(document, input)
}

// Document returns the parser for a whole JSON document, for callers that
// want to embed it in a larger grammar.
func Document() parse.Parser[Value] {
	return document
}

var document = newGrammar()

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

var ws = parse.TakeWhile(isSpace)

// lexeme skips whitespace after p. Leading whitespace is consumed once by
// the document rule, so every token only has to look after itself.
func lexeme[A any](p parse.Parser[A]) parse.Parser[A] {
	return parse.SkipRight(p, ws)
}

func sym(s string) parse.Parser[string] {
	return lexeme(parse.Literal(s))
}

// commaList parses zero or more p separated by commas. Once a comma has been
// consumed the next element is committed, so a trailing comma reports the
// missing element instead of silently ending the repetition.
func commaList[A any](p parse.Parser[A]) parse.Parser[[]A] {
	tail := parse.Many(parse.SkipLeft(sym(","), parse.Commit(p)))
	one := parse.FlatMap(p, func(first A) parse.Parser[[]A] {
		return parse.Map(tail, func(more []A) []A {
			return append([]A{first}, more...)
		})
	})
	return parse.Or(one, parse.Succeed[[]A](nil))
}

type member struct {
	key string
	val Value
}

// newGrammar assembles the JSON grammar. The value rule is referenced by the
// array and object rules before it exists, so those go through a deferred
// thunk that resolves it at run time.
func newGrammar() parse.Parser[Value] {
	var value parse.Parser[Value]
	valueRef := parse.Defer(func() parse.Parser[Value] { return value })
	element := lexeme(valueRef)

	jsonNull := parse.Map(parse.Literal("null"), func(string) Value { return Null{} })
	jsonBool := parse.Or(
		parse.Map(parse.Literal("true"), func(string) Value { return Bool(true) }),
		parse.Map(parse.Literal("false"), func(string) Value { return Bool(false) }),
	)
	jsonNumber := parse.Label("number", number())
	jsonString := parse.Map(stringLiteral, func(s string) Value { return String(s) })

	jsonArray := parse.Label("array", parse.Map(
		parse.SkipLeft(sym("["), parse.SkipRight(commaList(element), parse.Literal("]"))),
		func(vs []Value) Value { return Array(vs) },
	))

	key := lexeme(parse.Label("object key", stringLiteral))
	// After a key the colon and value are mandatory, so commit: a missing
	// colon or value should not backtrack out of the object.
	mem := parse.FlatMap(key, func(k string) parse.Parser[member] {
		val := parse.SkipLeft(sym(":"),
			parse.Label(fmt.Sprintf("value for key %q", k), element))
		return parse.Map(parse.Commit(val), func(v Value) member {
			return member{key: k, val: v}
		})
	})
	jsonObject := parse.Label("object", parse.Map(
		parse.SkipLeft(sym("{"), parse.SkipRight(commaList(mem), parse.Literal("}"))),
		func(ms []member) Value {
			obj := make(Object, len(ms))
			for _, m := range ms {
				obj[m.key] = m.val // duplicate keys: last write wins
			}
			return Object(obj)
		},
	))

	value = parse.Expected("a JSON value", parse.Choice(
		jsonNull, jsonBool, jsonNumber, jsonString, jsonArray, jsonObject,
	))
	return parse.SkipLeft(ws, element)
}

// number matches a JSON numeric literal: optional minus, an integer part
// with no extraneous leading zero, optional fraction, optional exponent.
// Once a decimal point or exponent marker has been consumed the following
// digits are committed, so "1." and "1e" fail with a message about the
// missing digits rather than parsing as "1" with trailing data.
func number() parse.Parser[Value] {
	sign := parse.Optional(parse.Literal("-"), "")

	// A leading zero commits: backtracking would let a container alternation
	// swallow the diagnostic and misreport the defect as a missing bracket.
	integer := parse.FlatMap(parse.TakeWhile1(isDigit, "a digit"), func(ds string) parse.Parser[string] {
		if len(ds) > 1 && ds[0] == '0' {
			return parse.Commit(parse.Fail[string]("number has a leading zero"))
		}
		return parse.Succeed(ds)
	})

	frac := parse.Optional(
		parse.SkipLeft(parse.Literal("."),
			parse.Commit(parse.TakeWhile1(isDigit, "a digit after the decimal point"))),
		"")

	expSign := parse.Optional(parse.Or(parse.Literal("+"), parse.Literal("-")), "")
	exponent := parse.Optional(
		parse.SkipLeft(parse.Or(parse.Literal("e"), parse.Literal("E")),
			parse.Commit(parse.SkipLeft(expSign,
				parse.TakeWhile1(isDigit, "a digit in the exponent")))),
		"")

	text := parse.Slice(
		parse.SkipLeft(sign, parse.SkipLeft(integer, parse.SkipLeft(frac, exponent))))

	return parse.FlatMap(text, func(s string) parse.Parser[Value] {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return parse.Fail[Value]("number out of range: " + s)
		}
		return parse.Succeed[Value](Number(f))
	})
}
