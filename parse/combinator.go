package parse

import (
	"fmt"
	"sync"
)

// Map transforms the result of p on success. Failures pass through
// unmodified.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(loc Location) (B, Location, *Error) {
		a, next, err := p(loc)
		if err != nil {
			var zero B
			return zero, loc, err
		}
		return f(a), next, nil
	}
}

// FlatMap runs p, then feeds its value to f to obtain the parser for what
// follows. This is the one combinator that makes context-sensitive grammars
// possible: the second parser may depend on the first parser's value.
func FlatMap[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(loc Location) (B, Location, *Error) {
		a, next, err := p(loc)
		if err != nil {
			var zero B
			return zero, loc, err
		}
		return f(a)(next)
	}
}

// Or tries p, and on failure backtracks to the original location and tries
// q, even when p consumed input before failing. Commit suppresses the
// backtrack. When both alternatives fail, the error anchored further into
// the input is reported; ties keep p's error.
func Or[A any](p, q Parser[A]) Parser[A] {
	return func(loc Location) (A, Location, *Error) {
		a, next, err := p(loc)
		if err == nil {
			return a, next, nil
		}
		if err.Committed() {
			var zero A
			return zero, loc, err
		}
		b, next2, err2 := q(loc)
		if err2 == nil {
			return b, next2, nil
		}
		var zero A
		if err2.Committed() {
			return zero, loc, err2
		}
		return zero, loc, furthest(err, err2)
	}
}

// Choice folds Or over the alternatives, left to right.
func Choice[A any](ps ...Parser[A]) Parser[A] {
	if len(ps) == 0 {
		panic("parse: Choice requires at least one alternative")
	}
	p := ps[0]
	for _, q := range ps[1:] {
		p = Or(p, q)
	}
	return p
}

// Commit forbids backtracking past p: a failure of p propagates through Or
// and Many instead of being discarded in favor of an alternative. Use it
// after a token that uniquely identifies a branch, so errors stay anchored
// where the defect is.
func Commit[A any](p Parser[A]) Parser[A] {
	return func(loc Location) (A, Location, *Error) {
		a, next, err := p(loc)
		if err != nil {
			return a, loc, err.commit()
		}
		return a, next, nil
	}
}

// Many collects zero or more consecutive matches of p. The first uncommitted
// failure of p ends the repetition without error, leaving the location at
// the end of the last match. A committed failure propagates.
//
// A success of p that consumes no input means the repetition would never
// terminate; that is a defect in the grammar, not in the input, and Many
// panics so it surfaces during grammar development.
func Many[A any](p Parser[A]) Parser[[]A] {
	return func(loc Location) ([]A, Location, *Error) {
		var out []A
		cur := loc
		for {
			a, next, err := p(cur)
			if err != nil {
				if err.Committed() {
					return nil, loc, err
				}
				return out, cur, nil
			}
			if next.Offset() == cur.Offset() {
				panic(fmt.Sprintf("parse: Many: parser succeeded without consuming input at %s; repetition would never terminate", cur))
			}
			out = append(out, a)
			cur = next
		}
	}
}

// Many1 is Many requiring at least one match, failing with the inner failure
// otherwise.
func Many1[A any](p Parser[A]) Parser[[]A] {
	return FlatMap(p, func(first A) Parser[[]A] {
		return Map(Many(p), func(rest []A) []A {
			return append([]A{first}, rest...)
		})
	})
}

// Label pushes desc as an outer context frame onto any failure of p,
// anchored where the labeled region began. On success it is transparent.
func Label[A any](desc string, p Parser[A]) Parser[A] {
	return func(loc Location) (A, Location, *Error) {
		a, next, err := p(loc)
		if err != nil {
			var zero A
			return zero, loc, err.Push(loc, desc)
		}
		return a, next, nil
	}
}

// Expected collapses a failure of p that made no progress into a single
// "expected desc" frame at the entry location. Failures that consumed input
// or committed keep their own, more precise diagnostics. Useful on a Choice:
// when every branch fails on its first token the caller sees one message
// instead of the first branch's.
func Expected[A any](desc string, p Parser[A]) Parser[A] {
	return func(loc Location) (A, Location, *Error) {
		a, next, err := p(loc)
		if err == nil {
			return a, next, nil
		}
		var zero A
		if err.Committed() || err.Deepest().Loc.Offset() > loc.Offset() {
			return zero, loc, err
		}
		return zero, loc, NewError(loc, "expected "+desc)
	}
}

// Slice discards p's value and yields the exact input text p consumed.
func Slice[A any](p Parser[A]) Parser[string] {
	return func(loc Location) (string, Location, *Error) {
		_, next, err := p(loc)
		if err != nil {
			return "", loc, err
		}
		return loc.Between(next), next, nil
	}
}

// SkipLeft runs p then q, keeping q's value.
func SkipLeft[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return FlatMap(p, func(A) Parser[B] { return q })
}

// SkipRight runs p then q, keeping p's value.
func SkipRight[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return FlatMap(p, func(a A) Parser[A] {
		return Map(q, func(B) A { return a })
	})
}

// Pair holds the results of two sequenced parsers.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Product runs p then q and keeps both values.
func Product[A, B any](p Parser[A], q Parser[B]) Parser[Pair[A, B]] {
	return FlatMap(p, func(a A) Parser[Pair[A, B]] {
		return Map(q, func(b B) Pair[A, B] {
			return Pair[A, B]{First: a, Second: b}
		})
	})
}

// Optional tries p and yields fallback if p fails without committing.
func Optional[A any](p Parser[A], fallback A) Parser[A] {
	return Or(p, Succeed(fallback))
}

// SepBy parses zero or more p separated by sep, yielding the p values.
func SepBy[A, S any](p Parser[A], sep Parser[S]) Parser[[]A] {
	return Or(SepBy1(p, sep), Succeed[[]A](nil))
}

// SepBy1 parses one or more p separated by sep.
func SepBy1[A, S any](p Parser[A], sep Parser[S]) Parser[[]A] {
	rest := Many(SkipLeft(sep, p))
	return FlatMap(p, func(first A) Parser[[]A] {
		return Map(rest, func(more []A) []A {
			return append([]A{first}, more...)
		})
	})
}

// Defer builds the parser on first use. Rules that refer to themselves,
// directly or mutually, cannot be constructed eagerly; the thunk breaks the
// cycle and is invoked at most once.
func Defer[A any](f func() Parser[A]) Parser[A] {
	var once sync.Once
	var p Parser[A]
	return func(loc Location) (A, Location, *Error) {
		once.Do(func() { p = f() })
		return p(loc)
	}
}
