// Package parse implements a small parser-combinator engine: parsers are
// values built from primitives (Literal, Char, Succeed, Fail) and glued
// together with combinators (Map, FlatMap, Or, Many, Label, Slice, ...).
//
// A Parser[A] is a pure function from a Location to either a value and an
// advanced Location, or an *Error carrying a stack of positioned diagnostic
// frames. There are no exceptions and no hidden state; alternation
// backtracks by re-running the other branch from the saved Location.
//
// Or is uncommitted by default: a branch may consume input and still be
// backtracked. Wrap a region in Commit to forbid backtracking past it, which
// both bounds re-parsing and keeps error messages anchored near the real
// defect. When two branches fail, the failure further into the input is
// reported.
//
// Recursive rules are built with Defer, which delays construction of the
// sub-parser until the first run. See the json package for a complete
// grammar built this way.
package parse
