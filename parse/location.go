package parse

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Location is an immutable cursor into the input being parsed. All locations
// produced during one parse share the same input; only the offset differs.
// Advancing returns a new value, so an earlier Location stays valid for
// backtracking.
type Location struct {
	input  string
	offset int
}

// NewLocation returns a cursor at the start of input.
func NewLocation(input string) Location {
	return Location{input: input}
}

// Offset returns the byte offset of the cursor.
func (l Location) Offset() int { return l.offset }

// Input returns the full input text shared by all locations of this parse.
func (l Location) Input() string { return l.input }

// Advance returns a new Location moved forward by n bytes. Callers guarantee
// the result does not run past the end of the input; Advance itself does not
// check.
func (l Location) Advance(n int) Location {
	return Location{input: l.input, offset: l.offset + n}
}

// Rest returns the unconsumed remainder of the input.
func (l Location) Rest() string { return l.input[l.offset:] }

// AtEnd reports whether the cursor has consumed the whole input.
func (l Location) AtEnd() bool { return l.offset >= len(l.input) }

// Between returns the input text between l and end. end must come from the
// same parse and lie at or after l.
func (l Location) Between(end Location) string {
	return l.input[l.offset:end.offset]
}

// LineCol derives the 1-based line and column of the cursor by counting
// newlines in the consumed prefix. Columns count runes, not bytes.
func (l Location) LineCol() (line, col int) {
	prefix := l.input[:l.offset]
	line = strings.Count(prefix, "\n") + 1
	lineStart := strings.LastIndexByte(prefix, '\n') + 1
	col = utf8.RuneCountInString(prefix[lineStart:]) + 1
	return line, col
}

func (l Location) String() string {
	line, col := l.LineCol()
	return fmt.Sprintf("line %d, column %d", line, col)
}
