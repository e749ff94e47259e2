package parse

import (
	"fmt"
	"strings"
)

// Frame is a single diagnostic: a message anchored at the location where a
// rule failed or where a labeled region began.
type Frame struct {
	Loc     Location
	Message string
}

// Error is an ordered, non-empty stack of diagnostic frames describing a
// failed parse, innermost failure first. Values are immutable: Push copies,
// so two alternation branches can extend the same error independently.
type Error struct {
	frames    []Frame
	committed bool
}

// NewError returns a one-frame error anchored at loc.
func NewError(loc Location, msg string) *Error {
	return &Error{frames: []Frame{{Loc: loc, Message: msg}}}
}

// Errorf is NewError with fmt.Sprintf formatting.
func Errorf(loc Location, format string, args ...any) *Error {
	return NewError(loc, fmt.Sprintf(format, args...))
}

// Push returns a new error with one more outer context frame. The receiver
// is left untouched.
func (e *Error) Push(loc Location, msg string) *Error {
	frames := make([]Frame, len(e.frames)+1)
	copy(frames, e.frames)
	frames[len(e.frames)] = Frame{Loc: loc, Message: msg}
	return &Error{frames: frames, committed: e.committed}
}

// Frames returns the diagnostic stack, innermost first. The returned slice
// must not be modified.
func (e *Error) Frames() []Frame { return e.frames }

// Deepest returns the innermost frame, the one closest to the actual defect.
func (e *Error) Deepest() Frame { return e.frames[0] }

// Committed reports whether backtracking past this failure is forbidden.
// See Commit.
func (e *Error) Committed() bool { return e.committed }

func (e *Error) commit() *Error {
	if e.committed {
		return e
	}
	return &Error{frames: e.frames, committed: true}
}

// Error renders the stack on a single line: the innermost message with its
// line and column, followed by the outer context labels.
//
//	expected ':' at line 3, column 12 (while parsing value for key "a", in object)
func (e *Error) Error() string {
	var b strings.Builder
	deep := e.frames[0]
	line, col := deep.Loc.LineCol()
	fmt.Fprintf(&b, "%s at line %d, column %d", deep.Message, line, col)
	if len(e.frames) > 1 {
		b.WriteString(" (while parsing ")
		for i, f := range e.frames[1:] {
			if i > 0 {
				b.WriteString(", in ")
			}
			b.WriteString(f.Message)
		}
		b.WriteByte(')')
	}
	return b.String()
}

// furthest picks the error anchored deeper into the input; a deeper failure
// usually pinpoints the real defect better. Ties keep a.
func furthest(a, b *Error) *Error {
	if b.frames[0].Loc.offset > a.frames[0].Loc.offset {
		return b
	}
	return a
}
