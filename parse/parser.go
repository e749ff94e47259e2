package parse

// Parser consumes a prefix of the input starting at the given location and
// produces a value of type A together with the advanced location, or a
// diagnostic stack anchored where it gave up. On failure the returned
// location is the one the parser was invoked at.
//
// Parsers hold no mutable state: the same parser may be invoked any number
// of times, from any location, concurrently or not, with identical results
// for identical inputs.
type Parser[A any] func(Location) (A, Location, *Error)

// Run applies p to the whole input. The entire input must be consumed:
// leftover text after a successful parse is an error anchored at the first
// unconsumed byte.
func Run[A any](p Parser[A], input string) (A, error) {
	v, loc, err := p(NewLocation(input))
	if err != nil {
		var zero A
		return zero, err
	}
	if !loc.AtEnd() {
		var zero A
		return zero, NewError(loc, "unexpected trailing data")
	}
	return v, nil
}
