package json

// Value is a parsed JSON document: exactly one of Null, Bool, Number,
// String, Array, or Object. Values are built bottom-up during a parse and
// never modified afterwards.
type Value interface {
	jsonValue()
}

// Null is the JSON literal null.
type Null struct{}

// Bool is a JSON true or false.
type Bool bool

// Number is a JSON number, held at double precision.
type Number float64

// String is a JSON string with all escapes decoded.
type String string

// Array is an ordered sequence of values.
type Array []Value

// Object maps member keys to values. Syntactically duplicate keys collapse
// to one entry, last write wins.
type Object map[string]Value

func (Null) jsonValue()   {}
func (Bool) jsonValue()   {}
func (Number) jsonValue() {}
func (String) jsonValue() {}
func (Array) jsonValue()  {}
func (Object) jsonValue() {}
