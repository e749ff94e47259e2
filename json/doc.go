// Package json parses and renders JSON documents using the parse combinator
// engine. It serves double duty: a usable JSON reader, and the reference
// grammar for the engine, with every production assembled from parse
// primitives and the value/array/object cycle broken by parse.Defer.
//
// Parse requires the whole input to be one JSON value surrounded by optional
// whitespace. Numbers are held at double precision. Duplicate object keys
// are accepted syntactically and collapse to the last value.
package json
