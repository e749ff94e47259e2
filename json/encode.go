package json

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Encoder writes Values as JSON text.
type Encoder struct {
	w      io.Writer
	indent string
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// SetIndent switches from compact to multi-line output, indenting each
// nesting level with indent.
func (e *Encoder) SetIndent(indent string) {
	e.indent = indent
}

// Encode writes v to the underlying writer, followed by a newline when
// indenting is enabled.
func (e *Encoder) Encode(v Value) error {
	var b strings.Builder
	writeValue(&b, v, e.indent, 0)
	if e.indent != "" {
		b.WriteByte('\n')
	}
	_, err := io.WriteString(e.w, b.String())
	return err
}

// Encode renders v as compact JSON text. Object keys are written in sorted
// order, so equal values always render identically.
func Encode(v Value) string {
	var b strings.Builder
	writeValue(&b, v, "", 0)
	return b.String()
}

func writeValue(b *strings.Builder, v Value, indent string, depth int) {
	switch v := v.(type) {
	case Null:
		b.WriteString("null")
	case Bool:
		if v {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case Number:
		b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 64))
	case String:
		writeQuoted(b, string(v))
	case Array:
		b.WriteByte('[')
		for i, el := range v {
			if i > 0 {
				b.WriteByte(',')
			}
			writeBreak(b, indent, depth+1)
			writeValue(b, el, indent, depth+1)
		}
		if len(v) > 0 {
			writeBreak(b, indent, depth)
		}
		b.WriteByte(']')
	case Object:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			writeBreak(b, indent, depth+1)
			writeQuoted(b, k)
			b.WriteByte(':')
			if indent != "" {
				b.WriteByte(' ')
			}
			writeValue(b, v[k], indent, depth+1)
		}
		if len(v) > 0 {
			writeBreak(b, indent, depth)
		}
		b.WriteByte('}')
	}
}

func writeBreak(b *strings.Builder, indent string, depth int) {
	if indent == "" {
		return
	}
	b.WriteByte('\n')
	for i := 0; i < depth; i++ {
		b.WriteString(indent)
	}
}

func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}
