package jdoc

import (
	"strconv"
	"strings"

	"github.com/tidwall/pretty"
)

const hexDigits = "0123456789abcdef"

// Dump serializes the value as compact JSON with no whitespace. Object
// entries are emitted in insertion order.
func (v *Value) Dump() string {
	var b strings.Builder
	appendDump(&b, v)
	return b.String()
}

// DumpPretty serializes the value with two-space indentation.
func (v *Value) DumpPretty() string {
	return string(pretty.Pretty([]byte(v.Dump())))
}

// DumpIndent serializes the value using the given indent string.
func (v *Value) DumpIndent(indent string) string {
	opts := pretty.Options{Width: 80, Indent: indent}
	return string(pretty.PrettyOptions([]byte(v.Dump()), &opts))
}

func appendDump(b *strings.Builder, v *Value) {
	switch v.Type() {
	case TypeNull:
		b.WriteString("null")
	case TypeBool:
		if v.num != 0 {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case TypeNumber:
		b.WriteString(strconv.FormatFloat(v.num, 'g', -1, 64))
	case TypeString:
		appendQuoted(b, v.str)
	case TypeArray:
		b.WriteByte('[')
		for i, elem := range v.arr {
			if i > 0 {
				b.WriteByte(',')
			}
			appendDump(b, elem)
		}
		b.WriteByte(']')
	case TypeObject:
		b.WriteByte('{')
		for i, key := range v.keys {
			if i > 0 {
				b.WriteByte(',')
			}
			appendQuoted(b, key)
			b.WriteByte(':')
			appendDump(b, v.obj[key])
		}
		b.WriteByte('}')
	}
}

// appendQuoted writes s as a quoted JSON string. Bytes below 0x20 without
// a short escape become \u00xx; everything at or above 0x20 other than
// '"' and '\\' passes through untouched.
func appendQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
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
			if c < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[c>>4])
				b.WriteByte(hexDigits[c&0xf])
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
}
