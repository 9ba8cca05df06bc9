package jdoc

import (
	"fmt"

	"github.com/valyala/fastjson"
)

// Lexing and grammar are delegated to fastjson; jdoc owns only the
// resulting tree. The parsed fastjson values borrow from the parser's
// buffer, so they are converted into owned Values before the parser is
// returned to the pool.

var parsers fastjson.ParserPool

// Parse parses a JSON document into an owned Value tree. Malformed input
// fails with an error wrapping ErrInvalidJSON.
func Parse(text string) (*Value, error) {
	return ParseBytes([]byte(text))
}

// ParseBytes parses a JSON document into an owned Value tree.
func ParseBytes(data []byte) (*Value, error) {
	p := parsers.Get()
	defer parsers.Put(p)
	fv, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return fromEngine(fv), nil
}

// fromEngine converts a borrowed fastjson value into an owned Value.
// Object entries are visited in document order, which becomes the tree's
// insertion order.
func fromEngine(fv *fastjson.Value) *Value {
	switch fv.Type() {
	case fastjson.TypeNull:
		return Null()
	case fastjson.TypeTrue:
		return Bool(true)
	case fastjson.TypeFalse:
		return Bool(false)
	case fastjson.TypeNumber:
		f, _ := fv.Float64()
		return Number(f)
	case fastjson.TypeString:
		sb, _ := fv.StringBytes()
		return String(string(sb))
	case fastjson.TypeArray:
		items, _ := fv.Array()
		v := &Value{t: TypeArray}
		if len(items) > 0 {
			v.arr = make([]*Value, len(items))
			for i, item := range items {
				v.arr[i] = fromEngine(item)
			}
		}
		return v
	case fastjson.TypeObject:
		obj, _ := fv.Object()
		v := Object()
		obj.Visit(func(key []byte, item *fastjson.Value) {
			v.storeKey(string(key), fromEngine(item))
		})
		return v
	}
	return Null()
}
