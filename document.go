package jdoc

// Byte-level document helpers: point reads and edits against raw JSON
// text without building a full tree first. Lookup and splicing are
// delegated to gjson/sjson; jdoc paths are translated to their dot
// syntax by the path compiler.

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"github.com/valyala/fastjson"
)

// FormatOptions controls Pretty output.
type FormatOptions struct {
	// Indent is the indentation string; empty selects the default of
	// two spaces.
	Indent string

	// SortKeys emits object keys in sorted order.
	SortKeys bool
}

// Get resolves path against a raw JSON document and returns the value as
// an owned tree. Missing paths and malformed documents resolve to null,
// matching tree-level read semantics.
func Get(json []byte, path string) *Value {
	p, err := CompilePath(path)
	if err != nil {
		return Null()
	}
	res := gjson.GetBytes(json, p.gjsonPath())
	if !res.Exists() {
		return Null()
	}
	v, err := Parse(res.Raw)
	if err != nil {
		return Null()
	}
	return v
}

// GetString is Get for string documents.
func GetString(json string, path string) *Value {
	return Get([]byte(json), path)
}

// Set writes a deep-copyable value at path in a raw JSON document and
// returns the modified document. Intermediate containers are created as
// needed. Wildcard paths are rejected.
func Set(json []byte, path string, value any) ([]byte, error) {
	p, err := CompilePath(path)
	if err != nil {
		return json, err
	}
	if p.hasWildcard() {
		return json, ErrInvalidPath
	}
	switch x := value.(type) {
	case *Value:
		return sjson.SetRawBytes(json, p.gjsonPath(), []byte(x.Dump()))
	case *Proxy:
		return sjson.SetRawBytes(json, p.gjsonPath(), []byte(x.Value().Dump()))
	default:
		return sjson.SetBytes(json, p.gjsonPath(), value)
	}
}

// SetString is Set for string documents.
func SetString(json string, path string, value any) (string, error) {
	out, err := Set([]byte(json), path, value)
	return string(out), err
}

// Delete removes the value at path from a raw JSON document. Missing
// paths leave the document unchanged.
func Delete(json []byte, path string) ([]byte, error) {
	p, err := CompilePath(path)
	if err != nil {
		return json, err
	}
	if p.hasWildcard() {
		return json, ErrInvalidPath
	}
	return sjson.DeleteBytes(json, p.gjsonPath())
}

// DeleteString is Delete for string documents.
func DeleteString(json string, path string) (string, error) {
	out, err := Delete([]byte(json), path)
	return string(out), err
}

// Valid reports whether data is well-formed JSON.
func Valid(data []byte) bool {
	return fastjson.ValidateBytes(data) == nil
}

// ValidString reports whether s is well-formed JSON.
func ValidString(s string) bool {
	return fastjson.Validate(s) == nil
}

// Pretty formats a raw JSON document with two-space indentation.
func Pretty(data []byte) []byte {
	return pretty.Pretty(data)
}

// PrettyWithOptions formats a raw JSON document with custom options.
func PrettyWithOptions(data []byte, opts *FormatOptions) []byte {
	if opts == nil {
		return pretty.Pretty(data)
	}
	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}
	po := pretty.Options{Width: 80, Indent: indent, SortKeys: opts.SortKeys}
	return pretty.PrettyOptions(data, &po)
}

// Ugly strips all insignificant whitespace from a raw JSON document.
func Ugly(data []byte) []byte {
	return pretty.Ugly(data)
}
