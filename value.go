// Package jdoc provides a mutable, dynamically-typed JSON document model.
// Created by dhawalhost (2026-08-27 09:12:41)
//
// A Value is an owned tree node holding one of null, bool, number, string,
// array or object. Trees are built through the Value mutators (Set, Append,
// Delete, Remove) or through chained path proxies (Key, At, Path) that
// auto-create intermediate containers on write. Reads never mutate; absent
// keys and out-of-range indexes resolve to null rather than erroring.
package jdoc

import (
	"errors"
	"fmt"
	"sort"

	gojson "github.com/goccy/go-json"
)

// Common errors reported by document operations
var (
	ErrInvalidJSON   = errors.New("invalid json document")
	ErrInvalidPath   = errors.New("invalid path syntax")
	ErrTypeMismatch  = errors.New("type mismatch")
	ErrNotAContainer = errors.New("not a container")
)

// Type identifies which kind of JSON value a Value currently holds.
type Type uint8

const (
	TypeNull Type = iota
	TypeBool
	TypeNumber
	TypeString
	TypeObject
	TypeArray
)

// String returns the name of the type.
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	}
	return "unknown"
}

// Value is a single node of a JSON document tree. Each Value exclusively
// owns its subtree: inserting a Value into a container always stores a deep
// copy, so no two live Values ever share mutable storage.
//
// Object entries keep insertion order for iteration and serialization.
type Value struct {
	t    Type
	num  float64
	str  string
	arr  []*Value
	obj  map[string]*Value
	keys []string
}

//------------------------------------------------------------------------------
// CONSTRUCTORS
//------------------------------------------------------------------------------

// Null returns a new null value.
func Null() *Value { return &Value{t: TypeNull} }

// Bool returns a new boolean value.
func Bool(b bool) *Value {
	v := &Value{t: TypeBool}
	if b {
		v.num = 1
	}
	return v
}

// Number returns a new number value. Integers are stored through the same
// float64 representation; there is no separate integer variant.
func Number(f float64) *Value { return &Value{t: TypeNumber, num: f} }

// String returns a new string value.
func String(s string) *Value { return &Value{t: TypeString, str: s} }

// Object returns a new empty object.
func Object() *Value {
	return &Value{t: TypeObject, obj: make(map[string]*Value)}
}

// Array returns a new array holding deep copies of the given items. Items
// that cannot be represented as JSON are stored as null.
func Array(items ...any) *Value {
	v := &Value{t: TypeArray}
	for _, item := range items {
		elem, err := toValue(item)
		if err != nil {
			elem = Null()
		}
		v.arr = append(v.arr, elem)
	}
	return v
}

// ValueOf converts an arbitrary Go value into a Value. Basic kinds (nil,
// bool, numbers, string, []any, map[string]any, *Value, *Proxy) convert
// directly; anything else round-trips through a JSON encode.
func ValueOf(value any) (*Value, error) {
	return toValue(value)
}

func toValue(value any) (*Value, error) {
	switch x := value.(type) {
	case nil:
		return Null(), nil
	case *Value:
		if x == nil {
			return Null(), nil
		}
		return x.Copy(), nil
	case *Proxy:
		if x == nil {
			return Null(), nil
		}
		return x.Value(), nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(float64(x)), nil
	case int:
		return Number(float64(x)), nil
	case int8:
		return Number(float64(x)), nil
	case int16:
		return Number(float64(x)), nil
	case int32:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case uint:
		return Number(float64(x)), nil
	case uint8:
		return Number(float64(x)), nil
	case uint16:
		return Number(float64(x)), nil
	case uint32:
		return Number(float64(x)), nil
	case uint64:
		return Number(float64(x)), nil
	case []any:
		v := &Value{t: TypeArray}
		for _, item := range x {
			elem, err := toValue(item)
			if err != nil {
				return nil, err
			}
			v.arr = append(v.arr, elem)
		}
		return v, nil
	case map[string]any:
		v := Object()
		names := make([]string, 0, len(x))
		for name := range x {
			names = append(names, name)
		}
		// Go map order is random; sort for deterministic trees.
		sort.Strings(names)
		for _, name := range names {
			elem, err := toValue(x[name])
			if err != nil {
				return nil, err
			}
			v.storeKey(name, elem)
		}
		return v, nil
	default:
		data, err := gojson.Marshal(x)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %T to json value: %w", x, err)
		}
		return ParseBytes(data)
	}
}

//------------------------------------------------------------------------------
// TYPE QUERIES AND TYPED EXTRACTION
//------------------------------------------------------------------------------

// Type returns the tag of the value. A nil *Value reads as null.
func (v *Value) Type() Type {
	if v == nil {
		return TypeNull
	}
	return v.t
}

// IsNull reports whether the value is null.
func (v *Value) IsNull() bool { return v.Type() == TypeNull }

// IsBool reports whether the value is a boolean.
func (v *Value) IsBool() bool { return v.Type() == TypeBool }

// IsNumber reports whether the value is a number.
func (v *Value) IsNumber() bool { return v.Type() == TypeNumber }

// IsString reports whether the value is a string.
func (v *Value) IsString() bool { return v.Type() == TypeString }

// IsObject reports whether the value is an object.
func (v *Value) IsObject() bool { return v.Type() == TypeObject }

// IsArray reports whether the value is an array.
func (v *Value) IsArray() bool { return v.Type() == TypeArray }

// AsString returns the string payload, or ErrTypeMismatch if the value is
// not a string. There is no coercion from other kinds.
func (v *Value) AsString() (string, error) {
	if v.Type() != TypeString {
		return "", fmt.Errorf("%w: %s is not a string", ErrTypeMismatch, v.Type())
	}
	return v.str, nil
}

// AsFloat returns the number payload, or ErrTypeMismatch if the value is
// not a number.
func (v *Value) AsFloat() (float64, error) {
	if v.Type() != TypeNumber {
		return 0, fmt.Errorf("%w: %s is not a number", ErrTypeMismatch, v.Type())
	}
	return v.num, nil
}

// AsInt returns the number payload truncated to int, or ErrTypeMismatch if
// the value is not a number.
func (v *Value) AsInt() (int, error) {
	f, err := v.AsFloat()
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// AsInt64 returns the number payload truncated to int64, or ErrTypeMismatch
// if the value is not a number.
func (v *Value) AsInt64() (int64, error) {
	f, err := v.AsFloat()
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}

// AsBool returns the boolean payload, or ErrTypeMismatch if the value is
// not a boolean. Numbers are never readable as booleans.
func (v *Value) AsBool() (bool, error) {
	if v.Type() != TypeBool {
		return false, fmt.Errorf("%w: %s is not a bool", ErrTypeMismatch, v.Type())
	}
	return v.num != 0, nil
}

//------------------------------------------------------------------------------
// STRUCTURE HELPERS
//------------------------------------------------------------------------------

// Len returns the number of array elements or object entries, and 0 for
// every other kind.
func (v *Value) Len() int {
	switch v.Type() {
	case TypeArray:
		return len(v.arr)
	case TypeObject:
		return len(v.keys)
	}
	return 0
}

// Keys returns the object keys in insertion order. The slice is a copy.
// Non-objects return nil.
func (v *Value) Keys() []string {
	if v.Type() != TypeObject {
		return nil
	}
	keys := make([]string, len(v.keys))
	copy(keys, v.keys)
	return keys
}

// Copy returns a deep copy of the value. The copy shares no mutable
// storage with the receiver.
func (v *Value) Copy() *Value {
	switch v.Type() {
	case TypeArray:
		cp := &Value{t: TypeArray}
		if len(v.arr) > 0 {
			cp.arr = make([]*Value, len(v.arr))
			for i, elem := range v.arr {
				cp.arr[i] = elem.Copy()
			}
		}
		return cp
	case TypeObject:
		cp := Object()
		for _, key := range v.keys {
			cp.storeKey(key, v.obj[key].Copy())
		}
		return cp
	case TypeNull:
		return Null()
	default:
		return &Value{t: v.t, num: v.num, str: v.str}
	}
}

// Equals reports structural equivalence. Arrays compare element-wise in
// order; objects compare as sets of key/value pairs.
func (v *Value) Equals(o *Value) bool {
	if v.Type() != o.Type() {
		return false
	}
	switch v.Type() {
	case TypeNull:
		return true
	case TypeBool, TypeNumber:
		return v.num == o.num
	case TypeString:
		return v.str == o.str
	case TypeArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i, elem := range v.arr {
			if !elem.Equals(o.arr[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		if len(v.keys) != len(o.keys) {
			return false
		}
		for _, key := range v.keys {
			other, ok := o.obj[key]
			if !ok || !v.obj[key].Equals(other) {
				return false
			}
		}
		return true
	}
	return false
}

// String implements fmt.Stringer as the compact serialized form.
func (v *Value) String() string { return v.Dump() }

// MarshalJSON implements json.Marshaler.
func (v *Value) MarshalJSON() ([]byte, error) {
	return []byte(v.Dump()), nil
}

// UnmarshalJSON implements json.Unmarshaler, replacing the receiver's
// content with the parsed document.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseBytes(data)
	if err != nil {
		return err
	}
	*v = *parsed
	return nil
}

// Decode unmarshals the value into dst through its serialized form.
func (v *Value) Decode(dst any) error {
	return gojson.Unmarshal([]byte(v.Dump()), dst)
}
