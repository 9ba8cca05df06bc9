package jdoc

// Structural mutators. Set and Append auto-vivify a null receiver into the
// matching container kind; any populated non-container receiver is an
// error. Every insertion stores a deep copy of the source value, so the
// caller's copy and the stored copy never alias.

// Set stores a deep copy of value under key, replacing any existing entry
// for that key. A null receiver becomes an empty object first; a populated
// non-object receiver fails with ErrNotAContainer.
func (v *Value) Set(key string, value any) error {
	if v == nil {
		return ErrNotAContainer
	}
	if v.t == TypeNull {
		v.becomeObject()
	}
	if v.t != TypeObject {
		return ErrNotAContainer
	}
	elem, err := toValue(value)
	if err != nil {
		return err
	}
	v.storeKey(key, elem)
	return nil
}

// Append appends deep copies of the given values as new last elements. A
// null receiver becomes an empty array first; a populated non-array
// receiver fails with ErrNotAContainer.
func (v *Value) Append(values ...any) error {
	if v == nil {
		return ErrNotAContainer
	}
	if v.t == TypeNull {
		v.becomeArray()
	}
	if v.t != TypeArray {
		return ErrNotAContainer
	}
	for _, value := range values {
		elem, err := toValue(value)
		if err != nil {
			return err
		}
		v.arr = append(v.arr, elem)
	}
	return nil
}

// Delete removes the entry for key. Absent keys and non-object receivers
// are a no-op, not an error. Returns the receiver for chaining.
func (v *Value) Delete(key string) *Value {
	if v == nil || v.t != TypeObject {
		return v
	}
	if _, ok := v.obj[key]; !ok {
		return v
	}
	delete(v.obj, key)
	for i, k := range v.keys {
		if k == key {
			v.keys = append(v.keys[:i], v.keys[i+1:]...)
			break
		}
	}
	return v
}

// Remove removes the array element at index. Out-of-range indexes and
// non-array receivers are a no-op, not an error. Returns the receiver for
// chaining.
func (v *Value) Remove(index int) *Value {
	if v == nil || v.t != TypeArray {
		return v
	}
	if index < 0 || index >= len(v.arr) {
		return v
	}
	v.arr = append(v.arr[:index], v.arr[index+1:]...)
	return v
}

//------------------------------------------------------------------------------
// INTERNAL STORAGE PRIMITIVES
//------------------------------------------------------------------------------

func (v *Value) becomeObject() {
	*v = Value{t: TypeObject, obj: make(map[string]*Value)}
}

func (v *Value) becomeArray() {
	*v = Value{t: TypeArray}
}

// storeKey inserts elem under key, taking ownership. Re-setting an
// existing key replaces its value in place and keeps the original
// insertion position.
func (v *Value) storeKey(key string, elem *Value) {
	if _, ok := v.obj[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.obj[key] = elem
}

// storeIndex places elem at index, taking ownership. Negative indexes are
// a no-op, mirroring Remove. Indexes past the end
// pad the array with nulls so the element lands exactly at index; in-bounds
// indexes replace positionally, leaving length and all other elements
// untouched.
func (v *Value) storeIndex(index int, elem *Value) {
	if index < 0 {
		return
	}
	if index >= len(v.arr) {
		for len(v.arr) < index {
			v.arr = append(v.arr, Null())
		}
		v.arr = append(v.arr, elem)
		return
	}
	v.arr[index] = elem
}
