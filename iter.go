package jdoc

// Iterator is a bidirectional cursor over the elements of an array or the
// entries of an object. Usage follows the scanner pattern:
//
//	for it := v.Iterate(); it.Next(); {
//		fmt.Println(it.Key(), it.Value())
//	}
//
// Next at the end of the container is idempotent: it keeps returning
// false and never reads past the underlying storage. Iterating a
// non-container yields nothing.
type Iterator struct {
	v    *Value
	pos  int
	step int
}

// Iterate returns a forward cursor positioned before the first element.
func (v *Value) Iterate() *Iterator {
	return &Iterator{v: v, pos: -1, step: 1}
}

// IterateReverse returns a cursor positioned after the last element that
// walks the container backwards.
func (v *Value) IterateReverse() *Iterator {
	return &Iterator{v: v, pos: v.Len(), step: -1}
}

// Next advances the cursor and reports whether it landed on an element.
// Once exhausted it stays exhausted.
func (it *Iterator) Next() bool {
	n := it.v.Len()
	pos := it.pos + it.step
	if pos < 0 || pos >= n {
		// Clamp to the end position so further Next calls stay put.
		if it.step > 0 {
			it.pos = n
		} else {
			it.pos = -1
		}
		return false
	}
	it.pos = pos
	return true
}

// Index returns the position of the current element.
func (it *Iterator) Index() int { return it.pos }

// Key returns the object key of the current entry, or "" when iterating
// an array or when the cursor is not on an element.
func (it *Iterator) Key() string {
	if it.v.Type() != TypeObject || it.pos < 0 || it.pos >= len(it.v.keys) {
		return ""
	}
	return it.v.keys[it.pos]
}

// Value returns the live element or entry value under the cursor, or nil
// when the cursor is not on an element.
func (it *Iterator) Value() *Value {
	switch it.v.Type() {
	case TypeArray:
		if it.pos >= 0 && it.pos < len(it.v.arr) {
			return it.v.arr[it.pos]
		}
	case TypeObject:
		if it.pos >= 0 && it.pos < len(it.v.keys) {
			return it.v.obj[it.v.keys[it.pos]]
		}
	}
	return nil
}

// ForEach calls fn for every array element or object entry in order,
// stopping early when fn returns false. Array callbacks receive key "";
// object callbacks receive the entry key and its position.
func (v *Value) ForEach(fn func(key string, index int, value *Value) bool) {
	switch v.Type() {
	case TypeArray:
		for i, elem := range v.arr {
			if !fn("", i, elem) {
				return
			}
		}
	case TypeObject:
		for i, key := range v.keys {
			if !fn(key, i, v.obj[key]) {
				return
			}
		}
	}
}
