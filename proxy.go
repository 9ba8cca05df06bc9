package jdoc

import (
	"fmt"

	"github.com/tidwall/match"
)

// Proxy is a deferred key/index chain against a root Value. Building a
// proxy never touches the tree; the path is replayed when the proxy is
// resolved. Read resolution (Value, Exists, the As/Is helpers) is pure:
// a wrong container kind, absent key or out-of-range index yields null
// and the tree is left untouched. Write resolution (Set) replays the same
// path mutating as it goes: each intermediate segment materializes the
// container kind demanded by the segment after it.
//
// Proxies are cheap transient views meant to be consumed immediately, as
// in root.Key("a").At(2).Set(x) or root.Path("a[2]").AsInt().
type Proxy struct {
	root *Value
	segs []segment
	err  error
}

// Key returns a proxy over the receiver with a single object-key segment.
func (v *Value) Key(key string) *Proxy {
	return &Proxy{root: v, segs: []segment{{key: key}}}
}

// At returns a proxy over the receiver with a single array-index segment.
func (v *Value) At(index int) *Proxy {
	return &Proxy{root: v, segs: []segment{{index: index, isIndex: true}}}
}

// Path returns a proxy for a compiled path string such as "users[2].name".
// A malformed path yields a proxy that reads as null and reports the
// compile error on write.
func (v *Value) Path(path string) *Proxy {
	p, err := CompilePath(path)
	if err != nil {
		return &Proxy{root: v, err: err}
	}
	pr := &Proxy{root: v, segs: p.segs}
	if p.hasWildcard() {
		pr.err = ErrInvalidPath
	}
	return pr
}

// Key extends the proxy with an object-key segment. The receiver is left
// usable; segments are copied, never shared.
func (p *Proxy) Key(key string) *Proxy {
	return p.extend(segment{key: key})
}

// At extends the proxy with an array-index segment.
func (p *Proxy) At(index int) *Proxy {
	return p.extend(segment{index: index, isIndex: true})
}

func (p *Proxy) extend(seg segment) *Proxy {
	segs := make([]segment, len(p.segs)+1)
	copy(segs, p.segs)
	segs[len(p.segs)] = seg
	return &Proxy{root: p.root, segs: segs, err: p.err}
}

//------------------------------------------------------------------------------
// READ RESOLUTION
//------------------------------------------------------------------------------

// lookup walks the path read-only and returns the live node it lands on.
func (p *Proxy) lookup() (*Value, bool) {
	if p.err != nil || p.root == nil {
		return nil, false
	}
	cur := p.root
	for _, seg := range p.segs {
		if seg.wildcard {
			return nil, false
		}
		if seg.isIndex {
			if cur.Type() != TypeArray || seg.index < 0 || seg.index >= len(cur.arr) {
				return nil, false
			}
			cur = cur.arr[seg.index]
		} else {
			if cur.Type() != TypeObject {
				return nil, false
			}
			child, ok := cur.obj[seg.key]
			if !ok {
				return nil, false
			}
			cur = child
		}
	}
	return cur, true
}

// Value resolves the path and returns an independent deep copy of the
// result. Missing paths resolve to null, never an error.
func (p *Proxy) Value() *Value {
	node, ok := p.lookup()
	if !ok {
		return Null()
	}
	return node.Copy()
}

// Exists reports whether the path resolves to a node, including an
// explicit null.
func (p *Proxy) Exists() bool {
	_, ok := p.lookup()
	return ok
}

// Dump serializes the resolved value; missing paths dump as "null".
func (p *Proxy) Dump() string {
	node, ok := p.lookup()
	if !ok {
		return "null"
	}
	return node.Dump()
}

// Type returns the tag of the resolved value; missing paths read as null.
func (p *Proxy) Type() Type {
	node, _ := p.lookup()
	return node.Type()
}

// IsNull reports whether the path resolves to null or nothing at all.
func (p *Proxy) IsNull() bool { return p.Type() == TypeNull }

// IsBool reports whether the resolved value is a boolean.
func (p *Proxy) IsBool() bool { return p.Type() == TypeBool }

// IsNumber reports whether the resolved value is a number.
func (p *Proxy) IsNumber() bool { return p.Type() == TypeNumber }

// IsString reports whether the resolved value is a string.
func (p *Proxy) IsString() bool { return p.Type() == TypeString }

// IsObject reports whether the resolved value is an object.
func (p *Proxy) IsObject() bool { return p.Type() == TypeObject }

// IsArray reports whether the resolved value is an array.
func (p *Proxy) IsArray() bool { return p.Type() == TypeArray }

// AsString extracts a string from the resolved value. A missing path reads
// as null and therefore fails with ErrTypeMismatch, like any other
// non-string.
func (p *Proxy) AsString() (string, error) {
	node, _ := p.lookup()
	return node.AsString()
}

// AsFloat extracts a float64 from the resolved value.
func (p *Proxy) AsFloat() (float64, error) {
	node, _ := p.lookup()
	return node.AsFloat()
}

// AsInt extracts a truncated int from the resolved value.
func (p *Proxy) AsInt() (int, error) {
	node, _ := p.lookup()
	return node.AsInt()
}

// AsInt64 extracts a truncated int64 from the resolved value.
func (p *Proxy) AsInt64() (int64, error) {
	node, _ := p.lookup()
	return node.AsInt64()
}

// AsBool extracts a bool from the resolved value.
func (p *Proxy) AsBool() (bool, error) {
	node, _ := p.lookup()
	return node.AsBool()
}

//------------------------------------------------------------------------------
// WRITE RESOLUTION
//------------------------------------------------------------------------------

// Set replays the path against the root, creating intermediate containers
// as needed, and stores a deep copy of value at the terminal segment.
// Nulls along the spine become the container kind demanded by the next
// segment; scalar children at intermediate positions are overwritten;
// scalar receivers fail with ErrNotAContainer. Terminal index segments pad
// short arrays with nulls and replace in-bounds positions without
// disturbing length or neighbors.
func (p *Proxy) Set(value any) error {
	if p.err != nil {
		return p.err
	}
	if p.root == nil {
		return ErrNotAContainer
	}
	elem, err := toValue(value)
	if err != nil {
		return err
	}
	return writeResolve(p.root, p.segs, elem)
}

// writeResolve mutates cur along segs and installs elem at the end,
// taking ownership of elem.
func writeResolve(cur *Value, segs []segment, elem *Value) error {
	seg := segs[0]
	last := len(segs) == 1

	if seg.isIndex {
		if seg.index < 0 {
			// Checked before any vivification so the failed write leaves
			// the receiver untouched.
			return fmt.Errorf("%w: negative index %d", ErrInvalidPath, seg.index)
		}
		if cur.t == TypeNull {
			cur.becomeArray()
		}
		if cur.t != TypeArray {
			return ErrNotAContainer
		}
		if last {
			cur.storeIndex(seg.index, elem)
			return nil
		}
		next := segs[1]
		var child *Value
		if seg.index >= len(cur.arr) {
			for len(cur.arr) < seg.index {
				cur.arr = append(cur.arr, Null())
			}
			child = containerFor(next)
			cur.arr = append(cur.arr, child)
		} else {
			child = cur.arr[seg.index]
			if !kindMatches(child, next) {
				child = containerFor(next)
				cur.arr[seg.index] = child
			}
		}
		return writeResolve(child, segs[1:], elem)
	}

	if cur.t == TypeNull {
		cur.becomeObject()
	}
	if cur.t != TypeObject {
		return ErrNotAContainer
	}
	if last {
		cur.storeKey(seg.key, elem)
		return nil
	}
	next := segs[1]
	child, ok := cur.obj[seg.key]
	if !ok || !kindMatches(child, next) {
		child = containerFor(next)
		cur.storeKey(seg.key, child)
	}
	return writeResolve(child, segs[1:], elem)
}

// kindMatches reports whether child already is the container kind the
// upcoming segment needs. Nulls and scalars never match; they get
// replaced by a fresh container during write resolution.
func kindMatches(child *Value, next segment) bool {
	if next.isIndex {
		return child.Type() == TypeArray
	}
	return child.Type() == TypeObject
}

func containerFor(next segment) *Value {
	if next.isIndex {
		return &Value{t: TypeArray}
	}
	return Object()
}

//------------------------------------------------------------------------------
// WILDCARD SEARCH
//------------------------------------------------------------------------------

// Search resolves a path that may contain wildcard segments ('*' and '?'
// in keys, "[*]" for every element) and returns deep copies of every
// match, in document order. Search is read-only; a malformed path or a
// path with no matches returns nil.
func (v *Value) Search(path string) []*Value {
	p, err := CompilePath(path)
	if err != nil {
		return nil
	}
	var out []*Value
	searchRec(v, p.segs, &out)
	return out
}

func searchRec(cur *Value, segs []segment, out *[]*Value) {
	if len(segs) == 0 {
		*out = append(*out, cur.Copy())
		return
	}
	seg := segs[0]
	switch {
	case seg.isIndex && seg.wildcard:
		if cur.Type() != TypeArray {
			return
		}
		for _, elem := range cur.arr {
			searchRec(elem, segs[1:], out)
		}
	case seg.isIndex:
		if cur.Type() != TypeArray || seg.index >= len(cur.arr) {
			return
		}
		searchRec(cur.arr[seg.index], segs[1:], out)
	case seg.wildcard:
		if cur.Type() != TypeObject {
			return
		}
		for _, key := range cur.keys {
			if match.Match(key, seg.key) {
				searchRec(cur.obj[key], segs[1:], out)
			}
		}
	default:
		if cur.Type() != TypeObject {
			return
		}
		child, ok := cur.obj[seg.key]
		if !ok {
			return
		}
		searchRec(child, segs[1:], out)
	}
}
