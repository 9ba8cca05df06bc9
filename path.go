package jdoc

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Path syntax: dot-separated object keys with bracketed array indexes,
// e.g. "users[2].address.city". A backslash escapes the next character
// inside a key, letting keys contain '.', '[' or pattern characters.
// Unescaped '*' and '?' inside a key make the segment a wildcard pattern;
// "[*]" matches every array element. Wildcards are only legal for Search.

type segment struct {
	key      string
	index    int
	isIndex  bool
	wildcard bool
}

// Path is a pre-compiled access path.
type Path struct {
	segs     []segment
	original string
}

// String returns the source text the path was compiled from.
func (p *Path) String() string { return p.original }

func (p *Path) hasWildcard() bool {
	for _, seg := range p.segs {
		if seg.wildcard {
			return true
		}
	}
	return false
}

// gjsonPath renders the path in gjson/sjson dot syntax for the byte-level
// document helpers.
func (p *Path) gjsonPath() string {
	var b strings.Builder
	for i, seg := range p.segs {
		if i > 0 {
			b.WriteByte('.')
		}
		switch {
		case seg.isIndex && seg.wildcard:
			b.WriteByte('*')
		case seg.isIndex:
			b.WriteString(strconv.Itoa(seg.index))
		case seg.wildcard:
			b.WriteString(seg.key)
		default:
			for j := 0; j < len(seg.key); j++ {
				c := seg.key[j]
				switch c {
				case '.', '*', '?', '\\', '|', '#', '@':
					b.WriteByte('\\')
				}
				b.WriteByte(c)
			}
		}
	}
	return b.String()
}

// LRU cache for compiled paths
type pathLRU struct {
	capacity int
	items    map[string]*Path
	order    []string
	mu       sync.RWMutex
}

func newPathLRU(capacity int) *pathLRU {
	return &pathLRU{
		capacity: capacity,
		items:    make(map[string]*Path),
		order:    make([]string, 0, capacity),
	}
}

func (c *pathLRU) get(key string) (*Path, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.items[key]
	return p, ok
}

func (c *pathLRU) put(key string, p *Path) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.items[key]; !exists {
		if len(c.items) >= c.capacity {
			// Evict oldest entry
			delete(c.items, c.order[0])
			c.order = c.order[1:]
		}
		c.order = append(c.order, key)
	}
	c.items[key] = p
}

var compiledPaths = newPathLRU(512)

// CompilePath parses a path string into a reusable Path. Compiled paths
// are cached, so repeated access through the same path string does not
// re-parse.
func CompilePath(path string) (*Path, error) {
	if p, ok := compiledPaths.get(path); ok {
		return p, nil
	}
	p, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	compiledPaths.put(path, p)
	return p, nil
}

func parsePath(path string) (*Path, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	p := &Path{original: path}
	i := 0
	expectKey := true // a '.' was just consumed (or we are at the start)
	for i < len(path) {
		switch path[i] {
		case '[':
			end := strings.IndexByte(path[i:], ']')
			if end == -1 {
				return nil, fmt.Errorf("%w: unterminated index in %q", ErrInvalidPath, path)
			}
			end += i
			idx := path[i+1 : end]
			if idx == "*" {
				p.segs = append(p.segs, segment{isIndex: true, wildcard: true})
			} else {
				n, err := strconv.Atoi(idx)
				if err != nil || n < 0 {
					return nil, fmt.Errorf("%w: bad index %q in %q", ErrInvalidPath, idx, path)
				}
				p.segs = append(p.segs, segment{isIndex: true, index: n})
			}
			i = end + 1
			expectKey = false
			if i < len(path) && path[i] == '.' {
				i++
				expectKey = true
			} else if i < len(path) && path[i] != '[' {
				return nil, fmt.Errorf("%w: unexpected %q after index in %q", ErrInvalidPath, path[i], path)
			}
		case '.':
			return nil, fmt.Errorf("%w: empty key segment in %q", ErrInvalidPath, path)
		default:
			if !expectKey {
				return nil, fmt.Errorf("%w: unexpected key after index in %q", ErrInvalidPath, path)
			}
			key, wildcard, next, err := parseKeySegment(path, i)
			if err != nil {
				return nil, err
			}
			p.segs = append(p.segs, segment{key: key, wildcard: wildcard})
			i = next
			expectKey = false
			if i < len(path) && path[i] == '.' {
				i++
				expectKey = true
			}
		}
	}
	if expectKey && len(p.segs) > 0 {
		return nil, fmt.Errorf("%w: trailing dot in %q", ErrInvalidPath, path)
	}
	return p, nil
}

// parseKeySegment scans a key starting at i, handling backslash escapes.
// It stops at an unescaped '.' or '['.
func parseKeySegment(path string, i int) (key string, wildcard bool, next int, err error) {
	var b strings.Builder
	for i < len(path) {
		c := path[i]
		switch c {
		case '\\':
			if i+1 >= len(path) {
				return "", false, 0, fmt.Errorf("%w: trailing escape in %q", ErrInvalidPath, path)
			}
			b.WriteByte(path[i+1])
			i += 2
		case '.', '[':
			return b.String(), wildcard, i, nil
		case '*', '?':
			wildcard = true
			b.WriteByte(c)
			i++
		case ']':
			return "", false, 0, fmt.Errorf("%w: unexpected ']' in %q", ErrInvalidPath, path)
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), wildcard, i, nil
}

//------------------------------------------------------------------------------
// PATH ESCAPING HELPERS
//------------------------------------------------------------------------------

// EscapePathSegment escapes characters that have special meaning in jdoc
// paths so the segment is treated as a literal key. Useful when keys
// contain dots, brackets or pattern characters.
func EscapePathSegment(seg string) string {
	needsEscape := false
	for i := 0; i < len(seg); i++ {
		if shouldEscapePathChar(seg[i]) {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return seg
	}
	var b strings.Builder
	b.Grow(len(seg) * 2)
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if shouldEscapePathChar(c) {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// BuildEscapedPath joins literal key segments using dot notation after
// escaping each one.
// Example: BuildEscapedPath("config", "foo.bar", "*key") -> "config.foo\\.bar.\\*key".
func BuildEscapedPath(segments ...string) string {
	if len(segments) == 0 {
		return ""
	}
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = EscapePathSegment(s)
	}
	return strings.Join(escaped, ".")
}

func shouldEscapePathChar(c byte) bool {
	switch c {
	case '\\', '.', '[', ']', '*', '?':
		return true
	}
	return false
}
