package jdoc

import (
	"errors"
	"testing"
)

// TestCompilePath tests the path grammar.
func TestCompilePath(t *testing.T) {
	valid := []struct {
		in   string
		segs int
	}{
		{"a", 1},
		{"a.b.c", 3},
		{"[0]", 1},
		{"[0][1]", 2},
		{"a[2].b", 3},
		{"users[2].address.city", 4},
		{`a\.b`, 1},
		{"a.*.b", 3},
		{"a[*]", 2},
	}
	for _, c := range valid {
		p, err := CompilePath(c.in)
		if err != nil {
			t.Fatalf("CompilePath(%q) failed: %v", c.in, err)
		}
		if len(p.segs) != c.segs {
			t.Errorf("CompilePath(%q) = %d segments, want %d", c.in, len(p.segs), c.segs)
		}
		if p.String() != c.in {
			t.Errorf("String() = %q, want %q", p.String(), c.in)
		}
	}

	invalid := []string{
		"",
		".",
		".a",
		"a.",
		"a..b",
		"a[",
		"a[x]",
		"a[-1]",
		"a[1]b",
		"a]b",
		`a\`,
	}
	for _, in := range invalid {
		if _, err := CompilePath(in); !errors.Is(err, ErrInvalidPath) {
			t.Errorf("CompilePath(%q) error = %v, want ErrInvalidPath", in, err)
		}
	}
}

// TestCompilePathCache tests that compiled paths are reused.
func TestCompilePathCache(t *testing.T) {
	p1, err := CompilePath("cache.test[0]")
	if err != nil {
		t.Fatalf("CompilePath failed: %v", err)
	}
	p2, err := CompilePath("cache.test[0]")
	if err != nil {
		t.Fatalf("CompilePath failed: %v", err)
	}
	if p1 != p2 {
		t.Error("second compile should hit the cache")
	}
}

// TestEscapePathSegment tests literal-key escaping.
func TestEscapePathSegment(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"foo.bar", `foo\.bar`},
		{"*key", `\*key`},
		{"a[0]", `a\[0\]`},
		{`back\slash`, `back\\slash`},
		{"", ""},
	}
	for _, c := range cases {
		if got := EscapePathSegment(c.in); got != c.want {
			t.Errorf("EscapePathSegment(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// TestBuildEscapedPath tests joining literal segments.
func TestBuildEscapedPath(t *testing.T) {
	if got := BuildEscapedPath(); got != "" {
		t.Errorf("empty BuildEscapedPath = %q", got)
	}
	got := BuildEscapedPath("config", "foo.bar", "*key")
	want := `config.foo\.bar.\*key`
	if got != want {
		t.Errorf("BuildEscapedPath = %q, want %q", got, want)
	}

	// The built path addresses the literal keys it came from.
	j := Null()
	if err := j.Path(got).Set(1); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if n, _ := j.Key("config").Key("foo.bar").Key("*key").AsInt(); n != 1 {
		t.Errorf("escaped path wrote to the wrong place: %s", j.Dump())
	}
}
