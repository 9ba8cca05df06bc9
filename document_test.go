package jdoc

import (
	"errors"
	"strings"
	"testing"
)

// TestDocumentGet tests point reads against raw documents.
func TestDocumentGet(t *testing.T) {
	doc := []byte(`{"name":"John","phones":[{"number":"555-1234"},{"number":"555-9999"}]}`)

	if got, _ := Get(doc, "name").AsString(); got != "John" {
		t.Errorf("name = %q, want John", got)
	}
	if got, _ := Get(doc, "phones[1].number").AsString(); got != "555-9999" {
		t.Errorf("phones[1].number = %q, want 555-9999", got)
	}
	if sub := Get(doc, "phones[0]"); !sub.IsObject() || sub.Len() != 1 {
		t.Errorf("phones[0] = %s", sub.Dump())
	}

	// Missing paths and malformed input resolve to null, never an error.
	if !Get(doc, "missing.deep").IsNull() {
		t.Error("missing path should read as null")
	}
	if !Get(doc, "phones[9]").IsNull() {
		t.Error("out-of-range index should read as null")
	}
	if !Get(doc, "bad[").IsNull() {
		t.Error("malformed path should read as null")
	}
	if !GetString(`{broken`, "a").IsNull() {
		t.Error("malformed document should read as null")
	}
}

// TestDocumentGetEscapedKey tests literal keys containing path characters.
func TestDocumentGetEscapedKey(t *testing.T) {
	doc := `{"a.b":{"c":1}}`
	if got, _ := GetString(doc, `a\.b.c`).AsInt(); got != 1 {
		t.Errorf("escaped lookup = %d, want 1", got)
	}
}

// TestDocumentSet tests point edits against raw documents.
func TestDocumentSet(t *testing.T) {
	doc := []byte(`{"name":"John","age":30}`)

	out, err := Set(doc, "name", "Jane")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got, _ := Get(out, "name").AsString(); got != "Jane" {
		t.Errorf("name = %q, want Jane", got)
	}

	out, err = Set(out, "address.city", "New York")
	if err != nil {
		t.Fatalf("nested Set failed: %v", err)
	}
	if got, _ := Get(out, "address.city").AsString(); got != "New York" {
		t.Errorf("address.city = %q, want New York", got)
	}

	// A *Value writes its serialized tree.
	out, err = Set(out, "tags", Array("a", "b"))
	if err != nil {
		t.Fatalf("Set *Value failed: %v", err)
	}
	if !strings.Contains(string(out), `"tags":["a","b"]`) {
		t.Errorf("tags not spliced: %s", out)
	}

	if _, err := Set(doc, "bad[", 1); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("malformed path error = %v, want ErrInvalidPath", err)
	}
	if _, err := Set(doc, "a.*", 1); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("wildcard path error = %v, want ErrInvalidPath", err)
	}
}

// TestDocumentSetString tests the string-document variant.
func TestDocumentSetString(t *testing.T) {
	out, err := SetString(`{"a":[{"b":false},{"b":false}]}`, "a[1].b", true)
	if err != nil {
		t.Fatalf("SetString failed: %v", err)
	}
	if got, _ := GetString(out, "a[1].b").AsBool(); got != true {
		t.Errorf("a[1].b not set: %s", out)
	}
	if got, _ := GetString(out, "a[0].b").AsBool(); got != false {
		t.Errorf("a[0].b disturbed: %s", out)
	}
}

// TestDocumentDelete tests point removals against raw documents.
func TestDocumentDelete(t *testing.T) {
	doc := []byte(`{"a":1,"b":{"c":2,"d":3}}`)

	out, err := Delete(doc, "b.c")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !Get(out, "b.c").IsNull() {
		t.Errorf("b.c still present: %s", out)
	}
	if got, _ := Get(out, "b.d").AsInt(); got != 3 {
		t.Errorf("b.d disturbed: %s", out)
	}

	if _, err := Delete(doc, "x["); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("malformed path error = %v, want ErrInvalidPath", err)
	}
}

// TestValid tests document validation.
func TestValid(t *testing.T) {
	if !Valid([]byte(`{"a":[1,2,{"b":null}]}`)) {
		t.Error("well-formed document reported invalid")
	}
	for _, bad := range []string{``, `{`, `{'a':1}`, `[1,]`, `{"a":1}x`} {
		if ValidString(bad) {
			t.Errorf("ValidString(%q) = true, want false", bad)
		}
	}
}

// TestPrettyUgly tests whitespace formatting of raw documents.
func TestPrettyUgly(t *testing.T) {
	doc := []byte(`{"a":1,"b":[1,2]}`)

	p := Pretty(doc)
	if !strings.Contains(string(p), "\n") {
		t.Errorf("Pretty produced no newlines: %s", p)
	}
	if got := string(Ugly(p)); got != string(doc) {
		t.Errorf("Ugly(Pretty) = %s, want %s", got, doc)
	}

	tabbed := PrettyWithOptions(doc, &FormatOptions{Indent: "\t"})
	if !strings.Contains(string(tabbed), "\t") {
		t.Errorf("custom indent missing: %s", tabbed)
	}

	sorted := PrettyWithOptions([]byte(`{"b":1,"a":2}`), &FormatOptions{SortKeys: true})
	ai := strings.Index(string(sorted), `"a"`)
	bi := strings.Index(string(sorted), `"b"`)
	if ai == -1 || bi == -1 || ai > bi {
		t.Errorf("SortKeys not applied: %s", sorted)
	}
}
