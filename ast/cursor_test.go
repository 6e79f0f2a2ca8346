package ast

import (
	"testing"
)

func TestCursorString(t *testing.T) {
	tests := []struct {
		name string
		c    Cursor
		want string
	}{
		{"identity", Identity(), ""},
		{"field", Field("a"), "a"},
		{"fields", Field("a").Field("b"), "a.b"},
		{"element", Element(3), "[3]"},
		{"field element", Field("a").Element(0), "a[0]"},
		{"element field", Element(1).Field("b"), "[1].b"},
		{"filter", IsObject(), "{Object}"},
		{"field filter field", Field("a").Filter(ArrayType).Element(2), "a{Array}[2]"},
		{"quoted field", Field("a.b"), `"a.b"`},
		{"empty field", Field(""), `""`},
		{"deep", Field("entities").Field("hashtags").Element(1), "entities.hashtags[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseCursorRoundTrip(t *testing.T) {
	cursors := []Cursor{
		Identity(),
		Field("a"),
		Field("a").Field("b").Element(0),
		Element(2).Filter(ObjectType).Field("x"),
		Field("weird.key").Element(1),
		Field(`quo"te`),
		IsArray().Element(0),
	}
	for _, c := range cursors {
		s := c.String()
		got, err := ParseCursor(s)
		if err != nil {
			t.Fatalf("ParseCursor(%q): %v", s, err)
		}
		if !got.Equal(c) {
			t.Errorf("ParseCursor(%q) = %q, want %q", s, got, c)
		}
		if got.Hash() != c.Hash() {
			t.Errorf("equal cursors hash differently: %q", s)
		}
	}
}

func TestParseCursorErrors(t *testing.T) {
	bad := []string{
		".a",
		"a.",
		"[x]",
		"[1",
		"{Objec}",
		"{Object",
	}
	for _, s := range bad {
		if _, err := ParseCursor(s); err == nil {
			t.Errorf("ParseCursor(%q): expected error", s)
		}
	}
}

func TestThenComposition(t *testing.T) {
	a := Field("a")
	b := Element(1).Field("c")
	ab := a.Then(b)
	if got, want := ab.String(), "a[1].c"; got != want {
		t.Errorf("Then String() = %q, want %q", got, want)
	}
	if !a.Then(Identity()).Equal(a) {
		t.Error("c >>> identity != c")
	}
	if !Identity().Then(a).Equal(a) {
		t.Error("identity >>> c != c")
	}
	// associativity
	c := IsObject()
	if !a.Then(b).Then(c).Equal(a.Then(b.Then(c))) {
		t.Error("Then not associative")
	}
}
