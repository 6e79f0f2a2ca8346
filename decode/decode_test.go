package decode

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/go-jval/ast"
	"github.com/signadot/go-jval/token"
)

func TestDecodeScalars(t *testing.T) {
	if s, err := Decode(String(), []byte(`"he\"llo\n"`)); err != nil || s != "he\"llo\n" {
		t.Errorf("string = %q, %v", s, err)
	}
	if b, err := Decode(Bool(), []byte(` true `)); err != nil || !b {
		t.Errorf("bool = %v, %v", b, err)
	}
	if v, err := Decode(Int64(), []byte(`-42`)); err != nil || v != -42 {
		t.Errorf("int64 = %d, %v", v, err)
	}
	if f, err := Decode(Float64(), []byte(`2.5e3`)); err != nil || f != 2500 {
		t.Errorf("float64 = %v, %v", f, err)
	}
	if _, err := Decode(Null(), []byte(`null`)); err != nil {
		t.Errorf("null: %v", err)
	}
}

func TestDecodeNonFinite(t *testing.T) {
	if f, err := Decode(Float64(), []byte(`"NaN"`)); err != nil || !math.IsNaN(f) {
		t.Errorf("NaN = %v, %v", f, err)
	}
	if f, err := Decode(Float64(), []byte(`"Infinity"`)); err != nil || !math.IsInf(f, 1) {
		t.Errorf("Infinity = %v, %v", f, err)
	}
	if f, err := Decode(Float64(), []byte(`"-Infinity"`)); err != nil || !math.IsInf(f, -1) {
		t.Errorf("-Infinity = %v, %v", f, err)
	}
	if _, err := Decode(Float64(), []byte(`"wide"`)); err == nil {
		t.Error("expected error for non-numeric string")
	}
}

func TestDecodeTrailing(t *testing.T) {
	if _, err := Decode(Int64(), []byte(`1 2`)); err == nil {
		t.Error("expected trailing input error")
	}
}

func TestDecodeContainers(t *testing.T) {
	vs, err := Decode(Slice(Int()), []byte(`[1, 2, 3]`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, vs); diff != "" {
		t.Errorf("slice (-want +got):\n%s", diff)
	}

	m, err := Decode(StringMap(Int()), []byte(`{"a": 1, "b": 2}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]int{"a": 1, "b": 2}, m); diff != "" {
		t.Errorf("map (-want +got):\n%s", diff)
	}

	p, err := Decode(Ptr(Int()), []byte(`null`))
	if err != nil || p != nil {
		t.Errorf("ptr null = %v, %v", p, err)
	}
	p, err = Decode(Ptr(Int()), []byte(`7`))
	if err != nil || p == nil || *p != 7 {
		t.Errorf("ptr = %v, %v", p, err)
	}
}

func TestDecodeDuplicateMapKey(t *testing.T) {
	_, err := Decode(StringMap(Int()), []byte(`{"a": 1, "a": 2}`))
	if err == nil {
		t.Fatal("expected duplicate error")
	}
	if got, want := err.Error(), ".a: duplicate"; got != want {
		t.Errorf("err = %q, want %q", got, want)
	}
}

func TestDecodeTraces(t *testing.T) {
	d := StringMap(Slice(Int()))
	_, err := d.UnsafeDecode(nil, token.NewReaderBytes([]byte(`{"xs": [1, "two"]}`)))
	if err == nil {
		t.Fatal("expected error")
	}
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("want *Error, got %T", err)
	}
	// innermost first
	if len(e.Trace) != 2 || e.Trace[0].String() != "[1]" || e.Trace[1].String() != ".xs" {
		t.Errorf("trace = %v", e.Trace)
	}
	if !strings.HasPrefix(e.Error(), ".xs[1]: ") {
		t.Errorf("rendered = %q", e.Error())
	}
}

func TestMapOverStringMap(t *testing.T) {
	// the combinator composing over the container form
	keys := Map(StringMap(Int()), func(m map[string]int) int { return len(m) })
	n, err := Decode(keys, []byte(`{"a": 1, "b": 2, "c": 3}`))
	if err != nil || n != 3 {
		t.Errorf("got %d, %v", n, err)
	}
}

func TestMapOrFail(t *testing.T) {
	even := MapOrFail(Int(), func(v int) (int, error) {
		if v%2 != 0 {
			return 0, errors.New("odd")
		}
		return v, nil
	})
	if v, err := Decode(even, []byte(`4`)); err != nil || v != 4 {
		t.Errorf("even = %d, %v", v, err)
	}
	if _, err := Decode(even, []byte(`3`)); err == nil {
		t.Error("expected error for odd")
	}
}

func TestXMapRoundTrip(t *testing.T) {
	toUpper := XMap(String(),
		strings.ToUpper,
		strings.ToLower)
	s, err := Decode(toUpper, []byte(`"shout"`))
	if err != nil || s != "SHOUT" {
		t.Errorf("got %q, %v", s, err)
	}
}

func TestDecodeJson(t *testing.T) {
	j, err := Decode(Json(), []byte(`{"a": [1, null]}`))
	if err != nil {
		t.Fatal(err)
	}
	want := ast.Obj(ast.F("a", ast.Arr(ast.FromInt(1), ast.Null())))
	if !ast.Equal(j, want) {
		t.Errorf("got %v", j)
	}
}
