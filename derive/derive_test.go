package derive

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/go-jval/decode"
	"github.com/signadot/go-jval/encode"
)

type person struct {
	Name string
	Age  int
	Nick *string
}

func personEncoder() encode.Encoder[person] {
	return ObjectEncoder(
		NewEncField("name", func(p person) string { return p.Name }, encode.String()),
		NewEncField("age", func(p person) int { return p.Age }, encode.Int()),
		NewEncField("nick", func(p person) *string { return p.Nick }, encode.Ptr(encode.String())),
	)
}

func personDecoder(opts ...Option) decode.Decoder[person] {
	return ObjectDecoder([]DecField[person]{
		NewDecField("name", func(p *person, v string) { p.Name = v }, decode.String()),
		NewDecField("age", func(p *person, v int) { p.Age = v }, decode.Int()),
		NewDecField("nick", func(p *person, v *string) { p.Nick = v }, decode.Ptr(decode.String())),
	}, opts...)
}

func TestObjectEncoder(t *testing.T) {
	nick := "shorty"
	tests := []struct {
		name string
		p    person
		want string
	}{
		{"all fields", person{Name: "ada", Age: 36, Nick: &nick},
			`{"name":"ada","age":36,"nick":"shorty"}`},
		{"nothing field skipped", person{Name: "ada", Age: 36},
			`{"name":"ada","age":36}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := encode.Encode(personEncoder(), tt.p); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestObjectEncoderEmpty(t *testing.T) {
	type unit struct{}
	enc := ObjectEncoder[unit]()
	if got := encode.Encode(enc, unit{}); got != "{}" {
		t.Errorf("got %s", got)
	}
	if got := encode.EncodePretty(enc, unit{}); got != "{}" {
		t.Errorf("pretty got %s", got)
	}
}

func TestObjectEncoderPretty(t *testing.T) {
	got := encode.EncodePretty(personEncoder(), person{Name: "ada", Age: 36})
	want := strings.Join([]string{
		"{",
		`  "name" : "ada",`,
		`  "age" : 36`,
		"}",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestObjectDecoder(t *testing.T) {
	nick := "shorty"
	tests := []struct {
		name string
		in   string
		want person
	}{
		{"declaration order", `{"name": "ada", "age": 36, "nick": "shorty"}`,
			person{Name: "ada", Age: 36, Nick: &nick}},
		{"any order", `{"nick": "shorty", "age": 36, "name": "ada"}`,
			person{Name: "ada", Age: 36, Nick: &nick}},
		{"optional missing", `{"name": "ada", "age": 36}`,
			person{Name: "ada", Age: 36}},
		{"unknown fields skipped", `{"name": "ada", "extra": [1, {"x": 2}], "age": 36}`,
			person{Name: "ada", Age: 36}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decode.Decode(personDecoder(), []byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestObjectDecoderErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []Option
		msg  string
	}{
		{"missing required", `{"age": 36}`, nil, ".name: missing"},
		{"duplicate", `{"name": "a", "name": "b", "age": 1}`, nil, ".name: duplicate"},
		{"extra rejected", `{"name": "a", "age": 1, "x": 0}`,
			[]Option{NoExtraFields()}, ".x: invalid extra field"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decode.Decode(personDecoder(tt.opts...), []byte(tt.in))
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tt.msg {
				t.Errorf("err = %q, want %q", err, tt.msg)
			}
		})
	}
}

type shape interface{ isShape() }

type circle struct{ Radius float64 }

func (circle) isShape() {}

type dot struct{}

func (dot) isShape() {}

func shapeVariants() []Variant[shape] {
	circleEnc := ObjectEncoder(
		NewEncField("radius", func(c circle) float64 { return c.Radius }, encode.Float64()),
	)
	circleDec := ObjectDecoder([]DecField[circle]{
		NewDecField("radius", func(c *circle, v float64) { c.Radius = v }, decode.Float64()),
	})
	return []Variant[shape]{
		NewVariant("circle",
			func(s shape) (circle, bool) { c, ok := s.(circle); return c, ok },
			func(c circle) shape { return c },
			circleEnc, circleDec),
		NewVariant("dot",
			func(s shape) (dot, bool) { d, ok := s.(dot); return d, ok },
			func(d dot) shape { return d },
			ObjectEncoder[dot](), ObjectDecoder[dot](nil)),
	}
}

func TestSumWrapper(t *testing.T) {
	enc := SumEncoder(shapeVariants()...)
	dec := SumDecoder(shapeVariants()...)

	if got, want := encode.Encode(enc, shape(circle{Radius: 2.5})), `{"circle":{"radius":2.5}}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if got, want := encode.Encode(enc, shape(dot{})), `{"dot":{}}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	s, err := decode.Decode(dec, []byte(`{"circle": {"radius": 2.5}}`))
	if err != nil {
		t.Fatal(err)
	}
	if c, ok := s.(circle); !ok || c.Radius != 2.5 {
		t.Errorf("got %#v", s)
	}
}

func TestSumWrapperErrors(t *testing.T) {
	dec := SumDecoder(shapeVariants()...)
	tests := []struct {
		name string
		in   string
		msg  string
	}{
		{"empty object", `{}`, "expected non-empty object"},
		{"unknown tag", `{"square": {}}`, "invalid disambiguator"},
		{"second key", `{"dot": {}, "circle": {"radius": 1}}`, "invalid disambiguator"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decode.Decode(dec, []byte(tt.in))
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tt.msg {
				t.Errorf("err = %q, want %q", err, tt.msg)
			}
		})
	}
}

func TestDiscriminatorEncoder(t *testing.T) {
	enc := DiscriminatorEncoder("kind", shapeVariants()...)

	// non-empty body: exactly one comma after the discriminator
	if got, want := encode.Encode(enc, shape(circle{Radius: 2.5})), `{"kind":"circle","radius":2.5}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	// empty body: no comma
	if got, want := encode.Encode(enc, shape(dot{})), `{"kind":"dot"}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	got := encode.EncodePretty(enc, shape(circle{Radius: 2.5}))
	want := strings.Join([]string{
		"{",
		`  "kind" : "circle",`,
		`  "radius" : 2.5`,
		"}",
	}, "\n")
	if got != want {
		t.Errorf("pretty got:\n%s\nwant:\n%s", got, want)
	}
}

func TestDiscriminatorDecoder(t *testing.T) {
	dec := DiscriminatorDecoder("kind", shapeVariants()...)
	tests := []struct {
		name string
		in   string
		want shape
	}{
		{"disc first", `{"kind": "circle", "radius": 2.5}`, circle{Radius: 2.5}},
		{"disc last", `{"radius": 2.5, "kind": "circle"}`, circle{Radius: 2.5}},
		{"empty body", `{"kind": "dot"}`, dot{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decode.Decode(dec, []byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDiscriminatorDecoderErrors(t *testing.T) {
	dec := DiscriminatorDecoder("kind", shapeVariants()...)
	tests := []struct {
		name string
		in   string
		msg  string
	}{
		{"missing hint", `{"radius": 2.5}`, "missing hint"},
		{"unknown tag", `{"kind": "square"}`, "invalid disambiguator"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decode.Decode(dec, []byte(tt.in))
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tt.msg {
				t.Errorf("err = %q, want %q", err, tt.msg)
			}
		})
	}

	// field errors inside the selected variant carry the tag in the trace
	_, err := decode.Decode(dec, []byte(`{"kind": "circle", "radius": "wide"}`))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "{circle}.radius: ") {
		t.Errorf("err = %q", err)
	}
}

func TestDiscriminatorRoundTrip(t *testing.T) {
	enc := DiscriminatorEncoder("kind", shapeVariants()...)
	dec := DiscriminatorDecoder("kind", shapeVariants()...)
	for _, s := range []shape{circle{Radius: 1.25}, dot{}} {
		text := encode.Encode(enc, s)
		got, err := decode.Decode(dec, []byte(text))
		if err != nil {
			t.Fatalf("%s: %v", text, err)
		}
		if got != s {
			t.Errorf("round trip %s = %#v", text, got)
		}
	}
}
