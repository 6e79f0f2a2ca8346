package token

import (
	"strings"
	"testing"
)

func TestReadString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `"abc"`, "abc"},
		{"escapes", `"a\"b\\c\n\t\b\f\r"`, "a\"b\\c\n\t\b\f\r"},
		{"solidus", `"a\/b"`, "a/b"},
		{"unicode", `"é"`, "é"},
		{"surrogate pair", `"😀"`, "😀"},
		{"lone high surrogate", `"\ud83d"`, "�"},
		{"raw utf8", `"héllo"`, "héllo"},
		{"empty", `""`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReaderBytes([]byte(tt.in))
			got, err := r.ReadString()
			if err != nil {
				t.Fatalf("ReadString(%s): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ReadString(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestReadStringErrors(t *testing.T) {
	bad := []string{
		`"abc`,
		`"bad \q"`,
		`"\u00g0"`,
		"\"raw \x01 control\"",
		`abc"`,
	}
	for _, in := range bad {
		r := NewReaderBytes([]byte(in))
		if _, err := r.ReadString(); err == nil {
			t.Errorf("ReadString(%q): expected error", in)
		}
	}
}

func TestQuoteUnescapeRoundTrip(t *testing.T) {
	for _, s := range []string{
		"", "plain", "with \"quotes\"", "back\\slash", "tab\tnl\n", "\x01\x1f", "héllo 😀",
	} {
		r := NewReaderBytes([]byte(Quote(s)))
		got, err := r.ReadString()
		if err != nil {
			t.Fatalf("round trip %q: %v", s, err)
		}
		if got != s {
			t.Errorf("round trip %q = %q", s, got)
		}
	}
}

func TestReadNumber(t *testing.T) {
	for _, in := range []string{"0", "-7", "2.5", "1e14", "-1.5E-3", "18446744073709551616"} {
		r := NewReaderBytes([]byte(in))
		got, err := r.ReadNumber()
		if err != nil {
			t.Fatalf("ReadNumber(%s): %v", in, err)
		}
		if got != in {
			t.Errorf("ReadNumber(%s) = %s", in, got)
		}
	}
	r := NewReaderBytes([]byte("-"))
	if _, err := r.ReadNumber(); err == nil {
		t.Error("lone minus should fail")
	}
}

func TestSkipValue(t *testing.T) {
	in := `{"a": [1, {"b": "x"}, null], "c": true} 7`
	r := NewReaderBytes([]byte(in))
	if err := r.SkipValue(); err != nil {
		t.Fatal(err)
	}
	c, err := r.NextToken()
	if err != nil || c != '7' {
		t.Errorf("after skip: %q, %v", c, err)
	}
}

func TestFieldIteration(t *testing.T) {
	r := NewReaderBytes([]byte(`{"a": 1, "b": 2}`))
	if err := r.Expect('{'); err != nil {
		t.Fatal(err)
	}
	var fields []string
	more, err := r.FirstField()
	if err != nil {
		t.Fatal(err)
	}
	for more {
		name, err := r.ReadString()
		if err != nil {
			t.Fatal(err)
		}
		fields = append(fields, name)
		if err := r.Expect(':'); err != nil {
			t.Fatal(err)
		}
		if err := r.SkipValue(); err != nil {
			t.Fatal(err)
		}
		if more, err = r.NextField(); err != nil {
			t.Fatal(err)
		}
	}
	if len(fields) != 2 || fields[0] != "a" || fields[1] != "b" {
		t.Errorf("fields = %v", fields)
	}
}

func TestMatcher(t *testing.T) {
	m := NewMatcher("alpha", "beta")
	if i := m.Index("alpha"); i != 0 {
		t.Errorf("alpha = %d", i)
	}
	if i := m.Index("beta"); i != 1 {
		t.Errorf("beta = %d", i)
	}
	if i := m.Index("gamma"); i != -1 {
		t.Errorf("gamma = %d", i)
	}
	r := NewReaderBytes([]byte(`"beta"`))
	i, err := r.MatchName(m)
	if err != nil || i != 1 {
		t.Errorf("MatchName = %d, %v", i, err)
	}
}

func TestRecordRewind(t *testing.T) {
	in := `{"x": 1, "kind": "a"} rest`
	r := NewReaderBytes([]byte(in))
	mark := r.Record()
	if err := r.SkipValue(); err != nil {
		t.Fatal(err)
	}
	r.Rewind(mark)
	c, err := r.NextToken()
	if err != nil || c != '{' {
		t.Fatalf("after rewind: %q, %v", c, err)
	}
	r.Rewind(mark)
	if err := r.SkipValue(); err != nil {
		t.Fatal(err)
	}
	r.Release(mark)
	c, err = r.NextToken()
	if err != nil || c != 'r' {
		t.Errorf("after second pass: %q, %v", c, err)
	}
}

func TestRecordStreaming(t *testing.T) {
	// an input larger than one read chunk, recorded and replayed
	big := `["` + strings.Repeat("x", 3*readChunk) + `", 1]`
	r := NewReader(strings.NewReader(big + " 2"))
	mark := r.Record()
	if err := r.SkipValue(); err != nil {
		t.Fatal(err)
	}
	r.Rewind(mark)
	if err := r.SkipValue(); err != nil {
		t.Fatal(err)
	}
	r.Release(mark)
	c, err := r.NextToken()
	if err != nil || c != '2' {
		t.Errorf("after replay: %q, %v", c, err)
	}
}
