package derive

import (
	"github.com/signadot/go-jval/token"
)

// spliceWriter merges a nested object encoding into an already-open
// enclosing object. It swallows the first '{' the nested encoder
// writes, then on the next character decides whether a separating ','
// is needed: injected only when that character is not '}', i.e. the
// nested object has at least one field. Everything after is forwarded
// verbatim, so the nested object's closing brace closes the enclosing
// object. State is per nested-encode call; a fresh spliceWriter is made
// for each.
type spliceWriter struct {
	w       token.Writer
	opened  bool
	decided bool
}

func (s *spliceWriter) WriteByte(c byte) {
	if !s.opened {
		s.opened = true
		return
	}
	if !s.decided {
		s.decided = true
		if c != '}' {
			s.w.WriteByte(',')
		}
	}
	s.w.WriteByte(c)
}

func (s *spliceWriter) WriteString(v string) {
	for len(v) > 0 && !s.decided {
		s.WriteByte(v[0])
		v = v[1:]
	}
	if len(v) > 0 {
		s.w.WriteString(v)
	}
}
