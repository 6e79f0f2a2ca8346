package token

import (
	"strings"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// WriteQuoted writes s to w as a quoted JSON string. The escapes are the
// two-character forms for `"`, `\`, backspace, form feed, newline,
// carriage return and tab; any other control character below 0x20 becomes
// \u00XX. Everything else, including non-ASCII text, passes through
// unescaped.
func WriteQuoted(w Writer, s string) {
	w.WriteByte('"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		if start < i {
			w.WriteString(s[start:i])
		}
		switch c {
		case '"':
			w.WriteString(`\"`)
		case '\\':
			w.WriteString(`\\`)
		case '\b':
			w.WriteString(`\b`)
		case '\f':
			w.WriteString(`\f`)
		case '\n':
			w.WriteString(`\n`)
		case '\r':
			w.WriteString(`\r`)
		case '\t':
			w.WriteString(`\t`)
		default:
			w.WriteString(`\u00`)
			w.WriteByte(hexDigits[c>>4])
			w.WriteByte(hexDigits[c&0xf])
		}
		start = i + 1
	}
	if start < len(s) {
		w.WriteString(s[start:])
	}
	w.WriteByte('"')
}

// Quote returns s as a quoted JSON string.
func Quote(s string) string {
	var w StringWriter
	WriteQuoted(&w, s)
	return w.String()
}

// unescape resolves the backslash escapes of a raw string body (the bytes
// between the quotes). It is the inverse of WriteQuoted and additionally
// accepts `\/` and full \uXXXX escapes including surrogate pairs.
func unescape(raw string) (string, error) {
	if !strings.ContainsRune(raw, '\\') {
		return raw, nil
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); {
		c := raw[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(raw) {
			return "", ErrBadEscape
		}
		switch raw[i+1] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			r, n, err := unescapeRune(raw[i:])
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += n
			continue
		default:
			return "", ErrBadEscape
		}
		i += 2
	}
	return b.String(), nil
}

// unescapeRune decodes one \uXXXX escape (or a surrogate pair of them)
// starting at raw[0] == '\\'. It returns the rune and the bytes consumed.
func unescapeRune(raw string) (rune, int, error) {
	r, ok := hex4(raw)
	if !ok {
		return 0, 0, ErrBadEscape
	}
	if !utf16IsSurrogate(r) {
		return r, 6, nil
	}
	// high surrogate must pair with a following \uXXXX low surrogate
	if r >= 0xdc00 || len(raw) < 12 || raw[6] != '\\' || raw[7] != 'u' {
		return utf8.RuneError, 6, nil
	}
	r2, ok := hex4(raw[6:])
	if !ok || r2 < 0xdc00 || r2 > 0xdfff {
		return utf8.RuneError, 6, nil
	}
	return 0x10000 + (r-0xd800)<<10 + (r2 - 0xdc00), 12, nil
}

func hex4(raw string) (rune, bool) {
	if len(raw) < 6 || raw[0] != '\\' || raw[1] != 'u' {
		return 0, false
	}
	var r rune
	for _, c := range []byte(raw[2:6]) {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		default:
			return 0, false
		}
	}
	return r, true
}

func utf16IsSurrogate(r rune) bool {
	return r >= 0xd800 && r <= 0xdfff
}
