package token

// Matcher recognizes which of a fixed candidate set a name equals. It is
// built once per dispatch table and shared by every decode call using it.
type Matcher struct {
	names []string
	index map[string]int
}

// NewMatcher builds a matcher over names. The first occurrence of a
// duplicate name wins.
func NewMatcher(names ...string) *Matcher {
	m := &Matcher{
		names: names,
		index: make(map[string]int, len(names)),
	}
	for i, n := range names {
		if _, ok := m.index[n]; ok {
			continue
		}
		m.index[n] = i
	}
	return m
}

// Index returns the position of name in the candidate set, or -1.
func (m *Matcher) Index(name string) int {
	i, ok := m.index[name]
	if !ok {
		return -1
	}
	return i
}

// Names returns the candidate set in construction order.
func (m *Matcher) Names() []string {
	return m.names
}
