package keyparse

import "strings"

// Fields holds extracted field values in declaration order. A plain
// map would lose the order, so names and values live in parallel
// slices with a map accessor on the side.
type Fields struct {
	names  []string
	values []string
}

func newFields(capacity int) *Fields {
	return &Fields{
		names:  make([]string, 0, capacity),
		values: make([]string, 0, capacity),
	}
}

func (f *Fields) add(name, value string) {
	f.names = append(f.names, name)
	f.values = append(f.values, value)
}

func (f *Fields) Len() int {
	return len(f.names)
}

// Names returns the field names in declaration order.
func (f *Fields) Names() []string {
	names := make([]string, len(f.names))
	copy(names, f.names)
	return names
}

func (f *Fields) Get(name string) (string, bool) {
	for i, n := range f.names {
		if n == name {
			return f.values[i], true
		}
	}
	return "", false
}

// Map returns the fields as a plain map.
func (f *Fields) Map() map[string]string {
	m := make(map[string]string, len(f.names))
	for i, n := range f.names {
		m[n] = f.values[i]
	}
	return m
}

func (f *Fields) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, n := range f.names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n)
		b.WriteString(": ")
		b.WriteString(f.values[i])
	}
	b.WriteByte('}')
	return b.String()
}
