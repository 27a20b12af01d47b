package structural

import (
	"strconv"
	"strings"
)

// Segment is one step of a Path: an object key or an array index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// Path addresses a value inside a document. The zero value is the document root.
// Paths are immutable; Field and Index return extended copies.
type Path struct {
	segments []Segment
}

// Root returns the empty path.
func Root() Path { return Path{} }

// Field returns p extended by an object key.
func (p Path) Field(name string) Path {
	return Path{segments: append(p.clone(), Segment{Key: name})}
}

// Index returns p extended by an array index.
func (p Path) Index(i int) Path {
	return Path{segments: append(p.clone(), Segment{Index: i, IsIndex: true})}
}

func (p Path) clone() []Segment {
	out := make([]Segment, len(p.segments), len(p.segments)+1)
	copy(out, p.segments)
	return out
}

// IsRoot reports whether p has no segments.
func (p Path) IsRoot() bool { return len(p.segments) == 0 }

// Segments returns a copy of the path segments.
func (p Path) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// Keys returns the object keys along p, skipping indexes.
func (p Path) Keys() []string {
	keys := make([]string, 0, len(p.segments))
	for _, s := range p.segments {
		if !s.IsIndex {
			keys = append(keys, s.Key)
		}
	}
	return keys
}

// LastKey returns the last object key along p, or "" when there is none.
func (p Path) LastKey() string {
	for i := len(p.segments) - 1; i >= 0; i-- {
		if !p.segments[i].IsIndex {
			return p.segments[i].Key
		}
	}
	return ""
}

// String renders p in dot/bracket notation, for example "offers[0].price".
// The root renders as "".
func (p Path) String() string {
	var b strings.Builder
	for _, s := range p.segments {
		if s.IsIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.Index))
			b.WriteByte(']')
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.Key)
	}
	return b.String()
}
