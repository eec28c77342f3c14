package signature

import (
	"slices"
	"strings"
)

// ValueKind is a coarse classification of a runtime value.
type ValueKind string

// Value kinds.
const (
	KindString    ValueKind = "string"
	KindNumber    ValueKind = "number"
	KindBoolean   ValueKind = "boolean"
	KindObject    ValueKind = "object"
	KindArray     ValueKind = "array"
	KindFunction  ValueKind = "function"
	KindRegExp    ValueKind = "regexp"
	KindNull      ValueKind = "null"
	KindUndefined ValueKind = "undefined"
	// KindUnknown is reported for expressions whose kind cannot be known
	// without evaluating them.
	KindUnknown ValueKind = "unknown"
)

// KindSet is a set of [ValueKind]s. A nil set is empty and may be read, but
// [KindSet.Add] needs one made by [NewKindSet].
type KindSet map[ValueKind]struct{}

// NewKindSet returns a set holding kinds.
func NewKindSet(kinds ...ValueKind) KindSet {
	s := make(KindSet, len(kinds))
	for _, k := range kinds {
		s[k] = struct{}{}
	}

	return s
}

// Add inserts k.
func (s KindSet) Add(k ValueKind) {
	s[k] = struct{}{}
}

// Has reports whether k is in the set.
func (s KindSet) Has(k ValueKind) bool {
	_, ok := s[k]

	return ok
}

// Union returns a new set holding the members of s and o.
func (s KindSet) Union(o KindSet) KindSet {
	out := make(KindSet, len(s)+len(o))
	for k := range s {
		out[k] = struct{}{}
	}

	for k := range o {
		out[k] = struct{}{}
	}

	return out
}

// Kinds returns the members in sorted order.
func (s KindSet) Kinds() []ValueKind {
	out := make([]ValueKind, 0, len(s))
	for k := range s {
		out = append(out, k)
	}

	slices.Sort(out)

	return out
}

func (s KindSet) String() string {
	kinds := s.Kinds()
	names := make([]string, len(kinds))

	for i, k := range kinds {
		names[i] = string(k)
	}

	return strings.Join(names, "|")
}
