package domain

import (
	"slices"
	"strings"
)

// StringSet is an unordered set of strings.
type StringSet map[string]struct{}

// NewStringSet creates a set holding the given values.
func NewStringSet(values ...string) StringSet {
	s := make(StringSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts values into the set.
func (s StringSet) Add(values ...string) {
	for _, v := range values {
		s[v] = struct{}{}
	}
}

// AddAll inserts every member of other.
func (s StringSet) AddAll(other StringSet) {
	for v := range other {
		s[v] = struct{}{}
	}
}

// Has reports whether v is a member.
func (s StringSet) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of members.
func (s StringSet) Len() int {
	return len(s)
}

// Clone returns an independent copy. A nil set clones to an empty set.
func (s StringSet) Clone() StringSet {
	out := make(StringSet, len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

// Intersect returns the members present in both sets.
func (s StringSet) Intersect(other StringSet) StringSet {
	out := make(StringSet)
	for v := range s {
		if other.Has(v) {
			out[v] = struct{}{}
		}
	}
	return out
}

// Difference returns the members of s that are absent from other.
func (s StringSet) Difference(other StringSet) StringSet {
	out := make(StringSet)
	for v := range s {
		if !other.Has(v) {
			out[v] = struct{}{}
		}
	}
	return out
}

// Sorted returns the members in ascending order.
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// Join returns the sorted members joined by sep.
func (s StringSet) Join(sep string) string {
	return strings.Join(s.Sorted(), sep)
}
