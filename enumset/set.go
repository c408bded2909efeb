// Package enumset provides closed sets of labeled cases. A set knows every
// label it contains, can parse a raw string back into a case, and can
// canonicalize a raw string into the exact label it matched.
//
// Matching is case-sensitive exact string equality by default. A set whose
// labels carry descriptive suffix text (e.g. "USD United States dollar") can
// opt into first-token matching, where only the first whitespace-delimited
// token of the raw input is compared.
package enumset

import (
	"fmt"
	"strings"
)

// Labeler is the capability a field descriptor holds for an enumeration
// field: list all labels and canonicalize a raw string against them.
type Labeler interface {
	Labels() []string
	Canonical(raw string) (string, bool)
}

// Labeled marks a value type as belonging to a closed case set. Field
// reflection uses it to recognize enumeration fields.
type Labeled interface {
	EnumSet() Labeler
}

// Set is a closed, ordered collection of cases of one type. Labels are taken
// from each case's String method at construction time.
type Set[T fmt.Stringer] struct {
	cases      []T
	labels     []string
	byLabel    map[string]int
	firstToken bool
}

// New builds a set from the given cases in order. Duplicate labels keep the
// first case.
func New[T fmt.Stringer](cases ...T) *Set[T] {
	s := &Set[T]{
		cases:   cases,
		labels:  make([]string, 0, len(cases)),
		byLabel: make(map[string]int, len(cases)),
	}

	for i, c := range cases {
		label := c.String()
		s.labels = append(s.labels, label)
		if _, ok := s.byLabel[label]; !ok {
			s.byLabel[label] = i
		}
	}

	return s
}

// WithFirstToken switches the set to first-whitespace-token matching: both
// the stored labels and the raw input are reduced to their first token before
// comparison. Returns the receiver for chaining at construction.
func (s *Set[T]) WithFirstToken() *Set[T] {
	s.firstToken = true
	return s
}

// Labels returns all labels in case order. The returned slice is shared; do
// not modify it.
func (s *Set[T]) Labels() []string {
	return s.labels
}

// Parse returns the case matching raw, or false if no label matches.
func (s *Set[T]) Parse(raw string) (T, bool) {
	var zero T

	key := raw
	if s.firstToken {
		key = firstToken(raw)
	}

	for i, label := range s.labels {
		if s.firstToken {
			label = firstToken(label)
		}

		if label == key {
			return s.cases[i], true
		}
	}

	return zero, false
}

// Canonical returns the full stored label of the case matching raw.
func (s *Set[T]) Canonical(raw string) (string, bool) {
	c, ok := s.Parse(raw)
	if !ok {
		return "", false
	}

	return c.String(), true
}

// StringCase adapts a bare string into a set case.
type StringCase string

// String returns the case label.
func (c StringCase) String() string { return string(c) }

// Strings builds a set whose cases are the labels themselves. Used when a
// case set is described by data (e.g. a form schema) rather than a Go type.
func Strings(labels ...string) *Set[StringCase] {
	cases := make([]StringCase, len(labels))
	for i, l := range labels {
		cases[i] = StringCase(l)
	}

	return New(cases...)
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}
