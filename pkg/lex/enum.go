// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package lex

// Alternative is one entry in an enumeration declaration, constructed with
// Literal or Nested. Entries are tried strictly in declaration order.
type Alternative[T comparable] struct {
	spelling string
	value    T
	literal  bool
	lex      Func[T]
}

// Literal declares an alternative that matches the exact spelling and yields
// value. Several spellings may map to the same value.
func Literal[T comparable](spelling string, value T) Alternative[T] {
	return Alternative[T]{
		spelling: spelling,
		value:    value,
		literal:  true,
		lex: func(input string) (T, string, *Error) {
			rest, err := Expect(input, spelling)
			if err != nil {
				var zero T
				return zero, "", err
			}
			return value, rest, nil
		},
	}
}

// Nested declares an alternative that delegates to the sub-type's own lexer
// and wraps the value it produces.
func Nested[S any, T comparable](sub Func[S], wrap func(S) T) Alternative[T] {
	return Alternative[T]{
		lex: func(input string) (T, string, *Error) {
			v, rest, err := sub(input)
			if err != nil {
				var zero T
				return zero, "", err
			}
			return wrap(v), rest, nil
		},
	}
}

// Enum is a tagged-union lexer generated from an ordered list of
// alternatives.
type Enum[T comparable] struct {
	name string
	alts []Alternative[T]
}

// NewEnum builds an enumeration lexer named name from the given
// alternatives. The name is what failures report when no alternative
// matches.
func NewEnum[T comparable](name string, alts ...Alternative[T]) *Enum[T] {
	return &Enum[T]{name: name, alts: alts}
}

// Name returns the enumeration's declared name.
func (e *Enum[T]) Name() string {
	return e.name
}

// Lex tries the alternatives in declaration order and short-circuits on the
// first that succeeds. There is no longest-match resolution: when two
// literal spellings overlap as prefixes the earlier declaration wins, so
// overlapping spellings must be declared longest first. On total failure
// only ExpectedNameError with the enumeration's own name is reported, at the
// original input; individual alternative failures are discarded.
func (e *Enum[T]) Lex(input string) (T, string, *Error) {
	for _, alt := range e.alts {
		if v, rest, err := alt.lex(input); err == nil {
			return v, rest, nil
		}
	}
	var zero T
	return zero, "", &Error{Kind: ExpectedNameError{Name: e.name}, Span: input}
}

// Spelling returns the first declared literal spelling for v. It is the
// opaque tag under which recognized values can be serialized; values only
// reachable through nested alternatives have no spelling of their own.
func (e *Enum[T]) Spelling(v T) (string, bool) {
	for _, alt := range e.alts {
		if alt.literal && alt.value == v {
			return alt.spelling, true
		}
	}
	return "", false
}
