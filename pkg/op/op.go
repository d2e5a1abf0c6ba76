// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

// Package op defines the comparison operators of filterlang expressions and
// their lexers, declared with the ordered-alternative enumeration builder.
// Declaration order is part of the grammar: two-character spellings such as
// ">=" are declared before their one-character prefixes.
package op

import (
	"fmt"

	"github.com/cilium/filterlang/pkg/lex"
)

// OrderingOp is a comparison decided from the relative order of two values.
// The bit layout lets Matches test an observed three-way ordering directly.
type OrderingOp uint8

const (
	orderLess OrderingOp = 1 << iota
	orderGreater
	orderEqual
)

const (
	Equal            = orderEqual
	NotEqual         = orderLess | orderGreater
	GreaterThanEqual = orderGreater | orderEqual
	LessThanEqual    = orderLess | orderEqual
	GreaterThan      = orderGreater
	LessThan         = orderLess
)

var orderingOps = lex.NewEnum("OrderingOp",
	lex.Literal("eq", Equal),
	lex.Literal("==", Equal),
	lex.Literal("ne", NotEqual),
	lex.Literal("!=", NotEqual),
	lex.Literal("ge", GreaterThanEqual),
	lex.Literal(">=", GreaterThanEqual),
	lex.Literal("le", LessThanEqual),
	lex.Literal("<=", LessThanEqual),
	lex.Literal("gt", GreaterThan),
	lex.Literal(">", GreaterThan),
	lex.Literal("lt", LessThan),
	lex.Literal("<", LessThan),
)

// LexOrderingOp recognizes an ordering operator at the front of input.
func LexOrderingOp(input string) (OrderingOp, string, *lex.Error) {
	return orderingOps.Lex(input)
}

// Matches reports whether the operator accepts the given three-way ordering
// result (negative, zero or positive, as returned by cmp.Compare).
func (op OrderingOp) Matches(ordering int) bool {
	switch {
	case ordering < 0:
		return op&orderLess != 0
	case ordering > 0:
		return op&orderGreater != 0
	default:
		return op&orderEqual != 0
	}
}

func (op OrderingOp) String() string {
	s, ok := orderingOps.Spelling(op)
	if !ok {
		return fmt.Sprintf("OrderingOp(%#x)", uint8(op))
	}
	return s
}

// MarshalText serializes the operator as its first declared spelling.
func (op OrderingOp) MarshalText() ([]byte, error) {
	s, ok := orderingOps.Spelling(op)
	if !ok {
		return nil, fmt.Errorf("unknown ordering operator %#x", uint8(op))
	}
	return []byte(s), nil
}

// UnmarshalText parses an operator previously serialized with MarshalText.
// Any declared spelling is accepted.
func (op *OrderingOp) UnmarshalText(text []byte) error {
	v, rest, err := orderingOps.Lex(string(text))
	if err != nil || rest != "" {
		return fmt.Errorf("invalid ordering operator %q", text)
	}
	*op = v
	return nil
}

// ComparisonOpKind tags the ComparisonOp union.
type ComparisonOpKind uint8

const (
	KindIn ComparisonOpKind = iota + 1
	KindOrdering
	KindBitwiseAnd
	KindContains
	KindMatches
)

// ComparisonOp is one comparison in a filter expression. Ordering carries
// the nested ordering operator when Kind is KindOrdering and is zero
// otherwise.
type ComparisonOp struct {
	Kind     ComparisonOpKind
	Ordering OrderingOp
}

var comparisonOps = lex.NewEnum("ComparisonOp",
	lex.Literal("in", ComparisonOp{Kind: KindIn}),
	lex.Nested(LexOrderingOp, func(o OrderingOp) ComparisonOp {
		return ComparisonOp{Kind: KindOrdering, Ordering: o}
	}),
	lex.Literal("&", ComparisonOp{Kind: KindBitwiseAnd}),
	lex.Literal("bitwise_and", ComparisonOp{Kind: KindBitwiseAnd}),
	lex.Literal("contains", ComparisonOp{Kind: KindContains}),
	lex.Literal("~", ComparisonOp{Kind: KindMatches}),
	lex.Literal("matches", ComparisonOp{Kind: KindMatches}),
)

// LexComparisonOp recognizes a comparison operator at the front of input.
func LexComparisonOp(input string) (ComparisonOp, string, *lex.Error) {
	return comparisonOps.Lex(input)
}

func (op ComparisonOp) String() string {
	if op.Kind == KindOrdering {
		return op.Ordering.String()
	}
	s, ok := comparisonOps.Spelling(op)
	if !ok {
		return fmt.Sprintf("ComparisonOp(%d)", op.Kind)
	}
	return s
}

// MarshalText serializes the operator as its first declared spelling.
func (op ComparisonOp) MarshalText() ([]byte, error) {
	if op.Kind == KindOrdering {
		return op.Ordering.MarshalText()
	}
	s, ok := comparisonOps.Spelling(op)
	if !ok {
		return nil, fmt.Errorf("unknown comparison operator %d", op.Kind)
	}
	return []byte(s), nil
}

// UnmarshalText parses an operator previously serialized with MarshalText.
func (op *ComparisonOp) UnmarshalText(text []byte) error {
	v, rest, err := comparisonOps.Lex(string(text))
	if err != nil || rest != "" {
		return fmt.Errorf("invalid comparison operator %q", text)
	}
	*op = v
	return nil
}
