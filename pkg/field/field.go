// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

// Package field defines the typed field vocabulary a filter expression is
// checked against: which names exist, what type of value each carries and
// which comparison operators that type supports.
package field

import (
	"github.com/cilium/filterlang/pkg/lex"
	"github.com/cilium/filterlang/pkg/op"
)

// Type is the value type of a field.
type Type uint8

const (
	TypeBool Type = iota + 1
	TypeInt
	TypeBytes
	TypeIP
)

func (t Type) String() string {
	switch t {
	case TypeBool:
		return "Bool"
	case TypeInt:
		return "Int"
	case TypeBytes:
		return "Bytes"
	case TypeIP:
		return "IP"
	default:
		return "Unknown"
	}
}

// Supports reports whether values of this type can be compared with the
// given operator. Equality is universal; ordering needs an ordered type,
// bitwise-and an integer, substring and regex matching a byte string, and
// set membership anything but a bool.
func (t Type) Supports(cmp op.ComparisonOp) bool {
	switch cmp.Kind {
	case op.KindOrdering:
		if cmp.Ordering == op.Equal || cmp.Ordering == op.NotEqual {
			return true
		}
		return t == TypeInt || t == TypeBytes
	case op.KindBitwiseAnd:
		return t == TypeInt
	case op.KindContains, op.KindMatches:
		return t == TypeBytes
	case op.KindIn:
		return t != TypeBool
	default:
		return false
	}
}

// Field is a named, typed entry in the filter vocabulary.
type Field struct {
	Name string
	Type Type
}

// Set is a fixed field vocabulary.
type Set struct {
	byName map[string]Field
}

// NewSet builds a vocabulary from the given fields.
func NewSet(fields ...Field) *Set {
	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}
	return &Set{byName: byName}
}

func isIdentChar(r rune) bool {
	return r == '.' || r == '_' || r == '-' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

// Lex recognizes a field name at the front of input. An identifier outside
// the vocabulary fails with UnknownFieldError spanning the identifier.
func (s *Set) Lex(input string) (Field, string, *lex.Error) {
	name, rest, err := lex.TakeWhile(input, "identifier character", isIdentChar)
	if err != nil {
		return Field{}, "", err
	}
	f, ok := s.byName[name]
	if !ok {
		return Field{}, "", &lex.Error{Kind: lex.UnknownFieldError{}, Span: name}
	}
	return f, rest, nil
}

// CheckOp verifies that cmp is usable on f's type. On mismatch it returns
// UnsupportedOpError positioned at span, which callers set to the operator's
// consumed text.
func CheckOp(f Field, cmp op.ComparisonOp, span string) *lex.Error {
	if !f.Type.Supports(cmp) {
		return &lex.Error{
			Kind: lex.UnsupportedOpError{Type: f.Type.String(), Op: cmp.String()},
			Span: span,
		}
	}
	return nil
}
