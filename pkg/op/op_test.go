// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package op

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cilium/filterlang/pkg/lex"
)

func TestLexOrderingOp(t *testing.T) {
	tt := []struct {
		name  string
		input string
		value OrderingOp
		rest  string
	}{
		{name: "symbolic equal", input: "==1", value: Equal, rest: "1"},
		{name: "named equal", input: "eq 1", value: Equal, rest: " 1"},
		{name: "not equal", input: "!=x", value: NotEqual, rest: "x"},
		// ">=" is declared before ">", so the two-character spelling
		// wins over its one-character prefix.
		{name: "greater equal", input: ">=1", value: GreaterThanEqual, rest: "1"},
		{name: "greater", input: ">1", value: GreaterThan, rest: "1"},
		{name: "less equal", input: "<=1", value: LessThanEqual, rest: "1"},
		{name: "less", input: "<1", value: LessThan, rest: "1"},
		{name: "named less", input: "lt1", value: LessThan, rest: "1"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			v, rest, err := LexOrderingOp(tc.input)
			require.Nil(t, err)
			assert.Equal(t, tc.value, v)
			assert.Equal(t, tc.rest, rest)
		})
	}

	_, _, err := LexOrderingOp("?x")
	require.Equal(t, &lex.Error{
		Kind: lex.ExpectedNameError{Name: "OrderingOp"},
		Span: "?x",
	}, err)
}

func TestOrderingOpMatches(t *testing.T) {
	tt := []struct {
		op       OrderingOp
		ordering int
		want     bool
	}{
		{Equal, 0, true},
		{Equal, -1, false},
		{NotEqual, -1, true},
		{NotEqual, 1, true},
		{NotEqual, 0, false},
		{GreaterThanEqual, 0, true},
		{GreaterThanEqual, 1, true},
		{GreaterThanEqual, -1, false},
		{LessThanEqual, -1, true},
		{LessThanEqual, 1, false},
		{GreaterThan, 1, true},
		{GreaterThan, 0, false},
		{LessThan, -1, true},
		{LessThan, 0, false},
	}

	for _, tc := range tt {
		assert.Equal(t, tc.want, tc.op.Matches(tc.ordering),
			"%s.Matches(%d)", tc.op, tc.ordering)
	}
}

func TestLexComparisonOp(t *testing.T) {
	tt := []struct {
		name  string
		input string
		value ComparisonOp
		rest  string
	}{
		{name: "in", input: "in {", value: ComparisonOp{Kind: KindIn}, rest: " {"},
		{
			name:  "nested ordering",
			input: ">= 80",
			value: ComparisonOp{Kind: KindOrdering, Ordering: GreaterThanEqual},
			rest:  " 80",
		},
		{name: "bitwise and", input: "& 2", value: ComparisonOp{Kind: KindBitwiseAnd}, rest: " 2"},
		{name: "named bitwise and", input: "bitwise_and 2", value: ComparisonOp{Kind: KindBitwiseAnd}, rest: " 2"},
		{name: "contains", input: `contains "x"`, value: ComparisonOp{Kind: KindContains}, rest: ` "x"`},
		{name: "tilde", input: `~ "x"`, value: ComparisonOp{Kind: KindMatches}, rest: ` "x"`},
		{name: "matches", input: `matches "x"`, value: ComparisonOp{Kind: KindMatches}, rest: ` "x"`},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			v, rest, err := LexComparisonOp(tc.input)
			require.Nil(t, err)
			assert.Equal(t, tc.value, v)
			assert.Equal(t, tc.rest, rest)
		})
	}

	_, _, err := LexComparisonOp("? x")
	require.Equal(t, &lex.Error{
		Kind: lex.ExpectedNameError{Name: "ComparisonOp"},
		Span: "? x",
	}, err)
}

func TestOpTextRoundTrip(t *testing.T) {
	ops := []ComparisonOp{
		{Kind: KindIn},
		{Kind: KindOrdering, Ordering: NotEqual},
		{Kind: KindBitwiseAnd},
		{Kind: KindContains},
		{Kind: KindMatches},
	}
	for _, want := range ops {
		data, err := json.Marshal(want)
		require.NoError(t, err, "%s", want)

		var got ComparisonOp
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, want, got)
	}

	var bad OrderingOp
	assert.Error(t, bad.UnmarshalText([]byte("spaceship")))
	// Trailing text is not a valid tag either.
	assert.Error(t, bad.UnmarshalText([]byte("eqx")))
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "eq", Equal.String())
	assert.Equal(t, "ne", NotEqual.String())
	assert.Equal(t, "in", ComparisonOp{Kind: KindIn}.String())
	assert.Equal(t, "ge", ComparisonOp{Kind: KindOrdering, Ordering: GreaterThanEqual}.String())
	assert.Equal(t, "contains", ComparisonOp{Kind: KindContains}.String())
}
