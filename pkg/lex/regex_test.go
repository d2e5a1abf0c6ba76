// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegex(t *testing.T) {
	re, rest, err := Regex(`"foo.*" bar`)
	require.Nil(t, err)
	assert.Equal(t, "foo.*", re.String())
	assert.Equal(t, " bar", rest)
	assert.True(t, re.MatchString("foobar"))

	// Character classes need no double escaping.
	re, rest, err = Regex(`"\d+"x`)
	require.Nil(t, err)
	assert.Equal(t, `\d+`, re.String())
	assert.Equal(t, "x", rest)
	assert.True(t, re.MatchString("123"))

	// Only the quote is unescaped inside the literal.
	re, _, err = Regex(`"a\"b"`)
	require.Nil(t, err)
	assert.Equal(t, `a"b`, re.String())
}

func TestRegexErrors(t *testing.T) {
	_, _, err := Regex(`foo`)
	require.Equal(t, &Error{Kind: ExpectedLiteralError{Literal: `"`}, Span: "foo"}, err)

	_, _, err = Regex(`"abc`)
	require.Equal(t, &Error{Kind: MissingEndingQuoteError{}, Span: `"abc`}, err)

	// Compile failure spans the whole quoted literal.
	_, _, err = Regex(`"(" x`)
	require.NotNil(t, err)
	assert.IsType(t, ParseRegexError{}, err.Kind)
	assert.Equal(t, `"("`, err.Span)
}
