// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package lex

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetwork(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		prefix string
		rest   string
	}{
		{name: "bare IPv4", input: "10.0.0.1 and", prefix: "10.0.0.1/32", rest: " and"},
		{name: "IPv4 CIDR", input: "10.0.0.0/8;", prefix: "10.0.0.0/8", rest: ";"},
		{name: "bare IPv6", input: "::1 ", prefix: "::1/128", rest: " "},
		{name: "IPv6 CIDR", input: "fd00::/64)", prefix: "fd00::/64", rest: ")"},
		{name: "hex groups", input: "dead:beef::1", prefix: "dead:beef::1/128", rest: ""},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			p, rest, err := Network(tc.input)
			require.Nil(t, err)
			assert.Equal(t, netip.MustParsePrefix(tc.prefix), p)
			assert.Equal(t, tc.rest, rest)
		})
	}
}

func TestNetworkErrors(t *testing.T) {
	// Not address-shaped at all.
	_, _, err := Network("pod-1")
	require.Equal(t, &Error{Kind: ExpectedNameError{Name: "IP address character"}, Span: "pod-1"}, err)

	// Address-shaped but unparseable; the span covers the scanned chunk,
	// excluding whatever follows it.
	_, _, err = Network("10.0.0.256 x")
	require.NotNil(t, err)
	assert.IsType(t, ParseNetworkError{}, err.Kind)
	assert.Equal(t, "10.0.0.256", err.Span)

	_, _, err = Network("10.0.0.0/99")
	require.NotNil(t, err)
	assert.IsType(t, ParseNetworkError{}, err.Kind)
	assert.Equal(t, "10.0.0.0/99", err.Span)
}
