// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package lex

import (
	"net/netip"
	"strings"
)

func isAddrChar(r rune) bool {
	return r == '.' || r == ':' || r == '/' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'f') ||
		(r >= 'A' && r <= 'F')
}

// Network lexes an IPv4/IPv6 address or CIDR literal into a netip.Prefix. A
// bare address becomes a full-length prefix, the same way exact-IP matches
// are modelled as /32 and /128 ranges elsewhere. The address-shaped chunk is
// scanned first and then handed to the network-address parser; a parse
// failure is reported as ParseNetworkError spanning the whole chunk.
func Network(input string) (netip.Prefix, string, *Error) {
	chunk, rest, err := TakeWhile(input, "IP address character", isAddrChar)
	if err != nil {
		return netip.Prefix{}, "", err
	}
	if strings.Contains(chunk, "/") {
		prefix, perr := netip.ParsePrefix(chunk)
		if perr != nil {
			return netip.Prefix{}, "", &Error{Kind: ParseNetworkError{Err: perr}, Span: chunk}
		}
		return prefix, rest, nil
	}
	addr, perr := netip.ParseAddr(chunk)
	if perr != nil {
		return netip.Prefix{}, "", &Error{Kind: ParseNetworkError{Err: perr}, Span: chunk}
	}
	return netip.PrefixFrom(addr, addr.BitLen()), rest, nil
}
