// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package lex

import (
	"strconv"
)

func fixedByte(input string, digits, radix int) (byte, string, *Error) {
	window, rest, err := Take(input, digits)
	if err != nil {
		return 0, "", err
	}
	b, perr := strconv.ParseUint(window, radix, 8)
	if perr != nil {
		// The span is the digit window, not the full input, so that
		// diagnostics point at the digits themselves.
		return 0, "", &Error{Kind: ParseIntError{Err: perr, Radix: radix}, Span: window}
	}
	return byte(b), rest, nil
}

// HexByte consumes exactly two hexadecimal digits as one byte, e.g. the HH
// of a \xHH escape.
func HexByte(input string) (byte, string, *Error) {
	return fixedByte(input, 2, 16)
}

// OctByte consumes exactly three octal digits as one byte, e.g. the OOO of a
// \OOO escape.
func OctByte(input string) (byte, string, *Error) {
	return fixedByte(input, 3, 8)
}
