// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package lex

import (
	"strconv"
	"strings"
)

func digitPred(radix int) func(rune) bool {
	switch radix {
	case 16:
		return func(r rune) bool {
			return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
		}
	case 8:
		return func(r rune) bool { return r >= '0' && r <= '7' }
	default:
		return func(r rune) bool { return r >= '0' && r <= '9' }
	}
}

// Int lexes a signed integer literal. The radix is detected from the prefix:
// 0x introduces hexadecimal and a leading 0 octal, anything else is decimal.
// A failure of the underlying numeric parser is reported as ParseIntError
// with the digit span.
func Int(input string) (int64, string, *Error) {
	rest := input
	neg := false
	if r, err := Expect(rest, "-"); err == nil {
		neg = true
		rest = r
	}
	radix := 10
	if r, err := Expect(rest, "0x"); err == nil {
		radix = 16
		rest = r
	} else if strings.HasPrefix(rest, "0") {
		radix = 8
	}
	digits, rest, err := TakeWhile(rest, "digit", digitPred(radix))
	if err != nil {
		return 0, "", err
	}
	v, perr := strconv.ParseInt(digits, radix, 64)
	if perr != nil {
		return 0, "", &Error{Kind: ParseIntError{Err: perr, Radix: radix}, Span: digits}
	}
	if neg {
		v = -v
	}
	return v, rest, nil
}
