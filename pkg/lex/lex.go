// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

// Package lex implements the lexing core of the filterlang expression
// language: the contract every recognizable token type satisfies, the
// primitive combinators larger recognizers are composed from, and a
// declarative builder for ordered-alternative token enumerations.
//
// Progress through the input is represented by slicing, never by indexing:
// the current position is simply the remaining suffix of the original
// string. On success a lexer returns the recognized value and that suffix;
// on failure it returns an *Error whose span is a sub-slice of the attempted
// input pointing at the exact text that could not be interpreted. Every
// lexer is a pure function, so lexing is safe to invoke from any number of
// goroutines as long as each call operates on its own input.
package lex

import (
	"strings"
)

// Func is the lexing contract: attempt to recognize one value of type T at
// the front of input, returning the value and the unconsumed remainder, or a
// positioned error. The remainder is always a suffix of input; the error
// span is always a sub-slice of input.
type Func[T any] func(input string) (T, string, *Error)

// Span returns the prefix of input that was consumed to reach rest. rest
// must be a suffix of input obtained by lexing from it; passing anything
// longer than input is a programming error and panics.
func Span(input, rest string) string {
	return input[:len(input)-len(rest)]
}

// Expect consumes the exact literal from the front of input and returns the
// remainder. If input does not start with the literal, nothing is consumed
// and the error span is the whole input.
func Expect(input, literal string) (string, *Error) {
	if strings.HasPrefix(input, literal) {
		return input[len(literal):], nil
	}
	return "", &Error{Kind: ExpectedLiteralError{Literal: literal}, Span: input}
}

// Take splits off exactly n bytes from the front of input. The count is
// byte-based; this layer does not check UTF-8 boundaries.
func Take(input string, n int) (string, string, *Error) {
	if len(input) >= n {
		return input[:n], input[n:], nil
	}
	return "", "", &Error{
		Kind: CountMismatchError{Unit: "character", Actual: len(input), Expected: n},
		Span: input,
	}
}

// TakeWhile consumes the longest prefix of input whose runes satisfy pred
// and returns it together with the remainder. An empty match is a failure,
// reported as ExpectedNameError under the given name; a zero-length token
// would let calling loops spin forever.
func TakeWhile(input, name string, pred func(rune) bool) (string, string, *Error) {
	end := len(input)
	for i, r := range input {
		if !pred(r) {
			end = i
			break
		}
	}
	if end == 0 {
		return "", "", &Error{Kind: ExpectedNameError{Name: name}, Span: input}
	}
	return input[:end], input[end:], nil
}
