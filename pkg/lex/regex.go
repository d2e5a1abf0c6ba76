// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package lex

import (
	"regexp"
	"strings"
)

// Regex lexes a double-quoted regular-expression literal and compiles it.
// Inside the quotes only \" is treated as an escape; all other backslash
// sequences are passed through to the pattern untouched, so character
// classes like \d need no double escaping. A compile failure is reported as
// ParseRegexError spanning the whole quoted literal.
func Regex(input string) (*regexp.Regexp, string, *Error) {
	rest, err := Expect(input, `"`)
	if err != nil {
		return nil, "", err
	}
	var pattern strings.Builder
	for {
		if rest == "" {
			return nil, "", &Error{Kind: MissingEndingQuoteError{}, Span: input}
		}
		c := rest[0]
		if c == '"' {
			rest = rest[1:]
			break
		}
		if c == '\\' && len(rest) > 1 && rest[1] == '"' {
			pattern.WriteByte('"')
			rest = rest[2:]
			continue
		}
		pattern.WriteByte(c)
		rest = rest[1:]
	}
	re, cerr := regexp.Compile(pattern.String())
	if cerr != nil {
		return nil, "", &Error{Kind: ParseRegexError{Err: cerr}, Span: Span(input, rest)}
	}
	return re, rest, nil
}
