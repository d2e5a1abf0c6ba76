// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package lex

// Quoted lexes a double-quoted byte-string literal. The recognized escape
// sequences are \" for a quote, \xHH for a hex-encoded byte and \OOO for an
// octal-encoded byte; any other character after a backslash is rejected with
// InvalidCharacterEscapeError at the escape sequence itself. A literal that
// is never closed fails with MissingEndingQuoteError at the whole attempted
// input.
func Quoted(input string) ([]byte, string, *Error) {
	rest, err := Expect(input, `"`)
	if err != nil {
		return nil, "", err
	}
	var out []byte
	for {
		if rest == "" {
			return nil, "", &Error{Kind: MissingEndingQuoteError{}, Span: input}
		}
		switch rest[0] {
		case '"':
			return out, rest[1:], nil
		case '\\':
			esc := rest
			rest = rest[1:]
			if rest == "" {
				return nil, "", &Error{Kind: InvalidCharacterEscapeError{}, Span: esc}
			}
			switch c := rest[0]; {
			case c == '"':
				out = append(out, '"')
				rest = rest[1:]
			case c == 'x':
				b, r, err := HexByte(rest[1:])
				if err != nil {
					return nil, "", err
				}
				out = append(out, b)
				rest = r
			case c >= '0' && c <= '7':
				b, r, err := OctByte(rest)
				if err != nil {
					return nil, "", err
				}
				out = append(out, b)
				rest = r
			default:
				return nil, "", &Error{Kind: InvalidCharacterEscapeError{}, Span: esc[:2]}
			}
		default:
			out = append(out, rest[0])
			rest = rest[1:]
		}
	}
}
