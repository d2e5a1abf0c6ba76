// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package lex

import (
	"fmt"
)

// ErrorKind is the closed set of reasons a lex attempt can fail. Each kind
// carries exactly the data needed to render its message; kinds wrapping an
// external parser error expose it through Unwrap for chained diagnostics.
type ErrorKind interface {
	error
	lexErrorKind()
}

// Error is a failed lex attempt: the classified reason plus the exact span of
// input at which the attempt failed. Span always aliases the input string
// given to the failing call, so error-reporting code can excerpt the
// offending text directly without any extra bookkeeping.
type Error struct {
	Kind ErrorKind
	Span string
}

func (e *Error) Error() string {
	return e.Kind.Error()
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// ExpectedNameError reports that a named construct was absent.
type ExpectedNameError struct {
	Name string
}

func (e ExpectedNameError) Error() string {
	return "expected " + e.Name
}

// ExpectedLiteralError reports that an exact literal was absent.
type ExpectedLiteralError struct {
	Literal string
}

func (e ExpectedLiteralError) Error() string {
	return fmt.Sprintf("expected literal %q", e.Literal)
}

// ParseIntError wraps a failure of the underlying numeric parser together
// with the radix that was in effect.
type ParseIntError struct {
	Err   error
	Radix int
}

func (e ParseIntError) Error() string {
	return fmt.Sprintf("%s while parsing with radix %d", e.Err, e.Radix)
}

func (e ParseIntError) Unwrap() error {
	return e.Err
}

// ParseNetworkError wraps a failure of the network-address parser.
type ParseNetworkError struct {
	Err error
}

func (e ParseNetworkError) Error() string {
	return e.Err.Error()
}

func (e ParseNetworkError) Unwrap() error {
	return e.Err
}

// ParseRegexError wraps a failure of the regular-expression parser.
type ParseRegexError struct {
	Err error
}

func (e ParseRegexError) Error() string {
	return e.Err.Error()
}

func (e ParseRegexError) Unwrap() error {
	return e.Err
}

// InvalidCharacterEscapeError reports a malformed escape sequence inside a
// quoted literal.
type InvalidCharacterEscapeError struct{}

func (InvalidCharacterEscapeError) Error() string {
	return `expected ", xHH or OOO after \`
}

// MissingEndingQuoteError reports a quoted literal that was never closed.
type MissingEndingQuoteError struct{}

func (MissingEndingQuoteError) Error() string {
	return "could not find an ending quote"
}

// CountMismatchError reports a counted repetition that did not match. Unit is
// the human name of the thing being counted, e.g. "character".
type CountMismatchError struct {
	Unit     string
	Actual   int
	Expected int
}

func (e CountMismatchError) Error() string {
	return fmt.Sprintf("expected %d %ss, but found %d", e.Expected, e.Unit, e.Actual)
}

// UnknownFieldError reports a field name outside the filter vocabulary. The
// offending identifier is carried by the surrounding Error's span.
type UnknownFieldError struct{}

func (UnknownFieldError) Error() string {
	return "unknown field"
}

// UnsupportedOpError reports a comparison operator applied to a field type
// that does not support it.
type UnsupportedOpError struct {
	Type string
	Op   string
}

func (e UnsupportedOpError) Error() string {
	return fmt.Sprintf("cannot use operation %q on type %q", e.Op, e.Type)
}

// UnrecognisedInputError reports input that matched no recognizable token.
type UnrecognisedInputError struct{}

func (UnrecognisedInputError) Error() string {
	return "unrecognised input"
}

func (ExpectedNameError) lexErrorKind()           {}
func (ExpectedLiteralError) lexErrorKind()        {}
func (ParseIntError) lexErrorKind()               {}
func (ParseNetworkError) lexErrorKind()           {}
func (ParseRegexError) lexErrorKind()             {}
func (InvalidCharacterEscapeError) lexErrorKind() {}
func (MissingEndingQuoteError) lexErrorKind()     {}
func (CountMismatchError) lexErrorKind()          {}
func (UnknownFieldError) lexErrorKind()           {}
func (UnsupportedOpError) lexErrorKind()          {}
func (UnrecognisedInputError) lexErrorKind()      {}
