// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cilium/filterlang/pkg/field"
	"github.com/cilium/filterlang/pkg/lex"
	"github.com/cilium/filterlang/pkg/logging"
	"github.com/cilium/filterlang/pkg/logging/logfields"
	"github.com/cilium/filterlang/pkg/op"
)

var log = logging.DefaultLogger.WithField(logfields.LogSubsys, "filterlang")

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

// flowFields is the demo vocabulary the tool checks expressions against,
// modelled on the flow fields exposed by Hubble.
var flowFields = field.NewSet(
	field.Field{Name: "ip.src", Type: field.TypeIP},
	field.Field{Name: "ip.dst", Type: field.TypeIP},
	field.Field{Name: "tcp.port", Type: field.TypeInt},
	field.Field{Name: "udp.port", Type: field.TypeInt},
	field.Field{Name: "tcp.flags", Type: field.TypeInt},
	field.Field{Name: "http.host", Type: field.TypeBytes},
	field.Field{Name: "http.path", Type: field.TypeBytes},
	field.Field{Name: "dns.query", Type: field.TypeBytes},
	field.Field{Name: "reply", Type: field.TypeBool},
)

var boolValues = lex.NewEnum("boolean",
	lex.Literal("true", true),
	lex.Literal("false", false),
)

var connectives = lex.NewEnum("logical operator",
	lex.Literal("and", "and"),
	lex.Literal("&&", "and"),
	lex.Literal("or", "or"),
	lex.Literal("||", "or"),
)

// New creates the filterlang command.
func New() *cobra.Command {
	var debug, noColor bool
	cmd := &cobra.Command{
		Use:   "filterlang <expression>",
		Short: "Tokenize a flow filter expression",
		Long: `Tokenize a flow filter expression against the demo field vocabulary,
printing each recognized token or the exact span at which lexing failed.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			logging.ToggleDebugLogs(debug)
			if noColor {
				color.NoColor = true
			}
			return tokenize(args[0])
		},
	}
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	return cmd
}

func skipSpace(input string) string {
	return strings.TrimLeft(input, " \t")
}

func emit(kind, text string) {
	log.WithField(logfields.Token, text).Debug("recognized token")
	fmt.Printf("%-8s %q\n", green(kind), text)
}

// tokenize lexes expr as a sequence of "field op value" comparisons joined
// by logical operators, reporting the first failure with its exact span.
func tokenize(expr string) error {
	log.WithField(logfields.Expression, expr).Debug("tokenizing expression")
	rest := skipSpace(expr)
	if rest == "" {
		return nil
	}
	for {
		f, r, lerr := flowFields.Lex(rest)
		if lerr != nil {
			return renderError(expr, rest, lerr)
		}
		emit("field", lex.Span(rest, r))
		rest = skipSpace(r)

		cmp, r, lerr := op.LexComparisonOp(rest)
		if lerr != nil {
			return renderError(expr, rest, lerr)
		}
		opSpan := lex.Span(rest, r)
		if lerr := field.CheckOp(f, cmp, opSpan); lerr != nil {
			return renderError(expr, rest, lerr)
		}
		emit("op", opSpan)
		rest = skipSpace(r)

		text, r, lerr := lexValue(f.Type, cmp, rest)
		if lerr != nil {
			return renderError(expr, rest, lerr)
		}
		emit("value", text)
		rest = skipSpace(r)

		if rest == "" {
			return nil
		}
		conn, r, lerr := connectives.Lex(rest)
		if lerr != nil {
			// Trailing text that is not a connective means the
			// recognizable part of the expression ended here.
			return renderError(expr, rest, &lex.Error{
				Kind: lex.UnrecognisedInputError{},
				Span: rest,
			})
		}
		emit("logic", conn)
		rest = skipSpace(r)
	}
}

// lexValue lexes the right-hand side of a comparison according to the
// field's type, except that a regex match always takes a regex literal.
func lexValue(t field.Type, cmp op.ComparisonOp, input string) (string, string, *lex.Error) {
	switch {
	case cmp.Kind == op.KindMatches:
		re, rest, err := lex.Regex(input)
		if err != nil {
			return "", "", err
		}
		return re.String(), rest, nil
	case t == field.TypeIP:
		prefix, rest, err := lex.Network(input)
		if err != nil {
			return "", "", err
		}
		return prefix.String(), rest, nil
	case t == field.TypeInt:
		v, rest, err := lex.Int(input)
		if err != nil {
			return "", "", err
		}
		return strconv.FormatInt(v, 10), rest, nil
	case t == field.TypeBool:
		b, rest, err := boolValues.Lex(input)
		if err != nil {
			return "", "", err
		}
		return strconv.FormatBool(b), rest, nil
	default:
		b, rest, err := lex.Quoted(input)
		if err != nil {
			return "", "", err
		}
		return string(b), rest, nil
	}
}

// renderError prints the failure, the expression and a caret line
// underlining the failing span. attempted is the remaining input that was
// being lexed when the failure occurred; the span always lies within it.
func renderError(expr, attempted string, lerr *lex.Error) error {
	start := len(expr) - len(attempted)
	if i := strings.Index(attempted, lerr.Span); i >= 0 {
		start += i
	}
	width := len(lerr.Span)
	if width == 0 {
		width = 1
	}
	underline := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(os.Stderr, "%s\n  %s\n  %s%s\n",
		red(lerr.Error()), expr, strings.Repeat(" ", start), red(underline))
	return fmt.Errorf("lexing failed: %s", lerr)
}
