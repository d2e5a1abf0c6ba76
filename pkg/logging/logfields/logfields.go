// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

// Package logfields defines the common log field names used across
// filterlang, so that log output stays greppable.
package logfields

const (
	// LogSubsys is the field denoting the subsystem when logging
	LogSubsys = "subsys"

	// Expression is the filter expression being lexed
	Expression = "expression"

	// Field is a filter field name
	Field = "field"

	// Token is the text of a recognized token
	Token = "token"

	// Offset is a byte offset into an expression
	Offset = "offset"
)
