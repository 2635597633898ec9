/*
 * Copyright (c) 2024-2025, the nosr authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package nosr

import (
	"fmt"

	"github.com/nosr-io/nosr/pkg/common/parse"
)

type ErrorKind int

const (
	ErrUnexpectedEOF ErrorKind = iota
	ErrUnexpectedToken
	ErrExpectedColon
	ErrInvalidEscape
	ErrNotATable
	ErrNotAVector
	ErrNotAScalar
	ErrKeyNotFound
	ErrIndexOutOfBounds
	ErrConversion
)

// Error describes a navigation or conversion failure, pointing at the
// region of the document that produced it.
type Error struct {
	Kind     ErrorKind
	Location parse.Span
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Message, e.Location.Start)
}

func newError(kind ErrorKind, loc parse.Span, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Location: loc, Message: fmt.Sprintf(format, args...)}
}
