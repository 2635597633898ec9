/*
 * Copyright (c) 2024-2025, the nosr authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

// Span is a half-open [Start, End) byte range into a source buffer.
// A span never owns the bytes it references; lexemes are substrings of
// the original source.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	return s.End - s.Start
}

// Extract returns the substring of source covered by this span.
func (s Span) Extract(source string) string {
	return source[s.Start:s.End]
}

type TokenType interface {
	ToString() string
}

type Token struct {
	Type     TokenType
	Lexeme   string
	Location Span
}
