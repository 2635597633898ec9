/*
 * Copyright (c) 2024-2025, the nosr authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lexer

import (
	"fmt"

	"github.com/nosr-io/nosr/pkg/common/parse"
)

type TokenType int

const (
	TOK_INVALID TokenType = iota

	TOK_BACKSLASH
	TOK_BRACKET_L
	TOK_BRACKET_R
	TOK_COLON
	TOK_COMMA
	TOK_NEWLINE
	TOK_SEMICOLON
	TOK_SYMBOL

	// TOK_QUOTE is reserved for the bare quote character. The scanner
	// never emits it; a quote always opens a string scan, which
	// produces TOK_STRING spanning the raw string contents.
	TOK_QUOTE
	TOK_STRING
)

func (t TokenType) ToString() string {
	switch t {
	case TOK_INVALID:
		return "TOK_INVALID"
	case TOK_BACKSLASH:
		return "TOK_BACKSLASH"
	case TOK_BRACKET_L:
		return "TOK_BRACKET_L"
	case TOK_BRACKET_R:
		return "TOK_BRACKET_R"
	case TOK_COLON:
		return "TOK_COLON"
	case TOK_COMMA:
		return "TOK_COMMA"
	case TOK_NEWLINE:
		return "TOK_NEWLINE"
	case TOK_SEMICOLON:
		return "TOK_SEMICOLON"
	case TOK_SYMBOL:
		return "TOK_SYMBOL"
	case TOK_QUOTE:
		return "TOK_QUOTE"
	case TOK_STRING:
		return "TOK_STRING"
	}
	return "TOK_UNKNOWN"
}

// Describe renders a token as "(KIND @ offset)" for debugging output.
func Describe(t parse.Token) string {
	return fmt.Sprintf("(%s @ %d)", t.Type.ToString(), t.Location.Start)
}
