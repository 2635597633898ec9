/*
 * Copyright (c) 2024-2025, the nosr authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package nosr navigates nosr documents lazily. A Node references a
// region of the source text; tables and vectors are only scanned when
// a navigation function walks into them, so deeply nested values can
// be reached without materializing the whole tree.
package nosr

import (
	"strconv"
	"strings"

	"github.com/nosr-io/nosr/pkg/common/parse"
	"github.com/nosr-io/nosr/pkg/lexer"
)

// Node is a lazily-parsed region of a document. It may hold a table, a
// vector, or a scalar; which one is only decided when the node is
// navigated or converted.
type Node struct {
	source string
	span   parse.Span
}

func NewNode(source string, span parse.Span) Node {
	return Node{source: source, span: span}
}

// Raw returns the text this node covers, without parsing it.
func (n Node) Raw() string {
	return n.span.Extract(n.source)
}

func (n Node) Span() parse.Span {
	return n.span
}

// scanner returns a cursor positioned at the node's start and bounded
// to its extent. Bounding via a substring keeps offsets absolute.
func (n Node) scanner() *lexer.Scanner {
	return &lexer.Scanner{Input: n.source[:n.span.End], Pos: n.span.Start}
}

// extent widens a string token's location to include the surrounding
// quotes, so the resulting node re-lexes as a string.
func extent(tok parse.Token) parse.Span {
	loc := tok.Location
	if tok.Type == lexer.TOK_STRING {
		return parse.Span{Start: loc.Start - 1, End: loc.End + 1}
	}
	return loc
}

func isSeparator(t parse.TokenType) bool {
	return t == lexer.TOK_NEWLINE || t == lexer.TOK_COMMA || t == lexer.TOK_SEMICOLON
}

// Tab navigates to the value stored under key in a table node.
//
// A table is a bracketed run of "key : value" entries separated by
// commas, semicolons, or newlines. Keys may be bare symbols or quoted
// strings; quoted keys are unescaped before comparison.
func Tab(n Node, key string) (Node, error) {
	s := n.scanner()

	tok, err := open(s, lexer.TOK_BRACKET_L, ErrNotATable, "expected a table", n.span)
	if err != nil {
		return Node{}, err
	}

	for {
		tok, err = s.Emit()
		if err != nil {
			return Node{}, eof(err, n.span)
		}
		if isSeparator(tok.Type) {
			continue
		}
		if tok.Type == lexer.TOK_BRACKET_R {
			break
		}

		var keyText string
		switch tok.Type {
		case lexer.TOK_SYMBOL:
			keyText = tok.Lexeme
		case lexer.TOK_STRING:
			keyText, err = Unescape(tok.Lexeme, tok.Location)
			if err != nil {
				return Node{}, err
			}
		default:
			return Node{}, newError(ErrUnexpectedToken, tok.Location, "unexpected %s in table", tok.Type.ToString())
		}

		tok, err = s.Emit()
		if err != nil {
			return Node{}, eof(err, n.span)
		}
		if tok.Type != lexer.TOK_COLON {
			return Node{}, newError(ErrExpectedColon, tok.Location, "expected ':' after key '%s'", keyText)
		}

		tok, err = s.Emit()
		if err != nil {
			return Node{}, eof(err, n.span)
		}
		valueSpan, err := valueExtent(s, tok)
		if err != nil {
			return Node{}, err
		}

		if keyText == key {
			return NewNode(n.source, valueSpan), nil
		}
	}

	return Node{}, newError(ErrKeyNotFound, n.span, "key '%s' not found", key)
}

// Vec navigates to the element at index in a vector node.
func Vec(n Node, index int) (Node, error) {
	s := n.scanner()

	_, err := open(s, lexer.TOK_BRACKET_L, ErrNotAVector, "expected a vector", n.span)
	if err != nil {
		return Node{}, err
	}

	current := 0
	for {
		tok, err := s.Emit()
		if err != nil {
			return Node{}, eof(err, n.span)
		}
		if isSeparator(tok.Type) {
			continue
		}
		if tok.Type == lexer.TOK_BRACKET_R {
			break
		}

		elemSpan, err := valueExtent(s, tok)
		if err != nil {
			return Node{}, err
		}

		if current == index {
			return NewNode(n.source, elemSpan), nil
		}
		current++
	}

	return Node{}, newError(ErrIndexOutOfBounds, n.span, "index %d out of bounds", index)
}

// open consumes leading newlines and the expected opening token.
func open(s *lexer.Scanner, want lexer.TokenType, kind ErrorKind, msg string, at parse.Span) (parse.Token, error) {
	for {
		tok, err := s.Emit()
		if err != nil {
			return parse.Token{}, eof(err, at)
		}
		if tok.Type == lexer.TOK_NEWLINE {
			continue
		}
		if tok.Type != want {
			return parse.Token{}, newError(kind, at, msg)
		}
		return tok, nil
	}
}

// valueExtent determines how far a value reaches. A nested bracketed
// container is consumed through its matching close bracket; anything
// else is a single token.
func valueExtent(s *lexer.Scanner, tok parse.Token) (parse.Span, error) {
	switch tok.Type {
	case lexer.TOK_BRACKET_L:
		closing, err := balanced(s)
		if err != nil {
			return parse.Span{}, err
		}
		return parse.Span{Start: tok.Location.Start, End: closing.End}, nil
	case lexer.TOK_SYMBOL, lexer.TOK_STRING:
		return extent(tok), nil
	}
	return parse.Span{}, newError(ErrUnexpectedToken, tok.Location, "unexpected %s in value position", tok.Type.ToString())
}

// balanced consumes tokens until the bracket that opened the current
// container is matched, returning the closing bracket's location.
func balanced(s *lexer.Scanner) (parse.Span, error) {
	depth := 1
	for {
		tok, err := s.Emit()
		if err != nil {
			return parse.Span{}, eof(err, parse.Span{Start: s.Pos, End: s.Pos})
		}

		switch tok.Type {
		case lexer.TOK_BRACKET_L:
			depth++
		case lexer.TOK_BRACKET_R:
			depth--
			if depth == 0 {
				return tok.Location, nil
			}
		}
	}
}

func eof(err error, at parse.Span) error {
	if lexer.IsEndOfInput(err) {
		return newError(ErrUnexpectedEOF, at, "unexpected end of input")
	}
	return err
}

// Text parses a node as a string. Quoted strings are unescaped; bare
// symbols are returned as-is. This is the only place escape sequences
// are interpreted — the lexer always hands out raw spans.
func Text(n Node) (string, error) {
	s := n.scanner()

	tok, err := s.Emit()
	if err != nil {
		if lexer.IsEndOfInput(err) {
			return "", newError(ErrNotAScalar, n.span, "expected a scalar value")
		}
		return "", err
	}

	var text string
	switch tok.Type {
	case lexer.TOK_SYMBOL:
		text = tok.Lexeme
	case lexer.TOK_STRING:
		text, err = Unescape(tok.Lexeme, tok.Location)
		if err != nil {
			return "", err
		}
	default:
		return "", newError(ErrNotAScalar, tok.Location, "expected a scalar value, found %s", tok.Type.ToString())
	}

	// Nothing but trailing newlines may follow a scalar.
	for {
		tok, err = s.Emit()
		if err != nil {
			if lexer.IsEndOfInput(err) {
				return text, nil
			}
			return "", err
		}
		if tok.Type != lexer.TOK_NEWLINE {
			return "", newError(ErrNotAScalar, tok.Location, "expected a scalar value, found %s", tok.Type.ToString())
		}
	}
}

// Unescape resolves the escape sequences in a raw string-token lexeme.
// The location is used for error reporting only.
func Unescape(raw string, loc parse.Span) (string, error) {
	if !strings.ContainsRune(raw, '\\') {
		return raw, nil
	}

	var b strings.Builder
	b.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		if ch != '\\' {
			b.WriteByte(ch)
			continue
		}

		i++
		if i >= len(raw) {
			return "", newError(ErrUnexpectedEOF, loc, "dangling escape at end of string")
		}

		switch raw[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\', '"', ':', '[', ']', ',', ';':
			b.WriteByte(raw[i])
		default:
			return "", newError(ErrInvalidEscape, loc, "invalid escape sequence '\\%c'", raw[i])
		}
	}

	return b.String(), nil
}

// Uint64 parses a node as a 64-bit unsigned integer.
func Uint64(n Node) (uint64, error) {
	text, err := Text(n)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, newError(ErrConversion, n.span, "failed to parse '%s' as uint64", text)
	}
	return v, nil
}

// Double parses a node as a double-precision floating-point number.
func Double(n Node) (float64, error) {
	text, err := Text(n)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, newError(ErrConversion, n.span, "failed to parse '%s' as float64", text)
	}
	return v, nil
}
