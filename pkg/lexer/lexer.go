/*
 * Copyright (c) 2024-2025, the nosr authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lexer

import (
	"github.com/nosr-io/nosr/pkg/common/parse"
	"github.com/pkg/errors"
)

// Scan step names reported by ScanError.
const (
	OpLex    = "lex"
	OpString = "string"
	OpSymbol = "symbol"
)

// Next produces the next token from the given remaining span of
// source. Scanning is stateless: the caller owns the remaining-input
// span and advances it after each token. Whitespace other than
// newlines is skipped transparently. A remaining span holding nothing
// but whitespace fails with ErrEarlyEOF; see IsEndOfInput.
func Next(source string, remaining parse.Span) (parse.Token, error) {
	pos := remaining.Start
	for pos < remaining.End {
		switch source[pos] {
		case '\\':
			return punctuation(source, TOK_BACKSLASH, pos), nil
		case '[':
			return punctuation(source, TOK_BRACKET_L, pos), nil
		case ']':
			return punctuation(source, TOK_BRACKET_R, pos), nil
		case ':':
			return punctuation(source, TOK_COLON, pos), nil
		case ',':
			return punctuation(source, TOK_COMMA, pos), nil
		case '"':
			return NextString(source, parse.Span{Start: pos + 1, End: remaining.End})
		case '\n':
			return punctuation(source, TOK_NEWLINE, pos), nil
		case ';':
			return punctuation(source, TOK_SEMICOLON, pos), nil
		case '\r', '\t', ' ':
			pos++
		default:
			return NextSymbol(source, parse.Span{Start: pos, End: remaining.End})
		}
	}

	return parse.Token{}, parse.NewScanError(OpLex, parse.Span{Start: pos, End: pos}, parse.ErrEarlyEOF)
}

func punctuation(source string, t TokenType, pos int) parse.Token {
	loc := parse.Span{Start: pos, End: pos + 1}
	return parse.Token{Type: t, Lexeme: loc.Extract(source), Location: loc}
}

// NextString scans a double-quoted string body. The opening quote has
// already been consumed by the dispatcher; the produced lexeme spans
// the raw contents up to the matching unescaped closing quote, which
// is not part of the lexeme. Escape sequences are left as-is; resolving
// them is a downstream concern.
func NextString(source string, remaining parse.Span) (parse.Token, error) {
	pos := remaining.Start
	for pos < remaining.End {
		switch source[pos] {
		case '\\':
			// The escaped byte is content, never a delimiter. Walking
			// two bytes at a time keeps an escaped backslash from
			// also escaping a following quote.
			pos += 2
		case '"':
			loc := parse.Span{Start: remaining.Start, End: pos}
			return parse.Token{Type: TOK_STRING, Lexeme: loc.Extract(source), Location: loc}, nil
		default:
			pos++
		}
	}

	loc := parse.Span{Start: remaining.Start - 1, End: remaining.End}
	return parse.Token{}, parse.NewScanError(OpString, loc, parse.ErrEarlyEOF)
}

// NextSymbol scans a maximal run of bare-word bytes starting at the
// span's first byte. The delimiter ending the run is not consumed;
// end-of-buffer terminates a symbol without error.
func NextSymbol(source string, remaining parse.Span) (parse.Token, error) {
	if remaining.Start >= remaining.End {
		loc := parse.Span{Start: remaining.Start, End: remaining.Start}
		return parse.Token{}, parse.NewScanError(OpSymbol, loc, parse.ErrEarlyEOF)
	}

	pos := remaining.Start
	for pos < remaining.End && !isDelimiter(source[pos]) {
		pos++
	}

	loc := parse.Span{Start: remaining.Start, End: pos}
	return parse.Token{Type: TOK_SYMBOL, Lexeme: loc.Extract(source), Location: loc}, nil
}

func isDelimiter(ch byte) bool {
	switch ch {
	case '\\', '[', ']', ':', ',', ';', '"', '\n', '\r', '\t', ' ':
		return true
	}
	return false
}

// IsEndOfInput reports whether err is a dispatcher-level early EOF,
// meaning nothing but whitespace remained before the buffer end. Any
// other scan failure is a genuine lex error.
func IsEndOfInput(err error) bool {
	var serr *parse.ScanError
	return errors.As(err, &serr) && serr.Op == OpLex
}

// consumed returns the first offset past everything tok consumed. For
// string tokens that includes the terminating quote, which is not part
// of the lexeme.
func consumed(tok parse.Token) int {
	if tok.Type == TOK_STRING {
		return tok.Location.End + 1
	}
	return tok.Location.End
}

// Tokenize scans source left to right and materializes the full token
// stream. A lex error aborts tokenization of the remaining input.
func Tokenize(source string) ([]parse.Token, error) {
	var tokens []parse.Token

	remaining := parse.Span{Start: 0, End: len(source)}
	for remaining.Start < remaining.End {
		tok, err := Next(source, remaining)
		if err != nil {
			if IsEndOfInput(err) {
				// Only trailing whitespace was left.
				break
			}
			return nil, err
		}
		tokens = append(tokens, tok)
		remaining.Start = consumed(tok)
	}

	return tokens, nil
}

// Scanner is a cursor over a single source buffer, for callers that
// want to pull tokens one at a time. It holds no scanning state beyond
// the position to resume from.
type Scanner struct {
	Input string
	Pos   int
}

// Emit returns the next token on Scanner.Input, advancing past it.
func (s *Scanner) Emit() (parse.Token, error) {
	tok, err := Next(s.Input, parse.Span{Start: s.Pos, End: len(s.Input)})
	if err != nil {
		return tok, err
	}
	s.Pos = consumed(tok)
	return tok, nil
}
