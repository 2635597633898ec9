/*
 * Copyright (c) 2024-2025, the nosr authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package nosr

import (
	"github.com/nosr-io/nosr/pkg/common/parse"
	"github.com/nosr-io/nosr/pkg/lexer"
)

// Document wraps a source buffer in a root node covering its content.
// The input is lexed through once to find the content's extent and to
// surface lex errors up front; navigating the tree stays lazy.
func Document(source string) (Node, error) {
	s := lexer.Scanner{Input: source}

	first, err := s.Emit()
	for err == nil && first.Type == lexer.TOK_NEWLINE {
		first, err = s.Emit()
	}
	if err != nil {
		if lexer.IsEndOfInput(err) {
			// Empty document.
			return NewNode(source, parse.Span{}), nil
		}
		return Node{}, err
	}

	span := extent(first)
	for {
		tok, err := s.Emit()
		if err != nil {
			if lexer.IsEndOfInput(err) {
				break
			}
			return Node{}, err
		}
		if tok.Type != lexer.TOK_NEWLINE {
			span.End = extent(tok).End
		}
	}

	return NewNode(source, span), nil
}
