/*
 * Copyright (c) 2024-2025, the nosr authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andreyvit/diff"
	"github.com/nosr-io/nosr/pkg/lexer"
)

func TestDiagWriter(t *testing.T) {
	tokens, err := lexer.Tokenize("a: [b, \"c\"]")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	var buf bytes.Buffer
	NewOutputWriter(&buf, "diag").Write(TokenListing{Tokens: tokens})

	expected := strings.Join([]string{
		"(TOK_SYMBOL @ 0)",
		"(TOK_COLON @ 1)",
		"(TOK_BRACKET_L @ 3)",
		"(TOK_SYMBOL @ 4)",
		"(TOK_COMMA @ 5)",
		"(TOK_STRING @ 8)",
		"(TOK_BRACKET_R @ 10)",
	}, "\n")

	if a, e := strings.TrimSpace(buf.String()), expected; a != e {
		t.Errorf("Expectation not met:\n%s", diff.LineDiff(e, a))
	}
}

func TestCSVWriter(t *testing.T) {
	tokens, err := lexer.Tokenize("x,y")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	var buf bytes.Buffer
	NewOutputWriter(&buf, "csv").Write(TokenListing{Tokens: tokens})

	expected := strings.Join([]string{
		"TYPE,START,END,LEXEME",
		"TOK_SYMBOL,0,1,x",
		"TOK_COMMA,1,2,\",\"",
		"TOK_SYMBOL,2,3,y",
	}, "\n")

	if a, e := strings.TrimSpace(buf.String()), expected; a != e {
		t.Errorf("Expectation not met:\n%s", diff.LineDiff(e, a))
	}
}
