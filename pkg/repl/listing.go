/*
 * Copyright (c) 2024-2025, the nosr authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"strconv"

	"github.com/nosr-io/nosr/pkg/common/parse"
)

// TokenListing adapts a token stream to the output writers.
type TokenListing struct {
	Tokens []parse.Token `json:"tokens"`
}

func (l TokenListing) Headers() []string {
	return []string{"TYPE", "START", "END", "LEXEME"}
}

func (l TokenListing) Values() [][]string {
	rows := make([][]string, 0, len(l.Tokens))
	for _, t := range l.Tokens {
		rows = append(rows, []string{
			t.Type.ToString(),
			strconv.Itoa(t.Location.Start),
			strconv.Itoa(t.Location.End),
			t.Lexeme,
		})
	}
	return rows
}
