/*
 * Copyright (c) 2024-2025, the nosr authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/nosr-io/nosr/pkg/lexer"
	"github.com/nosr-io/nosr/pkg/nosr"
)

/*
 * This exercises concurrent lexing of independent buffers. Each
 * goroutine builds documents around fresh UUIDs, tokenizes them, and
 * navigates back to the id to check the round trip.
 */

func main() {
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < 1000; j++ {
				id := uuid.NewString()
				doc := fmt.Sprintf("[ id: \"%s\"; seq: %d, tags: [a, b, c] ]", id, j)

				if _, err := lexer.Tokenize(doc); err != nil {
					fmt.Fprintln(os.Stderr, "lex failed:", err)
					os.Exit(1)
				}

				root, err := nosr.Document(doc)
				if err != nil {
					os.Exit(1)
				}

				node, err := nosr.Tab(root, "id")
				if err != nil {
					os.Exit(1)
				}

				text, err := nosr.Text(node)
				if err != nil || text != id {
					fmt.Fprintln(os.Stderr, "round trip failed for", id)
					os.Exit(1)
				}
			}
		}()
	}

	wg.Wait()
}
