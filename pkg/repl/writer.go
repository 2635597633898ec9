/*
 * Copyright (c) 2024-2025, the nosr authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

type Printable interface {
	Headers() []string
	Values() [][]string
}

type OutputWriter interface {
	Write(v Printable)
}

type DiagWriter struct {
	w io.Writer
}

type CSVWriter struct {
	w io.Writer
}

type TableWriter struct {
	w io.Writer
}

type JSONWriter struct {
	w io.Writer
}

func NewOutputWriter(w io.Writer, t string) OutputWriter {
	switch t {
	case "csv":
		return CSVWriter{
			w,
		}
	case "json":
		return JSONWriter{
			w,
		}
	case "table":
		return TableWriter{
			w,
		}
	}
	return DiagWriter{
		w,
	}
}

// Write renders one "(KIND @ offset)" line per row. The first two
// columns of any Printable are expected to be a kind and an offset.
func (w DiagWriter) Write(v Printable) {
	for _, row := range v.Values() {
		fmt.Fprintf(w.w, "(%s @ %s)\n", row[0], row[1])
	}
}

func (w CSVWriter) Write(v Printable) {
	wtr := csv.NewWriter(w.w)
	wtr.Write(v.Headers())
	wtr.WriteAll(v.Values())
}

func (w TableWriter) Write(v Printable) {
	table := tablewriter.NewWriter(w.w)
	table.SetHeader(v.Headers())
	table.AppendBulk(v.Values())
	table.Render()
}

func (w JSONWriter) Write(v Printable) {
	enc := json.NewEncoder(w.w)
	enc.Encode(v)
}
