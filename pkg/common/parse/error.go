/*
 * Copyright (c) 2024-2025, the nosr authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrEarlyEOF signals that the buffer ended before a lexical construct
// closed.
var ErrEarlyEOF = errors.New("unexpected end of input")

// ScanError records which scan step failed and where in the buffer.
type ScanError struct {
	Op       string
	Location Span
	Err      error
}

func NewScanError(op string, loc Span, err error) *ScanError {
	return &ScanError{Op: op, Location: loc, Err: err}
}

func (s *ScanError) Error() string {
	return fmt.Sprintf("%s: %s at offset %d", s.Op, s.Err, s.Location.Start)
}

func (s *ScanError) Unwrap() error {
	return s.Err
}

// FormatError renders the error with a caret pointing at the offending
// location in the input.
func (s *ScanError) FormatError(input string) string {
	repeat := s.Location.End - s.Location.Start - 1
	if repeat < 0 {
		repeat = 0
	}

	errorString := "Scan error found in input:\n"
	errorString += input
	errorString += fmt.Sprintf("\n%s^%s ", strings.Repeat(" ", s.Location.Start), strings.Repeat("~", repeat))
	errorString += fmt.Sprintf("%s\n", s.Error())
	return errorString
}
