/*
 * Copyright (c) 2024-2025, the nosr authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package nosr

import (
	"errors"
	"strings"
	"testing"

	"github.com/nosr-io/nosr/pkg/common/parse"
)

func TestTabSimple(t *testing.T) {
	root, err := Document("[ name: Alice ]")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	name, err := Tab(root, "name")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	got, err := Text(name)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got != "Alice" {
		t.Errorf("wanted 'Alice', got %q", got)
	}
}

func TestTabNested(t *testing.T) {
	source := "[\n\tperson: [\n\t\tname: Alice\n\t]\n]"

	root, err := Document(source)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	person, err := Tab(root, "person")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	if !strings.HasPrefix(person.Raw(), "[") {
		t.Errorf("wanted a bracketed region, got %q", person.Raw())
	}

	name, err := Tab(person, "name")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	got, err := Text(name)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got != "Alice" {
		t.Errorf("wanted 'Alice', got %q", got)
	}
}

func TestTabQuotedKey(t *testing.T) {
	root, err := Document(`[ "full name": "Ada Lovelace" ]`)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	name, err := Tab(root, "full name")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	got, err := Text(name)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got != "Ada Lovelace" {
		t.Errorf("wanted 'Ada Lovelace', got %q", got)
	}
}

func TestTabKeyNotFound(t *testing.T) {
	root, err := Document("[ a: 1, b: 2 ]")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	_, err = Tab(root, "c")
	if err == nil {
		t.Fatal("wanted an error, got none")
	}

	var nerr *Error
	if !errors.As(err, &nerr) || nerr.Kind != ErrKeyNotFound {
		t.Errorf("wanted ErrKeyNotFound, got %v", err)
	}
}

func TestTabNotATable(t *testing.T) {
	root, err := Document("hello")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	_, err = Tab(root, "a")
	if err == nil {
		t.Fatal("wanted an error, got none")
	}

	var nerr *Error
	if !errors.As(err, &nerr) || nerr.Kind != ErrNotATable {
		t.Errorf("wanted ErrNotATable, got %v", err)
	}
}

func TestTabMissingColon(t *testing.T) {
	root, err := Document("[ a 1 ]")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	_, err = Tab(root, "a")
	var nerr *Error
	if !errors.As(err, &nerr) || nerr.Kind != ErrExpectedColon {
		t.Errorf("wanted ErrExpectedColon, got %v", err)
	}
}

func TestTabUnterminated(t *testing.T) {
	root := NewNode("[ a: 1", parse.Span{Start: 0, End: 6})

	_, err := Tab(root, "b")
	var nerr *Error
	if !errors.As(err, &nerr) || nerr.Kind != ErrUnexpectedEOF {
		t.Errorf("wanted ErrUnexpectedEOF, got %v", err)
	}
}

func TestVecSimple(t *testing.T) {
	root, err := Document("[hello, world]")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	for i, want := range []string{"hello", "world"} {
		elem, err := Vec(root, i)
		if err != nil {
			t.Fatal("unexpected error:", err)
		}

		got, err := Text(elem)
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		if got != want {
			t.Errorf("element %d: wanted %q, got %q", i, want, got)
		}
	}
}

func TestVecNested(t *testing.T) {
	root, err := Document("[[a, b], [c, d]]")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	second, err := Vec(root, 1)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	elem, err := Vec(second, 0)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	got, err := Text(elem)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got != "c" {
		t.Errorf("wanted 'c', got %q", got)
	}
}

func TestVecOutOfBounds(t *testing.T) {
	root, err := Document("[a, b]")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	_, err = Vec(root, 2)
	var nerr *Error
	if !errors.As(err, &nerr) || nerr.Kind != ErrIndexOutOfBounds {
		t.Errorf("wanted ErrIndexOutOfBounds, got %v", err)
	}
}

func TestTextUnquoted(t *testing.T) {
	root, err := Document("hello")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	got, err := Text(root)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got != "hello" {
		t.Errorf("wanted 'hello', got %q", got)
	}
}

func TestTextQuoted(t *testing.T) {
	root, err := Document(`"hello world"`)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	got, err := Text(root)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got != "hello world" {
		t.Errorf("wanted 'hello world', got %q", got)
	}
}

func TestTextWithEscapes(t *testing.T) {
	root, err := Document(`"a\"b\"c\nd"`)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	got, err := Text(root)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got != "a\"b\"c\nd" {
		t.Errorf("wanted escapes resolved, got %q", got)
	}
}

func TestTextInvalidEscape(t *testing.T) {
	root, err := Document(`"a\qb"`)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	_, err = Text(root)
	var nerr *Error
	if !errors.As(err, &nerr) || nerr.Kind != ErrInvalidEscape {
		t.Errorf("wanted ErrInvalidEscape, got %v", err)
	}
}

func TestTextNotAScalar(t *testing.T) {
	root, err := Document("[a, b]")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	_, err = Text(root)
	var nerr *Error
	if !errors.As(err, &nerr) || nerr.Kind != ErrNotAScalar {
		t.Errorf("wanted ErrNotAScalar, got %v", err)
	}
}

func TestUint64(t *testing.T) {
	root, err := Document("42")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	v, err := Uint64(root)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if v != 42 {
		t.Error("wanted 42, got", v)
	}
}

func TestUint64Invalid(t *testing.T) {
	root, err := Document("forty-two")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	_, err = Uint64(root)
	var nerr *Error
	if !errors.As(err, &nerr) || nerr.Kind != ErrConversion {
		t.Errorf("wanted ErrConversion, got %v", err)
	}
}

func TestDouble(t *testing.T) {
	root, err := Document("3.14159")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	v, err := Double(root)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if v < 3.14158 || v > 3.14160 {
		t.Error("wanted 3.14159, got", v)
	}
}

func TestUnescape(t *testing.T) {
	got, err := Unescape(`a\\b\:c\[d\]e`, parse.Span{Start: 0, End: 13})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got != `a\b:c[d]e` {
		t.Errorf("wanted 'a\\b:c[d]e', got %q", got)
	}
}
