/*
 * Copyright (c) 2024-2025, the nosr authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nosr-io/nosr/pkg/server"
	"github.com/rs/zerolog"
)

func TestHandleValidate(t *testing.T) {
	srv := server.New(zerolog.Nop(), 0, 0)

	rec := httptest.NewRecorder()
	srv.HandleValidate(rec, httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader("[ a: 1 ]")))

	if rec.Code != http.StatusOK {
		t.Error("wanted 200, got", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "ok" {
		t.Errorf("wanted 'ok', got %q", rec.Body.String())
	}
}

func TestHandleValidateLexError(t *testing.T) {
	srv := server.New(zerolog.Nop(), 0, 0)

	rec := httptest.NewRecorder()
	srv.HandleValidate(rec, httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader(`[ a: "oops ]`)))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Error("wanted 422, got", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "^") {
		t.Errorf("wanted a caret diagnostic, got %q", rec.Body.String())
	}
}

func TestHandleLex(t *testing.T) {
	srv := server.New(zerolog.Nop(), 0, 0)

	rec := httptest.NewRecorder()
	srv.HandleLex(rec, httptest.NewRequest(http.MethodPost, "/lex", strings.NewReader("a: b")))

	if rec.Code != http.StatusOK {
		t.Error("wanted 200, got", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "tokens") {
		t.Errorf("wanted a token listing, got %q", rec.Body.String())
	}
}

func TestHandleLexRejectsGet(t *testing.T) {
	srv := server.New(zerolog.Nop(), 0, 0)

	rec := httptest.NewRecorder()
	srv.HandleLex(rec, httptest.NewRequest(http.MethodGet, "/lex", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Error("wanted 405, got", rec.Code)
	}
}
