/*
 * Copyright (c) 2024-2025, the nosr authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nosr-io/nosr/pkg/common/parse"
	"github.com/nosr-io/nosr/pkg/lexer"
	"github.com/nosr-io/nosr/pkg/repl"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Server lexes documents submitted over HTTP. POST /lex returns the
// token listing as JSON; POST /validate answers whether the document
// tokenizes, rendering a caret diagnostic when it does not.
type Server struct {
	log     zerolog.Logger
	metrics MetricsStore

	port        int
	metricsPort int
}

func New(log zerolog.Logger, port, metricsPort int) Server {
	return Server{
		log,
		NewMetricsStore(),
		port,
		metricsPort,
	}
}

func (s *Server) Metrics() MetricsStore {
	return s.metrics
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) (string, error) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return "", errors.New("method not allowed")
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "unable to read request body", http.StatusBadRequest)
		return "", errors.Wrap(err, "unable to read request body")
	}

	return string(body), nil
}

func (s *Server) tokenize(endpoint, source string) ([]parse.Token, error) {
	start := time.Now()
	tokens, err := lexer.Tokenize(source)
	s.metrics.ObserveLexNS(endpoint, time.Since(start).Nanoseconds())

	if err != nil {
		s.metrics.IncDocuments(endpoint, "error")
		return nil, err
	}

	s.metrics.IncDocuments(endpoint, "ok")
	s.metrics.AddTokens(len(tokens))
	return tokens, nil
}

func (s *Server) HandleLex(w http.ResponseWriter, r *http.Request) {
	source, err := s.readBody(w, r)
	if err != nil {
		return
	}

	tokens, err := s.tokenize("lex", source)
	if err != nil {
		s.log.Debug().Err(err).Msg("rejected document")
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	repl.NewOutputWriter(w, "json").Write(repl.TokenListing{Tokens: tokens})
}

func (s *Server) HandleValidate(w http.ResponseWriter, r *http.Request) {
	source, err := s.readBody(w, r)
	if err != nil {
		return
	}

	_, err = s.tokenize("validate", source)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)

		var serr *parse.ScanError
		if errors.As(err, &serr) {
			fmt.Fprint(w, serr.FormatError(source))
			return
		}
		fmt.Fprintln(w, err.Error())
		return
	}

	fmt.Fprintln(w, "ok")
}

func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/lex", s.HandleLex)
	mux.HandleFunc("/validate", s.HandleValidate)

	s.log.Info().Int("port", s.port).Msg("listening for documents")
	return http.ListenAndServe(fmt.Sprintf(":%d", s.port), mux)
}

func (s *Server) ServeMetrics() {
	s.log.Info().Int("port", s.metricsPort).Msg("/metrics endpoint started")
	http.Handle("/metrics", s.metrics.Handler())
	http.ListenAndServe(fmt.Sprintf(":%d", s.metricsPort), nil)
}
