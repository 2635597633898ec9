/*
 * Copyright (c) 2024-2025, the nosr authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsStore interface {
	Registry() *prometheus.Registry
	RegisterCollector(c prometheus.Collector)
	Handler() http.Handler

	// Collection
	IncDocuments(endpoint, outcome string)
	AddTokens(n int)
	ObserveLexNS(endpoint string, t int64)
}

type metricsStore struct {
	registry  *prometheus.Registry
	Documents *prometheus.CounterVec
	Tokens    prometheus.Counter
	LexNS     *prometheus.HistogramVec
}

var (
	EndpointLabel = "endpoint"
	OutcomeLabel  = "outcome"
)

func NewMetricsStore() MetricsStore {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsAll),
		),
	)

	buckets := []float64{}
	for i := 1; i < 20; i++ {
		buckets = append(buckets, float64(2*i*int(time.Microsecond)))
	}

	factory := promauto.With(reg)
	return &metricsStore{
		registry: reg,
		Documents: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nosr_documents",
			Help: "The total number of documents scanned, by endpoint and outcome",
		}, []string{EndpointLabel, OutcomeLabel}),
		Tokens: factory.NewCounter(prometheus.CounterOpts{
			Name: "nosr_tokens",
			Help: "The total number of tokens produced",
		}),
		LexNS: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nosr_lex_ns",
			Help:    "Time spent tokenizing submitted documents",
			Buckets: buckets,
		}, []string{EndpointLabel}),
	}
}

func (ms *metricsStore) Registry() *prometheus.Registry {
	return ms.registry
}

func (ms *metricsStore) RegisterCollector(c prometheus.Collector) {
	ms.registry.MustRegister(c)
}

func (ms *metricsStore) Handler() http.Handler {
	return promhttp.HandlerFor(ms.Registry(), promhttp.HandlerOpts{Registry: ms.Registry()})
}

func (ms *metricsStore) IncDocuments(endpoint, outcome string) {
	ms.Documents.With(prometheus.Labels{EndpointLabel: endpoint, OutcomeLabel: outcome}).Inc()
}

func (ms *metricsStore) AddTokens(n int) {
	ms.Tokens.Add(float64(n))
}

func (ms *metricsStore) ObserveLexNS(endpoint string, t int64) {
	ms.LexNS.
		With(prometheus.Labels{EndpointLabel: endpoint}).
		Observe(float64(t))
}
