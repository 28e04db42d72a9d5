// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

// Package metrics defines all custom Prometheus metrics for the VineVault
// platform service. It is the single source of truth for metric names,
// labels, and help strings. Metrics register themselves with the default
// registry via promauto at init time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vinevault"

// AuthOperationsTotal counts session-service operations by outcome.
// Labels:
//   - operation: "login", "register", "logout", "check_session", ...
//   - outcome: "success" or "error"
var AuthOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_operations_total",
		Help:      "Total number of session-service operations, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// LocaleRedirectsTotal counts requests redirected to their canonical
// locale-prefixed path.
// Label:
//   - locale: the locale code of the canonical target
var LocaleRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "locale_redirects_total",
		Help:      "Total number of redirects to canonical locale paths, by target locale.",
	},
	[]string{"locale"},
)

// ProviderRequestDuration measures identity-provider round trips.
// Labels:
//   - method: the provider operation name (e.g. "create_email_session")
//   - outcome: "success" or "error"
var ProviderRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "provider_request_duration_seconds",
		Help:      "Duration of identity-provider requests, by method and outcome.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "outcome"},
)

// SessionsSweptTotal counts expired sessions removed by the sweeper worker.
var SessionsSweptTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_swept_total",
		Help:      "Total number of expired sessions removed by the background sweeper.",
	},
)

// HTTPRequestDuration measures inbound request handling.
// Labels:
//   - route: the chi route pattern
//   - code: the response status code
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of inbound HTTP requests, by route pattern and status code.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"route", "code"},
)
