// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

// Package http implements the HTTP transport layer of the platform service.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Locale normalization, session-cookie authentication,
// logging, tracing, and metrics concerns are all handled at this layer
// before requests are forwarded to the service layer.
package http
