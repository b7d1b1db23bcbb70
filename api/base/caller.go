// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

// Package base provides the authenticated transport that the API
// client packages use to reach an org's Tooling REST API.
package base

import (
	"context"
)

// Caller issues requests against an authenticated org. Paths are
// relative to the org's versioned REST root.
type Caller interface {
	// Get performs a GET request, decoding the JSON response into
	// result when result is non-nil.
	Get(ctx context.Context, path string, result interface{}) error

	// Post performs a POST request with a JSON-encoded body, decoding
	// the JSON response into result when result is non-nil.
	Post(ctx context.Context, path string, body, result interface{}) error

	// Query runs a SOQL query against the Tooling API.
	Query(ctx context.Context, soql string, result interface{}) error
}

// APICallCloser is the interface handed to API clients.
type APICallCloser interface {
	Caller

	// Close releases resources held by the connection.
	Close() error
}
