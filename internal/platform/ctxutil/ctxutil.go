// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package ctxutil reads and writes the per-request values of the countries API.

Two values travel with every request:

  - the correlation ID echoed in X-Request-ID and attached to error logs
  - a logger already tagged with request_id, method, path and ip

Handlers that outlive the request timeout, such as the WebSocket feed, keep
using the logger taken from the upgrade request.
*/
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/countries/internal/platform/ctxkey"
)

// # Correlation ID

// WithRequestID attaches the correlation ID to ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID returns the correlation ID, or "" outside the HTTP chain.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Request Logger

// WithLogger attaches the request-scoped logger to ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger returns the request-scoped logger. Code running outside the HTTP
// chain (the CLI, store fetches, tests) gets [slog.Default].
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}
