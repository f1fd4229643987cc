// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey holds the context keys the HTTP chain uses to hand the
// correlation ID and the request-scoped logger down to the country handlers
// and the live feed.
package ctxkey

// key is unexported so values can only be stored and read through ctxutil.
type key int

const (
	// KeyRequestID carries the X-Request-ID value set by middleware.RequestID.
	KeyRequestID key = iota

	// KeyLogger carries the *slog.Logger built by middleware.StructuredLogger.
	KeyLogger
)
