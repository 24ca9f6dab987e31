// Copyright (c) 2026 Filmorate. All rights reserved.

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/filmorate/filmorate/internal/platform/ctxutil"
)

/*
TestRequestID_RoundTrip verifies storage and retrieval of the correlation ID.
*/
func TestRequestID_RoundTrip(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ctxutil.GetRequestID(ctx), "empty context has no request id")

	ctx = ctxutil.WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", ctxutil.GetRequestID(ctx))
}

/*
TestLogger_RoundTrip verifies storage and retrieval of the per-request logger.
*/
func TestLogger_RoundTrip(t *testing.T) {
	ctx := context.Background()

	// Missing logger falls back to the default.
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	custom := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx = ctxutil.WithLogger(ctx, custom)
	assert.Same(t, custom, ctxutil.GetLogger(ctx))
}
