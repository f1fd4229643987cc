// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/countries/internal/platform/apperr"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperr.AppError
		code   string
		status int
	}{
		{name: "not found", err: apperr.NotFound("Country"), code: "NOT_FOUND", status: http.StatusNotFound},
		{name: "validation", err: apperr.ValidationError("bad code"), code: "VALIDATION_ERROR", status: http.StatusBadRequest},
		{name: "rate limited", err: apperr.RateLimited(2), code: "RATE_LIMITED", status: http.StatusTooManyRequests},
		{name: "internal", err: apperr.Internal(nil), code: "INTERNAL_ERROR", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.Error())
		})
	}

	assert.Equal(t, 2, apperr.RateLimited(2).RetryAfter)
	assert.Zero(t, apperr.NotFound("Country").RetryAfter)
}

func TestAs(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	wrapped := fmt.Errorf("handler: %w", apperr.Internal(cause))

	found := apperr.As(wrapped)
	require.NotNil(t, found)
	assert.Equal(t, "INTERNAL_ERROR", found.Code)
	assert.ErrorIs(t, wrapped, cause)

	assert.Nil(t, apperr.As(cause))
}
