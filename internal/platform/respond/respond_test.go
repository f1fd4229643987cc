// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/countries/internal/platform/apperr"
	"github.com/taibuivan/countries/internal/platform/respond"
	"github.com/taibuivan/countries/pkg/pagination"
)

func TestOK_WrapsDataEnvelope(t *testing.T) {
	rr := httptest.NewRecorder()

	respond.OK(rr, map[string]string{"code": "FR"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"code":"FR"}}`, rr.Body.String())
}

func TestAccepted_Returns202(t *testing.T) {
	rr := httptest.NewRecorder()

	respond.Accepted(rr, map[string]string{"phase": "loading"})

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.JSONEq(t, `{"data":{"phase":"loading"}}`, rr.Body.String())
}

func TestPaginated_IncludesMeta(t *testing.T) {
	rr := httptest.NewRecorder()

	respond.Paginated(rr, []string{"FR"}, pagination.NewMeta(1, 20, 1))

	assert.JSONEq(t, `{"data":["FR"],"meta":{"page":1,"limit":20,"total":1,"total_pages":1}}`, rr.Body.String())
}

func TestText_WritesPlainBody(t *testing.T) {
	rr := httptest.NewRecorder()

	respond.Text(rr, http.StatusOK, func(w io.Writer) error {
		_, err := fmt.Fprint(w, "hello")
		return err
	})

	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "hello", rr.Body.String())
}

func TestError_AppError(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	respond.Error(rr, req, apperr.NotFound("Country"))

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var body respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body.Code)
	assert.Equal(t, "Country not found", body.Error)
}

func TestError_PlainErrorIsHidden(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	respond.Error(rr, req, errors.New("dial tcp: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "connection refused")
	assert.Contains(t, rr.Body.String(), "INTERNAL_ERROR")
}

func TestError_RateLimitedSetsRetryAfter(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	respond.Error(rr, req, apperr.RateLimited(3))

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "3", rr.Header().Get("Retry-After"))
	assert.NotContains(t, rr.Body.String(), "RetryAfter")
}
