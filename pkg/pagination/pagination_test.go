// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/countries/pkg/pagination"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  pagination.Params
	}{
		{"defaults", "", pagination.Params{Page: 1, Limit: 20}},
		{"explicit", "?page=3&limit=50", pagination.Params{Page: 3, Limit: 50}},
		{"negative_page", "?page=-2", pagination.Params{Page: 1, Limit: 20}},
		{"limit_too_large", "?limit=1000", pagination.Params{Page: 1, Limit: 20}},
		{"garbage", "?page=x&limit=y", pagination.Params{Page: 1, Limit: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/countries"+tt.query, nil)
			assert.Equal(t, tt.want, pagination.FromRequest(req))
		})
	}
}

func TestRequested(t *testing.T) {
	assert.False(t, pagination.Requested(httptest.NewRequest(http.MethodGet, "/countries?q=fr", nil)))
	assert.True(t, pagination.Requested(httptest.NewRequest(http.MethodGet, "/countries?limit=5", nil)))
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 3, Limit: 20}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 3, Limit: 0}.Offset())
}

func TestParams_OffsetSaturates(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/countries?page="+strconv.Itoa(math.MaxInt)+"&limit=2", nil)
	params := pagination.FromRequest(req)

	assert.Equal(t, math.MaxInt, params.Offset())
	assert.Equal(t, math.MaxInt, pagination.Params{Page: math.MaxInt/2 + 2, Limit: 2}.Offset())
	assert.Equal(t, (math.MaxInt/2)*2, pagination.Params{Page: math.MaxInt/2 + 1, Limit: 2}.Offset())
}

func TestNewMeta(t *testing.T) {
	assert.Equal(t, pagination.Meta{Page: 2, Limit: 20, Total: 250, TotalPages: 13}, pagination.NewMeta(2, 20, 250))
	assert.Equal(t, 0, pagination.NewMeta(1, 0, 10).TotalPages)
}
