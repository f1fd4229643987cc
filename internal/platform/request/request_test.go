// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	requestutil "github.com/taibuivan/countries/internal/platform/request"
)

func TestParam(t *testing.T) {
	var got string

	router := chi.NewRouter()
	router.Get("/countries/{code}", func(_ http.ResponseWriter, request *http.Request) {
		got = requestutil.Param(request, "code")
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/countries/%20fr%20", nil))

	assert.Equal(t, "fr", got)
}

func TestQuery(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/?q=+peru+", nil)

	assert.Equal(t, "peru", requestutil.Query(request, "q"))
	assert.Empty(t, requestutil.Query(request, "missing"))
}

func TestWantsText(t *testing.T) {
	tests := []struct {
		name   string
		target string
		accept string
		want   bool
	}{
		{name: "default", target: "/", want: false},
		{name: "format param", target: "/?format=text", want: true},
		{name: "other format", target: "/?format=json", want: false},
		{name: "accept header", target: "/", accept: "text/plain; charset=utf-8", want: true},
		{name: "json accept", target: "/", accept: "application/json", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.accept != "" {
				request.Header.Set("Accept", tt.accept)
			}
			assert.Equal(t, tt.want, requestutil.WantsText(request))
		})
	}
}
