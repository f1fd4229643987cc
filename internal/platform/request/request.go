// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and content
negotiation, so handlers never touch chi or raw headers directly.
*/
package requestutil

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

const (
	formatParam = "format"
	formatText  = "text"
	mimeText    = "text/plain"
)

/*
Param retrieves a named URL parameter from the request, trimmed of surrounding
whitespace.
*/
func Param(request *http.Request, name string) string {
	return strings.TrimSpace(chi.URLParam(request, name))
}

/*
Query retrieves a query-string value, trimmed of surrounding whitespace.
*/
func Query(request *http.Request, name string) string {
	return strings.TrimSpace(request.URL.Query().Get(name))
}

/*
WantsText reports whether the client asked for a plain-text rendering.

Either "?format=text" or an Accept header starting with "text/plain" selects
text. Everything else gets JSON.
*/
func WantsText(request *http.Request) bool {
	if Query(request, formatParam) == formatText {
		return true
	}
	return strings.HasPrefix(request.Header.Get("Accept"), mimeText)
}
