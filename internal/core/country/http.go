// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package country

import (
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/taibuivan/countries/internal/platform/apperr"
	"github.com/taibuivan/countries/internal/platform/constants"
	"github.com/taibuivan/countries/internal/platform/middleware"
	requestutil "github.com/taibuivan/countries/internal/platform/request"
	"github.com/taibuivan/countries/internal/platform/respond"
	"github.com/taibuivan/countries/internal/platform/validate"
	"github.com/taibuivan/countries/pkg/pagination"
)

const (
	maxCodeLength   = 8
	maxSearchLength = 100
)

// Handler exposes the country surfaces over HTTP.
type Handler struct {
	service  *Service
	upgrader websocket.Upgrader
}

// NewHandler creates a handler backed by service.
//
// origins is the CORS policy. WebSocket handshakes on the live feed accept
// same-host origins plus whatever the CORS policy accepts. Requests without
// an Origin header (non-browser clients) are always accepted.
func NewHandler(service *Service, origins middleware.AppConfig) *Handler {
	return &Handler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(request *http.Request) bool {
				return checkOrigin(request, origins)
			},
		},
	}
}

// Routes returns the router mounted under /countries.
//
// The live feed sits outside the request timeout because it is long-lived.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(router chi.Router) {
		router.Use(chimw.Timeout(constants.GlobalRequestTimeout))
		router.Get("/", handler.listCountries)
		router.Post("/reload", handler.reloadCountries)
		router.Get("/{code}", handler.getCountry)
	})

	router.Get("/watch", handler.watchCountries)

	return router
}

// listCountries handles GET /countries.
func (handler *Handler) listCountries(writer http.ResponseWriter, request *http.Request) {
	search := requestutil.Query(request, "q")

	validator := &validate.Validator{}
	if err := validator.MaxLen("q", search, maxSearchLength).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	query := ListQuery{Search: search}
	if pagination.Requested(request) {
		query.Paginate = true
		query.Page = pagination.FromRequest(request)
	}

	view, meta := handler.service.List(query)

	if requestutil.WantsText(request) {
		respond.Text(writer, http.StatusOK, func(w io.Writer) error { return WriteList(w, view) })
		return
	}

	if meta != nil {
		respond.Paginated(writer, view, *meta)
		return
	}
	respond.OK(writer, view)
}

// getCountry handles GET /countries/{code}.
func (handler *Handler) getCountry(writer http.ResponseWriter, request *http.Request) {
	code := requestutil.Param(request, "code")

	validator := &validate.Validator{}
	err := validator.
		Required("code", code).
		Letters("code", code).
		MaxLen("code", code, maxCodeLength).
		Err()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view := handler.service.Detail(code)

	if requestutil.WantsText(request) {
		status := http.StatusOK
		if view.Phase == PhaseNotFound {
			status = http.StatusNotFound
		}
		respond.Text(writer, status, func(w io.Writer) error { return WriteDetail(w, view) })
		return
	}

	if view.Phase == PhaseNotFound {
		respond.Error(writer, request, apperr.NotFound("Country"))
		return
	}
	respond.OK(writer, view)
}

// reloadCountries handles POST /countries/reload.
func (handler *Handler) reloadCountries(writer http.ResponseWriter, request *http.Request) {
	state := handler.service.Reload()
	respond.Accepted(writer, state.Summary())
}

// checkOrigin vets the Origin header of a WebSocket handshake.
func checkOrigin(request *http.Request, origins middleware.AppConfig) bool {
	origin := request.Header.Get(constants.HeaderOrigin)
	if origin == "" {
		return true
	}

	if parsed, err := url.Parse(origin); err == nil && strings.EqualFold(parsed.Host, request.Host) {
		return true
	}

	return origins != nil && middleware.OriginAllowed(origins, origin)
}
