// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package country

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/taibuivan/countries/pkg/fold"
	"github.com/taibuivan/countries/pkg/pagination"
	"github.com/taibuivan/countries/pkg/slice"
)

// PhaseNotFound is the detail phase for a loaded catalogue that has no such code.
// It never appears in a [State].
const PhaseNotFound Phase = "not_found"

// # Views

// ListView is the render-ready content of the list surface.
type ListView struct {
	Phase     Phase      `json:"phase"`
	Countries []*Country `json:"countries"`
	Message   string     `json:"message,omitempty"`
	Version   uint64     `json:"version"`
}

// DetailView is the render-ready content of the detail surface.
type DetailView struct {
	Phase   Phase    `json:"phase"`
	Code    string   `json:"code"`
	Country *Country `json:"country,omitempty"`
	Message string   `json:"message,omitempty"`
	Version uint64   `json:"version"`
}

// ListQuery narrows the list surface.
type ListQuery struct {
	// Search keeps countries whose name contains it, ignoring case and accents.
	Search string
	// Page selects a window of the filtered list when Paginate is set.
	Page     pagination.Params
	Paginate bool
}

// # Service Layer

// Service derives the list and detail surfaces from the shared [StateStore].
type Service struct {
	store  *StateStore
	logger *slog.Logger
}

// NewService constructs a new country [Service].
func NewService(store *StateStore, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

/*
List builds the list surface from the current state.

Outside [PhaseSuccess] the view carries no countries. With an empty query the
full list is returned in fetch order.

Returns:
  - ListView: the surface content
  - pagination.Meta: set only when the state is successful and q.Paginate is true
*/
func (service *Service) List(q ListQuery) (ListView, *pagination.Meta) {
	state := service.store.State()

	view := ListView{
		Phase:     state.Phase,
		Countries: []*Country{},
		Message:   state.Message,
		Version:   state.Version,
	}

	if state.Phase != PhaseSuccess {
		return view, nil
	}

	countries := state.Countries
	if q.Search != "" {
		countries = slice.Filter(countries, func(country *Country) bool {
			return fold.Contains(country.Name, q.Search)
		})
	}

	if !q.Paginate {
		view.Countries = countries
		return view, nil
	}

	meta := pagination.NewMeta(q.Page.Page, q.Page.Limit, len(countries))
	view.Countries = slice.Page(countries, q.Page.Offset(), q.Page.Limit)
	return view, &meta
}

/*
Detail resolves code against the already-loaded list.

Resolution order:
 1. A matching country (case-insensitive) yields [PhaseSuccess].
 2. A catalogue still loading yields [PhaseLoading].
 3. A failed catalogue yields [PhaseError] with its message.
 4. Anything else yields [PhaseNotFound].
*/
func (service *Service) Detail(code string) DetailView {
	state := service.store.State()

	view := DetailView{Code: code, Version: state.Version}

	if country, found := FindByCode(state.Countries, code); found {
		view.Phase = PhaseSuccess
		view.Country = country
		return view
	}

	switch state.Phase {
	case PhaseLoading:
		view.Phase = PhaseLoading
	case PhaseError:
		view.Phase = PhaseError
		view.Message = state.Message
	default:
		view.Phase = PhaseNotFound
	}

	return view
}

// Reload is the manual retry action. It returns the snapshot observed right
// after the request, normally Loading.
func (service *Service) Reload() State {
	service.store.Load()
	state := service.store.State()

	service.logger.Info("countries_reload_requested", slog.Uint64("version", state.Version))

	return state
}

// Subscribe exposes the state stream for live surfaces.
func (service *Service) Subscribe() (<-chan State, func()) {
	return service.store.Subscribe()
}

// Done is closed when the underlying store scope ends.
func (service *Service) Done() <-chan struct{} {
	return service.store.Done()
}

// Ready reports whether the catalogue has loaded successfully.
func (service *Service) Ready() error {
	state := service.store.State()

	switch state.Phase {
	case PhaseSuccess:
		return nil
	case PhaseError:
		return fmt.Errorf("catalogue fetch failed: %s", state.Message)
	default:
		return errors.New("catalogue is loading")
	}
}
