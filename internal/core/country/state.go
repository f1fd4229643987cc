// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package country

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/countries/internal/platform/constants"
)

// # View State

// Phase is the variant of the view state.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// phaseNames lists every state phase, for gauges that track the current one.
var phaseNames = []string{string(PhaseLoading), string(PhaseSuccess), string(PhaseError)}

// unknownErrorMessage replaces empty error messages so Error states are never blank.
const unknownErrorMessage = "unknown error"

// State is one snapshot of the catalogue view state.
//
// Countries is set only in [PhaseSuccess] and Message only in [PhaseError].
// The Countries slice is shared between snapshots and must not be modified.
type State struct {
	Phase     Phase      `json:"phase"`
	Countries []*Country `json:"countries,omitempty"`
	Message   string     `json:"message,omitempty"`
	Version   uint64     `json:"version"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Summary is the compact form of a [State] pushed to watchers.
type Summary struct {
	Phase     Phase     `json:"phase"`
	Version   uint64    `json:"version"`
	Count     int       `json:"count"`
	Message   string    `json:"message,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Summary drops the country list, keeping only its length.
func (s State) Summary() Summary {
	return Summary{
		Phase:     s.Phase,
		Version:   s.Version,
		Count:     len(s.Countries),
		Message:   s.Message,
		UpdatedAt: s.UpdatedAt,
	}
}

// # State Container

// FetchRecorder receives fetch outcomes and phase changes, typically for metrics.
type FetchRecorder interface {
	RecordFetch(success bool, duration time.Duration, count int)
	SetPhase(phase string, all ...string)
}

// StoreOption customizes a [StateStore].
type StoreOption func(*StateStore)

// WithFetchTimeout bounds each repository call.
func WithFetchTimeout(timeout time.Duration) StoreOption {
	return func(store *StateStore) {
		if timeout > 0 {
			store.fetchTimeout = timeout
		}
	}
}

// WithRecorder reports fetch outcomes and phase changes to recorder.
func WithRecorder(recorder FetchRecorder) StoreOption {
	return func(store *StateStore) { store.recorder = recorder }
}

/*
StateStore is the single observable container for the catalogue view state.

It starts in [PhaseLoading] and moves to [PhaseSuccess] or [PhaseError] once a
fetch started by [StateStore.Load] resolves. At most one fetch is in flight at
any time. All writes happen under mu, so subscribers see transitions in order.
*/
type StateStore struct {
	scope        context.Context
	repo         Repository
	logger       *slog.Logger
	recorder     FetchRecorder
	fetchTimeout time.Duration

	mu          sync.RWMutex
	state       State
	inflight    chan struct{}
	subscribers map[uint64]chan State
	nextID      uint64
}

// NewStateStore creates a container in the Loading phase. No fetch is started.
//
// scope bounds the lifetime of every fetch: when it ends, in-flight fetches
// are cancelled.
func NewStateStore(scope context.Context, repo Repository, logger *slog.Logger, opts ...StoreOption) *StateStore {
	store := &StateStore{
		scope:        scope,
		repo:         repo,
		logger:       logger,
		fetchTimeout: constants.DefaultFetchTimeout,
		state:        State{Phase: PhaseLoading, UpdatedAt: time.Now()},
		subscribers:  make(map[uint64]chan State),
	}
	for _, opt := range opts {
		opt(store)
	}
	if store.recorder != nil {
		store.recorder.SetPhase(string(PhaseLoading), phaseNames...)
	}
	return store
}

// State returns the current snapshot.
func (store *StateStore) State() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

// Done is closed when the container scope ends.
func (store *StateStore) Done() <-chan struct{} {
	return store.scope.Done()
}

/*
Load publishes the Loading phase and starts one repository call.

The returned channel is closed once the outcome has been published. If a
fetch is already in flight, Load starts nothing and returns that fetch's
channel.
*/
func (store *StateStore) Load() <-chan struct{} {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.inflight != nil {
		return store.inflight
	}

	done := make(chan struct{})
	store.inflight = done
	store.publishLocked(State{Phase: PhaseLoading})

	go store.fetch(done)

	return done
}

// Subscribe returns a channel that receives the current snapshot immediately
// and every later transition.
//
// The channel buffers one value; a slow reader only sees the latest snapshot.
// The returned func unsubscribes and closes the channel. It is safe to call
// more than once.
func (store *StateStore) Subscribe() (<-chan State, func()) {
	store.mu.Lock()
	defer store.mu.Unlock()

	id := store.nextID
	store.nextID++

	updates := make(chan State, 1)
	updates <- store.state
	store.subscribers[id] = updates

	var once sync.Once
	return updates, func() {
		once.Do(func() {
			store.mu.Lock()
			defer store.mu.Unlock()
			delete(store.subscribers, id)
			close(updates)
		})
	}
}

// fetch runs the repository call and publishes its outcome.
func (store *StateStore) fetch(done chan struct{}) {
	defer close(done)

	ctx, cancel := context.WithTimeout(store.scope, store.fetchTimeout)
	defer cancel()

	startTime := time.Now()
	countries, err := store.repo.ListCountries(ctx)
	elapsed := time.Since(startTime)

	store.mu.Lock()
	defer store.mu.Unlock()

	store.inflight = nil

	if err != nil {
		message := err.Error()
		if message == "" {
			message = unknownErrorMessage
		}

		store.logger.Error("countries_fetch_failed",
			slog.Any("error", err),
			slog.Duration("elapsed", elapsed),
		)
		if store.recorder != nil {
			store.recorder.RecordFetch(false, elapsed, 0)
		}

		store.publishLocked(State{Phase: PhaseError, Message: message})
		return
	}

	if countries == nil {
		countries = []*Country{}
	}

	store.logger.Info("countries_fetch_succeeded",
		slog.Int("count", len(countries)),
		slog.Duration("elapsed", elapsed),
	)
	if store.recorder != nil {
		store.recorder.RecordFetch(true, elapsed, len(countries))
	}

	store.publishLocked(State{Phase: PhaseSuccess, Countries: countries})
}

// publishLocked stamps next, stores it, and fans it out. Callers hold mu.
func (store *StateStore) publishLocked(next State) {
	next.Version = store.state.Version + 1
	next.UpdatedAt = time.Now()
	store.state = next

	if store.recorder != nil {
		store.recorder.SetPhase(string(next.Phase), phaseNames...)
	}

	for _, updates := range store.subscribers {
		// Drop the stale snapshot, if any, so the send never blocks.
		select {
		case <-updates:
		default:
		}
		updates <- next
	}
}
