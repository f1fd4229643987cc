// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package country_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/taibuivan/countries/internal/core/country"
	"github.com/taibuivan/countries/pkg/pointer"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// fakeRepository is a hand-written [country.Repository] double.
//
// When release is non-nil, ListCountries blocks until it is closed or the
// context ends.
type fakeRepository struct {
	mu        sync.Mutex
	calls     int
	release   chan struct{}
	countries []*country.Country
	err       error
}

func (f *fakeRepository) ListCountries(ctx context.Context) ([]*country.Country, error) {
	f.mu.Lock()
	f.calls++
	release := f.release
	countries, err := f.countries, f.err
	f.mu.Unlock()

	if release != nil {
		select {
		case <-release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return countries, err
}

func (f *fakeRepository) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// set swaps the outcome returned by later calls.
func (f *fakeRepository) set(countries []*country.Country, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.countries, f.err = countries, err
}

func sampleCountries() []*country.Country {
	return []*country.Country{
		{
			Code:      "FR",
			Name:      "France",
			Emoji:     "🇫🇷",
			Capital:   pointer.To("Paris"),
			Currency:  pointer.To("EUR"),
			Continent: "Europe",
			Languages: []string{"French"},
		},
		{
			Code:      "PE",
			Name:      "Perú",
			Emoji:     "🇵🇪",
			Capital:   pointer.To("Lima"),
			Currency:  pointer.To("PEN"),
			Continent: "South America",
			Languages: []string{"Spanish", "Aymara", "Quechua"},
		},
		{
			Code:      "AQ",
			Name:      "Antarctica",
			Emoji:     "🇦🇶",
			Continent: "Antarctica",
			Languages: []string{},
		},
	}
}

// newLoadedStore returns a store that has completed one fetch of countries.
func newLoadedStore(t *testing.T, countries []*country.Country, err error) (*country.StateStore, *fakeRepository) {
	t.Helper()

	repo := &fakeRepository{countries: countries, err: err}
	store := country.NewStateStore(context.Background(), repo, discardLogger)
	wait(t, store.Load())
	return store, repo
}

// wait fails the test if done is not closed within a second.
func wait(t *testing.T, done <-chan struct{}) {
	t.Helper()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for fetch to finish")
	}
}

// next receives one snapshot or fails the test.
func next(t *testing.T, updates <-chan country.State) country.State {
	t.Helper()

	select {
	case state, ok := <-updates:
		if !ok {
			t.Fatal("updates channel closed")
		}
		return state
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for state")
	}
	return country.State{}
}
