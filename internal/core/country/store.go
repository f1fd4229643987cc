// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package country

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the remote payload carries no country list.
var ErrEmptyResponse = errors.New("countries: empty response")

// Repository defines the data access contract.
type Repository interface {
	// ListCountries returns every country in remote order.
	ListCountries(ctx context.Context) ([]*Country, error)
}
