// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package country owns the country catalogue: the record type, the repository
that fetches it from the remote GraphQL API, the observable view state that
holds the last fetch outcome, and the list/detail surfaces derived from it.

Data flow:

	GraphQLRepository ──ListCountries──▶ StateStore ──State/Subscribe──▶ Service ──▶ Handler / WriteList / WriteDetail

The detail surface never fetches on its own. It searches the list already
held by the [StateStore].
*/
package country

import "strings"

// Country is the normalized representation of one nation's metadata.
//
// Values are built fresh on every successful fetch and never mutated afterwards.
type Country struct {
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	Emoji     string   `json:"emoji"`
	Capital   *string  `json:"capital"`
	Currency  *string  `json:"currency"`
	Continent string   `json:"continent"`
	Languages []string `json:"languages"`
}

// FindByCode returns the first country whose code matches code, ignoring case.
func FindByCode(countries []*Country, code string) (*Country, bool) {
	for _, country := range countries {
		if country != nil && strings.EqualFold(country.Code, code) {
			return country, true
		}
	}
	return nil, false
}
