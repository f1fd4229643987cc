// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package country

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/taibuivan/countries/internal/platform/constants"
	"github.com/taibuivan/countries/internal/platform/graphql"
	"github.com/taibuivan/countries/pkg/pointer"
	"github.com/taibuivan/countries/pkg/slice"
)

// countriesQuery selects every field the [Country] record is built from.
const countriesQuery = `query Countries {
  countries {
    code
    name
    emoji
    capital
    currency
    continent { name }
    languages { name }
  }
}`

// GraphQLRepository implements [Repository] against the countries GraphQL API.
type GraphQLRepository struct {
	client *graphql.Client
}

// NewGraphQLRepository creates a repository that queries through client.
func NewGraphQLRepository(client *graphql.Client) *GraphQLRepository {
	return &GraphQLRepository{client: client}
}

/*
ListCountries runs the countries query and maps each record to a [Country].

Returns:
  - []*Country: records in the order the API returned them (may be empty)
  - error: transport/GraphQL failures, or [ErrEmptyResponse] when "countries" is null or absent
*/
func (repository *GraphQLRepository) ListCountries(ctx context.Context) ([]*Country, error) {
	data, err := repository.client.Query(ctx, countriesQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("countries: fetch failed: %w", err)
	}

	records := data.Get("countries")
	if !records.IsArray() {
		return nil, ErrEmptyResponse
	}

	return slice.Map(records.Array(), mapCountry), nil
}

// mapCountry converts one remote record into the local value type.
func mapCountry(record gjson.Result) *Country {
	continent := record.Get("continent.name").String()
	if continent == "" {
		continent = constants.Placeholder
	}

	languages := []string{}
	record.Get("languages").ForEach(func(_, language gjson.Result) bool {
		if name := language.Get("name"); name.Type == gjson.String {
			languages = append(languages, name.String())
		}
		return true
	})

	return &Country{
		Code:      record.Get("code").String(),
		Name:      record.Get("name").String(),
		Emoji:     record.Get("emoji").String(),
		Capital:   optionalString(record.Get("capital")),
		Currency:  optionalString(record.Get("currency")),
		Continent: continent,
		Languages: languages,
	}
}

// optionalString maps null and absent values to nil. Other values, including
// the empty string, are kept as-is.
func optionalString(value gjson.Result) *string {
	if !value.Exists() || value.Type == gjson.Null {
		return nil
	}
	return pointer.To(value.String())
}
