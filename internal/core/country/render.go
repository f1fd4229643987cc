// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package country

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/taibuivan/countries/internal/platform/constants"
	"github.com/taibuivan/countries/pkg/pointer"
)

// # Text Rendering

const loadingLine = "Loading countries..."

// WriteList renders the list surface as plain text, one "emoji name" per line.
func WriteList(w io.Writer, view ListView) error {
	switch view.Phase {
	case PhaseLoading:
		_, err := fmt.Fprintln(w, loadingLine)
		return err
	case PhaseError:
		_, err := fmt.Fprintf(w, "Error: %s\n", view.Message)
		return err
	}

	if len(view.Countries) == 0 {
		_, err := fmt.Fprintln(w, "No countries.")
		return err
	}

	for _, country := range view.Countries {
		if _, err := fmt.Fprintf(w, "%s  %s\n", country.Emoji, country.Name); err != nil {
			return err
		}
	}
	return nil
}

// WriteDetail renders the detail surface as plain text.
//
// A found country prints a header line followed by label/value rows; missing
// or empty optional values print a placeholder.
func WriteDetail(w io.Writer, view DetailView) error {
	switch view.Phase {
	case PhaseLoading:
		_, err := fmt.Fprintln(w, loadingLine)
		return err
	case PhaseError:
		_, err := fmt.Fprintf(w, "Error: %s\n", view.Message)
		return err
	case PhaseNotFound:
		_, err := fmt.Fprintf(w, "No details found for country: %s\n", view.Code)
		return err
	}

	country := view.Country
	if _, err := fmt.Fprintf(w, "%s  %s\n\n", country.Emoji, country.Name); err != nil {
		return err
	}

	languages := strings.Join(country.Languages, ", ")
	if languages == "" {
		languages = constants.Placeholder
	}

	table := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Code", country.Code},
		{"Capital", orPlaceholder(pointer.Fallback(country.Capital, ""))},
		{"Continent", orPlaceholder(country.Continent)},
		{"Currency", orPlaceholder(pointer.Fallback(country.Currency, ""))},
		{"Languages", languages},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(table, "%s\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return table.Flush()
}

func orPlaceholder(value string) string {
	if value == "" {
		return constants.Placeholder
	}
	return value
}
