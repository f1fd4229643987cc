// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package fold builds comparison keys that ignore case and diacritics.
//
// # Usage
//
// Keys let a search for "cote d'ivoire" match "Côte d'Ivoire" and "peru"
// match "Perú" without altering the displayed values.
package fold

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Key converts s into its folded comparison form.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Recomposes to NFC and applies Unicode case folding.
// 4. Collapses runs of whitespace into a single space and trims the ends.
func Key(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC, cases.Fold())
	result, _, err := transform.String(t, s)
	if err != nil {
		result = strings.ToLower(s)
	}

	return strings.Join(strings.Fields(result), " ")
}

// Contains reports whether the folded form of s contains the folded form of substr.
// An empty substr matches everything.
func Contains(s, substr string) bool {
	return strings.Contains(Key(s), Key(substr))
}
