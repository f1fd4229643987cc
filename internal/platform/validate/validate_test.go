// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/countries/internal/platform/apperr"
	"github.com/taibuivan/countries/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		hasError bool
	}{
		{"valid_string", "FR", false},
		{"empty_string", "", true},
		{"whitespace_only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required("code", tt.value)

			if tt.hasError {
				err := v.Err()
				require.Error(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, "code", ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.NoError(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Letters checks the letters-only rule.
*/
func TestValidator_Letters(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"upper", "FR", true},
		{"mixed_case", "fR", true},
		{"empty_passes", "", true},
		{"digits", "F1", false},
		{"punctuation", "F-R", false},
		{"accented", "É", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Letters("code", tt.value)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("code", "").
		MaxLen("code", "ABCDEFGHIJ", 8).
		Range("page", 0, 1, 100).
		Custom("limit", true, "Too large").
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 4)
}

/*
TestValidator_Chain tests the fluent API on valid input.
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("code", "de").
		Letters("code", "de").
		MaxLen("code", "de", 8).
		Err()

	assert.NoError(t, err)
}
