// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rmonteiro/meliponario/pkg/textnorm"
)

/*
TestNormalize_StripsAccentsAndCase verifies the base transformation.
*/
func TestNormalize_StripsAccentsAndCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain_ascii", "jatai", "jatai"},
		{"accented", "Jataí", "jatai"},
		{"cedilla", "Uruçu-verdadeira", "urucu-verdadeira"},
		{"tilde_and_case", "Mandaçaia GRANDE", "mandacaia grande"},
		{"empty", "", ""},
		{"only_marks_source", "ÀÁÂÃ", "aaaa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, textnorm.Normalize(tt.input))
		})
	}
}

/*
TestNormalize_Idempotent checks Normalize(Normalize(s)) == Normalize(s).
*/
func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"Jataí", "Uruçu", "Tiúba", "abelha sem ferrão", "", "ASCII only", "ÀÉÎÕÜç"}

	for _, input := range inputs {
		once := textnorm.Normalize(input)
		twice := textnorm.Normalize(once)
		assert.Equal(t, once, twice, "not idempotent for %q", input)
	}
}

/*
TestMatches covers accent-tolerant containment, including the case where the
stored value carries diacritics and the query does not, and vice versa.
*/
func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		expected bool
	}{
		{"accented_haystack_plain_needle", "Jataí", textnorm.Normalize("jatai"), true},
		{"cedilla_query", "Urucu-verdadeira", textnorm.Normalize("uruçu"), true},
		{"substring", "Melipona quadrifasciata", textnorm.Normalize("QUADRI"), true},
		{"no_match", "Jataí", textnorm.Normalize("mandacaia"), false},
		{"empty_needle_matches_all", "anything", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, textnorm.Matches(tt.haystack, tt.needle))
		})
	}
}

func TestMatchesAny(t *testing.T) {
	needle := textnorm.Normalize("uruçu")

	assert.True(t, textnorm.MatchesAny(needle, "Jataí", "Uruçu-amarela"))
	assert.False(t, textnorm.MatchesAny(needle, "Jataí", "Mandaçaia"))
	assert.False(t, textnorm.MatchesAny(needle))
}

func TestSlug(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Uruçu-verdadeira", "urucu-verdadeira"},
		{"Melipona scutellaris", "melipona-scutellaris"},
		{"  Jataí!  ", "jatai"},
		{"Moça--branca", "moca-branca"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, textnorm.Slug(tt.input))
	}
}
