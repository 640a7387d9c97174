// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package catalog_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmonteiro/meliponario/internal/catalog"
)

func testSpecies(slug, scientific string, popular []string, size catalog.Size, yield catalog.Tier, biomes []string) *catalog.Species {
	return &catalog.Species{
		Slug:           slug,
		ScientificName: scientific,
		PopularNames:   popular,
		Size:           size,
		HoneyYield:     yield,
		Difficulty:     catalog.TierLow,
		Conservation:   catalog.ConservationLeastConcern,
		Biomes:         biomes,
	}
}

func testBreeder(id, name, city, state string, statuses []catalog.Status, verified bool, slugs []string) *catalog.Breeder {
	return &catalog.Breeder{
		ID:           id,
		Name:         name,
		City:         city,
		State:        state,
		Status:       statuses,
		Verified:     verified,
		SpeciesSlugs: slugs,
	}
}

/*
TestDescriptor_SpeciesPredicate verifies facet combination and the
accent-insensitive free-text match over the species collection.
*/
func TestDescriptor_SpeciesPredicate(t *testing.T) {
	jatai := testSpecies("jatai", "Tetragonisca angustula", []string{"Jataí"}, catalog.SizeSmall, catalog.TierLow, []string{"mata-atlantica", "cerrado"})
	urucu := testSpecies("urucu-verdadeira", "Melipona scutellaris", []string{"Uruçu-verdadeira"}, catalog.SizeLarge, catalog.TierHigh, []string{"caatinga"})

	tests := []struct {
		name       string
		descriptor catalog.Descriptor
		matchJatai bool
		matchUrucu bool
	}{
		{"empty_matches_all", catalog.Descriptor{}, true, true},
		{"size_facet", catalog.Descriptor{Sizes: []string{"small"}}, true, false},
		{"yield_facet", catalog.Descriptor{HoneyYields: []string{"high"}}, false, true},
		{"biome_overlap", catalog.Descriptor{Biomes: []string{"cerrado", "pampa"}}, true, false},
		{"term_unaccented_input", catalog.Descriptor{Term: "jatai"}, true, false},
		{"term_accented_input", catalog.Descriptor{Term: "uruçu"}, false, true},
		{"term_matches_scientific", catalog.Descriptor{Term: "melipona"}, false, true},
		{"facets_combine_with_and", catalog.Descriptor{Sizes: []string{"small"}, HoneyYields: []string{"high"}}, false, false},
		{"unknown_facet_value_matches_nothing", catalog.Descriptor{Sizes: []string{"giant"}}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			predicate := tt.descriptor.SpeciesPredicate()
			assert.Equal(t, tt.matchJatai, predicate(jatai))
			assert.Equal(t, tt.matchUrucu, predicate(urucu))
		})
	}
}

/*
TestDescriptor_BreederPredicate verifies the directory facets: state
membership, offering-tag overlap, managed-species overlap, verification
equality, and the name/city/bio text match.
*/
func TestDescriptor_BreederPredicate(t *testing.T) {
	flor := testBreeder("b1", "Meliponário Flor do Sertão", "Jacobina", "BA", []catalog.Status{catalog.StatusSale}, true, []string{"urucu-verdadeira"})
	vale := testBreeder("b2", "Abelhas do Vale", "São José dos Campos", "SP", []catalog.Status{catalog.StatusExchange, catalog.StatusInformation}, false, []string{"mandacaia", "jatai"})
	vale.Bio = "Criação urbana de jataí e mandaçaia há vinte anos."

	tests := []struct {
		name       string
		descriptor catalog.Descriptor
		matchFlor  bool
		matchVale  bool
	}{
		{"empty_matches_all", catalog.Descriptor{}, true, true},
		{"state_facet", catalog.Descriptor{States: []string{"BA"}}, true, false},
		{"multi_state_facet", catalog.Descriptor{States: []string{"BA", "SP"}}, true, true},
		{"status_overlap", catalog.Descriptor{Statuses: []string{"exchange"}}, false, true},
		{"species_overlap", catalog.Descriptor{SpeciesSlugs: []string{"jatai"}}, false, true},
		{"verified_true", catalog.Descriptor{Verified: boolPointer(true)}, true, false},
		{"verified_false", catalog.Descriptor{Verified: boolPointer(false)}, false, true},
		{"term_matches_city_unaccented", catalog.Descriptor{Term: "sao jose"}, false, true},
		{"term_matches_name_accented", catalog.Descriptor{Term: "meliponário"}, true, false},
		{"term_matches_bio", catalog.Descriptor{Term: "criação urbana"}, false, true},
		{"state_and_status_combine", catalog.Descriptor{States: []string{"BA"}, Statuses: []string{"exchange"}}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			predicate := tt.descriptor.BreederPredicate()
			assert.Equal(t, tt.matchFlor, predicate(flor))
			assert.Equal(t, tt.matchVale, predicate(vale))
		})
	}
}

/*
TestDescriptorFromRequest checks query-string parsing: comma-separated
facets, the tri-state verified flag, and pagination extraction.
*/
func TestDescriptorFromRequest(t *testing.T) {
	t.Run("full_query", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/breeders?q=uru%C3%A7u&state=BA,SP&status=sale,exchange&verified=true&page=3&limit=10", nil)

		descriptor := catalog.DescriptorFromRequest(request)

		assert.Equal(t, "uruçu", descriptor.Term)
		assert.Equal(t, []string{"BA", "SP"}, descriptor.States)
		assert.Equal(t, []string{"sale", "exchange"}, descriptor.Statuses)
		require.NotNil(t, descriptor.Verified)
		assert.True(t, *descriptor.Verified)
		assert.Equal(t, 3, descriptor.Page.Page)
		assert.Equal(t, 10, descriptor.Page.Limit)
		assert.True(t, descriptor.HasFacets())
	})

	t.Run("absent_verified_is_nil", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/breeders", nil)

		descriptor := catalog.DescriptorFromRequest(request)

		assert.Nil(t, descriptor.Verified)
		assert.False(t, descriptor.HasFacets())
	})

	t.Run("garbage_verified_is_nil", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/breeders?verified=maybe", nil)

		descriptor := catalog.DescriptorFromRequest(request)

		assert.Nil(t, descriptor.Verified)
	})
}

func boolPointer(value bool) *bool { return &value }
