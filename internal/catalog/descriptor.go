// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package catalog

import (
	"net/http"

	"github.com/rmonteiro/meliponario/pkg/paginate"
	"github.com/rmonteiro/meliponario/pkg/pointer"
	"github.com/rmonteiro/meliponario/pkg/query"
	"github.com/rmonteiro/meliponario/pkg/slice"
	"github.com/rmonteiro/meliponario/pkg/textnorm"
)

// # Query Descriptor

// Descriptor is the declarative description of a list view: the active
// filter facets, the free-text term, and the pagination window.
//
// It is recomputed per request and is the sole input to the query planner.
// Every facet is independently optional; active facets combine with AND.
// The same descriptor drives both the remote SQL translation and the
// in-memory predicate over the embedded dataset.
type Descriptor struct {
	// Set-membership facets (entity scalar field ∈ selection).
	States        []string // breeder state code
	Sizes         []string // species size class
	HoneyYields   []string // species honey-yield tier
	Difficulties  []string // species management-difficulty tier
	Conservations []string // species conservation status

	// Multi-value overlap facets (entity list field ∩ selection ≠ ∅).
	Statuses     []string // breeder offering tags
	Biomes       []string // species biomes
	SpeciesSlugs []string // breeder manages any of these species

	// Equality facet.
	Verified *bool // breeder verification flag

	// Term is the free-text search input, matched against the searchable
	// name fields under normalization.
	Term string

	// Page is the requested pagination window.
	Page paginate.Params
}

// NormalizedTerm returns the search term in normalized form, ready for
// accent-insensitive matching. Empty when no term is active.
func (d Descriptor) NormalizedTerm() string {
	return textnorm.Normalize(d.Term)
}

// HasFacets reports whether any facet or term is active. When false, the
// predicate matches everything and the remote path requests an unfiltered
// listing.
func (d Descriptor) HasFacets() bool {
	return len(d.States) > 0 || len(d.Sizes) > 0 || len(d.HoneyYields) > 0 ||
		len(d.Difficulties) > 0 || len(d.Conservations) > 0 ||
		len(d.Statuses) > 0 || len(d.Biomes) > 0 || len(d.SpeciesSlugs) > 0 ||
		d.Verified != nil || d.Term != ""
}

// # Local Predicates

// SpeciesPredicate builds the in-memory filter for the embedded dataset's
// species collection. The remote path expresses the same facets as SQL;
// only the free-text strategies differ (normalized containment locally,
// unaccented full-text search remotely), which yields overlapping but not
// rank-identical result sets.
func (d Descriptor) SpeciesPredicate() func(*Species) bool {
	term := d.NormalizedTerm()

	return func(s *Species) bool {
		if len(d.Sizes) > 0 && !slice.Contains(d.Sizes, string(s.Size)) {
			return false
		}
		if len(d.HoneyYields) > 0 && !slice.Contains(d.HoneyYields, string(s.HoneyYield)) {
			return false
		}
		if len(d.Difficulties) > 0 && !slice.Contains(d.Difficulties, string(s.Difficulty)) {
			return false
		}
		if len(d.Conservations) > 0 && !slice.Contains(d.Conservations, string(s.Conservation)) {
			return false
		}
		if len(d.Biomes) > 0 && !slice.Overlaps(d.Biomes, s.Biomes) {
			return false
		}
		if term != "" {
			fields := append([]string{s.ScientificName}, s.PopularNames...)
			if !textnorm.MatchesAny(term, fields...) {
				return false
			}
		}
		return true
	}
}

// BreederPredicate builds the in-memory filter for the embedded dataset's
// breeder collection.
func (d Descriptor) BreederPredicate() func(*Breeder) bool {
	term := d.NormalizedTerm()

	return func(b *Breeder) bool {
		if len(d.States) > 0 && !slice.Contains(d.States, b.State) {
			return false
		}
		if len(d.Statuses) > 0 {
			statuses := slice.Map(b.Status, func(s Status) string { return string(s) })
			if !slice.Overlaps(d.Statuses, statuses) {
				return false
			}
		}
		if len(d.SpeciesSlugs) > 0 && !slice.Overlaps(d.SpeciesSlugs, b.SpeciesSlugs) {
			return false
		}
		if d.Verified != nil && b.Verified != *d.Verified {
			return false
		}
		if term != "" && !textnorm.MatchesAny(term, b.Name, b.City, b.Bio) {
			return false
		}
		return true
	}
}

// # Request Parsing

// DescriptorFromRequest parses the filter facets, search term, and
// pagination window from a list endpoint's query string.
//
// Facet parameters are comma-separated ("status=sale,exchange"); unknown
// values are carried through and simply match nothing.
func DescriptorFromRequest(request *http.Request) Descriptor {
	values := request.URL.Query()

	descriptor := Descriptor{
		States:        query.StringSlice(values.Get("state")),
		Sizes:         query.StringSlice(values.Get("size")),
		HoneyYields:   query.StringSlice(values.Get("honey_yield")),
		Difficulties:  query.StringSlice(values.Get("difficulty")),
		Conservations: query.StringSlice(values.Get("conservation")),
		Statuses:      query.StringSlice(values.Get("status")),
		Biomes:        query.StringSlice(values.Get("biome")),
		SpeciesSlugs:  query.StringSlice(values.Get("species")),
		Term:          values.Get("q"),
		Page:          paginate.FromRequest(request),
	}

	switch values.Get("verified") {
	case "true":
		descriptor.Verified = pointer.To(true)
	case "false":
		descriptor.Verified = pointer.To(false)
	}

	return descriptor
}
