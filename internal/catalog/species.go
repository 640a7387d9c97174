// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

/*
Package catalog implements the resilient dual-source data access layer for
species and breeders.

Every read is planned against two interchangeable sources: the remote
PostgreSQL backend (when configured and reachable) and the embedded
reference dataset compiled into the binary. The query planner guarantees
that list and lookup operations always produce a result when at least one
source can answer, and that remote failures never surface to callers on
read paths.
*/
package catalog

import "time"

// # Categorical Attributes

// Size classifies the physical size of a species' workers.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Tier is a coarse low/medium/high scale used for honey yield and
// management difficulty.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// Conservation is the conservation-status classification of a species.
type Conservation string

const (
	ConservationLeastConcern Conservation = "least-concern"
	ConservationVulnerable   Conservation = "vulnerable"
	ConservationEndangered   Conservation = "endangered"
	ConservationUnknown      Conservation = "unknown"
)

// # Entities

// HoneyProfile is the structured description of a species' honey.
type HoneyProfile struct {
	Taste string `json:"taste"`
	Color string `json:"color"`
	// AnnualYieldKg is the typical yield per colony per year.
	AnnualYieldKg float64 `json:"annual_yield_kg"`
	Properties    string  `json:"properties"`
}

// Species is a stingless bee species in the catalog.
//
// # Identifiers
//
// Slug is the stable, human-readable identifier used in routing and in the
// embedded reference dataset ("urucu-verdadeira"). RemoteID is the opaque
// UUID primary key used by the remote backend's relational joins; it is
// empty for records served from the embedded dataset. The [Resolver]
// translates between the two forms.
type Species struct {
	Slug     string `json:"slug"`
	RemoteID string `json:"id,omitempty"`

	ScientificName string   `json:"scientific_name"`
	PopularNames   []string `json:"popular_names"`

	Family   string `json:"family"`
	Genus    string `json:"genus"`
	Subgenus string `json:"subgenus,omitempty"`

	Size         Size         `json:"size"`
	HoneyYield   Tier         `json:"honey_yield"`
	Difficulty   Tier         `json:"difficulty"`
	Conservation Conservation `json:"conservation"`

	Behavior  string       `json:"behavior"`
	Honey     HoneyProfile `json:"honey"`
	Biomes    []string     `json:"biomes"`
	CareNotes []string     `json:"care_notes"`
	Sources   []string     `json:"sources"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// DisplayName returns the canonical popular name, falling back to the
// scientific name for species with no recorded popular name.
func (s *Species) DisplayName() string {
	if len(s.PopularNames) > 0 {
		return s.PopularNames[0]
	}
	return s.ScientificName
}
