// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package catalog

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/rmonteiro/meliponario/internal/platform/apperr"
	"github.com/rmonteiro/meliponario/pkg/paginate"
)

// # Query Planning

// Source identifies which backing store answered a read.
type Source string

const (
	// SourceRemote marks results served by the PostgreSQL backend.
	SourceRemote Source = "remote"
	// SourceEmbedded marks results served by the compiled-in dataset.
	SourceEmbedded Source = "embedded"
)

// AvailabilityProbe reports whether the remote backend should be attempted.
// It is consulted on every read, so cheap config-presence checks belong
// here while liveness is learned from the attempt itself.
type AvailabilityProbe func() bool

// FallbackStrategy decides what happens after a remote read fails.
//
// The default strategy falls back to the embedded dataset immediately and
// never retries; alternative strategies (retry budgets, circuit breaking)
// plug in here without touching the planner.
type FallbackStrategy interface {

	/*
		ShouldFallback reports whether a failed remote read should be
		re-answered from the embedded dataset.

		Parameters:
		  - err: the remote failure

		Returns:
		  - bool: true to serve the embedded dataset, false to surface err
	*/
	ShouldFallback(err error) bool
}

// immediateFallback is the default strategy: any remote failure routes the
// read to the embedded dataset, no retries.
type immediateFallback struct{}

func (immediateFallback) ShouldFallback(error) bool { return true }

// SpeciesPage is a planned species listing.
type SpeciesPage struct {
	Items  []*Species
	Meta   paginate.Meta
	Source Source
}

// BreederPage is a planned breeder listing.
type BreederPage struct {
	Items  []*Breeder
	Meta   paginate.Meta
	Source Source
}

// PlannerConfig carries the planner's collaborators. Remote repositories
// may be nil (the service runs in permanent offline mode); local stores
// and the probe default when omitted.
type PlannerConfig struct {
	RemoteSpecies  SpeciesRepository
	RemoteBreeders BreederRepository
	LocalSpecies   *EmbeddedSpeciesStore
	LocalBreeders  *EmbeddedBreederStore
	Probe          AvailabilityProbe
	Strategy       FallbackStrategy
	Logger         *slog.Logger
}

// Planner routes every catalogue read to the remote backend or the
// embedded dataset.
//
// Listing operations are infallible: when the remote store is absent,
// reported unavailable, or fails at call time, the read is transparently
// re-planned against the embedded dataset, whose in-memory evaluation
// cannot fail. Lookup operations stay fallible only through NotFound.
type Planner struct {
	remoteSpecies  SpeciesRepository
	remoteBreeders BreederRepository
	localSpecies   *EmbeddedSpeciesStore
	localBreeders  *EmbeddedBreederStore
	probe          AvailabilityProbe
	strategy       FallbackStrategy
	logger         *slog.Logger
}

// NewPlanner constructs a planner from its configuration, applying
// defaults for any omitted collaborator.
func NewPlanner(config PlannerConfig) *Planner {
	planner := &Planner{
		remoteSpecies:  config.RemoteSpecies,
		remoteBreeders: config.RemoteBreeders,
		localSpecies:   config.LocalSpecies,
		localBreeders:  config.LocalBreeders,
		probe:          config.Probe,
		strategy:       config.Strategy,
		logger:         config.Logger,
	}
	if planner.localSpecies == nil {
		planner.localSpecies = NewEmbeddedSpeciesStore()
	}
	if planner.localBreeders == nil {
		planner.localBreeders = NewEmbeddedBreederStore()
	}
	if planner.probe == nil {
		planner.probe = func() bool { return true }
	}
	if planner.strategy == nil {
		planner.strategy = immediateFallback{}
	}
	if planner.logger == nil {
		planner.logger = slog.Default()
	}
	return planner
}

// remoteEligible reports whether a remote read should even be attempted.
func (planner *Planner) remoteEligible() bool {
	return planner.remoteSpecies != nil && planner.remoteBreeders != nil && planner.probe()
}

// # Listing Operations

/*
ListSpecies plans a species listing against the preferred source.

Description: Tries the remote backend first when it is configured and the
availability probe agrees; on failure consults the fallback strategy and
re-plans against the embedded dataset. The returned page always holds a
result — there is no error path for listings.

Parameters:
  - context: context.Context
  - descriptor: Descriptor (facets, term, pagination window)

Returns:
  - SpeciesPage: Items, pagination metadata, and the source that answered
*/
func (planner *Planner) ListSpecies(context context.Context, descriptor Descriptor) SpeciesPage {
	page := descriptor.Page
	if page.Limit <= 0 {
		page.Limit = paginate.DefaultLimit
	}
	if page.Page <= 0 {
		page.Page = 1
	}

	if planner.remoteEligible() {
		items, total, err := planner.remoteSpecies.List(context, descriptor, page.Limit, page.Offset())
		if err == nil {
			return SpeciesPage{Items: emptyNotNil(items), Meta: paginate.NewMeta(page.Page, page.Limit, total), Source: SourceRemote}
		}
		if !planner.strategy.ShouldFallback(err) {
			// The strategy refused the embedded dataset; listings still
			// must not fail, so serve an empty remote-shaped page.
			planner.logger.Error("species listing failed without fallback", "error", err)
			return SpeciesPage{Items: []*Species{}, Meta: paginate.NewMeta(page.Page, page.Limit, 0), Source: SourceRemote}
		}
		planner.logger.Warn("species listing fell back to embedded dataset", "error", err)
	}

	items, total, _ := planner.localSpecies.List(context, descriptor, page.Limit, page.Offset())
	return SpeciesPage{Items: emptyNotNil(items), Meta: paginate.NewMeta(page.Page, page.Limit, total), Source: SourceEmbedded}
}

/*
ListBreeders plans a breeder listing against the preferred source.

Same routing contract as [Planner.ListSpecies].
*/
func (planner *Planner) ListBreeders(context context.Context, descriptor Descriptor) BreederPage {
	page := descriptor.Page
	if page.Limit <= 0 {
		page.Limit = paginate.DefaultLimit
	}
	if page.Page <= 0 {
		page.Page = 1
	}

	if planner.remoteEligible() {
		items, total, err := planner.remoteBreeders.List(context, descriptor, page.Limit, page.Offset())
		if err == nil {
			return BreederPage{Items: emptyNotNil(items), Meta: paginate.NewMeta(page.Page, page.Limit, total), Source: SourceRemote}
		}
		if !planner.strategy.ShouldFallback(err) {
			planner.logger.Error("breeder listing failed without fallback", "error", err)
			return BreederPage{Items: []*Breeder{}, Meta: paginate.NewMeta(page.Page, page.Limit, 0), Source: SourceRemote}
		}
		planner.logger.Warn("breeder listing fell back to embedded dataset", "error", err)
	}

	items, total, _ := planner.localBreeders.List(context, descriptor, page.Limit, page.Offset())
	return BreederPage{Items: emptyNotNil(items), Meta: paginate.NewMeta(page.Page, page.Limit, total), Source: SourceEmbedded}
}

// # Lookup Operations

/*
GetSpecies resolves a single species by slug.

Description: A remote NotFound is authoritative and is NOT re-planned —
the remote catalogue is a superset of the embedded one, so a slug missing
remotely is genuinely unknown. Only infrastructure failures fall back.

Returns:
  - *Species: The species entity
  - Source: Which store answered
  - error: apperr.NotFound when the slug is unknown to the answering store
*/
func (planner *Planner) GetSpecies(context context.Context, slug string) (*Species, Source, error) {
	if planner.remoteEligible() {
		species, err := planner.remoteSpecies.FindBySlug(context, slug)
		if err == nil {
			return species, SourceRemote, nil
		}
		if isNotFound(err) || !planner.strategy.ShouldFallback(err) {
			return nil, SourceRemote, err
		}
		planner.logger.Warn("species lookup fell back to embedded dataset", "slug", slug, "error", err)
	}

	species, err := planner.localSpecies.FindBySlug(context, slug)
	return species, SourceEmbedded, err
}

/*
GetBreeder resolves a single breeder by UUID.

Embedded breeder records carry fixture identifiers, so a fallback lookup
for a remote UUID usually yields NotFound; that is the honest answer when
the backend holding the profile is down.
*/
func (planner *Planner) GetBreeder(context context.Context, id string) (*Breeder, Source, error) {
	if planner.remoteEligible() {
		breeder, err := planner.remoteBreeders.FindByID(context, id)
		if err == nil {
			return breeder, SourceRemote, nil
		}
		if isNotFound(err) || !planner.strategy.ShouldFallback(err) {
			return nil, SourceRemote, err
		}
		planner.logger.Warn("breeder lookup fell back to embedded dataset", "id", id, "error", err)
	}

	breeder, err := planner.localBreeders.FindByID(context, id)
	return breeder, SourceEmbedded, err
}

func isNotFound(err error) bool {
	appError := apperr.As(err)
	return appError != nil && appError.HTTPStatus == http.StatusNotFound
}

func emptyNotNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
