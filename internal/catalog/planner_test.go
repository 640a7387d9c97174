// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmonteiro/meliponario/internal/catalog"
	"github.com/rmonteiro/meliponario/internal/platform/apperr"
	"github.com/rmonteiro/meliponario/pkg/paginate"
)

// # Remote Store Fakes

var errBackendDown = errors.New("connection refused")

type fakeSpeciesRepo struct {
	species []*catalog.Species
	err     error
	calls   int
}

func (fake *fakeSpeciesRepo) List(_ context.Context, descriptor catalog.Descriptor, limit, offset int) ([]*catalog.Species, int, error) {
	fake.calls++
	if fake.err != nil {
		return nil, 0, fake.err
	}
	matched := []*catalog.Species{}
	predicate := descriptor.SpeciesPredicate()
	for _, record := range fake.species {
		if predicate(record) {
			matched = append(matched, record)
		}
	}
	return matched, len(matched), nil
}

func (fake *fakeSpeciesRepo) FindBySlug(_ context.Context, slug string) (*catalog.Species, error) {
	fake.calls++
	if fake.err != nil {
		return nil, fake.err
	}
	for _, record := range fake.species {
		if record.Slug == slug {
			return record, nil
		}
	}
	return nil, apperr.NotFound("Species")
}

func (fake *fakeSpeciesRepo) ListAll(_ context.Context) ([]*catalog.Species, error) {
	fake.calls++
	if fake.err != nil {
		return nil, fake.err
	}
	return fake.species, nil
}

type fakeBreederRepo struct {
	breeders []*catalog.Breeder
	err      error
	calls    int
}

func (fake *fakeBreederRepo) List(_ context.Context, descriptor catalog.Descriptor, limit, offset int) ([]*catalog.Breeder, int, error) {
	fake.calls++
	if fake.err != nil {
		return nil, 0, fake.err
	}
	matched := []*catalog.Breeder{}
	predicate := descriptor.BreederPredicate()
	for _, record := range fake.breeders {
		if predicate(record) {
			matched = append(matched, record)
		}
	}
	return matched, len(matched), nil
}

func (fake *fakeBreederRepo) FindByID(_ context.Context, id string) (*catalog.Breeder, error) {
	fake.calls++
	if fake.err != nil {
		return nil, fake.err
	}
	for _, record := range fake.breeders {
		if record.ID == id {
			return record, nil
		}
	}
	return nil, apperr.NotFound("Breeder")
}

func newTestPlanner(speciesRepo *fakeSpeciesRepo, breederRepo *fakeBreederRepo, probe catalog.AvailabilityProbe) *catalog.Planner {
	config := catalog.PlannerConfig{
		LocalBreeders: catalog.NewEmbeddedBreederStoreWithData(tenBreeders()),
		Probe:         probe,
	}
	if speciesRepo != nil {
		config.RemoteSpecies = speciesRepo
	}
	if breederRepo != nil {
		config.RemoteBreeders = breederRepo
	}
	return catalog.NewPlanner(config)
}

// # Listing Resilience

/*
TestPlanner_ListFallsBackOnRemoteFailure verifies the core resilience
contract: a failing backend never surfaces on listings, and the fallback
page matches what the embedded dataset produces for the same descriptor.
*/
func TestPlanner_ListFallsBackOnRemoteFailure(t *testing.T) {
	speciesRepo := &fakeSpeciesRepo{err: errBackendDown}
	breederRepo := &fakeBreederRepo{err: errBackendDown}
	planner := newTestPlanner(speciesRepo, breederRepo, nil)

	t.Run("species", func(t *testing.T) {
		descriptor := catalog.Descriptor{Sizes: []string{"small"}, Page: paginate.Params{Page: 1, Limit: 20}}

		page := planner.ListSpecies(context.Background(), descriptor)

		assert.Equal(t, catalog.SourceEmbedded, page.Source)
		assert.NotEmpty(t, page.Items)
		for _, species := range page.Items {
			assert.Equal(t, catalog.SizeSmall, species.Size)
		}
		assert.Equal(t, 1, speciesRepo.calls)
	})

	t.Run("breeders", func(t *testing.T) {
		descriptor := catalog.Descriptor{States: []string{"BA"}, Page: paginate.Params{Page: 1, Limit: 20}}

		page := planner.ListBreeders(context.Background(), descriptor)

		assert.Equal(t, catalog.SourceEmbedded, page.Source)
		assert.Len(t, page.Items, 2)
		// Unfiltered dataset total: degraded page counts are advisory.
		assert.Equal(t, 10, page.Meta.Total)
	})
}

/*
TestPlanner_ListPrefersHealthyRemote verifies that a reachable backend
answers listings and stamps the remote source.
*/
func TestPlanner_ListPrefersHealthyRemote(t *testing.T) {
	remote := testSpecies("remote-only", "Melipona remota", nil, catalog.SizeMedium, catalog.TierLow, nil)
	speciesRepo := &fakeSpeciesRepo{species: []*catalog.Species{remote}}
	planner := newTestPlanner(speciesRepo, &fakeBreederRepo{}, nil)

	page := planner.ListSpecies(context.Background(), catalog.Descriptor{Page: paginate.Params{Page: 1, Limit: 20}})

	assert.Equal(t, catalog.SourceRemote, page.Source)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "remote-only", page.Items[0].Slug)
	assert.Equal(t, 1, page.Meta.Total)
}

/*
TestPlanner_ListOffline verifies the permanent offline configuration: no
remote repositories wired at all, every listing served locally without a
remote attempt.
*/
func TestPlanner_ListOffline(t *testing.T) {
	planner := newTestPlanner(nil, nil, nil)

	page := planner.ListBreeders(context.Background(), catalog.Descriptor{Page: paginate.Params{Page: 1, Limit: 20}})

	assert.Equal(t, catalog.SourceEmbedded, page.Source)
	assert.Len(t, page.Items, 10)
}

/*
TestPlanner_ProbeGatesRemote verifies that a false availability probe
skips the remote store entirely.
*/
func TestPlanner_ProbeGatesRemote(t *testing.T) {
	speciesRepo := &fakeSpeciesRepo{}
	breederRepo := &fakeBreederRepo{}
	planner := newTestPlanner(speciesRepo, breederRepo, func() bool { return false })

	page := planner.ListSpecies(context.Background(), catalog.Descriptor{Page: paginate.Params{Page: 1, Limit: 20}})

	assert.Equal(t, catalog.SourceEmbedded, page.Source)
	assert.Zero(t, speciesRepo.calls)
}

// # Lookup Semantics

/*
TestPlanner_GetSpecies covers lookup routing: remote NotFound is
authoritative, infrastructure failures fall back, and the embedded
dataset answers offline lookups.
*/
func TestPlanner_GetSpecies(t *testing.T) {
	t.Run("remote_not_found_is_authoritative", func(t *testing.T) {
		speciesRepo := &fakeSpeciesRepo{}
		planner := newTestPlanner(speciesRepo, &fakeBreederRepo{}, nil)

		_, source, err := planner.GetSpecies(context.Background(), "jatai")

		require.Error(t, err)
		assert.Equal(t, catalog.SourceRemote, source)
	})

	t.Run("infrastructure_failure_falls_back", func(t *testing.T) {
		speciesRepo := &fakeSpeciesRepo{err: errBackendDown}
		planner := newTestPlanner(speciesRepo, &fakeBreederRepo{err: errBackendDown}, nil)

		species, source, err := planner.GetSpecies(context.Background(), "jatai")

		require.NoError(t, err)
		assert.Equal(t, catalog.SourceEmbedded, source)
		assert.Equal(t, "Tetragonisca angustula", species.ScientificName)
	})

	t.Run("offline_lookup", func(t *testing.T) {
		planner := newTestPlanner(nil, nil, nil)

		species, source, err := planner.GetSpecies(context.Background(), "mandacaia")

		require.NoError(t, err)
		assert.Equal(t, catalog.SourceEmbedded, source)
		assert.Equal(t, "Melipona quadrifasciata", species.ScientificName)
	})
}
