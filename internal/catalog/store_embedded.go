// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package catalog

import (
	"context"

	"github.com/rmonteiro/meliponario/internal/platform/apperr"
	"github.com/rmonteiro/meliponario/pkg/slice"
)

// The embedded stores serve the compiled-in reference dataset. They back
// every read when the remote backend is unreachable, so their methods are
// infallible by construction: filtering and slicing happen in memory over
// immutable data.
//
// The reported total is the size of the unfiltered dataset, not of the
// filtered subset. Offline page counts are advisory and consumers treat
// them as such; keeping the full count makes the degraded mode visible
// instead of pretending the embedded slice is the whole world.

// EmbeddedSpeciesStore implements SpeciesRepository over in-memory records.
type EmbeddedSpeciesStore struct {
	records []*Species
}

// NewEmbeddedSpeciesStore returns a store over the built-in reference species.
func NewEmbeddedSpeciesStore() *EmbeddedSpeciesStore {
	return NewEmbeddedSpeciesStoreWithData(referenceSpecies)
}

// NewEmbeddedSpeciesStoreWithData returns a store over caller-supplied
// records. The store aliases the slice; callers must not mutate it afterwards.
func NewEmbeddedSpeciesStoreWithData(records []*Species) *EmbeddedSpeciesStore {
	return &EmbeddedSpeciesStore{records: records}
}

func (store *EmbeddedSpeciesStore) List(_ context.Context, descriptor Descriptor, limit, offset int) ([]*Species, int, error) {
	matched := slice.Filter(store.records, descriptor.SpeciesPredicate())
	return pageOf(matched, limit, offset), len(store.records), nil
}

func (store *EmbeddedSpeciesStore) FindBySlug(_ context.Context, slug string) (*Species, error) {
	for _, species := range store.records {
		if species.Slug == slug {
			return species, nil
		}
	}
	return nil, apperr.NotFound("Species")
}

func (store *EmbeddedSpeciesStore) ListAll(_ context.Context) ([]*Species, error) {
	return store.records, nil
}

// EmbeddedBreederStore implements BreederRepository over in-memory records.
type EmbeddedBreederStore struct {
	records []*Breeder
}

// NewEmbeddedBreederStore returns a store over the built-in reference breeders.
func NewEmbeddedBreederStore() *EmbeddedBreederStore {
	return NewEmbeddedBreederStoreWithData(referenceBreeders)
}

// NewEmbeddedBreederStoreWithData returns a store over caller-supplied
// records. The store aliases the slice; callers must not mutate it afterwards.
func NewEmbeddedBreederStoreWithData(records []*Breeder) *EmbeddedBreederStore {
	return &EmbeddedBreederStore{records: records}
}

func (store *EmbeddedBreederStore) List(_ context.Context, descriptor Descriptor, limit, offset int) ([]*Breeder, int, error) {
	matched := slice.Filter(store.records, descriptor.BreederPredicate())
	return pageOf(matched, limit, offset), len(store.records), nil
}

func (store *EmbeddedBreederStore) FindByID(_ context.Context, id string) (*Breeder, error) {
	for _, breeder := range store.records {
		if breeder.ID == id {
			return breeder, nil
		}
	}
	return nil, apperr.NotFound("Breeder")
}

func pageOf[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
