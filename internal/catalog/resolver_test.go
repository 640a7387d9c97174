// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmonteiro/meliponario/internal/catalog"
)

const jataiKey = "0195b230-41aa-7bbf-9d1c-3f13a6a64301"

func indexedSpecies() []*catalog.Species {
	return []*catalog.Species{
		{Slug: "jatai", RemoteID: jataiKey, ScientificName: "Tetragonisca angustula"},
		{Slug: "mandacaia", RemoteID: "0195b230-41aa-7bbf-9d1c-3f13a6a64302", ScientificName: "Melipona quadrifasciata"},
	}
}

/*
TestResolver_Translation covers both directions of the slug↔key mapping,
including pass-through of identifiers already in the target form.
*/
func TestResolver_Translation(t *testing.T) {
	source := &fakeSpeciesRepo{species: indexedSpecies()}
	resolver := catalog.NewResolver(source, nil)
	require.NoError(t, resolver.Load(context.Background()))

	tests := []struct {
		name       string
		call       func() string
		want       string
	}{
		{"slug_to_key", func() string { return resolver.RemoteKey(context.Background(), "jatai") }, jataiKey},
		{"key_passes_through", func() string { return resolver.RemoteKey(context.Background(), jataiKey) }, jataiKey},
		{"key_to_slug", func() string { return resolver.Slug(context.Background(), jataiKey) }, "jatai"},
		{"slug_passes_through", func() string { return resolver.Slug(context.Background(), "mandacaia") }, "mandacaia"},
		{"unknown_slug_fails_closed", func() string { return resolver.RemoteKey(context.Background(), "abelha-europeia") }, ""},
		{"unknown_key_fails_closed", func() string { return resolver.Slug(context.Background(), "0195b230-0000-7000-8000-999999999999") }, ""},
		{"empty_identifier", func() string { return resolver.RemoteKey(context.Background(), "") }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.call())
		})
	}
}

/*
TestResolver_FailsClosedWhenIndexUnavailable verifies that a backend that
cannot serve the index yields empty translations instead of guessed or
passed-through values: an untranslated slug must never reach the remote
join table.
*/
func TestResolver_FailsClosedWhenIndexUnavailable(t *testing.T) {
	t.Run("source_error", func(t *testing.T) {
		source := &fakeSpeciesRepo{err: errBackendDown}
		resolver := catalog.NewResolver(source, nil)

		assert.Empty(t, resolver.RemoteKey(context.Background(), "jatai"))
		assert.Empty(t, resolver.Slug(context.Background(), jataiKey))
	})

	t.Run("nil_source", func(t *testing.T) {
		resolver := catalog.NewResolver(nil, nil)

		assert.Empty(t, resolver.RemoteKey(context.Background(), "jatai"))
	})

	t.Run("lazy_load_after_recovery", func(t *testing.T) {
		source := &fakeSpeciesRepo{err: errBackendDown}
		resolver := catalog.NewResolver(source, nil)
		assert.Empty(t, resolver.RemoteKey(context.Background(), "jatai"))

		// Backend comes back; the next translation rebuilds the index.
		source.err = nil
		source.species = indexedSpecies()
		assert.Equal(t, jataiKey, resolver.RemoteKey(context.Background(), "jatai"))
	})
}
