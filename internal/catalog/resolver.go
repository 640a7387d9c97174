// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package catalog

import (
	"context"
	"log/slog"
	"sync"

	"github.com/rmonteiro/meliponario/pkg/uuidv7"
)

// # Identifier Reconciliation

// Resolver translates between the two species identifier vocabularies:
// human-readable slugs (routing, embedded dataset) and remote UUID keys
// (relational joins in the backend).
//
// The index is built once from the remote species catalogue and reused for
// the process lifetime; the catalogue is small and effectively static. The
// resolver fails closed: when the index cannot be built or an identifier
// is unknown, it returns the empty string and callers must treat the
// translation as unavailable rather than write an untranslated value.
type Resolver struct {
	source SpeciesRepository
	logger *slog.Logger

	mu        sync.RWMutex
	slugToKey map[string]string
	keyToSlug map[string]string
	loaded    bool
}

// NewResolver constructs a resolver over the remote species catalogue.
// A nil source yields a resolver whose translations are always empty.
func NewResolver(source SpeciesRepository, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{source: source, logger: logger}
}

// Load builds the slug↔key index. It is called once during startup when
// the backend is configured; translation methods also trigger it lazily
// so a backend that comes up late still gets an index.
func (resolver *Resolver) Load(context context.Context) error {
	if resolver.source == nil {
		return nil
	}

	species, err := resolver.source.ListAll(context)
	if err != nil {
		return err
	}

	slugToKey := make(map[string]string, len(species))
	keyToSlug := make(map[string]string, len(species))
	for _, record := range species {
		if record.Slug == "" || record.RemoteID == "" {
			continue
		}
		slugToKey[record.Slug] = record.RemoteID
		keyToSlug[record.RemoteID] = record.Slug
	}

	resolver.mu.Lock()
	resolver.slugToKey = slugToKey
	resolver.keyToSlug = keyToSlug
	resolver.loaded = true
	resolver.mu.Unlock()

	resolver.logger.Info("species identifier index loaded", "entries", len(slugToKey))
	return nil
}

/*
RemoteKey translates a species identifier into the remote UUID key.

Description: Inputs already in UUID form pass through unchanged, so
callers can hand over whichever identifier they hold. Unknown slugs and
an unavailable index both yield "" — never a guessed or passed-through
slug, which would corrupt the remote join table.

Parameters:
  - context: context.Context (used only when the index loads lazily)
  - identifier: species slug or UUID key

Returns:
  - string: The UUID key, or "" when no safe translation exists
*/
func (resolver *Resolver) RemoteKey(context context.Context, identifier string) string {
	if identifier == "" {
		return ""
	}
	if uuidv7.IsValid(identifier) {
		return identifier
	}
	if !resolver.ensureLoaded(context) {
		return ""
	}

	resolver.mu.RLock()
	defer resolver.mu.RUnlock()
	return resolver.slugToKey[identifier]
}

/*
Slug translates a species identifier into the human-readable slug.

Non-UUID inputs are assumed to already be slugs and pass through
unchanged. Unknown keys yield "".
*/
func (resolver *Resolver) Slug(context context.Context, identifier string) string {
	if identifier == "" {
		return ""
	}
	if !uuidv7.IsValid(identifier) {
		return identifier
	}
	if !resolver.ensureLoaded(context) {
		return ""
	}

	resolver.mu.RLock()
	defer resolver.mu.RUnlock()
	return resolver.keyToSlug[identifier]
}

// ensureLoaded reports whether the index is usable, building it on first
// use. Load failures are logged and reported as unusable, not retried in
// a loop; the next translation attempt will try again.
func (resolver *Resolver) ensureLoaded(context context.Context) bool {
	resolver.mu.RLock()
	loaded := resolver.loaded
	resolver.mu.RUnlock()
	if loaded {
		return true
	}
	if resolver.source == nil {
		return false
	}

	if err := resolver.Load(context); err != nil {
		resolver.logger.Warn("species identifier index unavailable", "error", err)
		return false
	}
	return true
}
