// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

/*
Package geocode resolves partial Brazilian addresses to map coordinates
through a chain of increasingly coarse strategies:

 1. Postal-code lookup (CEP → structured address) followed by a free-text
    geocode of that address.
 2. Free-text geocode of whatever fields are present, qualified with the
    country.
 3. The pre-tabulated centroid of the federative unit, when a state code
    is present.

The first strategy to produce a coordinate wins. Step failures (network,
rate limits, empty responses) are never fatal — the chain proceeds — and
full exhaustion yields nil, not an error. Results are cached for the
process lifetime keyed by the composed query, with singleflight collapsing
concurrent identical lookups.
*/
package geocode

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Query is a partial address. Every field is optional, but a resolution
// can only succeed when at least one of PostalCode, City, or State is set.
type Query struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

// Empty reports whether the query carries nothing resolvable.
func (query Query) Empty() bool {
	return query.PostalCode == "" && query.City == "" && query.State == "" && query.Street == ""
}

// cacheKey composes the canonical process-lifetime cache key.
func (query Query) cacheKey() string {
	return strings.ToLower(strings.Join([]string{
		query.Street, query.City, query.State, query.PostalCode,
	}, "|"))
}

// freeText composes the human-readable search string for the free-text
// geocoder, with the country qualifier the external service expects.
func (query Query) freeText() string {
	var parts []string
	for _, part := range []string{query.Street, query.City, query.State} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	parts = append(parts, "Brasil")
	return strings.Join(parts, ", ")
}

// Precision grades how trustworthy a resolved coordinate is.
type Precision string

const (
	// PrecisionAddress marks coordinates geocoded from a postal or
	// free-text address.
	PrecisionAddress Precision = "address"
	// PrecisionCentroid marks the state-centroid fallback; callers must
	// not present it as the subject's actual location.
	PrecisionCentroid Precision = "centroid"
)

// Location is a resolved coordinate.
type Location struct {
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	DisplayName string    `json:"display_name"`
	Precision   Precision `json:"precision"`
}

// PostalAddress is the structured address a postal-code lookup returns.
type PostalAddress struct {
	Street   string
	District string
	City     string
	State    string
}

// postalLookup is the CEP → structured address client contract.
type postalLookup interface {
	Lookup(ctx context.Context, cep string) (*PostalAddress, error)
}

// textGeocoder is the free-text → coordinate client contract.
type textGeocoder interface {
	Search(ctx context.Context, query string) (*Location, error)
}

// Resolver runs the resolution chain.
type Resolver struct {
	postal   postalLookup
	geocoder textGeocoder
	logger   *slog.Logger

	group singleflight.Group

	mu    sync.RWMutex
	cache map[string]*Location
}

// NewResolver constructs a resolver over the given clients. Either client
// may be nil, in which case its step is skipped.
func NewResolver(postal postalLookup, geocoder textGeocoder, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		postal:   postal,
		geocoder: geocoder,
		logger:   logger,
		cache:    make(map[string]*Location),
	}
}

/*
Resolve runs the chain for a partial address.

Description: Consults the process-lifetime cache first; concurrent
identical queries share a single in-flight resolution via singleflight.
Exhaustion (or an empty query) returns nil with no error — the caller
renders "no location", nothing failed.

Parameters:
  - context: context.Context; cancellation aborts in-flight HTTP steps

Returns:
  - *Location: The first coordinate the chain produced, or nil
*/
func (resolver *Resolver) Resolve(context context.Context, query Query) *Location {
	if query.Empty() {
		return nil
	}

	key := query.cacheKey()
	resolver.mu.RLock()
	location, cached := resolver.cache[key]
	resolver.mu.RUnlock()
	if cached {
		return location
	}

	// Exhaustion is cached too: repeating a hopeless lookup on every
	// render would hammer the external services.
	result, _, _ := resolver.group.Do(key, func() (interface{}, error) {
		location := resolver.runChain(context, query)
		if location == nil && context.Err() != nil {
			// The chain came up empty because the caller went away,
			// not because the services refused the query. Caching that
			// nil would pin this key to "no location" for the process
			// lifetime.
			return (*Location)(nil), nil
		}
		resolver.mu.Lock()
		resolver.cache[key] = location
		resolver.mu.Unlock()
		return location, nil
	})

	location, _ = result.(*Location)
	return location
}

// runChain executes the ordered strategies; first success wins.
func (resolver *Resolver) runChain(context context.Context, query Query) *Location {
	if location := resolver.tryPostal(context, query); location != nil {
		return location
	}
	if location := resolver.tryFreeText(context, query); location != nil {
		return location
	}
	if location, found := Centroid(query.State); found {
		return location
	}

	resolver.logger.Info("geocoding chain exhausted",
		"city", query.City, "state", query.State, "postal_code", query.PostalCode)
	return nil
}

// tryPostal resolves the CEP to a structured address and geocodes it.
func (resolver *Resolver) tryPostal(context context.Context, query Query) *Location {
	if resolver.postal == nil || query.PostalCode == "" {
		return nil
	}

	address, err := resolver.postal.Lookup(context, query.PostalCode)
	if err != nil {
		resolver.logger.Warn("postal lookup step failed", "postal_code", query.PostalCode, "error", err)
		return nil
	}

	structured := Query{
		Street: address.Street,
		City:   address.City,
		State:  address.State,
	}
	return resolver.tryFreeText(context, structured)
}

// tryFreeText geocodes the concatenated available fields.
func (resolver *Resolver) tryFreeText(context context.Context, query Query) *Location {
	if resolver.geocoder == nil {
		return nil
	}
	if query.Street == "" && query.City == "" && query.State == "" {
		return nil
	}

	location, err := resolver.geocoder.Search(context, query.freeText())
	if err != nil {
		resolver.logger.Warn("free-text geocode step failed", "query", query.freeText(), "error", err)
		return nil
	}
	return location
}
