// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package geocode_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmonteiro/meliponario/internal/geocode"
)

// chainFixture wires a resolver against stub postal and geocoder servers
// with per-service call counters.
type chainFixture struct {
	resolver      *geocode.Resolver
	postalCalls   *atomic.Int32
	geocoderCalls *atomic.Int32
}

func newChainFixture(t *testing.T, postalFails, geocoderFails bool) *chainFixture {
	t.Helper()
	postalCalls := &atomic.Int32{}
	geocoderCalls := &atomic.Int32{}

	postalServer := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		postalCalls.Add(1)
		if postalFails {
			writer.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(writer, `{"logradouro":"Praça da Sé","bairro":"Sé","localidade":"São Paulo","uf":"SP"}`)
	}))
	t.Cleanup(postalServer.Close)

	geocoderServer := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		geocoderCalls.Add(1)
		require.NotEmpty(t, request.Header.Get("User-Agent"), "geocoder requests must identify the client")
		if geocoderFails {
			fmt.Fprint(writer, `[]`)
			return
		}
		fmt.Fprint(writer, `[{"lat":"-23.5505","lon":"-46.6333","display_name":"São Paulo, Brasil"}]`)
	}))
	t.Cleanup(geocoderServer.Close)

	resolver := geocode.NewResolver(
		geocode.NewPostalClient(postalServer.URL),
		geocode.NewGeocoderClient(geocoderServer.URL, "meliponario-api-test/0.1"),
		nil,
	)
	return &chainFixture{resolver: resolver, postalCalls: postalCalls, geocoderCalls: geocoderCalls}
}

/*
TestResolver_PostalStepWins verifies the happy path: the CEP resolves to
a structured address, which is then geocoded — one call to each service,
address precision on the result.
*/
func TestResolver_PostalStepWins(t *testing.T) {
	fixture := newChainFixture(t, false, false)

	location := fixture.resolver.Resolve(context.Background(), geocode.Query{PostalCode: "01001-000"})

	require.NotNil(t, location)
	assert.InDelta(t, -23.5505, location.Latitude, 0.0001)
	assert.InDelta(t, -46.6333, location.Longitude, 0.0001)
	assert.Equal(t, geocode.PrecisionAddress, location.Precision)
	assert.Equal(t, int32(1), fixture.postalCalls.Load())
	assert.Equal(t, int32(1), fixture.geocoderCalls.Load())
}

/*
TestResolver_ChainOrder verifies the fallback ordering: a failing postal
step hands over to the free-text geocode, and only the needed steps run.
*/
func TestResolver_ChainOrder(t *testing.T) {
	fixture := newChainFixture(t, true, false)

	location := fixture.resolver.Resolve(context.Background(), geocode.Query{
		PostalCode: "01001-000",
		City:       "São Paulo",
		State:      "SP",
	})

	require.NotNil(t, location)
	assert.Equal(t, geocode.PrecisionAddress, location.Precision)
	assert.Equal(t, int32(1), fixture.postalCalls.Load())
	// Postal failed before reaching the geocoder, so only the free-text
	// step called it.
	assert.Equal(t, int32(1), fixture.geocoderCalls.Load())
}

/*
TestResolver_CentroidFallback covers the final chain step: the postal
lookup fails, the free-text geocode finds nothing, and with a state code
present the result is the tabulated São Paulo centroid.
*/
func TestResolver_CentroidFallback(t *testing.T) {
	fixture := newChainFixture(t, true, true)

	location := fixture.resolver.Resolve(context.Background(), geocode.Query{
		PostalCode: "01234-567",
		State:      "SP",
	})

	require.NotNil(t, location)
	expected, found := geocode.Centroid("SP")
	require.True(t, found)
	assert.Equal(t, expected.Latitude, location.Latitude)
	assert.Equal(t, expected.Longitude, location.Longitude)
	assert.Equal(t, geocode.PrecisionCentroid, location.Precision)
}

/*
TestResolver_ExhaustionReturnsNil verifies that a fully failed chain with
no state code yields nil, not an error.
*/
func TestResolver_ExhaustionReturnsNil(t *testing.T) {
	fixture := newChainFixture(t, true, true)

	location := fixture.resolver.Resolve(context.Background(), geocode.Query{
		PostalCode: "99999-999",
		City:       "Lugar Nenhum",
	})

	assert.Nil(t, location)
}

/*
TestResolver_CachesByComposedQuery verifies the process-lifetime cache:
repeating an identical query issues no further external calls, and a
resolved exhaustion is cached too.
*/
func TestResolver_CachesByComposedQuery(t *testing.T) {
	t.Run("successful_resolution", func(t *testing.T) {
		fixture := newChainFixture(t, false, false)
		query := geocode.Query{PostalCode: "01001-000"}

		first := fixture.resolver.Resolve(context.Background(), query)
		second := fixture.resolver.Resolve(context.Background(), query)

		require.NotNil(t, first)
		assert.Equal(t, first, second)
		assert.Equal(t, int32(1), fixture.postalCalls.Load())
		assert.Equal(t, int32(1), fixture.geocoderCalls.Load())
	})

	t.Run("cached_exhaustion", func(t *testing.T) {
		fixture := newChainFixture(t, true, true)
		query := geocode.Query{City: "Lugar Nenhum"}

		assert.Nil(t, fixture.resolver.Resolve(context.Background(), query))
		assert.Nil(t, fixture.resolver.Resolve(context.Background(), query))
		assert.Equal(t, int32(1), fixture.geocoderCalls.Load())
	})
}

/*
TestResolver_CanceledCallerDoesNotPoisonCache verifies that exhaustion
caused by the caller's own context is not cached: a request abandoned
mid-resolve must not pin its query to "no location" while the services
are healthy.
*/
func TestResolver_CanceledCallerDoesNotPoisonCache(t *testing.T) {
	fixture := newChainFixture(t, false, false)
	// No state code, so the offline centroid step cannot answer.
	query := geocode.Query{City: "São Paulo"}

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Nil(t, fixture.resolver.Resolve(canceled, query))

	location := fixture.resolver.Resolve(context.Background(), query)
	require.NotNil(t, location)
	assert.Equal(t, geocode.PrecisionAddress, location.Precision)
	assert.Equal(t, int32(1), fixture.geocoderCalls.Load())
}

/*
TestCentroid covers the federative-unit table: full coverage, case
folding, and the unknown-code miss.
*/
func TestCentroid(t *testing.T) {
	t.Run("all_federative_units", func(t *testing.T) {
		codes := []string{
			"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO",
			"MA", "MT", "MS", "MG", "PA", "PB", "PR", "PE", "PI",
			"RJ", "RN", "RS", "RO", "RR", "SC", "SP", "SE", "TO",
		}
		for _, code := range codes {
			location, found := geocode.Centroid(code)
			require.True(t, found, code)
			assert.NotZero(t, location.Latitude, code)
			assert.NotZero(t, location.Longitude, code)
			assert.Equal(t, geocode.PrecisionCentroid, location.Precision)
		}
	})

	t.Run("case_insensitive", func(t *testing.T) {
		upper, _ := geocode.Centroid("BA")
		lower, found := geocode.Centroid("ba")
		require.True(t, found)
		assert.Equal(t, upper, lower)
	})

	t.Run("unknown_code", func(t *testing.T) {
		_, found := geocode.Centroid("XX")
		assert.False(t, found)
	})
}
