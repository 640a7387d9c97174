// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// geocoderTimeout bounds one search round-trip.
	geocoderTimeout = 8 * time.Second

	// geocoderRate honors the public Nominatim usage policy of at most
	// one request per second per client.
	geocoderRate = rate.Limit(1)
)

// GeocoderClient is a Nominatim-compatible free-text search client. The
// upstream usage policy requires an identifying User-Agent on every
// request and at most one request per second; both are enforced here so
// no caller can violate them.
type GeocoderClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewGeocoderClient constructs a geocoder client. The userAgent must
// identify this deployment (the upstream service rejects anonymous
// clients).
func NewGeocoderClient(baseURL, userAgent string) *GeocoderClient {
	return &GeocoderClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: geocoderTimeout},
		limiter:    rate.NewLimiter(geocoderRate, 1),
	}
}

// nominatimResult mirrors one entry of the upstream JSON array;
// coordinates arrive as strings.
type nominatimResult struct {
	Latitude    string `json:"lat"`
	Longitude   string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Search geocodes a free-text address, returning the best match.
func (client *GeocoderClient) Search(ctx context.Context, query string) (*Location, error) {
	if err := client.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("geocoder_rate_wait_aborted: %w", err)
	}

	endpoint := fmt.Sprintf("%s/search?format=json&limit=1&q=%s", client.baseURL, url.QueryEscape(query))

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("geocoder_request_build_failed: %w", err)
	}
	request.Header.Set("User-Agent", client.userAgent)

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("geocoder_request_failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder_status_%d", response.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(response.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("geocoder_response_decode_failed: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("geocoder_no_match: %s", query)
	}

	latitude, err := strconv.ParseFloat(results[0].Latitude, 64)
	if err != nil {
		return nil, fmt.Errorf("geocoder_latitude_invalid: %w", err)
	}
	longitude, err := strconv.ParseFloat(results[0].Longitude, 64)
	if err != nil {
		return nil, fmt.Errorf("geocoder_longitude_invalid: %w", err)
	}

	return &Location{
		Latitude:    latitude,
		Longitude:   longitude,
		DisplayName: results[0].DisplayName,
		Precision:   PrecisionAddress,
	}, nil
}
