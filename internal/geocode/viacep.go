// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// postalClientTimeout bounds one CEP lookup round-trip.
const postalClientTimeout = 5 * time.Second

// PostalClient is a ViaCEP-compatible CEP → address client.
type PostalClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewPostalClient constructs a postal lookup client against the given
// base URL (e.g. "https://viacep.com.br/ws").
func NewPostalClient(baseURL string) *PostalClient {
	return &PostalClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: postalClientTimeout},
	}
}

// viaCEPResponse mirrors the upstream JSON shape. The service reports an
// unknown CEP as 200 OK with {"erro": true}.
type viaCEPResponse struct {
	Street   string `json:"logradouro"`
	District string `json:"bairro"`
	City     string `json:"localidade"`
	State    string `json:"uf"`
	Error    bool   `json:"erro"`
}

// Lookup resolves a CEP to its structured address.
func (client *PostalClient) Lookup(ctx context.Context, cep string) (*PostalAddress, error) {
	normalized := strings.ReplaceAll(cep, "-", "")
	url := fmt.Sprintf("%s/%s/json/", client.baseURL, normalized)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("postal_request_build_failed: %w", err)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("postal_request_failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("postal_lookup_status_%d", response.StatusCode)
	}

	var payload viaCEPResponse
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("postal_response_decode_failed: %w", err)
	}
	if payload.Error || payload.City == "" {
		return nil, fmt.Errorf("postal_code_unknown: %s", cep)
	}

	return &PostalAddress{
		Street:   payload.Street,
		District: payload.District,
		City:     payload.City,
		State:    payload.State,
	}, nil
}
