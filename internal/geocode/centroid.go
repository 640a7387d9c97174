// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package geocode

import "strings"

// stateCentroids holds a coarse reference coordinate for each of the 27
// Brazilian federative units. Values are approximate geographic centers,
// good enough to place a pin in the right part of the country when no
// finer resolution exists.
var stateCentroids = map[string]Location{
	"AC": {Latitude: -9.0238, Longitude: -70.8120, DisplayName: "Acre, Brasil"},
	"AL": {Latitude: -9.5713, Longitude: -36.7820, DisplayName: "Alagoas, Brasil"},
	"AP": {Latitude: 0.9020, Longitude: -52.0030, DisplayName: "Amapá, Brasil"},
	"AM": {Latitude: -3.4168, Longitude: -65.8561, DisplayName: "Amazonas, Brasil"},
	"BA": {Latitude: -12.5797, Longitude: -41.7007, DisplayName: "Bahia, Brasil"},
	"CE": {Latitude: -5.4984, Longitude: -39.3206, DisplayName: "Ceará, Brasil"},
	"DF": {Latitude: -15.7998, Longitude: -47.8645, DisplayName: "Distrito Federal, Brasil"},
	"ES": {Latitude: -19.1834, Longitude: -40.3089, DisplayName: "Espírito Santo, Brasil"},
	"GO": {Latitude: -15.8270, Longitude: -49.8362, DisplayName: "Goiás, Brasil"},
	"MA": {Latitude: -4.9609, Longitude: -45.2744, DisplayName: "Maranhão, Brasil"},
	"MT": {Latitude: -12.6819, Longitude: -56.9211, DisplayName: "Mato Grosso, Brasil"},
	"MS": {Latitude: -20.7722, Longitude: -54.7852, DisplayName: "Mato Grosso do Sul, Brasil"},
	"MG": {Latitude: -18.5122, Longitude: -44.5550, DisplayName: "Minas Gerais, Brasil"},
	"PA": {Latitude: -3.9999, Longitude: -51.9253, DisplayName: "Pará, Brasil"},
	"PB": {Latitude: -7.2399, Longitude: -36.7819, DisplayName: "Paraíba, Brasil"},
	"PR": {Latitude: -24.8932, Longitude: -51.4386, DisplayName: "Paraná, Brasil"},
	"PE": {Latitude: -8.8137, Longitude: -36.9541, DisplayName: "Pernambuco, Brasil"},
	"PI": {Latitude: -7.7183, Longitude: -42.7289, DisplayName: "Piauí, Brasil"},
	"RJ": {Latitude: -22.2587, Longitude: -42.6527, DisplayName: "Rio de Janeiro, Brasil"},
	"RN": {Latitude: -5.4026, Longitude: -36.9541, DisplayName: "Rio Grande do Norte, Brasil"},
	"RS": {Latitude: -30.0346, Longitude: -53.2177, DisplayName: "Rio Grande do Sul, Brasil"},
	"RO": {Latitude: -11.5057, Longitude: -63.5806, DisplayName: "Rondônia, Brasil"},
	"RR": {Latitude: 2.7376, Longitude: -62.0751, DisplayName: "Roraima, Brasil"},
	"SC": {Latitude: -27.2423, Longitude: -50.2189, DisplayName: "Santa Catarina, Brasil"},
	"SP": {Latitude: -22.1900, Longitude: -48.7920, DisplayName: "São Paulo, Brasil"},
	"SE": {Latitude: -10.5741, Longitude: -37.3857, DisplayName: "Sergipe, Brasil"},
	"TO": {Latitude: -10.1753, Longitude: -48.2982, DisplayName: "Tocantins, Brasil"},
}

// Centroid returns the coarse reference coordinate for a federative unit
// code ("SP", "ba"). The returned location is a fresh value marked with
// centroid precision.
func Centroid(state string) (*Location, bool) {
	centroid, found := stateCentroids[strings.ToUpper(strings.TrimSpace(state))]
	if !found {
		return nil, false
	}
	centroid.Precision = PrecisionCentroid
	return &centroid, true
}
