// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package catalog

import "time"

// # Status Vocabulary

// Status is a breeder's offering tag. The vocabulary is fixed; a breeder
// carries a non-empty subset of it.
type Status string

const (
	// StatusSale — the breeder sells colonies.
	StatusSale Status = "sale"
	// StatusExchange — the breeder trades colonies or genetic material.
	StatusExchange Status = "exchange"
	// StatusInformation — listed for contact and learning purposes only.
	StatusInformation Status = "information"
)

// ValidStatuses returns the fixed status vocabulary.
func ValidStatuses() []Status {
	return []Status{StatusSale, StatusExchange, StatusInformation}
}

// IsValidStatus reports whether s belongs to the fixed vocabulary.
func IsValidStatus(s Status) bool {
	return s == StatusSale || s == StatusExchange || s == StatusInformation
}

// # Entities

// Breeder is a registered stingless bee breeder in the directory.
type Breeder struct {
	ID string `json:"id"`

	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"`
	Bio      string `json:"bio"`

	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`

	// Latitude/Longitude are either both zero (location unresolved) or both
	// set to a real coordinate. The zero pair is the "unset" sentinel; no
	// breeder is located at the Gulf of Guinea null island.
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	Status   []Status `json:"status"`
	Verified bool     `json:"verified"`

	// RatingAvg is meaningful only when RatingCount > 0.
	RatingAvg   float64 `json:"rating_avg"`
	RatingCount int     `json:"rating_count"`

	// SpeciesSlugs lists the species this breeder manages, in slug form.
	SpeciesSlugs []string `json:"species"`

	// OwnerAccountID links to the authenticated account that claimed this
	// profile. Empty for directory entries not yet claimed.
	OwnerAccountID string `json:"owner_account_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasCoordinates reports whether the breeder's location has been resolved.
func (b *Breeder) HasCoordinates() bool {
	return b.Latitude != 0 || b.Longitude != 0
}
