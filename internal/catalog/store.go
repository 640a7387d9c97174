// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package catalog

import "context"

// # Catalog Data Access

// SpeciesRepository defines the data access contract for the species
// collection. Both the remote PostgreSQL store and the embedded reference
// dataset implement it, which is what lets the query planner swap sources
// without the caller noticing.
type SpeciesRepository interface {

	/*
		List returns a filtered, paginated slice of species and the total count.

		Parameters:
		  - context: context.Context
		  - descriptor: Descriptor (facets, search term)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Species: Slice of matching species
		  - int: Total count (see the embedded store for its documented
		    unfiltered-total deviation)
		  - error: Retrieval failures
	*/
	List(context context.Context, descriptor Descriptor, limit, offset int) ([]*Species, int, error)

	/*
		FindBySlug returns the species with the given slug identifier.

		Returns ErrNotFound if no such species exists in this source.
	*/
	FindBySlug(context context.Context, slug string) (*Species, error)

	/*
		ListAll returns every species record without filtering or paging.

		The identifier reconciler uses this to build its slug↔key index.
	*/
	ListAll(context context.Context) ([]*Species, error)
}

// BreederRepository defines the data access contract for the breeder
// directory.
type BreederRepository interface {

	/*
		List returns a filtered, paginated slice of breeders and the total count.
	*/
	List(context context.Context, descriptor Descriptor, limit, offset int) ([]*Breeder, int, error)

	/*
		FindByID returns the breeder with the given UUID.

		Returns ErrNotFound if no such breeder exists in this source.
	*/
	FindByID(context context.Context, id string) (*Breeder, error)
}
