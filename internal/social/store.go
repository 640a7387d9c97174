// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package social

import "context"

// # Social Data Access

// Repository defines the data access contract for the social domain.
//
// Two implementations exist: the PostgreSQL store (authoritative) and the
// Redis fallback store (durable offline journal). The coordinator picks
// one per mutation depending on backend availability, so both must honor
// the same idempotency semantics.
type Repository interface {

	/*
		AddFavorite records the (user, breeder) bookmark pair.

		Adding an existing pair is a no-op, not a conflict.

		Parameters:
		  - context: context.Context
		  - userID: string gateway-issued user identifier
		  - breederID: string breeder UUID

		Returns:
		  - error: Storage failures
	*/
	AddFavorite(context context.Context, userID, breederID string) error

	/*
		RemoveFavorite deletes the bookmark pair. Removing an absent pair
		is a no-op.
	*/
	RemoveFavorite(context context.Context, userID, breederID string) error

	/*
		ListFavorites returns the breeder UUIDs a user has bookmarked.
	*/
	ListFavorites(context context.Context, userID string) ([]string, error)

	/*
		SetVerification flips a breeder's community verification flag.
	*/
	SetVerification(context context.Context, breederID string, verified bool) error

	/*
		InsertRating persists a new rating.

		The rating aggregate on the breeder profile is a dependent write;
		it is refreshed separately via RefreshRatingAggregate so that an
		aggregate failure does not lose the rating itself.
	*/
	InsertRating(context context.Context, rating *Rating) error

	/*
		ListRatings returns a breeder's ratings, newest first.
	*/
	ListRatings(context context.Context, breederID string) ([]*Rating, error)

	/*
		RefreshRatingAggregate recomputes the breeder's rating mean and
		count from the ratings collection.
	*/
	RefreshRatingAggregate(context context.Context, breederID string) error
}
