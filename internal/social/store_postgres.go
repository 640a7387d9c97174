// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package social

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rmonteiro/meliponario/internal/platform/database/schema"
	"github.com/rmonteiro/meliponario/internal/platform/dberr"
	"github.com/rmonteiro/meliponario/pkg/uuidv7"
)

// # PostgreSQL Repository

// postgresRepository implements the [Repository] interface using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the authoritative social store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// # Favorites

// AddFavorite inserts the bookmark pair; ON CONFLICT DO NOTHING makes the
// operation idempotent under optimistic replays.
func (repository *postgresRepository) AddFavorite(context context.Context, userID, breederID string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		ON CONFLICT (%s, %s) DO NOTHING
	`,
		schema.SocialFavorite.Table,
		schema.SocialFavorite.UserID, schema.SocialFavorite.BreederID,
		schema.SocialFavorite.UserID, schema.SocialFavorite.BreederID,
	)

	if _, err := repository.pool.Exec(context, query, userID, breederID); err != nil {
		return dberr.Wrap(err, "add_favorite")
	}
	return nil
}

func (repository *postgresRepository) RemoveFavorite(context context.Context, userID, breederID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s WHERE %s = $1 AND %s = $2
	`,
		schema.SocialFavorite.Table,
		schema.SocialFavorite.UserID, schema.SocialFavorite.BreederID,
	)

	if _, err := repository.pool.Exec(context, query, userID, breederID); err != nil {
		return dberr.Wrap(err, "remove_favorite")
	}
	return nil
}

func (repository *postgresRepository) ListFavorites(context context.Context, userID string) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC
	`,
		schema.SocialFavorite.BreederID,
		schema.SocialFavorite.Table,
		schema.SocialFavorite.UserID,
		schema.SocialFavorite.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_favorites")
	}
	defer rows.Close()

	var breederIDs []string
	for rows.Next() {
		var breederID string
		if err := rows.Scan(&breederID); err != nil {
			return nil, dberr.Wrap(err, "scan_favorite")
		}
		breederIDs = append(breederIDs, breederID)
	}

	return breederIDs, nil
}

// # Verification

func (repository *postgresRepository) SetVerification(context context.Context, breederID string, verified bool) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1
	`,
		schema.CoreBreeder.Table,
		schema.CoreBreeder.Verified,
		schema.CoreBreeder.UpdatedAt,
		schema.CoreBreeder.ID,
	)

	tag, err := repository.pool.Exec(context, query, breederID, verified)
	if err != nil {
		return dberr.Wrap(err, "set_verification")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Ratings

func (repository *postgresRepository) InsertRating(context context.Context, rating *Rating) error {
	if rating.ID == "" {
		rating.ID = uuidv7.Must()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING %s
	`,
		schema.SocialRating.Table,
		strings.Join(schema.SocialRating.Columns(), ", "),
		schema.SocialRating.CreatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		rating.ID, rating.BreederID, rating.AuthorID, rating.Score, rating.Comment,
	).Scan(&rating.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "insert_rating")
	}
	return nil
}

func (repository *postgresRepository) ListRatings(context context.Context, breederID string) ([]*Rating, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC
	`,
		strings.Join(schema.SocialRating.Columns(), ", "),
		schema.SocialRating.Table,
		schema.SocialRating.BreederID,
		schema.SocialRating.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, breederID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_ratings")
	}
	defer rows.Close()

	var ratings []*Rating
	for rows.Next() {
		rating := &Rating{}
		err := rows.Scan(
			&rating.ID,
			&rating.BreederID,
			&rating.AuthorID,
			&rating.Score,
			&rating.Comment,
			&rating.CreatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_rating")
		}
		ratings = append(ratings, rating)
	}

	return ratings, nil
}

// RefreshRatingAggregate recomputes the denormalized mean and count on
// the breeder row from the ratings table in a single statement.
func (repository *postgresRepository) RefreshRatingAggregate(context context.Context, breederID string) error {
	query := fmt.Sprintf(`
		UPDATE %s b SET
			%s = COALESCE(agg.mean, 0),
			%s = COALESCE(agg.count, 0),
			%s = NOW()
		FROM (
			SELECT AVG(%s)::float8 AS mean, COUNT(*)::int AS count
			FROM %s WHERE %s = $1
		) agg
		WHERE b.%s = $1
	`,
		schema.CoreBreeder.Table,
		schema.CoreBreeder.RatingAvg,
		schema.CoreBreeder.RatingCount,
		schema.CoreBreeder.UpdatedAt,
		schema.SocialRating.Score,
		schema.SocialRating.Table,
		schema.SocialRating.BreederID,
		schema.CoreBreeder.ID,
	)

	if _, err := repository.pool.Exec(context, query, breederID); err != nil {
		return dberr.Wrap(err, "refresh_rating_aggregate")
	}
	return nil
}
