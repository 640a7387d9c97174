// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rmonteiro/meliponario/internal/platform/apperr"
	"github.com/rmonteiro/meliponario/internal/platform/database/schema"
	"github.com/rmonteiro/meliponario/internal/platform/dberr"
)

// breederRepository implements the [BreederRepository] interface using pgx.
type breederRepository struct {
	pool *pgxpool.Pool
}

// NewBreederRepository constructs a PostgreSQL backed breeder store.
func NewBreederRepository(pool *pgxpool.Pool) BreederRepository {
	return &breederRepository{pool: pool}
}

// # Breeder Repository Implementation

/*
List returns a filtered, paginated slice of breeders and the total count.

Description: Directory rows carry their managed species as slugs, not as
join-table UUIDs, so the query aggregates the junction table through the
species table in a correlated sub-query (array_agg over the join). The
remaining facets follow the catalogue pattern: ANY($n) for state
membership, && for offering-tag overlap, COUNT(*) OVER() for the total,
and unaccented full-text search over name and city.

Parameters:
  - context: context.Context
  - descriptor: Descriptor (facets, search term)
  - limit: int
  - offset: int

Returns:
  - []*Breeder: Slice of hydrated breeder profiles
  - int: Total count matching filters
  - error: Database execution errors
*/
func (repository *breederRepository) List(context context.Context, descriptor Descriptor, limit, offset int) ([]*Breeder, int, error) {

	// Query build initialization
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT
			b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s,
			b.%s, b.%s, b.%s, b.%s, b.%s, b.%s,
			b.%s, b.%s,
			COUNT(*) OVER() AS total_count,
			COALESCE((
				SELECT array_agg(sp.%s ORDER BY sp.%s)
				FROM %s sp
				JOIN %s bs ON sp.%s = bs.%s
				WHERE bs.%s = b.%s
			), '{}') AS speciesslugs
		FROM %s b
		WHERE TRUE
	`,
		schema.CoreBreeder.ID,
		schema.CoreBreeder.Name,
		schema.CoreBreeder.WhatsApp,
		schema.CoreBreeder.Bio,
		schema.CoreBreeder.City,
		schema.CoreBreeder.State,
		schema.CoreBreeder.PostalCode,
		schema.CoreBreeder.Latitude,
		schema.CoreBreeder.Longitude,
		schema.CoreBreeder.Status,
		schema.CoreBreeder.Verified,
		schema.CoreBreeder.RatingAvg,
		schema.CoreBreeder.RatingCount,
		schema.CoreBreeder.CreatedAt,
		schema.CoreBreeder.UpdatedAt,
		schema.CoreSpecies.Slug, schema.CoreSpecies.Slug,
		schema.CoreSpecies.Table,
		schema.CoreBreederSpecies.Table,
		schema.CoreSpecies.ID, schema.CoreBreederSpecies.SpeciesID,
		schema.CoreBreederSpecies.BreederID, schema.CoreBreeder.ID,
		schema.CoreBreeder.Table,
	))

	// Apply Filters (Dynamic WHERE clause construction)
	if len(descriptor.States) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND b.%s = ANY($%d)", schema.CoreBreeder.State, argID))
		args = append(args, descriptor.States)
		argID++
	}

	// Offering Tag Overlap Filtering
	if len(descriptor.Statuses) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND b.%s && $%d::text[]", schema.CoreBreeder.Status, argID))
		args = append(args, descriptor.Statuses)
		argID++
	}

	// Managed Species Filtering
	if len(descriptor.SpeciesSlugs) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM %s bs
			JOIN %s sp ON sp.%s = bs.%s
			WHERE bs.%s = b.%s AND sp.%s = ANY($%d)
		)`,
			schema.CoreBreederSpecies.Table,
			schema.CoreSpecies.Table,
			schema.CoreSpecies.ID, schema.CoreBreederSpecies.SpeciesID,
			schema.CoreBreederSpecies.BreederID, schema.CoreBreeder.ID,
			schema.CoreSpecies.Slug, argID,
		))
		args = append(args, descriptor.SpeciesSlugs)
		argID++
	}

	// Verification Flag Filtering
	if descriptor.Verified != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND b.%s = $%d", schema.CoreBreeder.Verified, argID))
		args = append(args, *descriptor.Verified)
		argID++
	}

	// Search Term Filtering
	if descriptor.Term != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND b.%s @@ websearch_to_tsquery('simple', unaccent($%d))", schema.CoreBreeder.SearchVector, argID))
		args = append(args, descriptor.Term)
		argID++
	}

	// Verified profiles first, then by reputation
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY b.%s DESC, b.%s DESC, b.%s ASC",
		schema.CoreBreeder.Verified, schema.CoreBreeder.RatingAvg, schema.CoreBreeder.ID))

	// Pagination injection
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	// Query Execution
	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_breeders")
	}
	defer rows.Close()

	var breeders []*Breeder
	var totalCount int

	// Iterate over rows
	for rows.Next() {
		record := &Breeder{}
		var statuses []string
		err := rows.Scan(
			&record.ID,
			&record.Name,
			&record.WhatsApp,
			&record.Bio,
			&record.City,
			&record.State,
			&record.PostalCode,
			&record.Latitude,
			&record.Longitude,
			&statuses,
			&record.Verified,
			&record.RatingAvg,
			&record.RatingCount,
			&record.CreatedAt,
			&record.UpdatedAt,
			&totalCount,
			&record.SpeciesSlugs,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_breeder")
		}

		record.Status = statusesFromStrings(statuses)
		breeders = append(breeders, record)
	}

	return breeders, totalCount, nil
}

/*
FindByID retrieves a breeder profile by its UUID primary key.

Parameters:
  - context: context.Context
  - id: string UUID primary key

Returns:
  - *Breeder: The hydrated breeder profile including managed species slugs
  - error: apperr.NotFound if the breeder does not exist, execution errors otherwise
*/
func (repository *breederRepository) FindByID(context context.Context, id string) (*Breeder, error) {

	query := fmt.Sprintf(`
		SELECT
			b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s,
			b.%s, b.%s, b.%s, b.%s, b.%s, b.%s,
			b.%s, b.%s, b.%s,
			COALESCE((
				SELECT array_agg(sp.%s ORDER BY sp.%s)
				FROM %s sp
				JOIN %s bs ON sp.%s = bs.%s
				WHERE bs.%s = b.%s
			), '{}') AS speciesslugs
		FROM %s b
		WHERE b.%s = $1
	`,
		schema.CoreBreeder.ID,
		schema.CoreBreeder.Name,
		schema.CoreBreeder.WhatsApp,
		schema.CoreBreeder.Bio,
		schema.CoreBreeder.City,
		schema.CoreBreeder.State,
		schema.CoreBreeder.PostalCode,
		schema.CoreBreeder.Latitude,
		schema.CoreBreeder.Longitude,
		schema.CoreBreeder.Status,
		schema.CoreBreeder.Verified,
		schema.CoreBreeder.RatingAvg,
		schema.CoreBreeder.RatingCount,
		schema.CoreBreeder.OwnerAccount,
		schema.CoreBreeder.CreatedAt,
		schema.CoreBreeder.UpdatedAt,
		schema.CoreSpecies.Slug, schema.CoreSpecies.Slug,
		schema.CoreSpecies.Table,
		schema.CoreBreederSpecies.Table,
		schema.CoreSpecies.ID, schema.CoreBreederSpecies.SpeciesID,
		schema.CoreBreederSpecies.BreederID, schema.CoreBreeder.ID,
		schema.CoreBreeder.Table,
		schema.CoreBreeder.ID,
	)

	record := &Breeder{}
	var statuses []string
	var ownerAccount *string
	err := repository.pool.QueryRow(context, query, id).Scan(
		&record.ID,
		&record.Name,
		&record.WhatsApp,
		&record.Bio,
		&record.City,
		&record.State,
		&record.PostalCode,
		&record.Latitude,
		&record.Longitude,
		&statuses,
		&record.Verified,
		&record.RatingAvg,
		&record.RatingCount,
		&ownerAccount,
		&record.CreatedAt,
		&record.UpdatedAt,
		&record.SpeciesSlugs,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Breeder")
		}
		return nil, dberr.Wrap(err, "find_breeder_by_id")
	}

	record.Status = statusesFromStrings(statuses)
	if ownerAccount != nil {
		record.OwnerAccountID = *ownerAccount
	}

	return record, nil
}

func statusesFromStrings(values []string) []Status {
	statuses := make([]Status, 0, len(values))
	for _, value := range values {
		statuses = append(statuses, Status(value))
	}
	return statuses
}
