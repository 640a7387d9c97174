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

// # PostgreSQL Repositories

// speciesRepository implements the [SpeciesRepository] interface using pgx.
type speciesRepository struct {
	pool *pgxpool.Pool
}

// NewSpeciesRepository constructs a PostgreSQL backed species store.
func NewSpeciesRepository(pool *pgxpool.Pool) SpeciesRepository {
	return &speciesRepository{pool: pool}
}

// # Species Repository Implementation

/*
List returns a filtered, paginated slice of species and the total count.

Description: The query leans on PostgreSQL features to answer a faceted
catalogue view in a single round-trip:
  - Window Function: COUNT(*) OVER() retrieves the total record count
    without a second query.
  - Set Operations: ANY($n) covers the scalar facets (size, yield,
    difficulty, conservation) and the && array operator covers biome
    overlap.
  - Full-Text Search: websearch_to_tsquery over an unaccented search
    vector gives accent-insensitive matching on scientific and popular
    names, mirroring the normalized containment match the embedded
    dataset applies locally.

Parameters:
  - context: context.Context
  - descriptor: Descriptor (facets, search term)
  - limit: int
  - offset: int

Returns:
  - []*Species: Slice of matching species
  - int: Total count matching filters
  - error: Database execution errors
*/
func (repository *speciesRepository) List(context context.Context, descriptor Descriptor, limit, offset int) ([]*Species, int, error) {

	// Query build initialization
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT
			s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s,
			s.%s, s.%s, s.%s, s.%s,
			s.%s, s.%s, s.%s, s.%s, s.%s,
			s.%s, s.%s, s.%s, s.%s, s.%s,
			COUNT(*) OVER() AS total_count
		FROM %s s
		WHERE TRUE
	`,
		schema.CoreSpecies.ID,
		schema.CoreSpecies.Slug,
		schema.CoreSpecies.ScientificName,
		schema.CoreSpecies.PopularNames,
		schema.CoreSpecies.Family,
		schema.CoreSpecies.Genus,
		schema.CoreSpecies.Subgenus,
		schema.CoreSpecies.Size,
		schema.CoreSpecies.HoneyYield,
		schema.CoreSpecies.Difficulty,
		schema.CoreSpecies.Conservation,
		schema.CoreSpecies.Behavior,
		schema.CoreSpecies.HoneyTaste,
		schema.CoreSpecies.HoneyColor,
		schema.CoreSpecies.HoneyYieldKg,
		schema.CoreSpecies.HoneyNotes,
		schema.CoreSpecies.Biomes,
		schema.CoreSpecies.CareNotes,
		schema.CoreSpecies.Sources,
		schema.CoreSpecies.CreatedAt,
		schema.CoreSpecies.UpdatedAt,
		schema.CoreSpecies.Table,
	))

	// Apply Filters (Dynamic WHERE clause construction)
	if len(descriptor.Sizes) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND s.%s = ANY($%d)", schema.CoreSpecies.Size, argID))
		args = append(args, descriptor.Sizes)
		argID++
	}

	// Honey Yield Filtering
	if len(descriptor.HoneyYields) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND s.%s = ANY($%d)", schema.CoreSpecies.HoneyYield, argID))
		args = append(args, descriptor.HoneyYields)
		argID++
	}

	// Management Difficulty Filtering
	if len(descriptor.Difficulties) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND s.%s = ANY($%d)", schema.CoreSpecies.Difficulty, argID))
		args = append(args, descriptor.Difficulties)
		argID++
	}

	// Conservation Status Filtering
	if len(descriptor.Conservations) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND s.%s = ANY($%d)", schema.CoreSpecies.Conservation, argID))
		args = append(args, descriptor.Conservations)
		argID++
	}

	// Biome Overlap Filtering
	if len(descriptor.Biomes) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND s.%s && $%d::text[]", schema.CoreSpecies.Biomes, argID))
		args = append(args, descriptor.Biomes)
		argID++
	}

	// Search Term Filtering
	if descriptor.Term != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND s.%s @@ websearch_to_tsquery('simple', unaccent($%d))", schema.CoreSpecies.SearchVector, argID))
		args = append(args, descriptor.Term)
		argID++
	}

	// Stable alphabetical ordering by scientific name
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY s.%s ASC, s.%s ASC", schema.CoreSpecies.ScientificName, schema.CoreSpecies.ID))

	// Pagination injection
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	// Query Execution
	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_species")
	}
	defer rows.Close()

	var species []*Species
	var totalCount int

	// Iterate over rows
	for rows.Next() {
		record := &Species{}
		err := rows.Scan(
			&record.RemoteID,
			&record.Slug,
			&record.ScientificName,
			&record.PopularNames,
			&record.Family,
			&record.Genus,
			&record.Subgenus,
			&record.Size,
			&record.HoneyYield,
			&record.Difficulty,
			&record.Conservation,
			&record.Behavior,
			&record.Honey.Taste,
			&record.Honey.Color,
			&record.Honey.AnnualYieldKg,
			&record.Honey.Properties,
			&record.Biomes,
			&record.CareNotes,
			&record.Sources,
			&record.CreatedAt,
			&record.UpdatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_species")
		}

		species = append(species, record)
	}

	return species, totalCount, nil
}

/*
FindBySlug retrieves a species record by its human-readable slug.

Parameters:
  - context: context.Context
  - slug: string stable identifier ("urucu-verdadeira")

Returns:
  - *Species: The hydrated species entity, or nil if not found
  - error: apperr.NotFound if the species does not exist, execution errors otherwise
*/
func (repository *speciesRepository) FindBySlug(context context.Context, slug string) (*Species, error) {

	query := fmt.Sprintf(`
		SELECT
			s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s,
			s.%s, s.%s, s.%s, s.%s,
			s.%s, s.%s, s.%s, s.%s, s.%s,
			s.%s, s.%s, s.%s, s.%s, s.%s
		FROM %s s
		WHERE s.%s = $1
	`,
		schema.CoreSpecies.ID,
		schema.CoreSpecies.Slug,
		schema.CoreSpecies.ScientificName,
		schema.CoreSpecies.PopularNames,
		schema.CoreSpecies.Family,
		schema.CoreSpecies.Genus,
		schema.CoreSpecies.Subgenus,
		schema.CoreSpecies.Size,
		schema.CoreSpecies.HoneyYield,
		schema.CoreSpecies.Difficulty,
		schema.CoreSpecies.Conservation,
		schema.CoreSpecies.Behavior,
		schema.CoreSpecies.HoneyTaste,
		schema.CoreSpecies.HoneyColor,
		schema.CoreSpecies.HoneyYieldKg,
		schema.CoreSpecies.HoneyNotes,
		schema.CoreSpecies.Biomes,
		schema.CoreSpecies.CareNotes,
		schema.CoreSpecies.Sources,
		schema.CoreSpecies.CreatedAt,
		schema.CoreSpecies.UpdatedAt,
		schema.CoreSpecies.Table,
		schema.CoreSpecies.Slug,
	)

	record := &Species{}
	err := repository.pool.QueryRow(context, query, slug).Scan(
		&record.RemoteID,
		&record.Slug,
		&record.ScientificName,
		&record.PopularNames,
		&record.Family,
		&record.Genus,
		&record.Subgenus,
		&record.Size,
		&record.HoneyYield,
		&record.Difficulty,
		&record.Conservation,
		&record.Behavior,
		&record.Honey.Taste,
		&record.Honey.Color,
		&record.Honey.AnnualYieldKg,
		&record.Honey.Properties,
		&record.Biomes,
		&record.CareNotes,
		&record.Sources,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Species")
		}
		return nil, dberr.Wrap(err, "find_species_by_slug")
	}

	return record, nil
}

/*
ListAll returns every species without filtering or paging.

Description: Feeds the identifier reconciler's slug↔key index. The result
carries only the identifier pair plus display fields; it is small (the
catalogue holds dozens of species, not thousands) and loaded once per
process.

Returns:
  - []*Species: Every species record
  - error: Database execution errors
*/
func (repository *speciesRepository) ListAll(context context.Context) ([]*Species, error) {

	query := fmt.Sprintf(`
		SELECT s.%s, s.%s, s.%s, s.%s
		FROM %s s
		ORDER BY s.%s ASC
	`,
		schema.CoreSpecies.ID,
		schema.CoreSpecies.Slug,
		schema.CoreSpecies.ScientificName,
		schema.CoreSpecies.PopularNames,
		schema.CoreSpecies.Table,
		schema.CoreSpecies.Slug,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_all_species")
	}
	defer rows.Close()

	var species []*Species
	for rows.Next() {
		record := &Species{}
		if err := rows.Scan(&record.RemoteID, &record.Slug, &record.ScientificName, &record.PopularNames); err != nil {
			return nil, dberr.Wrap(err, "scan_species_index")
		}
		species = append(species, record)
	}

	return species, nil
}
