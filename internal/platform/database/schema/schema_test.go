// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package schema_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rmonteiro/meliponario/internal/platform/database/schema"
)

// readInitMigration loads the initial UP migration the stores are written
// against.
func readInitMigration(t *testing.T) string {
	t.Helper()

	path := filepath.Join("..", "..", "..", "..", "data", "migrations", "000001_init.up.sql")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

// columnType extracts the declared SQL type of a column from the
// migration source.
func columnType(t *testing.T, migration, column string) string {
	t.Helper()

	pattern := regexp.MustCompile(`(?m)^\s*` + column + `\s+([A-Z\[\]]+)`)
	match := pattern.FindStringSubmatch(migration)
	require.NotNilf(t, match, "column %q not declared in migration", column)
	return match[1]
}

/*
TestMigrationColumnTypesMatchScanTargets pins the agreement between the
migration DDL and the store scan targets: every column the postgres
stores scan into a Go slice must be declared as a PostgreSQL array, and
every scalar scan target must not be. pgx refuses to scan TEXT into
[]string at run time, and a single mismatched column silently degrades
the whole remote read path to the embedded dataset.
*/
func TestMigrationColumnTypesMatchScanTargets(t *testing.T) {
	migration := readInitMigration(t)

	arrayColumns := []string{
		schema.CoreSpecies.PopularNames,
		schema.CoreSpecies.Biomes,
		schema.CoreSpecies.CareNotes,
		schema.CoreSpecies.Sources,
		schema.CoreBreeder.Status,
	}
	for _, column := range arrayColumns {
		t.Run("array_"+column, func(t *testing.T) {
			require.Equal(t, "TEXT[]", columnType(t, migration, column))
		})
	}

	scalarColumns := []string{
		schema.CoreSpecies.Behavior,
		schema.CoreSpecies.HoneyTaste,
		schema.CoreSpecies.HoneyColor,
		schema.CoreSpecies.HoneyNotes,
		schema.CoreBreeder.Bio,
		schema.CoreBreeder.City,
	}
	for _, column := range scalarColumns {
		t.Run("scalar_"+column, func(t *testing.T) {
			require.Equal(t, "TEXT", columnType(t, migration, column))
		})
	}
}
