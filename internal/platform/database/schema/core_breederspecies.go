package schema

// CoreBreederSpeciesTable represents the 'core.breederspecies' join table.
//
// SpeciesID is the remote UUID primary key, never the human-readable slug —
// the identifier reconciler guarantees this before any row is written.
type CoreBreederSpeciesTable struct {
	Table     string
	BreederID string
	SpeciesID string
	CreatedAt string
}

// CoreBreederSpecies is the schema definition for core.breederspecies
var CoreBreederSpecies = CoreBreederSpeciesTable{
	Table:     "core.breederspecies",
	BreederID: "breederid",
	SpeciesID: "speciesid",
	CreatedAt: "createdat",
}
