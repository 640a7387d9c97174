package schema

// CoreSpeciesTable represents the 'core.species' table
type CoreSpeciesTable struct {
	Table          string
	ID             string
	Slug           string
	ScientificName string
	PopularNames   string
	Family         string
	Genus          string
	Subgenus       string
	Size           string
	HoneyYield     string
	Difficulty     string
	Conservation   string
	Behavior       string
	HoneyTaste     string
	HoneyColor     string
	HoneyYieldKg   string
	HoneyNotes     string
	Biomes         string
	CareNotes      string
	Sources        string
	SearchVector   string
	CreatedAt      string
	UpdatedAt      string
}

// CoreSpecies is the schema definition for core.species
var CoreSpecies = CoreSpeciesTable{
	Table:          "core.species",
	ID:             "id",
	Slug:           "slug",
	ScientificName: "scientificname",
	PopularNames:   "popularnames",
	Family:         "family",
	Genus:          "genus",
	Subgenus:       "subgenus",
	Size:           "size",
	HoneyYield:     "honeyyield",
	Difficulty:     "difficulty",
	Conservation:   "conservation",
	Behavior:       "behavior",
	HoneyTaste:     "honeytaste",
	HoneyColor:     "honeycolor",
	HoneyYieldKg:   "honeyyieldkg",
	HoneyNotes:     "honeynotes",
	Biomes:         "biomes",
	CareNotes:      "carenotes",
	Sources:        "sources",
	SearchVector:   "searchvector",
	CreatedAt:      "createdat",
	UpdatedAt:      "updatedat",
}
