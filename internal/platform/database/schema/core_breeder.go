package schema

// CoreBreederTable represents the 'core.breeder' table
type CoreBreederTable struct {
	Table        string
	ID           string
	Name         string
	WhatsApp     string
	Bio          string
	City         string
	State        string
	PostalCode   string
	Latitude     string
	Longitude    string
	Status       string
	Verified     string
	RatingAvg    string
	RatingCount  string
	OwnerAccount string
	SearchVector string
	CreatedAt    string
	UpdatedAt    string
}

// CoreBreeder is the schema definition for core.breeder
var CoreBreeder = CoreBreederTable{
	Table:        "core.breeder",
	ID:           "id",
	Name:         "name",
	WhatsApp:     "whatsapp",
	Bio:          "bio",
	City:         "city",
	State:        "state",
	PostalCode:   "postalcode",
	Latitude:     "latitude",
	Longitude:    "longitude",
	Status:       "status",
	Verified:     "verified",
	RatingAvg:    "ratingavg",
	RatingCount:  "ratingcount",
	OwnerAccount: "owneraccount",
	SearchVector: "searchvector",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}
