package schema

// SocialFavoriteTable represents the 'social.favorite' table
type SocialFavoriteTable struct {
	Table     string
	UserID    string
	BreederID string
	CreatedAt string
}

// SocialFavorite is the schema definition for social.favorite.
// (UserID, BreederID) is the unique membership pair.
var SocialFavorite = SocialFavoriteTable{
	Table:     "social.favorite",
	UserID:    "userid",
	BreederID: "breederid",
	CreatedAt: "createdat",
}
