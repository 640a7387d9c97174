package schema

// SocialRatingTable represents the 'social.rating' table
type SocialRatingTable struct {
	Table     string
	ID        string
	BreederID string
	AuthorID  string
	Score     string
	Comment   string
	CreatedAt string
}

// SocialRating is the schema definition for social.rating
var SocialRating = SocialRatingTable{
	Table:     "social.rating",
	ID:        "id",
	BreederID: "breederid",
	AuthorID:  "authorid",
	Score:     "score",
	Comment:   "comment",
	CreatedAt: "createdat",
}

func (t SocialRatingTable) Columns() []string {
	return []string{t.ID, t.BreederID, t.AuthorID, t.Score, t.Comment, t.CreatedAt}
}
