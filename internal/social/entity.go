// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

/*
Package social implements the community write surface of the directory:
favorites, breeder verification endorsements, and ratings.

All writes go through the optimistic mutation [Coordinator]. The caller is
acknowledged as soon as the mutation is applied to local state; the remote
backend is updated asynchronously, and a failed remote write reverts the
local state instead of failing the caller. When the backend is absent the
mutation lands in the durable Redis fallback store.
*/
package social

import (
	"time"

	"github.com/rmonteiro/meliponario/internal/platform/validate"
)

// # Entities

// Favorite is a user's bookmark of a breeder profile. The (UserID,
// BreederID) pair is unique; favoriting twice is a no-op.
type Favorite struct {
	UserID    string    `json:"user_id"`
	BreederID string    `json:"breeder_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Rating is a 1-5 star review of a breeder, optionally with a comment.
type Rating struct {
	ID        string    `json:"id"`
	BreederID string    `json:"breeder_id"`
	AuthorID  string    `json:"author_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// maxCommentLength bounds the free-text comment.
const maxCommentLength = 2000

// Validate checks the rating's invariants before it enters the write path.
func (rating *Rating) Validate() error {
	v := &validate.Validator{}
	v.Required("author_id", rating.AuthorID)
	v.UUID("breeder_id", rating.BreederID)
	v.Range("score", rating.Score, 1, 5)
	v.MaxLen("comment", rating.Comment, maxCommentLength)
	return v.Err()
}
