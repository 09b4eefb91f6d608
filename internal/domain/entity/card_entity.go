package entity

import (
	"time"
)

// Card is a photo card posted by a user. OwnerID is set exactly once at
// creation and immutable afterward; Likes is a set of user IDs with
// idempotent add/remove semantics.
type Card struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	OwnerID   string    `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

// LikedBy reports whether userID is present in the likes set.
func (c *Card) LikedBy(userID string) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
