package repository

import (
	"context"

	"github.com/oksasatya/photocards-api/internal/domain/entity"
)

// CardRepository defines the interface for card-related database operations.
// AddLike and RemoveLike are atomic set operations: adding a present id and
// removing an absent one are no-ops returning the unchanged card.
type CardRepository interface {
	Create(ctx context.Context, c *entity.Card) error
	GetByID(ctx context.Context, id string) (*entity.Card, error)
	List(ctx context.Context) ([]*entity.Card, error)
	Delete(ctx context.Context, id string) error
	AddLike(ctx context.Context, cardID, userID string) (*entity.Card, error)
	RemoveLike(ctx context.Context, cardID, userID string) (*entity.Card, error)
}
