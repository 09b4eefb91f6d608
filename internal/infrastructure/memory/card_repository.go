package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/photocards-api/internal/domain/entity"
	"github.com/oksasatya/photocards-api/internal/domain/repository"
)

type CardRepository struct {
	mu    sync.RWMutex
	cards map[string]*entity.Card
}

func NewCardRepository() *CardRepository {
	return &CardRepository{cards: make(map[string]*entity.Card)}
}

func (r *CardRepository) Create(_ context.Context, c *entity.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	if c.Likes == nil {
		c.Likes = []string{}
	}
	cp := cloneCard(c)
	r.cards[c.ID] = cp
	return nil
}

func (r *CardRepository) GetByID(_ context.Context, id string) (*entity.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.cards[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneCard(c), nil
}

func (r *CardRepository) List(_ context.Context) ([]*entity.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Card, 0, len(r.cards))
	for _, c := range r.cards {
		out = append(out, cloneCard(c))
	}
	return out, nil
}

func (r *CardRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cards[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.cards, id)
	return nil
}

func (r *CardRepository) AddLike(_ context.Context, cardID, userID string) (*entity.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.cards[cardID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if !c.LikedBy(userID) {
		c.Likes = append(c.Likes, userID)
	}
	return cloneCard(c), nil
}

func (r *CardRepository) RemoveLike(_ context.Context, cardID, userID string) (*entity.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.cards[cardID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	likes := c.Likes[:0]
	for _, id := range c.Likes {
		if id != userID {
			likes = append(likes, id)
		}
	}
	c.Likes = likes
	return cloneCard(c), nil
}

func cloneCard(c *entity.Card) *entity.Card {
	cp := *c
	cp.Likes = append([]string(nil), c.Likes...)
	if cp.Likes == nil {
		cp.Likes = []string{}
	}
	return &cp
}

var _ repository.CardRepository = (*CardRepository)(nil)
