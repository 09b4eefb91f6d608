package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/photocards-api/internal/domain/entity"
	"github.com/oksasatya/photocards-api/internal/domain/repository"
)

type CardRepository struct {
	pool *pgxpool.Pool
}

func NewCardRepository(pool *pgxpool.Pool) *CardRepository {
	return &CardRepository{pool: pool}
}

func (r *CardRepository) Create(ctx context.Context, c *entity.Card) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO cards (name, link, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, c.Name, c.Link, c.OwnerID)

	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		return err
	}
	if c.Likes == nil {
		c.Likes = []string{}
	}
	return nil
}

func (r *CardRepository) GetByID(ctx context.Context, id string) (*entity.Card, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, link, owner_id, likes, created_at
		FROM cards
		WHERE id = $1
	`, id)
	return scanCard(row)
}

func (r *CardRepository) List(ctx context.Context) ([]*entity.Card, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, link, owner_id, likes, created_at
		FROM cards
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*entity.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

func (r *CardRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// AddLike appends userID to the likes set unless already present. A single
// statement keeps concurrent likes atomic; likes behaves as a set.
func (r *CardRepository) AddLike(ctx context.Context, cardID, userID string) (*entity.Card, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE cards
		SET likes = CASE WHEN $2::uuid = ANY(likes) THEN likes ELSE array_append(likes, $2::uuid) END
		WHERE id = $1
		RETURNING id, name, link, owner_id, likes, created_at
	`, cardID, userID)
	return scanCard(row)
}

// RemoveLike drops userID from the likes set; removing an absent id is a no-op.
func (r *CardRepository) RemoveLike(ctx context.Context, cardID, userID string) (*entity.Card, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE cards
		SET likes = array_remove(likes, $2::uuid)
		WHERE id = $1
		RETURNING id, name, link, owner_id, likes, created_at
	`, cardID, userID)
	return scanCard(row)
}

func scanCard(row pgx.Row) (*entity.Card, error) {
	c := &entity.Card{}
	if err := row.Scan(&c.ID, &c.Name, &c.Link, &c.OwnerID, &c.Likes, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if c.Likes == nil {
		c.Likes = []string{}
	}
	return c, nil
}

var _ repository.CardRepository = (*CardRepository)(nil)
