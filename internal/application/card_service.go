package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/photocards-api/internal/domain/entity"
	repo "github.com/oksasatya/photocards-api/internal/domain/repository"
	"github.com/oksasatya/photocards-api/pkg/apperr"
)

// CardService implements card creation, listing, ownership-gated deletion
// and like/dislike toggling.
type CardService struct {
	Cards  repo.CardRepository
	Logger *logrus.Logger
}

func NewCardService(cards repo.CardRepository, logger *logrus.Logger) *CardService {
	return &CardService{Cards: cards, Logger: logger}
}

func (s *CardService) Create(ctx context.Context, ownerID, name, link string) (*entity.Card, error) {
	c := &entity.Card{Name: name, Link: link, OwnerID: ownerID}
	if err := s.Cards.Create(ctx, c); err != nil {
		s.logError("create card failed", err, logrus.Fields{"owner_id": ownerID})
		return nil, apperr.Internal(err)
	}
	return c, nil
}

func (s *CardService) List(ctx context.Context) ([]*entity.Card, error) {
	cards, err := s.Cards.List(ctx)
	if err != nil {
		s.logError("list cards failed", err, nil)
		return nil, apperr.Internal(err)
	}
	return cards, nil
}

// CheckOwnership validates the card id, loads the card and confirms callerID
// owns it. Check order is fixed: BadRequest, then NotFound, then Forbidden.
// Re-invoking with the same arguments yields the same result unless the card
// changed.
func (s *CardService) CheckOwnership(ctx context.Context, cardID, callerID string) (*entity.Card, error) {
	if _, err := uuid.Parse(cardID); err != nil {
		return nil, apperr.BadRequest("invalid card id")
	}
	c, err := s.Cards.GetByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.NotFound("card not found")
		}
		s.logError("get card failed", err, logrus.Fields{"card_id": cardID})
		return nil, apperr.Internal(err)
	}
	if c.OwnerID != callerID {
		return nil, apperr.Forbidden("card belongs to another user")
	}
	return c, nil
}

// Delete removes a card after the ownership check passes. The deleted card
// is returned so the handler can echo it.
func (s *CardService) Delete(ctx context.Context, cardID, callerID string) (*entity.Card, error) {
	c, err := s.CheckOwnership(ctx, cardID, callerID)
	if err != nil {
		return nil, err
	}
	if err := s.Cards.Delete(ctx, cardID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.NotFound("card not found")
		}
		s.logError("delete card failed", err, logrus.Fields{"card_id": cardID})
		return nil, apperr.Internal(err)
	}
	return c, nil
}

// Like adds callerID to the card's likes set. Any authenticated caller may
// like any card; there is deliberately no ownership check here.
func (s *CardService) Like(ctx context.Context, cardID, callerID string) (*entity.Card, error) {
	if _, err := uuid.Parse(cardID); err != nil {
		return nil, apperr.BadRequest("invalid card id")
	}
	c, err := s.Cards.AddLike(ctx, cardID, callerID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.NotFound("card not found")
		}
		s.logError("like card failed", err, logrus.Fields{"card_id": cardID})
		return nil, apperr.Internal(err)
	}
	return c, nil
}

// Dislike removes callerID from the likes set; removing an absent id is a
// no-op returning the unchanged card.
func (s *CardService) Dislike(ctx context.Context, cardID, callerID string) (*entity.Card, error) {
	if _, err := uuid.Parse(cardID); err != nil {
		return nil, apperr.BadRequest("invalid card id")
	}
	c, err := s.Cards.RemoveLike(ctx, cardID, callerID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.NotFound("card not found")
		}
		s.logError("dislike card failed", err, logrus.Fields{"card_id": cardID})
		return nil, apperr.Internal(err)
	}
	return c, nil
}

func (s *CardService) logError(msg string, err error, fields logrus.Fields) {
	if s.Logger == nil {
		return
	}
	if fields == nil {
		fields = logrus.Fields{}
	}
	s.Logger.WithError(err).WithFields(fields).Error(msg)
}
