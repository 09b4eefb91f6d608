package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/photocards-api/internal/domain/entity"
	"github.com/oksasatya/photocards-api/internal/infrastructure/memory"
	"github.com/oksasatya/photocards-api/pkg/apperr"
)

func newCardService() *CardService {
	return NewCardService(memory.NewCardRepository(), nil)
}

func mustCreateCard(t *testing.T, svc *CardService, ownerID string) *entity.Card {
	t.Helper()
	c, err := svc.Create(context.Background(), ownerID, "Байкал", "https://example.com/baikal.jpg")
	require.NoError(t, err)
	return c
}

func TestCheckOwnership(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newCardService()

	owner := uuid.NewString()
	other := uuid.NewString()
	card := mustCreateCard(t, svc, owner)

	got, err := svc.CheckOwnership(ctx, card.ID, owner)
	require.NoError(t, err)
	require.Equal(t, card.ID, got.ID)

	_, err = svc.CheckOwnership(ctx, card.ID, other)
	require.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	_, err = svc.CheckOwnership(ctx, uuid.NewString(), owner)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = svc.CheckOwnership(ctx, "not-an-id", owner)
	require.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))

	// Idempotent: re-invoking with the same arguments yields the same result.
	got2, err := svc.CheckOwnership(ctx, card.ID, owner)
	require.NoError(t, err)
	require.Equal(t, got.ID, got2.ID)
}

func TestDelete_OwnershipEnforced(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newCardService()

	owner := uuid.NewString()
	other := uuid.NewString()
	card := mustCreateCard(t, svc, owner)

	_, err := svc.Delete(ctx, card.ID, other)
	require.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	// The failed attempt must not remove the card.
	_, err = svc.CheckOwnership(ctx, card.ID, owner)
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, card.ID, owner)
	require.NoError(t, err)
	require.Equal(t, card.ID, deleted.ID)

	_, err = svc.Delete(ctx, card.ID, owner)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestLike_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newCardService()

	owner := uuid.NewString()
	liker := uuid.NewString()
	card := mustCreateCard(t, svc, owner)

	got, err := svc.Like(ctx, card.ID, liker)
	require.NoError(t, err)
	require.Equal(t, []string{liker}, got.Likes)

	// Liking again leaves exactly one occurrence.
	got, err = svc.Like(ctx, card.ID, liker)
	require.NoError(t, err)
	require.Equal(t, []string{liker}, got.Likes)
}

func TestDislike_AbsentIDIsNoop(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newCardService()

	owner := uuid.NewString()
	liker := uuid.NewString()
	card := mustCreateCard(t, svc, owner)

	_, err := svc.Like(ctx, card.ID, liker)
	require.NoError(t, err)

	got, err := svc.Dislike(ctx, card.ID, uuid.NewString())
	require.NoError(t, err)
	require.Equal(t, []string{liker}, got.Likes, "removing an absent id leaves the card unchanged")

	got, err = svc.Dislike(ctx, card.ID, liker)
	require.NoError(t, err)
	require.Empty(t, got.Likes)
}

// Like toggling deliberately skips the ownership check: any authenticated
// caller may like or dislike any card. This mirrors the reference behavior
// and is intentional, not an omission.
func TestLike_NoOwnershipCheck(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newCardService()

	owner := uuid.NewString()
	stranger := uuid.NewString()
	card := mustCreateCard(t, svc, owner)

	got, err := svc.Like(ctx, card.ID, stranger)
	require.NoError(t, err)
	require.True(t, got.LikedBy(stranger))

	_, err = svc.Dislike(ctx, card.ID, stranger)
	require.NoError(t, err)
}

func TestLike_EdgeCases(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newCardService()

	_, err := svc.Like(ctx, "not-an-id", uuid.NewString())
	require.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))

	_, err = svc.Like(ctx, uuid.NewString(), uuid.NewString())
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = svc.Dislike(ctx, "not-an-id", uuid.NewString())
	require.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))

	_, err = svc.Dislike(ctx, uuid.NewString(), uuid.NewString())
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestConcurrentLikesConverge(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newCardService()

	card := mustCreateCard(t, svc, uuid.NewString())

	likers := make([]string, 8)
	for i := range likers {
		likers[i] = uuid.NewString()
	}

	done := make(chan error, len(likers)*2)
	for _, id := range likers {
		id := id
		go func() {
			_, err := svc.Like(ctx, card.ID, id)
			done <- err
		}()
		go func() {
			_, err := svc.Like(ctx, card.ID, id)
			done <- err
		}()
	}
	for i := 0; i < len(likers)*2; i++ {
		require.NoError(t, <-done)
	}

	got, err := svc.Cards.GetByID(ctx, card.ID)
	require.NoError(t, err)
	require.Len(t, got.Likes, len(likers), "double likes must not duplicate entries")
}
