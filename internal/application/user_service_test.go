package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oksasatya/photocards-api/internal/domain/entity"
	"github.com/oksasatya/photocards-api/internal/infrastructure/memory"
	"github.com/oksasatya/photocards-api/pkg/apperr"
	"github.com/oksasatya/photocards-api/pkg/helpers"
)

func newUserService() *UserService {
	jwt := &helpers.JWTManager{Secret: []byte("test-secret"), TTL: time.Hour}
	return NewUserService(memory.NewUserRepository(), jwt, nil)
}

func TestRegisterThenLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newUserService()

	u, err := svc.Register(ctx, RegisterInput{Email: "jacques@sea.fr", Password: "calypso123"})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.Empty(t, u.Password, "hash must not leave the service")

	got, token, exp, err := svc.Login(ctx, "jacques@sea.fr", "calypso123")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Empty(t, got.Password)
	require.True(t, exp.After(time.Now()))

	// The issued token verifies back to the same identity.
	claims, err := svc.JWT.Parse(token)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.UserID)
}

func TestRegister_Defaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newUserService()

	u, err := svc.Register(ctx, RegisterInput{Email: "a@b.c", Password: "longenough"})
	require.NoError(t, err)
	require.Equal(t, entity.DefaultName, u.Name)
	require.Equal(t, entity.DefaultAbout, u.About)
	require.Equal(t, entity.DefaultAvatarURL, u.AvatarURL)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newUserService()

	first, err := svc.Register(ctx, RegisterInput{Email: "dup@x.y", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Email: "dup@x.y", Password: "password2"})
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// The first identity is unaffected.
	got, err := svc.GetUser(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, "dup@x.y", got.Email)

	_, _, _, err = svc.Login(ctx, "dup@x.y", "password1")
	require.NoError(t, err)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()
	svc := newUserService()

	_, _, _, err := svc.Login(context.Background(), "nobody@x.y", "whatever1")
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newUserService()

	_, err := svc.Register(ctx, RegisterInput{Email: "u@x.y", Password: "rightpass"})
	require.NoError(t, err)

	_, _, _, err = svc.Login(ctx, "u@x.y", "wrongpass")
	require.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestLogin_EmailIsCaseSensitive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newUserService()

	_, err := svc.Register(ctx, RegisterInput{Email: "Case@x.y", Password: "password1"})
	require.NoError(t, err)

	_, _, _, err = svc.Login(ctx, "case@x.y", "password1")
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestGetUser_BadID(t *testing.T) {
	t.Parallel()
	svc := newUserService()

	_, err := svc.GetUser(context.Background(), "not-a-uuid")
	require.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
}

func TestGetUser_Absent(t *testing.T) {
	t.Parallel()
	svc := newUserService()

	_, err := svc.GetUser(context.Background(), "3f1c8a9e-0c4f-4a7d-9a34-3f9d2d3a1b10")
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newUserService()

	u, err := svc.Register(ctx, RegisterInput{Email: "p@x.y", Password: "password1"})
	require.NoError(t, err)

	// Empty update is rejected.
	_, err = svc.UpdateProfile(ctx, u.ID, UpdateProfileInput{})
	require.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))

	got, err := svc.UpdateProfile(ctx, u.ID, UpdateProfileInput{Name: "Ив"})
	require.NoError(t, err)
	require.Equal(t, "Ив", got.Name)
	require.Equal(t, entity.DefaultAbout, got.About, "untouched field keeps its value")

	got, err = svc.UpdateAvatar(ctx, u.ID, "https://example.com/a.png")
	require.NoError(t, err)
	require.Equal(t, "https://example.com/a.png", got.AvatarURL)
}
