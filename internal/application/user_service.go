package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/photocards-api/internal/domain/entity"
	repo "github.com/oksasatya/photocards-api/internal/domain/repository"
	"github.com/oksasatya/photocards-api/pkg/apperr"
	"github.com/oksasatya/photocards-api/pkg/helpers"
)

// UserService implements registration, credential verification and profile
// management. All failures are returned as *apperr.Error; the response
// boundary maps them to statuses.
type UserService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, JWT: jwt, Logger: logger}
}

type RegisterInput struct {
	Email     string
	Password  string
	Name      string
	About     string
	AvatarURL string
}

// Register hashes the password and persists a new user. A duplicate email
// surfaces as Conflict, never as a generic server error.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		s.logError("password hashing failed", err, nil)
		return nil, apperr.Internal(err)
	}

	u := &entity.User{
		Email:     in.Email,
		Password:  hash,
		Name:      in.Name,
		About:     in.About,
		AvatarURL: in.AvatarURL,
	}
	if u.Name == "" {
		u.Name = entity.DefaultName
	}
	if u.About == "" {
		u.About = entity.DefaultAbout
	}
	if u.AvatarURL == "" {
		u.AvatarURL = entity.DefaultAvatarURL
	}

	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, apperr.Conflict("email already registered")
		}
		s.logError("create user failed", err, logrus.Fields{"email": in.Email})
		return nil, apperr.Internal(err)
	}

	u.Password = ""
	return u, nil
}

// Login verifies credentials and mints a bearer token bound to the user id.
// Unknown email is NotFound; a wrong password is Unauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Repo.GetCredentials(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, "", time.Time{}, apperr.NotFound("user not found")
		}
		s.logError("credentials lookup failed", err, nil)
		return nil, "", time.Time{}, apperr.Internal(err)
	}

	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", time.Time{}, apperr.Unauthorized("invalid credentials")
	}

	token, exp, err := s.JWT.Generate(u.ID)
	if err != nil {
		s.logError("token generation failed", err, logrus.Fields{"user_id": u.ID})
		return nil, "", time.Time{}, apperr.Internal(err)
	}

	u.Password = ""
	return u, token, exp, nil
}

// GetUser loads a user by id. A malformed id is BadRequest, an absent user
// NotFound.
func (s *UserService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.BadRequest("invalid user id")
	}
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		s.logError("get user failed", err, logrus.Fields{"user_id": id})
		return nil, apperr.Internal(err)
	}
	return u, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.Repo.List(ctx)
	if err != nil {
		s.logError("list users failed", err, nil)
		return nil, apperr.Internal(err)
	}
	return users, nil
}

type UpdateProfileInput struct {
	Name  string
	About string
}

// UpdateProfile updates name/about of the caller. An update with neither
// field is rejected.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	if in.Name == "" && in.About == "" {
		return nil, apperr.BadRequest("nothing to update")
	}
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.About != "" {
		u.About = in.About
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		s.logError("update profile failed", err, logrus.Fields{"user_id": userID})
		return nil, apperr.Internal(err)
	}
	return u, nil
}

// UpdateAvatar replaces the caller's avatar URL.
func (s *UserService) UpdateAvatar(ctx context.Context, userID, avatarURL string) (*entity.User, error) {
	if avatarURL == "" {
		return nil, apperr.BadRequest("nothing to update")
	}
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.AvatarURL = avatarURL
	if err := s.Repo.Update(ctx, u); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		s.logError("update avatar failed", err, logrus.Fields{"user_id": userID})
		return nil, apperr.Internal(err)
	}
	return u, nil
}

func (s *UserService) logError(msg string, err error, fields logrus.Fields) {
	if s.Logger == nil {
		return
	}
	if fields == nil {
		fields = logrus.Fields{}
	}
	s.Logger.WithError(err).WithFields(fields).Error(msg)
}
