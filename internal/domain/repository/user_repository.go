package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/photocards-api/internal/domain/entity"
)

// Sentinel errors surfaced by repository implementations. Services translate
// them into client-facing error kinds; match with errors.Is.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for user-related database operations.
// Reads never load the password hash; GetCredentials is the one explicit
// exception, used only by the login flow.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// GetCredentials returns the user with the password hash populated.
	GetCredentials(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
}
