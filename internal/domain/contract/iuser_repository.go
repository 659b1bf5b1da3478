package contract

import (
	"context"

	"github.com/bereketsol/Reelbite/internal/domain/entity"
)

// IUserRepository defines the interface for end-user persistence.
type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
}
