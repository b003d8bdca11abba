package repository

import (
	"context"

	"github.com/tanvirul/shopledger-api/internal/domain/entity"
)

// UserRepository is the persistence port for User.
// Lookups return (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByUsername matches case-insensitively (usernames are stored lowercase).
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context) ([]*entity.User, error)
}
