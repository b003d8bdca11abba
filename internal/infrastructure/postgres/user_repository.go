package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tanvirul/shopledger-api/internal/domain"
	"github.com/tanvirul/shopledger-api/internal/domain/entity"
	"github.com/tanvirul/shopledger-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implements the UserRepository port over PostgreSQL.
type UserRepo struct {
	db querier
}

// NewUserRepository builds the persistence adapter for users.
func NewUserRepository(db querier) *UserRepo {
	return &UserRepo{db: db}
}

// Create persists a new user.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, name, username, password_hash, role, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Name, user.Username, user.PasswordHash, user.Role, user.AvatarURL,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID fetches a user by ID, or (nil, nil) when absent.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.scanOne(ctx, `
		SELECT id, name, username, password_hash, role, avatar_url, created_at, updated_at
		FROM users WHERE id = $1`, id)
}

// GetByUsername fetches a user by username, case-insensitively.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.scanOne(ctx, `
		SELECT id, name, username, password_hash, role, avatar_url, created_at, updated_at
		FROM users WHERE LOWER(username) = LOWER($1) LIMIT 1`, username)
}

// Update persists user changes.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET name = $2, username = $3, password_hash = $4, role = $5, avatar_url = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Name, user.Username, user.PasswordHash, user.Role, user.AvatarURL, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List returns all users, newest first.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, username, password_hash, role, avatar_url, created_at, updated_at
		FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.PasswordHash, &u.Role, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

func (r *UserRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Name, &u.Username, &u.PasswordHash, &u.Role, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
