package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedscope/pkg/domain"
)

// UserRepository resolves API tokens to user identities. This is the storage
// side of the auth boundary, token issuing itself happens elsewhere.
type UserRepository struct {
	db *sqlx.DB
}

type userSQL struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Token     string    `db:"token"`
	CreatedAt time.Time `db:"created_at"`
}

// NewUserRepository creates a new user repository
func NewUserRepository(database *sqlx.DB) *UserRepository {
	return &UserRepository{db: database}
}

// CreateUser inserts a new user with its token
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	result, err := r.db.NamedExecContext(ctx,
		"INSERT INTO users (name, token) VALUES (:name, :token)",
		&userSQL{Name: user.Name, Token: user.Token})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create user %s: %w", user.Name, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	user.ID = id
	return nil
}

// GetUserByToken resolves an API token to its user
func (r *UserRepository) GetUserByToken(ctx context.Context, token string) (*domain.User, error) {
	var sqlUser userSQL
	err := r.db.GetContext(ctx, &sqlUser, "SELECT * FROM users WHERE token = ?", token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("token: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by token: %w", err)
	}

	return &domain.User{ID: sqlUser.ID, Name: sqlUser.Name, Token: sqlUser.Token, CreatedAt: sqlUser.CreatedAt}, nil
}
