package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/recipescope/pkg/domain"
)

// UserRepository reads and writes user accounts
type UserRepository struct {
	db *sqlx.DB
}

type userSQL struct {
	ID         string `db:"id"`
	Email      string `db:"email"`
	Name       string `db:"name"`
	Role       string `db:"role"`
	Subscribed bool   `db:"subscribed"`
	CreatedAt  int64  `db:"created_at"`
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a user, assigning ID, role and creation time when missing
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Role == "" {
		user.Role = domain.RoleUser
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	row := userSQL{ID: user.ID, Email: user.Email, Name: user.Name, Role: string(user.Role),
		Subscribed: user.Subscribed, CreatedAt: user.CreatedAt.UnixNano()}

	query := `INSERT INTO users (id, email, name, role, subscribed, created_at)
		VALUES (:id, :email, :name, :role, :subscribed, :created_at)`
	return withRetry(ctx, func() error {
		if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
}

// GetUser retrieves a user by ID
func (r *UserRepository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var row userSQL
	err := r.db.GetContext(ctx, &row, r.db.Rebind("SELECT * FROM users WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &domain.User{ID: row.ID, Email: row.Email, Name: row.Name, Role: domain.Role(row.Role),
		Subscribed: row.Subscribed, CreatedAt: nanoTime(row.CreatedAt)}, nil
}

// IsSubscriber reports the subscription flag, unknown users are not subscribers
func (r *UserRepository) IsSubscriber(ctx context.Context, id string) (bool, error) {
	var subscribed bool
	err := r.db.GetContext(ctx, &subscribed, r.db.Rebind("SELECT subscribed FROM users WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get subscription: %w", err)
	}
	return subscribed, nil
}

// SetSubscription updates the subscription flag, used by the payment flow
func (r *UserRepository) SetSubscription(ctx context.Context, id string, subscribed bool) error {
	return withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, r.db.Rebind("UPDATE users SET subscribed = ? WHERE id = ?"), subscribed, id)
		if err != nil {
			return fmt.Errorf("set subscription: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("get affected rows: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
		}
		return nil
	})
}
