// Package repository provides data access to the application's persistent
// storage. Each repository wraps a database pool and exposes typed methods
// for a single aggregate.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/postsblog/backend/internal/constants"
	"github.com/postsblog/backend/internal/database"
	"github.com/postsblog/backend/internal/models"
	"github.com/postsblog/backend/internal/utils"
)

// UserRepository defines the storage operations for user accounts.
type UserRepository interface {
	// Create inserts a new user and populates its ID and timestamps.
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by primary key.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// GetByEmail retrieves a user by exact email match.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// ExistsByEmail reports whether a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ChangePassword replaces the stored password hash for a user
	// identified by email.
	ChangePassword(ctx context.Context, email, passwordHash string) error
}

// PostgresUserRepository is the PostgreSQL implementation of UserRepository.
type PostgresUserRepository struct {
	db *database.Pool
}

// NewUserRepository creates a new PostgresUserRepository.
func NewUserRepository(db *database.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

// Create inserts a new user record. A unique constraint violation on the
// email column is surfaced as a duplicate email error.
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5) RETURNING %s`,
		constants.TableUsers,
		constants.ColumnName,
		constants.ColumnEmail,
		constants.ColumnPasswordHash,
		constants.ColumnCreatedAt,
		constants.ColumnUpdatedAt,
		constants.ColumnUserID,
	)

	start := time.Now()
	err := r.db.QueryRowContext(
		ctx,
		query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)
	utils.LogDBQuery(query, []interface{}{user.Name, user.Email, "[REDACTED]"}, time.Since(start), err)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constants.PGUniqueViolation {
			return utils.NewDuplicateEmailError()
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by primary key.
func (r *PostgresUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf(
		`SELECT %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		constants.ColumnUserID,
		constants.ColumnName,
		constants.ColumnEmail,
		constants.ColumnPasswordHash,
		constants.ColumnCreatedAt,
		constants.ColumnUpdatedAt,
		constants.TableUsers,
		constants.ColumnUserID,
	)

	user := &models.User{}
	start := time.Now()
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	utils.LogDBQuery(query, []interface{}{id}, time.Since(start), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError(constants.MsgUserNotFound)
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email. The lookup is case sensitive, so
// the address must match exactly as stored.
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(
		`SELECT %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		constants.ColumnUserID,
		constants.ColumnName,
		constants.ColumnEmail,
		constants.ColumnPasswordHash,
		constants.ColumnCreatedAt,
		constants.ColumnUpdatedAt,
		constants.TableUsers,
		constants.ColumnEmail,
	)

	user := &models.User{}
	start := time.Now()
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	utils.LogDBQuery(query, []interface{}{email}, time.Since(start), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError(constants.MsgUserNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// ExistsByEmail reports whether an account with the given email exists.
func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := fmt.Sprintf(
		`SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)`,
		constants.TableUsers,
		constants.ColumnEmail,
	)

	var exists bool
	start := time.Now()
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)
	utils.LogDBQuery(query, []interface{}{email}, time.Since(start), err)

	if err != nil {
		return false, fmt.Errorf("failed to check if email exists: %w", err)
	}

	return exists, nil
}

// ChangePassword replaces the stored password hash for the user with the
// given email and bumps the updated_at timestamp.
func (r *PostgresUserRepository) ChangePassword(ctx context.Context, email, passwordHash string) error {
	query := fmt.Sprintf(
		`UPDATE %s SET %s = $1, %s = $2 WHERE %s = $3`,
		constants.TableUsers,
		constants.ColumnPasswordHash,
		constants.ColumnUpdatedAt,
		constants.ColumnEmail,
	)

	start := time.Now()
	result, err := r.db.ExecContext(ctx, query, passwordHash, time.Now(), email)
	utils.LogDBQuery(query, []interface{}{"[REDACTED]", email}, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return utils.NewNotFoundError(constants.MsgUserNotFound)
	}

	return nil
}
