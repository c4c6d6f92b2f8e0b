package migrations

import (
	"context"
	"database/sql"
)

// createUsersTable creates the users table with a unique index on email.
// Email uniqueness is enforced here rather than in application code so a
// concurrent signup race still yields exactly one account per address.
func createUsersTable() Migration {
	return Migration{
		Name:        "create_users_table",
		Description: "Creates the users table",
		TableName:   "users",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS users (
					user_id BIGINT PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
					name VARCHAR(100) NOT NULL,
					email VARCHAR(255) NOT NULL,
					password_hash VARCHAR(255) NOT NULL,
					created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
				)
			`
			if _, err := tx.ExecContext(ctx, query); err != nil {
				return err
			}

			_, err := tx.ExecContext(ctx, `CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email)`)
			return err
		},
	}
}
