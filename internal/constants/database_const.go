package constants

// Table Names
const (
	TableUsers = "users"
)

// Column Names
const (
	ColumnUserID       = "user_id"
	ColumnName         = "name"
	ColumnEmail        = "email"
	ColumnPasswordHash = "password_hash"
	ColumnCreatedAt    = "created_at"
	ColumnUpdatedAt    = "updated_at"
)

// PostgreSQL Error Codes
const (
	// PGUniqueViolation is returned when an insert or update breaks a unique constraint.
	PGUniqueViolation = "23505"

	// PGNotNullViolation is returned when a required column is missing a value.
	PGNotNullViolation = "23502"
)
