package migrations_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postsblog/backend/internal/database"
	"github.com/postsblog/backend/migrations"
)

func setupMigratorTest(t *testing.T) (*migrations.Migrator, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	pool := &database.Pool{DB: db}
	migrator := migrations.NewMigrator(pool)

	return migrator, mock, func() {
		db.Close()
	}
}

func TestGetMigrations(t *testing.T) {
	all := migrations.GetMigrations()

	assert.NotEmpty(t, all)

	foundUsers := false
	for _, migration := range all {
		if migration.Name == "create_users_table" {
			foundUsers = true
			assert.Equal(t, "users", migration.TableName)
			assert.NotNil(t, migration.RunSQL)
		}
	}
	assert.True(t, foundUsers, "users table migration must be present")
}

func TestRunMigrations_FreshDatabase(t *testing.T) {
	migrator, mock, cleanup := setupMigratorTest(t)
	defer cleanup()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery("SELECT name FROM migrations").
		WillReturnRows(sqlmock.NewRows([]string{"name"}))

	// users table does not exist yet
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO migrations").
		WithArgs("create_users_table", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := migrator.RunMigrations(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_AlreadyExecuted(t *testing.T) {
	migrator, mock, cleanup := setupMigratorTest(t)
	defer cleanup()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery("SELECT name FROM migrations").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("create_users_table"))

	err := migrator.RunMigrations(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_ExistingTableIsRecorded(t *testing.T) {
	migrator, mock, cleanup := setupMigratorTest(t)
	defer cleanup()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery("SELECT name FROM migrations").
		WillReturnRows(sqlmock.NewRows([]string{"name"}))

	// users table already exists from a previous deployment
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	mock.ExpectExec("INSERT INTO migrations").
		WithArgs("create_users_table", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := migrator.RunMigrations(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_CreateTrackingTableFails(t *testing.T) {
	migrator, mock, cleanup := setupMigratorTest(t)
	defer cleanup()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS migrations").
		WillReturnError(errors.New("permission denied"))

	err := migrator.RunMigrations(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create migrations table")
}

func TestRunMigrations_FailedMigrationRollsBack(t *testing.T) {
	migrator, mock, cleanup := setupMigratorTest(t)
	defer cleanup()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery("SELECT name FROM migrations").
		WillReturnRows(sqlmock.NewRows([]string{"name"}))

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := migrator.RunMigrations(context.Background())

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
