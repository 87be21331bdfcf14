package infra_pg_init

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/meulencv/wenomadus/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.Postgres{
		Host:     "db",
		Port:     "5432",
		User:     "admin",
		Password: "secret",
		DBName:   "wenomadus",
		SSLMode:  "disable",
	})

	assert.Equal(t, "host=db port=5432 user=admin password=secret dbname=wenomadus sslmode=disable", dsn)
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS rooms").WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, Migrate(context.Background(), sqlx.NewDb(db, "sqlmock")))

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS rooms").WillReturnError(errors.New("permission denied"))
	assert.ErrorContains(t, Migrate(context.Background(), sqlx.NewDb(db, "sqlmock")), "permission denied")

	assert.NoError(t, mock.ExpectationsWereMet())
}
