// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"io"
	"testing"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/database"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDatabase returns a migrated, empty in-memory sqlite catalog.
func NewDatabase(t *testing.T) *database.Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), database.GormConfig())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to ":memory:" is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	d := database.New(db, config.DatabaseConfig{Driver: config.DriverSQLite, QueryTimeout: 5 * time.Second})
	require.NoError(t, d.Migrate(t.Context()))
	return d
}

// NewLogger returns a logger that discards everything.
func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func Ptr[T any](v T) *T {
	return &v
}
