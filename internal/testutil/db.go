// Package testutil opens throwaway databases for package tests.
package testutil

import (
	"testing"

	"gorm.io/gorm"

	"wedding/guesthub/internal/config"
	"wedding/guesthub/internal/model"
)

// NewDB returns a migrated in-memory SQLite database that is closed when
// the test finishes.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := config.NewDB(config.DatabaseConfig{
		Driver:   "sqlite",
		LogLevel: "silent",
		SQLite:   config.SQLiteConfig{Path: ":memory:"},
	}, nil)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = config.CloseDB(db) })

	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
