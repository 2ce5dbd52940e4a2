// Package dbtest opens throwaway sqlite databases for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"library-app-go/internal/config"
	"library-app-go/internal/db"
	"library-app-go/pkg/logger"
)

// SQLite opens a migrated database in a temp dir and closes it on cleanup.
func SQLite(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := config.DBConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "library.db"),
	}
	gormDB, err := db.Open(cfg, logger.Nop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(gormDB) })

	if err := db.Migrate(gormDB); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gormDB
}
