package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-app-go/pkg/logger"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SEED_ON_STARTUP", "")

	cfg, err := Load(logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.True(t, cfg.Seed.OnStartup)
	assert.Equal(t, 30*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowedOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/lib.db")
	t.Setenv("SEED_ON_STARTUP", "false")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := Load(logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.False(t, cfg.Seed.OnStartup)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, strings.HasPrefix(cfg.DB.GetDSN(), "/tmp/lib.db?"))
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_DRIVER", "oracle")

	_, err := Load(logger.Nop())
	require.Error(t, err)
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "cmd", "app")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HTTP_PORT=9090\nDB_NAME=fromfile\n"), 0o600))
	chdir(t, nested)

	t.Setenv("DB_DRIVER", "")
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("DB_NAME", "")
	require.NoError(t, os.Unsetenv("DB_NAME"))

	cfg, err := Load(logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.HTTPPort)
	assert.Equal(t, "fromfile", cfg.DB.Name)
}

func TestPostgresDSN(t *testing.T) {
	cfg := DBConfig{Driver: DriverPostgres, Host: "db", User: "u", Password: "p", Name: "library", Port: "5432", SSLMode: "disable", TimeZone: "UTC"}
	assert.Equal(t, "host=db user=u password=p dbname=library port=5432 sslmode=disable TimeZone=UTC", cfg.GetDSN())

	cfg.DSN = "postgres://override"
	assert.Equal(t, "postgres://override", cfg.GetDSN())
}

func TestSQLiteDSNKeepsPragmas(t *testing.T) {
	cfg := DBConfig{Driver: DriverSQLite, SQLitePath: "library.db"}
	assert.Equal(t, "library.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", cfg.GetDSN())

	cfg.DSN = "file:/data/lib.db"
	assert.Equal(t, "file:/data/lib.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", cfg.GetDSN())

	cfg.DSN = "file:/data/lib.db?mode=rwc&_pragma=busy_timeout(100)"
	assert.Equal(t, "file:/data/lib.db?mode=rwc&_pragma=busy_timeout(100)&_pragma=foreign_keys(1)", cfg.GetDSN())
}
