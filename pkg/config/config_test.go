package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/configurador-api/pkg/config"
)

// chdir replicates testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoad_ValoresPorDefecto(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.App.Store)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "configurador", cfg.JWT.Issuer)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL())
	assert.Equal(t, 1000, cfg.Session.Max)
	assert.Equal(t, "utf-8", cfg.Export.Encoding)
	assert.Equal(t, 0, cfg.DB.MaxConns)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CATALOG_STORE", "memory")
	t.Setenv("SESSION_TTL_MINUTES", "5")
	t.Setenv("SESSION_MAX", "10")
	t.Setenv("EXPORT_ENCODING", "windows-1252")
	t.Setenv("DB_MAX_CONNS", "8")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.App.Store)
	assert.Equal(t, 5*time.Minute, cfg.Session.TTL())
	assert.Equal(t, 10, cfg.Session.Max)
	assert.Equal(t, "windows-1252", cfg.Export.Encoding)
	assert.Equal(t, 8, cfg.DB.MaxConns)
}

func TestLoad_AlmacenInvalido(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CATALOG_STORE", "redis")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDSN_EscapaContrasena(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w", DBName: "configurador", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw@db:5432/configurador?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
