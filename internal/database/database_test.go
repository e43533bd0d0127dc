package database

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/duellog/yrpdecode/internal/config"
	"github.com/duellog/yrpdecode/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresDSN(t *testing.T) {
	cfg := config.DBConfig{Host: "db", Port: "5433", Username: "u", Password: "p", Database: "replays"}
	assert.Equal(t,
		"host=db port=5433 user=u password=p dbname=replays sslmode=disable connect_timeout=5",
		PostgresDSN(cfg))

	cfg.SSLMode = "require"
	assert.Contains(t, PostgresDSN(cfg), "sslmode=require")
}

func TestOpenPostgres_Unreachable(t *testing.T) {
	cfg := config.DBConfig{Host: "127.0.0.1", Port: "1", Username: "u", Password: "p", Database: "x"}
	_, err := OpenPostgres(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

func TestOpenSQLite_MemoryIsPrivate(t *testing.T) {
	a, err := OpenSQLite("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(a) })
	b, err := OpenSQLite("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(b) })

	require.NoError(t, Migrate(a))
	assert.True(t, a.Migrator().HasTable(&model.Replay{}))
	assert.False(t, b.Migrator().HasTable(&model.Replay{}))
}

func TestDumpSQLite(t *testing.T) {
	db, err := OpenSQLite("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	require.NoError(t, Migrate(db))
	require.NoError(t, db.Create(&model.Replay{ReplayID: "r1", Kind: "YRPX"}).Error)

	path := filepath.Join(t.TempDir(), "replays.db")
	_, err = DumpSQLite(db, path)
	require.NoError(t, err)
	// a second dump replaces the first
	_, err = DumpSQLite(db, path)
	require.NoError(t, err)

	disk, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(disk) })
	var count int64
	require.NoError(t, disk.Model(&model.Replay{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDumpSQLite_NoPath(t *testing.T) {
	db, err := OpenSQLite("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	_, err = DumpSQLite(db, "")
	assert.Error(t, err)
}
