// Package postgres implements the storage.Backend interface on PostgreSQL
// through the shared GORM row writer.
package postgres

import (
	"fmt"
	"log/slog"

	"github.com/duellog/yrpdecode/internal/config"
	"github.com/duellog/yrpdecode/internal/database"
	gormstorage "github.com/duellog/yrpdecode/internal/storage/gorm"
	"github.com/duellog/yrpdecode/pkg/core"
	"gorm.io/gorm"
)

// Dependencies holds all dependencies for the Postgres storage backend.
// DB may be nil, in which case Init connects using Config.
type Dependencies struct {
	Config config.DBConfig
	DB     *gorm.DB
	Logger *slog.Logger
}

type Backend struct {
	deps  Dependencies
	rows  *gormstorage.Backend
	ownDB bool
}

func New(deps Dependencies) *Backend {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	deps.Logger = deps.Logger.With("backend", "postgres")
	return &Backend{deps: deps}
}

// Init connects when no DB was injected and runs schema migration.
func (b *Backend) Init() error {
	if b.deps.DB == nil {
		db, err := database.OpenPostgres(b.deps.Config, b.deps.Logger)
		if err != nil {
			return err
		}
		b.deps.DB = db
		b.ownDB = true
	}

	b.rows = gormstorage.New(b.deps.DB, b.deps.Logger)
	if err := b.rows.Init(); err != nil {
		return fmt.Errorf("failed to setup DB: %w", err)
	}
	return nil
}

func (b *Backend) SaveReplay(r *core.Replay) error {
	if b.rows == nil {
		return gormstorage.ErrNotInitialized
	}
	return b.rows.SaveReplay(r)
}

// Close releases the connection if Init opened it.
func (b *Backend) Close() error {
	if !b.ownDB {
		return nil
	}
	return database.Close(b.deps.DB)
}
