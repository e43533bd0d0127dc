// Package gormstorage writes decoded replays as rows through GORM. The
// sqlite and postgres backends embed it and only own the connection.
package gormstorage

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/duellog/yrpdecode/internal/database"
	"github.com/duellog/yrpdecode/internal/model"
	"github.com/duellog/yrpdecode/internal/model/convert"
	"github.com/duellog/yrpdecode/pkg/core"
	"gorm.io/gorm"
)

// ErrNotInitialized is returned when a replay is saved before Init.
var ErrNotInitialized = errors.New("storage backend not initialized")

const batchSize = 1000

// Backend implements storage.Backend on a gorm.DB.
type Backend struct {
	db     *gorm.DB
	logger *slog.Logger

	// writes are serialised; SQLite in-memory databases reject concurrent writers
	mu sync.Mutex
}

// New creates a GORM backend over db. The caller keeps ownership of db;
// Close does not close it.
func New(db *gorm.DB, logger *slog.Logger) *Backend {
	if logger == nil {
		logger = slog.Default()
	}
	return &Backend{db: db, logger: logger}
}

// Init runs schema migration.
func (b *Backend) Init() error {
	if b.db == nil {
		return ErrNotInitialized
	}
	b.logger.Info("Migrating schema")
	return database.Migrate(b.db)
}

func (b *Backend) Close() error {
	return nil
}

// DB exposes the underlying connection.
func (b *Backend) DB() *gorm.DB {
	return b.db
}

// Exclusive runs fn while no replay is being written.
func (b *Backend) Exclusive(fn func(db *gorm.DB) error) error {
	if b.db == nil {
		return ErrNotInitialized
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return fn(b.db)
}

// SaveReplay writes r and all its child rows in one transaction. A replay
// already stored under the same id is replaced.
func (b *Backend) SaveReplay(r *core.Replay) error {
	if b.db == nil {
		return ErrNotInitialized
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	err := b.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteReplay(tx, r.ID); err != nil {
			return err
		}

		row := convert.CoreToReplay(r)
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("insert replay: %w", err)
		}

		rows := convert.CoreToRows(row.ID, r)
		if len(rows.Events) > 0 {
			if err := tx.CreateInBatches(rows.Events, batchSize).Error; err != nil {
				return fmt.Errorf("insert events: %w", err)
			}
		}
		if len(rows.Cards) > 0 {
			if err := tx.CreateInBatches(rows.Cards, batchSize).Error; err != nil {
				return fmt.Errorf("insert card instances: %w", err)
			}
		}
		if len(rows.Steps) > 0 {
			if err := tx.CreateInBatches(rows.Steps, batchSize).Error; err != nil {
				return fmt.Errorf("insert steps: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save replay %s: %w", r.ID, err)
	}

	b.logger.Debug("Replay saved", "id", r.ID, "events", len(r.Events), "steps", len(r.Steps))
	return nil
}

// deleteReplay removes the rows of a previously saved replay.
func deleteReplay(tx *gorm.DB, replayID string) error {
	var existing model.Replay
	err := tx.Where("replay_id = ?", replayID).Limit(1).Find(&existing).Error
	if err != nil {
		return fmt.Errorf("find replay: %w", err)
	}
	if existing.ID == 0 {
		return nil
	}
	for _, m := range []any{&model.Step{}, &model.CardInstance{}, &model.Event{}} {
		if err := tx.Where("replay_id = ?", existing.ID).Delete(m).Error; err != nil {
			return fmt.Errorf("delete rows: %w", err)
		}
	}
	return tx.Delete(&existing).Error
}
