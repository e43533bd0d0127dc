// Package sqlitestorage implements the storage.Backend interface using an in-memory
// SQLite database that is dumped to disk via VACUUM INTO.
// It wraps the GORM backend; the SQLite-specific concerns are creating the
// in-memory DB and the periodic and final disk dumps.
package sqlitestorage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/duellog/yrpdecode/internal/config"
	"github.com/duellog/yrpdecode/internal/database"
	gormstorage "github.com/duellog/yrpdecode/internal/storage/gorm"
	"gorm.io/gorm"
)

// Backend wraps the GORM backend for SQLite-specific behavior.
type Backend struct {
	*gormstorage.Backend
	db       *gorm.DB
	cfg      config.SQLiteConfig
	logger   *slog.Logger
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// New creates a new SQLite storage backend.
func New(cfg config.SQLiteConfig, logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("backend", "sqlite")

	db, err := database.OpenSQLite("")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory SQLite DB: %w", err)
	}

	return &Backend{
		Backend:  gormstorage.New(db, logger),
		db:       db,
		cfg:      cfg,
		logger:   logger,
		stopChan: make(chan struct{}),
	}, nil
}

// Init initializes the embedded GORM backend and starts the dump goroutine.
func (b *Backend) Init() error {
	if err := b.Backend.Init(); err != nil {
		return err
	}

	if b.cfg.DumpPath != "" && b.cfg.DumpInterval > 0 {
		b.wg.Add(1)
		go b.dumpLoop()
	}
	return nil
}

// Close stops the dump goroutine, writes a final dump when a dump path is
// configured and releases the in-memory database.
func (b *Backend) Close() error {
	close(b.stopChan)
	b.wg.Wait()

	var dumpErr error
	if b.cfg.DumpPath != "" {
		_, dumpErr = b.dump(b.cfg.DumpPath)
	}
	return errors.Join(dumpErr, b.Backend.Close(), database.Close(b.db))
}

// Export dumps the database into dir, named after the configured dump path.
func (b *Backend) Export(dir string) (string, error) {
	name := filepath.Base(b.cfg.DumpPath)
	if b.cfg.DumpPath == "" {
		name = "replays.db"
	}
	return b.dump(filepath.Join(dir, name))
}

func (b *Backend) dump(path string) (string, error) {
	if err := ensureDir(path); err != nil {
		return "", err
	}
	var took time.Duration
	err := b.Exclusive(func(db *gorm.DB) error {
		var err error
		took, err = database.DumpSQLite(db, path)
		return err
	})
	if err != nil {
		return "", err
	}
	b.logger.Debug("Dumped memory DB to disk", "path", path, "duration", took)
	return path, nil
}

func ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create dump directory: %w", err)
	}
	return nil
}

// dumpLoop periodically dumps the in-memory SQLite database to disk via VACUUM INTO.
func (b *Backend) dumpLoop() {
	defer b.wg.Done()
	ticker := time.NewTicker(b.cfg.DumpInterval)
	defer ticker.Stop()

	for {
		select {
		case <-b.stopChan:
			return
		case <-ticker.C:
			if _, err := b.dump(b.cfg.DumpPath); err != nil {
				b.logger.Error("Error dumping to disk", "error", err)
			}
		}
	}
}
