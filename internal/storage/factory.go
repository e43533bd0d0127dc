// internal/storage/factory.go
package storage

import (
	"fmt"
	"log/slog"

	"github.com/duellog/yrpdecode/internal/config"
	gormstorage "github.com/duellog/yrpdecode/internal/storage/gorm"
	"github.com/duellog/yrpdecode/internal/storage/memory"
	"github.com/duellog/yrpdecode/internal/storage/postgres"
	sqlitestorage "github.com/duellog/yrpdecode/internal/storage/sqlite"
	"github.com/duellog/yrpdecode/internal/storage/websocket"
)

// New creates a storage backend based on configuration. The backend is not
// yet initialised.
func New(cfg config.StorageConfig, logger *slog.Logger) (Backend, error) {
	switch cfg.Type {
	case "memory":
		return memory.New(cfg.Memory, logger), nil
	case "sqlite":
		return sqlitestorage.New(cfg.SQLite, logger)
	case "postgres":
		return postgres.New(postgres.Dependencies{Config: cfg.DB, Logger: logger}), nil
	case "websocket":
		return websocket.New(cfg.WebSocket, logger), nil
	case "none", "":
		return Discard{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Type)
	}
}

// Compile-time interface checks.
var (
	_ Backend  = (*memory.Backend)(nil)
	_ Exporter = (*memory.Backend)(nil)
	_ Backend  = (*gormstorage.Backend)(nil)
	_ Backend  = (*sqlitestorage.Backend)(nil)
	_ Exporter = (*sqlitestorage.Backend)(nil)
	_ Backend  = (*postgres.Backend)(nil)
	_ Backend  = (*websocket.Backend)(nil)
	_ Backend  = Discard{}
)
