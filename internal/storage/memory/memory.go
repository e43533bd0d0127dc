// internal/storage/memory/memory.go
package memory

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/duellog/yrpdecode/internal/config"
	"github.com/duellog/yrpdecode/internal/queue"
	"github.com/duellog/yrpdecode/pkg/core"
)

var (
	ErrUnsupportedFormat      = errors.New("unsupported export format")
	ErrUnsupportedCompression = errors.New("unsupported export compression")
)

// Backend collects decoded replays in memory and writes them as files on
// Export and Close.
type Backend struct {
	cfg     config.MemoryConfig
	logger  *slog.Logger
	replays *queue.Queue[*core.Replay]

	lastExportPath string
	mu             sync.Mutex
}

// New creates a new memory backend. Empty format and compression default to
// plain JSON.
func New(cfg config.MemoryConfig, logger *slog.Logger) *Backend {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Format == "" {
		cfg.Format = "json"
	}
	if cfg.Compression == "" {
		cfg.Compression = "none"
	}
	return &Backend{
		cfg:     cfg,
		logger:  logger.With("backend", "memory"),
		replays: queue.New[*core.Replay](),
	}
}

// Init validates the export settings.
func (b *Backend) Init() error {
	if _, ok := encoders[b.cfg.Format]; !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, b.cfg.Format)
	}
	if _, ok := compressions[b.cfg.Compression]; !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedCompression, b.cfg.Compression)
	}
	return nil
}

// Close writes replays not yet exported to the configured output directory.
func (b *Backend) Close() error {
	if b.cfg.OutputDir == "" || b.replays.Empty() {
		return nil
	}
	_, err := b.Export(b.cfg.OutputDir)
	return err
}

func (b *Backend) SaveReplay(r *core.Replay) error {
	b.replays.Push(r)
	return nil
}

// Replays returns the replays collected since the last export.
func (b *Backend) Replays() []*core.Replay {
	return b.replays.Items()
}

// LastExportPath is the last file written by Export.
func (b *Backend) LastExportPath() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastExportPath
}
