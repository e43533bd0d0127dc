// internal/storage/storage.go
package storage

import (
	"errors"

	"github.com/duellog/yrpdecode/pkg/core"
)

// ErrUnknownBackend is returned by New for an unrecognised storage type.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Backend is the interface all storage implementations must satisfy.
// SaveReplay may be called from several decode workers at once.
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	SaveReplay(r *core.Replay) error
}

// Exporter is an optional interface for backends that write their
// collected replays to files. Export returns the path it wrote.
type Exporter interface {
	Export(dir string) (string, error)
}

// Discard drops every replay. It backs the "none" storage type.
type Discard struct{}

func (Discard) Init() error                   { return nil }
func (Discard) Close() error                  { return nil }
func (Discard) SaveReplay(*core.Replay) error { return nil }
