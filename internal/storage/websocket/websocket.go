package websocket

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/duellog/yrpdecode/internal/config"
	"github.com/duellog/yrpdecode/pkg/core"
	"github.com/duellog/yrpdecode/pkg/streaming"
)

// Backend streams decoded replays over WebSocket to a replay viewer.
// It implements storage.Backend but not storage.Exporter.
type Backend struct {
	conn *connection
	cfg  config.WebSocketConfig

	// one replay is streamed at a time so its messages stay contiguous
	saveMu sync.Mutex
}

// New creates a new WebSocket storage backend.
func New(cfg config.WebSocketConfig, logger *slog.Logger) *Backend {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultAck
	}
	return &Backend{
		conn: newConnection(logger.With("backend", "websocket")),
		cfg:  cfg,
	}
}

// Init connects to the WebSocket server.
func (b *Backend) Init() error {
	return b.conn.dial(b.cfg.URL, b.cfg.Secret)
}

// Close disconnects from the WebSocket server.
func (b *Backend) Close() error {
	return b.conn.close()
}

// marshalEnvelope builds a JSON-encoded Envelope from a message type and payload.
func marshalEnvelope(msgType string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", msgType, err)
	}
	env := streaming.Envelope{Type: msgType, Payload: raw}
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("marshal %s envelope: %w", msgType, err)
	}
	return data, nil
}

// sendEnvelope marshals the payload into an Envelope and pushes it
// to the write loop.
func (b *Backend) sendEnvelope(msgType string, payload any) error {
	data, err := marshalEnvelope(msgType, payload)
	if err != nil {
		return err
	}
	return b.conn.send(data, b.cfg.Timeout)
}

// SaveReplay streams r and waits for the server to acknowledge its header
// and its end.
func (b *Backend) SaveReplay(r *core.Replay) error {
	b.saveMu.Lock()
	defer b.saveMu.Unlock()

	header, err := marshalEnvelope(streaming.TypeReplayHeader, streaming.ReplayHeaderPayload{
		ReplayID:    r.ID,
		Source:      r.Source,
		Header:      r.Header,
		PlayerNames: r.PlayerNames,
		ScriptName:  r.ScriptName,
		Params:      r.Params,
		Decks:       r.Decks,
	})
	if err != nil {
		return err
	}

	b.conn.setHeader(header)
	defer b.conn.setHeader(nil)

	if err := b.conn.sendAndWait(header, streaming.TypeReplayHeader, b.cfg.Timeout); err != nil {
		return err
	}

	for _, ev := range r.Events {
		if err := b.sendEnvelope(streaming.TypeEvent, streaming.EventPayload{ReplayID: r.ID, Event: ev}); err != nil {
			return err
		}
	}
	for _, c := range r.Cards {
		if err := b.sendEnvelope(streaming.TypeCard, streaming.CardPayload{ReplayID: r.ID, Card: c}); err != nil {
			return err
		}
	}
	for _, s := range r.Steps {
		if err := b.sendEnvelope(streaming.TypeStep, streaming.StepPayload{ReplayID: r.ID, Step: s}); err != nil {
			return err
		}
	}

	end, err := marshalEnvelope(streaming.TypeEndReplay, streaming.EndReplayPayload{ReplayID: r.ID, Stats: r.Stats})
	if err != nil {
		return err
	}
	return b.conn.sendAndWait(end, streaming.TypeEndReplay, b.cfg.Timeout)
}
