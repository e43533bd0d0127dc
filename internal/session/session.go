// Package session runs one replay file through the container, stream and
// tracker stages and assembles the result.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/duellog/yrpdecode/internal/config"
	"github.com/duellog/yrpdecode/internal/container"
	"github.com/duellog/yrpdecode/internal/dispatcher"
	"github.com/duellog/yrpdecode/internal/stream"
	"github.com/duellog/yrpdecode/internal/tracker"
	"github.com/duellog/yrpdecode/pkg/core"
	"github.com/google/uuid"
)

// replayNamespace scopes replay ids, which are derived from file content.
var replayNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/duellog/yrpdecode/replay"))

type Options struct {
	// LegacyResponses also frames old YRP1 residuals as response records.
	LegacyResponses bool
	// Track runs the card tracker and fills Cards and Steps.
	Track bool
	// Trace logs every decoded packet at debug level.
	Trace bool
}

func OptionsFromConfig(cfg config.DecodeConfig) Options {
	return Options{
		LegacyResponses: cfg.LegacyResponses,
		Track:           cfg.Track,
		Trace:           cfg.Trace,
	}
}

// Decoder is safe for concurrent use; every Decode call owns its tracker.
type Decoder struct {
	logger    *slog.Logger
	opts      Options
	container *container.Decoder
	stream    *stream.Decoder
}

func NewDecoder(logger *slog.Logger, opts Options) (*Decoder, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	var dopts []dispatcher.Option
	if opts.Trace {
		dopts = append(dopts, dispatcher.Logged())
	}
	registry, err := stream.NewRegistry(logger, dopts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build message registry: %w", err)
	}
	return &Decoder{
		logger:    logger,
		opts:      opts,
		container: container.NewDecoder(logger),
		stream:    stream.NewDecoder(registry, logger),
	}, nil
}

// Decode decodes one replay file held in memory. Only container errors are
// returned; everything past the header degrades to a partial replay.
func (d *Decoder) Decode(data []byte) (*core.Replay, error) {
	start := time.Now()

	c, err := d.container.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode container: %w", err)
	}

	events := d.stream.Decode(c.Residual)
	replay := &core.Replay{
		ID:          uuid.NewSHA1(replayNamespace, data).String(),
		Header:      c.Header,
		PlayerNames: c.PlayerNames,
		ScriptName:  c.ScriptName,
		Params:      c.Params,
		Decks:       c.Decks,
		Events:      events,
	}
	if d.opts.LegacyResponses && c.Header.ID == container.MagicYRP1 {
		replay.Responses = stream.DecodeResponses(c.Residual)
	}

	stats := countEvents(events)
	stats.BodySize = len(c.Body)
	if d.opts.Track {
		t := tracker.New(d.logger)
		t.Run(events)
		replay.Cards = t.Cards()
		replay.Steps = t.Steps()
		ts := t.Stats()
		stats.InstancesCreated = ts.InstancesCreated
		stats.ResolveMisses = ts.ResolveMisses
	}
	stats.Duration = time.Since(start)
	replay.Stats = stats

	d.logger.Debug("replay decoded",
		"id", replay.ID,
		"events", stats.Events,
		"unknown", stats.Unknown,
		"failed", stats.Failed,
		"cards", stats.InstancesCreated,
		"duration", stats.Duration)
	return replay, nil
}

func countEvents(events []core.Event) core.Stats {
	s := core.Stats{Events: len(events)}
	for _, ev := range events {
		switch {
		case ev.Error != "":
			s.Failed++
		case ev.Details == nil:
			s.Unknown++
		default:
			s.Decoded++
		}
	}
	return s
}

// DecodeFile reads and decodes the replay at path. ctx is checked before the
// decode starts; a decode in progress is not interrupted.
func (d *Decoder) DecodeFile(ctx context.Context, path string) (*core.Replay, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read replay: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	replay, err := d.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	replay.Source = filepath.Base(path)
	return replay, nil
}
