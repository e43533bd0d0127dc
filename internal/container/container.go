// Package container decodes the outer replay file: header, compressed body
// and the metadata stored ahead of the event stream.
package container

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/duellog/yrpdecode/pkg/core"
)

var (
	// ErrInvalidContainer is returned for files that are not replays.
	ErrInvalidContainer = errors.New("invalid replay container")
	// ErrDecompressionFailure is returned when the body cannot be inflated
	// at any known payload offset.
	ErrDecompressionFailure = errors.New("replay decompression failed")
)

// Decoder decodes replay containers. It holds no per-file state.
type Decoder struct {
	logger *slog.Logger
}

// NewDecoder creates a Decoder logging through logger.
func NewDecoder(logger *slog.Logger) *Decoder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Decoder{logger: logger}
}

// Decode parses data into a container. Only header and decompression
// problems are fatal; a truncated body yields zero values and a warning.
func (d *Decoder) Decode(data []byte) (core.Container, error) {
	h, err := parseHeader(data)
	if err != nil {
		return core.Container{}, err
	}
	logger := d.logger.With("kind", h.Kind, "layout", h.Layout)
	if h.Layout != layouts[0].name {
		logger.Info("using shifted header layout")
	}

	var raw []byte
	if h.Flag&FlagCompressed != 0 {
		var off int
		raw, off, err = decompress(data, h)
		if err != nil {
			return core.Container{}, err
		}
		if off != h.payloadOffset {
			logger.Info("payload found at alternate offset", "offset", off)
		}
	} else {
		if h.payloadOffset > len(data) {
			return core.Container{}, fmt.Errorf("%w: payload offset %d past end of file", ErrInvalidContainer, h.payloadOffset)
		}
		raw = data[h.payloadOffset:]
	}

	meta := parseBody(raw, h.Header, logger)
	residual := raw[meta.consumed:]
	if dropped := realign(residual); dropped > 0 {
		logger.Debug("dropped leader bytes before duel start", "count", dropped)
		residual = residual[dropped:]
	}

	return core.Container{
		Header:      h.Header,
		Body:        raw,
		Residual:    residual,
		PlayerNames: meta.names,
		ScriptName:  meta.scriptName,
		Params:      meta.params,
		Decks:       meta.decks,
	}, nil
}
