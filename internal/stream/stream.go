// Package stream frames the decompressed event stream into packets and
// decodes each packet through the message registry.
package stream

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"log/slog"

	"github.com/duellog/yrpdecode/internal/dispatcher"
	"github.com/duellog/yrpdecode/internal/ocg"
	"github.com/duellog/yrpdecode/pkg/core"
)

// PacketHeaderSize is the tag(1) length(4) prefix of every packet.
const PacketHeaderSize = 5

// Decoder turns a residual event stream into events.
type Decoder struct {
	registry *dispatcher.Dispatcher
	logger   *slog.Logger
}

// NewDecoder creates a Decoder backed by a registry built with NewRegistry.
func NewDecoder(registry *dispatcher.Dispatcher, logger *slog.Logger) *Decoder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Decoder{registry: registry, logger: logger}
}

// Decode frames data as (u8 tag)(u32 length)(payload) packets. A packet
// whose declared length runs past the buffer ends decoding; the events read
// so far are returned. Decoder failures stay on their own event.
func (s *Decoder) Decode(data []byte) []core.Event {
	events := make([]core.Event, 0)
	offset := 0
	for offset+PacketHeaderSize <= len(data) {
		tag := data[offset]
		length := binary.LittleEndian.Uint32(data[offset+1:])
		start := offset + PacketHeaderSize
		if uint64(start)+uint64(length) > uint64(len(data)) {
			s.logger.Warn("packet overruns event stream",
				"offset", offset, "tag", tag, "length", length, "remaining", len(data)-start)
			break
		}
		payload := data[start : start+int(length)]
		events = append(events, s.decodePacket(len(events), tag, payload))
		offset = start + int(length)
	}
	if offset < len(data) && offset+PacketHeaderSize > len(data) {
		s.logger.Debug("trailing bytes after last packet", "count", len(data)-offset)
	}
	return events
}

func (s *Decoder) decodePacket(index int, tag uint8, payload []byte) core.Event {
	ev := core.Event{
		Index:         index,
		Type:          tag,
		Name:          ocg.MsgName(tag),
		Length:        uint32(len(payload)),
		RawPayloadHex: hex.EncodeToString(payload),
		Payload:       payload,
	}

	details, err := s.registry.Dispatch(dispatcher.Packet{Index: index, Tag: tag, Payload: payload})
	switch {
	case errors.Is(err, dispatcher.ErrNoHandler):
	case err != nil:
		ev.Error = err.Error()
	default:
		ev.Details = details
	}
	return ev
}

// DecodeResponses frames data as (u8 length)(data) records, the layout old
// replays use to store player responses. Empty records are skipped and a
// record running past the buffer ends decoding.
func DecodeResponses(data []byte) []core.Response {
	responses := make([]core.Response, 0)
	offset := 0
	for offset < len(data) {
		length := int(data[offset])
		start := offset + 1
		if start+length > len(data) {
			break
		}
		if length == 0 {
			offset = start
			continue
		}
		responses = append(responses, core.Response{
			Index:  len(responses),
			Length: length,
			RawHex: hex.EncodeToString(data[start : start+length]),
		})
		offset = start + length
	}
	return responses
}
