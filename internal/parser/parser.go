package parser

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/duellog/yrpdecode/internal/ocg"
	"github.com/duellog/yrpdecode/pkg/core"
)

// ErrShortPayload is returned when a fixed field lies past the end of a payload.
var ErrShortPayload = errors.New("payload too short")

// Parser decodes message payloads into detail records. Each ParseX method is
// a pure function of its payload.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a new Parser
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Parser{logger: logger}
}

// payload reads little-endian fields at fixed offsets. The first read that
// falls outside the buffer sets err and every later read returns zero.
type payload struct {
	b   []byte
	err error
}

func newPayload(b []byte) *payload {
	return &payload{b: b}
}

func (p *payload) need(off, n int) bool {
	if p.err != nil {
		return false
	}
	if off < 0 || off+n > len(p.b) {
		p.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShortPayload, n, off, len(p.b))
		return false
	}
	return true
}

// fits reports whether n bytes are available at off without recording an error.
// Repeated list entries use it to stop at the end of the payload.
func (p *payload) fits(off, n int) bool {
	return off >= 0 && off+n <= len(p.b)
}

func (p *payload) u8(off int) uint8 {
	if !p.need(off, 1) {
		return 0
	}
	return p.b[off]
}

func (p *payload) u16(off int) uint16 {
	if !p.need(off, 2) {
		return 0
	}
	return binary.LittleEndian.Uint16(p.b[off:])
}

func (p *payload) u32(off int) uint32 {
	if !p.need(off, 4) {
		return 0
	}
	return binary.LittleEndian.Uint32(p.b[off:])
}

func (p *payload) i32(off int) int32 {
	return int32(p.u32(off))
}

func (p *payload) u64(off int) uint64 {
	if !p.need(off, 8) {
		return 0
	}
	return binary.LittleEndian.Uint64(p.b[off:])
}

func (p *payload) hex() string {
	return hex.EncodeToString(p.b)
}

// cardRef reads the common code(4) controller(1) location(1) sequence(1) entry.
func (p *payload) cardRef(off int) core.CardRef {
	loc := p.u8(off + 5)
	return core.CardRef{
		Code:         p.u32(off),
		Controller:   p.u8(off + 4),
		Location:     loc,
		LocationName: ocg.LocationName(loc),
		Sequence:     uint32(p.u8(off + 6)),
	}
}

// cardPlace reads controller(1) location(1) sequence(4) position(4).
func (p *payload) cardPlace(off int) core.CardPlace {
	loc := p.u8(off + 1)
	pos := p.u32(off + 6)
	return core.CardPlace{
		Controller:   p.u8(off),
		Location:     loc,
		LocationName: ocg.LocationName(loc),
		Sequence:     p.u32(off + 2),
		Position:     pos,
		PositionName: ocg.PositionName(pos),
	}
}

// u32List reads up to count values spaced stride bytes apart from off.
func (p *payload) u32List(off, stride int, count uint32) []uint32 {
	values := make([]uint32, 0)
	for i := 0; uint32(i) < count; i++ {
		at := off + i*stride
		if !p.fits(at, 4) {
			break
		}
		values = append(values, p.u32(at))
	}
	return values
}

// cardRefs reads up to count entries of the given size starting at off.
func (p *payload) cardRefs(off, size int, count uint32) []core.CardRef {
	cards := make([]core.CardRef, 0)
	for i := 0; uint32(i) < count; i++ {
		at := off + i*size
		if !p.fits(at, size) {
			break
		}
		cards = append(cards, p.cardRef(at))
	}
	return cards
}

// ParseHexDump keeps the payload of messages that are recognized but whose
// layout is not decoded.
func (p *Parser) ParseHexDump(data []byte) (core.HexDump, error) {
	return core.HexDump{Data: hex.EncodeToString(data)}, nil
}

// ParseEmpty is used by messages that carry no body.
func (p *Parser) ParseEmpty(data []byte) (core.Empty, error) {
	return core.Empty{}, nil
}
