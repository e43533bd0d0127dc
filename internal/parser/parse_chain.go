package parser

import (
	"github.com/duellog/yrpdecode/internal/ocg"
	"github.com/duellog/yrpdecode/pkg/core"
)

// ParseChaining reads a new chain link. Byte 17 is padding; the three
// trailing fields are kept as reserved values.
func (p *Parser) ParseChaining(data []byte) (core.Chaining, error) {
	r := newPayload(data)
	tloc := r.u8(13)
	loc := r.u8(15)
	return core.Chaining{
		Code:                r.u32(0),
		PCode:               r.u32(4),
		Function:            r.u32(8),
		TriggerController:   r.u8(12),
		TriggerLocation:     tloc,
		TriggerLocationName: ocg.LocationName(tloc),
		Controller:          r.u8(14),
		Location:            loc,
		LocationName:        ocg.LocationName(loc),
		Sequence:            r.u8(16),
		Desc:                r.u32(18),
		Reserved1:           r.u32(22),
		Reserved2:           r.u16(26),
		Reserved3:           r.u32(28),
	}, r.err
}

func (p *Parser) ParseChained(data []byte) (core.Chained, error) {
	r := newPayload(data)
	return core.Chained{ChainCount: r.u8(0)}, r.err
}

// ParseChainLink is used by CHAIN_SOLVING, CHAIN_SOLVED, CHAIN_NEGATED and
// CHAIN_DISABLED.
func (p *Parser) ParseChainLink(data []byte) (core.ChainLink, error) {
	r := newPayload(data)
	return core.ChainLink{Link: r.u8(0)}, r.err
}
