package parser

import (
	"strconv"

	"github.com/duellog/yrpdecode/internal/ocg"
	"github.com/duellog/yrpdecode/pkg/core"
)

func (p *Parser) ParseAnnounceRace(data []byte) (core.Announce, error) {
	r := newPayload(data)
	available := r.u32(2)
	return core.Announce{
		Player:         r.u8(0),
		Count:          r.u8(1),
		Available:      available,
		AvailableNames: ocg.RaceName(ocg.Race(available)),
	}, r.err
}

func (p *Parser) ParseAnnounceAttrib(data []byte) (core.Announce, error) {
	r := newPayload(data)
	available := r.u32(2)
	return core.Announce{
		Player:         r.u8(0),
		Count:          r.u8(1),
		Available:      available,
		AvailableNames: ocg.AttributeName(available),
	}, r.err
}

// ParseAnnounceCard reads the 64-bit filter program of a card announcement.
func (p *Parser) ParseAnnounceCard(data []byte) (core.AnnounceCard, error) {
	r := newPayload(data)
	ann := core.AnnounceCard{
		Player:      r.u8(0),
		Count:       r.u8(1),
		Opcodes:     make([]string, 0),
		OpcodeNames: make([]string, 0),
	}
	for i := 0; i < int(ann.Count); i++ {
		at := 2 + i*8
		if !r.fits(at, 8) {
			break
		}
		op := r.u64(at)
		ann.Opcodes = append(ann.Opcodes, strconv.FormatUint(op, 10))
		ann.OpcodeNames = append(ann.OpcodeNames, ocg.OpcodeName(op))
	}
	return ann, r.err
}

// ParseToss reads coin or dice results, one byte each.
func (p *Parser) ParseToss(data []byte) (core.Toss, error) {
	r := newPayload(data)
	toss := core.Toss{Player: r.u8(0), Count: r.u8(1), Results: make([]int, 0)}
	for i := 0; i < int(toss.Count); i++ {
		toss.Results = append(toss.Results, int(r.u8(2+i)))
	}
	return toss, r.err
}
