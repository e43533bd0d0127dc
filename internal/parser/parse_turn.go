package parser

import (
	"github.com/duellog/yrpdecode/internal/ocg"
	"github.com/duellog/yrpdecode/pkg/core"
)

func (p *Parser) ParseNewTurn(data []byte) (core.NewTurn, error) {
	r := newPayload(data)
	return core.NewTurn{Player: r.u8(0)}, r.err
}

func (p *Parser) ParseNewPhase(data []byte) (core.NewPhase, error) {
	r := newPayload(data)
	phase := r.u16(0)
	return core.NewPhase{Phase: phase, PhaseName: ocg.PhaseName(phase)}, r.err
}

func (p *Parser) ParseWin(data []byte) (core.Win, error) {
	r := newPayload(data)
	return core.Win{Player: r.u8(0), Type: r.u8(1)}, r.err
}

// ParseStart reads the duel start message. Every field is optional and only
// read when the payload reaches it.
func (p *Parser) ParseStart(data []byte) (core.Start, error) {
	r := newPayload(data)
	var start core.Start
	if r.fits(0, 1) {
		v := r.u8(0)
		start.Type = &v
	}
	if r.fits(1, 4) {
		v := r.u32(1)
		start.LP = &v
	}
	if r.fits(5, 4) {
		v := r.u32(5)
		start.LP2 = &v
	}
	if r.fits(9, 2) {
		v := r.u16(9)
		start.DeckSize = &v
	}
	if r.fits(11, 2) {
		v := r.u16(11)
		start.ExtraSize = &v
	}
	if r.fits(13, 2) {
		v := r.u16(13)
		start.HandSize = &v
	}
	return start, r.err
}

// ParseDraw reads player(1) count(4) then code(4) reserved(4) per card.
// Drawn cards always land in the player's hand.
func (p *Parser) ParseDraw(data []byte) (core.Draw, error) {
	r := newPayload(data)
	draw := core.Draw{
		Player: r.u8(0),
		Count:  r.u32(1),
		Cards:  make([]core.DrawnCard, 0),
	}
	for i := 0; uint32(i) < draw.Count; i++ {
		at := 5 + i*8
		if !r.fits(at, 8) {
			break
		}
		draw.Cards = append(draw.Cards, core.DrawnCard{
			CardRef: core.CardRef{
				Code:         r.u32(at),
				Controller:   draw.Player,
				Location:     ocg.LocationHand,
				LocationName: ocg.LocationName(ocg.LocationHand),
			},
			Reserved: r.u32(at + 4),
		})
	}
	return draw, r.err
}

func (p *Parser) ParseTagSwap(data []byte) (core.TagSwap, error) {
	r := newPayload(data)
	return core.TagSwap{
		Player: r.u8(0),
		MCount: r.u8(1),
		ECount: r.u8(2),
		PCount: r.u8(3),
		HCount: r.u8(4),
		Top:    r.u32(5),
	}, r.err
}

// ParseReloadField reads the duel flags and, when present, the per-player
// counters of the field snapshot.
func (p *Parser) ParseReloadField(data []byte) (core.ReloadField, error) {
	r := newPayload(data)
	if len(data) < 4 {
		return core.ReloadField{Data: r.hex()}, nil
	}

	flags := r.u32(0)
	reload := core.ReloadField{
		DuelFlags: flags,
		DuelMode:  ocg.DuelModeName(uint64(flags)),
	}
	if len(data) >= 44 {
		reload.P1 = fieldPlayer(r, 4)
	}
	if len(data) >= 88 {
		reload.P2 = fieldPlayer(r, 44)
	}
	reload.Raw = r.hex()
	return reload, r.err
}

func fieldPlayer(r *payload, base int) *core.FieldPlayer {
	return &core.FieldPlayer{
		LP:          r.u32(base),
		HandCount:   r.u32(base + 4),
		GraveCount:  r.u32(base + 8),
		RemoveCount: r.u32(base + 12),
		DeckCount:   r.u32(base + 24),
		ExtraCount:  r.u32(base + 32),
	}
}

func (p *Parser) ParseMatchKill(data []byte) (core.MatchKill, error) {
	r := newPayload(data)
	return core.MatchKill{Code: r.u32(0)}, r.err
}

func (p *Parser) ParseHandResult(data []byte) (core.HandResult, error) {
	r := newPayload(data)
	return core.HandResult{Res: r.u8(0)}, r.err
}

// ParsePlayer is used by messages whose only field is the player byte.
func (p *Parser) ParsePlayer(data []byte) (core.Player, error) {
	r := newPayload(data)
	return core.Player{Player: r.u8(0)}, r.err
}

// ParsePlayerCount is used by SORT_CHAIN and SHUFFLE_EXTRA.
func (p *Parser) ParsePlayerCount(data []byte) (core.PlayerCount, error) {
	r := newPayload(data)
	return core.PlayerCount{Player: r.u8(0), Count: r.u8(1)}, r.err
}

// ParseLifePoints is used by DAMAGE, RECOVER, LPUPDATE and PAY_LPCOST.
func (p *Parser) ParseLifePoints(data []byte) (core.LifePoints, error) {
	r := newPayload(data)
	return core.LifePoints{Player: r.u8(0), Amount: r.u32(1)}, r.err
}
