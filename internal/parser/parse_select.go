package parser

import (
	"github.com/duellog/yrpdecode/internal/ocg"
	"github.com/duellog/yrpdecode/pkg/core"
)

// activatables reads count entries of code(4) desc(4) clients(1) followed by
// that many code(4) desc(4) client effects. It returns the offset after the list.
func activatables(r *payload, off int, count uint8) ([]core.Activatable, int) {
	list := make([]core.Activatable, 0, count)
	for i := 0; i < int(count); i++ {
		a := core.Activatable{
			Code:    r.u32(off),
			Desc:    r.u32(off + 4),
			Clients: make([]core.ClientEffect, 0),
		}
		clients := r.u8(off + 8)
		off += 9
		for j := 0; j < int(clients); j++ {
			a.Clients = append(a.Clients, core.ClientEffect{Code: r.u32(off), Desc: r.u32(off + 4)})
			off += 8
		}
		if r.err != nil {
			break
		}
		list = append(list, a)
	}
	return list, off
}

// countedRefs reads a u8 count followed by 7-byte card entries.
func countedRefs(r *payload, off int) ([]core.CardRef, int) {
	count := r.u8(off)
	off++
	list := make([]core.CardRef, 0, count)
	for i := 0; i < int(count) && r.err == nil; i++ {
		list = append(list, r.cardRef(off))
		off += 7
	}
	return list, off
}

func (p *Parser) ParseSelectBattleCmd(data []byte) (core.SelectBattleCmd, error) {
	r := newPayload(data)
	cmd := core.SelectBattleCmd{Player: r.u8(0)}

	var off int
	cmd.Activatable, off = activatables(r, 2, r.u8(1))

	count := r.u8(off)
	off++
	cmd.Attackable = make([]core.Attackable, 0, count)
	for i := 0; i < int(count) && r.err == nil; i++ {
		cmd.Attackable = append(cmd.Attackable, core.Attackable{
			CardRef:      r.cardRef(off),
			DirectAttack: r.u8(off + 7),
		})
		off += 8
	}

	cmd.MainPhase2 = r.u8(off)
	cmd.ToEP = r.u8(off + 1)
	return cmd, r.err
}

func (p *Parser) ParseSelectIdleCmd(data []byte) (core.SelectIdleCmd, error) {
	r := newPayload(data)
	cmd := core.SelectIdleCmd{Player: r.u8(0)}

	var off int
	cmd.Activatable, off = activatables(r, 2, r.u8(1))
	cmd.Summonable, off = countedRefs(r, off)
	cmd.SpSummonable, off = countedRefs(r, off)
	cmd.Repos, off = countedRefs(r, off)
	cmd.MSet, off = countedRefs(r, off)
	cmd.SSet, off = countedRefs(r, off)

	cmd.BPAllowed = r.u8(off)
	cmd.EPAllowed = r.u8(off + 1)
	cmd.ShuffleAllowed = r.u8(off + 2)
	return cmd, r.err
}

func (p *Parser) ParseSelectEffectYN(data []byte) (core.SelectEffectYN, error) {
	r := newPayload(data)
	loc := r.u8(5)
	return core.SelectEffectYN{
		Player:       r.u8(0),
		Code:         r.u32(1),
		Location:     loc,
		LocationName: ocg.LocationName(loc),
		Sequence:     r.u8(6),
		Desc:         r.u32(7),
	}, r.err
}

func (p *Parser) ParseSelectYesNo(data []byte) (core.SelectYesNo, error) {
	r := newPayload(data)
	return core.SelectYesNo{Player: r.u8(0), Desc: r.u32(1)}, r.err
}

// ParseOptions reads player(1) count(1) followed by u32 values. It serves
// SELECT_OPTION and ANNOUNCE_NUMBER.
func (p *Parser) ParseOptions(data []byte) (core.Options, error) {
	r := newPayload(data)
	opts := core.Options{Player: r.u8(0), Count: r.u8(1)}
	opts.Options = r.u32List(2, 4, uint32(opts.Count))
	return opts, r.err
}

func (p *Parser) ParseSelectCard(data []byte) (core.SelectCard, error) {
	r := newPayload(data)
	sel := core.SelectCard{
		Player:     r.u8(0),
		Cancelable: r.u8(1),
		Min:        r.u8(2),
		Max:        r.u8(3),
		Count:      r.u32(4),
	}
	sel.Cards = r.cardRefs(8, 7, sel.Count)
	return sel, r.err
}

func (p *Parser) ParseSelectUnselectCard(data []byte) (core.SelectCard, error) {
	r := newPayload(data)
	finishable := r.u8(1)
	sel := core.SelectCard{
		Player:     r.u8(0),
		Finishable: &finishable,
		Cancelable: r.u8(2),
		Min:        r.u8(3),
		Max:        r.u8(4),
		Count:      r.u32(5),
	}
	sel.Cards = r.cardRefs(9, 7, sel.Count)
	return sel, r.err
}

func (p *Parser) ParseSelectTribute(data []byte) (core.SelectTribute, error) {
	r := newPayload(data)
	sel := core.SelectTribute{
		Player:     r.u8(0),
		Cancelable: r.u8(1),
		Min:        r.u8(2),
		Max:        r.u8(3),
		Count:      r.u32(4),
		Cards:      make([]core.TributeCard, 0),
	}
	for i := 0; uint32(i) < sel.Count; i++ {
		at := 8 + i*8
		if !r.fits(at, 8) {
			break
		}
		sel.Cards = append(sel.Cards, core.TributeCard{CardRef: r.cardRef(at), ReleaseParam: r.u8(at + 7)})
	}
	return sel, r.err
}

// ParseSelectChain reads a 12-byte header followed by 12-byte chain options:
// flag(1) code(4) controller(1) location(1) sequence(1) desc(4).
func (p *Parser) ParseSelectChain(data []byte) (core.SelectChain, error) {
	r := newPayload(data)
	sel := core.SelectChain{
		Player:   r.u8(0),
		Count:    r.u8(1),
		SpeCount: r.u8(2),
		Forced:   r.u8(3),
		Hint0:    r.u32(4),
		Hint1:    r.u32(8),
		Chains:   make([]core.ChainOption, 0),
	}
	for i := 0; i < int(sel.Count); i++ {
		at := 12 + i*12
		if !r.fits(at, 12) {
			break
		}
		sel.Chains = append(sel.Chains, core.ChainOption{
			Flag:    r.u8(at),
			CardRef: r.cardRef(at + 1),
			Desc:    r.u32(at + 8),
		})
	}
	return sel, r.err
}

func (p *Parser) ParseSelectPlace(data []byte) (core.SelectPlace, error) {
	r := newPayload(data)
	return core.SelectPlace{Player: r.u8(0), Count: r.u8(1), Mask: r.u32(2)}, r.err
}

func (p *Parser) ParseSelectPosition(data []byte) (core.SelectPosition, error) {
	r := newPayload(data)
	positions := r.u8(5)
	return core.SelectPosition{
		Player:        r.u8(0),
		Code:          r.u32(1),
		Positions:     positions,
		PositionsName: ocg.PositionName(uint32(positions)),
	}, r.err
}

func (p *Parser) ParseSelectCounter(data []byte) (core.SelectCounter, error) {
	r := newPayload(data)
	sel := core.SelectCounter{
		Player: r.u8(0),
		Type:   r.u16(1),
		Count:  r.u16(3),
		Cards:  make([]core.CounterCard, 0),
	}
	entries := r.u32(5)
	for i := 0; uint32(i) < entries; i++ {
		at := 9 + i*9
		if !r.fits(at, 9) {
			break
		}
		sel.Cards = append(sel.Cards, core.CounterCard{CardRef: r.cardRef(at), Num: r.u16(at + 7)})
	}
	return sel, r.err
}

func (p *Parser) ParseSelectSum(data []byte) (core.SelectSum, error) {
	r := newPayload(data)
	sel := core.SelectSum{
		Mode:   r.u8(0),
		Player: r.u8(1),
		Val:    r.u32(2),
		Min:    r.u32(6),
		Max:    r.u32(10),
		Count:  r.u32(14),
		Cards:  make([]core.SumCard, 0),
	}
	for i := 0; uint32(i) < sel.Count; i++ {
		at := 18 + i*11
		if !r.fits(at, 11) {
			break
		}
		sel.Cards = append(sel.Cards, core.SumCard{CardRef: r.cardRef(at), Val: r.u32(at + 7)})
	}
	return sel, r.err
}

// ParseSelectDisfield keeps the raw payload next to the decoded places since
// the entry stride is not confirmed.
func (p *Parser) ParseSelectDisfield(data []byte) (core.SelectDisfield, error) {
	r := newPayload(data)
	sel := core.SelectDisfield{Player: r.u8(0), Count: r.u8(1), Raw: r.hex()}
	sel.Disfields = r.u32List(2, 6, uint32(sel.Count))
	return sel, r.err
}

// ParseSortCard reads player(1) count(1) followed by 7-byte card entries.
func (p *Parser) ParseSortCard(data []byte) (core.Cards, error) {
	r := newPayload(data)
	sorted := core.Cards{Player: r.u8(0), Count: uint32(r.u8(1))}
	sorted.Cards = r.cardRefs(2, 7, sorted.Count)
	return sorted, r.err
}
