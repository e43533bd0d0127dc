package parser

import (
	"fmt"

	"github.com/duellog/yrpdecode/internal/ocg"
	"github.com/duellog/yrpdecode/pkg/core"
)

const (
	moveSize      = 28
	shortMoveSize = 5
)

// ParseMove reads code(4) followed by the old and new places and the reason
// bitmask. Some servers send a 5-byte variant carrying only code and a flag.
func (p *Parser) ParseMove(data []byte) (core.Move, error) {
	r := newPayload(data)
	if len(data) == shortMoveSize {
		flag := r.u8(4)
		return core.Move{
			Code: r.u32(0),
			Flag: &flag,
			Hex:  r.hex(),
			Note: "Short MOVE (Omega)",
		}, r.err
	}
	if len(data) < moveSize {
		return core.Move{
			Hex:  r.hex(),
			Note: fmt.Sprintf("Incomplete MOVE packet (%d bytes, expected %d)", len(data), moveSize),
		}, nil
	}

	from := r.cardPlace(4)
	to := r.cardPlace(14)
	reason := r.u32(24)
	return core.Move{
		Code:       r.u32(0),
		From:       &from,
		To:         &to,
		Reason:     reason,
		ReasonName: ocg.ReasonName(reason),
	}, r.err
}

// ParseSummoning is used by normal, special and flip summon announcements.
func (p *Parser) ParseSummoning(data []byte) (core.Summoning, error) {
	r := newPayload(data)
	return core.Summoning{Code: r.u32(0), CardPlace: r.cardPlace(4)}, r.err
}

func (p *Parser) ParseEquip(data []byte) (core.Equip, error) {
	r := newPayload(data)
	return core.Equip{CardPlace: r.cardPlace(0), Target: r.cardPlace(10)}, r.err
}

func (p *Parser) ParseUnequip(data []byte) (core.Unequip, error) {
	r := newPayload(data)
	loc := r.u8(0)
	return core.Unequip{Location: loc, LocationName: ocg.LocationName(loc), Sequence: r.u8(1)}, r.err
}

// ParseCardTarget is used by CARD_TARGET and CANCEL_TARGET.
func (p *Parser) ParseCardTarget(data []byte) (core.CardTarget, error) {
	r := newPayload(data)
	loc := r.u8(0)
	tloc := r.u8(2)
	return core.CardTarget{
		Location:           loc,
		LocationName:       ocg.LocationName(loc),
		Sequence:           r.u8(1),
		TargetLocation:     tloc,
		TargetLocationName: ocg.LocationName(tloc),
		TargetSequence:     r.u8(3),
	}, r.err
}

// ParseCounter is used by ADD_COUNTER and REMOVE_COUNTER.
func (p *Parser) ParseCounter(data []byte) (core.Counter, error) {
	r := newPayload(data)
	loc := r.u8(2)
	return core.Counter{
		Type:         r.u16(0),
		Location:     loc,
		LocationName: ocg.LocationName(loc),
		Sequence:     r.u8(3),
		Count:        r.u16(4),
	}, r.err
}

// ParseAttack reads two 4-byte places: controller, location, sequence and
// position as single bytes.
func (p *Parser) ParseAttack(data []byte) (core.Attack, error) {
	r := newPayload(data)
	return core.Attack{Attacker: bytePlace(r, 0), Defender: bytePlace(r, 4)}, r.err
}

func bytePlace(r *payload, off int) core.CardPlace {
	loc := r.u8(off + 1)
	pos := uint32(r.u8(off + 3))
	return core.CardPlace{
		Controller:   r.u8(off),
		Location:     loc,
		LocationName: ocg.LocationName(loc),
		Sequence:     uint32(r.u8(off + 2)),
		Position:     pos,
		PositionName: ocg.PositionName(pos),
	}
}

func (p *Parser) ParseBattle(data []byte) (core.Battle, error) {
	r := newPayload(data)
	return core.Battle{Attacker: r.u32(0), Defender: r.u32(4)}, r.err
}

// ParseConfirmTop is used by CONFIRM_DECKTOP and CONFIRM_EXTRATOP.
func (p *Parser) ParseConfirmTop(data []byte) (core.Codes, error) {
	r := newPayload(data)
	codes := core.Codes{Player: r.u8(0), Count: r.u32(1)}
	codes.Cards = r.u32List(5, 4, codes.Count)
	return codes, r.err
}

func (p *Parser) ParseConfirmCards(data []byte) (core.Cards, error) {
	r := newPayload(data)
	cards := core.Cards{Player: r.u8(0), Count: r.u32(1)}
	cards.Cards = r.cardRefs(5, 7, cards.Count)
	return cards, r.err
}

// ParseCodeList reads player(1) count(1) followed by u32 codes. It serves
// SHUFFLE_HAND and RANDOM_SELECTED.
func (p *Parser) ParseCodeList(data []byte) (core.Codes, error) {
	r := newPayload(data)
	codes := core.Codes{Player: r.u8(0), Count: uint32(r.u8(1))}
	codes.Cards = r.u32List(2, 4, codes.Count)
	return codes, r.err
}

func (p *Parser) ParseBecomeTarget(data []byte) (core.Targets, error) {
	r := newPayload(data)
	targets := core.Targets{Count: r.u8(0)}
	targets.Cards = r.u32List(1, 4, uint32(targets.Count))
	return targets, r.err
}

// ParseShuffleSetCard reads 8-byte entries of location(1) sequence(1)
// padding(2) code(4).
func (p *Parser) ParseShuffleSetCard(data []byte) (core.ShuffleSetCard, error) {
	r := newPayload(data)
	set := core.ShuffleSetCard{Count: r.u8(0), Cards: make([]core.CardRef, 0)}
	for i := 0; i < int(set.Count); i++ {
		at := 1 + i*8
		if !r.fits(at, 8) {
			break
		}
		loc := r.u8(at)
		set.Cards = append(set.Cards, core.CardRef{
			Code:         r.u32(at + 4),
			Location:     loc,
			LocationName: ocg.LocationName(loc),
			Sequence:     uint32(r.u8(at + 1)),
		})
	}
	return set, r.err
}

func (p *Parser) ParseMissedEffect(data []byte) (core.MissedEffect, error) {
	r := newPayload(data)
	return core.MissedEffect{Position: r.u8(0), Code: r.u32(4)}, r.err
}

func (p *Parser) ParseRemoveCards(data []byte) (core.RemoveCards, error) {
	r := newPayload(data)
	rc := core.RemoveCards{Type: r.u8(0), Player: r.u8(1), Count: r.u8(2)}
	if r.err == nil {
		rc.Data = newPayload(data[3:]).hex()
	}
	return rc, r.err
}
