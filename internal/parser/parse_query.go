package parser

import (
	"encoding/binary"

	"github.com/duellog/yrpdecode/internal/ocg"
	"github.com/duellog/yrpdecode/pkg/core"
)

const (
	updateDataHeader = 6
	updateCardHeader = 13

	queryChunk   = 8
	queryChunk64 = 12
)

// ParseUpdateData reads a zone snapshot: player(1) location(1) length(4) and
// a query stream packing one record per card.
func (p *Parser) ParseUpdateData(data []byte) (core.UpdateData, error) {
	r := newPayload(data)
	loc := r.u8(1)
	update := core.UpdateData{
		Player:       r.u8(0),
		Location:     loc,
		LocationName: ocg.LocationName(loc),
		DataLen:      r.u32(2),
	}
	if r.err != nil {
		return update, r.err
	}
	update.Cards = p.queryRecords(data[updateDataHeader:], true)
	return update, nil
}

// ParseUpdateCard reads a single card refresh. The query stream starts at
// byte 13; bytes 3 to 12 are not decoded.
func (p *Parser) ParseUpdateCard(data []byte) (core.UpdateCard, error) {
	r := newPayload(data)
	loc := r.u8(1)
	update := core.UpdateCard{
		Player:       r.u8(0),
		Location:     loc,
		LocationName: ocg.LocationName(loc),
		Sequence:     r.u8(2),
	}
	if r.err != nil || len(data) <= updateCardHeader {
		return update, r.err
	}
	if records := p.queryRecords(data[updateCardHeader:], false); len(records) > 0 {
		update.Card = records[0]
	}
	return update, nil
}

// queryRecords walks a stream of (u16 length)(chunk) entries. An 8-byte chunk
// is tag(4) value(4); a 12-byte chunk is tag(4) value(8) and only used for
// race. With split set, a code attribute arriving while a record already has
// a code starts a new record, and an end tag closes the current one. A chunk
// running past the buffer ends the walk and keeps what was accumulated.
func (p *Parser) queryRecords(data []byte, split bool) []core.QueriedCard {
	records := make([]core.QueriedCard, 0)
	var (
		cur  core.QueriedCard
		open bool
	)
	flush := func() {
		if !open {
			return
		}
		nameQueried(&cur)
		records = append(records, cur)
		cur = core.QueriedCard{}
		open = false
	}

	cursor := 0
	for cursor < len(data) {
		if cursor+2 > len(data) {
			break
		}
		n := int(binary.LittleEndian.Uint16(data[cursor:]))
		cursor += 2
		if cursor+n > len(data) {
			p.logger.Debug("query chunk overruns payload", "len", n, "remaining", len(data)-cursor)
			break
		}
		chunk := data[cursor : cursor+n]
		cursor += n

		switch n {
		case queryChunk:
			tag := binary.LittleEndian.Uint32(chunk)
			v := binary.LittleEndian.Uint32(chunk[4:])
			if split && tag == ocg.QueryCode && cur.Code != nil {
				flush()
			}
			if setQueried(&cur, tag, v) {
				open = true
			}
			if split && tag == ocg.QueryEnd {
				flush()
			}
		case queryChunk64:
			tag := binary.LittleEndian.Uint32(chunk)
			if tag == ocg.QueryRace {
				v := binary.LittleEndian.Uint64(chunk[4:])
				cur.Race = &v
				open = true
			}
		}
	}
	flush()
	return records
}

func setQueried(c *core.QueriedCard, tag, v uint32) bool {
	var field **uint32
	switch tag {
	case ocg.QueryCode:
		field = &c.Code
	case ocg.QueryPosition:
		field = &c.Position
	case ocg.QueryAlias:
		field = &c.Alias
	case ocg.QueryType:
		field = &c.Type
	case ocg.QueryLevel:
		field = &c.Level
	case ocg.QueryRank:
		field = &c.Rank
	case ocg.QueryAttribute:
		field = &c.Attribute
	case ocg.QueryAttack:
		field = &c.Attack
	case ocg.QueryDefense:
		field = &c.Defense
	case ocg.QueryBaseAttack:
		field = &c.BaseAttack
	case ocg.QueryBaseDefense:
		field = &c.BaseDefense
	case ocg.QueryReason:
		field = &c.Reason
	case ocg.QueryReasonCard:
		field = &c.ReasonCard
	case ocg.QueryEquipCard:
		field = &c.EquipCard
	case ocg.QueryTargetCard:
		field = &c.TargetCard
	case ocg.QueryOverlayCard:
		field = &c.OverlayCard
	case ocg.QueryCounters:
		field = &c.Counters
	case ocg.QueryOwner:
		field = &c.Owner
	case ocg.QueryStatus:
		field = &c.Status
	case ocg.QueryIsPublic:
		field = &c.IsPublic
	case ocg.QueryLScale:
		field = &c.LScale
	case ocg.QueryRScale:
		field = &c.RScale
	case ocg.QueryLink:
		field = &c.Link
	case ocg.QueryIsHidden:
		field = &c.IsHidden
	case ocg.QueryCover:
		field = &c.Cover
	case ocg.QueryEnd:
		field = &c.QueryEnd
	default:
		return false
	}
	*field = &v
	return true
}

func nameQueried(c *core.QueriedCard) {
	if c.Position != nil {
		c.PositionName = ocg.PositionName(*c.Position)
	}
	if c.Type != nil {
		c.TypeName = ocg.TypeName(*c.Type)
	}
	if c.Attribute != nil {
		c.AttributeName = ocg.AttributeName(*c.Attribute)
	}
	if c.Reason != nil {
		c.ReasonName = ocg.ReasonName(*c.Reason)
	}
	if c.Race != nil {
		c.RaceName = ocg.RaceName(ocg.Race(*c.Race))
	}
}
