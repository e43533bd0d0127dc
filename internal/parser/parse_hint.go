package parser

import (
	"strings"

	"github.com/duellog/yrpdecode/internal/ocg"
	"github.com/duellog/yrpdecode/pkg/core"
)

func (p *Parser) ParseHint(data []byte) (core.Hint, error) {
	r := newPayload(data)
	hint := core.Hint{
		Hex:    r.hex(),
		Type:   r.u8(0),
		Player: r.u8(1),
		Data:   r.u32(2),
	}
	hint.TypeName = ocg.HintName(hint.Type)
	if hint.Type == ocg.HintMessage || hint.Type == ocg.HintSelectMsg {
		hint.DataNote = "String ID"
	}
	return hint, r.err
}

func (p *Parser) ParseCardHint(data []byte) (core.CardHint, error) {
	r := newPayload(data)
	loc := r.u8(1)
	pos := r.u32(6)
	typ := r.u32(10)
	return core.CardHint{
		Controller:   r.u8(0),
		Location:     loc,
		LocationName: ocg.LocationName(loc),
		Sequence:     r.u32(2),
		Position:     pos,
		PositionName: ocg.PositionName(pos),
		Type:         typ,
		TypeName:     ocg.CardHintName(typ),
		Val:          r.u32(14),
	}, r.err
}

func (p *Parser) ParsePlayerHint(data []byte) (core.PlayerHint, error) {
	r := newPayload(data)
	typ := r.u8(1)
	return core.PlayerHint{
		Player:   r.u8(0),
		Type:     typ,
		TypeName: ocg.PlayerHintName(typ),
		Val:      r.u32(2),
	}, r.err
}

// ParseText reads a u16 length followed by a UTF-8 string. NUL bytes are
// stripped and a length running past the payload yields an empty string.
func (p *Parser) ParseText(data []byte) (core.Text, error) {
	r := newPayload(data)
	text := core.Text{Len: r.u16(0)}
	if r.fits(2, int(text.Len)) {
		text.Text = strings.ReplaceAll(string(data[2:2+int(text.Len)]), "\x00", "")
	}
	return text, r.err
}

func (p *Parser) ParseCustomMsg(data []byte) (core.CustomMsg, error) {
	r := newPayload(data)
	return core.CustomMsg{Player: r.u8(0), Msg: r.u32(1)}, r.err
}
