package parser

import (
	"bytes"
	"encoding/binary"
	"log/slog"
	"testing"

	"github.com/duellog/yrpdecode/internal/ocg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser() *Parser {
	return NewParser(slog.Default())
}

// wire builds little-endian payloads for tests.
type wire struct {
	bytes.Buffer
}

func (w *wire) u8(v uint8) *wire {
	w.WriteByte(v)
	return w
}

func (w *wire) u16(v uint16) *wire {
	_ = binary.Write(&w.Buffer, binary.LittleEndian, v)
	return w
}

func (w *wire) u32(v uint32) *wire {
	_ = binary.Write(&w.Buffer, binary.LittleEndian, v)
	return w
}

func (w *wire) u64(v uint64) *wire {
	_ = binary.Write(&w.Buffer, binary.LittleEndian, v)
	return w
}

func (w *wire) chunk(tag, v uint32) *wire {
	return w.u16(8).u32(tag).u32(v)
}

func TestNewParser(t *testing.T) {
	require.NotNil(t, NewParser(nil))
}

func TestParseDraw(t *testing.T) {
	p := newTestParser()
	data := new(wire).u8(0).u32(2).u32(100).u32(10).u32(200).u32(10).Bytes()

	draw, err := p.ParseDraw(data)
	require.NoError(t, err)

	assert.Equal(t, uint8(0), draw.Player)
	assert.Equal(t, uint32(2), draw.Count)
	require.Len(t, draw.Cards, 2)
	assert.Equal(t, uint32(100), draw.Cards[0].Code)
	assert.Equal(t, uint32(200), draw.Cards[1].Code)
	assert.Equal(t, ocg.LocationHand, draw.Cards[1].Location)
	assert.Equal(t, "HAND", draw.Cards[1].LocationName)
	assert.Equal(t, uint32(10), draw.Cards[0].Reserved)
}

func TestParseDraw_CountBeyondPayload(t *testing.T) {
	p := newTestParser()
	data := new(wire).u8(1).u32(5).u32(42).u32(0).Bytes()

	draw, err := p.ParseDraw(data)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), draw.Count)
	assert.Len(t, draw.Cards, 1)
}

func TestParseFixedFields_ShortPayload(t *testing.T) {
	p := newTestParser()

	_, err := p.ParseNewPhase([]byte{0x01})
	require.ErrorIs(t, err, ErrShortPayload)

	_, err = p.ParseDraw([]byte{0x00, 0x01})
	require.ErrorIs(t, err, ErrShortPayload)

	_, err = p.ParseChaining(make([]byte, 20))
	require.ErrorIs(t, err, ErrShortPayload)
}

func TestParseStart_OptionalFields(t *testing.T) {
	p := newTestParser()

	start, err := p.ParseStart(new(wire).u8(1).u32(8000).Bytes())
	require.NoError(t, err)
	require.NotNil(t, start.Type)
	require.NotNil(t, start.LP)
	assert.Equal(t, uint32(8000), *start.LP)
	assert.Nil(t, start.LP2)
	assert.Nil(t, start.HandSize)

	full := new(wire).u8(0).u32(8000).u32(8000).u16(40).u16(15).u16(5).Bytes()
	start, err = p.ParseStart(full)
	require.NoError(t, err)
	require.NotNil(t, start.HandSize)
	assert.Equal(t, uint16(40), *start.DeckSize)
	assert.Equal(t, uint16(5), *start.HandSize)
}

func TestParseMove(t *testing.T) {
	p := newTestParser()

	t.Run("full", func(t *testing.T) {
		data := new(wire).
			u32(100).
			u8(0).u8(ocg.LocationHand).u32(0).u32(0).
			u8(0).u8(ocg.LocationMZone).u32(2).u32(ocg.PosFaceUpAttack).
			u32(ocg.ReasonSummon | ocg.ReasonSpSummon).Bytes()

		move, err := p.ParseMove(data)
		require.NoError(t, err)
		require.True(t, move.Complete())
		assert.Equal(t, uint32(100), move.Code)
		assert.Equal(t, "HAND", move.From.LocationName)
		assert.Equal(t, "MZONE", move.To.LocationName)
		assert.Equal(t, uint32(2), move.To.Sequence)
		assert.Equal(t, "FACEUP_ATTACK", move.To.PositionName)
		assert.Equal(t, "SUMMON|SPSUMMON", move.ReasonName)
	})

	t.Run("short variant", func(t *testing.T) {
		move, err := p.ParseMove(new(wire).u32(77).u8(3).Bytes())
		require.NoError(t, err)
		assert.False(t, move.Complete())
		assert.Equal(t, uint32(77), move.Code)
		require.NotNil(t, move.Flag)
		assert.Equal(t, uint8(3), *move.Flag)
		assert.Equal(t, "Short MOVE (Omega)", move.Note)
	})

	t.Run("incomplete", func(t *testing.T) {
		move, err := p.ParseMove(make([]byte, 12))
		require.NoError(t, err)
		assert.False(t, move.Complete())
		assert.Equal(t, "Incomplete MOVE packet (12 bytes, expected 28)", move.Note)
	})
}

func TestParseHint(t *testing.T) {
	p := newTestParser()

	hint, err := p.ParseHint(new(wire).u8(ocg.HintSelectMsg).u8(1).u32(504).Bytes())
	require.NoError(t, err)
	assert.Equal(t, "HINT_SELECTMSG", hint.TypeName)
	assert.Equal(t, "String ID", hint.DataNote)
	assert.Equal(t, uint32(504), hint.Data)

	hint, err = p.ParseHint(new(wire).u8(ocg.HintCode).u8(0).u32(1).Bytes())
	require.NoError(t, err)
	assert.Empty(t, hint.DataNote)
}

func TestParseChaining_ReservedFields(t *testing.T) {
	p := newTestParser()
	data := new(wire).
		u32(1234).u32(1234).u32(0).
		u8(0).u8(ocg.LocationHand).
		u8(1).u8(ocg.LocationMZone).u8(3).u8(0).
		u32(99).u32(7).u16(8).u32(9).Bytes()

	chaining, err := p.ParseChaining(data)
	require.NoError(t, err)
	assert.Equal(t, uint32(1234), chaining.Code)
	assert.Equal(t, "HAND", chaining.TriggerLocationName)
	assert.Equal(t, uint8(1), chaining.Controller)
	assert.Equal(t, uint8(3), chaining.Sequence)
	assert.Equal(t, uint32(99), chaining.Desc)
	assert.Equal(t, uint32(7), chaining.Reserved1)
	assert.Equal(t, uint16(8), chaining.Reserved2)
	assert.Equal(t, uint32(9), chaining.Reserved3)
}

func TestParseSelectIdleCmd(t *testing.T) {
	p := newTestParser()
	w := new(wire).u8(0).u8(1)
	// one activatable with one client effect
	w.u32(500).u32(16).u8(1).u32(501).u32(17)
	// one summonable, nothing else
	w.u8(1).u32(600).u8(0).u8(ocg.LocationHand).u8(2)
	w.u8(0).u8(0).u8(0).u8(0)
	w.u8(1).u8(1).u8(0)

	cmd, err := p.ParseSelectIdleCmd(w.Bytes())
	require.NoError(t, err)
	require.Len(t, cmd.Activatable, 1)
	require.Len(t, cmd.Activatable[0].Clients, 1)
	assert.Equal(t, uint32(501), cmd.Activatable[0].Clients[0].Code)
	require.Len(t, cmd.Summonable, 1)
	assert.Equal(t, uint32(600), cmd.Summonable[0].Code)
	assert.Equal(t, uint32(2), cmd.Summonable[0].Sequence)
	assert.Empty(t, cmd.SSet)
	assert.Equal(t, uint8(1), cmd.BPAllowed)
	assert.Equal(t, uint8(0), cmd.ShuffleAllowed)
}

func TestParseSelectChain(t *testing.T) {
	p := newTestParser()
	w := new(wire).u8(1).u8(1).u8(0).u8(0).u32(0).u32(0)
	w.u8(0).u32(321).u8(1).u8(ocg.LocationSZone).u8(4).u32(55)

	sel, err := p.ParseSelectChain(w.Bytes())
	require.NoError(t, err)
	require.Len(t, sel.Chains, 1)
	assert.Equal(t, uint32(321), sel.Chains[0].Code)
	assert.Equal(t, "SZONE", sel.Chains[0].LocationName)
	assert.Equal(t, uint32(55), sel.Chains[0].Desc)
}

func TestParseAnnounceCard_Opcodes(t *testing.T) {
	p := newTestParser()
	data := new(wire).u8(0).u8(2).u64(ocg.OpcodeIsCode).u64(89631139).Bytes()

	ann, err := p.ParseAnnounceCard(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"OPCODE_ISCODE", "89631139"}, ann.OpcodeNames)
	assert.Equal(t, "89631139", ann.Opcodes[1])
}

func TestParseReloadField(t *testing.T) {
	p := newTestParser()

	reload, err := p.ParseReloadField([]byte{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "0102", reload.Data)

	w := new(wire).u32(uint32(ocg.DuelModeMR5))
	w.u32(8000).u32(5).u32(1).u32(0).u32(0).u32(0).u32(35).u32(0).u32(15).u32(0)
	reload, err = p.ParseReloadField(w.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "MR5", reload.DuelMode)
	require.NotNil(t, reload.P1)
	assert.Nil(t, reload.P2)
	assert.Equal(t, uint32(8000), reload.P1.LP)
	assert.Equal(t, uint32(35), reload.P1.DeckCount)
	assert.Equal(t, uint32(15), reload.P1.ExtraCount)
}

func TestParseText(t *testing.T) {
	p := newTestParser()
	data := append(new(wire).u16(6).Bytes(), []byte("Duel\x00\x00")...)

	text, err := p.ParseText(data)
	require.NoError(t, err)
	assert.Equal(t, "Duel", text.Text)

	text, err = p.ParseText(new(wire).u16(50).u8('x').Bytes())
	require.NoError(t, err)
	assert.Empty(t, text.Text)
}

func TestParseToss(t *testing.T) {
	p := newTestParser()

	toss, err := p.ParseToss([]byte{0, 2, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, toss.Results)

	_, err = p.ParseToss([]byte{0, 3, 1})
	assert.ErrorIs(t, err, ErrShortPayload)
}
