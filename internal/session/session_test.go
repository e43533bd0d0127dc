package session

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/duellog/yrpdecode/internal/container"
	"github.com/duellog/yrpdecode/internal/ocg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

const headerSize = 32

type replayFile struct {
	bytes.Buffer
}

func (f *replayFile) u8(v uint8) *replayFile {
	f.WriteByte(v)
	return f
}

func (f *replayFile) u32(v uint32) *replayFile {
	_ = binary.Write(&f.Buffer, binary.LittleEndian, v)
	return f
}

func (f *replayFile) name(t *testing.T, s string) *replayFile {
	t.Helper()
	enc, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	slot := make([]byte, 40)
	copy(slot, enc)
	f.Write(slot)
	return f
}

func (f *replayFile) packet(tag uint8, payload []byte) *replayFile {
	f.u8(tag).u32(uint32(len(payload)))
	f.Write(payload)
	return f
}

// header writes an uncompressed container header.
func (f *replayFile) header(magic, flag uint32) *replayFile {
	f.u32(magic).u32(0x1360).u32(flag).u32(12345).u32(0).u32(0)
	f.Write(make([]byte, 8))
	return f
}

func (f *replayFile) params() *replayFile {
	return f.u32(8000).u32(5).u32(1).u32(uint32(ocg.DuelModeMR5))
}

func movePayload(code uint32, fromLoc uint8, fromSeq uint32, toLoc uint8, toSeq uint32) []byte {
	var b replayFile
	b.u32(code)
	b.u8(0).u8(fromLoc).u32(fromSeq).u32(0)
	b.u8(0).u8(toLoc).u32(toSeq).u32(ocg.PosFaceUpAttack)
	b.u32(ocg.ReasonSummon)
	return b.Bytes()
}

func drawPayload(codes ...uint32) []byte {
	var b replayFile
	b.u8(0).u32(uint32(len(codes)))
	for _, c := range codes {
		b.u32(c).u32(0)
	}
	return b.Bytes()
}

// yrpxFile is a small uncompressed replay: start, a draw of two cards and a
// summon move of the first.
func yrpxFile(t *testing.T) []byte {
	f := new(replayFile).header(container.MagicYRPX, 0)
	f.name(t, "Alice").name(t, "Bob").params()
	f.packet(ocg.MsgStart, []byte{0, 0x40, 0x1f, 0, 0})
	f.packet(ocg.MsgDraw, drawPayload(100, 200))
	f.packet(ocg.MsgMove, movePayload(100, ocg.LocationHand, 0, ocg.LocationMZone, 2))
	return f.Bytes()
}

func newTestDecoder(t *testing.T, opts Options) *Decoder {
	t.Helper()
	d, err := NewDecoder(slog.New(slog.NewTextHandler(io.Discard, nil)), opts)
	require.NoError(t, err)
	return d
}

func TestDecode(t *testing.T) {
	d := newTestDecoder(t, Options{Track: true})

	replay, err := d.Decode(yrpxFile(t))
	require.NoError(t, err)

	assert.Equal(t, "YRPX", replay.Header.Kind)
	assert.Equal(t, []string{"Alice", "Bob"}, replay.PlayerNames)
	assert.Equal(t, uint32(8000), replay.Params.StartLP)
	assert.Equal(t, "MR5", replay.Params.DuelMode)
	assert.Empty(t, replay.Decks)
	assert.NotEmpty(t, replay.ID)

	require.Len(t, replay.Events, 3)
	assert.Equal(t, "MSG_START", replay.Events[0].Name)
	assert.Equal(t, "MSG_DRAW", replay.Events[1].Name)
	assert.Equal(t, "MSG_MOVE", replay.Events[2].Name)

	require.Len(t, replay.Cards, 2)
	assert.Equal(t, "card_100_1", replay.Cards[0].InstanceID)
	assert.Equal(t, "zone-m3", replay.Cards[0].Zone)
	assert.Equal(t, "zone-hand", replay.Cards[1].Zone)

	require.Len(t, replay.Steps, 3)
	assert.Equal(t, "Move", replay.Steps[2].Action)

	assert.Equal(t, 3, replay.Stats.Events)
	assert.Equal(t, 3, replay.Stats.Decoded)
	assert.Equal(t, 2, replay.Stats.InstancesCreated)
	assert.Equal(t, 0, replay.Stats.ResolveMisses)
	assert.Equal(t, len(yrpxFile(t))-headerSize, replay.Stats.BodySize)
}

func TestDecode_WithoutTracking(t *testing.T) {
	d := newTestDecoder(t, Options{Trace: true})

	replay, err := d.Decode(yrpxFile(t))
	require.NoError(t, err)
	assert.Len(t, replay.Events, 3)
	assert.Empty(t, replay.Cards)
	assert.Empty(t, replay.Steps)
	assert.Equal(t, 0, replay.Stats.InstancesCreated)
}

func TestDecode_Deterministic(t *testing.T) {
	d := newTestDecoder(t, Options{Track: true})
	data := yrpxFile(t)

	a, err := d.Decode(data)
	require.NoError(t, err)
	b, err := d.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, a.Header, b.Header)
	assert.Equal(t, a.Events, b.Events)
	assert.Equal(t, a.Cards, b.Cards)
	assert.Equal(t, a.Steps, b.Steps)
}

func TestDecode_TruncatedInputIsPrefix(t *testing.T) {
	d := newTestDecoder(t, Options{Track: true})
	data := yrpxFile(t)
	full, err := d.Decode(data)
	require.NoError(t, err)

	for cut := headerSize; cut < len(data); cut++ {
		replay, err := d.Decode(data[:cut])
		require.NoError(t, err, "cut at %d", cut)
		require.Less(t, len(replay.Events), len(full.Events), "cut at %d", cut)
		for i, ev := range replay.Events {
			assert.Equal(t, full.Events[i].RawPayloadHex, ev.RawPayloadHex, "cut at %d", cut)
		}
	}
}

func TestDecode_InvalidContainer(t *testing.T) {
	d := newTestDecoder(t, Options{})
	_, err := d.Decode([]byte("not a replay file at all, really"))
	assert.ErrorIs(t, err, container.ErrInvalidContainer)
}

func TestDecode_LegacyResponses(t *testing.T) {
	f := new(replayFile).header(container.MagicYRP1, 0)
	f.name(t, "A").name(t, "B").params()
	f.u32(0).u32(0).u32(0).u32(0)
	f.Write([]byte{2, 0xaa, 0xbb, 1, 0xcc})
	data := f.Bytes()

	replay, err := newTestDecoder(t, Options{LegacyResponses: true}).Decode(data)
	require.NoError(t, err)
	require.Len(t, replay.Decks, 2)
	assert.Empty(t, replay.Events)
	require.Len(t, replay.Responses, 2)
	assert.Equal(t, "aabb", replay.Responses[0].RawHex)
	assert.Equal(t, 1, replay.Responses[1].Length)

	replay, err = newTestDecoder(t, Options{}).Decode(data)
	require.NoError(t, err)
	assert.Empty(t, replay.Responses)
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duel.yrpX")
	require.NoError(t, os.WriteFile(path, yrpxFile(t), 0644))
	d := newTestDecoder(t, Options{Track: true})

	replay, err := d.DecodeFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "duel.yrpX", replay.Source)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = d.DecodeFile(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = d.DecodeFile(context.Background(), filepath.Join(t.TempDir(), "missing.yrp"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewDecoder_NilLoggerDiscards(t *testing.T) {
	d, err := NewDecoder(nil, Options{Track: true})
	require.NoError(t, err)
	assert.NotEqual(t, slog.Default(), d.logger)
	assert.False(t, d.logger.Enabled(context.Background(), slog.LevelError))
}
