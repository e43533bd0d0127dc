package container

import (
	"bytes"
	"encoding/binary"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz/lzma"

	"github.com/duellog/yrpdecode/internal/ocg"
)

// bodyBuilder writes little-endian body fields.
type bodyBuilder struct {
	bytes.Buffer
}

func (b *bodyBuilder) u16(v uint16) *bodyBuilder {
	_ = binary.Write(&b.Buffer, binary.LittleEndian, v)
	return b
}

func (b *bodyBuilder) u32(v uint32) *bodyBuilder {
	_ = binary.Write(&b.Buffer, binary.LittleEndian, v)
	return b
}

func (b *bodyBuilder) u64(v uint64) *bodyBuilder {
	_ = binary.Write(&b.Buffer, binary.LittleEndian, v)
	return b
}

func (b *bodyBuilder) name(t *testing.T, s string) *bodyBuilder {
	t.Helper()
	enc, err := utf16le.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	slot := make([]byte, nameSlotSize)
	copy(slot, enc)
	b.Write(slot)
	return b
}

func (b *bodyBuilder) packet(tag uint8, payload ...byte) *bodyBuilder {
	b.WriteByte(tag)
	b.u32(uint32(len(payload)))
	b.Write(payload)
	return b
}

func (b *bodyBuilder) deck(main, extra []uint32) *bodyBuilder {
	b.u32(uint32(len(main)))
	for _, c := range main {
		b.u32(c)
	}
	b.u32(uint32(len(extra)))
	for _, c := range extra {
		b.u32(c)
	}
	return b
}

var startPayload = []byte{0, 0x40, 0x1f, 0, 0}

// compress returns the properties and raw data of an LZMA stream. With
// sized set the stream declares its size and has no end marker.
func compress(t *testing.T, data []byte, sized bool) ([5]byte, []byte) {
	t.Helper()
	var buf bytes.Buffer
	var (
		w   *lzma.Writer
		err error
	)
	if sized {
		cfg := lzma.WriterConfig{SizeInHeader: true, Size: int64(len(data)), EOSMarker: false}
		w, err = cfg.NewWriter(&buf)
	} else {
		w, err = lzma.NewWriter(&buf)
	}
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	out := buf.Bytes()
	var props [5]byte
	copy(props[:], out[:5])
	return props, out[13:]
}

type fixture struct {
	id       uint32
	flag     uint32
	dataSize uint32
	hash     uint32
	props    [5]byte
	shifted  bool
	gap      []byte
	payload  []byte
}

func (f fixture) bytes() []byte {
	b := new(bodyBuilder)
	b.u32(f.id)
	if f.shifted {
		b.u32(0)
	}
	b.u32(1).u32(f.flag).u32(0x5eed).u32(f.dataSize).u32(f.hash)
	b.Write(f.props[:])
	b.Write([]byte{0, 0, 0})
	if f.flag&FlagExtendedHeader != 0 {
		b.Write(bytes.Repeat([]byte{0xaa}, ExtendedHeaderSize))
	}
	b.Write(f.gap)
	b.Write(f.payload)
	return b.Bytes()
}

func compressedFixture(t *testing.T, id, flag uint32, body []byte) fixture {
	props, payload := compress(t, body, true)
	return fixture{
		id:       id,
		flag:     flag | FlagCompressed,
		dataSize: uint32(len(body)),
		props:    props,
		payload:  payload,
	}
}

func yrp1Body(t *testing.T) []byte {
	b := new(bodyBuilder)
	b.name(t, "Yugi").name(t, "Kaiba")
	b.u32(8000).u32(5).u32(1).u32(uint32(ocg.DuelModeMR5))
	b.deck([]uint32{89631139, 89631139, 38033121}, []uint32{44508094})
	b.deck([]uint32{46986414, 70781052}, nil)
	b.packet(ocg.MsgStart, startPayload...)
	b.packet(ocg.MsgNewTurn, 0)
	return b.Bytes()
}

func newTestDecoder() *Decoder {
	return NewDecoder(slog.Default())
}

func TestDecode_InvalidContainer(t *testing.T) {
	d := newTestDecoder()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"unknown magic", bytes.Repeat([]byte{0x42}, 64)},
		{"short header", binary.LittleEndian.AppendUint32(nil, MagicYRP1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Decode(tt.data)
			require.ErrorIs(t, err, ErrInvalidContainer)
		})
	}
}

func TestDecode_YRP1Compressed(t *testing.T) {
	d := newTestDecoder()
	body := yrp1Body(t)

	c, err := d.Decode(compressedFixture(t, MagicYRP1, 0, body).bytes())
	require.NoError(t, err)

	assert.Equal(t, "YRP1", c.Header.Kind)
	assert.Equal(t, "primary", c.Header.Layout)
	assert.Equal(t, []string{"COMPRESSED"}, c.Header.FlagNames)
	assert.Equal(t, body, c.Body)

	assert.Equal(t, []string{"Yugi", "Kaiba"}, c.PlayerNames)
	assert.Equal(t, uint32(8000), c.Params.StartLP)
	assert.Equal(t, uint32(5), c.Params.StartHand)
	assert.Equal(t, uint32(1), c.Params.DrawCount)
	assert.Equal(t, "MR5", c.Params.DuelMode)

	require.Len(t, c.Decks, 2)
	assert.Equal(t, []uint32{89631139, 89631139, 38033121}, c.Decks[0].Main)
	assert.Equal(t, []uint32{44508094}, c.Decks[0].Extra)
	assert.Empty(t, c.Decks[1].Extra)

	require.NotEmpty(t, c.Residual)
	assert.Equal(t, ocg.MsgStart, c.Residual[0])
	assert.Len(t, c.Residual, 16)
}

func TestDecode_ShiftedHeaderMatchesPrimary(t *testing.T) {
	d := newTestDecoder()
	body := yrp1Body(t)

	primary := compressedFixture(t, MagicYRP1, 0, body)
	shifted := primary
	shifted.shifted = true
	// in the shifted layout the hash sits where the primary layout reads
	// the properties byte
	shifted.hash = 0xe1

	want, err := d.Decode(primary.bytes())
	require.NoError(t, err)

	got, err := d.Decode(shifted.bytes())
	require.NoError(t, err)

	assert.Equal(t, "shifted", got.Header.Layout)
	assert.Equal(t, uint32(0xe1), got.Header.Hash)
	assert.Equal(t, want.Body, got.Body)
	assert.Equal(t, want.Residual, got.Residual)
	assert.Equal(t, want.PlayerNames, got.PlayerNames)
	assert.Equal(t, want.Decks, got.Decks)
}

func TestDecode_ImplausibleSizeUsesCanonicalProps(t *testing.T) {
	d := newTestDecoder()
	b := new(bodyBuilder)
	b.name(t, "A").name(t, "B").u32(8000).u32(5).u32(1).u32(0)
	b.packet(ocg.MsgStart, startPayload...)
	body := b.Bytes()

	_, payload := compress(t, body, false)
	f := fixture{
		id:       MagicYRPX,
		flag:     FlagCompressed,
		dataSize: 12,
		payload:  payload,
	}

	c, err := d.Decode(f.bytes())
	require.NoError(t, err)
	assert.Equal(t, body, c.Body)
	assert.Equal(t, []string{"A", "B"}, c.PlayerNames)
	assert.Empty(t, c.Decks)
	assert.Equal(t, ocg.MsgStart, c.Residual[0])
}

func TestDecode_UnknownSizeWithoutEndMarker(t *testing.T) {
	d := newTestDecoder()
	b := new(bodyBuilder)
	b.name(t, "A").name(t, "B").u32(8000).u32(5).u32(1).u32(0)
	b.packet(ocg.MsgStart, startPayload...)
	for i := 0; i < 200; i++ {
		b.packet(ocg.MsgNewTurn, 0)
	}
	body := b.Bytes()

	_, payload := compress(t, body, true)
	f := fixture{
		id:       MagicYRPX,
		flag:     FlagCompressed,
		dataSize: 12,
		payload:  payload,
	}

	c, err := d.Decode(f.bytes())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(c.Body), len(body))
	assert.Equal(t, body, c.Body[:len(body)])
	assert.Equal(t, []string{"A", "B"}, c.PlayerNames)
	assert.Equal(t, ocg.MsgStart, c.Residual[0])
}

func TestNewLZMAStream_DictionaryBounds(t *testing.T) {
	tests := []struct {
		name     string
		dict     uint32
		declared uint32
		want     uint32
	}{
		{"huge dict small body", 0xffffffff, 4096, minDictSize},
		{"huge dict medium body", 0xffffffff, 1 << 20, 1 << 20},
		{"huge dict huge body", 0xffffffff, 1 << 30, maxDictSize},
		{"small dict kept", 1 << 12, 1 << 20, 1 << 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var props [8]byte
			props[0] = 0x5d
			binary.LittleEndian.PutUint32(props[1:5], tt.dict)

			s := newLZMAStream(props, tt.declared)
			assert.Equal(t, byte(0x5d), s.props[0])
			assert.Equal(t, tt.want, binary.LittleEndian.Uint32(s.props[1:5]))
			assert.Equal(t, uint64(tt.declared), s.size)
		})
	}
}

func TestDecode_OversizedDictionary(t *testing.T) {
	d := newTestDecoder()
	body := yrp1Body(t)

	f := compressedFixture(t, MagicYRP1, 0, body)
	f.props = [5]byte{0x5d, 0xff, 0xff, 0xff, 0xff}

	c, err := d.Decode(f.bytes())
	require.NoError(t, err)
	assert.Equal(t, body, c.Body)
}

func TestDecode_RetryAtShiftedPayload(t *testing.T) {
	d := newTestDecoder()
	body := yrp1Body(t)

	f := compressedFixture(t, MagicYRP1, 0, body)
	f.gap = bytes.Repeat([]byte{0xaa}, payloadShift)

	c, err := d.Decode(f.bytes())
	require.NoError(t, err)
	assert.Equal(t, body, c.Body)
}

func TestDecode_DecompressionFailure(t *testing.T) {
	d := newTestDecoder()
	f := fixture{
		id:       MagicYRP1,
		flag:     FlagCompressed,
		dataSize: 4096,
		props:    [5]byte{0x5d, 0, 0, 0x10, 0},
		payload:  bytes.Repeat([]byte{0xaa}, 64),
	}

	_, err := d.Decode(f.bytes())
	require.ErrorIs(t, err, ErrDecompressionFailure)
}

func TestDecode_ExtendedHeader(t *testing.T) {
	d := newTestDecoder()
	b := new(bodyBuilder)
	b.name(t, "Left").name(t, "Right").u32(8000).u32(5).u32(1).u32(0)
	b.packet(ocg.MsgStart, startPayload...)
	body := b.Bytes()

	c, err := d.Decode(compressedFixture(t, MagicYRPX, FlagExtendedHeader, body).bytes())
	require.NoError(t, err)
	assert.True(t, c.Header.Extended)
	assert.Equal(t, body, c.Body)
	assert.Equal(t, []string{"Left", "Right"}, c.PlayerNames)
}

func TestDecode_TruncatedBody(t *testing.T) {
	d := newTestDecoder()
	b := new(bodyBuilder)
	b.name(t, "Yugi")
	b.Write([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})

	f := fixture{id: MagicYRP1, payload: b.Bytes()}
	c, err := d.Decode(f.bytes())
	require.NoError(t, err)

	assert.Equal(t, []string{"Yugi", ""}, c.PlayerNames)
	assert.Zero(t, c.Params.StartLP)
	assert.Empty(t, c.Decks)
	assert.Empty(t, c.Residual)
}

func TestDecode_NewReplayLayout(t *testing.T) {
	d := newTestDecoder()
	b := new(bodyBuilder)
	b.u32(1).name(t, "Solo")
	b.u32(2).name(t, "Tag A").name(t, "Tag B")
	b.u32(8000).u32(5).u32(1).u64(uint64(ocg.DuelModeMR5))
	b.deck([]uint32{1}, nil).deck([]uint32{2}, nil).deck([]uint32{3}, []uint32{4})
	b.u32(2).u32(0xdead).u32(0xbeef)
	b.packet(ocg.MsgStart, startPayload...)

	f := fixture{id: MagicYRP1, flag: FlagNewReplay | Flag64BitDuelFlag, payload: b.Bytes()}
	c, err := d.Decode(f.bytes())
	require.NoError(t, err)

	assert.Equal(t, []string{"Solo", "Tag A", "Tag B"}, c.PlayerNames)
	assert.Equal(t, uint64(ocg.DuelModeMR5), c.Params.DuelFlags)
	require.Len(t, c.Decks, 3)
	assert.Equal(t, []uint32{4}, c.Decks[2].Extra)
	assert.Equal(t, ocg.MsgStart, c.Residual[0])
}

func TestDecode_SingleModeScript(t *testing.T) {
	d := newTestDecoder()
	b := new(bodyBuilder)
	b.name(t, "P1").name(t, "P2").u32(8000).u32(5).u32(1).u32(0)
	b.u16(9)
	b.WriteString("puzzle.lu")
	b.deck(nil, nil).deck(nil, nil)

	f := fixture{id: MagicYRP1, flag: FlagSingleMode, payload: b.Bytes()}
	c, err := d.Decode(f.bytes())
	require.NoError(t, err)
	assert.Equal(t, "puzzle.lu", c.ScriptName)
	assert.Len(t, c.Decks, 2)
}

func TestDecode_Realignment(t *testing.T) {
	d := newTestDecoder()
	head := func() *bodyBuilder {
		b := new(bodyBuilder)
		b.name(t, "A").name(t, "B").u32(8000).u32(5).u32(1).u32(0)
		return b
	}

	t.Run("leader bytes dropped", func(t *testing.T) {
		b := head()
		b.Write([]byte{0xee, 0x01, 0x02})
		b.packet(ocg.MsgStart, startPayload...)

		c, err := d.Decode(fixture{id: MagicYRPX, payload: b.Bytes()}.bytes())
		require.NoError(t, err)
		require.Len(t, c.Residual, 10)
		assert.Equal(t, ocg.MsgStart, c.Residual[0])
	})

	t.Run("leading packets kept", func(t *testing.T) {
		b := head()
		b.packet(ocg.MsgServerGeneric, 7)
		b.packet(ocg.MsgStart, startPayload...)

		c, err := d.Decode(fixture{id: MagicYRPX, payload: b.Bytes()}.bytes())
		require.NoError(t, err)
		require.Len(t, c.Residual, 16)
		assert.Equal(t, ocg.MsgServerGeneric, c.Residual[0])
	})
}

func TestParseHeader_NoPlausibleLayout(t *testing.T) {
	f := fixture{id: MagicYRP1, hash: 0xff, props: [5]byte{0xff}, shifted: true}
	h, err := parseHeader(f.bytes())
	require.NoError(t, err)
	assert.Equal(t, "primary", h.Layout)
}

func TestRealign(t *testing.T) {
	start := []byte{ocg.MsgStart, 5, 0, 0, 0, 0, 0x40, 0x1f, 0, 0}

	tests := []struct {
		name string
		data []byte
		want int
	}{
		{"at zero", start, 0},
		{"junk prefix", append([]byte{1, 2}, start...), 2},
		{"no start", []byte{9, 9, 9, 9, 9, 9}, 0},
		{"length out of range", []byte{ocg.MsgStart, 0, 1, 0, 0, 0}, 0},
		{"too short", []byte{ocg.MsgStart, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, realign(tt.data))
		})
	}
}

func TestFramesCleanly(t *testing.T) {
	assert.True(t, framesCleanly(nil))
	assert.True(t, framesCleanly([]byte{0, 1, 0, 0, 0, 7, 3, 0, 0, 0, 0}))
	assert.False(t, framesCleanly([]byte{0, 2, 0, 0, 0, 7}))
	assert.False(t, framesCleanly([]byte{0, 0, 0}))
}

func TestFlagNames(t *testing.T) {
	assert.Equal(t,
		[]string{"COMPRESSED", "TAG", "EXTENDED_HEADER"},
		FlagNames(FlagCompressed|FlagTag|FlagExtendedHeader))
	assert.Empty(t, FlagNames(0))
}
