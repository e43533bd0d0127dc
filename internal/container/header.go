package container

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/duellog/yrpdecode/pkg/core"
)

// Container magic values.
const (
	MagicYRP1 uint32 = 0x31707279
	MagicYRPX uint32 = 0x58707279
)

// Header flag bits.
const (
	FlagCompressed     uint32 = 0x1
	FlagTag            uint32 = 0x2
	FlagDecoded        uint32 = 0x4
	FlagSingleMode     uint32 = 0x8
	FlagLua64          uint32 = 0x10
	FlagNewReplay      uint32 = 0x20
	FlagHandTest       uint32 = 0x40
	FlagDirectSeed     uint32 = 0x80
	Flag64BitDuelFlag  uint32 = 0x100
	FlagExtendedHeader uint32 = 0x200
)

const (
	// ExtendedHeaderSize is the extension block following the base header
	// when FlagExtendedHeader is set.
	ExtendedHeaderSize = 40

	// maxPropsByte is the largest valid LZMA lc/lp/pb byte, (4*5+4)*9+8.
	maxPropsByte = 224
)

var flagNames = []struct {
	bit  uint32
	name string
}{
	{FlagCompressed, "COMPRESSED"},
	{FlagTag, "TAG"},
	{FlagDecoded, "DECODED"},
	{FlagSingleMode, "SINGLE_MODE"},
	{FlagLua64, "LUA64"},
	{FlagNewReplay, "NEWREPLAY"},
	{FlagHandTest, "HAND_TEST"},
	{FlagDirectSeed, "DIRECT_SEED"},
	{Flag64BitDuelFlag, "64BIT_DUELFLAG"},
	{FlagExtendedHeader, "EXTENDED_HEADER"},
}

// FlagNames lists the names of the set flag bits in table order.
func FlagNames(flag uint32) []string {
	names := make([]string, 0)
	for _, f := range flagNames {
		if flag&f.bit != 0 {
			names = append(names, f.name)
		}
	}
	return names
}

// KindName names a magic value.
func KindName(id uint32) string {
	switch id {
	case MagicYRP1:
		return "YRP1"
	case MagicYRPX:
		return "YRPX"
	}
	return "UNKNOWN"
}

// headerFields is everything after the magic, in wire order.
type headerFields struct {
	Version  uint32
	Flag     uint32
	Seed     uint32
	DataSize uint32
	Hash     uint32
	Props    [8]byte
}

// layout places headerFields in the file. Producers disagree on where the
// fields start; the shifted layout writes them 4 bytes later.
type layout struct {
	name       string
	fieldsAt   int
	headerSize int
}

var layouts = []layout{
	{name: "primary", fieldsAt: 4, headerSize: 32},
	{name: "shifted", fieldsAt: 8, headerSize: 36},
}

// parsedHeader is a header read with one layout.
type parsedHeader struct {
	core.Header
	props         [8]byte
	payloadOffset int
}

func (h parsedHeader) plausible() bool {
	return h.props[0] <= maxPropsByte
}

func readHeader(data []byte, id uint32, l layout) (parsedHeader, error) {
	if len(data) < l.headerSize {
		return parsedHeader{}, fmt.Errorf("%w: %d bytes is shorter than the %s header", ErrInvalidContainer, len(data), l.name)
	}

	var f headerFields
	if err := binary.Read(bytes.NewReader(data[l.fieldsAt:]), binary.LittleEndian, &f); err != nil {
		return parsedHeader{}, fmt.Errorf("%w: reading %s header: %v", ErrInvalidContainer, l.name, err)
	}

	h := parsedHeader{
		Header: core.Header{
			ID:        id,
			Kind:      KindName(id),
			Version:   f.Version,
			Flag:      f.Flag,
			FlagNames: FlagNames(f.Flag),
			Seed:      f.Seed,
			DataSize:  f.DataSize,
			Hash:      f.Hash,
			Props:     hex.EncodeToString(f.Props[:]),
			Layout:    l.name,
			Extended:  f.Flag&FlagExtendedHeader != 0,
		},
		props:         f.Props,
		payloadOffset: l.headerSize,
	}
	if h.Extended {
		h.payloadOffset += ExtendedHeaderSize
	}
	return h, nil
}

// parseHeader validates the magic and reads the header with each layout in
// turn, keeping the first whose properties byte is plausible. When none is,
// the primary reading is returned and decompression decides.
func parseHeader(data []byte) (parsedHeader, error) {
	if len(data) < 4 {
		return parsedHeader{}, fmt.Errorf("%w: file too short for magic", ErrInvalidContainer)
	}
	id := binary.LittleEndian.Uint32(data)
	if id != MagicYRP1 && id != MagicYRPX {
		return parsedHeader{}, fmt.Errorf("%w: unknown magic 0x%08x", ErrInvalidContainer, id)
	}

	var first parsedHeader
	for i, l := range layouts {
		h, err := readHeader(data, id, l)
		if err != nil {
			if i == 0 {
				return parsedHeader{}, err
			}
			continue
		}
		if i == 0 {
			first = h
		}
		if h.plausible() {
			return h, nil
		}
	}
	return first, nil
}
