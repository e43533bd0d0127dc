package parser

import (
	"bytes"
	"encoding/binary"

	"github.com/duellog/yrpdecode/pkg/core"
)

// Some servers interleave their own packets with engine messages. Their
// layouts are inferred, so every decoder keeps the hex payload.

var serverSignature = []byte{0xff, 0x9f, 0xff, 0xff}

const (
	syncPacketSize = 255
	intPreviewMax  = 8
)

func int32s(data []byte, limit int) []int32 {
	values := make([]int32, 0)
	for i := 0; i+4 <= len(data); i += 4 {
		values = append(values, int32(binary.LittleEndian.Uint32(data[i:])))
		if limit > 0 && len(values) >= limit {
			break
		}
	}
	return values
}

// ParseServerGeneric decodes tag 0 packets by size: a single flag byte, one
// int32, or an int32 preview of longer payloads.
func (p *Parser) ParseServerGeneric(data []byte) (core.ServerPacket, error) {
	r := newPayload(data)
	pkt := core.ServerPacket{Hex: r.hex()}
	switch {
	case len(data) == 1:
		v := int64(data[0])
		pkt.Value = &v
		pkt.Note = "Single Byte Flag"
	case len(data) == 4:
		v := int64(r.i32(0))
		pkt.Value = &v
		pkt.Note = "Int32 Value"
	case len(data) > 4:
		if bytes.Contains(data, serverSignature) {
			pkt.Note = "Server Data (Contains Signature)"
		}
		pkt.IntValues = int32s(data, intPreviewMax)
	}
	return pkt, r.err
}

// ParseServerNote is used by packets that are only labelled.
func (p *Parser) ParseServerNote(note string) func([]byte) (core.ServerPacket, error) {
	return func(data []byte) (core.ServerPacket, error) {
		return core.ServerPacket{Hex: newPayload(data).hex(), Note: note}, nil
	}
}

// ParseServerASCII renders the payload as printable ASCII.
func (p *Parser) ParseServerASCII(data []byte) (core.ServerPacket, error) {
	ascii := make([]byte, len(data))
	for i, c := range data {
		if c < 0x20 || c > 0x7e {
			c = '.'
		}
		ascii[i] = c
	}
	return core.ServerPacket{Hex: newPayload(data).hex(), ASCII: string(ascii)}, nil
}

func (p *Parser) ParseServer108(data []byte) (core.ServerPacket, error) {
	r := newPayload(data)
	pkt := core.ServerPacket{Hex: r.hex()}
	switch {
	case len(data) == 2:
		v := int64(r.u16(0))
		pkt.Value = &v
		pkt.Note = "Short Flag"
	case len(data) > 2:
		pkt.Note = "Server Data"
		if bytes.Contains(data, serverSignature) {
			pkt.Note += " (Contains Signature)"
		}
		pkt.IntValues = int32s(data, 0)
	}
	return pkt, r.err
}

// ParseServerSync decodes the 255-byte sync packet: a 0xffff head, 63 int32
// values and a trailing byte.
func (p *Parser) ParseServerSync(data []byte) (core.ServerPacket, error) {
	r := newPayload(data)
	pkt := core.ServerPacket{Hex: r.hex(), Note: "Server Sync (Non-Standard)"}
	if len(data) == syncPacketSize && r.u16(0) == 0xffff {
		head := -1
		tail := r.u8(syncPacketSize - 1)
		pkt.Note = "Server Sync (Standard)"
		pkt.Head = &head
		pkt.IntValues = int32s(data[2:syncPacketSize-1], 0)
		pkt.Tail = &tail
	}
	return pkt, r.err
}

func (p *Parser) ParseServerData(data []byte) (core.ServerPacket, error) {
	pkt := core.ServerPacket{Hex: newPayload(data).hex(), Note: "Server Data"}
	if bytes.Contains(data, serverSignature) {
		pkt.Note += " (Contains Signature)"
	}
	pkt.IntValues = int32s(data, 0)
	return pkt, nil
}

func (p *Parser) ParseServerHex(data []byte) (core.ServerPacket, error) {
	return core.ServerPacket{Hex: newPayload(data).hex()}, nil
}

// ParseServerSequence reads a decimal sequence id terminated by NUL within
// the first four bytes.
func (p *Parser) ParseServerSequence(data []byte) (core.ServerPacket, error) {
	pkt := core.ServerPacket{Hex: newPayload(data).hex()}
	if idx := bytes.IndexByte(data, 0); idx > 0 && idx < 4 && isDigits(data[:idx]) {
		pkt.Sequence = string(data[:idx])
		pkt.Note = "Sequence ID"
	}
	return pkt, nil
}

func isDigits(b []byte) bool {
	for _, c := range b {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(b) > 0
}
