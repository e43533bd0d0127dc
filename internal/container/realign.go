package container

import (
	"encoding/binary"

	"github.com/duellog/yrpdecode/internal/ocg"
)

const (
	realignWindow    = 200
	packetHeaderSize = 5
	maxStartLength   = 64
)

// findStart returns the offset of the first duel start packet within the
// scan window: tag MSG_START followed by a length in 1..maxStartLength.
func findStart(data []byte) (int, bool) {
	limit := min(realignWindow, len(data)-packetHeaderSize+1)
	for i := 0; i < limit; i++ {
		if data[i] != ocg.MsgStart {
			continue
		}
		n := binary.LittleEndian.Uint32(data[i+1:])
		if n >= 1 && n <= maxStartLength {
			return i, true
		}
	}
	return 0, false
}

// framesCleanly reports whether data splits exactly into whole packets.
func framesCleanly(data []byte) bool {
	off := 0
	for off < len(data) {
		if off+packetHeaderSize > len(data) {
			return false
		}
		next := uint64(off) + packetHeaderSize + uint64(binary.LittleEndian.Uint32(data[off+1:]))
		if next > uint64(len(data)) {
			return false
		}
		off = int(next)
	}
	return true
}

// realign drops leader bytes some producers write ahead of the event
// stream. Bytes before the start packet are kept when they are themselves
// whole packets. It returns the number of bytes dropped.
func realign(residual []byte) int {
	at, ok := findStart(residual)
	if !ok || at == 0 || framesCleanly(residual[:at]) {
		return 0
	}
	return at
}
