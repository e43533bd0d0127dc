package container

import (
	"encoding/binary"
	"log/slog"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/duellog/yrpdecode/internal/ocg"
	"github.com/duellog/yrpdecode/pkg/core"
)

const (
	nameSlotSize  = 40
	maxSideNames  = 20
	maxDeckOwners = 40
	maxDeckCount  = 1000
)

// cursor reads the body sequentially. A read past the end returns zero and
// marks the cursor short; the body layout is best effort from there on.
type cursor struct {
	b     []byte
	off   int
	short bool
}

func (c *cursor) take(n int) []byte {
	if c.off+n > len(c.b) {
		c.short = true
		c.off = len(c.b)
		return nil
	}
	v := c.b[c.off : c.off+n]
	c.off += n
	return v
}

func (c *cursor) u16() uint16 {
	if v := c.take(2); v != nil {
		return binary.LittleEndian.Uint16(v)
	}
	return 0
}

func (c *cursor) u32() uint32 {
	if v := c.take(4); v != nil {
		return binary.LittleEndian.Uint32(v)
	}
	return 0
}

func (c *cursor) u64() uint64 {
	if v := c.take(8); v != nil {
		return binary.LittleEndian.Uint64(v)
	}
	return 0
}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// name decodes one fixed UTF-16LE slot, cut at the first NUL.
func (c *cursor) name() string {
	slot := c.take(nameSlotSize)
	if slot == nil {
		return ""
	}
	decoded, err := utf16le.NewDecoder().Bytes(slot)
	if err != nil {
		return ""
	}
	s := string(decoded)
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return s
}

// body is the metadata parsed from the head of the decompressed body.
type body struct {
	names      []string
	scriptName string
	params     core.Params
	decks      []core.Deck
	consumed   int
}

func parseBody(b []byte, h core.Header, logger *slog.Logger) body {
	c := &cursor{b: b}
	var out body

	if h.Flag&FlagSingleMode != 0 {
		out.names = append(out.names, c.name(), c.name())
	} else {
		for side := 0; side < 2; side++ {
			count := uint32(1)
			switch {
			case h.Flag&FlagNewReplay != 0:
				count = c.u32()
			case h.Flag&FlagTag != 0:
				count = 2
			}
			if count > maxSideNames {
				logger.Warn("player count capped", "side", side, "count", count, "cap", maxSideNames)
				count = maxSideNames
			}
			for i := uint32(0); i < count; i++ {
				out.names = append(out.names, c.name())
			}
		}
	}

	out.params.StartLP = c.u32()
	out.params.StartHand = c.u32()
	out.params.DrawCount = c.u32()
	if h.Flag&Flag64BitDuelFlag != 0 {
		out.params.DuelFlags = c.u64()
	} else {
		out.params.DuelFlags = uint64(c.u32())
	}
	out.params.DuelMode = ocg.DuelModeName(out.params.DuelFlags)

	if h.ID == MagicYRP1 {
		if h.Flag&FlagSingleMode != 0 {
			n := c.u16()
			out.scriptName = string(c.take(int(n)))
		}
		out.decks = parseDecks(c, len(out.names), logger)
		if h.Flag&FlagNewReplay != 0 && h.Flag&FlagHandTest == 0 {
			rules := c.u32()
			c.take(int(rules) * 4)
		}
	}

	if c.short {
		logger.Warn("replay body truncated", "size", len(b))
	}
	out.consumed = c.off
	return out
}

func parseDecks(c *cursor, owners int, logger *slog.Logger) []core.Deck {
	decks := make([]core.Deck, 0)
	if owners > maxDeckOwners {
		logger.Warn("too many deck owners, skipping decks", "owners", owners, "cap", maxDeckOwners)
		return decks
	}
	for i := 0; i < owners && !c.short; i++ {
		decks = append(decks, core.Deck{
			Main:  readCodes(c, i, "main", logger),
			Extra: readCodes(c, i, "extra", logger),
		})
	}
	return decks
}

func readCodes(c *cursor, owner int, part string, logger *slog.Logger) []uint32 {
	count := c.u32()
	if count > maxDeckCount {
		logger.Warn("deck count capped", "owner", owner, "part", part, "count", count, "cap", maxDeckCount)
		count = maxDeckCount
	}
	codes := make([]uint32, 0, count)
	for i := uint32(0); i < count && !c.short; i++ {
		code := c.u32()
		if c.short {
			break
		}
		codes = append(codes, code)
	}
	return codes
}
