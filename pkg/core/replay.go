// pkg/core/replay.go
package core

import "time"

// Header is the fixed container header of a replay file.
type Header struct {
	ID        uint32   `json:"id"`
	Kind      string   `json:"kind"`
	Version   uint32   `json:"version"`
	Flag      uint32   `json:"flag"`
	FlagNames []string `json:"flagNames"`
	Seed      uint32   `json:"seed"`
	DataSize  uint32   `json:"dataSize"`
	Hash      uint32   `json:"hash"`
	Props     string   `json:"props"`
	Layout    string   `json:"layout"`
	Extended  bool     `json:"extended"`
}

// Params holds the numeric duel parameters stored ahead of the decks.
type Params struct {
	StartLP   uint32 `json:"startLp"`
	StartHand uint32 `json:"startHand"`
	DrawCount uint32 `json:"drawCount"`
	DuelFlags uint64 `json:"duelFlags"`
	DuelMode  string `json:"duelMode"`
}

// Deck is one player's card code list. Only legacy containers carry decks.
type Deck struct {
	Main  []uint32 `json:"main"`
	Extra []uint32 `json:"extra"`
}

// Container is the result of decoding the outer replay file.
type Container struct {
	Header      Header
	Body        []byte
	Residual    []byte
	PlayerNames []string
	ScriptName  string
	Params      Params
	Decks       []Deck
}

// Event is one length-framed message of the event stream. It is created
// once during stream decoding and never mutated afterwards.
type Event struct {
	Index         int    `json:"index"`
	Type          uint8  `json:"type"`
	Name          string `json:"name"`
	Length        uint32 `json:"length"`
	RawPayloadHex string `json:"rawPayloadHex"`
	Details       any    `json:"details,omitempty"`
	Error         string `json:"error,omitempty"`

	Payload []byte `json:"-"`
}

// Response is a single length-prefixed response record of old legacy files.
type Response struct {
	Index  int    `json:"index"`
	Length int    `json:"length"`
	RawHex string `json:"rawHex"`
}

// Stats summarises a decode session.
type Stats struct {
	BodySize         int           `json:"bodySize"`
	Events           int           `json:"events"`
	Decoded          int           `json:"decoded"`
	Unknown          int           `json:"unknown"`
	Failed           int           `json:"failed"`
	InstancesCreated int           `json:"instancesCreated"`
	ResolveMisses    int           `json:"resolveMisses"`
	Duration         time.Duration `json:"duration"`
}

// Replay is the full decoded output of one replay file. It is the surface
// handed to storage backends and external consumers.
type Replay struct {
	ID          string         `json:"id"`
	Source      string         `json:"source"`
	Header      Header         `json:"header"`
	PlayerNames []string       `json:"playerNames"`
	ScriptName  string         `json:"scriptName,omitempty"`
	Params      Params         `json:"params"`
	Decks       []Deck         `json:"decks,omitempty"`
	Events      []Event        `json:"events"`
	Responses   []Response     `json:"responses,omitempty"`
	Cards       []CardInstance `json:"cards,omitempty"`
	Steps       []Step         `json:"steps,omitempty"`
	Stats       Stats          `json:"stats"`
}
