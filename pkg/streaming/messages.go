// Package streaming defines the JSON messages the websocket backend sends to
// a replay viewer. One replay is a replay_header, its event, card and step
// messages, then end_replay. Header and end are acknowledged by the server.
package streaming

import (
	"encoding/json"

	"github.com/duellog/yrpdecode/pkg/core"
)

// Message type constants matching the streaming protocol.
const (
	TypeReplayHeader = "replay_header"
	TypeEvent        = "event"
	TypeCard         = "card"
	TypeStep         = "step"
	TypeEndReplay    = "end_replay"
)

// Envelope wraps all messages sent over the WebSocket.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// AckMessage is the server's acknowledgement response.
type AckMessage struct {
	Type string `json:"type"` // always "ack"
	For  string `json:"for"`  // the message type being acknowledged
}

// ReplayHeaderPayload opens a replay.
type ReplayHeaderPayload struct {
	ReplayID    string      `json:"replayId"`
	Source      string      `json:"source"`
	Header      core.Header `json:"header"`
	PlayerNames []string    `json:"playerNames"`
	ScriptName  string      `json:"scriptName,omitempty"`
	Params      core.Params `json:"params"`
	Decks       []core.Deck `json:"decks,omitempty"`
}

type EventPayload struct {
	ReplayID string     `json:"replayId"`
	Event    core.Event `json:"event"`
}

type CardPayload struct {
	ReplayID string            `json:"replayId"`
	Card     core.CardInstance `json:"card"`
}

type StepPayload struct {
	ReplayID string    `json:"replayId"`
	Step     core.Step `json:"step"`
}

// EndReplayPayload closes a replay with its decode stats.
type EndReplayPayload struct {
	ReplayID string     `json:"replayId"`
	Stats    core.Stats `json:"stats"`
}
