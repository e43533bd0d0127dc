package model

import (
	"time"

	"gorm.io/datatypes"
)

////////////////////////
// DATABASE STRUCTURES //
////////////////////////

// DatabaseModels is a list of all the structs exported here which represent tables in the database schema
var DatabaseModels = []interface{}{
	&Replay{},
	&Event{},
	&CardInstance{},
	&Step{},
}

////////////////////////
// REPLAY MODELS
////////////////////////

// Replay is one decoded replay file. ReplayID is the content-derived id,
// so saving the same file twice hits the unique index.
type Replay struct {
	ID          uint           `json:"id" gorm:"primarykey;autoIncrement;"`
	CreatedAt   time.Time      `json:"createdAt"`
	ReplayID    string         `json:"replayId" gorm:"size:36;uniqueIndex:idx_replay_replay_id"`
	Source      string         `json:"source" gorm:"size:255"`
	Kind        string         `json:"kind" gorm:"size:8"`
	Version     uint32         `json:"version"`
	Flag        uint32         `json:"flag"`
	Seed        uint32         `json:"seed"`
	DataSize    uint32         `json:"dataSize"`
	Hash        uint32         `json:"hash"`
	Props       string         `json:"props" gorm:"size:16"`
	Layout      string         `json:"layout" gorm:"size:16"`
	Extended    bool           `json:"extended"`
	PlayerNames datatypes.JSON `json:"playerNames"`
	ScriptName  string         `json:"scriptName" gorm:"size:255"`
	StartLP     uint32         `json:"startLp"`
	StartHand   uint32         `json:"startHand"`
	DrawCount   uint32         `json:"drawCount"`
	DuelFlags   uint64         `json:"duelFlags"`
	DuelMode    string         `json:"duelMode" gorm:"size:16;index:idx_replay_duel_mode"`
	Decks       datatypes.JSON `json:"decks"`

	EventCount       int     `json:"eventCount"`
	Decoded          int     `json:"decoded"`
	Unknown          int     `json:"unknown"`
	Failed           int     `json:"failed"`
	InstancesCreated int     `json:"instancesCreated"`
	ResolveMisses    int     `json:"resolveMisses"`
	BodySize         int     `json:"bodySize"`
	DecodeMs         float64 `json:"decodeMs"`
}

func (*Replay) TableName() string {
	return "replays"
}

// Event is one framed message. Details holds the decoded record as JSON and
// is NULL for unknown messages.
type Event struct {
	ID            uint           `json:"id" gorm:"primarykey;autoIncrement;"`
	ReplayID      uint           `json:"replayId" gorm:"index:idx_event_replay_id"`
	Replay        Replay         `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:ReplayID;"`
	EventIndex    int            `json:"eventIndex" gorm:"index:idx_event_index"`
	Type          uint8          `json:"type" gorm:"index:idx_event_type"`
	Name          string         `json:"name" gorm:"size:64"`
	Length        uint32         `json:"length"`
	RawPayloadHex string         `json:"rawPayloadHex"`
	Details       datatypes.JSON `json:"details"`
	Error         string         `json:"error" gorm:"size:255"`
}

func (*Event) TableName() string {
	return "events"
}

// CardInstance is a tracked card in its final location.
type CardInstance struct {
	ID           uint   `json:"id" gorm:"primarykey;autoIncrement;"`
	ReplayID     uint   `json:"replayId" gorm:"index:idx_card_instance_replay_id"`
	Replay       Replay `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:ReplayID;"`
	InstanceID   string `json:"instanceId" gorm:"size:64"`
	Code         uint32 `json:"code" gorm:"index:idx_card_instance_code"`
	Controller   uint8  `json:"controller"`
	Location     uint8  `json:"location"`
	Sequence     uint32 `json:"sequence"`
	OverlayIndex uint32 `json:"overlayIndex"`
	Zone         string `json:"zone" gorm:"size:32"`
}

func (*CardInstance) TableName() string {
	return "card_instances"
}

type Step struct {
	ID         uint   `json:"id" gorm:"primarykey;autoIncrement;"`
	ReplayID   uint   `json:"replayId" gorm:"index:idx_step_replay_id"`
	Replay     Replay `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:ReplayID;"`
	EventIndex int    `json:"eventIndex"`
	Action     string `json:"action" gorm:"size:64"`
	InstanceID string `json:"instanceId" gorm:"size:64"`
	Code       uint32 `json:"code"`
	Player     uint8  `json:"player"`
	From       string `json:"from" gorm:"size:32"`
	To         string `json:"to" gorm:"size:32"`
	Target     string `json:"target" gorm:"size:64"`
	CausedBy   string `json:"causedBy" gorm:"size:64"`
}

func (*Step) TableName() string {
	return "steps"
}
