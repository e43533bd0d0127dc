// Package convert provides functions to convert core replay records to GORM models
package convert

import (
	"encoding/json"

	"github.com/duellog/yrpdecode/internal/model"
	"github.com/duellog/yrpdecode/pkg/core"
	"gorm.io/datatypes"
)

// toJSON marshals v for a JSON column. Nil and empty slices become "[]".
func toJSON[T any](v []T) datatypes.JSON {
	if len(v) == 0 {
		return datatypes.JSON("[]")
	}
	data, _ := json.Marshal(v)
	return datatypes.JSON(data)
}

// CoreToReplay converts the replay header, parameters and stats. Events,
// cards and steps are converted separately once the row has an ID.
func CoreToReplay(r *core.Replay) model.Replay {
	return model.Replay{
		ReplayID:    r.ID,
		Source:      r.Source,
		Kind:        r.Header.Kind,
		Version:     r.Header.Version,
		Flag:        r.Header.Flag,
		Seed:        r.Header.Seed,
		DataSize:    r.Header.DataSize,
		Hash:        r.Header.Hash,
		Props:       r.Header.Props,
		Layout:      r.Header.Layout,
		Extended:    r.Header.Extended,
		PlayerNames: toJSON(r.PlayerNames),
		ScriptName:  r.ScriptName,
		StartLP:     r.Params.StartLP,
		StartHand:   r.Params.StartHand,
		DrawCount:   r.Params.DrawCount,
		DuelFlags:   r.Params.DuelFlags,
		DuelMode:    r.Params.DuelMode,
		Decks:       toJSON(r.Decks),

		EventCount:       r.Stats.Events,
		Decoded:          r.Stats.Decoded,
		Unknown:          r.Stats.Unknown,
		Failed:           r.Stats.Failed,
		InstancesCreated: r.Stats.InstancesCreated,
		ResolveMisses:    r.Stats.ResolveMisses,
		BodySize:         r.Stats.BodySize,
		DecodeMs:         float64(r.Stats.Duration.Microseconds()) / 1000,
	}
}

// CoreToEvent converts an event for the replay row replayID.
func CoreToEvent(replayID uint, ev core.Event) model.Event {
	var details datatypes.JSON
	if ev.Details != nil {
		details, _ = json.Marshal(ev.Details)
	}
	return model.Event{
		ReplayID:      replayID,
		EventIndex:    ev.Index,
		Type:          ev.Type,
		Name:          ev.Name,
		Length:        ev.Length,
		RawPayloadHex: ev.RawPayloadHex,
		Details:       details,
		Error:         ev.Error,
	}
}

func CoreToCardInstance(replayID uint, c core.CardInstance) model.CardInstance {
	return model.CardInstance{
		ReplayID:     replayID,
		InstanceID:   c.InstanceID,
		Code:         c.Code,
		Controller:   c.Location.Controller,
		Location:     c.Location.Location,
		Sequence:     c.Location.Sequence,
		OverlayIndex: c.Location.OverlayIndex,
		Zone:         c.Zone,
	}
}

func CoreToStep(replayID uint, s core.Step) model.Step {
	return model.Step{
		ReplayID:   replayID,
		EventIndex: s.EventIndex,
		Action:     s.Action,
		InstanceID: s.InstanceID,
		Code:       s.Code,
		Player:     s.Player,
		From:       s.From,
		To:         s.To,
		Target:     s.Target,
		CausedBy:   s.CausedBy,
	}
}

// Rows is a replay converted to every table it spans.
type Rows struct {
	Events []model.Event
	Cards  []model.CardInstance
	Steps  []model.Step
}

// CoreToRows converts the per-replay child records for the replay row replayID.
func CoreToRows(replayID uint, r *core.Replay) Rows {
	rows := Rows{
		Events: make([]model.Event, 0, len(r.Events)),
		Cards:  make([]model.CardInstance, 0, len(r.Cards)),
		Steps:  make([]model.Step, 0, len(r.Steps)),
	}
	for _, ev := range r.Events {
		rows.Events = append(rows.Events, CoreToEvent(replayID, ev))
	}
	for _, c := range r.Cards {
		rows.Cards = append(rows.Cards, CoreToCardInstance(replayID, c))
	}
	for _, s := range r.Steps {
		rows.Steps = append(rows.Steps, CoreToStep(replayID, s))
	}
	return rows
}
