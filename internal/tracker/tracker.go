// Package tracker follows cards through a decoded event stream, giving each
// physical card a stable instance id and annotating plays with steps.
package tracker

import (
	"log/slog"

	"github.com/duellog/yrpdecode/internal/ocg"
	"github.com/duellog/yrpdecode/pkg/core"
)

// lookback bounds the backward search for the move behind a special summon.
const lookback = 10

type ChainState int

const (
	Idle ChainState = iota
	Resolving
)

func (s ChainState) String() string {
	if s == Resolving {
		return "Resolving"
	}
	return "Idle"
}

type chainFrame struct {
	code       uint32
	instanceID string
}

// Stats counts identity work done by a tracker.
type Stats struct {
	InstancesCreated int
	ResolveMisses    int
	Steps            int
}

// Tracker consumes events in wire order. It is owned by one decode session.
type Tracker struct {
	logger *slog.Logger
	zones  *ZoneIndex

	chain []chainFrame
	state ChainState

	steps   []core.Step
	history []core.Event
}

func New(logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Tracker{
		logger:  logger,
		zones:   NewZoneIndex(),
		steps:   make([]core.Step, 0),
		history: make([]core.Event, 0, lookback),
	}
}

// Run applies every event in order.
func (t *Tracker) Run(events []core.Event) {
	for _, ev := range events {
		t.Apply(ev)
	}
}

// Apply updates the board with one event. Events without details, or with
// details of an unexpected shape, are only remembered for lookback.
func (t *Tracker) Apply(ev core.Event) {
	defer t.remember(ev)
	if ev.Details == nil {
		return
	}

	switch d := ev.Details.(type) {
	case core.Draw:
		t.draw(ev, d)
	case core.Move:
		t.move(ev, d)
	case core.Summoning:
		t.summon(ev, d)
	case core.Chaining:
		t.chaining(ev, d)
	case core.Equip:
		t.equip(ev, d)
	case core.ChainLink:
		if ev.Type == ocg.MsgChainSolved && len(t.chain) > 0 {
			t.chain = t.chain[:len(t.chain)-1]
		}
	case core.Empty:
		if ev.Type == ocg.MsgChainEnd {
			t.chain = t.chain[:0]
			t.state = Idle
		}
	}
}

func (t *Tracker) remember(ev core.Event) {
	if len(t.history) == lookback {
		copy(t.history, t.history[1:])
		t.history = t.history[:lookback-1]
	}
	t.history = append(t.history, ev)
}

func (t *Tracker) causedBy() string {
	if len(t.chain) == 0 {
		return ""
	}
	return t.chain[len(t.chain)-1].instanceID
}

func (t *Tracker) addStep(s core.Step) {
	if s.CausedBy == "" {
		s.CausedBy = t.causedBy()
	}
	t.steps = append(t.steps, s)
}

func placeOf(p core.CardPlace) core.Place {
	place := core.Place{
		Controller: p.Controller,
		Location:   p.Location,
		Sequence:   p.Sequence,
	}
	if ocg.IsOverlay(p.Location) {
		place.OverlayIndex = p.Position
	}
	return place
}

func (t *Tracker) draw(ev core.Event, d core.Draw) {
	from := core.Place{Controller: d.Player, Location: ocg.LocationDeck}
	to := core.Place{Controller: d.Player, Location: ocg.LocationHand}
	for _, card := range d.Cards {
		if card.Code == 0 {
			continue
		}
		inst, _ := t.zones.Move(from, to, card.Code)
		t.addStep(core.Step{
			EventIndex: ev.Index,
			Action:     "Draw",
			InstanceID: inst.InstanceID,
			Code:       inst.Code,
			Player:     d.Player,
			From:       ocg.ZoneName(from.Location, 0),
			To:         inst.Zone,
		})
	}
}

func moveAction(m core.Move) string {
	fromOverlay := ocg.IsOverlay(m.From.Location)
	toOverlay := ocg.IsOverlay(m.To.Location)
	switch {
	case fromOverlay && toOverlay:
		return "Transfer Material"
	case fromOverlay:
		return "Detach Material"
	case toOverlay:
		return "Attach Material"
	case m.Reason&ocg.ReasonMaterial != 0:
		return "Send as Material"
	}
	return "Move"
}

func (t *Tracker) move(ev core.Event, m core.Move) {
	if !m.Complete() || m.Code == 0 {
		return
	}
	from, to := placeOf(*m.From), placeOf(*m.To)
	inst, created := t.zones.Move(from, to, m.Code)
	if created {
		t.logger.Debug("card first seen on move",
			"event", ev.Index, "instance", inst.InstanceID, "from", m.From.LocationName)
	}

	// Materials follow a monster that changes zones without their own moves.
	if !ocg.IsOverlay(from.Location) && !ocg.IsOverlay(to.Location) &&
		from.Location&ocg.LocationMZone != 0 && to.Location&ocg.LocationMZone != 0 &&
		from.Controller == to.Controller {
		t.zones.RelocateOverlayHost(from.Controller, from.Sequence, to.Sequence)
	}

	t.addStep(core.Step{
		EventIndex: ev.Index,
		Action:     moveAction(m),
		InstanceID: inst.InstanceID,
		Code:       inst.Code,
		Player:     to.Controller,
		From:       ocg.ZoneName(from.Location, from.Sequence),
		To:         inst.Zone,
	})
}

// summonMove finds the latest complete move of code within the lookback
// window.
func (t *Tracker) summonMove(code uint32) (core.Move, bool) {
	for i := len(t.history) - 1; i >= 0; i-- {
		m, ok := t.history[i].Details.(core.Move)
		if ok && m.Complete() && m.Code == code {
			return m, true
		}
	}
	return core.Move{}, false
}

// SpecialSummonKind names a special summon from the reason and origin of
// the move that put the card on the field.
func SpecialSummonKind(reason uint32, from uint8) string {
	switch {
	case reason&ocg.ReasonLink != 0:
		return "Link Summon"
	case reason&ocg.ReasonXyz != 0:
		return "Xyz Summon"
	case reason&ocg.ReasonSynchro != 0:
		return "Synchro Summon"
	case reason&ocg.ReasonFusion != 0:
		return "Fusion Summon"
	case from&ocg.LocationExtra != 0:
		return "Special Summon (Extra)"
	}
	return "Special Summon"
}

func (t *Tracker) summon(ev core.Event, s core.Summoning) {
	if s.Code == 0 {
		return
	}
	inst, created := t.zones.Sight(placeOf(s.CardPlace), s.Code)
	if created {
		t.logger.Debug("summoned card not on board",
			"event", ev.Index, "instance", inst.InstanceID, "zone", inst.Zone)
	}

	step := core.Step{
		EventIndex: ev.Index,
		InstanceID: inst.InstanceID,
		Code:       inst.Code,
		Player:     s.Controller,
		To:         inst.Zone,
	}
	switch ev.Type {
	case ocg.MsgSummoning:
		step.Action = "Normal Summon"
	case ocg.MsgFlipSummoning:
		step.Action = "Flip Summon"
	default:
		step.Action = "Special Summon"
		if m, ok := t.summonMove(s.Code); ok {
			step.Action = SpecialSummonKind(m.Reason, m.From.Location)
			step.From = ocg.ZoneName(m.From.Location, m.From.Sequence)
		}
	}
	t.addStep(step)
}

func (t *Tracker) chaining(ev core.Event, c core.Chaining) {
	place := core.Place{
		Controller: c.Controller,
		Location:   c.Location,
		Sequence:   uint32(c.Sequence),
	}
	inst, _ := t.zones.Sight(place, c.Code)
	t.addStep(core.Step{
		EventIndex: ev.Index,
		Action:     "Activate Effect",
		InstanceID: inst.InstanceID,
		Code:       inst.Code,
		Player:     c.Controller,
		To:         inst.Zone,
	})
	t.chain = append(t.chain, chainFrame{code: c.Code, instanceID: inst.InstanceID})
	t.state = Resolving
}

// equip annotates only equips whose card is already on the board; the
// message carries no codes.
func (t *Tracker) equip(ev core.Event, e core.Equip) {
	inst := t.zones.Resolve(placeOf(e.CardPlace), 0)
	if inst == nil {
		t.logger.Debug("equip card not on board", "event", ev.Index, "location", e.LocationName)
		return
	}
	step := core.Step{
		EventIndex: ev.Index,
		Action:     "Equip",
		InstanceID: inst.InstanceID,
		Code:       inst.Code,
		Player:     e.Controller,
		To:         inst.Zone,
	}
	if target := t.zones.Resolve(placeOf(e.Target), 0); target != nil {
		step.Target = target.InstanceID
	}
	t.addStep(step)
}

// Steps returns the annotations produced so far.
func (t *Tracker) Steps() []core.Step {
	out := make([]core.Step, len(t.steps))
	copy(out, t.steps)
	return out
}

// Cards returns every instance in creation order.
func (t *Tracker) Cards() []core.CardInstance {
	return t.zones.Instances()
}

func (t *Tracker) State() ChainState { return t.state }

// ChainDepth is the number of links currently on the chain.
func (t *Tracker) ChainDepth() int { return len(t.chain) }

func (t *Tracker) Zones() *ZoneIndex { return t.zones }

func (t *Tracker) Stats() Stats {
	return Stats{
		InstancesCreated: t.zones.Len(),
		ResolveMisses:    t.zones.Misses(),
		Steps:            len(t.steps),
	}
}
