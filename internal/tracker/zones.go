package tracker

import (
	"fmt"
	"slices"

	"github.com/duellog/yrpdecode/internal/ocg"
	"github.com/duellog/yrpdecode/internal/queue"
	"github.com/duellog/yrpdecode/pkg/core"
)

// poolLocations are the zones whose internal order is not observable. Cards
// there are kept in per-code FIFOs.
var poolLocations = []uint8{
	ocg.LocationDeck,
	ocg.LocationHand,
	ocg.LocationGrave,
	ocg.LocationRemoved,
	ocg.LocationExtra,
}

type slotKey struct {
	controller uint8
	location   uint8
	seq        uint32
}

type poolKey struct {
	controller uint8
	location   uint8
	code       uint32
}

type overlayKey struct {
	controller uint8
	hostSeq    uint32
	index      uint32
}

func (k overlayKey) less(o overlayKey) int {
	switch {
	case k.controller != o.controller:
		return int(k.controller) - int(o.controller)
	case k.hostSeq != o.hostSeq:
		if k.hostSeq < o.hostSeq {
			return -1
		}
		return 1
	case k.index < o.index:
		return -1
	case k.index > o.index:
		return 1
	}
	return 0
}

// ZoneIndex maps board locations to card instances for one decode session.
// It is not safe for concurrent use.
type ZoneIndex struct {
	slots    map[slotKey]*core.CardInstance
	pools    map[poolKey]*queue.Queue[*core.CardInstance]
	overlays map[overlayKey]*core.CardInstance

	instances []*core.CardInstance
	counters  map[uint32]int
	misses    int
}

func NewZoneIndex() *ZoneIndex {
	return &ZoneIndex{
		slots:    make(map[slotKey]*core.CardInstance),
		pools:    make(map[poolKey]*queue.Queue[*core.CardInstance]),
		overlays: make(map[overlayKey]*core.CardInstance),
		counters: make(map[uint32]int),
	}
}

// slotLocation returns the addressable base zone of loc, or 0.
func slotLocation(loc uint8) uint8 {
	switch {
	case loc&ocg.LocationMZone != 0:
		return ocg.LocationMZone
	case loc&ocg.LocationSZone != 0:
		return ocg.LocationSZone
	}
	return 0
}

// poolLocation returns the pooled zone of loc, or 0.
func poolLocation(loc uint8) uint8 {
	for _, l := range poolLocations {
		if loc&l != 0 {
			return l
		}
	}
	return 0
}

func (z *ZoneIndex) pool(key poolKey, create bool) *queue.Queue[*core.CardInstance] {
	q, ok := z.pools[key]
	if !ok && create {
		q = queue.New[*core.CardInstance]()
		z.pools[key] = q
	}
	return q
}

func sameCard(inst *core.CardInstance, code uint32) bool {
	return code == 0 || inst.Code == 0 || inst.Code == code
}

// sortedOverlayKeys keeps fallback scans deterministic.
func (z *ZoneIndex) sortedOverlayKeys() []overlayKey {
	keys := make([]overlayKey, 0, len(z.overlays))
	for k := range z.overlays {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, overlayKey.less)
	return keys
}

// findOverlay resolves a material: exact key first, then any material with
// the same code under the same host, then any material with that code.
func (z *ZoneIndex) findOverlay(p core.Place, code uint32) (overlayKey, bool) {
	exact := overlayKey{p.Controller, p.Sequence, p.OverlayIndex}
	if inst, ok := z.overlays[exact]; ok && sameCard(inst, code) {
		return exact, true
	}
	if code == 0 {
		return overlayKey{}, false
	}
	keys := z.sortedOverlayKeys()
	for _, k := range keys {
		if k.controller == p.Controller && k.hostSeq == p.Sequence && z.overlays[k].Code == code {
			return k, true
		}
	}
	for _, k := range keys {
		if z.overlays[k].Code == code {
			return k, true
		}
	}
	return overlayKey{}, false
}

// Resolve returns the instance at p matching code without removing it. A
// zero code matches any occupant of an addressable slot or overlay.
func (z *ZoneIndex) Resolve(p core.Place, code uint32) *core.CardInstance {
	if ocg.IsOverlay(p.Location) {
		if k, ok := z.findOverlay(p, code); ok {
			return z.overlays[k]
		}
		return nil
	}
	if loc := slotLocation(p.Location); loc != 0 {
		if inst, ok := z.slots[slotKey{p.Controller, loc, p.Sequence}]; ok && sameCard(inst, code) {
			return inst
		}
		return nil
	}
	if loc := poolLocation(p.Location); loc != 0 {
		if q := z.pool(poolKey{p.Controller, loc, code}, false); q != nil {
			if inst, ok := q.Peek(); ok {
				return inst
			}
		}
	}
	return nil
}

// take resolves and removes the instance at p.
func (z *ZoneIndex) take(p core.Place, code uint32) *core.CardInstance {
	if ocg.IsOverlay(p.Location) {
		k, ok := z.findOverlay(p, code)
		if !ok {
			return nil
		}
		inst := z.overlays[k]
		delete(z.overlays, k)
		return inst
	}
	if loc := slotLocation(p.Location); loc != 0 {
		key := slotKey{p.Controller, loc, p.Sequence}
		inst, ok := z.slots[key]
		if !ok || !sameCard(inst, code) {
			return nil
		}
		delete(z.slots, key)
		return inst
	}
	if loc := poolLocation(p.Location); loc != 0 {
		key := poolKey{p.Controller, loc, code}
		q := z.pool(key, false)
		if q == nil || q.Empty() {
			return nil
		}
		inst := q.Pop()
		if q.Empty() {
			delete(z.pools, key)
		}
		return inst
	}
	return nil
}

// put records inst at p. Location 0 is not indexed.
func (z *ZoneIndex) put(inst *core.CardInstance, p core.Place) {
	if !ocg.IsOverlay(p.Location) {
		p.OverlayIndex = 0
	}
	inst.Location = p
	inst.Zone = ocg.ZoneName(p.Location, p.Sequence)

	switch {
	case ocg.IsOverlay(p.Location):
		z.overlays[overlayKey{p.Controller, p.Sequence, p.OverlayIndex}] = inst
	case slotLocation(p.Location) != 0:
		z.slots[slotKey{p.Controller, slotLocation(p.Location), p.Sequence}] = inst
	case poolLocation(p.Location) != 0:
		z.pool(poolKey{p.Controller, poolLocation(p.Location), inst.Code}, true).Push(inst)
	}
}

// create registers a new instance. IDs are stable per code in creation order.
func (z *ZoneIndex) create(code uint32) *core.CardInstance {
	z.counters[code]++
	inst := &core.CardInstance{
		InstanceID: fmt.Sprintf("card_%d_%d", code, z.counters[code]),
		Code:       code,
	}
	z.instances = append(z.instances, inst)
	return inst
}

// Move relocates the card with code from one place to another and returns
// its instance. A card not found at from is created; created reports that.
func (z *ZoneIndex) Move(from, to core.Place, code uint32) (*core.CardInstance, bool) {
	inst := z.take(from, code)
	created := inst == nil
	if created {
		inst = z.create(code)
		if from.Location&(ocg.LocationDeck|ocg.LocationExtra) == 0 {
			z.misses++
		}
	} else if inst.Code == 0 && code != 0 {
		inst.Code = code
	}
	z.put(inst, to)
	return inst, created
}

// Sight returns the instance at p, creating and placing one when the card
// has not been observed there.
func (z *ZoneIndex) Sight(p core.Place, code uint32) (*core.CardInstance, bool) {
	if inst := z.Resolve(p, code); inst != nil {
		if inst.Code == 0 && code != 0 {
			inst.Code = code
		}
		return inst, false
	}
	inst := z.create(code)
	z.misses++
	z.put(inst, p)
	return inst, true
}

// RelocateOverlayHost re-keys every material of controller attached under
// oldSeq to newSeq. A material whose index is taken at the new host moves to
// the next free index. Calling it again with the same arguments is a no-op.
func (z *ZoneIndex) RelocateOverlayHost(controller uint8, oldSeq, newSeq uint32) int {
	if oldSeq == newSeq {
		return 0
	}
	moved := make([]overlayKey, 0)
	for _, k := range z.sortedOverlayKeys() {
		if k.controller == controller && k.hostSeq == oldSeq {
			moved = append(moved, k)
		}
	}
	for _, k := range moved {
		inst := z.overlays[k]
		delete(z.overlays, k)
		nk := overlayKey{controller, newSeq, k.index}
		for {
			if _, taken := z.overlays[nk]; !taken {
				break
			}
			nk.index++
		}
		z.overlays[nk] = inst
		inst.Location.Sequence = newSeq
		inst.Location.OverlayIndex = nk.index
		inst.Zone = ocg.ZoneName(inst.Location.Location, newSeq)
	}
	return len(moved)
}

// Occupant returns the instance in an addressable slot.
func (z *ZoneIndex) Occupant(controller, loc uint8, seq uint32) *core.CardInstance {
	return z.slots[slotKey{controller, slotLocation(loc), seq}]
}

// Pool returns the queued instances of code in a pooled zone, oldest first.
func (z *ZoneIndex) Pool(controller, loc uint8, code uint32) []*core.CardInstance {
	q := z.pool(poolKey{controller, poolLocation(loc), code}, false)
	if q == nil {
		return nil
	}
	return q.Items()
}

// Overlays returns the materials under a host in index order.
func (z *ZoneIndex) Overlays(controller uint8, hostSeq uint32) []*core.CardInstance {
	out := make([]*core.CardInstance, 0)
	for _, k := range z.sortedOverlayKeys() {
		if k.controller == controller && k.hostSeq == hostSeq {
			out = append(out, z.overlays[k])
		}
	}
	return out
}

// Instances returns copies of every instance in creation order.
func (z *ZoneIndex) Instances() []core.CardInstance {
	out := make([]core.CardInstance, len(z.instances))
	for i, inst := range z.instances {
		out[i] = *inst
	}
	return out
}

func (z *ZoneIndex) Len() int    { return len(z.instances) }
func (z *ZoneIndex) Misses() int { return z.misses }
