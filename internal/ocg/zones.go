package ocg

import "strconv"

// Addressable reports whether cards at loc are identified by sequence.
func Addressable(loc uint8) bool {
	return loc&LocationOnField != 0
}

// IsOverlay reports whether loc carries the overlay bit.
func IsOverlay(loc uint8) bool {
	return loc&LocationOverlay != 0
}

// ZoneName maps a wire location to the board zone used by renderers.
// Overlay materials map to the zone of the monster they sit under.
func ZoneName(loc uint8, seq uint32) string {
	if IsOverlay(loc) {
		base := loc &^ LocationOverlay
		if base&LocationExtra != 0 {
			if name, ok := monsterZone(seq); ok {
				return name
			}
		}
		loc = base
	}

	switch {
	case loc&LocationHand != 0:
		return "zone-hand"
	case loc&LocationDeck != 0:
		return "zone-deck"
	case loc&LocationGrave != 0:
		return "zone-gy"
	case loc&LocationRemoved != 0:
		return "zone-banish"
	case loc&LocationExtra != 0:
		return "zone-extra"
	}

	if loc&LocationMZone != 0 {
		if name, ok := monsterZone(seq); ok {
			return name
		}
	}
	if loc&LocationSZone != 0 {
		if seq < 5 {
			return "zone-s" + strconv.Itoa(int(seq)+1)
		}
		if seq == 5 {
			return "zone-field"
		}
	}
	return "zone-deck"
}

func monsterZone(seq uint32) (string, bool) {
	switch {
	case seq < 5:
		return "zone-m" + strconv.Itoa(int(seq)+1), true
	case seq == 5:
		return "zone-em-left", true
	case seq == 6:
		return "zone-em-right", true
	}
	return "", false
}
