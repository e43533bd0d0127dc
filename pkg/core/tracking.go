// pkg/core/tracking.go
package core

// Place is a board position as stated on the wire.
// OverlayIndex is only meaningful when Location carries the overlay bit.
type Place struct {
	Controller   uint8  `json:"controller"`
	Location     uint8  `json:"location"`
	Sequence     uint32 `json:"sequence"`
	OverlayIndex uint32 `json:"overlayIndex,omitempty"`
}

// CardInstance is a synthetic identity for one physical card, created the
// first time the card is observed.
type CardInstance struct {
	InstanceID string `json:"instanceId"`
	Code       uint32 `json:"code"`
	Location   Place  `json:"currentLocation"`
	Zone       string `json:"zone"`
}

// Step is a narrative annotation produced by the tracker for one event.
type Step struct {
	EventIndex int    `json:"eventIndex"`
	Action     string `json:"action"`
	InstanceID string `json:"instanceId"`
	Code       uint32 `json:"code"`
	Player     uint8  `json:"player"`
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
	Target     string `json:"target,omitempty"`
	CausedBy   string `json:"causedBy,omitempty"`
}
