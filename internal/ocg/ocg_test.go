package ocg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMsgName(t *testing.T) {
	tests := []struct {
		tag      uint8
		expected string
	}{
		{MsgDraw, "MSG_DRAW"},
		{MsgMove, "MSG_MOVE"},
		{MsgServerGeneric, "MSG_SERVER_GENERIC"},
		{MsgServerPacket159, "MSG_SERVER_PACKET_159"},
		{17, "UNKNOWN_MSG_17"},
		{200, "UNKNOWN_MSG_200"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, MsgName(tt.tag))
		})
	}
}

func TestLocationName(t *testing.T) {
	tests := []struct {
		name     string
		loc      uint8
		expected string
	}{
		{"none", 0, "NONE"},
		{"hand", LocationHand, "HAND"},
		{"mzone", LocationMZone, "MZONE"},
		{"bare overlay", LocationOverlay, "OVERLAY"},
		{"overlay on mzone", LocationOverlay | LocationMZone, "OVERLAY|MZONE"},
		{"combined bits", LocationHand | LocationDeck, "UNKNOWN_LOCATION_3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LocationName(tt.loc))
		})
	}
}

func TestFlagRendering(t *testing.T) {
	assert.Equal(t, "NO_POS", PositionName(0))
	assert.Equal(t, "FACEUP_ATTACK|FACEDOWN_DEFENSE", PositionName(PosFaceUpAttack|PosFaceDownDefense))
	assert.Equal(t, "UNKNOWN_POS_16", PositionName(0x10))
	assert.Equal(t, "MONSTER|EFFECT|XYZ", TypeName(TypeMonster|TypeEffect|TypeXyz))
	assert.Equal(t, "UNKNOWN_TYPE_0", TypeName(0))
	assert.Equal(t, "LIGHT|DARK", AttributeName(AttributeLight|AttributeDark))
	assert.Equal(t, "MATERIAL|XYZ", ReasonName(ReasonMaterial|ReasonXyz))
	assert.Equal(t, "UNKNOWN_REASON_8388608", ReasonName(0x800000))
	assert.Equal(t, "DISABLED|CHAINING", StatusName(StatusDisabled|StatusChaining))
}

func TestRaceName(t *testing.T) {
	assert.Equal(t, "DRAGON", RaceName(RaceDragon))
	assert.Equal(t, "WARRIOR|GALAXY|YOKAI", RaceName(RaceWarrior|RaceGalaxy|RaceYokai))
	assert.Equal(t, "UNKNOWN_RACE_4294967296", RaceName(Race(1)<<32))

	assert.True(t, (RaceYokai | RaceFish).Has(RaceYokai))
	assert.False(t, RaceFish.Has(RaceYokai))
	assert.True(t, RaceYokai.Known())
	assert.False(t, (Race(1) << 40).Known())
}

func TestDuelModeName(t *testing.T) {
	tests := []struct {
		name     string
		flags    uint64
		expected string
	}{
		{"rush wins over speed", DuelModeRush, "RUSH"},
		{"speed", DuelModeSpeed, "SPEED"},
		{"goat wins over mr1", DuelModeGoat, "GOAT"},
		{"mr5", DuelModeMR5, "MR5"},
		{"mr5 with extras", DuelModeMR5 | DuelTestMode, "MR5"},
		{"mr2", DuelModeMR2, "MR2"},
		{"mr1 flags are a superset of mr2", DuelModeMR1, "MR2"},
		{"nothing", 0, "UNKNOWN_MODE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DuelModeName(tt.flags))
		})
	}
}

func TestZoneName(t *testing.T) {
	tests := []struct {
		loc      uint8
		seq      uint32
		expected string
	}{
		{LocationMZone, 0, "zone-m1"},
		{LocationMZone, 4, "zone-m5"},
		{LocationMZone, 5, "zone-em-left"},
		{LocationMZone, 6, "zone-em-right"},
		{LocationSZone, 2, "zone-s3"},
		{LocationSZone, 5, "zone-field"},
		{LocationHand, 3, "zone-hand"},
		{LocationGrave, 0, "zone-gy"},
		{LocationRemoved, 0, "zone-banish"},
		{LocationExtra, 0, "zone-extra"},
		{LocationOverlay | LocationMZone, 2, "zone-m3"},
		{LocationOverlay | LocationExtra, 6, "zone-em-right"},
		{0, 0, "zone-deck"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, ZoneName(tt.loc, tt.seq))
		})
	}
}

func TestOpcodeName(t *testing.T) {
	assert.Equal(t, "OPCODE_ISCODE", OpcodeName(OpcodeIsCode))
	assert.Equal(t, "12345", OpcodeName(12345))
}
