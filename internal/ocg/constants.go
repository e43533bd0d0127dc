package ocg

// Locations.
const (
	LocationDeck    uint8 = 0x01
	LocationHand    uint8 = 0x02
	LocationMZone   uint8 = 0x04
	LocationSZone   uint8 = 0x08
	LocationGrave   uint8 = 0x10
	LocationRemoved uint8 = 0x20
	LocationExtra   uint8 = 0x40
	LocationOverlay uint8 = 0x80
	LocationOnField       = LocationMZone | LocationSZone
)

// Positions.
const (
	PosFaceUpAttack    uint32 = 0x1
	PosFaceDownAttack  uint32 = 0x2
	PosFaceUpDefense   uint32 = 0x4
	PosFaceDownDefense uint32 = 0x8
)

// Card types.
const (
	TypeMonster     uint32 = 0x1
	TypeSpell       uint32 = 0x2
	TypeTrap        uint32 = 0x4
	TypeNormal      uint32 = 0x10
	TypeEffect      uint32 = 0x20
	TypeFusion      uint32 = 0x40
	TypeRitual      uint32 = 0x80
	TypeTrapMonster uint32 = 0x100
	TypeSpirit      uint32 = 0x200
	TypeUnion       uint32 = 0x400
	TypeGemini      uint32 = 0x800
	TypeTuner       uint32 = 0x1000
	TypeSynchro     uint32 = 0x2000
	TypeToken       uint32 = 0x4000
	TypeMaximum     uint32 = 0x8000
	TypeQuickPlay   uint32 = 0x10000
	TypeContinuous  uint32 = 0x20000
	TypeEquip       uint32 = 0x40000
	TypeField       uint32 = 0x80000
	TypeCounter     uint32 = 0x100000
	TypeFlip        uint32 = 0x200000
	TypeToon        uint32 = 0x400000
	TypeXyz         uint32 = 0x800000
	TypePendulum    uint32 = 0x1000000
	TypeSpSummon    uint32 = 0x2000000
	TypeLink        uint32 = 0x4000000
)

// Attributes.
const (
	AttributeEarth  uint32 = 0x01
	AttributeWater  uint32 = 0x02
	AttributeFire   uint32 = 0x04
	AttributeWind   uint32 = 0x08
	AttributeLight  uint32 = 0x10
	AttributeDark   uint32 = 0x20
	AttributeDivine uint32 = 0x40
)

// Race is a 64-bit mask; Yokai lives in the high word.
type Race uint64

const (
	RaceWarrior          Race = 0x1
	RaceSpellcaster      Race = 0x2
	RaceFairy            Race = 0x4
	RaceFiend            Race = 0x8
	RaceZombie           Race = 0x10
	RaceMachine          Race = 0x20
	RaceAqua             Race = 0x40
	RacePyro             Race = 0x80
	RaceRock             Race = 0x100
	RaceWingedBeast      Race = 0x200
	RacePlant            Race = 0x400
	RaceInsect           Race = 0x800
	RaceThunder          Race = 0x1000
	RaceDragon           Race = 0x2000
	RaceBeast            Race = 0x4000
	RaceBeastWarrior     Race = 0x8000
	RaceDinosaur         Race = 0x10000
	RaceFish             Race = 0x20000
	RaceSeaSerpent       Race = 0x40000
	RaceReptile          Race = 0x80000
	RacePsychic          Race = 0x100000
	RaceDivine           Race = 0x200000
	RaceCreatorGod       Race = 0x400000
	RaceWyrm             Race = 0x800000
	RaceCyberse          Race = 0x1000000
	RaceIllusion         Race = 0x2000000
	RaceCyborg           Race = 0x4000000
	RaceMagicalKnight    Race = 0x8000000
	RaceHighDragon       Race = 0x10000000
	RaceOmegaPsychic     Race = 0x20000000
	RaceCelestialWarrior Race = 0x40000000
	RaceGalaxy           Race = 0x80000000
	RaceYokai            Race = 0x4000000000000000

	RaceAll = (RaceGalaxy<<1 - 1) | RaceYokai
)

// Has reports whether every bit of other is set in r.
func (r Race) Has(other Race) bool {
	return r&other == other
}

// Known reports whether r only carries defined race bits.
func (r Race) Known() bool {
	return r&^RaceAll == 0
}

// Reasons.
const (
	ReasonDestroy    uint32 = 0x1
	ReasonRelease    uint32 = 0x2
	ReasonTemporary  uint32 = 0x4
	ReasonMaterial   uint32 = 0x8
	ReasonSummon     uint32 = 0x10
	ReasonBattle     uint32 = 0x20
	ReasonEffect     uint32 = 0x40
	ReasonCost       uint32 = 0x80
	ReasonAdjust     uint32 = 0x100
	ReasonLostTarget uint32 = 0x200
	ReasonRule       uint32 = 0x400
	ReasonSpSummon   uint32 = 0x800
	ReasonDisSummon  uint32 = 0x1000
	ReasonFlip       uint32 = 0x2000
	ReasonDiscard    uint32 = 0x4000
	ReasonRDamage    uint32 = 0x8000
	ReasonRRecover   uint32 = 0x10000
	ReasonReturn     uint32 = 0x20000
	ReasonFusion     uint32 = 0x40000
	ReasonSynchro    uint32 = 0x80000
	ReasonRitual     uint32 = 0x100000
	ReasonXyz        uint32 = 0x200000
	ReasonReplace    uint32 = 0x1000000
	ReasonDraw       uint32 = 0x2000000
	ReasonRedirect   uint32 = 0x4000000
	ReasonLink       uint32 = 0x10000000
)

// Status bits.
const (
	StatusDisabled         uint32 = 0x1
	StatusToEnable         uint32 = 0x2
	StatusToDisable        uint32 = 0x4
	StatusProcComplete     uint32 = 0x8
	StatusSetTurn          uint32 = 0x10
	StatusNoLevel          uint32 = 0x20
	StatusBattleResult     uint32 = 0x40
	StatusSpSummonStep     uint32 = 0x80
	StatusFormChanged      uint32 = 0x100
	StatusSummoning        uint32 = 0x200
	StatusEffectEnabled    uint32 = 0x400
	StatusSummonTurn       uint32 = 0x800
	StatusDestroyConfirmed uint32 = 0x1000
	StatusLeaveConfirmed   uint32 = 0x2000
	StatusBattleDestroyed  uint32 = 0x4000
	StatusCopyingEffect    uint32 = 0x8000
	StatusChaining         uint32 = 0x10000
	StatusSummonDisabled   uint32 = 0x20000
	StatusActivateDisabled uint32 = 0x40000
	StatusEffectReplaced   uint32 = 0x80000
	StatusFutureFusion     uint32 = 0x100000
	StatusAttackCanceled   uint32 = 0x200000
	StatusInitializing     uint32 = 0x400000
	StatusJustPos          uint32 = 0x1000000
	StatusContinuousPos    uint32 = 0x2000000
	StatusForbidden        uint32 = 0x4000000
	StatusActFromHand      uint32 = 0x8000000
	StatusOppoBattle       uint32 = 0x10000000
	StatusFlipSummonTurn   uint32 = 0x20000000
	StatusSpSummonTurn     uint32 = 0x40000000
)

// Query attribute tags used by the bulk state TLV stream.
const (
	QueryCode        uint32 = 0x1
	QueryPosition    uint32 = 0x2
	QueryAlias       uint32 = 0x4
	QueryType        uint32 = 0x8
	QueryLevel       uint32 = 0x10
	QueryRank        uint32 = 0x20
	QueryAttribute   uint32 = 0x40
	QueryRace        uint32 = 0x80
	QueryAttack      uint32 = 0x100
	QueryDefense     uint32 = 0x200
	QueryBaseAttack  uint32 = 0x400
	QueryBaseDefense uint32 = 0x800
	QueryReason      uint32 = 0x1000
	QueryReasonCard  uint32 = 0x2000
	QueryEquipCard   uint32 = 0x4000
	QueryTargetCard  uint32 = 0x8000
	QueryOverlayCard uint32 = 0x10000
	QueryCounters    uint32 = 0x20000
	QueryOwner       uint32 = 0x40000
	QueryStatus      uint32 = 0x80000
	QueryIsPublic    uint32 = 0x100000
	QueryLScale      uint32 = 0x200000
	QueryRScale      uint32 = 0x400000
	QueryLink        uint32 = 0x800000
	QueryIsHidden    uint32 = 0x1000000
	QueryCover       uint32 = 0x2000000
	QueryEnd         uint32 = 0x80000000
)

// Phases.
const (
	PhaseDraw        uint16 = 0x01
	PhaseStandby     uint16 = 0x02
	PhaseMain1       uint16 = 0x04
	PhaseBattleStart uint16 = 0x08
	PhaseBattleStep  uint16 = 0x10
	PhaseDamage      uint16 = 0x20
	PhaseDamageCal   uint16 = 0x40
	PhaseBattle      uint16 = 0x80
	PhaseMain2       uint16 = 0x100
	PhaseEnd         uint16 = 0x200
)

// Hint kinds.
const (
	HintEvent      uint8 = 1
	HintMessage    uint8 = 2
	HintSelectMsg  uint8 = 3
	HintOpSelected uint8 = 4
	HintEffect     uint8 = 5
	HintRace       uint8 = 6
	HintAttrib     uint8 = 7
	HintCode       uint8 = 8
	HintNumber     uint8 = 9
	HintCard       uint8 = 10
	HintZone       uint8 = 11
)

// Card hint kinds.
const (
	CHintTurn       uint32 = 1
	CHintCard       uint32 = 2
	CHintRace       uint32 = 3
	CHintAttribute  uint32 = 4
	CHintNumber     uint32 = 5
	CHintDescAdd    uint32 = 6
	CHintDescRemove uint32 = 7
)

// Player hint kinds.
const (
	PHintDescAdd    uint8 = 6
	PHintDescRemove uint8 = 7
)

// Announce opcodes.
const (
	OpcodeAdd           uint64 = 0x4000000000000000
	OpcodeSub           uint64 = 0x4000000100000000
	OpcodeMul           uint64 = 0x4000000200000000
	OpcodeDiv           uint64 = 0x4000000300000000
	OpcodeAnd           uint64 = 0x4000000400000000
	OpcodeOr            uint64 = 0x4000000500000000
	OpcodeNeg           uint64 = 0x4000000600000000
	OpcodeNot           uint64 = 0x4000000700000000
	OpcodeBAnd          uint64 = 0x4000000800000000
	OpcodeBOr           uint64 = 0x4000000900000000
	OpcodeBNot          uint64 = 0x4000001000000000
	OpcodeBXor          uint64 = 0x4000001100000000
	OpcodeLShift        uint64 = 0x4000001200000000
	OpcodeRShift        uint64 = 0x4000001300000000
	OpcodeAllowAliases  uint64 = 0x4000001400000000
	OpcodeAllowTokens   uint64 = 0x4000001500000000
	OpcodeIsCode        uint64 = 0x4000010000000000
	OpcodeIsSetCard     uint64 = 0x4000010100000000
	OpcodeIsType        uint64 = 0x4000010200000000
	OpcodeIsRace        uint64 = 0x4000010300000000
	OpcodeIsAttribute   uint64 = 0x4000010400000000
	OpcodeGetCode       uint64 = 0x4000010500000000
	OpcodeGetSetCard    uint64 = 0x4000010600000000
	OpcodeGetType       uint64 = 0x4000010700000000
	OpcodeGetRace       uint64 = 0x4000010800000000
	OpcodeGetAttribute  uint64 = 0x4000010900000000
)
