package ocg

import (
	"strconv"
	"strings"
)

type bitName struct {
	bit  uint64
	name string
}

var positionNames = []bitName{
	{uint64(PosFaceUpAttack), "FACEUP_ATTACK"},
	{uint64(PosFaceDownAttack), "FACEDOWN_ATTACK"},
	{uint64(PosFaceUpDefense), "FACEUP_DEFENSE"},
	{uint64(PosFaceDownDefense), "FACEDOWN_DEFENSE"},
}

var typeNames = []bitName{
	{uint64(TypeMonster), "MONSTER"},
	{uint64(TypeSpell), "SPELL"},
	{uint64(TypeTrap), "TRAP"},
	{uint64(TypeNormal), "NORMAL"},
	{uint64(TypeEffect), "EFFECT"},
	{uint64(TypeFusion), "FUSION"},
	{uint64(TypeRitual), "RITUAL"},
	{uint64(TypeTrapMonster), "TRAPMONSTER"},
	{uint64(TypeSpirit), "SPIRIT"},
	{uint64(TypeUnion), "UNION"},
	{uint64(TypeGemini), "GEMINI"},
	{uint64(TypeTuner), "TUNER"},
	{uint64(TypeSynchro), "SYNCHRO"},
	{uint64(TypeToken), "TOKEN"},
	{uint64(TypeMaximum), "MAXIMUM"},
	{uint64(TypeQuickPlay), "QUICKPLAY"},
	{uint64(TypeContinuous), "CONTINUOUS"},
	{uint64(TypeEquip), "EQUIP"},
	{uint64(TypeField), "FIELD"},
	{uint64(TypeCounter), "COUNTER"},
	{uint64(TypeFlip), "FLIP"},
	{uint64(TypeToon), "TOON"},
	{uint64(TypeXyz), "XYZ"},
	{uint64(TypePendulum), "PENDULUM"},
	{uint64(TypeSpSummon), "SPSUMMON"},
	{uint64(TypeLink), "LINK"},
}

var attributeNames = []bitName{
	{uint64(AttributeEarth), "EARTH"},
	{uint64(AttributeWater), "WATER"},
	{uint64(AttributeFire), "FIRE"},
	{uint64(AttributeWind), "WIND"},
	{uint64(AttributeLight), "LIGHT"},
	{uint64(AttributeDark), "DARK"},
	{uint64(AttributeDivine), "DIVINE"},
}

var raceNames = []bitName{
	{uint64(RaceWarrior), "WARRIOR"},
	{uint64(RaceSpellcaster), "SPELLCASTER"},
	{uint64(RaceFairy), "FAIRY"},
	{uint64(RaceFiend), "FIEND"},
	{uint64(RaceZombie), "ZOMBIE"},
	{uint64(RaceMachine), "MACHINE"},
	{uint64(RaceAqua), "AQUA"},
	{uint64(RacePyro), "PYRO"},
	{uint64(RaceRock), "ROCK"},
	{uint64(RaceWingedBeast), "WINGEDBEAST"},
	{uint64(RacePlant), "PLANT"},
	{uint64(RaceInsect), "INSECT"},
	{uint64(RaceThunder), "THUNDER"},
	{uint64(RaceDragon), "DRAGON"},
	{uint64(RaceBeast), "BEAST"},
	{uint64(RaceBeastWarrior), "BEASTWARRIOR"},
	{uint64(RaceDinosaur), "DINOSAUR"},
	{uint64(RaceFish), "FISH"},
	{uint64(RaceSeaSerpent), "SEASERPENT"},
	{uint64(RaceReptile), "REPTILE"},
	{uint64(RacePsychic), "PSYCHIC"},
	{uint64(RaceDivine), "DIVINE"},
	{uint64(RaceCreatorGod), "CREATORGOD"},
	{uint64(RaceWyrm), "WYRM"},
	{uint64(RaceCyberse), "CYBERSE"},
	{uint64(RaceIllusion), "ILLUSION"},
	{uint64(RaceCyborg), "CYBORG"},
	{uint64(RaceMagicalKnight), "MAGICALKNIGHT"},
	{uint64(RaceHighDragon), "HIGHDRAGON"},
	{uint64(RaceOmegaPsychic), "OMEGAPSYCHIC"},
	{uint64(RaceCelestialWarrior), "CELESTIALWARRIOR"},
	{uint64(RaceGalaxy), "GALAXY"},
	{uint64(RaceYokai), "YOKAI"},
}

var reasonNames = []bitName{
	{uint64(ReasonDestroy), "DESTROY"},
	{uint64(ReasonRelease), "RELEASE"},
	{uint64(ReasonTemporary), "TEMPORARY"},
	{uint64(ReasonMaterial), "MATERIAL"},
	{uint64(ReasonSummon), "SUMMON"},
	{uint64(ReasonBattle), "BATTLE"},
	{uint64(ReasonEffect), "EFFECT"},
	{uint64(ReasonCost), "COST"},
	{uint64(ReasonAdjust), "ADJUST"},
	{uint64(ReasonLostTarget), "LOST_TARGET"},
	{uint64(ReasonRule), "RULE"},
	{uint64(ReasonSpSummon), "SPSUMMON"},
	{uint64(ReasonDisSummon), "DISSUMMON"},
	{uint64(ReasonFlip), "FLIP"},
	{uint64(ReasonDiscard), "DISCARD"},
	{uint64(ReasonRDamage), "RDAMAGE"},
	{uint64(ReasonRRecover), "RRECOVER"},
	{uint64(ReasonReturn), "RETURN"},
	{uint64(ReasonFusion), "FUSION"},
	{uint64(ReasonSynchro), "SYNCHRO"},
	{uint64(ReasonRitual), "RITUAL"},
	{uint64(ReasonXyz), "XYZ"},
	{uint64(ReasonReplace), "REPLACE"},
	{uint64(ReasonDraw), "DRAW"},
	{uint64(ReasonRedirect), "REDIRECT"},
	{uint64(ReasonLink), "LINK"},
}

var statusNames = []bitName{
	{uint64(StatusDisabled), "DISABLED"},
	{uint64(StatusToEnable), "TO_ENABLE"},
	{uint64(StatusToDisable), "TO_DISABLE"},
	{uint64(StatusProcComplete), "PROC_COMPLETE"},
	{uint64(StatusSetTurn), "SET_TURN"},
	{uint64(StatusNoLevel), "NO_LEVEL"},
	{uint64(StatusBattleResult), "BATTLE_RESULT"},
	{uint64(StatusSpSummonStep), "SPSUMMON_STEP"},
	{uint64(StatusFormChanged), "FORM_CHANGED"},
	{uint64(StatusSummoning), "SUMMONING"},
	{uint64(StatusEffectEnabled), "EFFECT_ENABLED"},
	{uint64(StatusSummonTurn), "SUMMON_TURN"},
	{uint64(StatusDestroyConfirmed), "DESTROY_CONFIRMED"},
	{uint64(StatusLeaveConfirmed), "LEAVE_CONFIRMED"},
	{uint64(StatusBattleDestroyed), "BATTLE_DESTROYED"},
	{uint64(StatusCopyingEffect), "COPYING_EFFECT"},
	{uint64(StatusChaining), "CHAINING"},
	{uint64(StatusSummonDisabled), "SUMMON_DISABLED"},
	{uint64(StatusActivateDisabled), "ACTIVATE_DISABLED"},
	{uint64(StatusEffectReplaced), "EFFECT_REPLACED"},
	{uint64(StatusFutureFusion), "FUTURE_FUSION"},
	{uint64(StatusAttackCanceled), "ATTACK_CANCELED"},
	{uint64(StatusInitializing), "INITIALIZING"},
	{uint64(StatusJustPos), "JUST_POS"},
	{uint64(StatusContinuousPos), "CONTINUOUS_POS"},
	{uint64(StatusForbidden), "FORBIDDEN"},
	{uint64(StatusActFromHand), "ACT_FROM_HAND"},
	{uint64(StatusOppoBattle), "OPPO_BATTLE"},
	{uint64(StatusFlipSummonTurn), "FLIP_SUMMON_TURN"},
	{uint64(StatusSpSummonTurn), "SPSUMMON_TURN"},
}

// joinBits tests each canonical bit in table order. A value matching none of
// them renders as UNKNOWN_<kind>_<value>.
func joinBits(v uint64, table []bitName, kind string) string {
	var names []string
	for _, b := range table {
		if v&b.bit != 0 {
			names = append(names, b.name)
		}
	}
	if len(names) == 0 {
		return "UNKNOWN_" + kind + "_" + strconv.FormatUint(v, 10)
	}
	return strings.Join(names, "|")
}

func PositionName(pos uint32) string {
	if pos == 0 {
		return "NO_POS"
	}
	return joinBits(uint64(pos), positionNames, "POS")
}

func TypeName(t uint32) string {
	return joinBits(uint64(t), typeNames, "TYPE")
}

func AttributeName(attr uint32) string {
	return joinBits(uint64(attr), attributeNames, "ATTRIBUTE")
}

func RaceName(r Race) string {
	return joinBits(uint64(r), raceNames, "RACE")
}

func ReasonName(reason uint32) string {
	return joinBits(uint64(reason), reasonNames, "REASON")
}

func StatusName(status uint32) string {
	return joinBits(uint64(status), statusNames, "STATUS")
}

// LocationName renders a location byte. The overlay bit is reported as a
// prefix of the base location it is attached to.
func LocationName(loc uint8) string {
	if loc == 0 {
		return "NONE"
	}
	if loc&LocationOverlay != 0 {
		base := loc &^ LocationOverlay
		if base == 0 {
			return "OVERLAY"
		}
		return "OVERLAY|" + LocationName(base)
	}
	switch loc {
	case LocationDeck:
		return "DECK"
	case LocationHand:
		return "HAND"
	case LocationMZone:
		return "MZONE"
	case LocationSZone:
		return "SZONE"
	case LocationGrave:
		return "GRAVE"
	case LocationRemoved:
		return "REMOVED"
	case LocationExtra:
		return "EXTRA"
	}
	return "UNKNOWN_LOCATION_" + strconv.Itoa(int(loc))
}

func PhaseName(phase uint16) string {
	switch phase {
	case PhaseDraw:
		return "PHASE_DRAW"
	case PhaseStandby:
		return "PHASE_STANDBY"
	case PhaseMain1:
		return "PHASE_MAIN1"
	case PhaseBattleStart:
		return "PHASE_BATTLE_START"
	case PhaseBattleStep:
		return "PHASE_BATTLE_STEP"
	case PhaseDamage:
		return "PHASE_DAMAGE"
	case PhaseDamageCal:
		return "PHASE_DAMAGE_CAL"
	case PhaseBattle:
		return "PHASE_BATTLE"
	case PhaseMain2:
		return "PHASE_MAIN2"
	case PhaseEnd:
		return "PHASE_END"
	}
	return "UNKNOWN_PHASE_" + strconv.Itoa(int(phase))
}

var hintNames = map[uint8]string{
	HintEvent:      "HINT_EVENT",
	HintMessage:    "HINT_MESSAGE",
	HintSelectMsg:  "HINT_SELECTMSG",
	HintOpSelected: "HINT_OPSELECTED",
	HintEffect:     "HINT_EFFECT",
	HintRace:       "HINT_RACE",
	HintAttrib:     "HINT_ATTRIB",
	HintCode:       "HINT_CODE",
	HintNumber:     "HINT_NUMBER",
	HintCard:       "HINT_CARD",
	HintZone:       "HINT_ZONE",
}

func HintName(t uint8) string {
	if name, ok := hintNames[t]; ok {
		return name
	}
	return "UNKNOWN_HINT_" + strconv.Itoa(int(t))
}

var cardHintNames = map[uint32]string{
	CHintTurn:       "CHINT_TURN",
	CHintCard:       "CHINT_CARD",
	CHintRace:       "CHINT_RACE",
	CHintAttribute:  "CHINT_ATTRIBUTE",
	CHintNumber:     "CHINT_NUMBER",
	CHintDescAdd:    "CHINT_DESC_ADD",
	CHintDescRemove: "CHINT_DESC_REMOVE",
}

func CardHintName(t uint32) string {
	if name, ok := cardHintNames[t]; ok {
		return name
	}
	return "UNKNOWN_CHINT_" + strconv.FormatUint(uint64(t), 10)
}

func PlayerHintName(t uint8) string {
	switch t {
	case PHintDescAdd:
		return "PHINT_DESC_ADD"
	case PHintDescRemove:
		return "PHINT_DESC_REMOVE"
	}
	return "UNKNOWN_PHINT_" + strconv.Itoa(int(t))
}

var opcodeNames = map[uint64]string{
	OpcodeAdd:          "OPCODE_ADD",
	OpcodeSub:          "OPCODE_SUB",
	OpcodeMul:          "OPCODE_MUL",
	OpcodeDiv:          "OPCODE_DIV",
	OpcodeAnd:          "OPCODE_AND",
	OpcodeOr:           "OPCODE_OR",
	OpcodeNeg:          "OPCODE_NEG",
	OpcodeNot:          "OPCODE_NOT",
	OpcodeBAnd:         "OPCODE_BAND",
	OpcodeBOr:          "OPCODE_BOR",
	OpcodeBNot:         "OPCODE_BNOT",
	OpcodeBXor:         "OPCODE_BXOR",
	OpcodeLShift:       "OPCODE_LSHIFT",
	OpcodeRShift:       "OPCODE_RSHIFT",
	OpcodeAllowAliases: "OPCODE_ALLOW_ALIASES",
	OpcodeAllowTokens:  "OPCODE_ALLOW_TOKENS",
	OpcodeIsCode:       "OPCODE_ISCODE",
	OpcodeIsSetCard:    "OPCODE_ISSETCARD",
	OpcodeIsType:       "OPCODE_ISTYPE",
	OpcodeIsRace:       "OPCODE_ISRACE",
	OpcodeIsAttribute:  "OPCODE_ISATTRIBUTE",
	OpcodeGetCode:      "OPCODE_GETCODE",
	OpcodeGetSetCard:   "OPCODE_GETSETCARD",
	OpcodeGetType:      "OPCODE_GETTYPE",
	OpcodeGetRace:      "OPCODE_GETRACE",
	OpcodeGetAttribute: "OPCODE_GETATTRIBUTE",
}

// OpcodeName names an announce opcode; plain operands render as decimal.
func OpcodeName(op uint64) string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return strconv.FormatUint(op, 10)
}
