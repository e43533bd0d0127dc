package ocg

// Duel option flags.
const (
	DuelTestMode                     uint64 = 0x01
	DuelAttackFirstTurn              uint64 = 0x02
	DuelUseTrapsInNewChain           uint64 = 0x04
	Duel6StepBattleStep              uint64 = 0x08
	DuelPseudoShuffle                uint64 = 0x10
	DuelTriggerWhenPrivateKnowledge  uint64 = 0x20
	DuelSimpleAI                     uint64 = 0x40
	DuelRelay                        uint64 = 0x80
	DuelOCGObsoleteIgnition          uint64 = 0x100
	Duel1stTurnDraw                  uint64 = 0x200
	Duel1FaceupField                 uint64 = 0x400
	DuelPZone                        uint64 = 0x800
	DuelSeparatePZone                uint64 = 0x1000
	DuelEMZone                       uint64 = 0x2000
	DuelFSXMMZone                    uint64 = 0x4000
	DuelTrapMonstersNotUseZone       uint64 = 0x8000
	DuelReturnToDeckTriggers         uint64 = 0x10000
	DuelTriggerOnlyInLocation        uint64 = 0x20000
	DuelSpSummonOnceOldNegate        uint64 = 0x40000
	DuelCannotSummonOathOld          uint64 = 0x80000
	DuelNoStandbyPhase               uint64 = 0x100000
	DuelNoMainPhase2                 uint64 = 0x200000
	Duel3ColumnsField                uint64 = 0x400000
	DuelDrawUntil5                   uint64 = 0x800000
	DuelNoHandLimit                  uint64 = 0x1000000
	DuelUnlimitedSummons             uint64 = 0x2000000
	DuelInvertedQuickPriority        uint64 = 0x4000000
	DuelEquipNotSentIfMissingTarget  uint64 = 0x8000000
	Duel0AtkDestroyed                uint64 = 0x10000000
	DuelStoreAttackReplays           uint64 = 0x20000000
	DuelSingleChainInDamageSubstep   uint64 = 0x40000000
	DuelCanReposIfNonSumPlayer       uint64 = 0x80000000
	DuelTCGSegocNonPublic            uint64 = 0x100000000
	DuelTCGSegocFirstTrigger         uint64 = 0x200000000
	DuelTCGFastEffectIgnition        uint64 = 0x400000000
	DuelExtraDeckRitual              uint64 = 0x800000000
	DuelNormalSummonFaceupDef        uint64 = 0x1000000000
)

// Duel mode composites.
const (
	DuelModeSpeed = Duel3ColumnsField | DuelNoMainPhase2 | DuelTrapMonstersNotUseZone | DuelTriggerOnlyInLocation
	DuelModeRush  = Duel3ColumnsField | DuelNoMainPhase2 | DuelNoStandbyPhase | Duel1stTurnDraw |
		DuelInvertedQuickPriority | DuelDrawUntil5 | DuelNoHandLimit | DuelUnlimitedSummons |
		DuelTrapMonstersNotUseZone | DuelTriggerOnlyInLocation | DuelExtraDeckRitual
	DuelModeMR1 = DuelOCGObsoleteIgnition | Duel1stTurnDraw | Duel1FaceupField |
		DuelSpSummonOnceOldNegate | DuelReturnToDeckTriggers | DuelCannotSummonOathOld
	DuelModeGoat = DuelModeMR1 | DuelTCGFastEffectIgnition | DuelUseTrapsInNewChain |
		Duel6StepBattleStep | DuelTriggerWhenPrivateKnowledge | DuelEquipNotSentIfMissingTarget |
		Duel0AtkDestroyed | DuelStoreAttackReplays | DuelSingleChainInDamageSubstep |
		DuelCanReposIfNonSumPlayer | DuelTCGSegocNonPublic | DuelTCGSegocFirstTrigger
	DuelModeMR2 = Duel1stTurnDraw | Duel1FaceupField | DuelSpSummonOnceOldNegate |
		DuelReturnToDeckTriggers | DuelCannotSummonOathOld
	DuelModeMR3 = DuelPZone | DuelSeparatePZone | DuelSpSummonOnceOldNegate |
		DuelReturnToDeckTriggers | DuelCannotSummonOathOld
	DuelModeMR4 = DuelPZone | DuelEMZone | DuelSpSummonOnceOldNegate |
		DuelReturnToDeckTriggers | DuelCannotSummonOathOld
	DuelModeMR5 = DuelPZone | DuelEMZone | DuelFSXMMZone | DuelTrapMonstersNotUseZone | DuelTriggerOnlyInLocation
)

// checked most specific first
var duelModes = []struct {
	mask uint64
	name string
}{
	{DuelModeRush, "RUSH"},
	{DuelModeSpeed, "SPEED"},
	{DuelModeGoat, "GOAT"},
	{DuelModeMR5, "MR5"},
	{DuelModeMR4, "MR4"},
	{DuelModeMR3, "MR3"},
	{DuelModeMR2, "MR2"},
	{DuelModeMR1, "MR1"},
}

// DuelModeName names the first mode whose every flag is set.
func DuelModeName(flags uint64) string {
	for _, m := range duelModes {
		if flags&m.mask == m.mask {
			return m.name
		}
	}
	return "UNKNOWN_MODE"
}
