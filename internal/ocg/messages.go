// Package ocg holds the wire constants of the duel engine message protocol
// and helpers that render them as symbolic names.
package ocg

import "strconv"

// Message type tags.
const (
	MsgServerGeneric      uint8 = 0
	MsgRetry              uint8 = 1
	MsgHint               uint8 = 2
	MsgWaiting            uint8 = 3
	MsgStart              uint8 = 4
	MsgWin                uint8 = 5
	MsgUpdateData         uint8 = 6
	MsgUpdateCard         uint8 = 7
	MsgRequestDeck        uint8 = 8
	MsgServerDebug9       uint8 = 9
	MsgSelectBattleCmd    uint8 = 10
	MsgSelectIdleCmd      uint8 = 11
	MsgSelectEffectYN     uint8 = 12
	MsgSelectYesNo        uint8 = 13
	MsgSelectOption       uint8 = 14
	MsgSelectCard         uint8 = 15
	MsgSelectChain        uint8 = 16
	MsgSelectPlace        uint8 = 18
	MsgSelectPosition     uint8 = 19
	MsgSelectTribute      uint8 = 20
	MsgSortChain          uint8 = 21
	MsgSelectCounter      uint8 = 22
	MsgSelectSum          uint8 = 23
	MsgSelectDisfield     uint8 = 24
	MsgSortCard           uint8 = 25
	MsgSelectUnselectCard uint8 = 26
	MsgConfirmDecktop     uint8 = 30
	MsgConfirmCards       uint8 = 31
	MsgShuffleDeck        uint8 = 32
	MsgShuffleHand        uint8 = 33
	MsgRefreshDeck        uint8 = 34
	MsgSwapGraveDeck      uint8 = 35
	MsgShuffleSetCard     uint8 = 36
	MsgReverseDeck        uint8 = 37
	MsgDeckTop            uint8 = 38
	MsgShuffleExtra       uint8 = 39
	MsgNewTurn            uint8 = 40
	MsgNewPhase           uint8 = 41
	MsgConfirmExtratop    uint8 = 42
	MsgServer48           uint8 = 48
	MsgServer49           uint8 = 49
	MsgMove               uint8 = 50
	MsgServer52           uint8 = 52
	MsgPosChange          uint8 = 53
	MsgSet                uint8 = 54
	MsgSwap               uint8 = 55
	MsgFieldDisabled      uint8 = 56
	MsgServer57           uint8 = 57
	MsgSummoning          uint8 = 60
	MsgSummoned           uint8 = 61
	MsgSpSummoning        uint8 = 62
	MsgSpSummoned         uint8 = 63
	MsgFlipSummoning      uint8 = 64
	MsgFlipSummoned       uint8 = 65
	MsgChaining           uint8 = 70
	MsgChained            uint8 = 71
	MsgChainSolving       uint8 = 72
	MsgChainSolved        uint8 = 73
	MsgChainEnd           uint8 = 74
	MsgChainNegated       uint8 = 75
	MsgChainDisabled      uint8 = 76
	MsgCardSelected       uint8 = 80
	MsgRandomSelected     uint8 = 81
	MsgBecomeTarget       uint8 = 83
	MsgDraw               uint8 = 90
	MsgDamage             uint8 = 91
	MsgRecover            uint8 = 92
	MsgEquip              uint8 = 93
	MsgLPUpdate           uint8 = 94
	MsgUnequip            uint8 = 95
	MsgCardTarget         uint8 = 96
	MsgCancelTarget       uint8 = 97
	MsgPayLPCost          uint8 = 100
	MsgAddCounter         uint8 = 101
	MsgRemoveCounter      uint8 = 102
	MsgAttack             uint8 = 110
	MsgBattle             uint8 = 111
	MsgAttackDisabled     uint8 = 112
	MsgDamageStepStart    uint8 = 113
	MsgDamageStepEnd      uint8 = 114
	MsgServer108          uint8 = 108
	MsgMissedEffect       uint8 = 120
	MsgBeChainTarget      uint8 = 121
	MsgCreateRelation     uint8 = 122
	MsgReleaseRelation    uint8 = 123
	MsgTossCoin           uint8 = 130
	MsgTossDice           uint8 = 131
	MsgRockPaperScissors  uint8 = 132
	MsgHandRes            uint8 = 133
	MsgAnnounceRace       uint8 = 140
	MsgAnnounceAttrib     uint8 = 141
	MsgAnnounceCard       uint8 = 142
	MsgAnnounceNumber     uint8 = 143
	MsgServerPacket159    uint8 = 159
	MsgCardHint           uint8 = 160
	MsgTagSwap            uint8 = 161
	MsgReloadField        uint8 = 162
	MsgAIName             uint8 = 163
	MsgShowHint           uint8 = 164
	MsgPlayerHint         uint8 = 165
	MsgMatchKill          uint8 = 170
	MsgCustomMsg          uint8 = 180
	MsgRemoveCards        uint8 = 190
	MsgServer235          uint8 = 235
	MsgServer255          uint8 = 255
)

var msgNames = map[uint8]string{
	MsgServerGeneric:      "MSG_SERVER_GENERIC",
	MsgRetry:              "MSG_RETRY",
	MsgHint:               "MSG_HINT",
	MsgWaiting:            "MSG_WAITING",
	MsgStart:              "MSG_START",
	MsgWin:                "MSG_WIN",
	MsgUpdateData:         "MSG_UPDATE_DATA",
	MsgUpdateCard:         "MSG_UPDATE_CARD",
	MsgRequestDeck:        "MSG_REQUEST_DECK",
	MsgServerDebug9:       "MSG_SERVER_DEBUG_9",
	MsgSelectBattleCmd:    "MSG_SELECT_BATTLECMD",
	MsgSelectIdleCmd:      "MSG_SELECT_IDLECMD",
	MsgSelectEffectYN:     "MSG_SELECT_EFFECTYN",
	MsgSelectYesNo:        "MSG_SELECT_YESNO",
	MsgSelectOption:       "MSG_SELECT_OPTION",
	MsgSelectCard:         "MSG_SELECT_CARD",
	MsgSelectChain:        "MSG_SELECT_CHAIN",
	MsgSelectPlace:        "MSG_SELECT_PLACE",
	MsgSelectPosition:     "MSG_SELECT_POSITION",
	MsgSelectTribute:      "MSG_SELECT_TRIBUTE",
	MsgSortChain:          "MSG_SORT_CHAIN",
	MsgSelectCounter:      "MSG_SELECT_COUNTER",
	MsgSelectSum:          "MSG_SELECT_SUM",
	MsgSelectDisfield:     "MSG_SELECT_DISFIELD",
	MsgSortCard:           "MSG_SORT_CARD",
	MsgSelectUnselectCard: "MSG_SELECT_UNSELECT_CARD",
	MsgConfirmDecktop:     "MSG_CONFIRM_DECKTOP",
	MsgConfirmCards:       "MSG_CONFIRM_CARDS",
	MsgShuffleDeck:        "MSG_SHUFFLE_DECK",
	MsgShuffleHand:        "MSG_SHUFFLE_HAND",
	MsgRefreshDeck:        "MSG_REFRESH_DECK",
	MsgSwapGraveDeck:      "MSG_SWAP_GRAVE_DECK",
	MsgShuffleSetCard:     "MSG_SHUFFLE_SET_CARD",
	MsgReverseDeck:        "MSG_REVERSE_DECK",
	MsgDeckTop:            "MSG_DECK_TOP",
	MsgShuffleExtra:       "MSG_SHUFFLE_EXTRA",
	MsgNewTurn:            "MSG_NEW_TURN",
	MsgNewPhase:           "MSG_NEW_PHASE",
	MsgConfirmExtratop:    "MSG_CONFIRM_EXTRATOP",
	MsgServer48:           "MSG_SERVER_48",
	MsgServer49:           "MSG_SERVER_49",
	MsgMove:               "MSG_MOVE",
	MsgServer52:           "MSG_SERVER_52",
	MsgPosChange:          "MSG_POS_CHANGE",
	MsgSet:                "MSG_SET",
	MsgSwap:               "MSG_SWAP",
	MsgFieldDisabled:      "MSG_FIELD_DISABLED",
	MsgServer57:           "MSG_SERVER_57",
	MsgSummoning:          "MSG_SUMMONING",
	MsgSummoned:           "MSG_SUMMONED",
	MsgSpSummoning:        "MSG_SPSUMMONING",
	MsgSpSummoned:         "MSG_SPSUMMONED",
	MsgFlipSummoning:      "MSG_FLIPSUMMONING",
	MsgFlipSummoned:       "MSG_FLIPSUMMONED",
	MsgChaining:           "MSG_CHAINING",
	MsgChained:            "MSG_CHAINED",
	MsgChainSolving:       "MSG_CHAIN_SOLVING",
	MsgChainSolved:        "MSG_CHAIN_SOLVED",
	MsgChainEnd:           "MSG_CHAIN_END",
	MsgChainNegated:       "MSG_CHAIN_NEGATED",
	MsgChainDisabled:      "MSG_CHAIN_DISABLED",
	MsgCardSelected:       "MSG_CARD_SELECTED",
	MsgRandomSelected:     "MSG_RANDOM_SELECTED",
	MsgBecomeTarget:       "MSG_BECOME_TARGET",
	MsgDraw:               "MSG_DRAW",
	MsgDamage:             "MSG_DAMAGE",
	MsgRecover:            "MSG_RECOVER",
	MsgEquip:              "MSG_EQUIP",
	MsgLPUpdate:           "MSG_LPUPDATE",
	MsgUnequip:            "MSG_UNEQUIP",
	MsgCardTarget:         "MSG_CARD_TARGET",
	MsgCancelTarget:       "MSG_CANCEL_TARGET",
	MsgPayLPCost:          "MSG_PAY_LPCOST",
	MsgAddCounter:         "MSG_ADD_COUNTER",
	MsgRemoveCounter:      "MSG_REMOVE_COUNTER",
	MsgAttack:             "MSG_ATTACK",
	MsgBattle:             "MSG_BATTLE",
	MsgAttackDisabled:     "MSG_ATTACK_DISABLED",
	MsgDamageStepStart:    "MSG_DAMAGE_STEP_START",
	MsgDamageStepEnd:      "MSG_DAMAGE_STEP_END",
	MsgServer108:          "MSG_SERVER_108",
	MsgMissedEffect:       "MSG_MISSED_EFFECT",
	MsgBeChainTarget:      "MSG_BE_CHAIN_TARGET",
	MsgCreateRelation:     "MSG_CREATE_RELATION",
	MsgReleaseRelation:    "MSG_RELEASE_RELATION",
	MsgTossCoin:           "MSG_TOSS_COIN",
	MsgTossDice:           "MSG_TOSS_DICE",
	MsgRockPaperScissors:  "MSG_ROCK_PAPER_SCISSORS",
	MsgHandRes:            "MSG_HAND_RES",
	MsgAnnounceRace:       "MSG_ANNOUNCE_RACE",
	MsgAnnounceAttrib:     "MSG_ANNOUNCE_ATTRIB",
	MsgAnnounceCard:       "MSG_ANNOUNCE_CARD",
	MsgAnnounceNumber:     "MSG_ANNOUNCE_NUMBER",
	MsgServerPacket159:    "MSG_SERVER_PACKET_159",
	MsgCardHint:           "MSG_CARD_HINT",
	MsgTagSwap:            "MSG_TAG_SWAP",
	MsgReloadField:        "MSG_RELOAD_FIELD",
	MsgAIName:             "MSG_AI_NAME",
	MsgShowHint:           "MSG_SHOW_HINT",
	MsgPlayerHint:         "MSG_PLAYER_HINT",
	MsgMatchKill:          "MSG_MATCH_KILL",
	MsgCustomMsg:          "MSG_CUSTOM_MSG",
	MsgRemoveCards:        "MSG_REMOVE_CARDS",
	MsgServer235:          "MSG_SERVER_235",
	MsgServer255:          "MSG_SERVER_255",
}

// MsgName returns the symbolic name of a message tag.
func MsgName(t uint8) string {
	if name, ok := msgNames[t]; ok {
		return name
	}
	return "UNKNOWN_MSG_" + strconv.Itoa(int(t))
}
