package stream

import (
	"log/slog"

	"github.com/duellog/yrpdecode/internal/dispatcher"
	"github.com/duellog/yrpdecode/internal/ocg"
	"github.com/duellog/yrpdecode/internal/parser"
)

// wrap adapts a typed payload decoder to a dispatcher handler. A failed
// decode returns no details.
func wrap[T any](f func([]byte) (T, error)) dispatcher.HandlerFunc {
	return func(pkt dispatcher.Packet) (any, error) {
		v, err := f(pkt.Payload)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// RegisterDecoders registers a decoder for every known message tag.
// Messages recognized but not decoded keep a hex dump.
func RegisterDecoders(d *dispatcher.Dispatcher, p *parser.Parser, opts ...dispatcher.Option) {
	hexDump := wrap(p.ParseHexDump)
	empty := wrap(p.ParseEmpty)
	player := wrap(p.ParsePlayer)
	lifePoints := wrap(p.ParseLifePoints)
	summoning := wrap(p.ParseSummoning)
	chainLink := wrap(p.ParseChainLink)
	cardTarget := wrap(p.ParseCardTarget)
	counter := wrap(p.ParseCounter)
	toss := wrap(p.ParseToss)
	options := wrap(p.ParseOptions)
	confirmTop := wrap(p.ParseConfirmTop)
	codeList := wrap(p.ParseCodeList)
	playerCount := wrap(p.ParsePlayerCount)
	text := wrap(p.ParseText)

	decoders := map[uint8]dispatcher.HandlerFunc{
		// Duel flow
		ocg.MsgStart:       wrap(p.ParseStart),
		ocg.MsgWin:         wrap(p.ParseWin),
		ocg.MsgNewTurn:     wrap(p.ParseNewTurn),
		ocg.MsgNewPhase:    wrap(p.ParseNewPhase),
		ocg.MsgTagSwap:     wrap(p.ParseTagSwap),
		ocg.MsgReloadField: wrap(p.ParseReloadField),
		ocg.MsgMatchKill:   wrap(p.ParseMatchKill),
		ocg.MsgRetry:       hexDump,
		ocg.MsgWaiting:     hexDump,
		ocg.MsgRequestDeck: hexDump,

		// Hints
		ocg.MsgHint:       wrap(p.ParseHint),
		ocg.MsgCardHint:   wrap(p.ParseCardHint),
		ocg.MsgPlayerHint: wrap(p.ParsePlayerHint),
		ocg.MsgAIName:     text,
		ocg.MsgShowHint:   text,
		ocg.MsgCustomMsg:  wrap(p.ParseCustomMsg),

		// Prompts
		ocg.MsgSelectBattleCmd:    wrap(p.ParseSelectBattleCmd),
		ocg.MsgSelectIdleCmd:      wrap(p.ParseSelectIdleCmd),
		ocg.MsgSelectEffectYN:     wrap(p.ParseSelectEffectYN),
		ocg.MsgSelectYesNo:        wrap(p.ParseSelectYesNo),
		ocg.MsgSelectOption:       options,
		ocg.MsgSelectCard:         wrap(p.ParseSelectCard),
		ocg.MsgSelectUnselectCard: wrap(p.ParseSelectUnselectCard),
		ocg.MsgSelectChain:        wrap(p.ParseSelectChain),
		ocg.MsgSelectPlace:        wrap(p.ParseSelectPlace),
		ocg.MsgSelectPosition:     wrap(p.ParseSelectPosition),
		ocg.MsgSelectTribute:      wrap(p.ParseSelectTribute),
		ocg.MsgSortChain:          playerCount,
		ocg.MsgSelectCounter:      wrap(p.ParseSelectCounter),
		ocg.MsgSelectSum:          wrap(p.ParseSelectSum),
		ocg.MsgSelectDisfield:     wrap(p.ParseSelectDisfield),
		ocg.MsgSortCard:           wrap(p.ParseSortCard),
		ocg.MsgAnnounceRace:       wrap(p.ParseAnnounceRace),
		ocg.MsgAnnounceAttrib:     wrap(p.ParseAnnounceAttrib),
		ocg.MsgAnnounceCard:       wrap(p.ParseAnnounceCard),
		ocg.MsgAnnounceNumber:     options,
		ocg.MsgRockPaperScissors:  player,
		ocg.MsgHandRes:            wrap(p.ParseHandResult),
		ocg.MsgTossCoin:           toss,
		ocg.MsgTossDice:           toss,

		// Deck and hand
		ocg.MsgDraw:            wrap(p.ParseDraw),
		ocg.MsgConfirmDecktop:  confirmTop,
		ocg.MsgConfirmExtratop: confirmTop,
		ocg.MsgConfirmCards:    wrap(p.ParseConfirmCards),
		ocg.MsgShuffleDeck:     player,
		ocg.MsgShuffleHand:     codeList,
		ocg.MsgShuffleExtra:    playerCount,
		ocg.MsgShuffleSetCard:  wrap(p.ParseShuffleSetCard),
		ocg.MsgRefreshDeck:     hexDump,
		ocg.MsgSwapGraveDeck:   hexDump,
		ocg.MsgReverseDeck:     hexDump,
		ocg.MsgDeckTop:         hexDump,
		ocg.MsgRandomSelected:  codeList,
		ocg.MsgBecomeTarget:    wrap(p.ParseBecomeTarget),
		ocg.MsgRemoveCards:     wrap(p.ParseRemoveCards),

		// Card state
		ocg.MsgUpdateData:      wrap(p.ParseUpdateData),
		ocg.MsgUpdateCard:      wrap(p.ParseUpdateCard),
		ocg.MsgMove:            wrap(p.ParseMove),
		ocg.MsgSummoning:       summoning,
		ocg.MsgSummoned:        empty,
		ocg.MsgSpSummoning:     summoning,
		ocg.MsgSpSummoned:      empty,
		ocg.MsgFlipSummoning:   summoning,
		ocg.MsgFlipSummoned:    empty,
		ocg.MsgEquip:           wrap(p.ParseEquip),
		ocg.MsgUnequip:         wrap(p.ParseUnequip),
		ocg.MsgCardTarget:      cardTarget,
		ocg.MsgCancelTarget:    cardTarget,
		ocg.MsgAddCounter:      counter,
		ocg.MsgRemoveCounter:   counter,
		ocg.MsgMissedEffect:    wrap(p.ParseMissedEffect),
		ocg.MsgBeChainTarget:   hexDump,
		ocg.MsgCreateRelation:  hexDump,
		ocg.MsgReleaseRelation: hexDump,

		// Chains
		ocg.MsgChaining:      wrap(p.ParseChaining),
		ocg.MsgChained:       wrap(p.ParseChained),
		ocg.MsgChainSolving:  chainLink,
		ocg.MsgChainSolved:   chainLink,
		ocg.MsgChainNegated:  chainLink,
		ocg.MsgChainDisabled: chainLink,
		ocg.MsgChainEnd:      empty,

		// Battle and life points
		ocg.MsgAttack:          wrap(p.ParseAttack),
		ocg.MsgBattle:          wrap(p.ParseBattle),
		ocg.MsgAttackDisabled:  hexDump,
		ocg.MsgDamageStepStart: hexDump,
		ocg.MsgDamageStepEnd:   hexDump,
		ocg.MsgDamage:          lifePoints,
		ocg.MsgRecover:         lifePoints,
		ocg.MsgLPUpdate:        lifePoints,
		ocg.MsgPayLPCost:       lifePoints,

		// Server packets
		ocg.MsgServerGeneric:   wrap(p.ParseServerGeneric),
		ocg.MsgServerDebug9:    wrap(p.ParseServerASCII),
		ocg.MsgServer48:        wrap(p.ParseServerNote("Server Packet 48")),
		ocg.MsgServer49:        wrap(p.ParseServerSequence),
		ocg.MsgServer52:        wrap(p.ParseServerNote("Server Packet 52")),
		ocg.MsgServer57:        wrap(p.ParseServerNote("Server Packet 57")),
		ocg.MsgServer108:       wrap(p.ParseServer108),
		ocg.MsgServerPacket159: wrap(p.ParseServerSync),
		ocg.MsgServer235:       wrap(p.ParseServerData),
		ocg.MsgServer255:       wrap(p.ParseServerHex),
	}

	for tag, h := range decoders {
		d.Register(tag, h, append([]dispatcher.Option{dispatcher.Named(ocg.MsgName(tag))}, opts...)...)
	}
}

// NewRegistry builds a dispatcher with every message decoder registered.
// The result is read-only and may be shared between sessions.
func NewRegistry(logger *slog.Logger, opts ...dispatcher.Option) (*dispatcher.Dispatcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	d, err := dispatcher.New(logger)
	if err != nil {
		return nil, err
	}
	RegisterDecoders(d, parser.NewParser(logger), opts...)
	return d, nil
}
