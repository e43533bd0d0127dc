// pkg/core/details.go
package core

// Per-message detail records. Every record is a plain value that marshals to
// JSON with stable camelCase keys.

// CardRef identifies a card by code and wire location.
type CardRef struct {
	Code         uint32 `json:"code"`
	Controller   uint8  `json:"controller"`
	Location     uint8  `json:"location"`
	LocationName string `json:"locationName"`
	Sequence     uint32 `json:"sequence"`
}

// CardPlace is a location with its battle position.
type CardPlace struct {
	Controller   uint8  `json:"controller"`
	Location     uint8  `json:"location"`
	LocationName string `json:"locationName"`
	Sequence     uint32 `json:"sequence"`
	Position     uint32 `json:"position"`
	PositionName string `json:"positionName"`
}

// Empty is the details record of messages without a body.
type Empty struct{}

type NewTurn struct {
	Player uint8 `json:"player"`
}

type NewPhase struct {
	Phase     uint16 `json:"phase"`
	PhaseName string `json:"phaseName"`
}

type Win struct {
	Player uint8 `json:"player"`
	Type   uint8 `json:"type"`
}

// DrawnCard is one drawn card. Reserved holds the four bytes following
// the code whose meaning is unconfirmed.
type DrawnCard struct {
	CardRef
	Reserved uint32 `json:"reserved"`
}

type Draw struct {
	Player uint8       `json:"player"`
	Count  uint32      `json:"count"`
	Cards  []DrawnCard `json:"cards"`
}

// Start fields are present only when the payload is long enough.
type Start struct {
	Type      *uint8  `json:"type,omitempty"`
	LP        *uint32 `json:"lp,omitempty"`
	LP2       *uint32 `json:"lp2,omitempty"`
	DeckSize  *uint16 `json:"deckSize,omitempty"`
	ExtraSize *uint16 `json:"extraSize,omitempty"`
	HandSize  *uint16 `json:"handSize,omitempty"`
}

type Hint struct {
	Hex      string `json:"hex"`
	Type     uint8  `json:"type"`
	TypeName string `json:"typeName"`
	Player   uint8  `json:"player"`
	Data     uint32 `json:"data"`
	DataNote string `json:"dataNote,omitempty"`
}

type CardHint struct {
	Controller   uint8  `json:"controller"`
	Location     uint8  `json:"location"`
	LocationName string `json:"locationName"`
	Sequence     uint32 `json:"sequence"`
	Position     uint32 `json:"position"`
	PositionName string `json:"positionName"`
	Type         uint32 `json:"type"`
	TypeName     string `json:"typeName"`
	Val          uint32 `json:"val"`
}

type PlayerHint struct {
	Player   uint8  `json:"player"`
	Type     uint8  `json:"type"`
	TypeName string `json:"typeName"`
	Val      uint32 `json:"val"`
}

// Announce is used by race and attribute announcements.
type Announce struct {
	Player         uint8  `json:"player"`
	Count          uint8  `json:"count"`
	Available      uint32 `json:"available"`
	AvailableNames string `json:"availableNames"`
}

// AnnounceCard opcodes are 64-bit and rendered as decimal strings.
type AnnounceCard struct {
	Player      uint8    `json:"player"`
	Count       uint8    `json:"count"`
	Opcodes     []string `json:"opcodes"`
	OpcodeNames []string `json:"opcodeNames"`
}

// Options carries a list of 32-bit option values or descriptions.
type Options struct {
	Player  uint8    `json:"player"`
	Count   uint8    `json:"count"`
	Options []uint32 `json:"options"`
}

// Codes carries a plain list of card codes.
type Codes struct {
	Player uint8    `json:"player"`
	Count  uint32   `json:"count"`
	Cards  []uint32 `json:"cards"`
}

type Targets struct {
	Count uint8    `json:"count"`
	Cards []uint32 `json:"cards"`
}

// Cards carries a list of located cards.
type Cards struct {
	Player uint8     `json:"player"`
	Count  uint32    `json:"count"`
	Cards  []CardRef `json:"cards"`
}

type ClientEffect struct {
	Code uint32 `json:"code"`
	Desc uint32 `json:"desc"`
}

type Activatable struct {
	Code    uint32         `json:"code"`
	Desc    uint32         `json:"desc"`
	Clients []ClientEffect `json:"clients"`
}

type Attackable struct {
	CardRef
	DirectAttack uint8 `json:"dirAtt"`
}

type SelectBattleCmd struct {
	Player      uint8         `json:"player"`
	Activatable []Activatable `json:"activatable"`
	Attackable  []Attackable  `json:"attackable"`
	MainPhase2  uint8         `json:"mainPhase2"`
	ToEP        uint8         `json:"toEp"`
}

type SelectIdleCmd struct {
	Player         uint8         `json:"player"`
	Activatable    []Activatable `json:"activatable"`
	Summonable     []CardRef     `json:"summonable"`
	SpSummonable   []CardRef     `json:"spsummonable"`
	Repos          []CardRef     `json:"repos"`
	MSet           []CardRef     `json:"mset"`
	SSet           []CardRef     `json:"sset"`
	BPAllowed      uint8         `json:"bpAllowed"`
	EPAllowed      uint8         `json:"epAllowed"`
	ShuffleAllowed uint8         `json:"shuffleAllowed"`
}

type SelectEffectYN struct {
	Player       uint8  `json:"player"`
	Code         uint32 `json:"code"`
	Location     uint8  `json:"location"`
	LocationName string `json:"locationName"`
	Sequence     uint8  `json:"sequence"`
	Desc         uint32 `json:"desc"`
}

type SelectYesNo struct {
	Player uint8  `json:"player"`
	Desc   uint32 `json:"desc"`
}

type SelectCard struct {
	Player     uint8     `json:"player"`
	Finishable *uint8    `json:"finishable,omitempty"`
	Cancelable uint8     `json:"cancelable"`
	Min        uint8     `json:"min"`
	Max        uint8     `json:"max"`
	Count      uint32    `json:"count"`
	Cards      []CardRef `json:"cards"`
}

type TributeCard struct {
	CardRef
	ReleaseParam uint8 `json:"releaseParam"`
}

type SelectTribute struct {
	Player     uint8         `json:"player"`
	Cancelable uint8         `json:"cancelable"`
	Min        uint8         `json:"min"`
	Max        uint8         `json:"max"`
	Count      uint32        `json:"count"`
	Cards      []TributeCard `json:"cards"`
}

type ChainOption struct {
	Flag uint8 `json:"flag"`
	CardRef
	Desc uint32 `json:"desc"`
}

type SelectChain struct {
	Player   uint8         `json:"player"`
	Count    uint8         `json:"count"`
	SpeCount uint8         `json:"speCount"`
	Forced   uint8         `json:"forced"`
	Hint0    uint32        `json:"hint0"`
	Hint1    uint32        `json:"hint1"`
	Chains   []ChainOption `json:"chains"`
}

type SelectPlace struct {
	Player uint8  `json:"player"`
	Count  uint8  `json:"count"`
	Mask   uint32 `json:"mask"`
}

type SelectPosition struct {
	Player        uint8  `json:"player"`
	Code          uint32 `json:"code"`
	Positions     uint8  `json:"positions"`
	PositionsName string `json:"positionsName"`
}

// PlayerCount is used by SORT_CHAIN and SHUFFLE_EXTRA.
type PlayerCount struct {
	Player uint8 `json:"player"`
	Count  uint8 `json:"count"`
}

type CounterCard struct {
	CardRef
	Num uint16 `json:"num"`
}

type SelectCounter struct {
	Player uint8         `json:"player"`
	Type   uint16        `json:"type"`
	Count  uint16        `json:"count"`
	Cards  []CounterCard `json:"cards"`
}

type SumCard struct {
	CardRef
	Val uint32 `json:"val"`
}

type SelectSum struct {
	Mode   uint8     `json:"mode"`
	Player uint8     `json:"player"`
	Val    uint32    `json:"val"`
	Min    uint32    `json:"min"`
	Max    uint32    `json:"max"`
	Count  uint32    `json:"count"`
	Cards  []SumCard `json:"cards"`
}

type SelectDisfield struct {
	Player    uint8    `json:"player"`
	Count     uint8    `json:"count"`
	Disfields []uint32 `json:"disfields"`
	Raw       string   `json:"raw"`
}

type Player struct {
	Player uint8 `json:"player"`
}

type ShuffleSetCard struct {
	Count uint8     `json:"count"`
	Cards []CardRef `json:"cards"`
}

type TagSwap struct {
	Player uint8  `json:"player"`
	MCount uint8  `json:"mcount"`
	ECount uint8  `json:"ecount"`
	PCount uint8  `json:"pcount"`
	HCount uint8  `json:"hcount"`
	Top    uint32 `json:"top"`
}

// QueriedCard is one record accumulated from a bulk state TLV stream.
// Fields are set only when the matching attribute was present.
type QueriedCard struct {
	Code          *uint32 `json:"code,omitempty"`
	Position      *uint32 `json:"position,omitempty"`
	PositionName  string  `json:"positionName,omitempty"`
	Alias         *uint32 `json:"alias,omitempty"`
	Type          *uint32 `json:"type,omitempty"`
	TypeName      string  `json:"typeName,omitempty"`
	Level         *uint32 `json:"level,omitempty"`
	Rank          *uint32 `json:"rank,omitempty"`
	Attribute     *uint32 `json:"attribute,omitempty"`
	AttributeName string  `json:"attributeName,omitempty"`
	Race          *uint64 `json:"race,omitempty"`
	RaceName      string  `json:"raceName,omitempty"`
	Attack        *uint32 `json:"attack,omitempty"`
	Defense       *uint32 `json:"defense,omitempty"`
	BaseAttack    *uint32 `json:"baseAttack,omitempty"`
	BaseDefense   *uint32 `json:"baseDefense,omitempty"`
	Reason        *uint32 `json:"reason,omitempty"`
	ReasonName    string  `json:"reasonName,omitempty"`
	ReasonCard    *uint32 `json:"reasonCard,omitempty"`
	EquipCard     *uint32 `json:"equipCard,omitempty"`
	TargetCard    *uint32 `json:"targetCard,omitempty"`
	OverlayCard   *uint32 `json:"overlayCard,omitempty"`
	Counters      *uint32 `json:"counters,omitempty"`
	Owner         *uint32 `json:"owner,omitempty"`
	Status        *uint32 `json:"status,omitempty"`
	IsPublic      *uint32 `json:"isPublic,omitempty"`
	LScale        *uint32 `json:"lscale,omitempty"`
	RScale        *uint32 `json:"rscale,omitempty"`
	Link          *uint32 `json:"link,omitempty"`
	IsHidden      *uint32 `json:"isHidden,omitempty"`
	Cover         *uint32 `json:"cover,omitempty"`
	QueryEnd      *uint32 `json:"queryEnd,omitempty"`
}

type UpdateData struct {
	Player       uint8         `json:"player"`
	Location     uint8         `json:"location"`
	LocationName string        `json:"locationName"`
	DataLen      uint32        `json:"dataLen"`
	Cards        []QueriedCard `json:"cards"`
}

type UpdateCard struct {
	Player       uint8       `json:"player"`
	Location     uint8       `json:"location"`
	LocationName string      `json:"locationName"`
	Sequence     uint8       `json:"sequence"`
	Card         QueriedCard `json:"card"`
}

// Move describes a card changing place. From and To are nil for the short
// and incomplete variants, which carry only Hex and Note.
type Move struct {
	Code       uint32     `json:"code"`
	From       *CardPlace `json:"from,omitempty"`
	To         *CardPlace `json:"to,omitempty"`
	Reason     uint32     `json:"reason,omitempty"`
	ReasonName string     `json:"reasonName,omitempty"`
	Flag       *uint8     `json:"flag,omitempty"`
	Hex        string     `json:"hex,omitempty"`
	Note       string     `json:"note,omitempty"`
}

// Complete reports whether both endpoints were decoded.
func (m Move) Complete() bool {
	return m.From != nil && m.To != nil
}

// Summoning is used by normal, special and flip summon announcements.
type Summoning struct {
	Code uint32 `json:"code"`
	CardPlace
}

type Attack struct {
	Attacker CardPlace `json:"attacker"`
	Defender CardPlace `json:"defender"`
}

type Battle struct {
	Attacker uint32 `json:"attacker"`
	Defender uint32 `json:"defender"`
}

// LifePoints is used by DAMAGE, RECOVER, LPUPDATE and PAY_LPCOST.
type LifePoints struct {
	Player uint8  `json:"player"`
	Amount uint32 `json:"amount"`
}

type FieldPlayer struct {
	LP          uint32 `json:"lp"`
	HandCount   uint32 `json:"handCount"`
	GraveCount  uint32 `json:"graveCount"`
	RemoveCount uint32 `json:"removeCount"`
	DeckCount   uint32 `json:"deckCount"`
	ExtraCount  uint32 `json:"extraCount"`
}

type ReloadField struct {
	DuelFlags uint32       `json:"duelFlags,omitempty"`
	DuelMode  string       `json:"duelMode,omitempty"`
	P1        *FieldPlayer `json:"p1,omitempty"`
	P2        *FieldPlayer `json:"p2,omitempty"`
	Raw       string       `json:"raw,omitempty"`
	Data      string       `json:"data,omitempty"`
}

// HexDump keeps the payload of messages whose layout is not decoded.
type HexDump struct {
	Data string `json:"data"`
}

type Equip struct {
	CardPlace
	Target CardPlace `json:"target"`
}

type Unequip struct {
	Location     uint8  `json:"location"`
	LocationName string `json:"locationName"`
	Sequence     uint8  `json:"sequence"`
}

type CardTarget struct {
	Location           uint8  `json:"location"`
	LocationName       string `json:"locationName"`
	Sequence           uint8  `json:"sequence"`
	TargetLocation     uint8  `json:"targetLocation"`
	TargetLocationName string `json:"targetLocationName"`
	TargetSequence     uint8  `json:"targetSequence"`
}

type Counter struct {
	Type         uint16 `json:"type"`
	Location     uint8  `json:"location"`
	LocationName string `json:"locationName"`
	Sequence     uint8  `json:"sequence"`
	Count        uint16 `json:"count"`
}

type MissedEffect struct {
	Position uint8  `json:"position"`
	Code     uint32 `json:"code"`
}

// Toss is used by coin and dice results.
type Toss struct {
	Player  uint8 `json:"player"`
	Count   uint8 `json:"count"`
	Results []int `json:"results"`
}

type HandResult struct {
	Res uint8 `json:"res"`
}

// Text carries the string payload of AI_NAME and SHOW_HINT.
type Text struct {
	Len  uint16 `json:"len"`
	Text string `json:"text"`
}

type MatchKill struct {
	Code uint32 `json:"code"`
}

type CustomMsg struct {
	Player uint8  `json:"player"`
	Msg    uint32 `json:"msg"`
}

type RemoveCards struct {
	Type   uint8  `json:"type"`
	Player uint8  `json:"player"`
	Count  uint8  `json:"count"`
	Data   string `json:"data"`
}

// Chaining announces a new chain link. The trailing Reserved fields are
// present on the wire but their meaning is unconfirmed.
type Chaining struct {
	Code                uint32 `json:"code"`
	PCode               uint32 `json:"pcode"`
	Function            uint32 `json:"function"`
	TriggerController   uint8  `json:"triggerController"`
	TriggerLocation     uint8  `json:"triggerLocation"`
	TriggerLocationName string `json:"triggerLocationName"`
	Controller          uint8  `json:"controller"`
	Location            uint8  `json:"location"`
	LocationName        string `json:"locationName"`
	Sequence            uint8  `json:"sequence"`
	Desc                uint32 `json:"desc"`
	Reserved1           uint32 `json:"reserved1"`
	Reserved2           uint16 `json:"reserved2"`
	Reserved3           uint32 `json:"reserved3"`
}

type Chained struct {
	ChainCount uint8 `json:"chainCount"`
}

// ChainLink is used by CHAIN_SOLVING, CHAIN_SOLVED, CHAIN_NEGATED and
// CHAIN_DISABLED.
type ChainLink struct {
	Link uint8 `json:"link"`
}

// ServerPacket covers the non-engine packets some servers interleave with
// game messages.
type ServerPacket struct {
	Hex       string  `json:"hex"`
	Note      string  `json:"note,omitempty"`
	Value     *int64  `json:"value,omitempty"`
	ASCII     string  `json:"ascii,omitempty"`
	IntValues []int32 `json:"intValues,omitempty"`
	Head      *int    `json:"head,omitempty"`
	Tail      *uint8  `json:"tail,omitempty"`
	Sequence  string  `json:"sequence,omitempty"`
}
