package game

import "github.com/lox/holdem-engine/poker"

// Street identifies one betting round of a hand.
type Street int

const (
	PreFlop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	switch s {
	case PreFlop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	default:
		return "unknown"
	}
}

// SeatStatus is a seat's standing within the current hand.
type SeatStatus int

const (
	Active SeatStatus = iota
	Folded
	AllIn
	Busted
)

func (s SeatStatus) String() string {
	switch s {
	case Active:
		return "active"
	case Folded:
		return "folded"
	case AllIn:
		return "all-in"
	case Busted:
		return "busted"
	default:
		return "unknown"
	}
}

// ActionKind distinguishes the committed events that make up a hand's
// action stream.
type ActionKind int

const (
	PostSmallBlind ActionKind = iota
	PostBigBlind
	Fold
	Check
	Call
	Bet
	Raise
	AllInAction
	DealHole
	DealCommunity
	Win
)

func (k ActionKind) String() string {
	switch k {
	case PostSmallBlind:
		return "post-small-blind"
	case PostBigBlind:
		return "post-big-blind"
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Bet:
		return "bet"
	case Raise:
		return "raise"
	case AllInAction:
		return "all-in"
	case DealHole:
		return "deal-hole"
	case DealCommunity:
		return "deal-community"
	case Win:
		return "win"
	default:
		return "unknown"
	}
}

// PlayerAction is a single committed, emitted event of a hand's
// action stream — the sole observable output of the engine.
type PlayerAction struct {
	Kind ActionKind

	// Position identifies the acting seat. -1 for events with no
	// single actor (a community deal).
	Position int

	// Amount is the chip quantity relevant to this event: blind
	// posted, call size, bet/raise-to size, or pot winnings. For an
	// all-in, the committed Amount is the seat's total contribution on
	// the street after going all-in (not the stack it pushed). Unused for Fold/Check/DealHole/DealCommunity.
	Amount int

	Street Street

	// Community holds the cards dealt, for DealCommunity events only.
	Community []poker.Card

	// HoleCards holds the two cards dealt to Position, for DealHole
	// events only.
	HoleCards [2]poker.Card

	// PotIndex identifies which pot a Win event awarded from.
	PotIndex int
}

// LegalActionKind enumerates the shapes of action a player may be
// offered at a decision point.
type LegalActionKind int

const (
	LegalFold LegalActionKind = iota
	LegalCheck
	LegalCall
	LegalBet
	LegalRaise
	LegalAllIn
)

func (k LegalActionKind) String() string {
	switch k {
	case LegalFold:
		return "fold"
	case LegalCheck:
		return "check"
	case LegalCall:
		return "call"
	case LegalBet:
		return "bet"
	case LegalRaise:
		return "raise"
	case LegalAllIn:
		return "all-in"
	default:
		return "unknown"
	}
}

// LegalAction is one action a player may choose at a decision point,
// with concrete numeric bounds. For Fold/Check/AllIn, Min==Max is the
// exact (or in AllIn's case, only) amount; for Call, Min==Max is the
// call size; for Bet/Raise, Min and Max bound the bet size / raise-to
// amount the player may choose within.
type LegalAction struct {
	Kind LegalActionKind
	Min  int
	Max  int
}
