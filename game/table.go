package game

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/poker"
)

// Table owns the seats, blind policy, and dealer button across many
// hands. The caller owns the Table exclusively for the duration of a
// hand — nothing here is safe for concurrent use from two goroutines
// sharing one Table.
type Table struct {
	Seats       []*Seat
	BigBlind    int
	SmallBlind  int
	BlindPolicy BlindPolicy
	ButtonIdx   int
	HandNumber  int

	logger *log.Logger
}

// NewTable seats one player per entry in players, each starting with
// stackSize chips, and assigns positions 0..N-1 in seating order.
func NewTable(players []Player, stackSize, bigBlind int, policy BlindPolicy, logger *log.Logger) *Table {
	if policy == nil {
		policy = NeverIncrease{}
	}
	t := &Table{
		BigBlind:    bigBlind,
		SmallBlind:  bigBlind / 2,
		BlindPolicy: policy,
		logger:      logger,
	}
	for i, p := range players {
		p.Init(i, stackSize)
		t.Seats = append(t.Seats, &Seat{Position: i, Stack: stackSize, Player: p, Status: Active})
	}
	return t
}

func (t *Table) logDebug(msg string, kv ...interface{}) {
	if t.logger != nil {
		t.logger.Debug(msg, kv...)
	}
}

// activeSeats returns every non-busted seat, in position order.
func (t *Table) activeSeats() []*Seat {
	var out []*Seat
	for _, s := range t.Seats {
		if s.Status != Busted {
			out = append(out, s)
		}
	}
	return out
}

// PlayOneRound begins a new hand with the given deck and returns its
// action iterator. The deck must be already shuffled by the caller —
// Table never shuffles internally, preserving the determinism
// contract: all randomness originates with the caller-supplied deck.
func (t *Table) PlayOneRound(deck *poker.Deck) (*ActionIterator, error) {
	seats := t.activeSeats()
	if len(seats) < 2 {
		return nil, ErrInsufficientSeats
	}

	buttonIdx := -1
	for i, s := range seats {
		if s.Position == t.Seats[t.ButtonIdx].Position {
			buttonIdx = i
			break
		}
	}
	if buttonIdx < 0 {
		buttonIdx = 0
	}

	t.HandNumber++
	t.BigBlind = t.BlindPolicy.NextBlind(t.HandNumber, t.BigBlind)
	t.SmallBlind = t.BigBlind / 2

	hand, err := NewHandState(seats, buttonIdx, t.SmallBlind, t.BigBlind, deck, t.HandNumber)
	if err != nil {
		return nil, err
	}
	t.logDebug("hand started", "hand", t.HandNumber, "seats", len(seats), "button", seats[buttonIdx].Position, "big_blind", t.BigBlind)
	return NewActionIterator(hand), nil
}

// SettleHand applies end-of-hand bookkeeping: advances the button to
// the next non-busted seat, fires Bust on any seat whose stack just
// reached zero, and removes busted seats from future button rotation.
func (t *Table) SettleHand(hand *HandState) {
	for _, s := range hand.Seats {
		if s.Stack == 0 && s.Status != Busted {
			s.Status = Busted
			t.logDebug("seat busted", "position", s.Position)
			if s.Player != nil {
				s.Player.Bust()
			}
		} else if s.Status != Busted {
			s.Status = Active
		}
	}

	remaining := t.activeSeats()
	if len(remaining) == 0 {
		return
	}
	curButtonPos := t.Seats[t.ButtonIdx].Position
	nextIdx := t.ButtonIdx
	for i := 1; i <= len(t.Seats); i++ {
		cand := (t.ButtonIdx + i) % len(t.Seats)
		if t.Seats[cand].Status != Busted {
			nextIdx = cand
			break
		}
	}
	_ = curButtonPos
	t.ButtonIdx = nextIdx
}

// ValidateChipConservation asserts that the sum of every seat's stack
// plus every seat's undistributed contribution this hand equals the
// total chips in play before the hand started — testable property
// §8.1, checked the way internal/game/engine.go's
// validateChipConservation checks it.
func (t *Table) ValidateChipConservation(hand *HandState, startingTotal int) error {
	total := 0
	for _, s := range hand.Seats {
		total += s.Stack + s.ContributedTotal
	}
	if total != startingTotal {
		return fmt.Errorf("chip conservation violation: have %d, want %d", total, startingTotal)
	}
	return nil
}

// StartingChipTotal sums every currently-seated seat's stack; call it
// before PlayOneRound to get the baseline for ValidateChipConservation.
func (t *Table) StartingChipTotal() int {
	total := 0
	for _, s := range t.activeSeats() {
		total += s.Stack
	}
	return total
}
