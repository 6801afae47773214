package game

import (
	"fmt"

	"github.com/lox/holdem-engine/poker"
)

// LegalActions computes the exact, numerically bounded set of actions
// available to the seat currently on the clock.
func (h *HandState) LegalActions() []LegalAction {
	seat := h.actingSeat()
	toCall := h.CurrentBet - seat.ContributedStreet

	var actions []LegalAction
	if toCall > 0 {
		actions = append(actions, LegalAction{Kind: LegalFold})
	} else {
		actions = append(actions, LegalAction{Kind: LegalCheck})
	}

	switch {
	case toCall > 0 && seat.Stack >= toCall:
		actions = append(actions, LegalAction{Kind: LegalCall, Min: toCall, Max: toCall})
	case toCall > 0 && seat.Stack < toCall:
		// Short call: the seat cannot fully match current_bet.
		actions = append(actions, LegalAction{Kind: LegalAllIn, Min: seat.Stack, Max: seat.Stack})
		return actions
	}

	if h.CurrentBet == 0 {
		if seat.Stack > 0 {
			min := h.MinRaise
			if h.BigBlind > min {
				min = h.BigBlind
			}
			if min > seat.Stack {
				min = seat.Stack
			}
			actions = append(actions, LegalAction{Kind: LegalBet, Min: min, Max: seat.Stack})
		}
		return actions
	}

	if seat.Stack > toCall {
		if h.reraiseLocked[seat.Position] {
			return actions
		}
		minTo := h.CurrentBet + h.MinRaise
		capTo := seat.ContributedStreet + seat.Stack
		if minTo <= capTo {
			actions = append(actions, LegalAction{Kind: LegalRaise, Min: minTo, Max: capTo})
		} else {
			actions = append(actions, LegalAction{Kind: LegalAllIn, Min: seat.Stack, Max: seat.Stack})
		}
	}
	return actions
}

func validateAction(legal []LegalAction, action PlayerAction) error {
	kind, ok := legalKindFor(action.Kind)
	if !ok {
		return fmt.Errorf("action kind %s is not a player decision", action.Kind)
	}
	for _, la := range legal {
		if la.Kind != kind {
			continue
		}
		if la.Kind == LegalFold || la.Kind == LegalCheck {
			return nil
		}
		if action.Amount < la.Min || action.Amount > la.Max {
			return fmt.Errorf("%s amount %d outside legal range [%d,%d]", kind, action.Amount, la.Min, la.Max)
		}
		return nil
	}
	return fmt.Errorf("%s is not among the %d offered legal actions", action.Kind, len(legal))
}

func legalKindFor(k ActionKind) (LegalActionKind, bool) {
	switch k {
	case Fold:
		return LegalFold, true
	case Check:
		return LegalCheck, true
	case Call:
		return LegalCall, true
	case Bet:
		return LegalBet, true
	case Raise:
		return LegalRaise, true
	case AllInAction:
		return LegalAllIn, true
	default:
		return 0, false
	}
}

// applyAction mutates stacks and contributions for a validated
// player decision, returning the committed PlayerAction (not yet
// appended to the action log — callers emit it).
func (h *HandState) applyAction(seat *Seat, action PlayerAction) (PlayerAction, error) {
	seat.ActedThisStreet = true
	action.Street = h.Street
	action.Position = seat.Position

	switch action.Kind {
	case Fold:
		seat.Status = Folded
		return action, nil

	case Check:
		return action, nil

	case Call:
		if err := h.moveChipsIn(seat, action.Amount); err != nil {
			return action, err
		}
		return action, nil

	case Bet:
		if err := h.moveChipsIn(seat, action.Amount-seat.ContributedStreet); err != nil {
			return action, err
		}
		h.CurrentBet = seat.ContributedStreet
		h.MinRaise = action.Amount
		h.clearReraiseLocks()
		return action, nil

	case Raise:
		raiseSize := action.Amount - h.CurrentBet
		full := raiseSize >= h.MinRaise
		if err := h.moveChipsIn(seat, action.Amount-seat.ContributedStreet); err != nil {
			return action, err
		}
		h.CurrentBet = seat.ContributedStreet
		if full {
			h.MinRaise = raiseSize
			h.clearReraiseLocks()
		} else {
			h.lockOtherActedSeats(seat.Position)
		}
		return action, nil

	case AllInAction:
		wasFacingBet := h.CurrentBet > seat.ContributedStreet
		prevBet := h.CurrentBet
		if err := h.moveChipsIn(seat, seat.Stack); err != nil {
			return action, err
		}
		newTotal := seat.ContributedStreet
		if newTotal > h.CurrentBet {
			h.CurrentBet = newTotal
			raiseSize := newTotal - prevBet
			full := wasFacingBet && raiseSize >= h.MinRaise
			if full {
				h.MinRaise = raiseSize
				h.clearReraiseLocks()
			} else {
				h.lockOtherActedSeats(seat.Position)
			}
		}
		action.Amount = newTotal
		return action, nil

	default:
		return action, fmt.Errorf("game: cannot apply action kind %s", action.Kind)
	}
}

func (h *HandState) moveChipsIn(seat *Seat, amount int) error {
	if amount < 0 || amount > seat.Stack {
		return fmt.Errorf("%w: seat %d stack %d cannot move %d", ErrChipUnderflow, seat.Position, seat.Stack, amount)
	}
	seat.Stack -= amount
	seat.ContributedStreet += amount
	seat.ContributedTotal += amount
	if seat.Stack == 0 {
		seat.Status = AllIn
	}
	return nil
}

func (h *HandState) clearReraiseLocks() {
	h.reraiseLocked = make(map[int]bool)
}

// lockOtherActedSeats forbids every seat that has already acted this
// street (other than the raiser) from raising again until a full
// raise reopens action — the short-all-in-raise-does-not-reopen rule.
func (h *HandState) lockOtherActedSeats(raiserPos int) {
	for _, s := range h.Seats {
		if s.Position == raiserPos {
			continue
		}
		if s.Status == Active && s.ActedThisStreet {
			h.reraiseLocked[s.Position] = true
		}
	}
}

func (h *HandState) transparentStateFor(seat *Seat) TransparentState {
	views := make([]SeatView, len(h.Seats))
	for i, s := range h.Seats {
		views[i] = SeatView{
			Position:          s.Position,
			Stack:             s.Stack,
			Status:            s.Status,
			ContributedStreet: s.ContributedStreet,
			ContributedTotal:  s.ContributedTotal,
		}
	}
	pot := 0
	for _, s := range h.Seats {
		pot += s.ContributedTotal
	}

	return TransparentState{
		Street:     h.Street,
		Community:  append([]poker.Card{}, h.Community...),
		HoleCards:  seat.Hole,
		Seats:      views,
		CurrentBet: h.CurrentBet,
		MinRaise:   h.MinRaise,
		Button:     h.Seats[h.Button].Position,
		PotTotal:   pot,
		History:    h.Actions(),
	}
}
