package game

import (
	"fmt"

	"github.com/lox/holdem-engine/poker"
)

// ActionIterator is the lazy, pull-driven sequence of committed
// actions for one hand. Each call to Next performs exactly one
// logical step — the next betting decision or the next deal — and
// returns the action that resulted.
type ActionIterator struct {
	hand *HandState
}

// NewActionIterator wraps a freshly constructed HandState.
func NewActionIterator(hand *HandState) *ActionIterator {
	return &ActionIterator{hand: hand}
}

// Next advances the hand by one step. done is true once the hand has
// completed (its final Win emitted) or failed; in the latter case err
// is non-nil and the returned action is the zero value.
func (it *ActionIterator) Next() (PlayerAction, bool, error) {
	return it.hand.step()
}

// Actions returns every action committed so far this hand.
func (it *ActionIterator) Actions() []PlayerAction {
	return it.hand.Actions()
}

// Done reports whether the hand has reached its terminal state.
func (it *ActionIterator) Done() bool {
	return it.hand.Done()
}

// Hand exposes the underlying HandState for read-only inspection
// (e.g. building a TransparentState-like summary after the fact).
func (it *ActionIterator) Hand() *HandState {
	return it.hand
}

// Run drains the iterator to completion, returning every action
// emitted. A convenience for callers that don't need per-step
// suspension (tests, the demo CLI, the simulator).
func (it *ActionIterator) Run() ([]PlayerAction, error) {
	for {
		_, done, err := it.Next()
		if err != nil {
			return it.Actions(), err
		}
		if done {
			return it.Actions(), nil
		}
	}
}

// Abort stops the hand mid-iteration and returns all contributions
// collected so far to their originating seats, leaving the table as
// if the hand had never started — the documented cancellation policy
// from the concurrency & resource model.
func (it *ActionIterator) Abort() {
	h := it.hand
	if h.done {
		return
	}
	for _, s := range h.Seats {
		s.Stack += s.ContributedTotal
		s.ContributedTotal = 0
		s.ContributedStreet = 0
		if s.Status == AllIn {
			s.Status = Active
		}
	}
	h.done = true
}

// Replay re-drives a recorded action prefix against a fresh HandState
// built from the same seats, button, blinds and deck, asserting that
// every replayed decision matches the recorded one. It returns the
// reconstructed iterator positioned exactly after the prefix, ready
// to continue — the engine's restartability contract from spec
// §4.7/§8: replaying a prefix against the same Table + deck +
// (deterministic) policies reproduces an identical continuation.
func Replay(seats []*Seat, buttonIdx, smallBlind, bigBlind int, deck *poker.Deck, handNumber int, prefix []PlayerAction) (*ActionIterator, error) {
	hand, err := NewHandState(seats, buttonIdx, smallBlind, bigBlind, deck, handNumber)
	if err != nil {
		return nil, err
	}
	it := NewActionIterator(hand)

	for _, want := range prefix {
		got, done, err := it.Next()
		if err != nil {
			return it, err
		}
		if !actionsEqual(got, want) {
			return it, fmt.Errorf("game: replay diverged at action %d: got %+v, want %+v", len(it.Actions()), got, want)
		}
		if done {
			break
		}
	}
	return it, nil
}

// actionsEqual compares two PlayerActions field-by-field; PlayerAction
// holds a []poker.Card, which makes it non-comparable with ==.
func actionsEqual(a, b PlayerAction) bool {
	if a.Kind != b.Kind || a.Position != b.Position || a.Amount != b.Amount ||
		a.Street != b.Street || a.PotIndex != b.PotIndex || a.HoleCards != b.HoleCards {
		return false
	}
	if len(a.Community) != len(b.Community) {
		return false
	}
	for i := range a.Community {
		if a.Community[i] != b.Community[i] {
			return false
		}
	}
	return true
}
