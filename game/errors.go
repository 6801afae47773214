package game

import "errors"

// ErrDeckExhausted is returned when the supplied deck lacks the cards
// required to complete a hand.
var ErrDeckExhausted = errors.New("game: deck exhausted")

// ErrIllegalPlayerAction is returned when a Player returns an action
// outside the offered legal set, or violating its numeric bounds.
var ErrIllegalPlayerAction = errors.New("game: illegal player action")

// ErrInvalidHand is returned when the evaluator is handed malformed
// input; it indicates an engine bug, not player misbehavior.
var ErrInvalidHand = errors.New("game: invalid hand")

// ErrInsufficientSeats is returned when fewer than two non-busted
// seats are present at hand start.
var ErrInsufficientSeats = errors.New("game: insufficient seats to start a hand")

// ErrChipUnderflow is returned by moveChipsIn when a seat's stack
// cannot cover the amount being moved into the pot; chip counts are
// modeled as plain int, which won't wrap at table-stakes magnitudes,
// but a bug that tries to subtract past zero should fail loudly
// rather than silently produce a negative stack.
var ErrChipUnderflow = errors.New("game: chip arithmetic underflow")
