package poker

import "errors"

// ErrDeckExhausted is returned when a draw is attempted on an empty deck.
var ErrDeckExhausted = errors.New("poker: deck exhausted")

// ErrInvalidHand is returned when the evaluator is given malformed
// input, such as duplicate cards.
var ErrInvalidHand = errors.New("poker: invalid hand")
