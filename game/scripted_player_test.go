package game

import "github.com/lox/holdem-engine/poker"

// scriptedPlayer is a deterministic test Player driven by a decide
// function that chooses among the offered legal actions.
type scriptedPlayer struct {
	position int
	decide   func(state TransparentState, legal []LegalAction) PlayerAction
	busted   bool
}

func (p *scriptedPlayer) Init(position, initialStack int) { p.position = position }

func (p *scriptedPlayer) Act(state TransparentState, legal []LegalAction) (PlayerAction, error) {
	return p.decide(state, legal), nil
}

func (p *scriptedPlayer) Bust() { p.busted = true }

// hasLegal reports whether legal contains the given kind, returning it.
func hasLegal(legal []LegalAction, kind LegalActionKind) (LegalAction, bool) {
	for _, la := range legal {
		if la.Kind == kind {
			return la, true
		}
	}
	return LegalAction{}, false
}

// foldToAnyBet always folds if facing a bet, else checks.
func foldToAnyBet(_ TransparentState, legal []LegalAction) PlayerAction {
	if _, ok := hasLegal(legal, LegalFold); ok {
		return PlayerAction{Kind: Fold}
	}
	return PlayerAction{Kind: Check}
}

// checkCallMinimum checks when free, otherwise calls (or goes all-in
// when the only option facing a bet is a short all-in call).
func checkCallMinimum(_ TransparentState, legal []LegalAction) PlayerAction {
	if _, ok := hasLegal(legal, LegalCheck); ok {
		return PlayerAction{Kind: Check}
	}
	if la, ok := hasLegal(legal, LegalCall); ok {
		return PlayerAction{Kind: Call, Amount: la.Min}
	}
	if la, ok := hasLegal(legal, LegalAllIn); ok {
		return PlayerAction{Kind: AllInAction, Amount: la.Min}
	}
	return PlayerAction{Kind: Fold}
}

// scriptedSeats builds n active seats, each stackSize chips, running
// decide as every seat's policy.
func scriptedSeats(n, stackSize int, decide func(TransparentState, []LegalAction) PlayerAction) []*Seat {
	stacks := make([]int, n)
	for i := range stacks {
		stacks[i] = stackSize
	}
	return scriptedSeatsWithStacks(stacks, decide)
}

// scriptedSeatsWithStacks builds seats with individually specified
// stacks, all sharing the same policy.
func scriptedSeatsWithStacks(stacks []int, decide func(TransparentState, []LegalAction) PlayerAction) []*Seat {
	seats := make([]*Seat, len(stacks))
	for i, stack := range stacks {
		p := &scriptedPlayer{decide: decide}
		p.Init(i, stack)
		seats[i] = &Seat{Position: i, Stack: stack, Status: Active, Player: p}
	}
	return seats
}

// fullDeck returns a standard 52-card deck ordered deterministically
// so hole/community cards are reproducible across a test run.
func fullDeck() *poker.Deck {
	return poker.NewStandardDeck()
}

// mustHandState panics on construction failure — only used by tests
// that have already validated their own inputs.
func mustHandState(seats []*Seat, button, sb, bb int, deck *poker.Deck, handNumber int) *HandState {
	h, err := NewHandState(seats, button, sb, bb, deck, handNumber)
	if err != nil {
		panic(err)
	}
	return h
}
