package bots

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/game"
	"github.com/lox/holdem-engine/poker"
)

// TAGBot raises (or bets) preflop with Premium or Strong hole cards;
// otherwise it checks when free and, facing a bet, calls 30% of the
// time and folds the rest. It never bets or raises without such a
// hand — the same shape as the teacher's TAGBot, generalized from
// hardcoded rank thresholds to CategorizeHoleCards.
type TAGBot struct {
	rng    *rand.Rand
	logger *log.Logger
	name   string
}

// NewTAGBot creates a TAGBot driven by rng.
func NewTAGBot(rng *rand.Rand, logger *log.Logger, name string) *TAGBot {
	return &TAGBot{rng: rng, logger: logger, name: name}
}

func (t *TAGBot) Init(position, initialStack int) {
	if t.logger != nil {
		t.logger.Debug("bot seated", "bot", t.name, "position", position, "stack", initialStack)
	}
}

func (t *TAGBot) Act(state game.TransparentState, legal []game.LegalAction) (game.PlayerAction, error) {
	if state.Street == game.PreFlop {
		category := poker.CategorizeHoleCards(state.HoleCards[0], state.HoleCards[1])
		if category == poker.CategoryPremium || category == poker.CategoryStrong {
			if la, ok := raiseOrBet(legal); ok {
				amount := la.Min + (la.Max-la.Min)/4
				return game.PlayerAction{Kind: legalToAction(la.Kind), Amount: amount}, nil
			}
		}
	}

	if la, ok := hasLegalKind(legal, game.LegalCheck); ok {
		return game.PlayerAction{Kind: legalToAction(la.Kind)}, nil
	}

	if t.rng.Float64() < 0.3 {
		if la, ok := hasLegalKind(legal, game.LegalCall); ok {
			return game.PlayerAction{Kind: legalToAction(la.Kind), Amount: la.Min}, nil
		}
	}

	if la, ok := hasLegalKind(legal, game.LegalFold); ok {
		return game.PlayerAction{Kind: legalToAction(la.Kind)}, nil
	}
	// Fold is never offered facing a free action; fall back to check.
	return game.PlayerAction{Kind: game.Check}, nil
}

// Name returns the bot's display name.
func (t *TAGBot) Name() string { return t.name }

func (t *TAGBot) Bust() {
	if t.logger != nil {
		t.logger.Debug("bot busted", "bot", t.name)
	}
}

func raiseOrBet(legal []game.LegalAction) (game.LegalAction, bool) {
	if la, ok := hasLegalKind(legal, game.LegalRaise); ok {
		return la, true
	}
	if la, ok := hasLegalKind(legal, game.LegalBet); ok {
		return la, true
	}
	return game.LegalAction{}, false
}

func hasLegalKind(legal []game.LegalAction, kind game.LegalActionKind) (game.LegalAction, bool) {
	for _, la := range legal {
		if la.Kind == kind {
			return la, true
		}
	}
	return game.LegalAction{}, false
}
