// Package bots provides scripted game.Player implementations for
// demos, regression runs, and the simulator.
package bots

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/game"
)

// RandBot picks uniformly among the offered legal actions, and a
// uniform random amount within a sized action's bounds.
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
	name   string
}

// NewRandBot creates a RandBot driven by rng.
func NewRandBot(rng *rand.Rand, logger *log.Logger, name string) *RandBot {
	return &RandBot{rng: rng, logger: logger, name: name}
}

func (r *RandBot) Init(position, initialStack int) {
	if r.logger != nil {
		r.logger.Debug("bot seated", "bot", r.name, "position", position, "stack", initialStack)
	}
}

func (r *RandBot) Act(_ game.TransparentState, legal []game.LegalAction) (game.PlayerAction, error) {
	choice := legal[r.rng.Intn(len(legal))]
	amount := choice.Min
	if choice.Max > choice.Min {
		amount = choice.Min + r.rng.Intn(choice.Max-choice.Min+1)
	}
	return game.PlayerAction{Kind: legalToAction(choice.Kind), Amount: amount}, nil
}

// Name returns the bot's display name.
func (r *RandBot) Name() string { return r.name }

func (r *RandBot) Bust() {
	if r.logger != nil {
		r.logger.Debug("bot busted", "bot", r.name)
	}
}

func legalToAction(k game.LegalActionKind) game.ActionKind {
	switch k {
	case game.LegalFold:
		return game.Fold
	case game.LegalCheck:
		return game.Check
	case game.LegalCall:
		return game.Call
	case game.LegalBet:
		return game.Bet
	case game.LegalRaise:
		return game.Raise
	case game.LegalAllIn:
		return game.AllInAction
	default:
		return game.Fold
	}
}
