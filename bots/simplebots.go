package bots

import "github.com/lox/holdem-engine/game"

// FoldBot folds whenever it faces a bet and checks otherwise — used
// to script the heads-up walk boundary scenario and as a weak
// baseline opponent.
type FoldBot struct{ name string }

// NewFoldBot creates a FoldBot.
func NewFoldBot(name string) *FoldBot { return &FoldBot{name: name} }

func (FoldBot) Init(position, initialStack int) {}

func (FoldBot) Act(_ game.TransparentState, legal []game.LegalAction) (game.PlayerAction, error) {
	if la, ok := hasLegalKind(legal, game.LegalFold); ok {
		return game.PlayerAction{Kind: legalToAction(la.Kind)}, nil
	}
	return game.PlayerAction{Kind: game.Check}, nil
}

// Name returns the bot's display name.
func (f *FoldBot) Name() string { return f.name }

func (FoldBot) Bust() {}

// CallBot checks or calls the minimum and never folds or raises —
// used to script the check-down-to-showdown boundary scenario.
type CallBot struct{ name string }

// NewCallBot creates a CallBot.
func NewCallBot(name string) *CallBot { return &CallBot{name: name} }

func (CallBot) Init(position, initialStack int) {}

func (CallBot) Act(_ game.TransparentState, legal []game.LegalAction) (game.PlayerAction, error) {
	if la, ok := hasLegalKind(legal, game.LegalCheck); ok {
		return game.PlayerAction{Kind: legalToAction(la.Kind)}, nil
	}
	if la, ok := hasLegalKind(legal, game.LegalCall); ok {
		return game.PlayerAction{Kind: legalToAction(la.Kind), Amount: la.Min}, nil
	}
	if la, ok := hasLegalKind(legal, game.LegalAllIn); ok {
		return game.PlayerAction{Kind: legalToAction(la.Kind), Amount: la.Min}, nil
	}
	return game.PlayerAction{Kind: game.Fold}, nil
}

// Name returns the bot's display name.
func (c *CallBot) Name() string { return c.name }

func (CallBot) Bust() {}
