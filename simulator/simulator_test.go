package simulator

import (
	"context"
	"math/rand"
	"testing"

	"github.com/lox/holdem-engine/bots"
	"github.com/lox/holdem-engine/game"
)

func randBotFactory(name string) PlayerFactory {
	return func(rng *rand.Rand) game.Player {
		return bots.NewRandBot(rng, nil, name)
	}
}

func TestRunAggregatesChipConservingHands(t *testing.T) {
	t.Parallel()

	factories := []PlayerFactory{
		randBotFactory("A"),
		randBotFactory("B"),
		randBotFactory("C"),
	}

	stats, err := Run(context.Background(), 20, 4, 1, factories, 200, 2)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if stats.Hands != 20 {
		t.Fatalf("expected 20 hands, got %d", stats.Hands)
	}

	total := 0
	for _, delta := range stats.TotalNetChips {
		total += delta
	}
	if total != 0 {
		t.Fatalf("expected zero-sum net chips across all hands, got %d", total)
	}
}

func TestRunIsDeterministicForFixedSeed(t *testing.T) {
	t.Parallel()

	factories := []PlayerFactory{
		randBotFactory("A"),
		randBotFactory("B"),
	}

	first, err := Run(context.Background(), 10, 1, 42, factories, 100, 2)
	if err != nil {
		t.Fatalf("first run returned error: %v", err)
	}
	second, err := Run(context.Background(), 10, 1, 42, factories, 100, 2)
	if err != nil {
		t.Fatalf("second run returned error: %v", err)
	}

	if first.Hands != second.Hands || first.ShowdownHands != second.ShowdownHands {
		t.Fatalf("expected identical aggregate stats for the same seed, got %+v vs %+v", first, second)
	}
	for pos, delta := range first.TotalNetChips {
		if second.TotalNetChips[pos] != delta {
			t.Fatalf("seat %d net chips diverged: %d vs %d", pos, delta, second.TotalNetChips[pos])
		}
	}
}

func TestRunRespectsContextCancellation(t *testing.T) {
	t.Parallel()

	factories := []PlayerFactory{
		randBotFactory("A"),
		randBotFactory("B"),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Run(ctx, 50, 1, 7, factories, 100, 2); err == nil {
		t.Fatal("expected cancellation error, got nil")
	}
}
