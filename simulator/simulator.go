// Package simulator runs many independent hands concurrently to
// gather aggregate statistics over a set of player policies. It is an
// external harness over the engine, not part of the engine itself —
// every hand it runs owns its own Table, seats, and deck, so workers
// never share mutable engine state.
package simulator

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-engine/game"
	"github.com/lox/holdem-engine/poker"
	"github.com/lox/holdem-engine/randutil"
)

// PlayerFactory builds one fresh game.Player for a new worker's table.
// Implementations must be safe to call concurrently; the returned
// Player is used by exactly one goroutine for exactly one hand.
type PlayerFactory func(rng *rand.Rand) game.Player

// Result is one worker's outcome for a single simulated hand.
type Result struct {
	// NetChips maps seat position to its stack delta over the hand.
	NetChips map[int]int
	// WentToShowdown is true if the hand reached Showdown rather than
	// ending by a sole survivor before the river.
	WentToShowdown bool
}

// Stats aggregates Results across every simulated hand.
type Stats struct {
	Hands          int
	ShowdownHands  int
	TotalNetChips  map[int]int
}

// Run plays n independent hands, one per worker up to the given
// concurrency limit, seeding each worker's RNG from seed so the whole
// run is reproducible for a fixed seed and concurrency value.
func Run(ctx context.Context, n, concurrency int, seed int64, factories []PlayerFactory, stackSize, bigBlind int) (Stats, error) {
	if concurrency <= 0 {
		concurrency = 1
	}
	// Derive per-worker seeds through randutil's PCG mixing rather than
	// handing out seed, seed+1, seed+2, ... directly, so adjacent
	// worker streams don't correlate.
	master := randutil.New(seed)
	results := make(chan Result, n)

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, concurrency)

	for i := 0; i < n; i++ {
		workerSeed := master.Int64()
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-gctx.Done():
				return gctx.Err()
			}

			r, err := runOneHand(workerSeed, factories, stackSize, bigBlind)
			if err != nil {
				return err
			}
			select {
			case results <- r:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}

	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	close(results)

	stats := Stats{TotalNetChips: make(map[int]int)}
	for r := range results {
		stats.Hands++
		if r.WentToShowdown {
			stats.ShowdownHands++
		}
		for pos, delta := range r.NetChips {
			stats.TotalNetChips[pos] += delta
		}
	}
	return stats, nil
}

func runOneHand(seed int64, factories []PlayerFactory, stackSize, bigBlind int) (Result, error) {
	rng := rand.New(rand.NewSource(seed))

	players := make([]game.Player, len(factories))
	for i, f := range factories {
		players[i] = f(rng)
	}

	table := game.NewTable(players, stackSize, bigBlind, nil, nil)
	startingStacks := make(map[int]int, len(table.Seats))
	for _, s := range table.Seats {
		startingStacks[s.Position] = s.Stack
	}

	deck := poker.NewStandardDeck()
	deck.Shuffle(rng)

	it, err := table.PlayOneRound(deck)
	if err != nil {
		return Result{}, err
	}
	if _, err := it.Run(); err != nil {
		return Result{}, err
	}

	net := make(map[int]int, len(table.Seats))
	for _, s := range it.Hand().Seats {
		net[s.Position] = s.Stack - startingStacks[s.Position]
	}

	return Result{NetChips: net, WentToShowdown: it.Hand().Street == game.Showdown}, nil
}
