package poker

import (
	"math/rand"
	"testing"
)

func TestNewStandardDeckHas52UniqueCards(t *testing.T) {
	t.Parallel()
	d := NewStandardDeck()
	if d.Remaining() != 52 {
		t.Fatalf("Remaining() = %d, want 52", d.Remaining())
	}

	seen := make(map[Card]bool, 52)
	for d.Remaining() > 0 {
		c, err := d.Draw()
		if err != nil {
			t.Fatalf("Draw returned error: %v", err)
		}
		if seen[c] {
			t.Errorf("duplicate card drawn: %s", c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Errorf("drew %d unique cards, want 52", len(seen))
	}
}

func TestDeckDrawExhausted(t *testing.T) {
	t.Parallel()
	d := NewDeck([]Card{NewCard(Ace, Spades)})
	if _, err := d.Draw(); err != nil {
		t.Fatalf("first draw: unexpected error %v", err)
	}
	if _, err := d.Draw(); err != ErrDeckExhausted {
		t.Errorf("draw on empty deck = %v, want %v", err, ErrDeckExhausted)
	}
}

func TestDeckShuffleIsDeterministicForFixedSeed(t *testing.T) {
	t.Parallel()
	a := NewStandardDeck()
	b := NewStandardDeck()

	a.Shuffle(rand.New(rand.NewSource(7)))
	b.Shuffle(rand.New(rand.NewSource(7)))

	for a.Remaining() > 0 {
		ca, _ := a.Draw()
		cb, _ := b.Draw()
		if ca != cb {
			t.Fatalf("shuffles with identical seed diverged: %s != %s", ca, cb)
		}
	}
}

func TestNewDeckCopiesInput(t *testing.T) {
	t.Parallel()
	src := []Card{NewCard(Two, Clubs), NewCard(Three, Clubs)}
	d := NewDeck(src)
	src[0] = NewCard(Ace, Spades)

	c, err := d.Draw()
	if err != nil {
		t.Fatalf("Draw returned error: %v", err)
	}
	if c != NewCard(Two, Clubs) {
		t.Errorf("NewDeck aliased caller's slice: got %s, want 2c", c)
	}
}
