package poker

import "testing"

func TestEvaluate7Categories(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		hand string
		want HandRank
	}{
		{"straight flush", "AsKsQsJsTs2c3d", StraightFlush},
		{"wheel straight flush", "5s4s3s2sAs9c2d", StraightFlush},
		{"four of a kind", "AsAdAhAcKs2c3d", FourOfAKind},
		{"full house", "AsAdAhKsKd2c3d", FullHouse},
		{"flush", "As9s7s4s2sKcQd", Flush},
		{"straight", "AsKdQhJcTs2c3d", Straight},
		{"wheel straight", "5s4d3h2cAs9c7d", Straight},
		{"three of a kind", "AsAdAhKsQd2c3d", ThreeOfAKind},
		{"two pair", "AsAdKhKcQd2c3d", TwoPair},
		{"one pair", "AsAdKhQcJd2c3d", OnePair},
		{"high card", "AsKdQhJc9s7c2d", HighCard},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cards := MustParseHand(tc.hand)
			hr, err := Evaluate7(cards)
			if err != nil {
				t.Fatalf("Evaluate7 returned error: %v", err)
			}
			if hr.Category() != tc.want {
				t.Errorf("Evaluate7(%s) category = %s, want %s", tc.hand, hr, tc.want.String())
			}
		})
	}
}

func TestEvaluate7TotalOrderAcrossCategories(t *testing.T) {
	t.Parallel()
	ascending := []string{
		"2s3d4h7h9dJc5c", // high card, jack high
		"AsAd2h3c4d8h9s", // one pair of aces
		"AsAd2h2c4d8h9s", // two pair, aces and twos
		"AsAdAh2c4d8h9s", // trip aces
		"2s3d4h5c6hAsKd", // six-high straight
		"2s4s6s8sTsAdKh", // flush
		"AsAdAh2c2d8h9s", // full house, aces over twos
		"AsAdAhAc2d8h9s", // quad aces
		"2s3s4s5sAs9d8h", // wheel straight flush, weakest possible straight flush
	}
	var prev HandRank
	for i, h := range ascending {
		hr, err := Evaluate7(MustParseHand(h))
		if err != nil {
			t.Fatalf("Evaluate7(%s) returned error: %v", h, err)
		}
		if i > 0 && hr <= prev {
			t.Errorf("entry %d (%s, %s) does not outrank entry %d (%s, %s)", i, h, hr, i-1, ascending[i-1], prev)
		}
		prev = hr
	}
}

func TestEvaluate7KickersBreakTies(t *testing.T) {
	t.Parallel()
	strong, err := Evaluate7(MustParseHand("AsAdKhQcJd9c2d"))
	if err != nil {
		t.Fatal(err)
	}
	weak, err := Evaluate7(MustParseHand("AsAdKhQc9d7c2d"))
	if err != nil {
		t.Fatal(err)
	}
	if CompareHands(strong, weak) != 1 {
		t.Errorf("expected better kicker hand to win: strong=%v weak=%v", strong, weak)
	}
}

func TestEvaluate7IdenticalHandsTie(t *testing.T) {
	t.Parallel()
	a, err := Evaluate7(MustParseHand("AsAdKhQcJd9c2d"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Evaluate7(MustParseHand("AhAcKsQdJh9s2h"))
	if err != nil {
		t.Fatal(err)
	}
	if CompareHands(a, b) != 0 {
		t.Errorf("equivalent hands of different suits should tie, got a=%v b=%v", a, b)
	}
}

func TestEvaluate7WheelDoesNotWrapToRoyal(t *testing.T) {
	t.Parallel()
	wheel, err := Evaluate7(MustParseHand("As2s3s4s5s9d7h"))
	if err != nil {
		t.Fatal(err)
	}
	if wheel.Category() != StraightFlush {
		t.Fatalf("expected wheel to be a straight flush, got %s", wheel)
	}
	broadway, err := Evaluate7(MustParseHand("TsJsQsKsAs2d3h"))
	if err != nil {
		t.Fatal(err)
	}
	if CompareHands(broadway, wheel) != 1 {
		t.Errorf("broadway straight flush must outrank the wheel")
	}

	// K-A-2-3-4 must never be read as a straight: ace cannot wrap.
	noWrap, err := Evaluate7(MustParseHand("KsAh2d3c4h9c7d"))
	if err != nil {
		t.Fatal(err)
	}
	if noWrap.Category() >= Straight {
		t.Errorf("K-A-2-3-4 must not be read as a straight, got %s", noWrap)
	}
}

func TestEvaluate7RejectsWrongCardCount(t *testing.T) {
	t.Parallel()
	if _, err := Evaluate7(MustParseHand("AsKsQsJsTs9s")); err == nil {
		t.Error("expected error for 6-card input")
	}
}

func TestEvaluate7RejectsDuplicateCards(t *testing.T) {
	t.Parallel()
	if _, err := Evaluate7(MustParseHand("AsAsKdQhJc9s2d")); err == nil {
		t.Error("expected error for duplicate card input")
	}
}
