package game

import "sort"

// Pot is one layer of the showdown payout structure: an amount and
// the set of seat positions eligible to win it. Eligible is always
// sorted ascending so iteration order never leaks nondeterminism.
type Pot struct {
	Amount   int
	Eligible []int
}

// contribution is one seat's input to BuildPots.
type contribution struct {
	Position int
	Amount   int
	Folded   bool
}

// BuildPots constructs the ordered list of pots (main pot first, then
// side pots) from each seat's total contribution this hand.
//
// Distinct contribution levels among non-folded seats c1 < c2 < ... <
// ck each form a band; a band's pot is (ci - ci-1) times the number
// of non-folded seats whose contribution reaches ci, and is eligible
// to exactly those seats. A folded seat's contribution is not a
// boundary: its chips are folded into whichever bands they span,
// bottom-up, exactly as if the seat had not folded, but without
// adding it to any pot's eligible set.
func BuildPots(contributions map[int]int, folded map[int]bool) []Pot {
	var entries []contribution
	for pos, amt := range contributions {
		if amt == 0 {
			continue
		}
		entries = append(entries, contribution{Position: pos, Amount: amt, Folded: folded[pos]})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Position < entries[j].Position })

	levelSet := make(map[int]bool)
	for _, e := range entries {
		if !e.Folded {
			levelSet[e.Amount] = true
		}
	}
	if len(levelSet) == 0 {
		return nil
	}
	levels := make([]int, 0, len(levelSet))
	for lvl := range levelSet {
		levels = append(levels, lvl)
	}
	sort.Ints(levels)

	pots := make([]Pot, 0, len(levels))
	prev := 0
	for _, lvl := range levels {
		width := lvl - prev
		var eligible []int
		for _, e := range entries {
			if !e.Folded && e.Amount >= lvl {
				eligible = append(eligible, e.Position)
			}
		}
		sort.Ints(eligible)

		amount := width * len(eligible)
		for _, e := range entries {
			amount += bandContribution(e, prev, lvl)
		}

		if amount > 0 {
			pots = append(pots, Pot{Amount: amount, Eligible: eligible})
		}
		prev = lvl
	}
	return pots
}

// bandContribution returns how much of a folded seat's contribution
// falls in the half-open band (prev, lvl]. Non-folded seats are
// already counted via width*len(eligible) in BuildPots, so only
// folded seats contribute here.
func bandContribution(e contribution, prev, lvl int) int {
	if !e.Folded {
		return 0
	}
	if e.Amount <= prev {
		return 0
	}
	upper := e.Amount
	if upper > lvl {
		upper = lvl
	}
	return upper - prev
}

// AwardPots resolves every pot in order (main pot first), evaluating
// the given eligible, non-folded seats' best hand and splitting ties
// with any indivisible remainder distributed one chip at a time
// starting from the tied winner seated first left of the button.
//
// rank is called once per eligible position to obtain its showdown
// hand strength; higher values win, per poker.HandRank's ordering.
func AwardPots(pots []Pot, button int, seatCount int, rank func(position int) (handRank int64, ok bool)) map[int]int {
	winnings := make(map[int]int)
	for potIdx, pot := range pots {
		best := int64(-1)
		var winners []int
		for _, pos := range pot.Eligible {
			hr, ok := rank(pos)
			if !ok {
				continue
			}
			switch {
			case hr > best:
				best = hr
				winners = []int{pos}
			case hr == best:
				winners = append(winners, pos)
			}
		}
		if len(winners) == 0 {
			continue
		}
		sort.Ints(winners)

		share := pot.Amount / len(winners)
		remainder := pot.Amount % len(winners)

		ordered := orderLeftOfButton(winners, button, seatCount)
		for i, pos := range ordered {
			amt := share
			if i < remainder {
				amt++
			}
			winnings[pos] += amt
		}
		_ = potIdx
	}
	return winnings
}

// orderLeftOfButton returns positions reordered to start with the one
// seated first clockwise of the button.
func orderLeftOfButton(positions []int, button, seatCount int) []int {
	ordered := make([]int, len(positions))
	copy(ordered, positions)
	sort.Slice(ordered, func(i, j int) bool {
		di := (ordered[i] - button - 1 + seatCount) % seatCount
		dj := (ordered[j] - button - 1 + seatCount) % seatCount
		return di < dj
	})
	return ordered
}
