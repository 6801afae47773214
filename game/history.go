package game

import (
	"fmt"
	"strings"

	"github.com/lox/holdem-engine/poker"
)

// PlayerSnapshot captures one seat's state at the start of a hand, for
// attribution in the hand history.
type PlayerSnapshot struct {
	Position  int
	Name      string
	Stack     int
	HoleCards [2]poker.Card
}

// WinnerInfo captures one seat's showdown result.
type WinnerInfo struct {
	Position int
	Amount   int
	HandRank poker.HandRank
}

// HandHistory renders a completed hand's committed action stream into
// a human-readable record, in the teacher's "*** STREET ***" hand
// history text format.
type HandHistory struct {
	HandNumber int
	SmallBlind int
	BigBlind   int
	Button     int
	Players    []PlayerSnapshot
	Actions    []PlayerAction
	Community  []poker.Card
	Winners    []WinnerInfo
}

// NewHandHistory builds a HandHistory from a completed hand's seats
// and committed action stream. names may be nil, in which case seats
// are labelled "Seat N".
func NewHandHistory(hand *HandState, names map[int]string) *HandHistory {
	actions := hand.Actions()
	players := make([]PlayerSnapshot, len(hand.Seats))
	for i, s := range hand.Seats {
		// Recover the start-of-hand stack: add back what the seat put in
		// on each street and take off what it won.
		stack, putIn := s.Stack, map[Street]int{}
		for _, a := range actions {
			switch {
			case a.Position != s.Position:
			case a.Kind == Win:
				stack -= a.Amount
			case a.Kind == Bet || a.Kind == Raise || a.Kind == AllInAction:
				putIn[a.Street] = a.Amount
			case a.Kind == PostSmallBlind || a.Kind == PostBigBlind || a.Kind == Call:
				putIn[a.Street] += a.Amount
			}
		}
		for _, amt := range putIn {
			stack += amt
		}
		players[i] = PlayerSnapshot{
			Position:  s.Position,
			Name:      seatName(s.Position, names),
			Stack:     stack,
			HoleCards: s.Hole,
		}
	}
	return &HandHistory{
		HandNumber: hand.handNumber,
		SmallBlind: hand.SmallBlind,
		BigBlind:   hand.BigBlind,
		Button:     hand.Seats[hand.Button].Position,
		Players:    players,
		Actions:    actions,
		Community:  append([]poker.Card{}, hand.Community...),
		Winners:    winnersFromActions(hand, actions),
	}
}

// winnersFromActions derives WinnerInfo from the hand's committed Win
// events, attaching the winner's evaluated HandRank when the hand
// reached a 5-card board (sole-survivor wins have no showdown hand to
// rank).
func winnersFromActions(hand *HandState, actions []PlayerAction) []WinnerInfo {
	var winners []WinnerInfo
	for _, a := range actions {
		if a.Kind != Win {
			continue
		}
		info := WinnerInfo{Position: a.Position, Amount: a.Amount}
		if s := hand.seatByPosition(a.Position); s != nil && len(hand.Community) == 5 {
			cards := append([]poker.Card{s.Hole[0], s.Hole[1]}, hand.Community...)
			if hr, err := poker.Evaluate7(cards); err == nil {
				info.HandRank = hr
			}
		}
		winners = append(winners, info)
	}
	return winners
}

func seatName(position int, names map[int]string) string {
	if name, ok := names[position]; ok {
		return name
	}
	return fmt.Sprintf("Seat %d", position)
}

func (hh *HandHistory) nameOf(position int) string {
	for _, p := range hh.Players {
		if p.Position == position {
			return p.Name
		}
	}
	return fmt.Sprintf("Seat %d", position)
}

// String renders the full hand history text, grouped by street with a
// board line at each new street and a closing summary section.
func (hh *HandHistory) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== HAND %d ===\n", hh.HandNumber)
	fmt.Fprintf(&b, "Blinds: %d/%d\n", hh.SmallBlind, hh.BigBlind)
	fmt.Fprintf(&b, "Players: %d\n\n", len(hh.Players))

	b.WriteString("STARTING STACKS:\n")
	for _, p := range hh.Players {
		marker := ""
		if p.Position == hh.Button {
			marker = " [D]"
		}
		fmt.Fprintf(&b, "%s: %d chips%s\n", p.Name, p.Stack, marker)
	}
	b.WriteString("\n")

	var board []poker.Card
	shown := map[Street]bool{}
	for _, a := range hh.Actions {
		if a.Kind == DealHole {
			continue
		}
		if !shown[a.Street] {
			hh.writeStreetHeader(&b, a.Street, &board)
			shown[a.Street] = true
		}
		hh.writeAction(&b, a)
	}

	b.WriteString("\n")
	b.WriteString(hh.summary())
	b.WriteString("=== END HAND ===\n")
	return b.String()
}

func (hh *HandHistory) writeStreetHeader(b *strings.Builder, street Street, board *[]poker.Card) {
	switch street {
	case PreFlop:
		b.WriteString("*** PRE-FLOP ***\n")
	case Flop:
		*board = append(*board, hh.Community[:min(3, len(hh.Community))]...)
		fmt.Fprintf(b, "\n*** FLOP *** %s\n", cardsString(*board))
	case Turn:
		if len(hh.Community) >= 4 {
			*board = hh.Community[:4]
		}
		fmt.Fprintf(b, "\n*** TURN *** %s\n", cardsString(*board))
	case River:
		*board = hh.Community
		fmt.Fprintf(b, "\n*** RIVER *** %s\n", cardsString(*board))
	case Showdown:
		b.WriteString("\n*** SHOWDOWN ***\n")
	}
}

func (hh *HandHistory) writeAction(b *strings.Builder, a PlayerAction) {
	name := hh.nameOf(a.Position)
	switch a.Kind {
	case PostSmallBlind:
		fmt.Fprintf(b, "%s: posts small blind %d\n", name, a.Amount)
	case PostBigBlind:
		fmt.Fprintf(b, "%s: posts big blind %d\n", name, a.Amount)
	case Fold:
		fmt.Fprintf(b, "%s: folds\n", name)
	case Check:
		fmt.Fprintf(b, "%s: checks\n", name)
	case Call:
		fmt.Fprintf(b, "%s: calls %d\n", name, a.Amount)
	case Bet:
		fmt.Fprintf(b, "%s: bets %d\n", name, a.Amount)
	case Raise:
		fmt.Fprintf(b, "%s: raises to %d\n", name, a.Amount)
	case AllInAction:
		fmt.Fprintf(b, "%s: goes all-in for %d\n", name, a.Amount)
	case DealCommunity:
		// already rendered by the street header
	case Win:
		fmt.Fprintf(b, "%s: wins %d (pot %d)\n", name, a.Amount, a.PotIndex)
	}
}

func (hh *HandHistory) summary() string {
	var b strings.Builder
	b.WriteString("*** SUMMARY ***\n")
	if len(hh.Community) > 0 {
		fmt.Fprintf(&b, "Board [%s]\n", cardsString(hh.Community))
	}
	for _, p := range hh.Players {
		fmt.Fprintf(&b, "%s:", p.Name)
		for _, w := range hh.Winners {
			if w.Position == p.Position {
				fmt.Fprintf(&b, " won %d", w.Amount)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func cardsString(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
