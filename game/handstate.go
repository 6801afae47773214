package game

import (
	"fmt"

	"github.com/lox/holdem-engine/poker"
)

type phase int

const (
	phaseSetup phase = iota
	phaseDealHole
	phaseBetting
	phaseDealCommunity
	phaseShowdown
	phaseDrainWins
	phaseDone
)

// winEvent is one queued Win emission; showdown pots can produce
// several (one per pot, possibly split between tied winners), but
// the action stream emits exactly one PlayerAction per Next call.
type winEvent struct {
	pos, potIdx, amt int
}

// HandState drives one hand from blinds to showdown as an explicit,
// resumable step machine: every exported mutation happens inside
// step (driven by ActionIterator.Next), so a caller holding the initial Seats snapshot, the Deck, and
// the emitted PlayerAction slice can reconstruct identical subsequent
// state by replaying those actions (see Replay).
type HandState struct {
	Seats      []*Seat
	Button     int // index into Seats
	SmallBlind int
	BigBlind   int
	Deck       *poker.Deck

	Street     Street
	Community  []poker.Card
	CurrentBet int
	MinRaise   int

	actingIdx     int
	reraiseLocked map[int]bool // seat Position -> forbidden from raising until reopened

	phase     phase
	setupStep int
	dealIdx   int
	dealPass  int

	actions     []PlayerAction
	pots        []Pot
	pendingWins []winEvent

	handNumber int
	done       bool
	err        error
}

// NewHandState begins a new hand for the given seats (already
// rotated to this hand's button by the caller's Table). Seats with a
// zero stack must not be included.
func NewHandState(seats []*Seat, buttonIdx, smallBlind, bigBlind int, deck *poker.Deck, handNumber int) (*HandState, error) {
	active := 0
	for _, s := range seats {
		if s.Status != Busted {
			active++
		}
	}
	if active < 2 {
		return nil, ErrInsufficientSeats
	}

	for _, s := range seats {
		s.Hole = [2]poker.Card{}
		s.ContributedTotal = 0
		s.ContributedStreet = 0
		s.ActedThisStreet = false
		if s.Status != Busted {
			s.Status = Active
		}
	}

	return &HandState{
		Seats:         seats,
		Button:        buttonIdx,
		SmallBlind:    smallBlind,
		BigBlind:      bigBlind,
		Deck:          deck,
		Street:        PreFlop,
		CurrentBet:    0,
		MinRaise:      bigBlind,
		reraiseLocked: make(map[int]bool),
		phase:         phaseSetup,
		handNumber:    handNumber,
	}, nil
}

// Actions returns everything committed so far this hand.
func (h *HandState) Actions() []PlayerAction {
	out := make([]PlayerAction, len(h.actions))
	copy(out, h.actions)
	return out
}

// Done reports whether the hand has reached its final Win event.
func (h *HandState) Done() bool { return h.done }

func (h *HandState) emit(a PlayerAction) PlayerAction {
	h.actions = append(h.actions, a)
	return a
}

func (h *HandState) fail(err error) (PlayerAction, bool, error) {
	h.done = true
	h.err = err
	return PlayerAction{}, true, err
}

func (h *HandState) seatByPosition(pos int) *Seat {
	for _, s := range h.Seats {
		if s.Position == pos {
			return s
		}
	}
	return nil
}

func (h *HandState) nonFoldedCount() int {
	n := 0
	for _, s := range h.Seats {
		if s.Status != Folded && s.Status != Busted {
			n++
		}
	}
	return n
}

func (h *HandState) soleSurvivor() (*Seat, bool) {
	var survivor *Seat
	for _, s := range h.Seats {
		if s.Status != Folded && s.Status != Busted {
			if survivor != nil {
				return nil, false
			}
			survivor = s
		}
	}
	return survivor, survivor != nil
}

// step advances the hand by exactly one logical unit and returns the
// single committed action that resulted (or done=true on the final
// Win or on a terminal error).
func (h *HandState) step() (PlayerAction, bool, error) {
	if h.done {
		return PlayerAction{}, true, h.err
	}

	if _, ok := h.soleSurvivor(); ok && h.phase != phaseSetup && h.phase != phaseDealHole {
		return h.stepAwardSoleSurvivor()
	}

	switch h.phase {
	case phaseSetup:
		return h.stepSetup()
	case phaseDealHole:
		return h.stepDealHole()
	case phaseBetting:
		return h.stepBetting()
	case phaseDealCommunity:
		return h.stepDealCommunity()
	case phaseShowdown:
		return h.stepShowdown()
	case phaseDrainWins:
		return h.stepDrainWins()
	default:
		return h.fail(fmt.Errorf("game: unknown phase %d", h.phase))
	}
}

func (h *HandState) stepSetup() (PlayerAction, bool, error) {
	n := len(h.Seats)
	sbIdx := h.Button
	if n > 2 {
		sbIdx = (h.Button + 1) % n
	}
	bbIdx := (sbIdx + 1) % n

	switch h.setupStep {
	case 0:
		h.setupStep = 1
		return h.postBlind(sbIdx, h.SmallBlind, PostSmallBlind)
	case 1:
		h.setupStep = 2
		h.actingIdx = (bbIdx + 1) % n
		return h.postBlind(bbIdx, h.BigBlind, PostBigBlind)
	default:
		h.phase = phaseDealHole
		return h.step()
	}
}

func (h *HandState) postBlind(idx, size int, kind ActionKind) (PlayerAction, bool, error) {
	s := h.Seats[idx]
	amt := size
	if amt > s.Stack {
		amt = s.Stack
	}
	s.Stack -= amt
	s.ContributedStreet += amt
	s.ContributedTotal += amt
	if s.Stack == 0 {
		s.Status = AllIn
	}
	if amt > h.CurrentBet {
		h.CurrentBet = amt
	}
	return h.emit(PlayerAction{Kind: kind, Position: s.Position, Amount: amt, Street: h.Street}), false, nil
}

func (h *HandState) stepDealHole() (PlayerAction, bool, error) {
	n := len(h.Seats)
	if h.dealPass >= 2 {
		h.phase = phaseBetting
		h.CurrentBet = h.BigBlind
		h.MinRaise = h.BigBlind
		return h.step()
	}

	idx := (h.Button + 1 + h.dealIdx) % n
	s := h.Seats[idx]
	h.dealIdx++
	if h.dealIdx >= n {
		h.dealIdx = 0
		h.dealPass++
	}
	if s.Status == Busted {
		return h.step()
	}

	c, err := h.Deck.Draw()
	if err != nil {
		return h.fail(ErrDeckExhausted)
	}
	pass := 0
	if s.Hole[0] != (poker.Card{}) {
		pass = 1
	}
	s.Hole[pass] = c

	hole := s.Hole
	if pass == 0 {
		hole = [2]poker.Card{c}
	}
	return h.emit(PlayerAction{Kind: DealHole, Position: s.Position, Street: h.Street, HoleCards: hole}), false, nil
}

// actingSeat returns the seat currently on the clock.
func (h *HandState) actingSeat() *Seat {
	return h.Seats[h.actingIdx]
}

func (h *HandState) streetComplete() bool {
	for _, s := range h.Seats {
		if s.Status == Active && (!s.ActedThisStreet || s.ContributedStreet != h.CurrentBet) {
			return false
		}
	}
	return true
}

func (h *HandState) findNextActor(after int) (int, bool) {
	n := len(h.Seats)
	for i := 1; i <= n; i++ {
		idx := (after + i) % n
		if h.Seats[idx].Status == Active {
			return idx, true
		}
	}
	return 0, false
}

func (h *HandState) stepBetting() (PlayerAction, bool, error) {
	if h.streetComplete() {
		return h.advanceStreet()
	}
	if h.Seats[h.actingIdx].Status != Active {
		next, ok := h.findNextActor(h.actingIdx)
		if !ok {
			return h.advanceStreet()
		}
		h.actingIdx = next
	}

	seat := h.actingSeat()
	legal := h.LegalActions()

	state := h.transparentStateFor(seat)
	action, err := seat.Player.Act(state, legal)
	if err != nil {
		return h.fail(err)
	}
	if err := validateAction(legal, action); err != nil {
		return h.fail(fmt.Errorf("%w: %v", ErrIllegalPlayerAction, err))
	}

	committed, err := h.applyAction(seat, action)
	if err != nil {
		return h.fail(err)
	}

	if _, ok := h.soleSurvivor(); ok {
		return h.emit(committed), false, nil
	}

	if h.streetComplete() {
		return h.emit(committed), false, nil
	}
	next, ok := h.findNextActor(h.actingIdx)
	if ok {
		h.actingIdx = next
	}
	return h.emit(committed), false, nil
}

func (h *HandState) advanceStreet() (PlayerAction, bool, error) {
	if h.Street == River {
		h.phase = phaseShowdown
	} else {
		h.phase = phaseDealCommunity
	}
	return h.step()
}

func (h *HandState) stepDealCommunity() (PlayerAction, bool, error) {
	var n int
	switch h.Street {
	case PreFlop:
		n = 3
	case Flop, Turn:
		n = 1
	default:
		h.phase = phaseShowdown
		return h.step()
	}

	if _, err := h.Deck.Draw(); err != nil { // burn
		return h.fail(ErrDeckExhausted)
	}
	dealt := make([]poker.Card, 0, n)
	for i := 0; i < n; i++ {
		c, err := h.Deck.Draw()
		if err != nil {
			return h.fail(ErrDeckExhausted)
		}
		dealt = append(dealt, c)
	}
	h.Community = append(h.Community, dealt...)

	switch h.Street {
	case PreFlop:
		h.Street = Flop
	case Flop:
		h.Street = Turn
	case Turn:
		h.Street = River
	}

	h.startBettingRound()

	return h.emit(PlayerAction{Kind: DealCommunity, Position: -1, Street: h.Street, Community: dealt}), false, nil
}

func (h *HandState) startBettingRound() {
	h.CurrentBet = 0
	h.MinRaise = h.BigBlind
	h.reraiseLocked = make(map[int]bool)
	for _, s := range h.Seats {
		s.ContributedStreet = 0
		s.ActedThisStreet = false
	}

	anyoneCanAct := false
	for _, s := range h.Seats {
		if s.Status == Active {
			anyoneCanAct = true
			break
		}
	}
	if !anyoneCanAct {
		h.phase = phaseDealCommunity
		return
	}

	h.phase = phaseBetting
	if next, ok := h.findNextActor(h.Button); ok {
		h.actingIdx = next
	}
}

func (h *HandState) stepAwardSoleSurvivor() (PlayerAction, bool, error) {
	survivor, ok := h.soleSurvivor()
	if !ok {
		return h.fail(fmt.Errorf("game: stepAwardSoleSurvivor called without a sole survivor"))
	}
	contributions := make(map[int]int, len(h.Seats))
	folded := make(map[int]bool, len(h.Seats))
	for _, s := range h.Seats {
		contributions[s.Position] = s.ContributedTotal
		folded[s.Position] = s.Status == Folded
	}
	h.pots = BuildPots(contributions, folded)

	total := 0
	for _, p := range h.pots {
		total += p.Amount
	}
	survivor.Stack += total
	for _, s := range h.Seats {
		s.ContributedTotal = 0
	}
	h.phase = phaseDone
	h.done = true
	return h.emit(PlayerAction{Kind: Win, Position: survivor.Position, Amount: total, Street: Showdown, PotIndex: 0}), true, nil
}

func (h *HandState) stepShowdown() (PlayerAction, bool, error) {
	h.Street = Showdown
	contributions := make(map[int]int, len(h.Seats))
	folded := make(map[int]bool, len(h.Seats))
	for _, s := range h.Seats {
		contributions[s.Position] = s.ContributedTotal
		folded[s.Position] = s.Status == Folded
	}
	if h.pots == nil {
		h.pots = BuildPots(contributions, folded)
	}

	var community [5]poker.Card
	copy(community[:], h.Community)

	var evalErr error
	rank := func(pos int) (int64, bool) {
		s := h.seatByPosition(pos)
		if s == nil || s.Status == Folded {
			return 0, false
		}
		cards := append([]poker.Card{s.Hole[0], s.Hole[1]}, h.Community...)
		hr, err := poker.Evaluate7(cards)
		if err != nil {
			evalErr = err
			return 0, false
		}
		return int64(hr), true
	}

	if len(h.pots) == 0 {
		h.done = true
		h.phase = phaseDone
		return PlayerAction{}, true, nil
	}

	// Award each pot independently so a seat winning more than one pot
	// gets a separate, correctly-sized Win event per pot rather than
	// having its total winnings double-reported.
	// AwardPots works in seat positions, so pass the button's position
	// and a seat count covering every position rather than Seats indices.
	buttonPos := h.Seats[h.Button].Position
	seatCount := 0
	for _, s := range h.Seats {
		if s.Position >= seatCount {
			seatCount = s.Position + 1
		}
	}
	totalWinnings := make(map[int]int, len(h.Seats))
	var events []winEvent
	for potIdx, pot := range h.pots {
		potWinnings := AwardPots([]Pot{pot}, buttonPos, seatCount, rank)
		for _, pos := range pot.Eligible {
			if amt := potWinnings[pos]; amt > 0 {
				events = append(events, winEvent{pos, potIdx, amt})
				totalWinnings[pos] += amt
			}
		}
	}
	if evalErr != nil {
		return h.fail(fmt.Errorf("%w: %v", ErrInvalidHand, evalErr))
	}
	for _, s := range h.Seats {
		s.Stack += totalWinnings[s.Position]
		s.ContributedTotal = 0
	}

	if len(events) == 0 {
		h.done = true
		h.phase = phaseDone
		return PlayerAction{}, true, nil
	}

	ev := events[0]
	committed := h.emit(PlayerAction{Kind: Win, Position: ev.pos, Amount: ev.amt, Street: Showdown, PotIndex: ev.potIdx})

	if len(events) == 1 {
		h.done = true
		h.phase = phaseDone
		return committed, true, nil
	}
	h.pendingWins = events[1:]
	h.phase = phaseDrainWins
	return committed, false, nil
}

func (h *HandState) stepDrainWins() (PlayerAction, bool, error) {
	ev := h.pendingWins[0]
	h.pendingWins = h.pendingWins[1:]
	committed := h.emit(PlayerAction{Kind: Win, Position: ev.pos, Amount: ev.amt, Street: Showdown, PotIndex: ev.potIdx})
	if len(h.pendingWins) == 0 {
		h.done = true
		h.phase = phaseDone
		return committed, true, nil
	}
	return committed, false, nil
}
