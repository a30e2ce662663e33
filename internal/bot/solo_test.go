package bot

import (
	"math/rand"
	"testing"

	"bigtwo/internal/domain"
)

// testCtx builds a consistent snapshot: the discard pile is everything
// not held by a seat or sitting in the trick.
func testCtx(seat int, hands [][]domain.Card, trick *domain.Trick) *Context {
	finished := make([]bool, len(hands))
	for i, h := range hands {
		finished[i] = len(h) == 0
	}
	played := domain.NewDeck()
	for _, h := range hands {
		played = domain.RemoveCards(played, h)
	}
	return &Context{
		Seat:      seat,
		Hands:     hands,
		Finished:  finished,
		Trick:     trick,
		Played:    played,
		HumanSeat: 0,
		Tuning:    FastTuning,
		Rand:      rand.New(rand.NewSource(1)),
	}
}

func TestChoosePlayPassesWhenNothingBeats(t *testing.T) {
	twoSpades := mustEval(t, c(domain.Two, domain.Spades))
	hands := [][]domain.Card{
		{c(domain.Ace, domain.Spades)},
		{c(domain.Three, domain.Clubs), c(domain.Four, domain.Clubs)},
		{c(domain.Five, domain.Clubs), c(domain.Six, domain.Clubs)},
		{c(domain.Seven, domain.Clubs), c(domain.Eight, domain.Clubs)},
	}
	ctx := testCtx(1, hands, &domain.Trick{Seat: 0, Combo: twoSpades})
	if move := ChoosePlay(ctx); move != nil {
		t.Fatalf("expected pass against 2♠, got %v", domain.FormatCards(move))
	}
}

func TestChoosePlayOpeningLeadIncludesThreeOfClubs(t *testing.T) {
	hands := [][]domain.Card{
		{c(domain.Nine, domain.Clubs), c(domain.Ten, domain.Clubs)},
		{c(domain.Three, domain.Clubs), c(domain.Three, domain.Hearts), c(domain.King, domain.Spades), c(domain.Seven, domain.Diamonds)},
		{c(domain.Five, domain.Clubs), c(domain.Six, domain.Clubs)},
		{c(domain.Seven, domain.Clubs), c(domain.Eight, domain.Hearts)},
	}
	ctx := testCtx(1, hands, nil)
	ctx.MustIncludeOpener = true

	move := ChoosePlay(ctx)
	if move == nil {
		t.Fatal("opening leader must play")
	}
	if !domain.ContainsCard(move, domain.ThreeOfClubs) {
		t.Errorf("opening lead %v missing 3♣", domain.FormatCards(move))
	}
}

func TestChoosePlayReturnsLegalMove(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	hands := domain.Deal(domain.Shuffle(rng, domain.NewDeck()), 4)
	ctx := testCtx(2, hands, nil)

	move := ChoosePlay(ctx)
	if move == nil {
		t.Fatal("leader with a full hand must play")
	}
	combo, ok := domain.Evaluate(move)
	if !ok {
		t.Fatalf("chosen move does not evaluate: %v", domain.FormatCards(move))
	}
	for _, card := range move {
		if !domain.ContainsCard(hands[2], card) {
			t.Fatalf("chosen card %v not in hand", card)
		}
	}
	_ = combo
}

func TestChoosePlayFinishesWithLastCard(t *testing.T) {
	hands := [][]domain.Card{
		{c(domain.Jack, domain.Clubs), c(domain.Queen, domain.Hearts)},
		{c(domain.Two, domain.Spades)},
		{c(domain.Five, domain.Clubs), c(domain.Six, domain.Clubs)},
		{c(domain.Seven, domain.Clubs), c(domain.Eight, domain.Clubs)},
	}
	ctx := testCtx(1, hands, nil)
	move := ChoosePlay(ctx)
	if len(move) != 1 || move[0] != c(domain.Two, domain.Spades) {
		t.Fatalf("expected final card played, got %v", domain.FormatCards(move))
	}
}

func TestChoosePlayNightmarePreservesTeammateLead(t *testing.T) {
	// Seat 2 (teammate) owns the trick; the human is far from winning,
	// so seat 1 should pass rather than beat its own teammate.
	trick := mustEval(t, c(domain.Ten, domain.Hearts))
	hands := [][]domain.Card{
		{c(domain.Three, domain.Clubs), c(domain.Four, domain.Clubs), c(domain.Five, domain.Clubs), c(domain.Six, domain.Clubs), c(domain.Nine, domain.Diamonds), c(domain.Ten, domain.Clubs)},
		{c(domain.King, domain.Spades), c(domain.Ace, domain.Hearts), c(domain.Four, domain.Diamonds)},
		{c(domain.Jack, domain.Clubs), c(domain.Queen, domain.Clubs)},
		{c(domain.Seven, domain.Clubs), c(domain.Eight, domain.Clubs)},
	}
	ctx := testCtx(1, hands, &domain.Trick{Seat: 2, Combo: trick})
	ctx.Nightmare = true

	if move := ChoosePlay(ctx); move != nil {
		t.Errorf("expected deliberate pass under teammate lead, got %v", domain.FormatCards(move))
	}
}

func TestSimulateRoundTerminates(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 10; i++ {
		hands := domain.Deal(domain.Shuffle(rng, domain.NewDeck()), 4)
		ctx := testCtx(0, hands, nil)
		ctx.Rand = rng
		st := newRolloutState(ctx)
		winner := simulateRound(st)
		if winner < 0 || winner > 3 {
			t.Fatalf("bad winner seat %d", winner)
		}
	}
}

func TestRolloutStateRedistributesUnseen(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	hands := domain.Deal(domain.Shuffle(rng, domain.NewDeck()), 4)
	ctx := testCtx(0, hands, nil)

	st := newRolloutState(ctx)
	// Own hand is preserved exactly; opponents keep their sizes but get
	// randomized cards; the 52-card conservation holds.
	seen := make(map[domain.Card]bool)
	total := 0
	for i, h := range st.hands {
		if len(h) != len(hands[i]) {
			t.Errorf("seat %d size changed: %d != %d", i, len(h), len(hands[i]))
		}
		for _, card := range h {
			if seen[card] {
				t.Errorf("card %v in two hands", card)
			}
			seen[card] = true
		}
		total += len(h)
	}
	if total != 52 {
		t.Errorf("expected 52 cards across hands, got %d", total)
	}
	for _, card := range hands[0] {
		if !domain.ContainsCard(st.hands[0], card) {
			t.Errorf("own hand changed in rollout: missing %v", card)
		}
	}
}

func TestRolloutStateNightmareKeepsKnownHands(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	hands := domain.Deal(domain.Shuffle(rng, domain.NewDeck()), 4)
	ctx := testCtx(1, hands, nil)
	ctx.Nightmare = true

	st := newRolloutState(ctx)
	for i, h := range st.hands {
		if len(h) != len(hands[i]) {
			t.Fatalf("seat %d size changed", i)
		}
		for _, card := range hands[i] {
			if !domain.ContainsCard(h, card) {
				t.Errorf("nightmare rollout altered seat %d: missing %v", i, card)
			}
		}
	}
}
