package bot

import (
	"testing"

	"bigtwo/internal/domain"
)

func c(r domain.Rank, s domain.Suit) domain.Card { return domain.Card{Rank: r, Suit: s} }

func mustEval(t *testing.T, cards ...domain.Card) domain.Combo {
	t.Helper()
	combo, ok := domain.Evaluate(cards)
	if !ok {
		t.Fatalf("test combo does not evaluate: %v", domain.FormatCards(cards))
	}
	return combo
}

func TestHeuristicConservativePrefersWeak(t *testing.T) {
	weak := mustEval(t, c(domain.Four, domain.Clubs))
	strong := mustEval(t, c(domain.Two, domain.Spades))

	if heuristicScore(weak, TacticConservative, 13) <= heuristicScore(strong, TacticConservative, 13) {
		t.Error("conservative should prefer the weak single over the 2")
	}
	if heuristicScore(weak, TacticBait, 13) <= heuristicScore(strong, TacticBait, 13) {
		t.Error("bait should prefer the weak single over the 2")
	}
}

func TestHeuristicAggressivePrefersStrongAndBombs(t *testing.T) {
	weak := mustEval(t, c(domain.Four, domain.Clubs))
	strong := mustEval(t, c(domain.Two, domain.Spades))
	bomb := mustEval(t,
		c(domain.Nine, domain.Clubs), c(domain.Nine, domain.Diamonds),
		c(domain.Nine, domain.Hearts), c(domain.Nine, domain.Spades),
		c(domain.Three, domain.Clubs))

	if heuristicScore(strong, TacticAggressive, 13) <= heuristicScore(weak, TacticAggressive, 13) {
		t.Error("aggressive should prefer the strong single")
	}
	if heuristicScore(bomb, TacticAggressive, 13) <= heuristicScore(weak, TacticAggressive, 13) {
		t.Error("aggressive should prefer the bomb")
	}
	if heuristicScore(bomb, TacticConservative, 13) >= heuristicScore(weak, TacticConservative, 13) {
		t.Error("conservative should hoard the bomb")
	}
}

func TestHeuristicDeceptiveFlips(t *testing.T) {
	weak := mustEval(t, c(domain.Four, domain.Clubs))
	strong := mustEval(t, c(domain.Two, domain.Spades))

	// Early (hand > 7): conservative behavior.
	if heuristicScore(weak, TacticDeceptive, 10) <= heuristicScore(strong, TacticDeceptive, 10) {
		t.Error("deceptive should play conservative with a big hand")
	}
	// Late: aggressive behavior.
	if heuristicScore(strong, TacticDeceptive, 4) <= heuristicScore(weak, TacticDeceptive, 4) {
		t.Error("deceptive should turn aggressive with a short hand")
	}
}

func TestMinimalCandidate(t *testing.T) {
	candidates := []domain.Combo{
		mustEval(t, c(domain.King, domain.Spades)),
		mustEval(t, c(domain.Five, domain.Diamonds)),
		mustEval(t, c(domain.Ten, domain.Hearts)),
	}
	min := minimalCandidate(candidates)
	if min.Cards[0] != c(domain.Five, domain.Diamonds) {
		t.Errorf("expected 5♦ as minimal, got %v", domain.FormatCards(min.Cards))
	}
}
