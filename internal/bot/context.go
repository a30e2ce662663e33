package bot

import (
	"math/rand"

	"bigtwo/internal/domain"
)

// Context is the read-only snapshot an agent decides from. The engine
// owns the real state; everything here is copied or treated as
// immutable. In normal play an agent only reads its own hand plus the
// sizes of the others; the team path additionally reads teammate hands
// when Nightmare is set.
type Context struct {
	// Seat is the acting agent's index.
	Seat int
	// Hands holds every seat's current hand, indexed by seat.
	Hands [][]domain.Card
	// Finished marks seats whose hands have emptied.
	Finished []bool
	// Trick is the active play to beat, nil when leading.
	Trick *domain.Trick
	// Played are all cards already out of every hand.
	Played []domain.Card
	// MustIncludeOpener requires the play to contain the 3 of clubs
	// (fresh round opening lead).
	MustIncludeOpener bool

	Tactic    Tactic
	Nightmare bool
	HumanSeat int

	Tuning Tuning
	Rand   *rand.Rand
}

func (ctx *Context) hand() []domain.Card {
	return ctx.Hands[ctx.Seat]
}

func (ctx *Context) trickCombo() *domain.Combo {
	if ctx.Trick == nil {
		return nil
	}
	return &ctx.Trick.Combo
}

// activeAfter returns the next seat still holding cards after from,
// rotating over every seat in the snapshot.
func activeAfter(from int, hands [][]domain.Card, finished []bool) int {
	n := len(hands)
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		if !finished[seat] && len(hands[seat]) > 0 {
			return seat
		}
	}
	return from
}

// legalCandidates enumerates the agent's playable combos, applying the
// opening-lead constraint: keep combos containing the 3 of clubs,
// falling back to the bare 3♣ single when no combo qualifies.
func legalCandidates(hand []domain.Card, current *domain.Combo, mustIncludeOpener bool) []domain.Combo {
	moves := domain.LegalMoves(hand, current)
	if !mustIncludeOpener {
		return moves
	}

	var filtered []domain.Combo
	for _, m := range moves {
		if domain.ContainsCard(m.Cards, domain.ThreeOfClubs) {
			filtered = append(filtered, m)
		}
	}
	if len(filtered) == 0 && domain.ContainsCard(hand, domain.ThreeOfClubs) {
		opener, _ := domain.Evaluate([]domain.Card{domain.ThreeOfClubs})
		filtered = append(filtered, opener)
	}
	return filtered
}
