package bot

import (
	"math/rand"

	"bigtwo/internal/domain"
)

// simState is a mutable copy of the table used inside rollouts. It is
// never shared across simulations.
type simState struct {
	hands    [][]domain.Card
	finished []bool
	passed   []bool
	trick    *domain.Trick
	turn     int

	nightmare bool
	humanSeat int
	tuning    Tuning
	rng       *rand.Rand
}

// newRolloutState builds a fresh simulation of the table as seen from
// the acting seat. In nightmare mode the snapshot hands are the true
// hands and are used directly; otherwise the unseen pool (deck minus
// own hand minus played cards) is redistributed at random among the
// other seats, respecting their known hand sizes.
func newRolloutState(ctx *Context) *simState {
	n := len(ctx.Hands)
	st := &simState{
		hands:     make([][]domain.Card, n),
		finished:  append([]bool{}, ctx.Finished...),
		passed:    make([]bool, n),
		turn:      ctx.Seat,
		nightmare: ctx.Nightmare,
		humanSeat: ctx.HumanSeat,
		tuning:    ctx.Tuning,
		rng:       ctx.Rand,
	}
	if ctx.Trick != nil {
		trick := *ctx.Trick
		st.trick = &trick
	}

	if ctx.Nightmare {
		for i, h := range ctx.Hands {
			st.hands[i] = append([]domain.Card{}, h...)
		}
		return st
	}

	own := ctx.hand()
	unseen := domain.RemoveCards(domain.RemoveCards(domain.NewDeck(), own), ctx.Played)
	unseen = domain.Shuffle(ctx.Rand, unseen)

	idx := 0
	for i, h := range ctx.Hands {
		if i == ctx.Seat {
			st.hands[i] = append([]domain.Card{}, own...)
			continue
		}
		take := len(h)
		if idx+take > len(unseen) {
			take = len(unseen) - idx
		}
		st.hands[i] = append([]domain.Card{}, unseen[idx:idx+take]...)
		domain.SortCards(st.hands[i])
		idx += take
	}
	return st
}

// apply plays the cards for the current turn seat and advances. It
// returns the finishing seat, or -1 while the round is still open.
func (st *simState) apply(cards []domain.Card) int {
	seat := st.turn
	combo, _ := domain.Evaluate(cards)
	st.hands[seat] = domain.RemoveCards(st.hands[seat], cards)
	st.trick = &domain.Trick{Seat: seat, Combo: combo}
	for i := range st.passed {
		st.passed[i] = false
	}
	if len(st.hands[seat]) == 0 {
		st.finished[seat] = true
		return seat
	}
	st.turn = activeAfter(seat, st.hands, st.finished)
	return -1
}

// pass marks the current seat passed. When every other active seat has
// passed since the last play, the trick clears and its owner leads
// again (or the next active seat if the owner has finished).
func (st *simState) pass() {
	seat := st.turn
	st.passed[seat] = true

	if st.trick != nil {
		owner := st.trick.Seat
		cleared := true
		for i := range st.hands {
			if i == owner || st.finished[i] || len(st.hands[i]) == 0 {
				continue
			}
			if !st.passed[i] {
				cleared = false
				break
			}
		}
		if cleared {
			st.trick = nil
			for i := range st.passed {
				st.passed[i] = false
			}
			if st.finished[owner] {
				st.turn = activeAfter(owner, st.hands, st.finished)
			} else {
				st.turn = owner
			}
			return
		}
	}
	st.turn = activeAfter(seat, st.hands, st.finished)
}

func (st *simState) trickCombo() *domain.Combo {
	if st.trick == nil {
		return nil
	}
	return &st.trick.Combo
}

// playedSoFar reconstructs the discard pile implied by the hands.
func (st *simState) playedSoFar() []domain.Card {
	out := domain.NewDeck()
	for _, h := range st.hands {
		out = domain.RemoveCards(out, h)
	}
	return out
}

// simulateRound plays the table forward until a seat empties its hand
// and returns that seat. Opponent continuations use the mixed solo
// policy, or the team policy for non-human seats in nightmare mode.
func simulateRound(st *simState) int {
	for step := 0; step < st.tuning.MaxRolloutSteps; step++ {
		seat := st.turn
		cards := rolloutMove(st, seat)
		if cards == nil {
			if st.trick == nil {
				// A leader must play; fall back to the minimal combo.
				candidates := domain.LegalMoves(st.hands[seat], nil)
				if len(candidates) == 0 {
					return seat
				}
				cards = minimalCandidate(candidates).Cards
			} else {
				st.pass()
				continue
			}
		}
		if winner := st.apply(cards); winner >= 0 {
			return winner
		}
	}

	// Step guard tripped; score the shortest hand as winner.
	best, bestLen := st.turn, len(st.hands[st.turn])
	for i, h := range st.hands {
		if !st.finished[i] && len(h) < bestLen {
			best, bestLen = i, len(h)
		}
	}
	return best
}

// rolloutMove picks the acting seat's continuation: the team policy
// for nightmare teammates, otherwise a 70/20/10 mix of heuristic,
// deliberate pass, and minimal legal play.
func rolloutMove(st *simState, seat int) []domain.Card {
	if st.nightmare && seat != st.humanSeat {
		return teamPolicy(st.view(seat))
	}
	return mixedPolicy(st, seat)
}

func mixedPolicy(st *simState, seat int) []domain.Card {
	current := st.trickCombo()
	candidates := domain.LegalMoves(st.hands[seat], current)
	if len(candidates) == 0 {
		return nil
	}

	roll := st.rng.Float64()
	switch {
	case roll < st.tuning.PolicyHeuristic:
		best := candidates[0]
		bestScore := heuristicScore(best, TacticConservative, len(st.hands[seat]))
		for _, c := range candidates[1:] {
			if s := heuristicScore(c, TacticConservative, len(st.hands[seat])); s > bestScore {
				best, bestScore = c, s
			}
		}
		return best.Cards
	case roll < st.tuning.PolicyHeuristic+st.tuning.PolicyPass:
		if current != nil {
			return nil
		}
		return minimalCandidate(candidates).Cards
	default:
		return minimalCandidate(candidates).Cards
	}
}

// view projects the rollout state into the table view the team policy
// shares with live decisions.
func (st *simState) view(seat int) *tableView {
	return &tableView{
		seat:      seat,
		hands:     st.hands,
		finished:  st.finished,
		trick:     st.trick,
		played:    st.playedSoFar(),
		humanSeat: st.humanSeat,
		tuning:    st.tuning,
		rng:       st.rng,
	}
}
