package bot

import (
	"sort"

	"bigtwo/internal/domain"
)

// ChoosePlay decides the acting agent's move from a read-only table
// snapshot. It returns the cards to play, or nil to pass.
//
// Candidates are enumerated, biased by the agent's tactic (or the team
// score in nightmare mode), capped, and then ranked by Monte-Carlo
// rollouts of the rest of the round.
func ChoosePlay(ctx *Context) []domain.Card {
	hand := ctx.hand()
	if len(hand) == 0 {
		return nil
	}

	candidates := legalCandidates(hand, ctx.trickCombo(), ctx.MustIncludeOpener)
	if len(candidates) == 0 {
		return nil
	}

	teamSeat := ctx.Nightmare && ctx.Seat != ctx.HumanSeat
	if teamSeat {
		if move, decided := teamTrickGate(ctx.liveView(), candidates); decided {
			return move
		}
	}

	type scored struct {
		combo     domain.Combo
		heuristic float64
		score     float64
	}

	ranked := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		h := 0.0
		if teamSeat {
			h = teamScore(ctx.liveView(), c)
		} else {
			h = heuristicScore(c, ctx.Tactic, len(hand))
		}
		ranked = append(ranked, scored{combo: c, heuristic: h})
	}

	// Bound simulation cost: keep the top candidates by heuristic.
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].heuristic > ranked[j].heuristic })
	if limit := ctx.Tuning.CandidateCap; limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	rollouts := len(hand) * ctx.Tuning.RolloutsPerCard
	if rollouts > ctx.Tuning.RolloutCap {
		rollouts = ctx.Tuning.RolloutCap
	}
	if rollouts < 1 {
		rollouts = 1
	}

	scoreWeight := ctx.Tuning.ScoreWeight
	if ctx.Nightmare {
		scoreWeight = ctx.Tuning.NightmareScoreWeight
	}

	for i := range ranked {
		total := 0.0
		for r := 0; r < rollouts; r++ {
			st := newRolloutState(ctx)
			winner := st.apply(ranked[i].combo.Cards)
			if winner < 0 {
				winner = simulateRound(st)
			}
			total += ctx.utilityOf(winner)
		}
		ranked[i].score = (total/float64(rollouts))*scoreWeight + ranked[i].heuristic
	}

	// Best score wins; ties prefer longer plays, then lower strength
	// to conserve high cards.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		if len(ranked[i].combo.Cards) != len(ranked[j].combo.Cards) {
			return len(ranked[i].combo.Cards) > len(ranked[j].combo.Cards)
		}
		return ranked[i].combo.Strength < ranked[j].combo.Strength
	})

	return ranked[0].combo.Cards
}

// utilityOf maps a rollout's winning seat to a utility. Team mode
// grants partial credit for an ally finishing first.
func (ctx *Context) utilityOf(winner int) float64 {
	if !ctx.Nightmare {
		if winner == ctx.Seat {
			return 1
		}
		return 0
	}
	switch winner {
	case ctx.Seat:
		return 1
	case ctx.HumanSeat:
		return 0
	default:
		return ctx.Tuning.AllyWinUtility
	}
}
