package engine

import "bigtwo/internal/domain"

// settlePayout computes and applies the round's chip settlement at
// first-finisher detection. It runs exactly once per round; the chip
// mutation is irreversible.
//
// Each loser pays baseBet * remainingCards, stacked with multipliers:
// x3 at 10+ remaining cards (x2 at 8+), doubled per unplayed 2,
// doubled for an unplayed bomb, and doubled again per 2 in the
// winner's final play and once more if that final play was itself a
// bomb. The winner collects the sum; the round is zero-sum.
func (g *Game) settlePayout(winner int, finalPlay domain.Combo) {
	if g.payoutSettled {
		return
	}
	g.payoutSettled = true

	winnerMult := int64(1) << domain.CountRank(finalPlay.Cards, domain.Two)
	if finalPlay.CutRank > domain.CutNone {
		winnerMult *= 2
	}

	updates := make([]Update, 0, len(g.players))
	total := int64(0)
	for i, p := range g.players {
		if i == winner {
			continue
		}
		loss := g.opts.BaseBet * int64(len(p.hand)) * loserMultiplier(p.hand) * winnerMult
		p.Chips -= loss
		total += loss
		updates = append(updates, Update{Name: p.Name, Chips: p.Chips, Result: ResultLose})
	}

	w := g.players[winner]
	w.Chips += total
	updates = append(updates, Update{Name: w.Name, Chips: w.Chips, Result: ResultWin})

	g.logger.Info("payout settled", "winner", w.Name, "pot", total, "multiplier", winnerMult)
	if g.opts.OnProfilesUpdate != nil {
		g.opts.OnProfilesUpdate(updates)
	}
}

func loserMultiplier(hand []domain.Card) int64 {
	mult := int64(1)
	switch {
	case len(hand) >= 10:
		mult = 3
	case len(hand) >= 8:
		mult = 2
	}
	mult <<= domain.CountRank(hand, domain.Two)
	if holdsBomb(hand) {
		mult *= 2
	}
	return mult
}

// holdsBomb reports whether a bomb-class combo is still hiding in the
// hand.
func holdsBomb(hand []domain.Card) bool {
	if len(domain.FourKinds(hand, -1)) > 0 {
		return true
	}
	if len(domain.StraightFlushes(hand, -1)) > 0 {
		return true
	}
	_, dragon := domain.DragonFrom(hand)
	return dragon
}
