package bot

import "bigtwo/internal/domain"

// Heuristic shaping constants. Power and length are normalized to
// roughly [0,1] before tactic weighting.
const (
	deceptiveEarlyHand = 7 // hand size above which deceptive plays conservative

	conservativePowerWeight  = -1.2
	conservativeLengthWeight = 0.5
	conservativeBombPenalty  = 1.5
	conservativeTwoPenalty   = 0.8

	aggressivePowerWeight  = 1.0
	aggressiveLengthWeight = 0.8
	aggressiveBombBonus    = 1.0
	aggressiveTwoBonus     = 0.3
)

// comboPower folds cut rank and strength into a single normalized
// power signal, cut-rank dominant.
func comboPower(c domain.Combo) float64 {
	return (float64(c.CutRank)*64 + float64(c.Strength)) / 256
}

// heuristicScore biases a candidate by the agent's tactic. Bait and
// conservative agents shed weak short plays and hoard bombs and 2s;
// aggressive agents do the opposite; deceptive agents flip from
// conservative to aggressive once the hand shortens.
func heuristicScore(c domain.Combo, tactic Tactic, handSize int) float64 {
	power := comboPower(c)
	length := float64(len(c.Cards)) / 13
	twos := float64(domain.CountRank(c.Cards, domain.Two))
	bomb := c.CutRank > domain.CutNone

	aggressive := func() float64 {
		score := aggressivePowerWeight*power + aggressiveLengthWeight*length
		if bomb {
			score += aggressiveBombBonus
		}
		return score + aggressiveTwoBonus*twos
	}
	conservative := func() float64 {
		score := conservativePowerWeight*power + conservativeLengthWeight*length
		if bomb {
			score -= conservativeBombPenalty
		}
		return score - conservativeTwoPenalty*twos
	}

	switch tactic {
	case TacticAggressive:
		return aggressive()
	case TacticDeceptive:
		if handSize > deceptiveEarlyHand {
			return conservative()
		}
		return aggressive()
	default: // bait, conservative
		return conservative()
	}
}

// minimalCandidate returns the weakest candidate: lowest strength,
// shortest on ties.
func minimalCandidate(candidates []domain.Combo) domain.Combo {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.CutRank != best.CutRank {
			if c.CutRank < best.CutRank {
				best = c
			}
			continue
		}
		if c.Strength != best.Strength {
			if c.Strength < best.Strength {
				best = c
			}
			continue
		}
		if len(c.Cards) < len(best.Cards) {
			best = c
		}
	}
	return best
}
