package bot

import "math/rand"

// Tactic is an agent's play style, assigned once per dealt round and
// held fixed. It biases heuristic scoring and flavor-quote selection.
type Tactic int

const (
	TacticBait Tactic = iota
	TacticConservative
	TacticDeceptive
	TacticAggressive
)

var allTactics = [...]Tactic{TacticBait, TacticConservative, TacticDeceptive, TacticAggressive}

func (t Tactic) String() string {
	switch t {
	case TacticBait:
		return "bait"
	case TacticConservative:
		return "conservative"
	case TacticDeceptive:
		return "deceptive"
	case TacticAggressive:
		return "aggressive"
	default:
		return "unknown"
	}
}

// PickTactic draws a tactic using the supplied per-NPC weight hints.
// Absent or non-positive weights fall back to a uniform draw.
func PickTactic(rng *rand.Rand, weights map[Tactic]float64) Tactic {
	total := 0.0
	for _, t := range allTactics {
		if w := weights[t]; w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return allTactics[rng.Intn(len(allTactics))]
	}

	roll := rng.Float64() * total
	for _, t := range allTactics {
		w := weights[t]
		if w <= 0 {
			continue
		}
		roll -= w
		if roll < 0 {
			return t
		}
	}
	return allTactics[len(allTactics)-1]
}
