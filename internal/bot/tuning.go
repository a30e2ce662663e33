package bot

// Tuning carries the knobs bounding per-decision work and shaping
// scores. The caps trade simulation quality for latency and are not
// correctness requirements.
type Tuning struct {
	// CandidateCap keeps only the top-N candidates by heuristic score
	// before simulation.
	CandidateCap int
	// RolloutsPerCard scales the rollout count with hand size.
	RolloutsPerCard int
	// RolloutCap bounds rollouts per candidate.
	RolloutCap int
	// ScoreWeight blends mean rollout utility into the final score.
	ScoreWeight float64
	// NightmareScoreWeight replaces ScoreWeight in nightmare mode,
	// privileging simulated outcomes.
	NightmareScoreWeight float64
	// AllyWinUtility is the rollout credit when a teammate wins the
	// round. Hand-tuned; full credit is 1.0, a human win scores 0.
	AllyWinUtility float64

	// Rollout opponent policy mix. The remainder after heuristic and
	// pass shares plays the minimal legal combo.
	PolicyHeuristic float64
	PolicyPass      float64

	// InterceptHandMax: the human is dangerously close to winning at
	// or below this many cards.
	InterceptHandMax int
	// InterceptStrengthMax: a teammate trick at or below this strength
	// is weak enough that the human could cheaply take it.
	InterceptStrengthMax int32
	// PressureHandMax: human hand size at or below which the
	// controller takes control with high singles.
	PressureHandMax int

	// MaxRolloutSteps guards simulated rounds against livelock.
	MaxRolloutSteps int
}

// DefaultTuning mirrors the shipped balance.
var DefaultTuning = Tuning{
	CandidateCap:         12,
	RolloutsPerCard:      60,
	RolloutCap:           800,
	ScoreWeight:          1.0,
	NightmareScoreWeight: 5.0,
	AllyWinUtility:       0.7,
	PolicyHeuristic:      0.70,
	PolicyPass:           0.20,
	InterceptHandMax:     3,
	InterceptStrengthMax: 9,
	PressureHandMax:      5,
	MaxRolloutSteps:      400,
}

// FastTuning is a low-budget variant for tests and simulated allies.
var FastTuning = Tuning{
	CandidateCap:         6,
	RolloutsPerCard:      4,
	RolloutCap:           40,
	ScoreWeight:          1.0,
	NightmareScoreWeight: 5.0,
	AllyWinUtility:       0.7,
	PolicyHeuristic:      0.70,
	PolicyPass:           0.20,
	InterceptHandMax:     3,
	InterceptStrengthMax: 9,
	PressureHandMax:      5,
	MaxRolloutSteps:      400,
}
