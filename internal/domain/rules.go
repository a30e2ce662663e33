package domain

// ComboType represents the shape of a card combination.
type ComboType int

const (
	ComboInvalid ComboType = iota
	Single
	Pair
	Triple
	Straight
	FullHouse
	FourKind
	StraightFlush
	Dragon
)

func (t ComboType) String() string {
	switch t {
	case Single:
		return "single"
	case Pair:
		return "pair"
	case Triple:
		return "triple"
	case Straight:
		return "straight"
	case FullHouse:
		return "full house"
	case FourKind:
		return "four of a kind"
	case StraightFlush:
		return "straight flush"
	case Dragon:
		return "dragon"
	default:
		return "invalid"
	}
}

// Cut ranks encode the bomb hierarchy. A combo with a higher cut rank
// beats any combo with a lower one regardless of type; among equal cut
// ranks only identical type with strictly higher strength beats.
const (
	CutNone          = 0
	CutFourKind      = 1
	CutStraightFlush = 2
	CutDragon        = 3
)

// Combo is an evaluated card combination.
type Combo struct {
	Type     ComboType
	Strength int32
	CutRank  int
	Cards    []Card
}

// Trick is the active play on the table that subsequent seats must
// beat or pass on.
type Trick struct {
	Seat  int
	Combo Combo
}

// Evaluate classifies a card set. It returns false for any shape that
// is not a legal Big Two combination.
func Evaluate(cards []Card) (Combo, bool) {
	switch len(cards) {
	case 1:
		return Combo{Type: Single, Strength: Power(cards[0]), Cards: cards}, true
	case 2:
		if cards[0].Rank == cards[1].Rank {
			return Combo{Type: Pair, Strength: maxPower(cards), Cards: cards}, true
		}
	case 3:
		if allSameRank(cards) {
			return Combo{Type: Triple, Strength: maxPower(cards), Cards: cards}, true
		}
	case 5:
		return evaluateFive(cards)
	case 13:
		if isDragon(cards) {
			return Combo{Type: Dragon, Strength: maxPower(cards), CutRank: CutDragon, Cards: cards}, true
		}
	}
	return Combo{}, false
}

// evaluateFive resolves the 5-card precedence: straight flush beats
// four-kind beats full house beats straight. A same-suit set that is
// not consecutive is not a combination at all.
func evaluateFive(cards []Card) (Combo, bool) {
	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	SortCards(sorted)

	straight := isStraight(sorted)
	flush := allSameSuit(sorted)

	if straight && flush {
		return Combo{Type: StraightFlush, Strength: maxPower(sorted), CutRank: CutStraightFlush, Cards: cards}, true
	}

	counts := rankCounts(sorted)
	if len(counts) == 2 {
		for rank, n := range counts {
			switch n {
			case 4:
				return Combo{Type: FourKind, Strength: rankStrength(rank), CutRank: CutFourKind, Cards: cards}, true
			case 3:
				return Combo{Type: FullHouse, Strength: rankStrength(rank), Cards: cards}, true
			}
		}
	}

	if straight {
		return Combo{Type: Straight, Strength: maxPower(sorted), Cards: cards}, true
	}
	return Combo{}, false
}

// CanBeat reports whether the candidate may be played on the current
// trick. A nil current trick means any legal combo opens.
func CanBeat(candidate Combo, current *Combo) bool {
	if candidate.Type == ComboInvalid {
		return false
	}
	if current == nil {
		return true
	}
	if candidate.CutRank != current.CutRank {
		return candidate.CutRank > current.CutRank
	}
	if candidate.CutRank > CutNone {
		return candidate.Strength > current.Strength
	}
	if candidate.Type != current.Type {
		return false
	}
	return candidate.Strength > current.Strength
}

// rankStrength maps a rank onto the power axis so that full houses and
// four-kinds, whose kickers are irrelevant, compare on the same scale
// as card-power based strengths.
func rankStrength(r Rank) int32 {
	return int32(r)*4 + int32(Spades)
}

func maxPower(cards []Card) int32 {
	maxP := int32(-1)
	for _, c := range cards {
		if p := Power(c); p > maxP {
			maxP = p
		}
	}
	return maxP
}

func allSameRank(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	r := cards[0].Rank
	for _, c := range cards {
		if c.Rank != r {
			return false
		}
	}
	return true
}

func allSameSuit(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	s := cards[0].Suit
	for _, c := range cards {
		if c.Suit != s {
			return false
		}
	}
	return true
}

// isStraight expects sorted input: five distinct consecutive ranks.
// 2 is the highest rank and sits outside every run, so no set
// containing a 2 can be a straight and there is no wraparound.
func isStraight(sorted []Card) bool {
	if len(sorted) != 5 {
		return false
	}
	for _, c := range sorted {
		if c.Rank == Two {
			return false
		}
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Rank != sorted[i-1].Rank+1 {
			return false
		}
	}
	return true
}

// isDragon requires exactly the 13 distinct ranks, one of each.
func isDragon(cards []Card) bool {
	if len(cards) != 13 {
		return false
	}
	var seen [13]bool
	for _, c := range cards {
		if seen[c.Rank] {
			return false
		}
		seen[c.Rank] = true
	}
	return true
}

func rankCounts(cards []Card) map[Rank]int {
	counts := make(map[Rank]int, len(cards))
	for _, c := range cards {
		counts[c.Rank]++
	}
	return counts
}
