package domain

// Enumerators generate every legal instance of a shape present in a
// hand whose strength strictly exceeds beat. Pass beat = -1 to get all
// instances. Completeness matters: the AI's candidate quality depends
// on nothing being missed.

// Singles returns every single stronger than beat.
func Singles(hand []Card, beat int32) []Combo {
	var moves []Combo
	for _, c := range hand {
		if Power(c) > beat {
			moves = append(moves, Combo{Type: Single, Strength: Power(c), Cards: []Card{c}})
		}
	}
	return moves
}

// Pairs returns every same-rank pair stronger than beat.
func Pairs(hand []Card, beat int32) []Combo {
	var moves []Combo
	for i := 0; i < len(hand)-1; i++ {
		for j := i + 1; j < len(hand); j++ {
			if hand[i].Rank != hand[j].Rank {
				continue
			}
			cards := []Card{hand[i], hand[j]}
			if s := maxPower(cards); s > beat {
				moves = append(moves, Combo{Type: Pair, Strength: s, Cards: cards})
			}
		}
	}
	return moves
}

// Triples returns every same-rank triple stronger than beat.
func Triples(hand []Card, beat int32) []Combo {
	var moves []Combo
	for i := 0; i < len(hand)-2; i++ {
		for j := i + 1; j < len(hand)-1; j++ {
			for k := j + 1; k < len(hand); k++ {
				if hand[i].Rank != hand[j].Rank || hand[j].Rank != hand[k].Rank {
					continue
				}
				cards := []Card{hand[i], hand[j], hand[k]}
				if s := maxPower(cards); s > beat {
					moves = append(moves, Combo{Type: Triple, Strength: s, Cards: cards})
				}
			}
		}
	}
	return moves
}

// FullHouses returns every triple+pair combination stronger than beat.
// Strength is carried by the triple's rank.
func FullHouses(hand []Card, beat int32) []Combo {
	groups := groupByRank(hand)
	var moves []Combo
	for tripleRank, tripleCards := range groups {
		if len(tripleCards) < 3 || rankStrength(tripleRank) <= beat {
			continue
		}
		for _, triple := range chooseThree(tripleCards) {
			for pairRank, pairCards := range groups {
				if pairRank == tripleRank || len(pairCards) < 2 {
					continue
				}
				for _, pair := range chooseTwo(pairCards) {
					cards := append(append([]Card{}, triple...), pair...)
					moves = append(moves, Combo{Type: FullHouse, Strength: rankStrength(tripleRank), Cards: cards})
				}
			}
		}
	}
	return moves
}

// FourKinds returns every quad+kicker combination stronger than beat.
func FourKinds(hand []Card, beat int32) []Combo {
	groups := groupByRank(hand)
	var moves []Combo
	for quadRank, quadCards := range groups {
		if len(quadCards) != 4 || rankStrength(quadRank) <= beat {
			continue
		}
		for _, kicker := range hand {
			if kicker.Rank == quadRank {
				continue
			}
			cards := append(append([]Card{}, quadCards...), kicker)
			moves = append(moves, Combo{Type: FourKind, Strength: rankStrength(quadRank), CutRank: CutFourKind, Cards: cards})
		}
	}
	return moves
}

// Straights returns every mixed-suit 5-card straight stronger than
// beat. Pure same-suit runs are excluded; they belong to
// StraightFlushes and carry bomb rank.
func Straights(hand []Card, beat int32) []Combo {
	var moves []Combo
	for _, cards := range straightSets(hand) {
		if allSameSuit(cards) {
			continue
		}
		if s := maxPower(cards); s > beat {
			moves = append(moves, Combo{Type: Straight, Strength: s, Cards: cards})
		}
	}
	return moves
}

// StraightFlushes returns every same-suit 5-card run stronger than beat.
func StraightFlushes(hand []Card, beat int32) []Combo {
	var moves []Combo
	for _, cards := range straightSets(hand) {
		if !allSameSuit(cards) {
			continue
		}
		if s := maxPower(cards); s > beat {
			moves = append(moves, Combo{Type: StraightFlush, Strength: s, CutRank: CutStraightFlush, Cards: cards})
		}
	}
	return moves
}

// DragonFrom returns the 13-rank dragon if the hand holds one of each
// rank. A dragon is necessarily the entire 13-card hand.
func DragonFrom(hand []Card) (Combo, bool) {
	if !isDragon(hand) {
		return Combo{}, false
	}
	cards := make([]Card, len(hand))
	copy(cards, hand)
	return Combo{Type: Dragon, Strength: maxPower(cards), CutRank: CutDragon, Cards: cards}, true
}

// LegalMoves enumerates every combo that may be played on the current
// trick. A nil current trick allows any combination.
func LegalMoves(hand []Card, current *Combo) []Combo {
	var moves []Combo

	if current == nil {
		moves = append(moves, Singles(hand, -1)...)
		moves = append(moves, Pairs(hand, -1)...)
		moves = append(moves, Triples(hand, -1)...)
		moves = append(moves, Straights(hand, -1)...)
		moves = append(moves, FullHouses(hand, -1)...)
		moves = append(moves, FourKinds(hand, -1)...)
		moves = append(moves, StraightFlushes(hand, -1)...)
		if dragon, ok := DragonFrom(hand); ok {
			moves = append(moves, dragon)
		}
		return moves
	}

	// Same-type follows within the ordinary tier.
	if current.CutRank == CutNone {
		switch current.Type {
		case Single:
			moves = append(moves, Singles(hand, current.Strength)...)
		case Pair:
			moves = append(moves, Pairs(hand, current.Strength)...)
		case Triple:
			moves = append(moves, Triples(hand, current.Strength)...)
		case Straight:
			moves = append(moves, Straights(hand, current.Strength)...)
		case FullHouse:
			moves = append(moves, FullHouses(hand, current.Strength)...)
		}
	}

	// Bombs beat anything of a lower cut rank regardless of type.
	switch {
	case current.CutRank < CutFourKind:
		moves = append(moves, FourKinds(hand, -1)...)
	case current.CutRank == CutFourKind:
		moves = append(moves, FourKinds(hand, current.Strength)...)
	}
	switch {
	case current.CutRank < CutStraightFlush:
		moves = append(moves, StraightFlushes(hand, -1)...)
	case current.CutRank == CutStraightFlush:
		moves = append(moves, StraightFlushes(hand, current.Strength)...)
	}
	if current.CutRank < CutDragon {
		if dragon, ok := DragonFrom(hand); ok {
			moves = append(moves, dragon)
		}
	}

	return moves
}

// straightSets generates the full cartesian product of card choices
// over every window of five consecutive ranks present in the hand.
func straightSets(hand []Card) [][]Card {
	byRank := groupByRank(hand)
	var sets [][]Card
	for start := Three; start+4 < Two; start++ {
		choices := make([][]Card, 0, 5)
		ok := true
		for r := start; r <= start+4; r++ {
			cards := byRank[r]
			if len(cards) == 0 {
				ok = false
				break
			}
			choices = append(choices, cards)
		}
		if !ok {
			continue
		}
		sets = append(sets, cartesian(choices)...)
	}
	return sets
}

func cartesian(choices [][]Card) [][]Card {
	results := [][]Card{{}}
	for _, options := range choices {
		next := make([][]Card, 0, len(results)*len(options))
		for _, prefix := range results {
			for _, c := range options {
				combined := make([]Card, len(prefix), len(prefix)+1)
				copy(combined, prefix)
				next = append(next, append(combined, c))
			}
		}
		results = next
	}
	return results
}

func groupByRank(hand []Card) map[Rank][]Card {
	groups := make(map[Rank][]Card)
	for _, c := range hand {
		groups[c.Rank] = append(groups[c.Rank], c)
	}
	return groups
}

func chooseTwo(cards []Card) [][]Card {
	var out [][]Card
	for i := 0; i < len(cards)-1; i++ {
		for j := i + 1; j < len(cards); j++ {
			out = append(out, []Card{cards[i], cards[j]})
		}
	}
	return out
}

func chooseThree(cards []Card) [][]Card {
	var out [][]Card
	for i := 0; i < len(cards)-2; i++ {
		for j := i + 1; j < len(cards)-1; j++ {
			for k := j + 1; k < len(cards); k++ {
				out = append(out, []Card{cards[i], cards[j], cards[k]})
			}
		}
	}
	return out
}
