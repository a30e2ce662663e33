package domain

import "math/rand"

// NewDeck returns a sorted 52-card deck.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for r := Three; r <= Two; r++ {
		for s := Clubs; s <= Spades; s++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// Shuffle returns a shuffled copy of the given deck.
func Shuffle(rng *rand.Rand, deck []Card) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Deal distributes the deck round-robin across the given number of seats
// and sorts each hand by power.
func Deal(deck []Card, seats int) [][]Card {
	hands := make([][]Card, seats)
	for i := range hands {
		hands[i] = make([]Card, 0, (len(deck)+seats-1)/seats)
	}
	for i, c := range deck {
		hands[i%seats] = append(hands[i%seats], c)
	}
	for _, h := range hands {
		SortCards(h)
	}
	return hands
}
