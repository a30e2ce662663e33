package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Suit in Big Two order: Clubs < Diamonds < Hearts < Spades.
type Suit int32

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Rank in Big Two order: 3 is lowest, 2 is highest.
type Rank int32

const (
	Three Rank = iota
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	Two
)

// Card is a pure value; a standard deck holds exactly one of each
// (rank, suit) combination, so Card is safe as a map key.
type Card struct {
	Rank Rank
	Suit Suit
}

// ThreeOfClubs is the mandatory opening-lead card.
var ThreeOfClubs = Card{Rank: Three, Suit: Clubs}

// Power returns the composite single-card value: rank*4 + suit.
func Power(c Card) int32 {
	return int32(c.Rank)*4 + int32(c.Suit)
}

var suitRunes = [...]string{"♣", "♦", "♥", "♠"}
var rankNames = [...]string{"3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A", "2"}

func (s Suit) String() string {
	if s < Clubs || s > Spades {
		return "?"
	}
	return suitRunes[s]
}

func (r Rank) String() string {
	if r < Three || r > Two {
		return "?"
	}
	return rankNames[r]
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Key returns a canonical string key for deduplication and stable ordering.
func Key(c Card) string {
	return fmt.Sprintf("%02d-%d", c.Rank, c.Suit)
}

// ParseCard reads a card written as rank followed by a suit letter,
// e.g. "3C", "10h", "QS".
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}
	var suit Suit
	switch s[len(s)-1] {
	case 'C':
		suit = Clubs
	case 'D':
		suit = Diamonds
	case 'H':
		suit = Hearts
	case 'S':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit in %q", s)
	}
	name := s[:len(s)-1]
	for i, rn := range rankNames {
		if name == rn {
			return Card{Rank: Rank(i), Suit: suit}, nil
		}
	}
	return Card{}, fmt.Errorf("invalid rank in %q", s)
}

// SortCards orders a hand by ascending power.
func SortCards(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		return Power(cards[i]) < Power(cards[j])
	})
}

// ContainsCard reports whether the hand holds the exact card.
func ContainsCard(cards []Card, target Card) bool {
	for _, c := range cards {
		if c == target {
			return true
		}
	}
	return false
}

// CountRank returns how many cards of the given rank are present.
func CountRank(cards []Card, rank Rank) int {
	count := 0
	for _, c := range cards {
		if c.Rank == rank {
			count++
		}
	}
	return count
}

// RemoveCards removes the specified cards from a hand and returns the updated hand.
func RemoveCards(hand []Card, toRemove []Card) []Card {
	if len(toRemove) == 0 || len(hand) == 0 {
		return hand
	}

	removeCounts := make(map[Card]int, len(toRemove))
	for _, card := range toRemove {
		removeCounts[card]++
	}

	updated := make([]Card, 0, len(hand))
	for _, card := range hand {
		if count, ok := removeCounts[card]; ok && count > 0 {
			removeCounts[card] = count - 1
			continue
		}
		updated = append(updated, card)
	}

	return updated
}

// FormatCards renders a card list as a space-joined string.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
