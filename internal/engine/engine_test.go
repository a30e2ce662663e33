package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bigtwo/internal/bot"
	"bigtwo/internal/domain"
)

func c(r domain.Rank, s domain.Suit) domain.Card { return domain.Card{Rank: r, Suit: s} }

func testSeats() []Seat {
	return []Seat{
		{Name: "You", Chips: 5000},
		{Name: "Rex", Chips: 5000, IsAI: true},
		{Name: "Mei", Chips: 5000, IsAI: true},
		{Name: "Kato", Chips: 5000, IsAI: true},
	}
}

func testGame(seed int64) *Game {
	return NewGame(testSeats(), Options{
		BaseBet: 100,
		Tuning:  bot.FastTuning,
		Rand:    rand.New(rand.NewSource(seed)),
	})
}

func TestInitializeGameDealsConservatively(t *testing.T) {
	g := testGame(1)
	g.InitializeGame()

	require.Equal(t, PhasePlaying, g.Phase())
	seen := make(map[domain.Card]bool)
	for i := 0; i < g.PlayerCount(); i++ {
		hand := g.Hand(i)
		require.Len(t, hand, 13, "seat %d", i)
		for _, card := range hand {
			require.False(t, seen[card], "card %v dealt twice", card)
			seen[card] = true
		}
	}
	require.Len(t, seen, 52)

	assert.True(t, domain.ContainsCard(g.Hand(g.Turn()), domain.ThreeOfClubs),
		"leader must hold the 3 of clubs")
	assert.True(t, g.MustLeadOpener())
}

func TestApplyPlayRejectsOutOfTurn(t *testing.T) {
	g := testGame(2)
	g.InitializeGame()

	wrongSeat := (g.Turn() + 1) % g.PlayerCount()
	before := g.Hand(wrongSeat)
	ok := g.ApplyPlay(wrongSeat, before[:1])
	assert.False(t, ok)
	assert.NotEmpty(t, g.Message)
	assert.Equal(t, before, g.Hand(wrongSeat), "rejection must not mutate the hand")
}

func TestOpeningLeadRequiresThreeOfClubs(t *testing.T) {
	g := testGame(3)
	g.InitializeGame()

	leader := g.Turn()
	hand := g.Hand(leader)

	// Find a card that is not the 3♣ and try to lead with it alone.
	var other domain.Card
	for _, card := range hand {
		if card != domain.ThreeOfClubs {
			other = card
			break
		}
	}
	require.False(t, g.ApplyPlay(leader, []domain.Card{other}))
	assert.Len(t, g.Hand(leader), 13)

	require.True(t, g.ApplyPlay(leader, []domain.Card{domain.ThreeOfClubs}))
	assert.Len(t, g.Hand(leader), 12)
	assert.False(t, g.MustLeadOpener())
}

func TestApplyPlayEnforcesBeatRule(t *testing.T) {
	g := testGame(4)
	g.InitializeGame()

	// Fabricate a mid-round position.
	g.mustIncludeOpener = false
	g.turn = 0
	g.players[0].hand = []domain.Card{c(domain.Ten, domain.Hearts), c(domain.Four, domain.Clubs)}
	g.players[1].hand = []domain.Card{
		c(domain.Five, domain.Spades), c(domain.Five, domain.Hearts), c(domain.Three, domain.Diamonds),
	}

	require.True(t, g.ApplyPlay(0, []domain.Card{c(domain.Ten, domain.Hearts)}))

	// A pair cannot follow a single.
	pair := []domain.Card{c(domain.Five, domain.Spades), c(domain.Five, domain.Hearts)}
	require.False(t, g.ApplyPlay(1, pair))
	assert.Len(t, g.Hand(1), 3)

	// A weaker single cannot follow either.
	require.False(t, g.ApplyPlay(1, []domain.Card{c(domain.Three, domain.Diamonds)}))
}

func TestPassCycleReturnsLeadToTrickOwner(t *testing.T) {
	g := testGame(5)
	g.InitializeGame()
	g.mustIncludeOpener = false
	g.turn = 0
	g.players[0].hand = []domain.Card{c(domain.Ten, domain.Hearts), c(domain.Four, domain.Clubs)}

	require.True(t, g.ApplyPlay(0, []domain.Card{c(domain.Ten, domain.Hearts)}))
	require.NotNil(t, g.Trick())

	// All three others pass in sequence.
	for i := 0; i < 3; i++ {
		require.True(t, g.HandlePass())
	}

	assert.Nil(t, g.Trick(), "trick should clear after all others pass")
	assert.Equal(t, 0, g.Turn(), "lead returns to the trick owner")

	// The leader may not pass on an open table.
	require.False(t, g.HandlePass())
	assert.NotEmpty(t, g.Message)
}

func TestPayoutZeroSumAndLoserMultipliers(t *testing.T) {
	updatesSeen := 0
	var got []Update
	g := NewGame(testSeats(), Options{
		BaseBet: 100,
		Tuning:  bot.FastTuning,
		Rand:    rand.New(rand.NewSource(6)),
		OnProfilesUpdate: func(u []Update) {
			updatesSeen++
			got = u
		},
	})
	g.InitializeGame()
	g.mustIncludeOpener = false
	g.turn = 0

	// Winner finishes with a plain single: no 2s, no bomb.
	g.players[0].hand = []domain.Card{c(domain.Ten, domain.Hearts)}
	// Nine cards left including one 2 and no bomb:
	// countMult 2 (8 <= 9 < 10) x 2^1 = x4 => pays 100 * 9 * 4 = 3600.
	g.players[1].hand = []domain.Card{
		c(domain.Three, domain.Clubs), c(domain.Four, domain.Diamonds), c(domain.Five, domain.Hearts),
		c(domain.Seven, domain.Spades), c(domain.Eight, domain.Clubs), c(domain.Nine, domain.Diamonds),
		c(domain.Jack, domain.Hearts), c(domain.Queen, domain.Spades), c(domain.Two, domain.Clubs),
	}
	// Small plain hands: pay 100 * 1 * 1 each.
	g.players[2].hand = []domain.Card{c(domain.Six, domain.Clubs)}
	g.players[3].hand = []domain.Card{c(domain.Seven, domain.Diamonds)}

	require.True(t, g.ApplyPlay(0, []domain.Card{c(domain.Ten, domain.Hearts)}))

	require.Equal(t, 1, updatesSeen, "payout callback fires exactly once")
	require.Len(t, got, 4)

	assert.Equal(t, int64(5000-3600), g.SeatInfo(1).Chips)
	assert.Equal(t, int64(5000-100), g.SeatInfo(2).Chips)
	assert.Equal(t, int64(5000-100), g.SeatInfo(3).Chips)
	assert.Equal(t, int64(5000+3800), g.SeatInfo(0).Chips)

	total := int64(0)
	for i := 0; i < 4; i++ {
		total += g.SeatInfo(i).Chips
	}
	assert.Equal(t, int64(20000), total, "settlement is zero-sum")

	for _, u := range got {
		if u.Name == "You" {
			assert.Equal(t, ResultWin, u.Result)
		} else {
			assert.Equal(t, ResultLose, u.Result)
		}
	}
}

func TestPayoutWinnerBombAndTwosMultipliers(t *testing.T) {
	g := testGame(7)
	g.InitializeGame()
	g.mustIncludeOpener = false
	g.turn = 0

	// Winner finishes with a quad including no 2s: x2 for the bomb.
	g.players[0].hand = []domain.Card{
		c(domain.Nine, domain.Clubs), c(domain.Nine, domain.Diamonds),
		c(domain.Nine, domain.Hearts), c(domain.Nine, domain.Spades),
		c(domain.Four, domain.Clubs),
	}
	g.players[1].hand = []domain.Card{c(domain.Six, domain.Clubs)}
	g.players[2].hand = []domain.Card{c(domain.Seven, domain.Clubs)}
	g.players[3].hand = []domain.Card{c(domain.Eight, domain.Clubs)}

	require.True(t, g.ApplyPlay(0, g.players[0].hand))

	// Each loser: 100 * 1 card * 1 * winnerMult(2) = 200.
	assert.Equal(t, int64(5000-200), g.SeatInfo(1).Chips)
	assert.Equal(t, int64(5000+600), g.SeatInfo(0).Chips)
}

func TestPayoutSettlesOnlyOnce(t *testing.T) {
	g := testGame(8)
	g.InitializeGame()
	g.settlePayout(0, domain.Combo{Type: domain.Single})
	chips := g.SeatInfo(0).Chips
	g.settlePayout(0, domain.Combo{Type: domain.Single})
	assert.Equal(t, chips, g.SeatInfo(0).Chips, "second settlement must be a no-op")
}

func TestFullAIRoundRunsToCompletion(t *testing.T) {
	seats := []Seat{
		{Name: "A", Chips: 5000, IsAI: true},
		{Name: "B", Chips: 5000, IsAI: true},
		{Name: "C", Chips: 5000, IsAI: true},
		{Name: "D", Chips: 5000, IsAI: true},
	}
	g := NewGame(seats, Options{
		BaseBet: 100,
		Tuning:  bot.FastTuning,
		Rand:    rand.New(rand.NewSource(9)),
	})
	g.InitializeGame()

	for step := 0; step < 1000 && g.Phase() == PhasePlaying; step++ {
		require.True(t, g.PlayAITurn(), "AI turn stalled at step %d", step)

		// Conservation: hands plus discards always cover the deck.
		total := len(g.played)
		for i := 0; i < g.PlayerCount(); i++ {
			total += len(g.Hand(i))
		}
		require.Equal(t, 52, total)
	}

	require.Equal(t, PhaseResult, g.Phase())
	require.NotEmpty(t, g.FinishOrder())

	total := int64(0)
	for i := 0; i < g.PlayerCount(); i++ {
		total += g.SeatInfo(i).Chips
	}
	assert.Equal(t, int64(20000), total)
}

func TestNightmareRoundRunsToCompletion(t *testing.T) {
	g := NewGame(testSeats(), Options{
		BaseBet:   100,
		Nightmare: true,
		HumanSeat: 0,
		Tuning:    bot.FastTuning,
		Rand:      rand.New(rand.NewSource(10)),
	})
	g.InitializeGame()

	for step := 0; step < 2000 && g.Phase() == PhasePlaying; step++ {
		if g.SeatInfo(g.Turn()).IsAI {
			require.True(t, g.PlayAITurn())
			continue
		}
		// Drive the human seat with the minimal legal play, passing
		// when nothing beats.
		hand := g.Hand(g.Turn())
		var current *domain.Combo
		if tr := g.Trick(); tr != nil {
			current = &tr.Combo
		}
		moves := domain.LegalMoves(hand, current)
		if g.MustLeadOpener() {
			require.True(t, g.ApplyPlay(g.Turn(), []domain.Card{domain.ThreeOfClubs}))
			continue
		}
		if len(moves) == 0 {
			require.True(t, g.HandlePass())
			continue
		}
		require.True(t, g.ApplyPlay(g.Turn(), moves[0].Cards))
	}

	require.Equal(t, PhaseResult, g.Phase())
}
