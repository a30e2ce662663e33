package engine

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"bigtwo/internal/bot"
	"bigtwo/internal/domain"
)

// Phase is the round lifecycle stage.
type Phase string

const (
	PhasePlaying Phase = "playing"
	PhaseResult  Phase = "result"
)

// Seat is the lobby-supplied identity of a table participant.
type Seat struct {
	ID     string
	Name   string
	Avatar string
	Chips  int64
	IsAI   bool
}

// Result of a settled round for one seat.
type Result string

const (
	ResultWin  Result = "win"
	ResultLose Result = "lose"
)

// Update reports one seat's settled balance for external persistence.
type Update struct {
	Name   string
	Chips  int64
	Result Result
}

// NPCProfile supplies per-NPC tactic weight hints and quote pools.
// The rules and AI math never depend on quote content.
type NPCProfile struct {
	TacticWeights map[bot.Tactic]float64
	Quotes        map[QuoteEvent][]string
}

// Options configures a table.
type Options struct {
	BaseBet   int64
	Nightmare bool
	HumanSeat int
	Tuning    bot.Tuning
	Rand      *rand.Rand
	Logger    *log.Logger
	// NPCProfiles is keyed by seat name.
	NPCProfiles map[string]NPCProfile
	// OnProfilesUpdate is invoked exactly once per round at payout
	// settlement. The engine persists nothing itself.
	OnProfilesUpdate func([]Update)
}

type player struct {
	Seat
	hand     []domain.Card
	passed   bool
	finished bool
	tactic   bot.Tactic
	quote    string
}

// Game holds authoritative state for a single four-seat table. All
// mutation happens synchronously inside its methods; rejected actions
// leave the state untouched and surface a reason via Message.
type Game struct {
	phase             Phase
	players           []*player
	trick             *domain.Trick
	turn              int
	mustIncludeOpener bool
	finishOrder       []int
	played            []domain.Card
	payoutSettled     bool
	history           []RoundStats

	// Message carries the human-readable reason for the last rejected
	// action.
	Message string

	opts   Options
	rng    *rand.Rand
	logger *log.Logger
}

// NewGame builds a table from lobby seats. Chip balances originate
// from the caller's profile store.
func NewGame(seats []Seat, opts Options) *Game {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Tuning == (bot.Tuning{}) {
		opts.Tuning = bot.DefaultTuning
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.BaseBet <= 0 {
		opts.BaseBet = 100
	}

	g := &Game{
		phase:  PhaseResult,
		opts:   opts,
		rng:    opts.Rand,
		logger: opts.Logger,
	}
	for _, s := range seats {
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		g.players = append(g.players, &player{Seat: s})
	}
	return g
}

// InitializeGame shuffles and deals a fresh round: 52 cards round-robin,
// tactics for AI seats, opening lead to the holder of the 3 of clubs.
func (g *Game) InitializeGame() {
	deck := domain.Shuffle(g.rng, domain.NewDeck())
	hands := domain.Deal(deck, len(g.players))

	g.trick = nil
	g.played = g.played[:0]
	g.finishOrder = g.finishOrder[:0]
	g.payoutSettled = false
	g.mustIncludeOpener = true
	g.Message = ""
	g.phase = PhasePlaying

	for i, p := range g.players {
		p.hand = hands[i]
		p.passed = false
		p.finished = false
		p.quote = ""
		if p.IsAI {
			var weights map[bot.Tactic]float64
			if profile, ok := g.opts.NPCProfiles[p.Name]; ok {
				weights = profile.TacticWeights
			}
			p.tactic = bot.PickTactic(g.rng, weights)
		}
		if domain.ContainsCard(p.hand, domain.ThreeOfClubs) {
			g.turn = i
		}
	}

	g.appendStats(snapshotStats(hands))
	g.logger.Info("round dealt", "leader", g.players[g.turn].Name, "seats", len(g.players))

	for _, p := range g.players {
		g.maybeQuote(p, QuoteDeal)
	}
}

// ApplyPlay validates and applies a play for the given seat. It
// returns false without mutating anything when the play is illegal,
// with the reason in Message.
func (g *Game) ApplyPlay(seat int, cards []domain.Card) bool {
	if g.phase != PhasePlaying {
		g.Message = "the round is over"
		return false
	}
	if seat != g.turn {
		g.Message = "not your turn"
		return false
	}
	p := g.players[seat]
	if !handHolds(p.hand, cards) {
		g.Message = "those cards are not in your hand"
		return false
	}

	combo, ok := domain.Evaluate(cards)
	if !ok {
		g.Message = "that is not a playable combination"
		return false
	}
	if g.mustIncludeOpener && !domain.ContainsCard(cards, domain.ThreeOfClubs) {
		g.Message = "the opening lead must include the 3 of clubs"
		return false
	}
	if !domain.CanBeat(combo, g.trickCombo()) {
		g.Message = "that does not beat the current trick"
		return false
	}

	p.hand = domain.RemoveCards(p.hand, cards)
	g.played = append(g.played, cards...)
	g.trick = &domain.Trick{Seat: seat, Combo: combo}
	g.mustIncludeOpener = false
	g.Message = ""
	for _, other := range g.players {
		other.passed = false
	}

	g.logger.Debug("play", "seat", p.Name, "combo", combo.Type.String(), "cards", domain.FormatCards(cards))
	if combo.CutRank > domain.CutNone {
		g.maybeQuote(p, QuoteBomb)
	}

	if len(p.hand) == 0 {
		p.finished = true
		g.finishOrder = append(g.finishOrder, seat)
		g.settlePayout(seat, combo)
		g.maybeQuote(p, QuoteWin)
	}

	if g.activeSeats() <= 1 {
		g.finishRound()
		return true
	}
	g.turn = g.nextActive(seat)
	return true
}

// HandlePass marks the current seat passed. When every other active
// seat has passed since the last successful play, the trick clears and
// the lead returns to the trick's owner.
func (g *Game) HandlePass() bool {
	if g.phase != PhasePlaying {
		g.Message = "the round is over"
		return false
	}
	if g.trick == nil {
		g.Message = "the leader must play"
		return false
	}

	seat := g.turn
	p := g.players[seat]
	p.passed = true
	g.Message = ""
	g.maybeQuote(p, QuotePass)

	owner := g.trick.Seat
	cleared := true
	for i, other := range g.players {
		if i == owner || other.finished {
			continue
		}
		if !other.passed {
			cleared = false
			break
		}
	}

	if cleared {
		g.trick = nil
		for _, other := range g.players {
			other.passed = false
		}
		if g.players[owner].finished {
			g.turn = g.nextActive(owner)
		} else {
			g.turn = owner
		}
		g.logger.Debug("trick cleared", "leader", g.players[g.turn].Name)
		return true
	}

	g.turn = g.nextActive(seat)
	return true
}

// PlayAITurn runs the decision for the current seat when it is an AI.
// The caller owns pacing (think delays); the decision itself runs
// synchronously.
func (g *Game) PlayAITurn() bool {
	if g.phase != PhasePlaying {
		return false
	}
	p := g.players[g.turn]
	if !p.IsAI {
		return false
	}

	move := bot.ChoosePlay(g.botContext(g.turn))
	if move == nil {
		return g.HandlePass()
	}
	if !g.ApplyPlay(g.turn, move) {
		// Candidates are CanBeat-filtered, so this is unreachable in
		// practice; pass keeps the table moving regardless.
		g.logger.Error("ai produced an illegal play", "seat", p.Name, "reason", g.Message)
		return g.HandlePass()
	}
	return true
}

// botContext snapshots the table for the AI layer. Hands are copied so
// the agent cannot mutate engine state.
func (g *Game) botContext(seat int) *bot.Context {
	hands := make([][]domain.Card, len(g.players))
	finished := make([]bool, len(g.players))
	for i, p := range g.players {
		hands[i] = append([]domain.Card{}, p.hand...)
		finished[i] = p.finished
	}
	var trick *domain.Trick
	if g.trick != nil {
		t := *g.trick
		trick = &t
	}
	return &bot.Context{
		Seat:              seat,
		Hands:             hands,
		Finished:          finished,
		Trick:             trick,
		Played:            append([]domain.Card{}, g.played...),
		MustIncludeOpener: g.mustIncludeOpener,
		Tactic:            g.players[seat].tactic,
		Nightmare:         g.opts.Nightmare,
		HumanSeat:         g.opts.HumanSeat,
		Tuning:            g.opts.Tuning,
		Rand:              g.rng,
	}
}

func (g *Game) finishRound() {
	// Any seat still holding cards ranks last, after the elimination
	// order.
	for i, p := range g.players {
		if !p.finished {
			g.finishOrder = append(g.finishOrder, i)
		}
	}
	g.phase = PhaseResult
	g.logger.Info("round over", "winner", g.players[g.finishOrder[0]].Name)
}

func (g *Game) activeSeats() int {
	n := 0
	for _, p := range g.players {
		if !p.finished && len(p.hand) > 0 {
			n++
		}
	}
	return n
}

func (g *Game) nextActive(from int) int {
	n := len(g.players)
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		p := g.players[seat]
		if !p.finished && len(p.hand) > 0 {
			return seat
		}
	}
	return from
}

func (g *Game) trickCombo() *domain.Combo {
	if g.trick == nil {
		return nil
	}
	return &g.trick.Combo
}

func handHolds(hand []domain.Card, cards []domain.Card) bool {
	if len(cards) == 0 {
		return false
	}
	seen := make(map[domain.Card]bool, len(cards))
	for _, c := range cards {
		if seen[c] || !domain.ContainsCard(hand, c) {
			return false
		}
		seen[c] = true
	}
	return true
}

// Accessors. Hands are returned as copies; the engine owns the truth.

func (g *Game) Phase() Phase        { return g.phase }
func (g *Game) Turn() int           { return g.turn }
func (g *Game) PlayerCount() int    { return len(g.players) }
func (g *Game) FinishOrder() []int  { return append([]int{}, g.finishOrder...) }
func (g *Game) MustLeadOpener() bool { return g.mustIncludeOpener }

func (g *Game) Trick() *domain.Trick {
	if g.trick == nil {
		return nil
	}
	t := *g.trick
	return &t
}

func (g *Game) Hand(seat int) []domain.Card {
	return append([]domain.Card{}, g.players[seat].hand...)
}

func (g *Game) SeatInfo(seat int) Seat {
	return g.players[seat].Seat
}

func (g *Game) Finished(seat int) bool {
	return g.players[seat].finished
}

func (g *Game) Passed(seat int) bool {
	return g.players[seat].passed
}

func (g *Game) Tactic(seat int) bot.Tactic {
	return g.players[seat].tactic
}

func (g *Game) Quote(seat int) string {
	return g.players[seat].quote
}
