package bot

import (
	"math"
	"math/rand"
	"sort"

	"bigtwo/internal/domain"
)

// Role is a cooperative assignment among teamed agents. Roles are
// derived live from the current hand snapshot on every decision, never
// cached, so control shifts as hands deplete.
type Role int

const (
	RoleFinisher Role = iota
	RoleController
	RoleBreaker
)

func (r Role) String() string {
	switch r {
	case RoleFinisher:
		return "finisher"
	case RoleController:
		return "controller"
	default:
		return "breaker"
	}
}

// tableView is the state shared by the live team decision and the
// rollout team policy, so simulated teammates play exactly like real
// ones.
type tableView struct {
	seat      int
	hands     [][]domain.Card
	finished  []bool
	trick     *domain.Trick
	played    []domain.Card
	humanSeat int
	tuning    Tuning
	rng       *rand.Rand
}

func (ctx *Context) liveView() *tableView {
	return &tableView{
		seat:      ctx.Seat,
		hands:     ctx.Hands,
		finished:  ctx.Finished,
		trick:     ctx.Trick,
		played:    ctx.Played,
		humanSeat: ctx.HumanSeat,
		tuning:    ctx.Tuning,
		rng:       ctx.Rand,
	}
}

func (v *tableView) trickCombo() *domain.Combo {
	if v.trick == nil {
		return nil
	}
	return &v.trick.Combo
}

// DeriveRoles assigns cooperative roles from a hand snapshot. The seat
// with the lowest handSize*10 - meanPower score is closest to winning
// and becomes the finisher, the next is the controller, the rest are
// breakers. The human seat and finished seats carry no role.
func DeriveRoles(hands [][]domain.Card, finished []bool, humanSeat int) map[int]Role {
	type rated struct {
		seat  int
		score float64
	}
	var seats []rated
	for i, h := range hands {
		if i == humanSeat || finished[i] || len(h) == 0 {
			continue
		}
		power := 0.0
		for _, c := range h {
			power += float64(domain.Power(c))
		}
		seats = append(seats, rated{seat: i, score: float64(len(h))*10 - power/float64(len(h))})
	}
	sort.Slice(seats, func(i, j int) bool {
		if seats[i].score != seats[j].score {
			return seats[i].score < seats[j].score
		}
		return seats[i].seat < seats[j].seat
	})

	roles := make(map[int]Role, len(seats))
	for i, s := range seats {
		switch i {
		case 0:
			roles[s.seat] = RoleFinisher
		case 1:
			roles[s.seat] = RoleController
		default:
			roles[s.seat] = RoleBreaker
		}
	}
	return roles
}

// teamPolicy is the full nightmare decision for one seat: the
// teammate-trick gate first, then role-scored candidate selection.
// Returns nil to pass.
func teamPolicy(v *tableView) []domain.Card {
	hand := v.hands[v.seat]
	candidates := domain.LegalMoves(hand, v.trickCombo())
	if len(candidates) == 0 {
		return nil
	}

	if move, decided := teamTrickGate(v, candidates); decided {
		return move
	}

	best := candidates[0]
	bestScore := teamScore(v, best)
	for _, c := range candidates[1:] {
		if s := teamScore(v, c); s > bestScore {
			best, bestScore = c, s
		}
	}

	// Following an opponent trick is optional; do not spend into a
	// losing position.
	if v.trick != nil && bestScore < 0 {
		return nil
	}
	return best.Cards
}

// teamTrickGate handles the case where a teammate owns the active
// trick: win outright if possible, intercept only when the human is
// next and dangerously close on a weak trick, otherwise pass
// deliberately to preserve the teammate's lead. The second return is
// false when the gate does not apply.
func teamTrickGate(v *tableView, candidates []domain.Combo) ([]domain.Card, bool) {
	if v.trick == nil {
		return nil, false
	}
	owner := v.trick.Seat
	if owner == v.seat || owner == v.humanSeat {
		return nil, false
	}

	hand := v.hands[v.seat]
	for _, c := range candidates {
		if len(c.Cards) == len(hand) {
			return c.Cards, true
		}
	}

	humanNext := activeAfter(v.seat, v.hands, v.finished) == v.humanSeat
	humanClose := len(v.hands[v.humanSeat]) <= v.tuning.InterceptHandMax
	weakTrick := v.trick.Combo.CutRank == domain.CutNone &&
		v.trick.Combo.Strength <= v.tuning.InterceptStrengthMax
	if humanNext && humanClose && weakTrick {
		return minimalCandidate(candidates).Cards, true
	}

	return nil, true
}

// teamScore is the hand-crafted multi-factor candidate score for the
// nightmare team path.
func teamScore(v *tableView, c domain.Combo) float64 {
	roles := DeriveRoles(v.hands, v.finished, v.humanSeat)
	role := roles[v.seat]
	hand := v.hands[v.seat]
	humanHand := len(v.hands[v.humanSeat])

	finishes := len(c.Cards) == len(hand)
	leading := v.trick == nil
	humanOwnsTrick := v.trick != nil && v.trick.Seat == v.humanSeat
	humanThreat := humanHand <= v.tuning.InterceptHandMax || humanOwnsTrick

	score := 0.0
	if finishes {
		score += 500
	}

	switch role {
	case RoleFinisher:
		if finishes {
			score += 1000
		}
		score += float64(len(c.Cards)) * 8
	case RoleController:
		if leading {
			if len(c.Cards) >= 3 {
				score += 30
			}
			if c.Type == domain.Single && humanHand <= v.tuning.PressureHandMax {
				score += float64(c.Strength) * 0.5
			}
		} else if humanOwnsTrick {
			if humanHand <= v.tuning.PressureHandMax {
				score += float64(c.Strength)*0.6 + float64(len(c.Cards))*4
			} else {
				score -= float64(c.Strength) * 0.4
			}
		}
	case RoleBreaker:
		spendable := c.CutRank > domain.CutNone || domain.CountRank(c.Cards, domain.Two) > 0
		if spendable {
			if humanThreat {
				score += 40
			} else {
				score -= 60
			}
		}
	}

	// Overkill: do not waste strength crushing a weak trick.
	if v.trick != nil {
		prev := v.trick.Combo
		if c.CutRank == prev.CutRank {
			score -= float64(c.Strength-prev.Strength) * 0.5
		} else if c.CutRank > prev.CutRank && !humanThreat {
			score -= 80
		}
	}

	// Relay: reward plays a teammate downstream can plausibly follow.
	next := activeAfter(v.seat, v.hands, v.finished)
	if next != v.seat && next != v.humanSeat && teammateCanFollow(v.hands[next], c) {
		score += 15
	}

	// Feeding a high single to a human who likely holds a 2 hands them
	// the trick; bullying with high singles is right when they do not.
	if c.Type == domain.Single && c.Strength >= highSingleThreshold {
		p := humanTwoSignal(v)
		if p > 0.5 {
			score -= 20 * p
		} else {
			score += 15 * (1 - p)
		}
	}

	return score
}

// highSingleThreshold is the power of the lowest ace.
var highSingleThreshold = domain.Power(domain.Card{Rank: domain.Ace, Suit: domain.Clubs})

func teammateCanFollow(teammate []domain.Card, c domain.Combo) bool {
	return len(domain.LegalMoves(teammate, &c)) > 0
}

// humanTwoSignal estimates the probability that the human still holds
// at least one 2, using the cards known to the team (teammate hands
// and everything played).
func humanTwoSignal(v *tableView) float64 {
	known := append([]domain.Card{}, v.played...)
	for i, h := range v.hands {
		if i != v.humanSeat {
			known = append(known, h...)
		}
	}
	unseen := domain.RemoveCards(domain.NewDeck(), known)
	return humanHoldsTwoProbability(len(unseen), len(v.hands[v.humanSeat]), domain.CountRank(unseen, domain.Two))
}

// humanHoldsTwoProbability returns P(the human holds >= 1 two) given
// the unseen pool. When the pool is exactly the human's hand the
// answer is deduced, not estimated; otherwise a binomial approximation
// over the pool is used.
func humanHoldsTwoProbability(unseenCount, humanCards, twosUnseen int) float64 {
	if twosUnseen == 0 || humanCards == 0 || unseenCount == 0 {
		return 0
	}
	if unseenCount == humanCards {
		return 1
	}
	ratio := float64(humanCards) / float64(unseenCount)
	return 1 - math.Pow(1-ratio, float64(twosUnseen))
}
