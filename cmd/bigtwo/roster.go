package main

import (
	"bigtwo/internal/bot"
	"bigtwo/internal/engine"
)

// npc is a built-in opponent identity. Tactic weights bias the
// per-round tactic draw; quotes are flavor only.
type npc struct {
	name    string
	avatar  string
	weights map[bot.Tactic]float64
	quotes  map[engine.QuoteEvent][]string
}

var roster = []npc{
	{
		name:   "Rex",
		avatar: "🦖",
		weights: map[bot.Tactic]float64{
			bot.TacticAggressive: 0.5,
			bot.TacticBait:       0.2,
			bot.TacticDeceptive:  0.2,
			bot.TacticConservative: 0.1,
		},
		quotes: map[engine.QuoteEvent][]string{
			engine.QuoteDeal: {"Let's make this quick.", "Fresh cards, same result."},
			engine.QuoteBomb: {"Boom.", "Didn't see that coming, did you?"},
			engine.QuotePass: {"Fine. Keep it.", "Not worth my cards."},
			engine.QuoteWin:  {"Too easy.", "Pay up."},
		},
	},
	{
		name:   "Mei",
		avatar: "🦊",
		weights: map[bot.Tactic]float64{
			bot.TacticDeceptive:    0.4,
			bot.TacticBait:         0.3,
			bot.TacticConservative: 0.2,
			bot.TacticAggressive:   0.1,
		},
		quotes: map[engine.QuoteEvent][]string{
			engine.QuoteDeal: {"Interesting hand...", "Let's see what you've got."},
			engine.QuoteBomb: {"Surprise.", "I was saving that."},
			engine.QuotePass: {"After you.", "Patience."},
			engine.QuoteWin:  {"As planned.", "You never saw it coming."},
		},
	},
	{
		name:   "Kato",
		avatar: "🐢",
		weights: map[bot.Tactic]float64{
			bot.TacticConservative: 0.5,
			bot.TacticBait:         0.3,
			bot.TacticDeceptive:    0.1,
			bot.TacticAggressive:   0.1,
		},
		quotes: map[engine.QuoteEvent][]string{
			engine.QuoteDeal: {"Slow and steady.", "No rush."},
			engine.QuoteBomb: {"Even a turtle bites.", "Had to be done."},
			engine.QuotePass: {"I'll wait.", "Mm."},
			engine.QuoteWin:  {"Slow wins the race.", "Good game."},
		},
	},
}

func npcProfiles() map[string]engine.NPCProfile {
	profiles := make(map[string]engine.NPCProfile, len(roster))
	for _, n := range roster {
		profiles[n.name] = engine.NPCProfile{
			TacticWeights: n.weights,
			Quotes:        n.quotes,
		}
	}
	return profiles
}
