package engine

// QuoteEvent selects a flavor-text pool from an NPC profile.
type QuoteEvent string

const (
	QuoteDeal QuoteEvent = "deal"
	QuoteBomb QuoteEvent = "bomb"
	QuotePass QuoteEvent = "pass"
	QuoteWin  QuoteEvent = "win"
)

// maybeQuote sets a transient taunt on the player when its profile has
// a pool for the event. Quotes are presentation only.
func (g *Game) maybeQuote(p *player, event QuoteEvent) {
	if !p.IsAI {
		return
	}
	profile, ok := g.opts.NPCProfiles[p.Name]
	if !ok {
		return
	}
	pool := profile.Quotes[event]
	if len(pool) == 0 {
		return
	}
	p.quote = pool[g.rng.Intn(len(pool))]
}
