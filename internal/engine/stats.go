package engine

import (
	"time"

	"bigtwo/internal/domain"
)

// historyCap bounds the rolling round-statistics history.
const historyCap = 100

// RoundStats is an observational snapshot of hand composition across
// all seats at deal time. It is persisted externally and never read by
// the AI.
type RoundStats struct {
	DealtAt   time.Time `json:"dealt_at"`
	Twos      int       `json:"twos"`
	Pairs     int       `json:"pairs"`
	Triples   int       `json:"triples"`
	Straights int       `json:"straights"`
	Bombs     int       `json:"bombs"`
}

func snapshotStats(hands [][]domain.Card) RoundStats {
	stats := RoundStats{DealtAt: time.Now()}
	for _, hand := range hands {
		stats.Twos += domain.CountRank(hand, domain.Two)

		counts := make(map[domain.Rank]int)
		for _, c := range hand {
			counts[c.Rank]++
		}
		for _, n := range counts {
			switch n {
			case 2:
				stats.Pairs++
			case 3:
				stats.Triples++
			case 4:
				stats.Bombs++
			}
		}
		stats.Straights += disjointStraights(counts)
		if len(domain.StraightFlushes(hand, -1)) > 0 {
			stats.Bombs++
		}
	}
	return stats
}

// disjointStraights counts non-overlapping runs of five consecutive
// ranks (2 excluded) present in the rank set.
func disjointStraights(counts map[domain.Rank]int) int {
	runs := 0
	run := 0
	for r := domain.Three; r < domain.Two; r++ {
		if counts[r] > 0 {
			run++
			if run == 5 {
				runs++
				run = 0
			}
		} else {
			run = 0
		}
	}
	return runs
}

func (g *Game) appendStats(s RoundStats) {
	g.history = append(g.history, s)
	if len(g.history) > historyCap {
		g.history = g.history[len(g.history)-historyCap:]
	}
}

// History returns the rolling per-round statistics, oldest first.
func (g *Game) History() []RoundStats {
	return append([]RoundStats{}, g.history...)
}

// SetHistory preloads history read back from external storage.
func (g *Game) SetHistory(h []RoundStats) {
	if len(h) > historyCap {
		h = h[len(h)-historyCap:]
	}
	g.history = append([]RoundStats{}, h...)
}
