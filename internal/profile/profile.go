package profile

import (
	"context"
	"errors"

	"bigtwo/internal/engine"
)

// ErrNotFound is returned by Get for a name that was never stored.
var ErrNotFound = errors.New("profile: not found")

// Profile is the persisted career record of one player, human or NPC.
type Profile struct {
	Name   string `json:"name"`
	Chips  int64  `json:"chips"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	// Debt absorbs any negative settlement so the table balance never
	// shows below zero.
	Debt int64 `json:"debt"`
}

// Store persists player profiles between rounds.
type Store interface {
	Get(ctx context.Context, name string) (Profile, error)
	Put(ctx context.Context, p Profile) error
	// Apply records a round settlement: one update per seat, carrying
	// the settled balance. Unknown names are created on the fly.
	Apply(ctx context.Context, updates []engine.Update) error
}

// applyUpdate folds one settlement into a profile.
func applyUpdate(p Profile, u engine.Update) Profile {
	p.Name = u.Name
	p.Chips = u.Chips
	if u.Result == engine.ResultWin {
		p.Wins++
	} else {
		p.Losses++
	}
	if p.Chips < 0 {
		p.Debt += -p.Chips
		p.Chips = 0
	}
	return p
}
