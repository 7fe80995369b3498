package engine

import (
	"fmt"

	"github.com/nathoo/dirquest/types"
)

// Tombstone is the recoverable world object left where a hero died,
// holding the gold they carried. Picked up — and destroyed — the first
// time the location is inspected again.
type Tombstone struct {
	Gold int `json:"gold"`
}

// settleDeath runs the death pipeline atomically: a tombstone at the death
// location takes all carried gold, the hero is reset to the level-1
// baseline, and any active encounter is cleared. Returns ErrDead so the
// calling layer reports the death instead of recovering silently.
func (g *Game) settleDeath(res *types.Result) error {
	gold := g.Gold
	key := g.Location.String()
	if t, ok := g.Tombstones[key]; ok {
		// Dying twice in one place stacks the gold on the existing stone.
		t.Gold += gold
	} else {
		g.Tombstones[key] = &Tombstone{Gold: gold}
	}
	res.Say(fmt.Sprintf("You died at %s. A tombstone holds your %d gold.", g.Location, gold))
	g.Reset(g.Hardcore)
	return ErrDead
}
