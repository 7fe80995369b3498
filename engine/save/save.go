// Package save implements JSON snapshot and restore of the full game
// state, including the randomizer stream position so restored games
// replay the same draws.
package save

import (
	"encoding/json"
	"fmt"

	"github.com/nathoo/dirquest/character"
	"github.com/nathoo/dirquest/engine"
	"github.com/nathoo/dirquest/location"
	"github.com/nathoo/dirquest/quest"
	"github.com/nathoo/dirquest/types"
)

// Version guards against loading snapshots from incompatible builds.
const Version = "1"

// Data is the JSON-serializable save format.
type Data struct {
	Version     string                       `json:"version"`
	Player      *character.Character         `json:"player"`
	Location    string                       `json:"location"`
	Gold        int                          `json:"gold"`
	Inventory   map[types.ItemKey]int        `json:"inventory"`
	Quests      quest.List                   `json:"quests"`
	Tombstones  map[string]*engine.Tombstone `json:"tombstones"`
	Hardcore    bool                         `json:"hardcore"`
	RNGSeed     int64                        `json:"rng_seed"`
	RNGPosition int64                        `json:"rng_position"`
}

// Snapshot serializes the game to JSON bytes. Encounters are transient
// and deliberately not persisted: a loaded game starts disengaged.
func Snapshot(g *engine.Game) ([]byte, error) {
	data := Data{
		Version:    Version,
		Player:     g.Player,
		Location:   g.Location.String(),
		Gold:       g.Gold,
		Inventory:  g.Inventory,
		Quests:     g.Quests,
		Tombstones: g.Tombstones,
		Hardcore:   g.Hardcore,
	}
	if rng, ok := g.Rand.(*engine.RNG); ok {
		data.RNGSeed = rng.Seed()
		data.RNGPosition = rng.Position()
	}
	return json.MarshalIndent(data, "", "  ")
}

// Restore rebuilds a game from snapshot bytes against the given catalog.
func Restore(raw []byte, catalog *character.Catalog) (*engine.Game, error) {
	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	if data.Version != Version {
		return nil, fmt.Errorf("incompatible save version %q", data.Version)
	}
	if data.Player == nil {
		return nil, fmt.Errorf("save has no player")
	}
	loc, err := location.Parse(data.Location)
	if err != nil {
		return nil, fmt.Errorf("save location: %w", err)
	}

	// Maps must never be nil after load.
	if data.Inventory == nil {
		data.Inventory = map[types.ItemKey]int{}
	}
	if data.Tombstones == nil {
		data.Tombstones = map[string]*engine.Tombstone{}
	}
	if data.Player.Skills == nil {
		data.Player.Skills = map[character.Skill]bool{}
	}

	g := engine.New(catalog, data.Quests, engine.RestoreRNG(data.RNGSeed, data.RNGPosition))
	g.Player = data.Player
	g.Location = loc
	g.Gold = data.Gold
	g.Inventory = data.Inventory
	g.Tombstones = data.Tombstones
	g.Hardcore = data.Hardcore
	return g, nil
}
