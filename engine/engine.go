// Package engine owns the game state tree and resolves player actions:
// movement, encounters, combat, items, and the death ledger. Every verb is
// a synchronous function over the single Game value; within one action the
// order is fixed — movement, status tick, death pipeline, encounter
// resolution, event dispatch.
package engine

import (
	"fmt"
	"strings"

	"github.com/nathoo/dirquest/character"
	"github.com/nathoo/dirquest/location"
	"github.com/nathoo/dirquest/quest"
	"github.com/nathoo/dirquest/types"
)

// Game is the explicitly constructed context object passed through all
// encounter, combat, and quest operations. The catalog is loaded before
// any spawn call; the encounter slot holds at most one of an enemy or an
// NPC, never both.
type Game struct {
	Catalog    *character.Catalog
	Player     *character.Character
	Location   location.Location
	Gold       int
	Inventory  map[types.ItemKey]int
	Quests     quest.List
	Tombstones map[string]*Tombstone
	Hardcore   bool
	Rand       Randomizer

	InCombat    *character.Character
	InEncounter types.NPCKind
}

// New creates a fresh game: a level-1 hero of the first player class,
// standing at home.
func New(catalog *character.Catalog, quests quest.List, rng Randomizer) *Game {
	return &Game{
		Catalog:    catalog,
		Player:     character.New(catalog.PlayerFirst(), 1),
		Location:   location.Home(),
		Inventory:  map[types.ItemKey]int{},
		Quests:     quests,
		Tombstones: map[string]*Tombstone{},
		Rand:       rng,
	}
}

// Engaged reports whether any encounter is currently active.
func (g *Game) Engaged() bool {
	return g.InCombat != nil || g.InEncounter != types.NPCNone
}

// GoTo walks the hero towards dest one directory at a time. Each step
// ticks status effects and may spawn an encounter; a spawn stops the walk,
// leaving the hero engaged at the current location.
func (g *Game) GoTo(dest location.Location) (types.Result, error) {
	var res types.Result
	if g.InCombat != nil {
		return res, fmt.Errorf("%w: you can't travel while an enemy blocks the way", ErrInvalidAction)
	}
	// Walking away from an NPC just ends the meeting.
	g.InEncounter = types.NPCNone

	for !g.Location.Equal(dest) {
		g.Location = g.Location.Towards(dest)
		if err := g.arrive(&res); err != nil {
			return res, err
		}
		if g.Engaged() {
			break
		}
	}
	return res, nil
}

// Visit moves the hero directly to dest without spawning encounters.
// Intended for scripts and shell integration. Destination side effects
// still apply: the status tick (which may be lethal) and home recovery.
func (g *Game) Visit(dest location.Location) (types.Result, error) {
	var res types.Result
	if g.InCombat != nil {
		return res, fmt.Errorf("%w: you can't travel while an enemy blocks the way", ErrInvalidAction)
	}
	g.InEncounter = types.NPCNone

	moved := !g.Location.Equal(dest)
	g.Location = dest
	if moved {
		if err := g.tickStatus(&res); err != nil {
			return res, err
		}
	}
	g.recoverAtHome(&res)
	return res, nil
}

// arrive applies the side effects of stepping into the current location:
// status tick, home recovery, then at most one encounter spawn — enemy
// first, NPC only if no enemy appeared.
func (g *Game) arrive(res *types.Result) error {
	if err := g.tickStatus(res); err != nil {
		return err
	}
	g.recoverAtHome(res)

	if enemy := g.SpawnEnemy(); enemy != nil {
		g.InCombat = enemy
		res.Say(fmt.Sprintf("A %s [lv.%d] appears at %s!", enemy.Name(), enemy.Level, g.Location))
		return nil
	}
	if kind := g.SpawnNPC(); kind != types.NPCNone {
		g.InEncounter = kind
		res.Say(fmt.Sprintf("A %s approaches you at %s.", kind, g.Location))
	}
	return nil
}

// tickStatus applies one status-effect tick. Runs on every location change,
// even forced moves that bypass combat; a lethal tick runs the full death
// pipeline.
func (g *Game) tickStatus(res *types.Result) error {
	status := g.Player.Status
	damage := g.Player.ApplyStatusTick()
	if damage == 0 {
		return nil
	}
	res.Say(fmt.Sprintf("The %s wears you down for %d hp.", status, damage))
	if g.Player.IsDead() {
		return g.settleDeath(res)
	}
	return nil
}

// recoverAtHome restores full health and cures status effects when the
// hero is at the home location.
func (g *Game) recoverAtHome(res *types.Result) {
	if !g.Location.IsHome() {
		return
	}
	missing := g.Player.MaxHP() - g.Player.CurrentHP
	if missing > 0 {
		g.Player.RestoreHP()
		res.Say(fmt.Sprintf("Home sweet home. You recover %d hp.", missing))
	}
	g.Player.CureStatus()
}

// Inspect examines the current location, picking up any tombstone and
// occasionally finding a treasure chest. Inspecting never ticks status
// effects and never spawns encounters.
func (g *Game) Inspect() (types.Result, error) {
	var res types.Result

	if t, ok := g.Tombstones[g.Location.String()]; ok {
		delete(g.Tombstones, g.Location.String())
		g.Gold += t.Gold
		res.Say(fmt.Sprintf("You found a hero's tombstone holding %d gold.", t.Gold))
		g.dispatch(&res, types.TombstoneVisited{Gold: t.Gold})
	}

	if !g.Location.IsHome() && g.Rand.Range(4) == 0 {
		steps := g.Location.DistanceFromHome().Len()
		gold := (steps + 1) * (10 + g.Rand.Range(20))
		g.Gold += gold
		res.Say(fmt.Sprintf("You found a chest with %d gold.", gold))
		if steps >= 50 && g.Rand.Range(10) == 0 {
			g.addItem(&res, types.KeyAmulet)
		} else if g.Rand.Range(10) == 0 {
			g.addItem(&res, types.KeyPotion)
		}
	}

	if len(res.Output) == 0 {
		res.Say("Nothing interesting here.")
	}
	return res, nil
}

// ChangeClass swaps the hero's class, restarting progression. Only allowed
// at home, and only to player-selectable classes.
func (g *Game) ChangeClass(name string) (types.Result, error) {
	var res types.Result
	if !g.Location.IsHome() {
		return res, fmt.Errorf("%w: class change is only allowed at home", ErrInvalidAction)
	}
	class, ok := g.Catalog.ByName(strings.ToLower(strings.TrimSpace(name)))
	if !ok || class.Category != character.CategoryPlayer {
		return res, fmt.Errorf("%w: %s", ErrUnknownClass, name)
	}
	g.Player.ChangeClass(class)
	res.Say(fmt.Sprintf("You are now a %s.", class.Name))
	return res, nil
}

// Reset restarts the hero: level 1, no gold, no items, back home, slots
// cleared. World state — tombstones and quest progress — survives unless
// hard is set (hardcore death or an explicit hard reset).
func (g *Game) Reset(hard bool) {
	g.Player = character.New(g.Player.Class, 1)
	g.Gold = 0
	g.Inventory = map[types.ItemKey]int{}
	g.Location = location.Home()
	g.InCombat = nil
	g.InEncounter = types.NPCNone
	if hard {
		g.Tombstones = map[string]*Tombstone{}
		g.Quests.Reset()
	}
}

// Grind is a debug shortcut: reset, then level the hero and fill the purse.
func (g *Game) Grind(level int) {
	g.Reset(false)
	g.Gold = 500 * level
	for g.Player.Level < level {
		g.Player.AddExperience(g.Player.XPForNext())
	}
}

// dispatch records the event on the result and delivers it to the quest
// board, crediting any unlocked rewards.
func (g *Game) dispatch(res *types.Result, ev types.Event) {
	res.Events = append(res.Events, ev)
	reward, completed := g.Quests.Dispatch(ev)
	for _, desc := range completed {
		res.Say(fmt.Sprintf("Quest completed: %s", desc))
	}
	if reward > 0 {
		g.Gold += reward
		res.Say(fmt.Sprintf("+%d gold reward", reward))
	}
}
