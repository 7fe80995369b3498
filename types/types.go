// Package types defines the shared value types for the dirquest engine.
// This package contains only type definitions — no game logic.
package types

// Result is the outcome of one resolved player action.
type Result struct {
	Output []string
	Events []Event
}

// Say appends an output line to the result.
func (r *Result) Say(line string) {
	r.Output = append(r.Output, line)
}

// Event is an immutable fact emitted by combat, items, or the tombstone
// ledger and consumed by quests. The concrete types below form a closed set;
// handlers switch over them exhaustively.
type Event interface {
	event()
}

// BattleWon is emitted when an enemy is defeated.
type BattleWon struct {
	Enemy string
	Level int
}

// ItemAdded is emitted when an item enters the hero's inventory.
type ItemAdded struct {
	Key ItemKey
}

// TombstoneVisited is emitted when the hero recovers a tombstone's gold.
type TombstoneVisited struct {
	Gold int
}

// LevelReached is emitted when the hero's level increases.
type LevelReached struct {
	Level int
}

func (BattleWon) event()        {}
func (ItemAdded) event()        {}
func (TombstoneVisited) event() {}
func (LevelReached) event()     {}

// ItemKey identifies an inventory item kind.
type ItemKey string

const (
	KeyPotion       ItemKey = "potion"
	KeyRemedy       ItemKey = "remedy"
	KeyAmulet       ItemKey = "amulet"
	KeyEvadeRing    ItemKey = "evade-ring"
	KeyVoidRing     ItemKey = "void-ring"
	KeyRulingRing   ItemKey = "ruling-ring"
	KeySpeedRing    ItemKey = "speed-ring"
	KeyStrengthRing ItemKey = "strength-ring"
)

// NPCKind identifies a non-hostile encounter. The zero value means no
// encounter is active.
type NPCKind int

const (
	NPCNone NPCKind = iota
	NPCGambler
	NPCWitch
	NPCGhostlyMaiden
)

func (k NPCKind) String() string {
	switch k {
	case NPCGambler:
		return "gambler"
	case NPCWitch:
		return "witch"
	case NPCGhostlyMaiden:
		return "ghostly maiden"
	default:
		return "nobody"
	}
}
