package engine

import "errors"

// Sentinel errors returned by game verbs. Errors mean the action did not
// happen and cost nothing: a verb that fails with ErrInsufficientGold has
// not provoked the enemy, while a bribe the enemy refuses is a normal
// Result, not an error, and carries retaliation.
var (
	// ErrDead is returned after the death pipeline has already run: the
	// tombstone is placed and the hero reset by the time callers see it.
	ErrDead = errors.New("you died")

	// ErrInvalidAction marks verbs used in the wrong state, like attacking
	// with no enemy present or changing class away from home.
	ErrInvalidAction = errors.New("invalid action")

	// ErrInsufficientGold rejects purchases, bribes and bets the hero
	// cannot cover.
	ErrInsufficientGold = errors.New("not enough gold")

	// ErrUnknownClass is returned when a class name is not in the catalog
	// or not selectable by the player.
	ErrUnknownClass = errors.New("unknown class")

	// ErrUnknownItem is returned for item keys the game does not know.
	ErrUnknownItem = errors.New("unknown item")
)
