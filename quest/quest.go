// Package quest implements the quest board: a closed set of quest kinds
// and the single-pass event dispatch that advances them. Quests are
// append-only — once completed they never revert and stop receiving events.
package quest

import (
	"fmt"

	"github.com/nathoo/dirquest/types"
)

// Kind identifies a quest variant. The set is closed and matched
// exhaustively in Handle.
type Kind string

const (
	KindDefeatGuardian   Kind = "defeat_guardian"
	KindFindAmulet       Kind = "find_amulet"
	KindRecoverTombstone Kind = "recover_tombstone"
	KindWinBattles       Kind = "win_battles"
	KindReachLevel       Kind = "reach_level"
)

// Quest is one entry on the board. Description doubles as the quest's
// stable identity for lookups. Target/Progress are only used by counting
// and threshold kinds.
type Quest struct {
	Kind        Kind   `json:"kind"`
	Description string `json:"description"`
	Target      int    `json:"target,omitempty"`
	Progress    int    `json:"progress,omitempty"`
	Reward      int    `json:"reward,omitempty"`
	Done        bool   `json:"done"`
}

// New builds a quest, validating the kind.
func New(kind Kind, description string, target, reward int) (*Quest, error) {
	switch kind {
	case KindDefeatGuardian, KindFindAmulet, KindRecoverTombstone:
	case KindWinBattles, KindReachLevel:
		if target < 1 {
			return nil, fmt.Errorf("quest %q: kind %s needs a positive target", description, kind)
		}
	default:
		return nil, fmt.Errorf("quest %q: unknown kind %q", description, kind)
	}
	if description == "" {
		return nil, fmt.Errorf("quest with empty description")
	}
	return &Quest{Kind: kind, Description: description, Target: target, Reward: reward}, nil
}

// Handle consumes one event and reports whether the quest is now complete.
// Completion is monotone: a done quest stays done no matter what arrives.
func (q *Quest) Handle(ev types.Event) bool {
	if q.Done {
		return true
	}
	switch q.Kind {
	case KindDefeatGuardian:
		if e, ok := ev.(types.BattleWon); ok && e.Enemy == "guardian" {
			q.Done = true
		}
	case KindFindAmulet:
		if e, ok := ev.(types.ItemAdded); ok && e.Key == types.KeyAmulet {
			q.Done = true
		}
	case KindRecoverTombstone:
		if _, ok := ev.(types.TombstoneVisited); ok {
			q.Done = true
		}
	case KindWinBattles:
		if _, ok := ev.(types.BattleWon); ok {
			q.Progress++
			q.Done = q.Progress >= q.Target
		}
	case KindReachLevel:
		if e, ok := ev.(types.LevelReached); ok && e.Level >= q.Target {
			q.Done = true
		}
	}
	return q.Done
}

// List is the quest board, in the stable order quests were registered.
type List []*Quest

// Dispatch delivers an event to every pending quest in order. Completed
// quests are skipped entirely. It returns the total gold reward unlocked
// by newly completed quests and their descriptions.
func (l List) Dispatch(ev types.Event) (reward int, completed []string) {
	for _, q := range l {
		if q.Done {
			continue
		}
		if q.Handle(ev) {
			reward += q.Reward
			completed = append(completed, q.Description)
		}
	}
	return reward, completed
}

// ActiveWithDescription reports whether a not-yet-completed quest with the
// given description exists on the board.
func (l List) ActiveWithDescription(description string) bool {
	for _, q := range l {
		if !q.Done && q.Description == description {
			return true
		}
	}
	return false
}

// Reset returns all quests to their initial pending state. Used by
// hardcore-mode death and hard resets.
func (l List) Reset() {
	for _, q := range l {
		q.Done = false
		q.Progress = 0
	}
}
