package quest

import (
	"testing"

	"github.com/nathoo/dirquest/types"
)

func mustNew(t *testing.T, kind Kind, desc string, target, reward int) *Quest {
	t.Helper()
	q, err := New(kind, desc, target, reward)
	if err != nil {
		t.Fatalf("New(%s): %v", kind, err)
	}
	return q
}

func TestNewValidation(t *testing.T) {
	if _, err := New("slay_dragon", "Slay the dragon.", 0, 10); err == nil {
		t.Error("expected error for unknown kind")
	}
	if _, err := New(KindWinBattles, "Win some.", 0, 10); err == nil {
		t.Error("expected error for counter quest without target")
	}
	if _, err := New(KindFindAmulet, "", 0, 10); err == nil {
		t.Error("expected error for empty description")
	}
}

func TestCounterQuestProgress(t *testing.T) {
	board := List{mustNew(t, KindWinBattles, "Win 2 battles.", 2, 100)}

	reward, completed := board.Dispatch(types.BattleWon{Enemy: "rat", Level: 1})
	if reward != 0 || len(completed) != 0 {
		t.Fatalf("expected no completion after one battle, got reward %d %v", reward, completed)
	}
	if board[0].Progress != 1 {
		t.Errorf("expected progress 1, got %d", board[0].Progress)
	}

	reward, completed = board.Dispatch(types.BattleWon{Enemy: "wolf", Level: 2})
	if reward != 100 {
		t.Errorf("expected 100 gold reward, got %d", reward)
	}
	if len(completed) != 1 || completed[0] != "Win 2 battles." {
		t.Errorf("expected completion of the battle quest, got %v", completed)
	}

	// Done quests never pay twice.
	reward, completed = board.Dispatch(types.BattleWon{Enemy: "rat", Level: 1})
	if reward != 0 || len(completed) != 0 {
		t.Errorf("completed quest dispatched again: reward %d %v", reward, completed)
	}
	if board[0].Progress != 2 {
		t.Errorf("done quest should stop counting, got progress %d", board[0].Progress)
	}
}

func TestGuardianQuestMatchesOnlyGuardian(t *testing.T) {
	board := List{mustNew(t, KindDefeatGuardian, "Defeat the Guardian.", 0, 500)}

	board.Dispatch(types.BattleWon{Enemy: "rat", Level: 3})
	if board[0].Done {
		t.Fatal("a rat is not the guardian")
	}
	reward, _ := board.Dispatch(types.BattleWon{Enemy: "guardian", Level: 8})
	if reward != 500 || !board[0].Done {
		t.Errorf("expected guardian quest done with 500 reward, got %d done=%v", reward, board[0].Done)
	}
}

func TestLevelQuestThreshold(t *testing.T) {
	board := List{mustNew(t, KindReachLevel, "Reach level 5.", 5, 100)}

	board.Dispatch(types.LevelReached{Level: 4})
	if board[0].Done {
		t.Fatal("level 4 should not complete a level-5 quest")
	}
	// Skipping past the exact target still completes.
	board.Dispatch(types.LevelReached{Level: 6})
	if !board[0].Done {
		t.Error("level 6 should complete a level-5 quest")
	}
}

func TestItemAndTombstoneQuests(t *testing.T) {
	board := List{
		mustNew(t, KindFindAmulet, "Find the Amulet of Power.", 0, 300),
		mustNew(t, KindRecoverTombstone, "Recover a fallen hero's gold.", 0, 200),
	}

	board.Dispatch(types.ItemAdded{Key: types.KeyPotion})
	if board[0].Done {
		t.Fatal("a potion is not the amulet")
	}
	reward, _ := board.Dispatch(types.ItemAdded{Key: types.KeyAmulet})
	if reward != 300 {
		t.Errorf("expected 300 for the amulet, got %d", reward)
	}

	reward, _ = board.Dispatch(types.TombstoneVisited{Gold: 42})
	if reward != 200 {
		t.Errorf("expected 200 for the tombstone, got %d", reward)
	}
}

func TestActiveWithDescription(t *testing.T) {
	board := List{mustNew(t, KindDefeatGuardian, "Defeat the Guardian.", 0, 500)}
	if !board.ActiveWithDescription("Defeat the Guardian.") {
		t.Error("expected the guardian quest active")
	}
	board[0].Done = true
	if board.ActiveWithDescription("Defeat the Guardian.") {
		t.Error("a done quest is not active")
	}
}

func TestReset(t *testing.T) {
	board := List{mustNew(t, KindWinBattles, "Win 2 battles.", 2, 100)}
	board.Dispatch(types.BattleWon{Enemy: "rat", Level: 1})
	board.Dispatch(types.BattleWon{Enemy: "rat", Level: 1})

	board.Reset()
	if board[0].Done || board[0].Progress != 0 {
		t.Errorf("expected pristine quest after reset, got done=%v progress=%d",
			board[0].Done, board[0].Progress)
	}
}
