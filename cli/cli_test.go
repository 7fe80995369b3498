package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nathoo/dirquest/character"
	"github.com/nathoo/dirquest/engine"
	"github.com/nathoo/dirquest/location"
	"github.com/nathoo/dirquest/quest"
	"github.com/nathoo/dirquest/types"
)

// quietRand never spawns anything, so command tests stay deterministic.
type quietRand struct{}

func (quietRand) ShouldEnemyAppear(location.Distance) bool { return false }
func (quietRand) EnemyLevel(base int) int                  { return base }
func (quietRand) Range(int) int                            { return 0 }

func newTestCLI(t *testing.T) *CLI {
	t.Helper()
	catalog, err := character.NewCatalog([]character.Class{
		{Name: "warrior", Category: character.CategoryPlayer,
			HP: character.Stat{Base: 30, Growth: 7}, Strength: character.Stat{Base: 12, Growth: 3}, Speed: character.Stat{Base: 11, Growth: 2}},
		{Name: "rat", Category: character.CategoryCommon,
			HP: character.Stat{Base: 10, Growth: 3}, Strength: character.Stat{Base: 5, Growth: 2}, Speed: character.Stat{Base: 16, Growth: 2}},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	quests := quest.List{}
	if q, err := quest.New(quest.KindWinBattles, "Win 10 battles.", 10, 100); err == nil {
		quests = append(quests, q)
	}
	game := engine.New(catalog, quests, quietRand{})
	return &CLI{Game: game, SavePath: filepath.Join(t.TempDir(), "game.json")}
}

func run(t *testing.T, c *CLI, args ...string) types.Result {
	t.Helper()
	res, err := c.Execute(args)
	if err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return res
}

func outputContains(res types.Result, substr string) bool {
	for _, line := range res.Output {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func TestPwdAndCd(t *testing.T) {
	c := newTestCLI(t)

	res := run(t, c, "pwd")
	if !outputContains(res, "~") {
		t.Errorf("expected home, got %v", res.Output)
	}

	run(t, c, "cd", "dungeon/crypt")
	if c.Game.Location.String() != "~/dungeon/crypt" {
		t.Errorf("expected ~/dungeon/crypt, got %s", c.Game.Location)
	}

	run(t, c, "cd", "..")
	if c.Game.Location.String() != "~/dungeon" {
		t.Errorf("expected ~/dungeon, got %s", c.Game.Location)
	}

	// Bare cd goes home.
	run(t, c, "cd")
	if !c.Game.Location.IsHome() {
		t.Errorf("expected home, got %s", c.Game.Location)
	}
}

func TestForcedMoveDuringCombat(t *testing.T) {
	c := newTestCLI(t)
	class, _ := c.Game.Catalog.ByName("rat")
	c.Game.InCombat = character.New(class, 1)

	if _, err := c.Execute([]string{"cd", "dungeon", "--force"}); !errors.Is(err, engine.ErrInvalidAction) {
		t.Errorf("expected ErrInvalidAction, got %v", err)
	}
}

func TestEmptyCommandIsStat(t *testing.T) {
	c := newTestCLI(t)
	res := run(t, c)
	if !outputContains(res, "warrior[1]@~") {
		t.Errorf("expected the character sheet, got %v", res.Output)
	}
	if !outputContains(res, "hp:") {
		t.Errorf("expected a health bar, got %v", res.Output)
	}
}

func TestUnknownCommand(t *testing.T) {
	c := newTestCLI(t)
	if _, err := c.Execute([]string{"dance"}); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("expected ErrUnknownCommand, got %v", err)
	}
}

func TestTodoListsQuests(t *testing.T) {
	c := newTestCLI(t)
	res := run(t, c, "todo")
	if !outputContains(res, "[ ] Win 10 battles. (0/10)") {
		t.Errorf("expected pending quest with progress, got %v", res.Output)
	}

	c.Game.Quests[0].Done = true
	res = run(t, c, "todo")
	if !outputContains(res, "[x] Win 10 battles.") {
		t.Errorf("expected done marker, got %v", res.Output)
	}
}

func TestClassListsAndChanges(t *testing.T) {
	c := newTestCLI(t)
	res := run(t, c, "class")
	if !outputContains(res, "warrior") {
		t.Errorf("expected class listing, got %v", res.Output)
	}
}

func TestLearnAndSkills(t *testing.T) {
	c := newTestCLI(t)

	res := run(t, c, "skills")
	if !outputContains(res, "[ ] cleanse") {
		t.Errorf("expected unlearned cleanse, got %v", res.Output)
	}

	run(t, c, "learn", "cleanse")
	res = run(t, c, "skills")
	if !outputContains(res, "[x] cleanse") {
		t.Errorf("expected learned cleanse, got %v", res.Output)
	}

	if _, err := c.Execute([]string{"learn", "fireball"}); !errors.Is(err, character.ErrSkillLevel) {
		t.Errorf("expected ErrSkillLevel, got %v", err)
	}
	if _, err := c.Execute([]string{"learn"}); !errors.Is(err, engine.ErrInvalidAction) {
		t.Errorf("expected usage error, got %v", err)
	}
}

func TestBetArgumentValidation(t *testing.T) {
	c := newTestCLI(t)
	if _, err := c.Execute([]string{"bet", "lots"}); !errors.Is(err, engine.ErrInvalidAction) {
		t.Errorf("expected ErrInvalidAction for a non-number, got %v", err)
	}
	if _, err := c.Execute([]string{"bet"}); !errors.Is(err, engine.ErrInvalidAction) {
		t.Errorf("expected usage error, got %v", err)
	}
}

func TestLsShowsPackAndGold(t *testing.T) {
	c := newTestCLI(t)
	res := run(t, c, "ls")
	if !outputContains(res, "Your pack is empty.") {
		t.Errorf("expected empty pack, got %v", res.Output)
	}

	c.Game.Inventory[types.KeyPotion] = 2
	c.Game.Gold = 37
	res = run(t, c, "ls")
	if !outputContains(res, "potion x2") {
		t.Errorf("expected potions listed, got %v", res.Output)
	}
	if !outputContains(res, "37 gold") {
		t.Errorf("expected gold listed, got %v", res.Output)
	}
}

func TestHardcoreToggle(t *testing.T) {
	c := newTestCLI(t)
	run(t, c, "hardcore")
	if !c.Game.Hardcore {
		t.Error("expected hardcore on")
	}
	run(t, c, "hardcore")
	if c.Game.Hardcore {
		t.Error("expected hardcore off")
	}
}

func TestResetFlags(t *testing.T) {
	c := newTestCLI(t)
	c.Game.Gold = 100
	c.Game.Quests[0].Progress = 3

	run(t, c, "reset")
	if c.Game.Gold != 0 {
		t.Error("expected the purse emptied")
	}
	if c.Game.Quests[0].Progress != 3 {
		t.Error("soft reset must keep quest progress")
	}

	run(t, c, "reset", "--hard")
	if c.Game.Quests[0].Progress != 0 {
		t.Error("hard reset must wipe quest progress")
	}
}

func TestSaveWritesFile(t *testing.T) {
	c := newTestCLI(t)
	res := run(t, c, "save")
	if !outputContains(res, "Game saved.") {
		t.Errorf("expected confirmation, got %v", res.Output)
	}
	if _, err := os.Stat(c.SavePath); err != nil {
		t.Errorf("expected a save file: %v", err)
	}
}

func TestSaveThenLoadRestoresState(t *testing.T) {
	c := newTestCLI(t)
	c.Game.Gold = 500
	run(t, c, "save")

	c.Game.Gold = 0
	res := run(t, c, "load")
	if !outputContains(res, "Game loaded.") {
		t.Errorf("expected confirmation, got %v", res.Output)
	}
	if c.Game.Gold != 500 {
		t.Errorf("expected 500 gold restored, got %d", c.Game.Gold)
	}
}

func TestGrindIsHiddenButWorks(t *testing.T) {
	c := newTestCLI(t)
	run(t, c, "grind", "3")
	if c.Game.Player.Level != 3 {
		t.Errorf("expected level 3, got %d", c.Game.Player.Level)
	}

	// Not advertised.
	res := run(t, c, "help")
	if outputContains(res, "grind") {
		t.Error("grind must not appear in help")
	}
}
