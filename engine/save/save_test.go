package save

import (
	"encoding/json"
	"testing"

	"github.com/nathoo/dirquest/character"
	"github.com/nathoo/dirquest/engine"
	"github.com/nathoo/dirquest/location"
	"github.com/nathoo/dirquest/quest"
	"github.com/nathoo/dirquest/types"
)

func testCatalog(t *testing.T) *character.Catalog {
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
	return catalog
}

func TestRoundTrip(t *testing.T) {
	catalog := testCatalog(t)
	quests := quest.List{}
	if q, err := quest.New(quest.KindWinBattles, "Win 3 battles.", 3, 100); err == nil {
		quests = append(quests, q)
	}

	g := engine.New(catalog, quests, engine.NewRNG(7))
	// Advance the stream so the position is meaningful.
	for i := 0; i < 5; i++ {
		g.Rand.Range(100)
	}
	g.Gold = 123
	loc, err := location.Parse("~/dungeon/crypt")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	g.Location = loc
	g.Inventory[types.KeyPotion] = 2
	g.Hardcore = true
	g.Player.AddExperience(150)
	if err := g.Player.LearnSkill("cleanse"); err != nil {
		t.Fatalf("learn: %v", err)
	}
	g.Quests[0].Progress = 2
	g.Tombstones["~/a"] = &engine.Tombstone{Gold: 50}

	raw, err := Snapshot(g)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	loaded, err := Restore(raw, catalog)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	if loaded.Location.String() != "~/dungeon/crypt" {
		t.Errorf("location: expected ~/dungeon/crypt, got %s", loaded.Location)
	}
	if loaded.Gold != 123 {
		t.Errorf("gold: expected 123, got %d", loaded.Gold)
	}
	if loaded.Player.Level != 2 || loaded.Player.XP != 50 {
		t.Errorf("player: expected level 2 with 50 xp, got level %d with %d",
			loaded.Player.Level, loaded.Player.XP)
	}
	if !loaded.Player.Knows(character.SkillCleanse) {
		t.Error("expected learned skills restored")
	}
	if loaded.Inventory[types.KeyPotion] != 2 {
		t.Errorf("inventory: expected 2 potions, got %d", loaded.Inventory[types.KeyPotion])
	}
	if loaded.Quests[0].Progress != 2 {
		t.Errorf("quests: expected progress 2, got %d", loaded.Quests[0].Progress)
	}
	if stone, ok := loaded.Tombstones["~/a"]; !ok || stone.Gold != 50 {
		t.Errorf("tombstones: expected 50 gold at ~/a, got %v", loaded.Tombstones)
	}
	if !loaded.Hardcore {
		t.Error("expected hardcore flag restored")
	}

	rng, ok := loaded.Rand.(*engine.RNG)
	if !ok {
		t.Fatal("expected the default RNG after restore")
	}
	if rng.Seed() != 7 || rng.Position() != 5 {
		t.Errorf("rng: expected seed 7 at position 5, got seed %d position %d",
			rng.Seed(), rng.Position())
	}

	// Encounters are transient.
	if loaded.InCombat != nil || loaded.InEncounter != types.NPCNone {
		t.Error("a loaded game must start disengaged")
	}
}

func TestRestoreRejectsWrongVersion(t *testing.T) {
	raw, err := json.Marshal(Data{Version: "0", Player: character.New(testCatalog(t).PlayerFirst(), 1), Location: "~"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := Restore(raw, testCatalog(t)); err == nil {
		t.Error("expected an error for an incompatible version")
	}
}

func TestRestoreHardensNilMaps(t *testing.T) {
	player := character.New(testCatalog(t).PlayerFirst(), 1)
	player.Skills = nil
	raw, err := json.Marshal(Data{Version: Version, Player: player, Location: "~"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	loaded, err := Restore(raw, testCatalog(t))
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if loaded.Inventory == nil || loaded.Tombstones == nil || loaded.Player.Skills == nil {
		t.Error("expected all maps non-nil after restore")
	}
}

func TestRestoreRejectsMissingPlayer(t *testing.T) {
	raw, err := json.Marshal(Data{Version: Version, Location: "~"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := Restore(raw, testCatalog(t)); err == nil {
		t.Error("expected an error for a save without a player")
	}
}
