package engine

import (
	"strings"
	"testing"

	"github.com/nathoo/dirquest/character"
	"github.com/nathoo/dirquest/location"
	"github.com/nathoo/dirquest/quest"
)

// stubRand is a scripted Randomizer. Appearance rolls always return
// appear; Range pops scripted rolls (clamped to the requested bound) and
// returns 0 when the script runs out; EnemyLevel applies no jitter.
type stubRand struct {
	appear bool
	rolls  []int
	i      int
}

func (s *stubRand) ShouldEnemyAppear(location.Distance) bool { return s.appear }

func (s *stubRand) EnemyLevel(base int) int { return base }

func (s *stubRand) Range(n int) int {
	if s.i >= len(s.rolls) {
		return 0
	}
	v := s.rolls[s.i]
	s.i++
	if n > 0 && v >= n {
		v = n - 1
	}
	return v
}

func testCatalog(t *testing.T) *character.Catalog {
	t.Helper()
	catalog, err := character.NewCatalog([]character.Class{
		{Name: "warrior", Category: character.CategoryPlayer,
			HP: character.Stat{Base: 30, Growth: 7}, Strength: character.Stat{Base: 12, Growth: 3}, Speed: character.Stat{Base: 11, Growth: 2}},
		{Name: "mage", Category: character.CategoryPlayer,
			HP: character.Stat{Base: 24, Growth: 5}, Strength: character.Stat{Base: 14, Growth: 4}, Speed: character.Stat{Base: 12, Growth: 2}},
		{Name: "guardian", Category: character.CategoryBoss,
			HP: character.Stat{Base: 50, Growth: 10}, Strength: character.Stat{Base: 14, Growth: 4}, Speed: character.Stat{Base: 10, Growth: 2}},
		{Name: "rat", Category: character.CategoryCommon,
			HP: character.Stat{Base: 10, Growth: 3}, Strength: character.Stat{Base: 5, Growth: 2}, Speed: character.Stat{Base: 16, Growth: 2}},
		{Name: "rat king", Category: character.CategoryRare,
			HP: character.Stat{Base: 22, Growth: 5}, Strength: character.Stat{Base: 10, Growth: 3}, Speed: character.Stat{Base: 14, Growth: 2}},
		{Name: "orc", Category: character.CategoryRare,
			HP: character.Stat{Base: 25, Growth: 6}, Strength: character.Stat{Base: 13, Growth: 3}, Speed: character.Stat{Base: 9, Growth: 2}},
		{Name: "snake", Category: character.CategoryCommon,
			HP: character.Stat{Base: 12, Growth: 3}, Strength: character.Stat{Base: 7, Growth: 2}, Speed: character.Stat{Base: 13, Growth: 2}},
	})
	if err != nil {
		t.Fatalf("test catalog: %v", err)
	}
	return catalog
}

// Sorted enemy family order for testCatalog, for scripting family picks.
const (
	familyOrc = iota
	familyRat
	familySnake
)

func newTestGame(t *testing.T, quests quest.List, rng Randomizer) *Game {
	t.Helper()
	return New(testCatalog(t), quests, rng)
}

func at(t *testing.T, g *Game, path string) {
	t.Helper()
	loc, err := location.Parse(path)
	if err != nil {
		t.Fatalf("Parse(%q): %v", path, err)
	}
	g.Location = loc
}

func mustQuest(t *testing.T, kind quest.Kind, desc string, target, reward int) *quest.Quest {
	t.Helper()
	q, err := quest.New(kind, desc, target, reward)
	if err != nil {
		t.Fatalf("quest %s: %v", kind, err)
	}
	return q
}

func hasLine(output []string, substr string) bool {
	for _, line := range output {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
