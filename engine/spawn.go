package engine

import (
	"github.com/nathoo/dirquest/character"
	"github.com/nathoo/dirquest/location"
)

// guardianQuestDescription matches the quest board entry that unlocks the
// guardian boss spawn. Must stay in sync with the world definitions.
const guardianQuestDescription = "Defeat the Guardian."

// spawnSpec is a class/level pair chosen by the spawn chain, before level
// jitter is applied.
type spawnSpec struct {
	class character.Class
	level int
}

// SpawnEnemy decides whether an enemy appears at the hero's location and
// synthesizes it. Evasion suppresses everything; otherwise one appearance
// roll gates the chain of special spawns, tried in fixed priority order,
// with the random family spawn as fallback.
func (g *Game) SpawnEnemy() *character.Character {
	if g.Player.EnemiesEvaded() {
		return nil
	}
	distance := g.Location.DistanceFromHome()
	if !g.Rand.ShouldEnemyAppear(distance) {
		return nil
	}

	spec := g.spawnGuardian(distance)
	if spec == nil {
		spec = g.spawnGorthaur(distance)
	}
	if spec == nil {
		spec = g.spawnShadow()
	}
	if spec == nil {
		spec = g.spawnDev()
	}
	if spec == nil {
		s := g.spawnRandom(distance)
		spec = &s
	}

	return character.New(spec.class, g.Rand.EnemyLevel(spec.level))
}

// spawnGuardian spawns the quest boss while its quest is still open and
// the hero has wandered deep enough.
func (g *Game) spawnGuardian(distance location.Distance) *spawnSpec {
	if !g.Quests.ActiveWithDescription(guardianQuestDescription) {
		return nil
	}
	if distance.Len() <= 10 {
		return nil
	}
	class, ok := g.Catalog.ByName("guardian")
	if !ok {
		return nil
	}
	return &spawnSpec{class: class, level: g.Player.Level + 5}
}

// spawnGorthaur spawns the final boss: a doubled-stat legendary variant of
// the first catalog class, only very far from home while the hero wears
// the ruling ring.
func (g *Game) spawnGorthaur(distance location.Distance) *spawnSpec {
	if !g.Player.WearsRing(character.RingRuling) || distance.Len() < 100 {
		return nil
	}
	class := g.Catalog.PlayerFirst()
	class.Name = "gorthaur"
	class.Category = character.CategoryLegendary
	class.HP.Base *= 2
	class.Strength.Base *= 2
	return &spawnSpec{class: class, level: g.Player.Level}
}

// spawnShadow spawns a rare copy of the hero's own class. Home only,
// 1-in-10 chance.
func (g *Game) spawnShadow() *spawnSpec {
	if !g.Location.IsHome() || g.Rand.Range(10) != 0 {
		return nil
	}
	class := g.Player.Class
	class.Name = "shadow"
	class.Category = character.CategoryRare
	return &spawnSpec{class: class, level: g.Player.Level + 3}
}

// spawnDev is the easter egg: a half-stat copy of the first catalog class,
// only inside the game's own data directory, 1-in-10 chance.
func (g *Game) spawnDev() *spawnSpec {
	if !g.Location.IsDataDir() || g.Rand.Range(10) != 0 {
		return nil
	}
	class := g.Catalog.PlayerFirst()
	class.Name = "dev"
	class.Category = character.CategoryRare
	class.HP.Base /= 2
	class.Strength.Base /= 2
	class.Speed.Base /= 2
	return &spawnSpec{class: class, level: g.Player.Level}
}

// spawnRandom picks an enemy family uniformly, then the toughest variant
// whose tier the hero's level unlocks. The enemy level grows with distance:
// max(level/10 + steps - 1, 1).
func (g *Game) spawnRandom(distance location.Distance) spawnSpec {
	families, groups := g.Catalog.EnemyFamilies()
	family := groups[families[g.Rand.Range(len(families))]]

	chosen := family[0]
	best := -1
	for _, variant := range family {
		if g.Player.Level < variant.Category.LevelRequirement() {
			continue
		}
		if variant.HP.Base > best {
			chosen = variant
			best = variant.HP.Base
		}
	}

	level := g.Player.Level/10 + distance.Len() - 1
	if level < 1 {
		level = 1
	}
	return spawnSpec{class: chosen, level: level}
}
