// Package character implements character archetypes, progression,
// equipment, skills, and status effects.
package character

import (
	"fmt"
	"sort"
	"strings"
)

// Stat is a (base, growth) pair. The effective value at level L is
// base + growth*(L-1); growth is never negative, so stats never shrink
// as a character levels up.
type Stat struct {
	Base   int `json:"base"`
	Growth int `json:"growth"`
}

// At returns the effective stat value at the given level.
func (s Stat) At(level int) int {
	if level < 1 {
		level = 1
	}
	return s.Base + s.Growth*(level-1)
}

// Category is a class tier. It gates which enemy variants are eligible
// for random spawns at a given player level.
type Category string

const (
	CategoryPlayer    Category = "player"
	CategoryCommon    Category = "common"
	CategoryRare      Category = "rare"
	CategoryLegendary Category = "legendary"
	CategoryBoss      Category = "boss"
)

// LevelRequirement is the minimum player level at which enemies of this
// tier join the random spawn pool.
func (c Category) LevelRequirement() int {
	switch c {
	case CategoryCommon:
		return 1
	case CategoryRare:
		return 5
	case CategoryLegendary:
		return 10
	default:
		return 1
	}
}

// Class is immutable catalog data describing an archetype. Classes are
// plain values: instantiating a character copies the class, so a spawned
// enemy's class may be mutated (e.g. doubled stats) without touching
// the catalog.
type Class struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	HP       Stat     `json:"hp"`
	Strength Stat     `json:"strength"`
	Speed    Stat     `json:"speed"`
}

// BaseName returns the family name shared by variants of one enemy kind:
// the part of the name before the first space ("skeleton lord" → "skeleton").
func (c Class) BaseName() string {
	name, _, _ := strings.Cut(c.Name, " ")
	return name
}

// Catalog is the static table of classes, loaded once at startup before
// any spawn call.
type Catalog struct {
	classes []Class
}

// NewCatalog validates and indexes a class list. Order is preserved:
// the first player-category class is the default hero class.
func NewCatalog(classes []Class) (*Catalog, error) {
	if len(classes) == 0 {
		return nil, fmt.Errorf("empty class catalog")
	}
	seen := map[string]bool{}
	hasPlayer := false
	for _, class := range classes {
		if class.Name == "" {
			return nil, fmt.Errorf("class with empty name")
		}
		if seen[class.Name] {
			return nil, fmt.Errorf("duplicate class %q", class.Name)
		}
		seen[class.Name] = true
		if class.HP.Growth < 0 || class.Strength.Growth < 0 || class.Speed.Growth < 0 {
			return nil, fmt.Errorf("class %q has negative stat growth", class.Name)
		}
		if class.HP.Base < 1 {
			return nil, fmt.Errorf("class %q has no health", class.Name)
		}
		if class.Category == CategoryPlayer {
			hasPlayer = true
		}
	}
	if !hasPlayer {
		return nil, fmt.Errorf("catalog has no player classes")
	}
	return &Catalog{classes: append([]Class(nil), classes...)}, nil
}

// ByName looks up a class by its exact name.
func (c *Catalog) ByName(name string) (Class, bool) {
	for _, class := range c.classes {
		if class.Name == name {
			return class, true
		}
	}
	return Class{}, false
}

// PlayerFirst returns the first player-category class in catalog order.
func (c *Catalog) PlayerFirst() Class {
	for _, class := range c.classes {
		if class.Category == CategoryPlayer {
			return class
		}
	}
	return c.classes[0]
}

// PlayerNames lists the names of all player-selectable classes.
func (c *Catalog) PlayerNames() []string {
	var names []string
	for _, class := range c.classes {
		if class.Category == CategoryPlayer {
			names = append(names, class.Name)
		}
	}
	return names
}

// Enemies returns all classes eligible for the random spawn pool:
// common, rare, and legendary tiers. Boss-tier classes only appear
// through special spawns.
func (c *Catalog) Enemies() []Class {
	var enemies []Class
	for _, class := range c.classes {
		switch class.Category {
		case CategoryCommon, CategoryRare, CategoryLegendary:
			enemies = append(enemies, class)
		}
	}
	return enemies
}

// EnemyFamilies groups the enemy pool by base name and returns the family
// names sorted, plus the grouping. Sorting keeps uniform family selection
// deterministic for a given randomizer stream.
func (c *Catalog) EnemyFamilies() ([]string, map[string][]Class) {
	groups := map[string][]Class{}
	for _, class := range c.Enemies() {
		base := class.BaseName()
		groups[base] = append(groups[base], class)
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, groups
}
