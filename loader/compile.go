package loader

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/dirquest/character"
	"github.com/nathoo/dirquest/quest"
)

// compile converts collected Lua tables into validated engine values.
func compile(coll *collector) (*World, error) {
	world := &World{}

	if coll.game != nil {
		world.Meta = Meta{
			Title:   getString(coll.game, "title"),
			Version: getString(coll.game, "version"),
			Author:  getString(coll.game, "author"),
		}
	}

	classes := make([]character.Class, 0, len(coll.classes))
	for _, raw := range coll.classes {
		class, err := compileClass(raw)
		if err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	catalog, err := character.NewCatalog(classes)
	if err != nil {
		return nil, err
	}
	// The spawn chain references the guardian by name.
	if _, ok := catalog.ByName("guardian"); !ok {
		return nil, fmt.Errorf("world has no guardian class")
	}
	world.Catalog = catalog

	for _, raw := range coll.quests {
		q, err := compileQuest(raw)
		if err != nil {
			return nil, err
		}
		world.Quests = append(world.Quests, q)
	}

	return world, nil
}

func compileClass(raw rawClass) (character.Class, error) {
	class := character.Class{
		Name:     raw.name,
		Category: character.Category(getString(raw.table, "category")),
	}
	switch class.Category {
	case character.CategoryPlayer, character.CategoryCommon,
		character.CategoryRare, character.CategoryLegendary, character.CategoryBoss:
	default:
		return class, fmt.Errorf("class %q: unknown category %q", raw.name, class.Category)
	}

	var err error
	if class.HP, err = getStat(raw.table, "hp"); err != nil {
		return class, fmt.Errorf("class %q: %w", raw.name, err)
	}
	if class.Strength, err = getStat(raw.table, "strength"); err != nil {
		return class, fmt.Errorf("class %q: %w", raw.name, err)
	}
	if class.Speed, err = getStat(raw.table, "speed"); err != nil {
		return class, fmt.Errorf("class %q: %w", raw.name, err)
	}
	return class, nil
}

func compileQuest(raw rawQuest) (*quest.Quest, error) {
	q, err := quest.New(
		quest.Kind(getString(raw.table, "kind")),
		getString(raw.table, "description"),
		getInt(raw.table, "target"),
		getInt(raw.table, "reward"),
	)
	if err != nil {
		return nil, fmt.Errorf("quest %q: %w", raw.id, err)
	}
	return q, nil
}

// getStat reads a {base, growth} pair from a two-element Lua table.
func getStat(tbl *lua.LTable, key string) (character.Stat, error) {
	val := tbl.RawGetString(key)
	pair, ok := val.(*lua.LTable)
	if !ok {
		return character.Stat{}, fmt.Errorf("stat %q must be a {base, growth} table", key)
	}
	base, ok1 := pair.RawGetInt(1).(lua.LNumber)
	growth, ok2 := pair.RawGetInt(2).(lua.LNumber)
	if !ok1 || !ok2 {
		return character.Stat{}, fmt.Errorf("stat %q must hold two numbers", key)
	}
	return character.Stat{Base: int(base), Growth: int(growth)}, nil
}

func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

func getInt(tbl *lua.LTable, key string) int {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return int(n)
	}
	return 0
}
