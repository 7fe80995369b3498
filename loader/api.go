package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// rawClass and rawQuest hold unconverted Lua tables until compile time.
type rawClass struct {
	name  string
	table *lua.LTable
}

type rawQuest struct {
	id    string
	table *lua.LTable
}

// collector accumulates definitions as the Lua script runs. Order is
// preserved: the first player class becomes the default hero class and
// quests dispatch in registration order.
type collector struct {
	game    *lua.LTable
	classes []rawClass
	quests  []rawQuest
}

// registerAPI installs the Lua constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Game { title = "...", ... }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		coll.game = L.CheckTable(1)
		return 0
	}))

	// Class "name" { ... } — curried: Class("name") returns a function
	// that takes the definition table.
	L.SetGlobal("Class", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.classes = append(coll.classes, rawClass{name: name, table: tbl})
			return 0
		}))
		return 1
	}))

	// Quest "id" { ... } — curried.
	L.SetGlobal("Quest", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.quests = append(coll.quests, rawQuest{id: id, table: tbl})
			return 0
		}))
		return 1
	}))
}
