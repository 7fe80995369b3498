// Package loader parses Lua world definitions — the class catalog, the
// quest board, and game metadata — into engine-ready values. The default
// world ships embedded in the binary.
package loader

import (
	_ "embed"
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/dirquest/character"
	"github.com/nathoo/dirquest/quest"
)

//go:embed world.lua
var defaultWorld string

// Meta holds game metadata from the Lua Game{} block.
type Meta struct {
	Title   string
	Version string
	Author  string
}

// World is the compiled result of loading world definitions.
type World struct {
	Meta    Meta
	Catalog *character.Catalog
	Quests  quest.List
}

// LoadDefault compiles the embedded world definitions.
func LoadDefault() (*World, error) {
	return loadSource("world.lua", defaultWorld)
}

// LoadFile compiles world definitions from a Lua file on disk.
func LoadFile(path string) (*World, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading world file: %w", err)
	}
	return loadSource(path, string(src))
}

func loadSource(name, src string) (*World, error) {
	L := lua.NewState()
	defer L.Close()

	coll := &collector{}
	registerAPI(L, coll)

	if err := L.DoString(src); err != nil {
		return nil, fmt.Errorf("executing %s: %w", name, err)
	}
	return compile(coll)
}
