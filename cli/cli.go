// Package cli turns argv-style commands into engine actions. Each verb is
// one-shot: parse, act, render. The same dispatcher backs both the shell
// command and the interactive terminal.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/nathoo/dirquest/character"
	"github.com/nathoo/dirquest/engine"
	"github.com/nathoo/dirquest/engine/save"
	"github.com/nathoo/dirquest/types"
)

// CLI binds a game to its save file.
type CLI struct {
	Game     *engine.Game
	SavePath string
}

// ErrUnknownCommand is returned for verbs the dispatcher does not know.
var ErrUnknownCommand = errors.New("unknown command")

// Execute runs one command. The first arg is the verb, the rest its
// arguments. An empty command is a stat check.
func (c *CLI) Execute(args []string) (types.Result, error) {
	if len(args) == 0 {
		return c.stat()
	}
	verb, rest := args[0], args[1:]

	switch verb {
	case "stat":
		return c.stat()
	case "cd":
		return c.cd(rest)
	case "pwd":
		var res types.Result
		res.Say(c.Game.Location.String())
		return res, nil
	case "ls":
		return c.ls()
	case "inspect":
		return c.Game.Inspect()
	case "todo":
		return c.todo()
	case "class":
		return c.class(rest)
	case "battle":
		return c.Game.Battle()
	case "attack":
		return c.Game.Attack()
	case "flee":
		return c.Game.Flee()
	case "bribe":
		return c.Game.Bribe()
	case "skills":
		return c.skills()
	case "learn":
		if len(rest) != 1 {
			return types.Result{}, fmt.Errorf("%w: learn <skill>", engine.ErrInvalidAction)
		}
		return c.learn(rest[0])
	case "use-skill":
		if len(rest) != 1 {
			return types.Result{}, fmt.Errorf("%w: use-skill <skill>", engine.ErrInvalidAction)
		}
		return c.Game.UseSkill(rest[0])
	case "use":
		if len(rest) != 1 {
			return types.Result{}, fmt.Errorf("%w: use <item>", engine.ErrInvalidAction)
		}
		return c.Game.UseItem(rest[0])
	case "bet":
		if len(rest) != 1 {
			return types.Result{}, fmt.Errorf("%w: bet <amount>", engine.ErrInvalidAction)
		}
		amount, err := strconv.Atoi(rest[0])
		if err != nil {
			return types.Result{}, fmt.Errorf("%w: bet takes a number", engine.ErrInvalidAction)
		}
		return c.Game.Bet(amount)
	case "brew":
		return c.Game.Brew()
	case "listen":
		return c.Game.Listen()
	case "reset":
		return c.reset(rest)
	case "hardcore":
		return c.hardcore()
	case "grind":
		// Debug shortcut, not listed in help.
		if len(rest) != 1 {
			return types.Result{}, fmt.Errorf("%w: grind <level>", engine.ErrInvalidAction)
		}
		level, err := strconv.Atoi(rest[0])
		if err != nil || level < 1 {
			return types.Result{}, fmt.Errorf("%w: grind takes a positive level", engine.ErrInvalidAction)
		}
		c.Game.Grind(level)
		var res types.Result
		res.Say(fmt.Sprintf("Ground to level %d with %d gold.", c.Game.Player.Level, c.Game.Gold))
		return res, nil
	case "save":
		return c.save()
	case "load":
		return c.load()
	case "help":
		return c.help()
	default:
		return types.Result{}, fmt.Errorf("%w: %s", ErrUnknownCommand, verb)
	}
}

// cd moves the hero. --force skips encounter spawns, for shell hooks that
// mirror real directory changes.
func (c *CLI) cd(args []string) (types.Result, error) {
	force := false
	dest := "~"
	for _, a := range args {
		if a == "--force" || a == "-f" {
			force = true
			continue
		}
		dest = a
	}
	loc, err := c.Game.Location.Navigate(dest)
	if err != nil {
		return types.Result{}, err
	}
	if force {
		return c.Game.Visit(loc)
	}
	return c.Game.GoTo(loc)
}

func (c *CLI) stat() (types.Result, error) {
	var res types.Result
	g := c.Game
	p := g.Player
	res.Say(fmt.Sprintf("%s[%d]@%s", p.Name(), p.Level, g.Location))
	res.Say(fmt.Sprintf("  hp:%s %d/%d", bar(p.CurrentHP, p.MaxHP()), p.CurrentHP, p.MaxHP()))
	res.Say(fmt.Sprintf("  xp:%s %d/%d", bar(p.XP, p.XPForNext()), p.XP, p.XPForNext()))
	res.Say(fmt.Sprintf("  str:%d spd:%d gold:%d", p.Strength(), p.Speed(), g.Gold))
	if p.Status != character.StatusNone {
		res.Say(fmt.Sprintf("  status: %s", p.Status))
	}
	if rings := ringLine(p); rings != "" {
		res.Say("  rings: " + rings)
	}
	if g.InCombat != nil {
		e := g.InCombat
		res.Say(fmt.Sprintf("  vs %s[%d] hp:%s %d/%d",
			e.Name(), e.Level, bar(e.CurrentHP, e.MaxHP()), e.CurrentHP, e.MaxHP()))
	} else if g.InEncounter != types.NPCNone {
		res.Say(fmt.Sprintf("  a %s awaits", g.InEncounter))
	}
	return res, nil
}

func (c *CLI) ls() (types.Result, error) {
	var res types.Result
	g := c.Game
	if len(g.Inventory) == 0 {
		res.Say("Your pack is empty.")
	} else {
		keys := make([]string, 0, len(g.Inventory))
		for key := range g.Inventory {
			keys = append(keys, string(key))
		}
		sort.Strings(keys)
		for _, key := range keys {
			res.Say(fmt.Sprintf("  %s x%d", key, g.Inventory[types.ItemKey(key)]))
		}
	}
	res.Say(fmt.Sprintf("  %d gold", g.Gold))
	return res, nil
}

func (c *CLI) todo() (types.Result, error) {
	var res types.Result
	for _, q := range c.Game.Quests {
		mark := " "
		if q.Done {
			mark = "x"
		}
		line := fmt.Sprintf("[%s] %s", mark, q.Description)
		if q.Target > 0 && !q.Done {
			line += fmt.Sprintf(" (%d/%d)", q.Progress, q.Target)
		}
		res.Say(line)
	}
	return res, nil
}

func (c *CLI) class(args []string) (types.Result, error) {
	if len(args) == 0 {
		var res types.Result
		res.Say("Available classes: " + strings.Join(c.Game.Catalog.PlayerNames(), ", "))
		return res, nil
	}
	return c.Game.ChangeClass(args[0])
}

func (c *CLI) skills() (types.Result, error) {
	var res types.Result
	for _, skill := range character.Skills() {
		spec := skill.Spec()
		mark := " "
		if c.Game.Player.Knows(skill) {
			mark = "x"
		}
		res.Say(fmt.Sprintf("[%s] %s — %s (lv.%d, %dg per use)",
			mark, skill, spec.Description, spec.MinLevel, spec.Cost))
	}
	return res, nil
}

func (c *CLI) learn(name string) (types.Result, error) {
	var res types.Result
	if err := c.Game.Player.LearnSkill(name); err != nil {
		return res, err
	}
	res.Say(fmt.Sprintf("You learned %s.", name))
	return res, nil
}

func (c *CLI) reset(args []string) (types.Result, error) {
	hard := false
	for _, a := range args {
		if a == "--hard" {
			hard = true
		}
	}
	c.Game.Reset(hard)
	var res types.Result
	if hard {
		res.Say("The world forgets you ever existed.")
	} else {
		res.Say("You start over at home.")
	}
	return res, nil
}

func (c *CLI) hardcore() (types.Result, error) {
	c.Game.Hardcore = !c.Game.Hardcore
	var res types.Result
	if c.Game.Hardcore {
		res.Say("Hardcore mode on. Death wipes everything.")
	} else {
		res.Say("Hardcore mode off.")
	}
	return res, nil
}

// Save snapshots the game to the bound save file.
func (c *CLI) Save() error {
	raw, err := save.Snapshot(c.Game)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.SavePath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(c.SavePath, raw, 0o644)
}

func (c *CLI) save() (types.Result, error) {
	var res types.Result
	if err := c.Save(); err != nil {
		return res, err
	}
	res.Say("Game saved.")
	return res, nil
}

// load re-reads the save file, replacing the in-memory game.
func (c *CLI) load() (types.Result, error) {
	var res types.Result
	raw, err := os.ReadFile(c.SavePath)
	if err != nil {
		return res, err
	}
	g, err := save.Restore(raw, c.Game.Catalog)
	if err != nil {
		return res, err
	}
	c.Game = g
	res.Say("Game loaded.")
	return res, nil
}

func (c *CLI) help() (types.Result, error) {
	var res types.Result
	for _, line := range []string{
		"stat              show the character sheet",
		"cd [path]         travel towards a location (--force to sneak past enemies)",
		"pwd               print the current location",
		"ls                list your pack and gold",
		"inspect           search the current location",
		"todo              show the quest board",
		"class [name]      list classes, or change class (at home)",
		"battle            look for a fight here",
		"attack|flee|bribe resolve the current fight",
		"skills            list learnable skills",
		"learn <skill>     learn a skill",
		"use-skill <skill> use a learned skill",
		"use <item>        use an item from your pack",
		"bet <gold>        gamble with the gambler",
		"brew              ask the witch for a potion",
		"listen            hear the ghostly maiden out",
		"reset [--hard]    start over",
		"hardcore          toggle hardcore mode",
		"save              write the save file",
		"load              reload the save file",
	} {
		res.Say(line)
	}
	return res, nil
}

// bar renders a ten-cell gauge.
func bar(cur, max int) string {
	const width = 10
	filled := 0
	if max > 0 {
		filled = cur * width / max
	}
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("x", filled) + strings.Repeat("-", width-filled) + "]"
}

func ringLine(p *character.Character) string {
	var worn []string
	for _, ring := range p.Rings {
		if ring != character.RingNone {
			worn = append(worn, string(ring))
		}
	}
	return strings.Join(worn, ", ")
}
