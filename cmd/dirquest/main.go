// Dirquest is a turn-based dungeon crawl driven by directory navigation.
// Usage: dirquest [--version] [tui | <command> [args...]]
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/nathoo/dirquest/cli"
	"github.com/nathoo/dirquest/config"
	"github.com/nathoo/dirquest/engine"
	"github.com/nathoo/dirquest/engine/save"
	"github.com/nathoo/dirquest/loader"
	"github.com/nathoo/dirquest/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	args := os.Args[1:]
	for _, a := range args {
		if a == "--version" {
			fmt.Printf("dirquest %s (commit %s, built %s)\n", version, commit, date)
			return
		}
	}

	// A .env next to the binary is a convenience, not a requirement.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}

	world, err := loadWorld(cfg)
	if err != nil {
		fatal(err)
	}

	game, err := loadGame(cfg, world)
	if err != nil {
		fatal(err)
	}

	c := &cli.CLI{Game: game, SavePath: cfg.SavePath()}

	if len(args) == 1 && args[0] == "tui" {
		if cfg.Plain {
			tui.SetPlain()
		}
		if err := tui.Run(c, world.Meta); err != nil {
			fatal(err)
		}
		return
	}

	res, runErr := c.Execute(args)
	for _, line := range res.Output {
		fmt.Println(line)
	}

	// The death pipeline already reset the game; persist the aftermath.
	if err := c.Save(); err != nil {
		fatal(err)
	}

	if runErr != nil {
		if errors.Is(runErr, engine.ErrDead) {
			os.Exit(1)
		}
		fatal(runErr)
	}
}

func loadWorld(cfg config.Config) (*loader.World, error) {
	if cfg.World != "" {
		return loader.LoadFile(cfg.World)
	}
	return loader.LoadDefault()
}

// loadGame restores the save file if one exists, otherwise starts fresh.
func loadGame(cfg config.Config, world *loader.World) (*engine.Game, error) {
	raw, err := os.ReadFile(cfg.SavePath())
	switch {
	case err == nil:
		return save.Restore(raw, world.Catalog)
	case os.IsNotExist(err):
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		game := engine.New(world.Catalog, world.Quests, engine.NewRNG(seed))
		game.Hardcore = cfg.Hardcore
		return game, nil
	default:
		return nil, err
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
