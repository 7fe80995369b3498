package engine

import (
	"fmt"

	"github.com/nathoo/dirquest/types"
)

// SpawnNPC rolls for a non-hostile encounter at the current location.
// Same distance-scaled appearance gate as enemies, then a uniform choice
// among the NPC kinds.
func (g *Game) SpawnNPC() types.NPCKind {
	if !g.Rand.ShouldEnemyAppear(g.Location.DistanceFromHome()) {
		return types.NPCNone
	}
	switch g.Rand.Range(3) {
	case 0:
		return types.NPCGambler
	case 1:
		return types.NPCWitch
	default:
		return types.NPCGhostlyMaiden
	}
}

// Bet wagers gold on the gambler's coin flip. Single-shot: win or lose,
// the gambler leaves.
func (g *Game) Bet(amount int) (types.Result, error) {
	var res types.Result
	if g.InEncounter != types.NPCGambler {
		return res, fmt.Errorf("%w: there is no one to bet with here", ErrInvalidAction)
	}
	if amount < 1 {
		return res, fmt.Errorf("%w: bet a positive amount", ErrInvalidAction)
	}
	if amount > g.Gold {
		return res, fmt.Errorf("%w: you can't cover a %d gold bet", ErrInsufficientGold, amount)
	}

	if g.Rand.Range(2) == 0 {
		g.Gold += amount
		res.Say(fmt.Sprintf("The coin lands your way. +%d gold.", amount))
	} else {
		g.Gold -= amount
		res.Say(fmt.Sprintf("The coin betrays you. -%d gold.", amount))
	}
	g.InEncounter = types.NPCNone
	return res, nil
}

// Brew asks the witch for a potion. She always obliges, then vanishes.
func (g *Game) Brew() (types.Result, error) {
	var res types.Result
	if g.InEncounter != types.NPCWitch {
		return res, fmt.Errorf("%w: there is no witch here to brew a potion", ErrInvalidAction)
	}
	res.Say("The witch brews a bubbling potion and hands it to you.")
	g.addItem(&res, types.KeyPotion)
	g.InEncounter = types.NPCNone
	return res, nil
}

var maidenLore = []string{
	"She whispers of a hidden treasure in a nearby cave.",
	"She speaks of a great evil that slumbers deep within the earth.",
	"She warns of a powerful dragon that guards the mountain pass.",
}

// Listen hears the ghostly maiden's story, then she fades.
func (g *Game) Listen() (types.Result, error) {
	var res types.Result
	if g.InEncounter != types.NPCGhostlyMaiden {
		return res, fmt.Errorf("%w: there is no one to listen to here", ErrInvalidAction)
	}
	lore := maidenLore[g.Rand.Range(len(maidenLore))]
	res.Say(fmt.Sprintf("The ghostly maiden's voice echoes in your mind: '%s'", lore))
	g.InEncounter = types.NPCNone
	return res, nil
}
