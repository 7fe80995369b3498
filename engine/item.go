package engine

import (
	"fmt"
	"strings"

	"github.com/nathoo/dirquest/character"
	"github.com/nathoo/dirquest/types"
)

// ringItems maps ring-shaped inventory items to the ring they equip.
var ringItems = map[types.ItemKey]character.Ring{
	types.KeyEvadeRing:    character.RingEvade,
	types.KeyVoidRing:     character.RingVoid,
	types.KeyRulingRing:   character.RingRuling,
	types.KeySpeedRing:    character.RingSpeed,
	types.KeyStrengthRing: character.RingStrength,
}

func keyForRing(ring character.Ring) (types.ItemKey, bool) {
	for key, r := range ringItems {
		if r == ring {
			return key, true
		}
	}
	return "", false
}

// UseItem applies one inventory item. Rings are equipped (an evicted ring
// returns to the inventory); potions and remedies are consumed; the amulet
// is passive and stays.
func (g *Game) UseItem(name string) (types.Result, error) {
	var res types.Result
	key := types.ItemKey(strings.ToLower(strings.TrimSpace(name)))
	if _, isRing := ringItems[key]; !isRing {
		switch key {
		case types.KeyPotion, types.KeyRemedy, types.KeyAmulet:
		default:
			return res, fmt.Errorf("%w: %s", ErrUnknownItem, name)
		}
	}
	if g.Inventory[key] == 0 {
		return res, fmt.Errorf("%w: you don't have a %s", ErrInvalidAction, key)
	}

	switch key {
	case types.KeyPotion:
		g.removeItem(key)
		healed := g.Player.Heal(25 + 5*g.Player.Level)
		res.Say(fmt.Sprintf("You drink the potion and recover %d hp. [%d/%d]",
			healed, g.Player.CurrentHP, g.Player.MaxHP()))

	case types.KeyRemedy:
		g.removeItem(key)
		if g.Player.Status == character.StatusNone {
			res.Say("The remedy tastes awful. Nothing happens.")
		} else {
			res.Say(fmt.Sprintf("The remedy purges the %s.", g.Player.Status))
			g.Player.CureStatus()
		}

	case types.KeyAmulet:
		res.Say("The amulet hums with ancient power.")

	default:
		ring := ringItems[key]
		g.removeItem(key)
		evicted := g.Player.EquipRing(ring)
		res.Say(fmt.Sprintf("You slip on the %s ring.", ring))
		if evicted != character.RingNone {
			if evictedKey, ok := keyForRing(evicted); ok {
				g.Inventory[evictedKey]++
				res.Say(fmt.Sprintf("The %s ring goes back in your pack.", evicted))
			}
		}
	}
	return res, nil
}

func (g *Game) removeItem(key types.ItemKey) {
	g.Inventory[key]--
	if g.Inventory[key] <= 0 {
		delete(g.Inventory, key)
	}
}

// addItem puts an item in the inventory and dispatches the pickup event.
func (g *Game) addItem(res *types.Result, key types.ItemKey) {
	if g.Inventory == nil {
		g.Inventory = map[types.ItemKey]int{}
	}
	g.Inventory[key]++
	res.Say(fmt.Sprintf("+1 %s", key))
	g.dispatch(res, types.ItemAdded{Key: key})
}
