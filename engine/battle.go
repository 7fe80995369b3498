package engine

import (
	"fmt"

	"github.com/nathoo/dirquest/character"
	"github.com/nathoo/dirquest/types"
)

const (
	goldPerEnemyLevel = 50
	bribePerLevel     = 50
	xpPerEnemyLevel   = 30
)

// Battle rolls for an enemy at the current location, independently of
// movement.
func (g *Game) Battle() (types.Result, error) {
	var res types.Result
	if g.Engaged() {
		return res, fmt.Errorf("%w: already in an encounter", ErrInvalidAction)
	}
	enemy := g.SpawnEnemy()
	if enemy == nil {
		res.Say("No enemies found here.")
		return res, nil
	}
	g.InCombat = enemy
	res.Say(fmt.Sprintf("A %s [lv.%d] appears at %s!", enemy.Name(), enemy.Level, g.Location))
	return res, nil
}

// Attack resolves one exchange of damage. The faster combatant strikes
// first; a kill forestalls the counterblow. Defeating the enemy grants
// experience and gold and clears the slot; dying runs the death pipeline.
func (g *Game) Attack() (types.Result, error) {
	var res types.Result
	enemy := g.InCombat
	if enemy == nil {
		return res, fmt.Errorf("%w: there is no enemy here", ErrInvalidAction)
	}

	if enemy.Speed() > g.Player.Speed() {
		if err := g.enemyHits(&res, enemy); err != nil {
			return res, err
		}
		g.playerHits(&res, enemy)
		if enemy.IsDead() {
			g.winBattle(&res, enemy)
		}
		return res, nil
	}

	g.playerHits(&res, enemy)
	if enemy.IsDead() {
		g.winBattle(&res, enemy)
		return res, nil
	}
	if err := g.enemyHits(&res, enemy); err != nil {
		return res, err
	}
	return res, nil
}

// Flee attempts to escape. Success odds scale with relative speed; failure
// costs one enemy hit.
func (g *Game) Flee() (types.Result, error) {
	var res types.Result
	enemy := g.InCombat
	if enemy == nil {
		return res, fmt.Errorf("%w: there is nothing to flee from", ErrInvalidAction)
	}

	if g.Rand.Range(g.Player.Speed()+enemy.Speed()) < g.Player.Speed() {
		g.InCombat = nil
		res.Say(fmt.Sprintf("You outrun the %s.", enemy.Name()))
		return res, nil
	}

	res.Say(fmt.Sprintf("The %s cuts off your escape!", enemy.Name()))
	if err := g.enemyHits(&res, enemy); err != nil {
		return res, err
	}
	return res, nil
}

// Bribe offers gold for safe passage. A short purse is a hard failure with
// no state change; only a failed coin flip counts as an attempted bribe
// and draws retaliation. Success pays the cost and clears the slot with no
// reward or experience.
func (g *Game) Bribe() (types.Result, error) {
	var res types.Result
	enemy := g.InCombat
	if enemy == nil {
		return res, fmt.Errorf("%w: there is no one to bribe", ErrInvalidAction)
	}

	cost := enemy.Level * bribePerLevel
	if g.Gold < cost {
		return res, fmt.Errorf("%w: the %s demands %d gold", ErrInsufficientGold, enemy.Name(), cost)
	}

	if g.Rand.Range(2) == 0 {
		g.Gold -= cost
		g.InCombat = nil
		res.Say(fmt.Sprintf("The %s takes your %d gold and leaves.", enemy.Name(), cost))
		return res, nil
	}

	res.Say(fmt.Sprintf("The %s scoffs at your offer!", enemy.Name()))
	if err := g.enemyHits(&res, enemy); err != nil {
		return res, err
	}
	return res, nil
}

// UseSkill spends a learned skill's gold cost and applies its effect.
// Combat skills follow the attack exchange's win/loss bookkeeping.
func (g *Game) UseSkill(name string) (types.Result, error) {
	var res types.Result
	skill, spec, err := character.SkillByName(name)
	if err != nil {
		return res, err
	}
	if !g.Player.Knows(skill) {
		return res, fmt.Errorf("%w: %s", character.ErrSkillNotLearned, name)
	}
	if g.Gold < spec.Cost {
		return res, fmt.Errorf("%w: %s costs %d gold", ErrInsufficientGold, name, spec.Cost)
	}

	switch skill {
	case character.SkillFireball:
		enemy := g.InCombat
		if enemy == nil {
			return res, fmt.Errorf("%w: there is no enemy to burn", ErrInvalidAction)
		}
		g.Gold -= spec.Cost
		damage := 2 * g.Player.Strength()
		enemy.ReceiveDamage(damage)
		res.Say(fmt.Sprintf("Your fireball engulfs the %s for %d. [%d/%d]",
			enemy.Name(), damage, enemy.CurrentHP, enemy.MaxHP()))
		if enemy.IsDead() {
			g.winBattle(&res, enemy)
			return res, nil
		}
		if err := g.enemyHits(&res, enemy); err != nil {
			return res, err
		}

	case character.SkillHeal:
		g.Gold -= spec.Cost
		healed := g.Player.Heal(g.Player.MaxHP() / 2)
		res.Say(fmt.Sprintf("You recover %d hp. [%d/%d]", healed, g.Player.CurrentHP, g.Player.MaxHP()))

	case character.SkillCleanse:
		g.Gold -= spec.Cost
		if g.Player.Status == character.StatusNone {
			res.Say("Nothing to cleanse.")
		} else {
			res.Say(fmt.Sprintf("The %s fades away.", g.Player.Status))
			g.Player.CureStatus()
		}
	}
	return res, nil
}

// attackDamage computes one hit: max(1, 1d6 + strength - speed/2).
func attackDamage(attacker, defender *character.Character, rng Randomizer) int {
	roll := rng.Range(6) + 1
	damage := roll + attacker.Strength() - defender.Speed()/2
	if damage < 1 {
		damage = 1
	}
	return damage
}

func (g *Game) playerHits(res *types.Result, enemy *character.Character) {
	damage := attackDamage(g.Player, enemy, g.Rand)
	enemy.ReceiveDamage(damage)
	res.Say(fmt.Sprintf("You hit the %s for %d. [%d/%d]",
		enemy.Name(), damage, enemy.CurrentHP, enemy.MaxHP()))
}

// enemyHits applies one enemy hit to the player, possibly inflicting a
// status effect, and runs the death pipeline on a kill.
func (g *Game) enemyHits(res *types.Result, enemy *character.Character) error {
	damage := attackDamage(enemy, g.Player, g.Rand)
	g.Player.ReceiveDamage(damage)
	res.Say(fmt.Sprintf("The %s hits you for %d. [%d/%d]",
		enemy.Name(), damage, g.Player.CurrentHP, g.Player.MaxHP()))
	g.maybeInflictStatus(res, enemy)
	if g.Player.IsDead() {
		return g.settleDeath(res)
	}
	return nil
}

// maybeInflictStatus gives venomous and fiery enemy families a 1-in-3
// chance of afflicting the player on a successful hit.
func (g *Game) maybeInflictStatus(res *types.Result, enemy *character.Character) {
	if g.Player.Status != character.StatusNone {
		return
	}
	var effect character.StatusEffect
	switch enemy.Class.BaseName() {
	case "snake", "spider":
		effect = character.StatusPoison
	case "demon", "dragon":
		effect = character.StatusBurn
	default:
		return
	}
	if g.Rand.Range(3) == 0 {
		g.Player.Status = effect
		res.Say(fmt.Sprintf("The %s afflicts you with %s!", enemy.Name(), effect))
	}
}

// winBattle performs victory bookkeeping: experience scaled by enemy tier,
// gold, slot clearing, and event dispatch.
func (g *Game) winBattle(res *types.Result, enemy *character.Character) {
	xp := enemy.Level * xpPerEnemyLevel * categoryMultiplier(enemy.Class.Category)
	gold := enemy.Level*goldPerEnemyLevel + g.Rand.Range(goldPerEnemyLevel+1)

	levels := g.Player.AddExperience(xp)
	g.Gold += gold
	g.InCombat = nil
	res.Say(fmt.Sprintf("You defeated the %s! +%d xp, +%d gold.", enemy.Name(), xp, gold))

	g.dispatch(res, types.BattleWon{Enemy: enemy.Name(), Level: enemy.Level})
	if levels > 0 {
		res.Say(fmt.Sprintf("Level up! You are now level %d.", g.Player.Level))
		g.dispatch(res, types.LevelReached{Level: g.Player.Level})
	}
}

func categoryMultiplier(category character.Category) int {
	switch category {
	case character.CategoryRare:
		return 2
	case character.CategoryLegendary:
		return 3
	case character.CategoryBoss:
		return 4
	default:
		return 1
	}
}
