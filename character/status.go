package character

// StatusEffect is an ongoing condition carried by a character. At most one
// is active at a time; it persists across encounters until cured.
type StatusEffect string

const (
	StatusNone   StatusEffect = ""
	StatusBurn   StatusEffect = "burn"
	StatusPoison StatusEffect = "poison"
)

// tickDamage is the health lost per qualifying world action (a location
// change), as a fraction of max health, never less than 1.
func (s StatusEffect) tickDamage(maxHP int) int {
	var damage int
	switch s {
	case StatusBurn:
		damage = maxHP / 20
	case StatusPoison:
		damage = maxHP / 10
	default:
		return 0
	}
	if damage < 1 {
		damage = 1
	}
	return damage
}

// ApplyStatusTick applies one tick of the active status effect and returns
// the damage dealt. Ticks happen on location changes regardless of whether
// the move triggered or bypassed combat.
func (c *Character) ApplyStatusTick() int {
	damage := c.Status.tickDamage(c.MaxHP())
	if damage > 0 {
		c.ReceiveDamage(damage)
	}
	return damage
}

// CureStatus removes the active status effect, if any.
func (c *Character) CureStatus() {
	c.Status = StatusNone
}
