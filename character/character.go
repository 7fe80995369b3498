package character

// Character is a mutable entity instantiated from a class snapshot:
// the hero, or an ephemeral enemy discarded when its encounter resolves.
type Character struct {
	Class     Class          `json:"class"`
	Level     int            `json:"level"`
	XP        int            `json:"xp"`
	CurrentHP int            `json:"current_hp"`
	Rings     [2]Ring        `json:"rings"`
	Status    StatusEffect   `json:"status"`
	Skills    map[Skill]bool `json:"skills,omitempty"`
}

// New instantiates a character of the given class at the given level,
// at full health. The class is copied, never shared with the catalog.
func New(class Class, level int) *Character {
	if level < 1 {
		level = 1
	}
	c := &Character{
		Class:  class,
		Level:  level,
		Skills: map[Skill]bool{},
	}
	c.CurrentHP = c.MaxHP()
	return c
}

// Name returns the character's class name.
func (c *Character) Name() string {
	return c.Class.Name
}

// MaxHP is the health ceiling at the current level.
func (c *Character) MaxHP() int {
	return c.Class.HP.At(c.Level)
}

// Strength is the effective strength, including ring bonuses.
func (c *Character) Strength() int {
	base := c.Class.Strength.At(c.Level)
	if c.WearsRing(RingStrength) {
		base += RingStrength.statBonus(base)
	}
	return base
}

// Speed is the effective speed, including ring bonuses.
func (c *Character) Speed() int {
	base := c.Class.Speed.At(c.Level)
	if c.WearsRing(RingSpeed) {
		base += RingSpeed.statBonus(base)
	}
	return base
}

// XPForNext is the experience required to reach the next level.
// Monotonically increasing in level.
func (c *Character) XPForNext() int {
	return c.Level * 100
}

// AddExperience accrues experience and applies any level-ups, rescaling
// current health proportionally to the new maximum. Returns the number of
// levels gained.
func (c *Character) AddExperience(xp int) int {
	if xp <= 0 {
		return 0
	}
	c.XP += xp
	levels := 0
	for c.XP >= c.XPForNext() {
		c.XP -= c.XPForNext()
		oldMax := c.MaxHP()
		c.Level++
		levels++
		newMax := c.MaxHP()
		if oldMax > 0 {
			c.CurrentHP = c.CurrentHP * newMax / oldMax
		}
		if c.CurrentHP < 1 {
			c.CurrentHP = 1
		}
		if c.CurrentHP > newMax {
			c.CurrentHP = newMax
		}
	}
	return levels
}

// ReceiveDamage lowers current health, clamping at zero.
func (c *Character) ReceiveDamage(damage int) {
	if damage < 0 {
		damage = 0
	}
	c.CurrentHP -= damage
	if c.CurrentHP < 0 {
		c.CurrentHP = 0
	}
}

// Heal restores health up to the level maximum and returns the amount
// actually recovered.
func (c *Character) Heal(amount int) int {
	if amount < 0 {
		amount = 0
	}
	max := c.MaxHP()
	healed := amount
	if c.CurrentHP+healed > max {
		healed = max - c.CurrentHP
	}
	c.CurrentHP += healed
	return healed
}

// RestoreHP heals to full.
func (c *Character) RestoreHP() {
	c.CurrentHP = c.MaxHP()
}

// IsDead reports whether health has reached zero. Zero health is terminal:
// the death pipeline runs before any further action.
func (c *Character) IsDead() bool {
	return c.CurrentHP <= 0
}

// EquipRing inserts a ring into the fixed two-slot FIFO: the ring equipped
// longest is evicted, the other slot shifts forward, and the new ring takes
// the vacated slot. Returns the evicted ring (RingNone if a slot was free).
func (c *Character) EquipRing(ring Ring) Ring {
	evicted := c.Rings[0]
	c.Rings[0] = c.Rings[1]
	c.Rings[1] = ring
	return evicted
}

// WearsRing reports whether either slot currently holds the given ring.
// Always derived from slot contents, never cached.
func (c *Character) WearsRing(ring Ring) bool {
	return c.Rings[0] == ring || c.Rings[1] == ring
}

// EnemiesEvaded reports whether random encounters are suppressed by an
// equipped evade ring.
func (c *Character) EnemiesEvaded() bool {
	return c.WearsRing(RingEvade)
}

// ChangeClass swaps the hero to a new class, restarting progression:
// level 1, no experience, full health. Rings and learned skills are kept.
func (c *Character) ChangeClass(class Class) {
	c.Class = class
	c.Level = 1
	c.XP = 0
	c.Status = StatusNone
	c.CurrentHP = c.MaxHP()
}
