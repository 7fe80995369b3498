package character

// Ring is a piece of equippable jewelry. The zero value means an empty slot.
type Ring string

const (
	RingNone     Ring = ""
	RingEvade    Ring = "evade"
	RingVoid     Ring = "void"
	RingRuling   Ring = "ruling"
	RingSpeed    Ring = "speed"
	RingStrength Ring = "strength"
)

// statBonus returns the flat bonus a ring adds on top of a base stat value.
// Only the speed and strength rings carry stat bonuses; the others act
// through spawn rules (evade, ruling) or not at all (void).
func (r Ring) statBonus(base int) int {
	switch r {
	case RingSpeed, RingStrength:
		return base / 4
	default:
		return 0
	}
}
