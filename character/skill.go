package character

import (
	"errors"
	"fmt"
	"sort"
)

// Skill identifies a learnable technique. The set is closed; every skill
// is matched exhaustively where it is resolved.
type Skill string

const (
	SkillFireball Skill = "fireball"
	SkillHeal     Skill = "heal"
	SkillCleanse  Skill = "cleanse"
)

// SkillSpec describes a skill's prerequisites and cost. Costs are paid
// in gold when the skill is used, not when it is learned.
type SkillSpec struct {
	MinLevel    int
	Cost        int
	Description string
}

var skillCatalog = map[Skill]SkillSpec{
	SkillFireball: {MinLevel: 3, Cost: 20, Description: "hurl a fireball for double strength damage"},
	SkillHeal:     {MinLevel: 2, Cost: 15, Description: "restore half of max health"},
	SkillCleanse:  {MinLevel: 1, Cost: 10, Description: "cure the active status effect"},
}

// Skill learning and usage errors.
var (
	ErrUnknownSkill    = errors.New("unknown skill")
	ErrSkillKnown      = errors.New("skill already learned")
	ErrSkillLevel      = errors.New("level too low to learn that skill")
	ErrSkillNotLearned = errors.New("skill not learned")
)

// SkillByName resolves a skill name against the catalog.
func SkillByName(name string) (Skill, SkillSpec, error) {
	skill := Skill(name)
	spec, ok := skillCatalog[skill]
	if !ok {
		return "", SkillSpec{}, fmt.Errorf("%w: %s", ErrUnknownSkill, name)
	}
	return skill, spec, nil
}

// Skills lists the full skill catalog in stable order.
func Skills() []Skill {
	out := make([]Skill, 0, len(skillCatalog))
	for skill := range skillCatalog {
		out = append(out, skill)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Spec returns the catalog entry for a known skill.
func (s Skill) Spec() SkillSpec {
	return skillCatalog[s]
}

// LearnSkill adds a skill to the character's known set. It fails if the
// skill doesn't exist, is already known, or the level prerequisite is unmet.
func (c *Character) LearnSkill(name string) error {
	skill, spec, err := SkillByName(name)
	if err != nil {
		return err
	}
	if c.Skills[skill] {
		return fmt.Errorf("%w: %s", ErrSkillKnown, name)
	}
	if c.Level < spec.MinLevel {
		return fmt.Errorf("%w: %s requires level %d", ErrSkillLevel, name, spec.MinLevel)
	}
	if c.Skills == nil {
		c.Skills = map[Skill]bool{}
	}
	c.Skills[skill] = true
	return nil
}

// Knows reports whether the character has learned the given skill.
func (c *Character) Knows(skill Skill) bool {
	return c.Skills[skill]
}
