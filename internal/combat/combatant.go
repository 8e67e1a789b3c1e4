package combat

import "github.com/pixil98/go-dungeon/internal/game"

// Combatant is anything that can participate in combat.
type Combatant interface {
	CombatName() string
	CurrentHP() int
	IsAlive() bool
	ApplyDamage(int)
}

// PlayerCombatant adapts a Player for the combat system.
type PlayerCombatant struct {
	Player *game.Player
}

func (c *PlayerCombatant) CombatName() string  { return c.Player.Name }
func (c *PlayerCombatant) CurrentHP() int      { return c.Player.HP }
func (c *PlayerCombatant) IsAlive() bool       { return c.Player.IsAlive() }
func (c *PlayerCombatant) ApplyDamage(dmg int) { c.Player.HP -= dmg }

// MonsterCombatant adapts a Monster for the combat system.
type MonsterCombatant struct {
	Monster *game.Monster
}

func (c *MonsterCombatant) CombatName() string  { return c.Monster.Name }
func (c *MonsterCombatant) CurrentHP() int      { return c.Monster.HP }
func (c *MonsterCombatant) IsAlive() bool       { return c.Monster.IsAlive() }
func (c *MonsterCombatant) ApplyDamage(dmg int) { c.Monster.HP -= dmg }
