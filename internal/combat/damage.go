package combat

// PlayerDamage is the damage a player deals per hit.
func PlayerDamage(attack int) int {
	return attack
}

// MonsterDamage is the damage a monster deals per hit: twice its level,
// reduced by half the player's attack (truncated), never below zero.
func MonsterDamage(level, playerAttack int) int {
	return max(0, level*2-playerAttack/2)
}

// shownHP clamps hp for display. Stored hp may go below zero.
func shownHP(hp int) int {
	return max(0, hp)
}
