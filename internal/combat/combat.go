package combat

import (
	"errors"
	"fmt"

	"github.com/pixil98/go-dungeon/internal/game"
)

// ErrStalemate is returned when neither side can damage the other,
// so the fight could never end.
var ErrStalemate = errors.New("neither side can deal damage")

// Outcome is how a fight ended.
type Outcome int

const (
	OutcomeVictory Outcome = iota
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result summarizes a finished fight.
type Result struct {
	Outcome Outcome
	Rounds  int
}

// Resolve runs a fight to completion. Each round the player hits first; a
// monster at or below zero hp loses before it can strike back. Otherwise the
// monster hits and a player at or below zero hp loses. Rounds repeat until one
// side falls. The caller decides what victory and defeat mean for the world.
func Resolve(p *game.Player, m *game.Monster, rep Reporter) (Result, error) {
	if !m.IsAlive() {
		return Result{}, fmt.Errorf("monster %q is not alive", m.Name)
	}

	playerDmg := PlayerDamage(p.Attack)
	monsterDmg := MonsterDamage(m.Level, p.Attack)
	if playerDmg <= 0 && monsterDmg <= 0 {
		return Result{}, fmt.Errorf("fighting %s: %w", m.Name, ErrStalemate)
	}

	player := &PlayerCombatant{Player: p}
	monster := &MonsterCombatant{Monster: m}

	rep.FightStarted(monster, m.Level)

	var res Result
	for {
		res.Rounds++

		monster.ApplyDamage(playerDmg)
		rep.PlayerHit(monster, playerDmg)
		if !monster.IsAlive() {
			rep.Victory(monster)
			res.Outcome = OutcomeVictory
			return res, nil
		}

		player.ApplyDamage(monsterDmg)
		rep.MonsterHit(player, monsterDmg)
		if !player.IsAlive() {
			rep.Defeat(player)
			res.Outcome = OutcomeDefeat
			return res, nil
		}
	}
}
