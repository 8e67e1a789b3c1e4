package combat

import (
	"fmt"
	"io"
)

// Reporter receives a line for each step of a fight.
type Reporter interface {
	FightStarted(monster Combatant, level int)
	PlayerHit(monster Combatant, damage int)
	MonsterHit(player Combatant, damage int)
	Victory(monster Combatant)
	Defeat(player Combatant)
}

// TextReporter writes fight messages to a console writer.
type TextReporter struct {
	W io.Writer
}

func (r *TextReporter) FightStarted(m Combatant, level int) {
	fmt.Fprintf(r.W, "Бой с монстром: %s (ур. %d, HP: %d)\n", m.CombatName(), level, shownHP(m.CurrentHP()))
}

func (r *TextReporter) PlayerHit(m Combatant, damage int) {
	fmt.Fprintf(r.W, "Вы бьёте %s на %d. HP монстра: %d\n", m.CombatName(), damage, shownHP(m.CurrentHP()))
}

func (r *TextReporter) MonsterHit(p Combatant, damage int) {
	fmt.Fprintf(r.W, "Монстр отвечает: %d. Ваше HP: %d\n", damage, shownHP(p.CurrentHP()))
}

func (r *TextReporter) Victory(m Combatant) {
	fmt.Fprintf(r.W, "Вы победили монстра %s!\n", m.CombatName())
}

func (r *TextReporter) Defeat(Combatant) {
	fmt.Fprintln(r.W, "Вы погибли. Игра окончена.")
}
