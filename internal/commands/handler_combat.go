package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pixil98/go-dungeon/internal/combat"
)

// ExitCodeDeath is the process exit code after the player dies.
const ExitCodeDeath = 0

// Fight resolves a fight with the monster in the current room. It runs to
// completion: the monster is removed on victory, and the session ends on defeat.
func Fight(ctx context.Context, cmdCtx *CommandContext) error {
	room := cmdCtx.State.Current
	monster := room.LiveMonster()
	if monster == nil {
		return NewUserError("Здесь нет монстров для боя.")
	}

	res, err := combat.Resolve(cmdCtx.State.Player, monster, &combat.TextReporter{W: cmdCtx.Out})
	if err != nil {
		return fmt.Errorf("resolving fight: %w", err)
	}

	slog.Info("fight finished", "monster", monster.Name, "room", room.Id, "outcome", res.Outcome, "rounds", res.Rounds)

	switch res.Outcome {
	case combat.OutcomeVictory:
		room.ClearMonster()
		return nil
	case combat.OutcomeDefeat:
		return Terminate("player died", ExitCodeDeath)
	default:
		return fmt.Errorf("unexpected fight outcome %v", res.Outcome)
	}
}
