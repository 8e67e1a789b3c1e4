package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/pixil98/go-dungeon/internal/game"
)

// Move moves the player through an exit of the current room.
// Args:
//   - direction (required): exit name, matched ignoring case
func Move(ctx context.Context, cmdCtx *CommandContext) error {
	if len(cmdCtx.Args) == 0 {
		return NewUserError("Укажите направление (north, south, east, west)")
	}

	dir := game.FoldName(cmdCtx.Args[0])
	next, err := cmdCtx.State.Move(dir)
	if errors.Is(err, game.ErrNoExit) {
		return UserErrorf("Нет выхода в этом направлении: %s", dir)
	}
	if err != nil {
		return fmt.Errorf("moving %s: %w", dir, err)
	}

	fmt.Fprintf(cmdCtx.Out, "Вы перешли в: %s\n", next.Name)
	_, err = fmt.Fprintln(cmdCtx.Out, next.Describe())
	return err
}
