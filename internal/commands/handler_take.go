package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/pixil98/go-dungeon/internal/game"
)

// Take moves an item from the current room into the player's inventory.
// All arguments form the item name. When several items share the name the
// first one in the room wins.
func Take(ctx context.Context, cmdCtx *CommandContext) error {
	if len(cmdCtx.Args) == 0 {
		return NewUserError("Укажите предмет для взятия")
	}

	name := cmdCtx.Rest()
	it, err := cmdCtx.State.Take(name)
	if errors.Is(err, game.ErrItemNotFound) {
		return UserErrorf("Предмет не найден: %s", name)
	}
	if err != nil {
		return fmt.Errorf("taking %q: %w", name, err)
	}

	_, err = fmt.Fprintf(cmdCtx.Out, "Взято: %s\n", it.Name)
	return err
}
