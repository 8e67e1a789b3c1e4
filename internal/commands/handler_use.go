package commands

import (
	"context"
	"fmt"
)

// Use applies the effect of an item from the player's inventory.
func Use(ctx context.Context, cmdCtx *CommandContext) error {
	if len(cmdCtx.Args) == 0 {
		return NewUserError("Укажите предмет для использования")
	}

	name := cmdCtx.Rest()
	it := cmdCtx.State.Player.Inventory.Find(name)
	if it == nil {
		return UserErrorf("Предмет не найден в инвентаре: %s", name)
	}

	if err := it.Effect().Apply(cmdCtx.State, it, cmdCtx.Out); err != nil {
		return fmt.Errorf("using %s: %w", it.Name, err)
	}
	return nil
}
