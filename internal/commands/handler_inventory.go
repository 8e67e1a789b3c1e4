package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/pixil98/go-dungeon/internal/game"
)

// Inventory lists the player's items grouped by kind.
func Inventory(ctx context.Context, cmdCtx *CommandContext) error {
	_, err := fmt.Fprint(cmdCtx.Out, FormatInventory(cmdCtx.State.Player.Inventory))
	return err
}

// FormatInventory renders inventory groups in order of first appearance,
// each followed by its item names.
func FormatInventory(inv *game.Inventory) string {
	groups := inv.Groups()
	if len(groups) == 0 {
		return "Инвентарь пуст.\n"
	}

	var b strings.Builder
	for _, g := range groups {
		fmt.Fprintf(&b, "- %s (%d):\n", g.Kind, len(g.Items))
		for _, it := range g.Items {
			fmt.Fprintf(&b, "  - %s\n", it.Name)
		}
	}
	return b.String()
}
