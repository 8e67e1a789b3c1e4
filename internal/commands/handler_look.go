package commands

import (
	"context"
	"fmt"
)

// Look shows the description of the current room.
func Look(ctx context.Context, cmdCtx *CommandContext) error {
	_, err := fmt.Fprintln(cmdCtx.Out, cmdCtx.State.Current.Describe())
	return err
}
