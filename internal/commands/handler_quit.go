package commands

import (
	"context"
	"fmt"
)

// ExitCodeQuit is the process exit code after the exit command.
const ExitCodeQuit = 0

// Exit says goodbye and ends the session.
func Exit(ctx context.Context, cmdCtx *CommandContext) error {
	fmt.Fprintln(cmdCtx.Out, "Пока!")
	return Terminate("exit command", ExitCodeQuit)
}
