package commands

import (
	"context"
	"fmt"
	"strings"
)

// HelpHandler lists every registered command in registration order.
type HelpHandler struct {
	registry *Registry
}

func NewHelpHandler(registry *Registry) *HelpHandler {
	return &HelpHandler{registry: registry}
}

func (h *HelpHandler) Exec(ctx context.Context, cmdCtx *CommandContext) error {
	_, err := fmt.Fprintf(cmdCtx.Out, "Команды: %s\n", strings.Join(h.registry.Names(), ", "))
	return err
}
