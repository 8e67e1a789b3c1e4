package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-dungeon/internal/game"
	"github.com/pixil98/go-dungeon/internal/scores"
)

// Gateway persists game state and high scores.
type Gateway interface {
	Save(ctx context.Context, s *game.State) error
	Load(ctx context.Context, s *game.State) error
	Scores(ctx context.Context) ([]scores.Entry, error)
}

// PersistHandlers binds save, load and scores to a gateway.
// Gateway failures are returned as-is and reported as unexpected errors.
type PersistHandlers struct {
	gw Gateway
}

func NewPersistHandlers(gw Gateway) *PersistHandlers {
	return &PersistHandlers{gw: gw}
}

func (p *PersistHandlers) Save(ctx context.Context, cmdCtx *CommandContext) error {
	if err := p.gw.Save(ctx, cmdCtx.State); err != nil {
		return err
	}
	_, err := fmt.Fprintln(cmdCtx.Out, "Игра сохранена.")
	return err
}

func (p *PersistHandlers) Load(ctx context.Context, cmdCtx *CommandContext) error {
	if err := p.gw.Load(ctx, cmdCtx.State); err != nil {
		return err
	}
	_, err := fmt.Fprintln(cmdCtx.Out, "Игра загружена.")
	return err
}

func (p *PersistHandlers) Scores(ctx context.Context, cmdCtx *CommandContext) error {
	entries, err := p.gw.Scores(ctx)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		_, err = fmt.Fprintln(cmdCtx.Out, "Пока нет результатов.")
		return err
	}

	fmt.Fprintln(cmdCtx.Out, "Таблица лидеров:")
	for i, e := range entries {
		fmt.Fprintf(cmdCtx.Out, "%d. %s: %d\n", i+1, e.Player, e.Score)
	}
	return nil
}
