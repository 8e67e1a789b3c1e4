package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pixil98/go-dungeon/internal/commands"
	"github.com/pixil98/go-dungeon/internal/session"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	lvl, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))

	state, err := cfg.World.BuildState()
	if err != nil {
		return nil, fmt.Errorf("creating world: %w", err)
	}

	store, board, err := cfg.Storage.BuildStore()
	if err != nil {
		return nil, err
	}

	registry, err := commands.NewDefaultRegistry(store, commands.Options{AllocSize: cfg.Commands.AllocSize})
	if err != nil {
		board.Close()
		return nil, fmt.Errorf("creating commands: %w", err)
	}

	slog.Info("game ready", "start", state.Current.Id, "player", state.Player.Name)

	return service.WorkerList{
		"game": &gameWorker{
			session: session.NewSession(state, registry, os.Stdin, os.Stdout),
			closers: []io.Closer{board},
			exit:    os.Exit,
		},
	}, nil
}

// gameWorker runs the console session. The session is the whole program,
// so once it ends the process exits with the session's status after
// releasing storage.
type gameWorker struct {
	session *session.Session
	closers []io.Closer
	exit    func(int)
}

func (w *gameWorker) Start(ctx context.Context) error {
	err := w.session.Start(ctx)
	w.close()
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		return nil
	}

	w.exit(w.session.ExitCode())
	return nil
}

func (w *gameWorker) close() {
	for _, c := range w.closers {
		if err := c.Close(); err != nil {
			slog.Warn("closing storage", "error", err)
		}
	}
}
