package persist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pixil98/go-dungeon/internal/game"
	"github.com/pixil98/go-dungeon/internal/scores"
	"github.com/pixil98/go-dungeon/internal/storage"
)

// DefaultSlot is the asset id the game is saved under.
const DefaultSlot = "save"

var ErrNoSave = errors.New("save not found")

// ScoreBoard records and ranks finished results.
type ScoreBoard interface {
	Record(ctx context.Context, player string, score int) error
	Top(ctx context.Context, limit int) ([]scores.Entry, error)
}

// Store saves games as JSON assets and keeps the high-score table.
type Store struct {
	saves storage.Storer[*Snapshot]
	board ScoreBoard
	slot  string
	limit int
	now   func() time.Time
}

func NewStore(saves storage.Storer[*Snapshot], board ScoreBoard, opts ...StoreOpt) *Store {
	s := &Store{
		saves: saves,
		board: board,
		slot:  DefaultSlot,
		limit: scores.DefaultLimit,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save writes a snapshot of the state and records the current score.
func (s *Store) Save(ctx context.Context, st *game.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	snap := Capture(st, s.now())
	if err := s.saves.Save(s.slot, snap); err != nil {
		return fmt.Errorf("saving game: %w", err)
	}
	if err := s.board.Record(ctx, st.Player.Name, st.Score); err != nil {
		return fmt.Errorf("recording score: %w", err)
	}

	slog.Info("game saved", "slot", s.slot, "room", snap.CurrentRoom, "score", snap.Score)
	return nil
}

// Load restores the state from the saved snapshot.
func (s *Store) Load(ctx context.Context, st *game.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	snap := s.saves.Get(s.slot)
	if snap == nil {
		return fmt.Errorf("loading %q: %w", s.slot, ErrNoSave)
	}
	if err := snap.Restore(st); err != nil {
		return fmt.Errorf("loading %q: %w", s.slot, err)
	}

	slog.Info("game loaded", "slot", s.slot, "room", snap.CurrentRoom, "score", snap.Score)
	return nil
}

// Scores returns the best recorded results.
func (s *Store) Scores(ctx context.Context) ([]scores.Entry, error) {
	entries, err := s.board.Top(ctx, s.limit)
	if err != nil {
		return nil, fmt.Errorf("reading scores: %w", err)
	}
	return entries, nil
}
