package command

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pixil98/go-dungeon/internal/persist"
	"github.com/pixil98/go-dungeon/internal/scores"
	"github.com/pixil98/go-dungeon/internal/storage"
	"github.com/pixil98/go-errors"
)

const (
	defaultSavePath   = "data/saves"
	defaultScoresPath = "data/scores.db"
)

type StorageConfig struct {
	SavePath   string `json:"save_path" env:"DUNGEON_SAVE_PATH"`
	ScoresPath string `json:"scores_path" env:"DUNGEON_SCORES_PATH"`
	ScoreLimit int    `json:"score_limit"`
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()

	if c.ScoreLimit < 0 {
		el.Add(fmt.Errorf("storage: score_limit must not be negative"))
	}

	if c.SavePath != "" {
		if info, err := os.Stat(c.SavePath); err == nil && !info.IsDir() {
			el.Add(fmt.Errorf("storage: save_path %q is not a directory", c.SavePath))
		}
	}

	return el.Err()
}

func (c *StorageConfig) savePath() string {
	if c.SavePath == "" {
		return defaultSavePath
	}
	return c.SavePath
}

func (c *StorageConfig) scoresPath() string {
	if c.ScoresPath == "" {
		return defaultScoresPath
	}
	return c.ScoresPath
}

// BuildStore opens the save directory and the high-score database. The
// returned scores store must be closed by the caller.
func (c *StorageConfig) BuildStore() (*persist.Store, *scores.Store, error) {
	if err := os.MkdirAll(c.savePath(), 0755); err != nil {
		return nil, nil, fmt.Errorf("creating save directory: %w", err)
	}
	saves, err := storage.NewFileStore[*persist.Snapshot](c.savePath())
	if err != nil {
		return nil, nil, fmt.Errorf("creating save store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.scoresPath()), 0755); err != nil {
		return nil, nil, fmt.Errorf("creating scores directory: %w", err)
	}
	board, err := scores.Open(c.scoresPath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening scores: %w", err)
	}

	var opts []persist.StoreOpt
	if c.ScoreLimit > 0 {
		opts = append(opts, persist.WithScoreLimit(c.ScoreLimit))
	}

	return persist.NewStore(saves, board, opts...), board, nil
}
