package command

import (
	"fmt"

	"github.com/pixil98/go-dungeon/internal/game"
	"github.com/pixil98/go-dungeon/internal/world"
	"github.com/pixil98/go-errors"
)

// WorldConfig selects the map and hero. With no path the built-in world is used.
type WorldConfig struct {
	Path      string           `json:"path" env:"DUNGEON_WORLD_PATH"`
	StartRoom string           `json:"start_room"`
	Player    *game.PlayerSpec `json:"player,omitempty"`
}

func (c *WorldConfig) validate() error {
	el := errors.NewErrorList()

	if c.Path != "" && c.StartRoom == "" {
		el.Add(fmt.Errorf("world: start_room is required when path is set"))
	}

	if c.Player != nil {
		if err := c.Player.Validate(); err != nil {
			el.Add(fmt.Errorf("world: player: %w", err))
		}
	}

	return el.Err()
}

// BuildState creates a fresh game.
func (c *WorldConfig) BuildState() (*game.State, error) {
	player := world.DefaultPlayer()
	if c.Player != nil {
		player = *c.Player
	}

	if c.Path == "" {
		start := c.StartRoom
		if start == "" {
			start = world.DefaultStart
		}
		return world.Build(world.DefaultRooms(), start, player)
	}

	rooms, err := world.Load(c.Path)
	if err != nil {
		return nil, err
	}
	return world.Build(rooms, c.StartRoom, player)
}
