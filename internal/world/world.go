// Package world assembles a playable game state, either from the built-in
// map or from room assets on disk.
package world

import (
	"fmt"

	"github.com/pixil98/go-dungeon/internal/game"
	"github.com/pixil98/go-dungeon/internal/storage"
)

// Room ids of the built-in world.
const (
	RoomSquare = "square"
	RoomForest = "forest"
	RoomCave   = "cave"
)

// DefaultStart is the room a new game begins in.
const DefaultStart = RoomSquare

// DefaultPlayer is the starting hero.
func DefaultPlayer() game.PlayerSpec {
	return game.PlayerSpec{Name: "Герой", HP: 20, Attack: 5}
}

// DefaultRooms returns the room specs of the built-in world. Each call
// returns fresh specs.
func DefaultRooms() map[string]*game.RoomSpec {
	return map[string]*game.RoomSpec{
		RoomSquare: {
			Name:        "Площадь",
			Description: "Каменная площадь с фонтаном.",
			Exits:       map[string]string{"north": RoomForest},
			Items: []game.ItemSpec{
				{Name: "Старый ключ", Kind: game.ItemKindKey},
			},
		},
		RoomForest: {
			Name:        "Лес",
			Description: "Шелест листвы и птичий щебет.",
			Exits:       map[string]string{"south": RoomSquare, "east": RoomCave},
			Items: []game.ItemSpec{
				{Name: "Малое зелье", Kind: game.ItemKindPotion, Value: 5},
			},
			Monster: &game.MonsterSpec{Name: "Волк", Level: 1, HP: 8},
		},
		RoomCave: {
			Name:        "Пещера",
			Description: "Темно и сыро.",
			Exits:       map[string]string{"west": RoomForest},
			Items: []game.ItemSpec{
				{Name: "Ржавый меч", Kind: game.ItemKindWeapon, Value: 2},
			},
		},
	}
}

// Default builds a new game in the built-in world.
func Default() (*game.State, error) {
	return Build(DefaultRooms(), DefaultStart, DefaultPlayer())
}

// Load reads every room asset under dir. Asset ids become room ids.
func Load(dir string) (map[string]*game.RoomSpec, error) {
	store, err := storage.NewFileStore[*game.RoomSpec](dir)
	if err != nil {
		return nil, fmt.Errorf("loading rooms from %s: %w", dir, err)
	}

	rooms := store.GetAll()
	if len(rooms) == 0 {
		return nil, fmt.Errorf("loading rooms from %s: no room assets found", dir)
	}
	return rooms, nil
}

// Build validates the rooms and the player and places the player in start.
func Build(rooms map[string]*game.RoomSpec, start string, player game.PlayerSpec) (*game.State, error) {
	if err := player.Validate(); err != nil {
		return nil, fmt.Errorf("validating player: %w", err)
	}

	w, err := game.NewWorld(rooms)
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}

	st, err := game.NewState(w, start, game.NewPlayer(player))
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}
	return st, nil
}
