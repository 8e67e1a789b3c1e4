package game

import "fmt"

// State is everything a running session mutates: where the player is,
// the player, and the score. It is owned by a single session.
type State struct {
	World   *World
	Current *Room
	Player  *Player
	Score   int
}

// NewState places the player in the start room of the world.
func NewState(world *World, startRoom string, player *Player) (*State, error) {
	if world == nil {
		return nil, fmt.Errorf("world is required")
	}
	if player == nil {
		return nil, fmt.Errorf("player is required")
	}
	start := world.Room(startRoom)
	if start == nil {
		return nil, fmt.Errorf("start room %q: %w", startRoom, ErrRoomNotFound)
	}
	return &State{
		World:   world,
		Current: start,
		Player:  player,
	}, nil
}

// Move follows the exit in the given direction and returns the new room.
// The current room is unchanged on error.
func (s *State) Move(direction string) (*Room, error) {
	to, ok := s.Current.Exit(direction)
	if !ok {
		return nil, ErrNoExit
	}
	next := s.World.Room(to)
	if next == nil {
		return nil, fmt.Errorf("exit %s: %w: %q", direction, ErrRoomNotFound, to)
	}
	s.Current = next
	return next, nil
}

// AddScore increases the score. Non-positive amounts are ignored so the
// score never decreases during play.
func (s *State) AddScore(n int) {
	if n > 0 {
		s.Score += n
	}
}

// Take moves the first item in the current room matching name into the
// player's inventory.
func (s *State) Take(name string) (*Item, error) {
	it := s.Current.Items.Find(name)
	if it == nil {
		return nil, ErrItemNotFound
	}
	s.Current.Items.Remove(it.InstanceId)
	s.Player.Inventory.Add(it)
	return it, nil
}
