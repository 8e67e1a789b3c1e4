package persist

import (
	"fmt"
	"time"

	"github.com/pixil98/go-dungeon/internal/game"
	"github.com/pixil98/go-errors"
)

// Snapshot is a saved game: the player, where they stand, the score and
// what is left in every room.
type Snapshot struct {
	Player      game.PlayerSpec         `json:"player"`
	CurrentRoom string                  `json:"current_room"`
	Score       int                     `json:"score"`
	Rooms       map[string]RoomSnapshot `json:"rooms"`
	SavedAt     time.Time               `json:"saved_at"`
}

// RoomSnapshot is the mutable part of a room.
type RoomSnapshot struct {
	Items   []game.ItemSpec   `json:"items,omitempty"`
	Monster *game.MonsterSpec `json:"monster,omitempty"`
}

// Validate satisfies storage.ValidatingSpec
func (s *Snapshot) Validate() error {
	el := errors.NewErrorList()

	el.Add(s.Player.Validate())
	if s.CurrentRoom == "" {
		el.Add(fmt.Errorf("current_room is required"))
	}
	if s.Score < 0 {
		el.Add(fmt.Errorf("score must not be negative"))
	}
	for id, r := range s.Rooms {
		for i := range r.Items {
			if err := r.Items[i].Validate(); err != nil {
				el.Add(fmt.Errorf("room %q: %w", id, err))
			}
		}
		if r.Monster != nil {
			if err := r.Monster.Validate(); err != nil {
				el.Add(fmt.Errorf("room %q: %w", id, err))
			}
		}
	}

	return el.Err()
}

// Capture records the current game state.
func Capture(st *game.State, now time.Time) *Snapshot {
	snap := &Snapshot{
		Player:      st.Player.Spec(),
		CurrentRoom: st.Current.Id,
		Score:       st.Score,
		Rooms:       map[string]RoomSnapshot{},
		SavedAt:     now.UTC(),
	}
	for _, r := range st.World.Rooms() {
		rs := RoomSnapshot{Items: r.Items.Specs()}
		if m := r.LiveMonster(); m != nil {
			spec := m.Spec()
			rs.Monster = &spec
		}
		snap.Rooms[r.Id] = rs
	}
	return snap
}

// Restore replaces the game state with the snapshot. Nothing is changed
// unless the whole snapshot fits the state's world.
func (s *Snapshot) Restore(st *game.State) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid save: %w", err)
	}

	current := st.World.Room(s.CurrentRoom)
	if current == nil {
		return fmt.Errorf("current room %q: %w", s.CurrentRoom, game.ErrRoomNotFound)
	}
	for id := range s.Rooms {
		if st.World.Room(id) == nil {
			return fmt.Errorf("room %q: %w", id, game.ErrRoomNotFound)
		}
	}

	player := game.NewPlayer(s.Player)

	type roomState struct {
		items   *game.Inventory
		monster *game.Monster
	}
	rooms := make(map[string]roomState, len(s.Rooms))
	for id, rs := range s.Rooms {
		state := roomState{items: game.NewInventory()}
		for _, is := range rs.Items {
			state.items.Add(game.NewItem(is))
		}
		if rs.Monster != nil {
			state.monster = game.NewMonster(*rs.Monster)
		}
		rooms[id] = state
	}

	for _, r := range st.World.Rooms() {
		rs, ok := rooms[r.Id]
		if !ok {
			continue
		}
		r.Items = rs.items
		r.Monster = rs.monster
	}
	st.Player = player
	st.Current = current
	st.Score = s.Score

	return nil
}
