package game

import (
	"fmt"
	"sort"

	"github.com/pixil98/go-errors"
)

// World is the arena of rooms for a session, keyed by room id.
type World struct {
	rooms map[string]*Room
}

// NewWorld validates the room specs and spawns a room for each.
// Every exit must lead to a room in the set and room names must be unique.
func NewWorld(specs map[string]*RoomSpec) (*World, error) {
	el := errors.NewErrorList()

	names := map[string]string{}
	for _, id := range sortedKeys(specs) {
		spec := specs[id]
		if spec == nil {
			el.Add(fmt.Errorf("room %q: spec is required", id))
			continue
		}
		if err := spec.Validate(); err != nil {
			el.Add(fmt.Errorf("room %q: %w", id, err))
			continue
		}
		if other, ok := names[FoldName(spec.Name)]; ok {
			el.Add(fmt.Errorf("room %q: name %q already used by room %q", id, spec.Name, other))
		}
		names[FoldName(spec.Name)] = id
		for dir, to := range spec.Exits {
			if _, ok := specs[to]; !ok {
				el.Add(fmt.Errorf("room %q: exit %s: %w: %q", id, dir, ErrRoomNotFound, to))
			}
		}
	}

	if err := el.Err(); err != nil {
		return nil, err
	}

	w := &World{rooms: make(map[string]*Room, len(specs))}
	for id, spec := range specs {
		w.rooms[id] = NewRoom(id, spec)
	}
	return w, nil
}

// Room returns a room by id, or nil if not found.
func (w *World) Room(id string) *Room {
	return w.rooms[id]
}

// Rooms returns all rooms ordered by id.
func (w *World) Rooms() []*Room {
	out := make([]*Room, 0, len(w.rooms))
	for _, id := range sortedKeys(w.rooms) {
		out = append(out, w.rooms[id])
	}
	return out
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
