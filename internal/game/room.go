package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pixil98/go-dungeon/internal/display"
	"github.com/pixil98/go-errors"
)

// RoomSpec defines a room as it appears in world assets.
type RoomSpec struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Exits       map[string]string `json:"exits"` // direction -> room id
	Items       []ItemSpec        `json:"items,omitempty"`
	Monster     *MonsterSpec      `json:"monster,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
// Exit destinations are checked when the world is assembled.
func (r *RoomSpec) Validate() error {
	el := errors.NewErrorList()

	if r.Name == "" {
		el.Add(fmt.Errorf("room name is required"))
	}

	seen := map[string]bool{}
	for dir, to := range r.Exits {
		key := FoldName(strings.TrimSpace(dir))
		if key == "" {
			el.Add(fmt.Errorf("room %q: exit direction is required", r.Name))
			continue
		}
		if seen[key] {
			el.Add(fmt.Errorf("room %q: duplicate exit %q", r.Name, dir))
		}
		seen[key] = true
		if to == "" {
			el.Add(fmt.Errorf("room %q: exit %s: room id is required", r.Name, dir))
		}
	}

	for i := range r.Items {
		el.Add(r.Items[i].Validate())
	}
	if r.Monster != nil {
		el.Add(r.Monster.Validate())
	}

	return el.Err()
}

// Room is a node in the world graph. Exits hold room ids rather than rooms,
// so cycles need no special handling.
type Room struct {
	Id          string
	Name        string
	Description string
	Exits       map[string]string
	Items       *Inventory
	Monster     *Monster
}

// NewRoom creates a room instance from its spec, spawning its items and monster.
func NewRoom(id string, spec *RoomSpec) *Room {
	r := &Room{
		Id:          id,
		Name:        spec.Name,
		Description: spec.Description,
		Exits:       make(map[string]string, len(spec.Exits)),
		Items:       NewInventory(),
	}
	for dir, to := range spec.Exits {
		r.Exits[FoldName(strings.TrimSpace(dir))] = to
	}
	for _, is := range spec.Items {
		r.Items.Add(NewItem(is))
	}
	if spec.Monster != nil {
		r.Monster = NewMonster(*spec.Monster)
	}
	return r
}

// Exit returns the destination room id for a direction, ignoring case.
func (r *Room) Exit(direction string) (string, bool) {
	to, ok := r.Exits[FoldName(direction)]
	return to, ok
}

// Directions returns the room's exit directions sorted alphabetically.
func (r *Room) Directions() []string {
	dirs := make([]string, 0, len(r.Exits))
	for d := range r.Exits {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}

// LiveMonster returns the room's monster if it is still alive.
func (r *Room) LiveMonster() *Monster {
	if r.Monster.IsAlive() {
		return r.Monster
	}
	return nil
}

// ClearMonster removes the room's monster.
func (r *Room) ClearMonster() {
	r.Monster = nil
}

const roomTemplate = `{{ .Name }}: {{ .Description }}
{{- if .Items }}
Предметы: {{ join ", " .Items }}
{{- end }}
{{- with .Monster }}
В комнате монстр: {{ .Name }} (ур. {{ .Level }})
{{- end }}
Выходы: {{ if .Exits }}{{ join ", " .Exits }}{{ else }}нет{{ end }}`

// Describe renders the full description shown by look and after moving.
func (r *Room) Describe() string {
	var items []string
	for _, it := range r.Items.Items() {
		items = append(items, it.Name)
	}
	data := struct {
		Name        string
		Description string
		Items       []string
		Monster     *Monster
		Exits       []string
	}{
		Name:        r.Name,
		Description: r.Description,
		Items:       items,
		Monster:     r.LiveMonster(),
		Exits:       r.Directions(),
	}
	return display.Wrap(display.MustRender(roomTemplate, data))
}
