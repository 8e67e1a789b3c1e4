package game

import "testing"

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(map[string]*RoomSpec{
		"square": {
			Name:        "Площадь",
			Description: "Каменная площадь с фонтаном.",
			Exits:       map[string]string{"north": "forest"},
		},
		"forest": {
			Name:        "Лес",
			Description: "Шелест листвы и птичий щебет.",
			Exits:       map[string]string{"south": "square", "East": "cave"},
			Items: []ItemSpec{
				{Name: "Малое зелье", Kind: ItemKindPotion, Value: 5},
			},
			Monster: &MonsterSpec{Name: "Волк", Level: 1, HP: 8},
		},
		"cave": {
			Name:        "Пещера",
			Description: "Темно и сыро.",
			Exits:       map[string]string{"west": "forest"},
		},
	})
	if err != nil {
		t.Fatalf("failed to create test world: %v", err)
	}
	return w
}

func newTestState(t *testing.T, start string) *State {
	t.Helper()
	s, err := NewState(newTestWorld(t), start, NewPlayer(PlayerSpec{Name: "Герой", HP: 20, Attack: 5}))
	if err != nil {
		t.Fatalf("failed to create test state: %v", err)
	}
	return s
}
