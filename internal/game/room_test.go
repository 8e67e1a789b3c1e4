package game

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestRoomSpec_Validate(t *testing.T) {
	tests := map[string]struct {
		spec   RoomSpec
		expErr string
	}{
		"valid": {
			spec: RoomSpec{Name: "Лес", Exits: map[string]string{"south": "square"}},
		},
		"missing name": {
			spec:   RoomSpec{},
			expErr: "room name is required",
		},
		"empty exit target": {
			spec:   RoomSpec{Name: "Лес", Exits: map[string]string{"south": ""}},
			expErr: "exit south: room id is required",
		},
		"directions differing only by case": {
			spec:   RoomSpec{Name: "Лес", Exits: map[string]string{"south": "a", "SOUTH": "b"}},
			expErr: "duplicate exit",
		},
		"invalid monster": {
			spec:   RoomSpec{Name: "Лес", Monster: &MonsterSpec{Name: "Волк", Level: 1}},
			expErr: "hp must be positive",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestRoom_Describe(t *testing.T) {
	w := newTestWorld(t)

	forest := w.Room("forest").Describe()
	exp := strings.Join([]string{
		"Лес: Шелест листвы и птичий щебет.",
		"Предметы: Малое зелье",
		"В комнате монстр: Волк (ур. 1)",
		"Выходы: east, south",
	}, "\n")
	testutil.AssertEqual(t, "forest", forest, exp)

	cave := w.Room("cave").Describe()
	testutil.AssertEqual(t, "cave", cave, "Пещера: Темно и сыро.\nВыходы: west")
}

func TestRoom_Describe_HidesDeadMonster(t *testing.T) {
	w := newTestWorld(t)
	forest := w.Room("forest")
	forest.Monster.HP = -2

	if strings.Contains(forest.Describe(), "Волк") {
		t.Error("dead monster should not be described")
	}
	if forest.LiveMonster() != nil {
		t.Error("expected no live monster")
	}
}
