package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// MonsterSpec defines a monster as it appears in world assets and save files.
type MonsterSpec struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	HP    int    `json:"hp"`
}

// Validate satisfies storage.ValidatingSpec
func (s *MonsterSpec) Validate() error {
	el := errors.NewErrorList()
	if s.Name == "" {
		el.Add(fmt.Errorf("monster name is required"))
	}
	if s.Level < 0 {
		el.Add(fmt.Errorf("monster %q: level must not be negative", s.Name))
	}
	if s.HP <= 0 {
		el.Add(fmt.Errorf("monster %q: hp must be positive", s.Name))
	}
	return el.Err()
}

// Monster is a live monster occupying a room.
// HP may drop below zero during combat; it is never shown that way.
type Monster struct {
	Name  string
	Level int
	HP    int
}

func NewMonster(spec MonsterSpec) *Monster {
	return &Monster{Name: spec.Name, Level: spec.Level, HP: spec.HP}
}

func (m *Monster) IsAlive() bool {
	return m != nil && m.HP > 0
}

// Spec returns the monster's current state as a spec.
func (m *Monster) Spec() MonsterSpec {
	return MonsterSpec{Name: m.Name, Level: m.Level, HP: m.HP}
}
