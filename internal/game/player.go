package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// PlayerSpec defines the player's starting stats.
type PlayerSpec struct {
	Name      string     `json:"name"`
	HP        int        `json:"hp"`
	Attack    int        `json:"attack"`
	Inventory []ItemSpec `json:"inventory,omitempty"`
}

// Validate satisfies storage.ValidatingSpec
func (s *PlayerSpec) Validate() error {
	el := errors.NewErrorList()
	if s.Name == "" {
		el.Add(fmt.Errorf("player name is required"))
	}
	if s.HP <= 0 {
		el.Add(fmt.Errorf("player hp must be positive"))
	}
	if s.Attack < 0 {
		el.Add(fmt.Errorf("player attack must not be negative"))
	}
	for i := range s.Inventory {
		el.Add(s.Inventory[i].Validate())
	}
	return el.Err()
}

// Player is the single player character of a session.
type Player struct {
	Name      string
	HP        int
	Attack    int
	Inventory *Inventory
}

// NewPlayer creates a player from a spec, spawning its starting inventory.
func NewPlayer(spec PlayerSpec) *Player {
	p := &Player{
		Name:      spec.Name,
		HP:        spec.HP,
		Attack:    spec.Attack,
		Inventory: NewInventory(),
	}
	for _, is := range spec.Inventory {
		p.Inventory.Add(NewItem(is))
	}
	return p
}

func (p *Player) IsAlive() bool {
	return p.HP > 0
}

// Heal restores hp. Non-positive amounts are ignored.
func (p *Player) Heal(amount int) {
	if amount > 0 {
		p.HP += amount
	}
}

// Spec returns the player's current state as a spec.
func (p *Player) Spec() PlayerSpec {
	return PlayerSpec{
		Name:      p.Name,
		HP:        p.HP,
		Attack:    p.Attack,
		Inventory: p.Inventory.Specs(),
	}
}
