package game

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/pixil98/go-errors"
)

// ItemKind is the category label used to group items in an inventory.
type ItemKind string

const (
	ItemKindPotion ItemKind = "Potion"
	ItemKindWeapon ItemKind = "Weapon"
	ItemKindKey    ItemKind = "Key"
)

// ItemSpec defines an item as it appears in world assets and save files.
type ItemSpec struct {
	Name  string   `json:"name"`
	Kind  ItemKind `json:"kind"`
	Value int      `json:"value,omitempty"` // hp restored by potions, attack granted by weapons
}

// Validate satisfies storage.ValidatingSpec
func (s *ItemSpec) Validate() error {
	el := errors.NewErrorList()

	if s.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}

	switch s.Kind {
	case ItemKindPotion, ItemKindWeapon:
		if s.Value <= 0 {
			el.Add(fmt.Errorf("item %q: value must be positive for %s", s.Name, s.Kind))
		}
	case ItemKindKey:
	case "":
		el.Add(fmt.Errorf("item %q: kind is required", s.Name))
	default:
		el.Add(fmt.Errorf("item %q: kind %q is invalid", s.Name, s.Kind))
	}

	return el.Err()
}

// Item is a single spawned instance of an ItemSpec. An instance is owned by
// exactly one room or player inventory at a time.
type Item struct {
	InstanceId string
	ItemSpec
}

// NewItem spawns a new item instance from a spec.
func NewItem(spec ItemSpec) *Item {
	return &Item{
		InstanceId: uuid.NewString(),
		ItemSpec:   spec,
	}
}

// Effect is the behavior an item applies when it is used.
type Effect interface {
	Apply(s *State, it *Item, w io.Writer) error
}

// EffectFunc adapts a function to the Effect interface.
type EffectFunc func(s *State, it *Item, w io.Writer) error

func (f EffectFunc) Apply(s *State, it *Item, w io.Writer) error {
	return f(s, it, w)
}

// Effect returns the capability applied by using this item.
func (i *Item) Effect() Effect {
	switch i.Kind {
	case ItemKindPotion:
		return EffectFunc(drinkPotion)
	case ItemKindWeapon:
		return EffectFunc(equipWeapon)
	case ItemKindKey:
		return EffectFunc(jingleKey)
	default:
		return EffectFunc(func(*State, *Item, io.Writer) error {
			return fmt.Errorf("%w: %s", ErrUnknownEffect, i.Kind)
		})
	}
}

func drinkPotion(s *State, it *Item, w io.Writer) error {
	s.Player.Heal(it.Value)
	s.Player.Inventory.Remove(it.InstanceId)
	_, err := fmt.Fprintf(w, "Выпито зелье: %s (+%d HP). Текущее HP: %d\n", it.Name, it.Value, s.Player.HP)
	return err
}

func equipWeapon(s *State, it *Item, w io.Writer) error {
	s.Player.Attack += it.Value
	s.Player.Inventory.Remove(it.InstanceId)
	_, err := fmt.Fprintf(w, "Оружие экипировано: %s. Атака теперь: %d\n", it.Name, s.Player.Attack)
	return err
}

func jingleKey(_ *State, _ *Item, w io.Writer) error {
	_, err := fmt.Fprintln(w, "Ключ звенит. Возможно, где-то есть дверь...")
	return err
}
