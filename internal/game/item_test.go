package game

import (
	"bytes"
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestItemSpec_Validate(t *testing.T) {
	tests := map[string]struct {
		spec   ItemSpec
		expErr string
	}{
		"valid potion":    {spec: ItemSpec{Name: "Зелье", Kind: ItemKindPotion, Value: 5}},
		"valid key":       {spec: ItemSpec{Name: "Ключ", Kind: ItemKindKey}},
		"missing name":    {spec: ItemSpec{Kind: ItemKindKey}, expErr: "item name is required"},
		"missing kind":    {spec: ItemSpec{Name: "X"}, expErr: "kind is required"},
		"unknown kind":    {spec: ItemSpec{Name: "X", Kind: "Scroll"}, expErr: `kind "Scroll" is invalid`},
		"potion no value": {spec: ItemSpec{Name: "X", Kind: ItemKindPotion}, expErr: "value must be positive"},
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

func TestNewItem_UniqueInstances(t *testing.T) {
	spec := ItemSpec{Name: "Ключ", Kind: ItemKindKey}
	a, b := NewItem(spec), NewItem(spec)
	if a.InstanceId == "" || a.InstanceId == b.InstanceId {
		t.Errorf("expected distinct instance ids, got %q and %q", a.InstanceId, b.InstanceId)
	}
}

func TestItem_Effect(t *testing.T) {
	tests := map[string]struct {
		spec        ItemSpec
		expHP       int
		expAttack   int
		expConsumed bool
		expOut      string
		expErr      error
	}{
		"potion heals and is consumed": {
			spec:        ItemSpec{Name: "Малое зелье", Kind: ItemKindPotion, Value: 5},
			expHP:       25,
			expAttack:   5,
			expConsumed: true,
			expOut:      "Текущее HP: 25",
		},
		"weapon raises attack and is consumed": {
			spec:        ItemSpec{Name: "Ржавый меч", Kind: ItemKindWeapon, Value: 2},
			expHP:       20,
			expAttack:   7,
			expConsumed: true,
			expOut:      "Атака теперь: 7",
		},
		"key stays": {
			spec:      ItemSpec{Name: "Старый ключ", Kind: ItemKindKey},
			expHP:     20,
			expAttack: 5,
			expOut:    "Ключ звенит",
		},
		"unknown kind fails": {
			spec:      ItemSpec{Name: "Свиток", Kind: "Scroll"},
			expHP:     20,
			expAttack: 5,
			expErr:    ErrUnknownEffect,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := newTestState(t, "square")
			it := NewItem(tt.spec)
			s.Player.Inventory.Add(it)

			var out bytes.Buffer
			err := it.Effect().Apply(s, it, &out)
			if tt.expErr != nil {
				if !errors.Is(err, tt.expErr) {
					t.Errorf("error = %v, expected %v", err, tt.expErr)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.AssertEqual(t, "hp", s.Player.HP, tt.expHP)
			testutil.AssertEqual(t, "attack", s.Player.Attack, tt.expAttack)
			testutil.AssertEqual(t, "consumed", s.Player.Inventory.Len() == 0, tt.expConsumed)
			if !bytes.Contains(out.Bytes(), []byte(tt.expOut)) {
				t.Errorf("output %q does not contain %q", out.String(), tt.expOut)
			}
		})
	}
}
