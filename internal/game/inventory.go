package game

// Inventory holds item instances in insertion order.
type Inventory struct {
	items []*Item
}

// NewInventory creates an inventory holding the given items.
func NewInventory(items ...*Item) *Inventory {
	inv := &Inventory{}
	for _, it := range items {
		inv.Add(it)
	}
	return inv
}

// Add appends an item instance.
func (inv *Inventory) Add(it *Item) {
	inv.items = append(inv.items, it)
}

// Remove removes an item instance by ID.
// Returns the removed instance, or nil if not found.
func (inv *Inventory) Remove(instanceId string) *Item {
	for i, it := range inv.items {
		if it.InstanceId == instanceId {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return it
		}
	}
	return nil
}

// Find returns the first item, in stored order, whose name matches ignoring case.
func (inv *Inventory) Find(name string) *Item {
	key := FoldName(name)
	for _, it := range inv.items {
		if FoldName(it.Name) == key {
			return it
		}
	}
	return nil
}

// Items returns a copy of the held items.
func (inv *Inventory) Items() []*Item {
	out := make([]*Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Len returns the number of held items.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// ItemGroup is a set of items sharing a kind.
type ItemGroup struct {
	Kind  ItemKind
	Items []*Item
}

// Groups groups items by kind. Groups are ordered by the first appearance
// of their kind in the inventory.
func (inv *Inventory) Groups() []ItemGroup {
	var groups []ItemGroup
	index := map[ItemKind]int{}
	for _, it := range inv.items {
		i, ok := index[it.Kind]
		if !ok {
			i = len(groups)
			index[it.Kind] = i
			groups = append(groups, ItemGroup{Kind: it.Kind})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}

// Specs returns the specs of the held items in order.
func (inv *Inventory) Specs() []ItemSpec {
	specs := make([]ItemSpec, 0, len(inv.items))
	for _, it := range inv.items {
		specs = append(specs, it.ItemSpec)
	}
	return specs
}
