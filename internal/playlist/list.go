package playlist

// Item is a single entry in the playlist.
type Item struct {
	ID   string
	Name string
}

// itemList holds an ordered collection of items.
type itemList struct {
	items []Item
}

func newItemList() *itemList {
	return &itemList{
		items: make([]Item, 0),
	}
}

// append adds items at the end of the list.
func (l *itemList) append(items ...Item) {
	l.items = append(l.items, items...)
}

// insert places item at index, clamped to [0, len].
func (l *itemList) insert(index int, item Item) {
	index = min(max(index, 0), len(l.items))
	l.items = append(l.items, Item{})
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = item
}

// removeID removes the item with the given id.
// Returns the removed item, its former index, and false if no item matched.
func (l *itemList) removeID(id string) (Item, int, bool) {
	idx := l.indexOf(id)
	if idx < 0 {
		return Item{}, -1, false
	}
	item := l.items[idx]
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	return item, idx, true
}

// replace swaps the whole content for a copy of items.
func (l *itemList) replace(items []Item) {
	l.items = make([]Item, len(items))
	copy(l.items, items)
}

func (l *itemList) clear() {
	l.items = l.items[:0]
}

func (l *itemList) indexOf(id string) int {
	for i := range l.items {
		if l.items[i].ID == id {
			return i
		}
	}
	return -1
}

// snapshot returns a copy of all items.
func (l *itemList) snapshot() []Item {
	result := make([]Item, len(l.items))
	copy(result, l.items)
	return result
}

func (l *itemList) len() int {
	return len(l.items)
}
