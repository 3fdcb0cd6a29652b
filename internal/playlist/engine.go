// Package playlist implements the playlist history engine: an ordered list
// of items edited through reversible commands with linear undo and redo.
//
// An Engine is not safe for concurrent use. Each call must complete before
// the next one starts.
package playlist

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput is returned by AddItem when the name is blank.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIDExhausted is returned by AddItem when the id generator keeps
	// producing ids that are already in use.
	ErrIDExhausted = errors.New("could not generate a unique item id")
)

// Engine owns the current items and the undo (past) and redo (future) stacks.
type Engine struct {
	items  *itemList
	past   []Command // top = last
	future []Command // top = last
	newID  IDFunc
	used   map[string]struct{} // every id issued or restored
}

// Option configures an Engine.
type Option func(*Engine)

// WithIDFunc sets the id generator used for new items.
func WithIDFunc(fn IDFunc) Option {
	return func(e *Engine) {
		if fn != nil {
			e.newID = fn
		}
	}
}

// NewEngine creates an empty engine with no history.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		items: newItemList(),
		newID: RandomIDs,
		used:  make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddItem appends a new item named name and records it for undo.
// The name is stored as given; it is rejected if it is blank.
func (e *Engine) AddItem(name string) (Item, error) {
	if strings.TrimSpace(name) == "" {
		return Item{}, fmt.Errorf("%w: item name is empty", ErrInvalidInput)
	}
	id, err := e.freshID()
	if err != nil {
		return Item{}, err
	}

	// The same item value is used for the live list and the history record,
	// so undo and redo always target this id.
	item := Item{ID: id, Name: name}
	e.record(AddCommand{Item: item})
	return item, nil
}

// RemoveItem removes the item with the given id.
// Returns false and records nothing if no such item exists.
func (e *Engine) RemoveItem(id string) bool {
	idx := e.items.indexOf(id)
	if idx < 0 {
		return false
	}
	e.record(RemoveCommand{Item: e.items.items[idx], Index: idx})
	return true
}

// ClearAll removes every item.
// Returns false and records nothing if the playlist is already empty.
func (e *Engine) ClearAll() bool {
	if e.items.len() == 0 {
		return false
	}
	e.record(ClearCommand{Removed: e.items.snapshot()})
	return true
}

// Undo reverts the most recent command.
// Returns false if there is nothing to undo.
func (e *Engine) Undo() bool {
	if len(e.past) == 0 {
		return false
	}
	cmd := e.past[len(e.past)-1]
	e.past = e.past[:len(e.past)-1]
	cmd.revert(e.items)
	e.future = append(e.future, cmd)
	return true
}

// Redo reapplies the most recently undone command.
// Returns false if there is nothing to redo.
func (e *Engine) Redo() bool {
	if len(e.future) == 0 {
		return false
	}
	cmd := e.future[len(e.future)-1]
	e.future = e.future[:len(e.future)-1]
	cmd.apply(e.items)
	e.past = append(e.past, cmd)
	return true
}

// RestoreItems replaces the current items and discards all history.
// Items without an id get a fresh one; later duplicates of an id are dropped,
// as are id-less items when no fresh id can be generated.
func (e *Engine) RestoreItems(items []Item) {
	restored := make([]Item, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if seen[it.ID] {
			continue
		}
		if it.ID == "" {
			id, err := e.freshID()
			if err != nil {
				continue
			}
			it.ID = id
		}
		seen[it.ID] = true
		e.used[it.ID] = struct{}{}
		restored = append(restored, it)
	}
	e.items.replace(restored)
	e.past = nil
	e.future = nil
}

// CurrentItems returns a copy of the items in playlist order.
func (e *Engine) CurrentItems() []Item {
	return e.items.snapshot()
}

// Len returns the number of items.
func (e *Engine) Len() int {
	return e.items.len()
}

// Item returns the item with the given id.
func (e *Engine) Item(id string) (Item, bool) {
	idx := e.items.indexOf(id)
	if idx < 0 {
		return Item{}, false
	}
	return e.items.items[idx], true
}

// IndexOf returns the position of the item with the given id, or -1.
func (e *Engine) IndexOf(id string) int {
	return e.items.indexOf(id)
}

// CanUndo reports whether Undo would do anything.
func (e *Engine) CanUndo() bool {
	return len(e.past) > 0
}

// CanRedo reports whether Redo would do anything.
func (e *Engine) CanRedo() bool {
	return len(e.future) > 0
}

// UndoDescription describes the command Undo would revert, or "".
func (e *Engine) UndoDescription() string {
	if len(e.past) == 0 {
		return ""
	}
	return e.past[len(e.past)-1].Description()
}

// RedoDescription describes the command Redo would reapply, or "".
func (e *Engine) RedoDescription() string {
	if len(e.future) == 0 {
		return ""
	}
	return e.future[len(e.future)-1].Description()
}

// record applies a new command, pushes it on past and truncates future.
func (e *Engine) record(cmd Command) {
	cmd.apply(e.items)
	e.past = append(e.past, cmd)
	e.future = nil
}

// freshID draws an id never seen by this engine, so a reverted command can
// not bring back an item that clashes with a newer one.
func (e *Engine) freshID() (string, error) {
	for range maxIDAttempts {
		id := e.newID()
		if _, taken := e.used[id]; id != "" && !taken {
			e.used[id] = struct{}{}
			return id, nil
		}
	}
	return "", ErrIDExhausted
}
