package playlist

import "fmt"

// Command is a recorded, reversible playlist mutation.
// The set of commands is closed: AddCommand, RemoveCommand and ClearCommand.
type Command interface {
	// Description returns a short human-readable label, e.g. for an undo hint.
	Description() string

	apply(l *itemList)
	revert(l *itemList)
}

// AddCommand appends Item to the playlist.
type AddCommand struct {
	Item Item
}

// RemoveCommand removes Item, which sat at Index when the command was issued.
type RemoveCommand struct {
	Item  Item
	Index int
}

// ClearCommand empties the playlist. Removed holds the prior content in order.
type ClearCommand struct {
	Removed []Item
}

// Compile-time checks that every variant implements both directions.
var (
	_ Command = AddCommand{}
	_ Command = RemoveCommand{}
	_ Command = ClearCommand{}
)

// Description implements Command.
func (c AddCommand) Description() string {
	return fmt.Sprintf("add %q", c.Item.Name)
}

func (c AddCommand) apply(l *itemList) {
	l.append(c.Item)
}

func (c AddCommand) revert(l *itemList) {
	l.removeID(c.Item.ID)
}

// Description implements Command.
func (c RemoveCommand) Description() string {
	return fmt.Sprintf("remove %q", c.Item.Name)
}

func (c RemoveCommand) apply(l *itemList) {
	l.removeID(c.Item.ID)
}

// revert puts the item back at its original position.
func (c RemoveCommand) revert(l *itemList) {
	l.insert(c.Index, c.Item)
}

// Description implements Command.
func (c ClearCommand) Description() string {
	if len(c.Removed) == 1 {
		return "clear 1 item"
	}
	return fmt.Sprintf("clear %d items", len(c.Removed))
}

func (c ClearCommand) apply(l *itemList) {
	l.clear()
}

func (c ClearCommand) revert(l *itemList) {
	l.replace(c.Removed)
}
