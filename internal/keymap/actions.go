// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"

	// Playlist editing
	ActionAdd    Action = "add"    // a - prompt for a name
	ActionDelete Action = "delete" // d/delete - remove item under cursor
	ActionClear  Action = "clear"  // c - remove everything
	ActionUndo   Action = "undo"   // ctrl+z
	ActionRedo   Action = "redo"   // ctrl+y

	// Name input
	ActionConfirm Action = "confirm" // enter
	ActionCancel  Action = "cancel"  // esc
)
