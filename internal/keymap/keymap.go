package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playlist", "input"
}

// Bindings contains all key bindings, used for dispatch and help generation.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Playlist
	{ActionMoveDown, []string{"j", "down"}, "Move down", "playlist"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "playlist"},
	{ActionJumpStart, []string{"g", "home"}, "First item", "playlist"},
	{ActionJumpEnd, []string{"G", "end"}, "Last item", "playlist"},
	{ActionAdd, []string{"a"}, "Add item", "playlist"},
	{ActionDelete, []string{"d", "delete"}, "Remove item", "playlist"},
	{ActionClear, []string{"c"}, "Clear playlist", "playlist"},
	{ActionUndo, []string{"ctrl+z", "u"}, "Undo", "playlist"},
	{ActionRedo, []string{"ctrl+y", "U"}, "Redo", "playlist"},

	// Name input
	{ActionConfirm, []string{"enter"}, "Add", "input"},
	{ActionCancel, []string{"esc"}, "Cancel", "input"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
