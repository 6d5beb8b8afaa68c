package keymap

// Binding maps keys to an action within a context.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "folders", "items", "viewer"
}

// All contains all key bindings for help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},

	// Folder list
	{ActionMoveUp, []string{"k", "up"}, "Move up", "folders"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "folders"},
	{ActionJumpStart, []string{"g", "home"}, "First folder", "folders"},
	{ActionJumpEnd, []string{"G", "end"}, "Last folder", "folders"},
	{ActionPageUp, []string{"pgup"}, "Page up", "folders"},
	{ActionPageDown, []string{"pgdown"}, "Page down", "folders"},
	{ActionSelect, []string{"enter", "l", "right"}, "Open folder", "folders"},
	{ActionCycleFilter, []string{"f"}, "Cycle type filter", "folders"},

	// Folder contents
	{ActionMoveUp, []string{"k", "up"}, "Move up", "items"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "items"},
	{ActionMoveLeft, []string{"h", "left"}, "Move left", "items"},
	{ActionMoveRight, []string{"l", "right"}, "Move right", "items"},
	{ActionJumpStart, []string{"g", "home"}, "First item", "items"},
	{ActionJumpEnd, []string{"G", "end"}, "Last item", "items"},
	{ActionPageUp, []string{"pgup"}, "Page up", "items"},
	{ActionPageDown, []string{"pgdown"}, "Page down", "items"},
	{ActionSelect, []string{"enter"}, "Open item / toggle when selecting", "items"},
	{ActionToggleSelect, []string{"x", " "}, "Select item", "items"},
	{ActionSelectAll, []string{"ctrl+a"}, "Select all / none", "items"},
	{ActionDelete, []string{"d", "delete"}, "Delete selected", "items"},
	{ActionBack, []string{"esc", "backspace"}, "Cancel selection / back", "items"},

	// Viewer
	{ActionPlayPause, []string{" ", "p"}, "Play/pause", "viewer"},
	{ActionNextPage, []string{"l", "right", "pgdown"}, "Next item", "viewer"},
	{ActionPrevPage, []string{"h", "left", "pgup"}, "Previous item", "viewer"},
	{ActionSeekForward, []string{"shift+right", "."}, "Seek +5s", "viewer"},
	{ActionSeekBack, []string{"shift+left", ","}, "Seek -5s", "viewer"},
	{ActionScrubFraction, []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}, "Jump to n0%", "viewer"},
	{ActionToggleChrome, []string{"enter", "c"}, "Toggle toolbar", "viewer"},
	{ActionToggleInfo, []string{"i"}, "Toggle info", "viewer"},
	{ActionMoveUp, []string{"k", "up"}, "Previous info line", "viewer"},
	{ActionMoveDown, []string{"j", "down"}, "Next info line", "viewer"},
	{ActionCopyInfo, []string{"y"}, "Copy info value", "viewer"},
	{ActionToggleAwake, []string{"w"}, "Toggle keep awake", "viewer"},
	{ActionDelete, []string{"d", "delete"}, "Delete item", "viewer"},
	{ActionBack, []string{"esc", "backspace"}, "Back", "viewer"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// ForScreen returns a resolver for a screen context plus the global bindings.
// Screen bindings win over global ones on the same key.
func ForScreen(context string) *Resolver {
	return NewResolver(append(ByContext("global"), ByContext(context)...))
}
