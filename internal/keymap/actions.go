// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionBack Action = "back"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"

	// Selection/activation actions
	ActionSelect       Action = "select"        // enter - open folder or item
	ActionToggleSelect Action = "toggle_select" // x - start or extend multi-select
	ActionSelectAll    Action = "select_all"    // ctrl+a
	ActionDelete       Action = "delete"        // d/delete - delete selection or current item
	ActionCycleFilter  Action = "cycle_filter"  // f

	// Viewer actions
	ActionPlayPause     Action = "play_pause"
	ActionNextPage      Action = "next_page"
	ActionPrevPage      Action = "prev_page"
	ActionSeekForward   Action = "seek_forward"
	ActionSeekBack      Action = "seek_back"
	ActionToggleChrome  Action = "toggle_chrome"
	ActionToggleInfo    Action = "toggle_info"
	ActionToggleAwake   Action = "toggle_keep_awake"
	ActionScrubFraction Action = "scrub_fraction" // 0-9 jump to n*10%
	ActionCopyInfo      Action = "copy_info"      // y - copy the focused info value
)
