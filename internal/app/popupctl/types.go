package popupctl

// Type identifies which popup is currently active.
type Type int

const (
	None Type = iota
	Confirm
	Error
)

// Priority defines which popup takes precedence (highest priority first).
var Priority = []Type{
	Error,
	Confirm,
}

// RenderOrder defines the order popups are rendered (bottom to top).
var RenderOrder = []Type{
	Confirm,
	Error,
}
