// Package navctl keeps the stack of screens the user navigated through.
package navctl

// ViewMode identifies the kind of screen on the stack.
type ViewMode string

const (
	// ViewFolders shows the folder list.
	ViewFolders ViewMode = "folders"
	// ViewContents shows the records of one folder or of the library.
	ViewContents ViewMode = "contents"
	// ViewViewer shows one record full-screen.
	ViewViewer ViewMode = "viewer"
)

// KeyContext returns the keymap context of the view mode.
func (v ViewMode) KeyContext() string {
	switch v {
	case ViewContents:
		return "items"
	case ViewViewer:
		return "viewer"
	default:
		return "folders"
	}
}
