// Package awake keeps the display from blanking while media is being viewed.
package awake

// Inhibitor holds or releases a screensaver inhibition.
type Inhibitor interface {
	// Inhibit asks the desktop not to blank the screen. Calling it while
	// already inhibited is a no-op.
	Inhibit(reason string) error
	// Release drops the inhibition, if any.
	Release() error
}

// Nop is an Inhibitor that does nothing.
type Nop struct{}

func (Nop) Inhibit(string) error { return nil }
func (Nop) Release() error       { return nil }
