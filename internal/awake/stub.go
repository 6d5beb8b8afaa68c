//go:build !linux

package awake

// New returns a no-op inhibitor on non-Linux platforms.
func New() Inhibitor {
	return Nop{}
}
