package player

import (
	"errors"
	"time"
)

var (
	// ErrNotPrepared is returned when an adapter cannot prepare a uri.
	ErrNotPrepared = errors.New("media could not be prepared")
	// ErrReleased is returned by Prepare on a released adapter.
	ErrReleased = errors.New("adapter released")
)

// Adapter is the transport surface of one video decode session.
// Transport calls on an adapter that is not ready are no-ops.
type Adapter interface {
	Prepare(uri string) error
	Play()
	Pause()
	// Seek moves to an absolute position, clamped to [0, Duration].
	Seek(pos time.Duration)
	Position() time.Duration
	Duration() time.Duration
	IsPlaying() bool
	State() State
	// Release frees the decode resource. The adapter is unusable afterwards.
	Release()
}

// Factory creates a fresh, unprepared adapter.
type Factory func() Adapter
