package player

import (
	"fmt"
	"sync"
	"time"
)

// DurationLookup resolves the length of the media behind a uri.
type DurationLookup func(uri string) (time.Duration, error)

// Simulated is a clock-driven adapter: it decodes nothing and advances its
// position with wall time while playing, looping at the end.
type Simulated struct {
	mu       sync.Mutex
	lookup   DurationLookup
	now      func() time.Time
	state    State
	duration time.Duration
	base     time.Duration // position when anchor was taken
	anchor   time.Time
}

// NewSimulatedFactory returns a Factory of simulated adapters.
func NewSimulatedFactory(lookup DurationLookup) Factory {
	return func() Adapter {
		return newSimulated(lookup, time.Now)
	}
}

func newSimulated(lookup DurationLookup, now func() time.Time) *Simulated {
	return &Simulated{lookup: lookup, now: now}
}

func (s *Simulated) Prepare(uri string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Released {
		return ErrReleased
	}
	d, err := s.lookup(uri)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotPrepared, err)
	}
	if d <= 0 {
		return fmt.Errorf("%w: %s has no known duration", ErrNotPrepared, uri)
	}
	s.duration = d
	s.base = 0
	s.state = Paused
	return nil
}

func (s *Simulated) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.CanPlay() {
		return
	}
	s.anchor = s.now()
	s.state = Playing
}

func (s *Simulated) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.CanPause() {
		return
	}
	s.base = s.positionLocked()
	s.state = Paused
}

func (s *Simulated) Seek(pos time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.IsReady() {
		return
	}
	s.base = min(max(pos, 0), s.duration)
	s.anchor = s.now()
}

func (s *Simulated) Position() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.positionLocked()
}

func (s *Simulated) Duration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.duration
}

func (s *Simulated) IsPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == Playing
}

func (s *Simulated) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Simulated) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Released
}

func (s *Simulated) positionLocked() time.Duration {
	if !s.state.IsReady() || s.duration <= 0 {
		return 0
	}
	pos := s.base
	if s.state == Playing {
		pos += s.now().Sub(s.anchor)
	}
	// Repeat-all: playback wraps to the start.
	return pos % s.duration
}

// Verify Simulated implements Adapter at compile time.
var _ Adapter = (*Simulated)(nil)
