package player

import (
	"sync"
	"time"
)

// Mock is a test double for Adapter.
type Mock struct {
	pool       *MockPool
	state      State
	uri        string
	position   time.Duration
	duration   time.Duration
	playCalls  int
	pauseCalls int
	seekCalls  []time.Duration
}

// NewMock creates a standalone mock adapter reporting duration once prepared.
func NewMock(duration time.Duration) *Mock {
	return &Mock{duration: duration}
}

func (m *Mock) Prepare(uri string) error {
	if m.state == Released {
		return ErrReleased
	}
	m.uri = uri
	if m.pool != nil {
		if err := m.pool.prepareError(uri); err != nil {
			return err
		}
	}
	m.state = Paused
	return nil
}

func (m *Mock) Play() {
	m.playCalls++
	if m.state.CanPlay() {
		m.state = Playing
	}
}

func (m *Mock) Pause() {
	m.pauseCalls++
	if m.state.CanPause() {
		m.state = Paused
	}
}

func (m *Mock) Seek(pos time.Duration) {
	m.seekCalls = append(m.seekCalls, pos)
	if !m.state.IsReady() {
		return
	}
	m.position = min(max(pos, 0), m.duration)
}

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) IsPlaying() bool { return m.state == Playing }

func (m *Mock) State() State { return m.state }

func (m *Mock) Release() {
	if m.state == Released {
		return
	}
	m.state = Released
	if m.pool != nil {
		m.pool.released()
	}
}

// Test helpers

func (m *Mock) URI() string { return m.uri }

func (m *Mock) PlayCalls() int { return m.playCalls }

func (m *Mock) PauseCalls() int { return m.pauseCalls }

func (m *Mock) SeekCalls() []time.Duration { return m.seekCalls }

// SetPosition simulates playback progress.
func (m *Mock) SetPosition(d time.Duration) { m.position = d }

// MockPool hands out Mock adapters and counts how many are live at once.
type MockPool struct {
	mu       sync.Mutex
	duration time.Duration
	failing  map[string]error
	created  []*Mock
	live     int
	maxLive  int
}

// NewMockPool creates a pool whose adapters report duration once prepared.
func NewMockPool(duration time.Duration) *MockPool {
	return &MockPool{duration: duration, failing: make(map[string]error)}
}

// Factory returns a Factory producing pool adapters.
func (p *MockPool) Factory() Factory {
	return func() Adapter {
		p.mu.Lock()
		defer p.mu.Unlock()
		m := &Mock{pool: p, duration: p.duration}
		p.created = append(p.created, m)
		p.live++
		p.maxLive = max(p.maxLive, p.live)
		return m
	}
}

// FailPrepare makes adapters fail to prepare uri.
func (p *MockPool) FailPrepare(uri string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failing[uri] = ErrNotPrepared
}

// Created returns every adapter handed out so far.
func (p *MockPool) Created() []*Mock {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*Mock(nil), p.created...)
}

// Last returns the most recently created adapter, or nil.
func (p *MockPool) Last() *Mock {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.created) == 0 {
		return nil
	}
	return p.created[len(p.created)-1]
}

// Live returns the number of adapters not yet released.
func (p *MockPool) Live() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.live
}

// MaxLive returns the largest number of simultaneously live adapters seen.
func (p *MockPool) MaxLive() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.maxLive
}

func (p *MockPool) released() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.live--
}

func (p *MockPool) prepareError(uri string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.failing[uri]
}

// Verify Mock implements Adapter at compile time.
var _ Adapter = (*Mock)(nil)
