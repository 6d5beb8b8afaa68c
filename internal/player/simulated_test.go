package player

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func fixedLookup(d time.Duration) DurationLookup {
	return func(string) (time.Duration, error) { return d, nil }
}

func TestSimulated_AdvancesOnlyWhilePlaying(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	s := newSimulated(fixedLookup(10*time.Second), clock.now)
	require.NoError(t, s.Prepare("media://video/1"))

	clock.advance(3 * time.Second)
	assert.Zero(t, s.Position(), "paused after prepare")

	s.Play()
	clock.advance(4 * time.Second)
	assert.Equal(t, 4*time.Second, s.Position())

	s.Pause()
	clock.advance(5 * time.Second)
	assert.Equal(t, 4*time.Second, s.Position())
	assert.False(t, s.IsPlaying())
}

func TestSimulated_Loops(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := newSimulated(fixedLookup(10*time.Second), clock.now)
	require.NoError(t, s.Prepare("media://video/1"))

	s.Play()
	clock.advance(23 * time.Second)
	assert.Equal(t, 3*time.Second, s.Position())
}

func TestSimulated_SeekClamps(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := newSimulated(fixedLookup(10*time.Second), clock.now)

	s.Seek(5 * time.Second)
	assert.Zero(t, s.Position(), "seek before prepare is a no-op")

	require.NoError(t, s.Prepare("media://video/1"))
	s.Seek(-time.Second)
	assert.Zero(t, s.Position())
	s.Seek(7 * time.Second)
	assert.Equal(t, 7*time.Second, s.Position())

	s.Play()
	clock.advance(time.Second)
	assert.Equal(t, 8*time.Second, s.Position())
}

func TestSimulated_PrepareFailures(t *testing.T) {
	s := newSimulated(func(string) (time.Duration, error) {
		return 0, errors.New("gone")
	}, time.Now)
	assert.ErrorIs(t, s.Prepare("media://video/1"), ErrNotPrepared)
	assert.Equal(t, Unprepared, s.State())

	s = newSimulated(fixedLookup(0), time.Now)
	assert.ErrorIs(t, s.Prepare("media://video/1"), ErrNotPrepared)

	s.Play()
	assert.False(t, s.IsPlaying(), "play on unprepared adapter is a no-op")
}

func TestSimulated_Release(t *testing.T) {
	s := newSimulated(fixedLookup(time.Second), time.Now)
	require.NoError(t, s.Prepare("media://video/1"))
	s.Play()

	s.Release()
	assert.False(t, s.IsPlaying())
	assert.Zero(t, s.Position())
	assert.ErrorIs(t, s.Prepare("media://video/1"), ErrReleased)
}

func TestMockPool_TracksLiveAdapters(t *testing.T) {
	pool := NewMockPool(time.Minute)
	factory := pool.Factory()

	a := factory()
	b := factory()
	assert.Equal(t, 2, pool.Live())

	a.Release()
	a.Release()
	assert.Equal(t, 1, pool.Live())
	assert.Equal(t, 2, pool.MaxLive())

	b.Release()
	assert.Zero(t, pool.Live())
}

func TestMockPool_FailPrepare(t *testing.T) {
	pool := NewMockPool(time.Minute)
	pool.FailPrepare("media://video/2")
	factory := pool.Factory()

	ok := factory()
	require.NoError(t, ok.Prepare("media://video/1"))
	assert.Equal(t, Paused, ok.State())

	bad := factory()
	assert.ErrorIs(t, bad.Prepare("media://video/2"), ErrNotPrepared)
	assert.Equal(t, Unprepared, bad.State())
}
