package viewer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// enterPage makes i the current page: the previous adapter is released
// before a new one is acquired, transient playback state is reset, and the
// adapter is reconciled against the play intent.
func (m *Model) enterPage(i int) tea.Cmd {
	m.releaseAdapter()
	m.page = i
	m.unavailable = false
	m.position, m.duration = 0, 0
	m.scrubbing = false
	m.pendingSeek = nil

	rec := m.items[i]
	if rec.IsVideo() && m.factory != nil {
		a := m.factory()
		if err := a.Prepare(rec.URI); err != nil {
			m.logger.Warn("video unavailable", "uri", rec.URI, "err", err)
			a.Release()
			m.unavailable = true
		} else {
			a.Seek(0)
			m.adapter = a
			m.duration = a.Duration()
		}
	}
	if m.background {
		m.wasPlaying = m.playing
	}
	return m.reconcile()
}

func (m *Model) releaseAdapter() {
	m.stopPolling()
	if m.adapter == nil {
		return
	}
	m.adapter.Pause()
	m.adapter.Release()
	m.adapter = nil
}

func (m *Model) shouldPlay() bool {
	return !m.background && m.playing && m.adapter != nil
}

// reconcile brings the adapter in line with shouldPlay, touching it only when
// its state differs, and starts or stops polling to match.
func (m *Model) reconcile() tea.Cmd {
	if m.adapter == nil {
		m.stopPolling()
		return nil
	}
	want := m.shouldPlay()
	switch playing := m.adapter.IsPlaying(); {
	case want && !playing:
		m.adapter.Play()
	case !want && playing:
		m.adapter.Pause()
	}
	if !want {
		m.stopPolling()
		return nil
	}
	if m.polling {
		return nil
	}
	m.polling = true
	return m.pollCmd()
}

func (m *Model) stopPolling() {
	if !m.polling {
		return
	}
	m.polling = false
	m.pollGen++
}

func (m *Model) pollCmd() tea.Cmd {
	gen := m.pollGen
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return PollTickMsg{Gen: gen}
	})
}

func (m *Model) handlePoll(msg PollTickMsg) tea.Cmd {
	if !m.polling || msg.Gen != m.pollGen || m.adapter == nil {
		return nil
	}
	if !m.scrubbing {
		m.position = m.adapter.Position()
	}
	m.duration = m.adapter.Duration()
	return m.pollCmd()
}

func (m *Model) togglePlay() tea.Cmd {
	if m.adapter == nil {
		return nil
	}
	m.playing = !m.playing
	return m.reconcile()
}

func (m *Model) enterBackground() {
	if m.background {
		return
	}
	m.background = true
	if m.adapter != nil {
		m.wasPlaying = m.adapter.IsPlaying()
		m.adapter.Pause()
	} else {
		m.wasPlaying = m.playing
	}
	m.stopPolling()
}

func (m *Model) enterForeground() tea.Cmd {
	if !m.background {
		return nil
	}
	m.background = false
	if m.adapter != nil && !m.wasPlaying {
		m.playing = false
	}
	return m.reconcile()
}

// scrub moves the displayed position only.
func (m *Model) scrub(fraction float64) {
	if m.adapter == nil || m.duration <= 0 {
		return
	}
	m.scrubbing = true
	m.position = m.at(fraction)
}

// release ends a scrub at pos: one seek is queued and consumed.
func (m *Model) release(pos time.Duration) {
	if m.adapter == nil {
		return
	}
	m.scrubbing = false
	m.position = pos
	m.pendingSeek = &pos
	m.consumeSeek()
}

func (m *Model) consumeSeek() {
	if m.pendingSeek == nil || m.adapter == nil {
		return
	}
	m.adapter.Seek(*m.pendingSeek)
	m.pendingSeek = nil
}

func (m *Model) seekBy(delta time.Duration) {
	if m.adapter == nil {
		return
	}
	pos := max(m.position+delta, 0)
	if m.duration > 0 {
		pos = min(pos, m.duration)
	}
	m.release(pos)
}

func (m *Model) seekFraction(fraction float64) {
	if m.adapter == nil || m.duration <= 0 {
		return
	}
	m.release(m.at(fraction))
}

func (m *Model) at(fraction float64) time.Duration {
	fraction = min(max(fraction, 0), 1)
	return time.Duration(fraction * float64(m.duration))
}
