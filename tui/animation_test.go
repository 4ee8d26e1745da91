package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntrance_RunsOnceToRest(t *testing.T) {
	m := newTestModel(false)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, entranceOffset, m.entrance.offset())
	assert.Zero(t, m.entrance.opacity())

	next, cmd := m.Update(EntranceFrameMsg{At: start})
	m = next.(Model)
	assert.NotNil(t, cmd)
	assert.Equal(t, entranceOffset, m.entrance.offset())

	next, cmd = m.Update(EntranceFrameMsg{At: start.Add(entranceDuration / 2)})
	m = next.(Model)
	assert.NotNil(t, cmd)
	assert.InDelta(t, 0.875, m.entrance.opacity(), 1e-9)
	assert.Equal(t, 1, m.entrance.offset())

	next, cmd = m.Update(EntranceFrameMsg{At: start.Add(entranceDuration)})
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.True(t, m.entrance.done)
	assert.Zero(t, m.entrance.offset())
	assert.Equal(t, 1.0, m.entrance.opacity())

	// late frames neither restart nor reschedule
	next, cmd = m.Update(EntranceFrameMsg{At: start.Add(10 * time.Second)})
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.Equal(t, 1.0, m.entrance.opacity())
}

func TestEntrance_IgnoresInput(t *testing.T) {
	m := newTestModel(false)
	start := time.Now()
	m = send(m, EntranceFrameMsg{At: start})

	m = send(m, keyOf(tea.KeyCtrlT), keyOf(tea.KeyRight))
	m = send(m, EntranceFrameMsg{At: start.Add(entranceDuration)})
	assert.True(t, m.entrance.done)
}

func TestEntrance_EasingIsMonotonic(t *testing.T) {
	var e entrance
	start := time.Now()
	e = e.advance(start)
	prev := e.opacity()
	for ms := 10; ms <= 500; ms += 10 {
		e = e.advance(start.Add(time.Duration(ms) * time.Millisecond))
		require.GreaterOrEqual(t, e.opacity(), prev)
		prev = e.opacity()
	}
	assert.True(t, e.done)
}

func TestPress_PulsesAndSettles(t *testing.T) {
	m := newTestModel(false)
	before := m.Form()
	m = focusOn(t, m, controlInitiate)

	next, cmd := m.Update(keyOf(tea.KeyEnter))
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.initiatePulse.pressed())
	assert.False(t, m.walletPulse.active)

	seq := m.pulseSeq
	for i := 0; i < 1000 && m.initiatePulse.active; i++ {
		next, _ = m.Update(PulseFrameMsg{Target: controlInitiate, Seq: seq})
		m = next.(Model)
	}
	assert.False(t, m.initiatePulse.active)
	assert.False(t, m.initiatePulse.pressed())
	assert.Equal(t, before, m.Form())
}

func TestPress_StaleFramesIgnored(t *testing.T) {
	m := newTestModel(false)
	m = focusOn(t, m, controlConnectWallet)
	m = send(m, keyOf(tea.KeyEnter))
	p := m.walletPulse

	next, cmd := m.Update(PulseFrameMsg{Target: controlConnectWallet, Seq: p.seq + 7})
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.Equal(t, p, m.walletPulse)
}
