package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestManual_AdvanceRunsDueTasksInOrder(t *testing.T) {
	m := NewManual(epoch)
	var order []string

	m.AfterFunc(30*time.Millisecond, func() { order = append(order, "b") })
	m.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	m.AfterFunc(100*time.Millisecond, func() { order = append(order, "c") })

	fired := m.Advance(50 * time.Millisecond)

	assert.Equal(t, 2, fired)
	assert.Equal(t, []string{"a", "b"}, order)
	assert.Equal(t, 1, m.Pending())
	assert.Equal(t, epoch.Add(50*time.Millisecond), m.Now())
}

func TestManual_CallbackSeesItsDueTime(t *testing.T) {
	m := NewManual(epoch)
	var seen time.Time
	m.AfterFunc(20*time.Millisecond, func() { seen = m.Now() })

	m.Advance(time.Second)

	assert.Equal(t, epoch.Add(20*time.Millisecond), seen)
}

func TestManual_NestedScheduleInsideWindow(t *testing.T) {
	m := NewManual(epoch)
	count := 0
	m.AfterFunc(10*time.Millisecond, func() {
		count++
		m.AfterFunc(10*time.Millisecond, func() { count++ })
	})

	m.Advance(25 * time.Millisecond)

	assert.Equal(t, 2, count)
	assert.Zero(t, m.Pending())
}

func TestManual_Stop(t *testing.T) {
	m := NewManual(epoch)
	ran := false
	task := m.AfterFunc(10*time.Millisecond, func() { ran = true })

	assert.Equal(t, epoch.Add(10*time.Millisecond), task.Due())
	assert.True(t, task.Stop())
	assert.False(t, task.Stop(), "second stop is a no-op")

	m.Advance(time.Second)
	assert.False(t, ran)
}

func TestManual_StopAfterFire(t *testing.T) {
	m := NewManual(epoch)
	task := m.AfterFunc(time.Millisecond, func() {})
	m.Advance(time.Millisecond)

	assert.False(t, task.Stop())
}

func TestTea_FireRunsOnce(t *testing.T) {
	s := NewTea()
	s.now = func() time.Time { return epoch }
	count := 0

	task := s.AfterFunc(450*time.Millisecond, func() { count++ })
	require.NotNil(t, s.Cmd(), "scheduling must yield a tick command")
	assert.Nil(t, s.Cmd(), "commands are drained by Cmd")
	assert.Equal(t, epoch.Add(450*time.Millisecond), task.Due())

	assert.True(t, s.Fire(FiredMsg{ID: 1}))
	assert.False(t, s.Fire(FiredMsg{ID: 1}))
	assert.Equal(t, 1, count)
	assert.Zero(t, s.Pending())
}

func TestTea_StoppedTaskIgnored(t *testing.T) {
	s := NewTea()
	ran := false
	task := s.AfterFunc(time.Millisecond, func() { ran = true })

	assert.True(t, task.Stop())
	assert.False(t, s.Fire(FiredMsg{ID: 1}))
	assert.False(t, ran)
}
