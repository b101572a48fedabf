package timer

import (
	"slices"
	"time"
)

// Manual is a Scheduler driven by an explicit virtual clock.
// Callbacks only run from Advance, on the caller's goroutine.
type Manual struct {
	now   time.Time
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	owner *Manual
	seq   int
	due   time.Time
	f     func()
	done  bool
}

// NewManual creates a manual scheduler whose clock starts at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the virtual time.
func (m *Manual) Now() time.Time {
	return m.now
}

// AfterFunc schedules f to run once the clock has advanced by d.
func (m *Manual) AfterFunc(d time.Duration, f func()) Task {
	m.seq++
	t := &manualTask{owner: m, seq: m.seq, due: m.now.Add(d), f: f}
	m.tasks = append(m.tasks, t)
	return t
}

// Advance moves the clock forward by d, running every callback that becomes
// due in order of due time (ties in scheduling order). Callbacks scheduled by
// a running callback also fire if they fall inside the window.
// It returns the number of callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	target := m.now.Add(d)
	fired := 0
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.due
		next.done = true
		m.remove(next)
		next.f()
		fired++
	}
	m.now = target
	return fired
}

// Pending returns the number of callbacks waiting to run.
func (m *Manual) Pending() int {
	return len(m.tasks)
}

func (m *Manual) nextDue(limit time.Time) *manualTask {
	var next *manualTask
	for _, t := range m.tasks {
		if t.due.After(limit) {
			continue
		}
		if next == nil || t.due.Before(next.due) || (t.due.Equal(next.due) && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (m *Manual) remove(t *manualTask) {
	m.tasks = slices.DeleteFunc(m.tasks, func(o *manualTask) bool { return o == t })
}

func (t *manualTask) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.owner.remove(t)
	return true
}

func (t *manualTask) Due() time.Time {
	return t.due
}
