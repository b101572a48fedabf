package timer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FiredMsg is delivered by the Tea scheduler when a task becomes due.
// The receiving model passes it back to Tea.Fire.
type FiredMsg struct {
	ID uint64
}

// Tea is a Scheduler whose callbacks run in the bubbletea Update loop.
// AfterFunc only records the task; the tick command that will deliver it is
// collected with Cmd and must be returned from Update.
type Tea struct {
	now   func() time.Time
	next  uint64
	tasks map[uint64]*teaTask
	cmds  []tea.Cmd
}

type teaTask struct {
	owner *Tea
	id    uint64
	due   time.Time
	f     func()
}

// NewTea creates a scheduler backed by tea.Tick.
func NewTea() *Tea {
	return &Tea{
		now:   time.Now,
		tasks: make(map[uint64]*teaTask),
	}
}

// Now returns the wall clock time.
func (s *Tea) Now() time.Time {
	return s.now()
}

// AfterFunc schedules f to run in Update after d.
func (s *Tea) AfterFunc(d time.Duration, f func()) Task {
	s.next++
	id := s.next
	t := &teaTask{owner: s, id: id, due: s.now().Add(d), f: f}
	s.tasks[id] = t
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg {
		return FiredMsg{ID: id}
	}))
	return t
}

// Cmd returns the tick commands for tasks scheduled since the last call.
func (s *Tea) Cmd() tea.Cmd {
	if len(s.cmds) == 0 {
		return nil
	}
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}

// Fire runs the task identified by msg. Stopped or unknown tasks are ignored.
func (s *Tea) Fire(msg FiredMsg) bool {
	t, ok := s.tasks[msg.ID]
	if !ok {
		return false
	}
	delete(s.tasks, msg.ID)
	t.f()
	return true
}

// Pending returns the number of tasks that have not fired or been stopped.
func (s *Tea) Pending() int {
	return len(s.tasks)
}

func (t *teaTask) Stop() bool {
	if _, ok := t.owner.tasks[t.id]; !ok {
		return false
	}
	delete(t.owner.tasks, t.id)
	return true
}

func (t *teaTask) Due() time.Time {
	return t.due
}
