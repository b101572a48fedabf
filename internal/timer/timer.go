// Package timer schedules deferred callbacks behind a cancelable handle.
//
// Two schedulers are provided. Manual advances a virtual clock on demand and
// runs due callbacks synchronously, which makes timed behavior deterministic
// in tests. Tea delivers each due callback as a tea.Msg so it runs inside the
// bubbletea Update loop, alongside every other input event.
package timer

import "time"

// Task is a handle on a scheduled callback.
type Task interface {
	// Stop cancels the callback. It returns false if the callback already
	// ran or was already stopped.
	Stop() bool
	// Due returns the time at which the callback is scheduled to run.
	Due() time.Time
}

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Task
}
