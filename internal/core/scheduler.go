package core

import (
	"sort"
	"time"
)

// Timer is a handle to a scheduled task. Stop is idempotent; after it
// returns the task never runs again.
type Timer interface {
	Stop()
	Active() bool
}

// Scheduler runs callbacks on the single game execution context.
// Every schedules a recurring task; After schedules a one-shot task.
// Implementations must never invoke a stopped task.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Timer
	After(delay time.Duration, fn func()) Timer
}

// ManualScheduler is a Scheduler driven by explicit calls to Advance.
// It is deterministic and is used for tests and replays.
type ManualScheduler struct {
	now    time.Duration
	nextID int
	tasks  map[int]*manualTask
}

type manualTask struct {
	id       int
	due      time.Duration
	interval time.Duration // 0 for one-shot
	fn       func()
	sched    *ManualScheduler
}

// NewManualScheduler creates a scheduler at time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{tasks: make(map[int]*manualTask)}
}

// Every schedules fn every interval, first run one interval from now.
func (s *ManualScheduler) Every(interval time.Duration, fn func()) Timer {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return s.add(interval, interval, fn)
}

// After schedules fn once, delay from now.
func (s *ManualScheduler) After(delay time.Duration, fn func()) Timer {
	return s.add(delay, 0, fn)
}

func (s *ManualScheduler) add(delay, interval time.Duration, fn func()) Timer {
	s.nextID++
	t := &manualTask{
		id:       s.nextID,
		due:      s.now + delay,
		interval: interval,
		fn:       fn,
		sched:    s,
	}
	s.tasks[t.id] = t
	return t
}

// Now returns the scheduler's virtual time.
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of active tasks.
func (s *ManualScheduler) Pending() int {
	return len(s.tasks)
}

// Advance moves virtual time forward by d, running every task that falls due
// in order of due time (ties in scheduling order).
func (s *ManualScheduler) Advance(d time.Duration) {
	end := s.now + d
	for {
		t := s.nextDue(end)
		if t == nil {
			break
		}
		s.now = t.due
		if t.interval > 0 {
			t.due += t.interval
		} else {
			delete(s.tasks, t.id)
		}
		t.fn()
	}
	s.now = end
}

// nextDue returns the earliest task due at or before end.
func (s *ManualScheduler) nextDue(end time.Duration) *manualTask {
	due := make([]*manualTask, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.due <= end {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].id < due[j].id
	})
	return due[0]
}

// Stop cancels the task.
func (t *manualTask) Stop() {
	delete(t.sched.tasks, t.id)
}

// Active reports whether the task can still run.
func (t *manualTask) Active() bool {
	_, ok := t.sched.tasks[t.id]
	return ok
}

// StopTimer stops t if it is non-nil.
func StopTimer(t Timer) {
	if t != nil {
		t.Stop()
	}
}
