// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, key mapping and timer scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// TimerMsg is sent when a scheduled task falls due.
type TimerMsg struct {
	ID int
}

// Scheduler implements core.Scheduler on top of tea.Tick. Tasks run inside
// Update, so the game stays on Bubble Tea's single event loop. Scheduling a
// task only queues a command; the model returns Drain() from Update.
type Scheduler struct {
	nextID  int
	tasks   map[int]*teaTask
	pending []tea.Cmd
}

type teaTask struct {
	id       int
	interval time.Duration // 0 for one-shot
	fn       func()
	sched    *Scheduler
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make(map[int]*teaTask)}
}

// Every schedules fn every interval.
func (s *Scheduler) Every(interval time.Duration, fn func()) core.Timer {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return s.add(interval, interval, fn)
}

// After schedules fn once after delay.
func (s *Scheduler) After(delay time.Duration, fn func()) core.Timer {
	return s.add(delay, 0, fn)
}

func (s *Scheduler) add(delay, interval time.Duration, fn func()) core.Timer {
	s.nextID++
	t := &teaTask{id: s.nextID, interval: interval, fn: fn, sched: s}
	s.tasks[t.id] = t
	s.queue(t.id, delay)
	return t
}

// queue adds a tick command for task id.
func (s *Scheduler) queue(id int, d time.Duration) {
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return TimerMsg{ID: id}
	}))
}

// Fire runs the task named by msg. Messages for stopped tasks are ignored.
// Recurring tasks are queued again before they run.
func (s *Scheduler) Fire(msg TimerMsg) bool {
	t, ok := s.tasks[msg.ID]
	if !ok {
		return false
	}
	if t.interval > 0 {
		s.queue(t.id, t.interval)
	} else {
		delete(s.tasks, t.id)
	}
	t.fn()
	return true
}

// Active returns the number of live tasks.
func (s *Scheduler) Active() int {
	return len(s.tasks)
}

// Drain returns the queued tick commands and clears the queue.
func (s *Scheduler) Drain() tea.Cmd {
	cmds := s.pending
	s.pending = nil
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

// Stop cancels the task. A tick already in flight is dropped by Fire.
func (t *teaTask) Stop() {
	delete(t.sched.tasks, t.id)
}

// Active reports whether the task can still run.
func (t *teaTask) Active() bool {
	_, ok := t.sched.tasks[t.id]
	return ok
}
