// Package store owns the session's task list. It is the only place the list
// is changed, and every change produces a new slice so snapshots handed out
// earlier stay valid.
package store

import (
	"time"

	"tasktrack/internal/logs"
	"tasktrack/internal/notify"
	"tasktrack/internal/tasks/data"
)

const (
	MsgTaskAdded     = "Task Added Successfully!"
	MsgStatusUpdated = "Task status updated!"
)

// Patch holds the content fields to merge into a task. Nil fields are kept.
type Patch struct {
	Title       *string
	Description *string
}

// ContentPatch builds a Patch setting both title and description.
func ContentPatch(title, description string) Patch {
	return Patch{Title: &title, Description: &description}
}

// Store is the authoritative in-memory task list.
type Store struct {
	tasks    []data.Task
	notifier notify.Notifier
	now      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now for timestamping.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a store holding a copy of seed.
func New(seed []data.Task, notifier notify.Notifier, opts ...Option) *Store {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	tasks := make([]data.Task, len(seed))
	copy(tasks, seed)

	s := &Store{
		tasks:    tasks,
		notifier: notifier,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	logs.Logger.Infof("Store initialized with %d tasks", len(tasks))
	return s
}

// Tasks returns a snapshot of the current list.
func (s *Store) Tasks() []data.Task {
	out := make([]data.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Get returns the task with the given ID.
func (s *Store) Get(id int) (data.Task, bool) {
	if i := data.FindTask(s.tasks, id); i >= 0 {
		return s.tasks[i], true
	}
	return data.Task{}, false
}

// AddTask validates and appends a new task. On a validation failure the list
// is unchanged, the message is sent to the notifier and the error returned.
func (s *Store) AddTask(title, description string) ([]data.Task, error) {
	if err := validateNew(data.IsBlank(title), data.IsBlank(description)); err != nil {
		logs.Logger.Debugf("Add Task rejected: %v", err)
		s.notifier.Error(err.Error())
		return s.Tasks(), err
	}

	task := data.Task{
		ID:          s.nextID(),
		Title:       title,
		Description: description,
		Completed:   false,
		LastUpdated: s.now(),
	}

	next := make([]data.Task, len(s.tasks), len(s.tasks)+1)
	copy(next, s.tasks)
	s.tasks = append(next, task)

	logs.Logger.Infof("Add Task: %s", task)
	s.notifier.Success(MsgTaskAdded)
	return s.Tasks(), nil
}

// UpdateTask merges patch into the task matching id and refreshes its
// timestamp. Unknown ids leave the list unchanged. The patch is not validated.
func (s *Store) UpdateTask(id int, patch Patch) []data.Task {
	i := data.FindTask(s.tasks, id)
	if i < 0 {
		logs.Logger.Debugf("Update Task: id %d not found", id)
		return s.Tasks()
	}

	task := s.tasks[i]
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	task.LastUpdated = s.now()

	s.tasks, _ = data.ReplaceTask(s.tasks, task)
	logs.Logger.Infof("Update Task: %s", task)
	return s.Tasks()
}

// ToggleTask flips the completion flag of the task matching id. The
// timestamp is left as is.
func (s *Store) ToggleTask(id int) []data.Task {
	i := data.FindTask(s.tasks, id)
	if i < 0 {
		logs.Logger.Debugf("Toggle Task: id %d not found", id)
		return s.Tasks()
	}

	task := s.tasks[i]
	task.Completed = !task.Completed

	s.tasks, _ = data.ReplaceTask(s.tasks, task)
	logs.Logger.Infof("Toggle Task: %s", task)
	s.notifier.Success(MsgStatusUpdated)
	return s.Tasks()
}

// nextID is count+1, which is unique as long as nothing is ever removed. A
// seed with gaps can still make count+1 collide, so fall back past the max.
func (s *Store) nextID() int {
	id := len(s.tasks) + 1
	if data.FindTask(s.tasks, id) >= 0 {
		id = data.MaxID(s.tasks) + 1
	}
	return id
}
