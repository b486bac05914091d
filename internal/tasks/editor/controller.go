// Package editor holds the per-item view/edit state machine. One Controller
// exists for each visible task.
package editor

import (
	"errors"

	"tasktrack/internal/logs"
	"tasktrack/internal/notify"
	"tasktrack/internal/tasks/data"
	"tasktrack/internal/tasks/store"
)

const MsgTaskUpdated = "Task updated successfully"

// ErrFieldsRequired is returned by Save when either edit buffer is blank.
var ErrFieldsRequired = errors.New("Please fill in all fields")

// State is the view state of one task item.
type State int

const (
	Collapsed State = iota
	ExpandedView
	ExpandedEdit
)

func (s State) String() string {
	switch s {
	case ExpandedView:
		return "expanded"
	case ExpandedEdit:
		return "editing"
	}
	return "collapsed"
}

// Expanded reports whether details are shown.
func (s State) Expanded() bool {
	return s != Collapsed
}

// Event is a user action on a task item.
type Event int

const (
	EventHeader Event = iota
	EventEdit
	EventSave
	EventToggle
)

func (e Event) String() string {
	switch e {
	case EventHeader:
		return "header"
	case EventEdit:
		return "edit"
	case EventSave:
		return "save"
	case EventToggle:
		return "toggle"
	}
	return "unknown"
}

// Updater is the subset of the store the controller writes through.
type Updater interface {
	UpdateTask(id int, patch store.Patch) []data.Task
	ToggleTask(id int) []data.Task
}

// Controller drives one task item.
type Controller struct {
	task     data.Task
	state    State
	title    string
	desc     string
	updater  Updater
	notifier notify.Notifier
}

// New creates a collapsed controller for task.
func New(task data.Task, updater Updater, notifier notify.Notifier) *Controller {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	c := &Controller{
		task:     task,
		updater:  updater,
		notifier: notifier,
	}
	c.resetBuffers()
	return c
}

func (c *Controller) ID() int { return c.task.ID }

// Task returns the stored snapshot, not the edit buffers.
func (c *Controller) Task() data.Task { return c.task }

func (c *Controller) State() State { return c.state }

func (c *Controller) TitleBuffer() string { return c.title }

func (c *Controller) DescriptionBuffer() string { return c.desc }

// Sync replaces the stored snapshot after the store changed. Edit buffers
// keep whatever the user has typed.
func (c *Controller) Sync(task data.Task) {
	c.task = task
}

// Dispatch routes an event to exactly one handler. Toggle and edit never
// reach the header handler even though they sit inside the header.
func (c *Controller) Dispatch(ev Event) error {
	switch ev {
	case EventHeader:
		c.HeaderClick()
	case EventEdit:
		c.EditClick()
	case EventSave:
		return c.Save()
	case EventToggle:
		c.ToggleClick()
	}
	return nil
}

// HeaderClick expands a collapsed item, or collapses an expanded one. Leaving
// edit mode this way discards the buffers.
func (c *Controller) HeaderClick() {
	switch c.state {
	case Collapsed:
		c.state = ExpandedView
	case ExpandedView:
		c.state = Collapsed
	case ExpandedEdit:
		c.resetBuffers()
		c.state = Collapsed
	}
	logs.Logger.Debugf("Task %d header: %s", c.task.ID, c.state)
}

// EditClick enters edit mode (expanding if needed), or cancels it.
func (c *Controller) EditClick() {
	switch c.state {
	case Collapsed, ExpandedView:
		c.resetBuffers()
		c.state = ExpandedEdit
	case ExpandedEdit:
		c.resetBuffers()
		c.state = ExpandedView
	}
	logs.Logger.Debugf("Task %d edit: %s", c.task.ID, c.state)
}

// SetTitle updates the title buffer while editing.
func (c *Controller) SetTitle(v string) {
	if c.state == ExpandedEdit {
		c.title = v
	}
}

// SetDescription updates the description buffer while editing.
func (c *Controller) SetDescription(v string) {
	if c.state == ExpandedEdit {
		c.desc = v
	}
}

// Save writes the buffers through the store. Blank buffers are rejected with
// a notification and the item stays in edit mode.
func (c *Controller) Save() error {
	if c.state != ExpandedEdit {
		return nil
	}
	if data.IsBlank(c.title) || data.IsBlank(c.desc) {
		c.notifier.Error(ErrFieldsRequired.Error())
		return ErrFieldsRequired
	}

	tasks := c.updater.UpdateTask(c.task.ID, store.ContentPatch(c.title, c.desc))
	if i := data.FindTask(tasks, c.task.ID); i >= 0 {
		c.task = tasks[i]
	}
	c.notifier.Success(MsgTaskUpdated)
	c.state = ExpandedView
	return nil
}

// ToggleClick flips completion through the store. The view state is not
// affected.
func (c *Controller) ToggleClick() {
	tasks := c.updater.ToggleTask(c.task.ID)
	if i := data.FindTask(tasks, c.task.ID); i >= 0 {
		c.task = tasks[i]
	}
}

func (c *Controller) resetBuffers() {
	c.title = c.task.Title
	c.desc = c.task.Description
}
