// Package notify carries transient user-facing messages from the task engine
// to whatever displays them. Delivery is fire-and-forget: no return value, no
// retry and no history beyond what a sink chooses to keep until drained.
package notify

import "tasktrack/internal/logs"

// Kind distinguishes success and error notifications.
type Kind int

const (
	KindSuccess Kind = iota
	KindError
)

func (k Kind) String() string {
	if k == KindError {
		return "error"
	}
	return "success"
}

// Notification is a single message to display.
type Notification struct {
	Kind    Kind
	Message string
}

// Notifier accepts display requests.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Queue buffers notifications until the UI drains them.
type Queue struct {
	pending []Notification
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Success(msg string) {
	q.pending = append(q.pending, Notification{Kind: KindSuccess, Message: msg})
}

func (q *Queue) Error(msg string) {
	q.pending = append(q.pending, Notification{Kind: KindError, Message: msg})
}

// Drain returns the buffered notifications in arrival order and empties the queue.
func (q *Queue) Drain() []Notification {
	out := q.pending
	q.pending = nil
	return out
}

// Len reports how many notifications are waiting.
func (q *Queue) Len() int {
	return len(q.pending)
}

// LogNotifier writes notifications to the debug log.
type LogNotifier struct{}

func (LogNotifier) Success(msg string) {
	logs.Logger.Infow("notification", "kind", KindSuccess.String(), "message", msg)
}

func (LogNotifier) Error(msg string) {
	logs.Logger.Warnw("notification", "kind", KindError.String(), "message", msg)
}

// Multi fans a notification out to several notifiers.
type Multi []Notifier

func (m Multi) Success(msg string) {
	for _, n := range m {
		n.Success(msg)
	}
}

func (m Multi) Error(msg string) {
	for _, n := range m {
		n.Error(msg)
	}
}

// Discard drops every notification.
type Discard struct{}

func (Discard) Success(string) {}
func (Discard) Error(string)   {}
