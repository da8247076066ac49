// Package notify carries short user-facing messages from the core to
// whatever is presenting them.
package notify

import "sync"

// Level represents the severity of a notification
type Level string

const (
	// Success confirms a completed action
	Success Level = "success"
	// Info is neutral feedback, such as a tag change
	Info Level = "info"
	// Warning reports something that was repaired without data loss
	Warning Level = "warning"
	// Error reports data loss or a failed save
	Error Level = "error"
)

// Notification is a single message with a severity level
type Notification struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Sink accepts notifications
type Sink interface {
	Notify(level Level, message string)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(level Level, message string)

// Notify implements Sink
func (f SinkFunc) Notify(level Level, message string) {
	f(level, message)
}

// Discard drops everything
var Discard Sink = SinkFunc(func(Level, string) {})

// Queue collects notifications until they are displayed. It is safe to add
// from the debounce timer goroutine while the UI reads.
type Queue struct {
	mu            sync.Mutex
	notifications []Notification
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{}
}

// Notify implements Sink
func (q *Queue) Notify(level Level, message string) {
	q.Add(level, message)
}

// Add appends a notification
func (q *Queue) Add(level Level, message string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.notifications = append(q.notifications, Notification{Level: level, Message: message})
}

// All returns a copy of the queued notifications
func (q *Queue) All() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Notification, len(q.notifications))
	copy(out, q.notifications)
	return out
}

// Drain returns the queued notifications and empties the queue
func (q *Queue) Drain() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.notifications
	q.notifications = nil
	return out
}

// Clear removes all notifications
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.notifications = nil
}

// ClearLevel removes all notifications of one level
func (q *Queue) ClearLevel(level Level) {
	q.mu.Lock()
	defer q.mu.Unlock()
	filtered := q.notifications[:0]
	for _, n := range q.notifications {
		if n.Level != level {
			filtered = append(filtered, n)
		}
	}
	q.notifications = filtered
}

// HasAny returns true if there are any notifications
func (q *Queue) HasAny() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.notifications) > 0
}
