package state

import "github.com/thenoetrevino/kanbanned/internal/notify"

// maxNotifications is how many messages the footer keeps
const maxNotifications = 3

// NotificationState holds the messages shown in the footer. The newest
// message is last.
type NotificationState struct {
	notifications []notify.Notification
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add appends notifications, dropping the oldest beyond the footer limit.
func (s *NotificationState) Add(ns ...notify.Notification) {
	s.notifications = append(s.notifications, ns...)
	if extra := len(s.notifications) - maxNotifications; extra > 0 {
		s.notifications = s.notifications[extra:]
	}
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = nil
}

// All returns all current notifications.
func (s *NotificationState) All() []notify.Notification {
	return s.notifications
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}
