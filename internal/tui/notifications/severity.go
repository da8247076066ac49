package notifications

import "github.com/thenoetrevino/kanbanned/internal/notify"

// Severity represents the severity level of a notification
type Severity int

const (
	Success Severity = iota
	Info
	Warning
	Error
)

// FromLevel maps a notify level to its display severity
func FromLevel(level notify.Level) Severity {
	switch level {
	case notify.Success:
		return Success
	case notify.Warning:
		return Warning
	case notify.Error:
		return Error
	default:
		return Info
	}
}
