package board

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/kanbanned/internal/models"
	"github.com/thenoetrevino/kanbanned/internal/notify"
	"github.com/thenoetrevino/kanbanned/internal/persistence"
	"github.com/thenoetrevino/kanbanned/internal/schema"
)

// User-facing messages
const (
	MsgLoadFailed   = "Could not load saved data. Starting with a fresh board."
	MsgStorageFull  = "Storage full. Your changes may not be saved. Try deleting some boards or cards."
	MsgSaveFailed   = "Failed to save changes. Please try again."
	MsgBoardCreated = "Board created"
)

// SaveFeedback returns the notification for a failed save. ok is false
// when the save succeeded and there is nothing to say.
func SaveFeedback(res persistence.SaveResult) (n notify.Notification, ok bool) {
	if res.Success {
		return notify.Notification{}, false
	}
	if res.Error == persistence.ErrorQuotaExceeded {
		return notify.Notification{Level: notify.Error, Message: MsgStorageFull}, true
	}
	return notify.Notification{Level: notify.Error, Message: MsgSaveFailed}, true
}

// LoadFeedback turns a load result into notifications. A reset to defaults
// and any discarded data are errors; repairs are warnings.
func LoadFeedback(res schema.LoadResult) []notify.Notification {
	var out []notify.Notification
	if res.UsedDefaults {
		out = append(out, notify.Notification{Level: notify.Error, Message: MsgLoadFailed})
	}
	if res.Discarded.Total() > 0 {
		out = append(out, notify.Notification{
			Level:   notify.Error,
			Message: fmt.Sprintf("Removed %s that could not be read.", describeCounts(res.Discarded)),
		})
	}
	if res.Recovered.Total() > 0 {
		out = append(out, notify.Notification{
			Level:   notify.Warning,
			Message: fmt.Sprintf("Fixed %s with missing data.", describeCounts(res.Recovered)),
		})
	}
	return out
}

func describeCounts(c schema.Counts) string {
	var parts []string
	if c.Boards > 0 {
		parts = append(parts, plural(c.Boards, "board"))
	}
	if c.Columns > 0 {
		parts = append(parts, plural(c.Columns, "column"))
	}
	if c.Cards > 0 {
		parts = append(parts, plural(c.Cards, "card"))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// ColumnDeletionPrompt returns the title and description of the
// confirmation shown before a column is deleted
func ColumnDeletionPrompt(col models.Column) (title, description string) {
	title = fmt.Sprintf("Delete %q?", col.Name)
	if len(col.Cards) == 0 {
		return title, "This will permanently delete this empty column."
	}
	return title, fmt.Sprintf("This will permanently delete this column and %s.", plural(len(col.Cards), "card"))
}
