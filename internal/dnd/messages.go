package dnd

import (
	"fmt"

	"github.com/thenoetrevino/kanbanned/internal/models"
)

// TagChangeMessage describes a card's tag going from oldTagID to newTagID.
// It returns "" when the stored id does not change.
func TagChangeMessage(board *models.Board, oldTagID, newTagID string) string {
	if oldTagID == newTagID {
		return ""
	}
	oldTag := board.ResolveTag(oldTagID)
	newTag := board.ResolveTag(newTagID)

	switch {
	case oldTag != nil && newTag != nil:
		return fmt.Sprintf("Tag changed from '%s' to '%s'", oldTag.Name, newTag.Name)
	case oldTag != nil:
		return fmt.Sprintf("Tag '%s' removed", oldTag.Name)
	case newTag != nil:
		return fmt.Sprintf("Tag '%s' applied", newTag.Name)
	case newTagID == "":
		return "Tag removed"
	default:
		return "Tag changed"
	}
}
