// Package dnd interprets the end of a drag gesture as an Intent. It knows
// nothing about how gestures are captured; the TUI and CLI both feed it
// DragEnd events.
package dnd

// DropType is the kind of structured payload a drop target carries
type DropType string

const (
	// DropZone is a tag zone inside a column
	DropZone DropType = "zone"
	// DropCard is a card; dropping on it picks an insertion index
	DropCard DropType = "card"
)

// DropData is the optional payload attached to a drop target.
// A nil ZoneTagID means the untagged zone.
type DropData struct {
	Type      DropType `json:"type"`
	ColumnID  string   `json:"columnId"`
	ZoneTagID *string  `json:"zoneTagId"`
}

// DragEnd describes where a dragged element was released.
// An empty OverID means it was released over nothing.
type DragEnd struct {
	ActiveID string
	OverID   string
	Data     *DropData
}

// ZonePayload builds the payload of a tag zone. An empty tagID is the
// untagged zone.
func ZonePayload(columnID, tagID string) *DropData {
	return &DropData{Type: DropZone, ColumnID: columnID, ZoneTagID: tagPtr(tagID)}
}

// CardPayload builds the payload of a card sitting in the given zone
func CardPayload(columnID, zoneTagID string) *DropData {
	return &DropData{Type: DropCard, ColumnID: columnID, ZoneTagID: tagPtr(zoneTagID)}
}

func tagPtr(tagID string) *string {
	if tagID == "" {
		return nil
	}
	return &tagID
}
