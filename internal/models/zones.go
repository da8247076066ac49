package models

// Drop target ids understood by the drop resolver
const (
	// DeleteZoneID is the id of the drop target that deletes what lands on it
	DeleteZoneID = "delete-zone"

	// ColumnDropPrefix prefixes the droppable area that covers a whole column
	ColumnDropPrefix = "column-"

	untaggedZoneSuffix = "untagged"
)

// ColumnDropID returns the droppable id covering the given column
func ColumnDropID(columnID string) string {
	return ColumnDropPrefix + columnID
}

// ZoneID returns the droppable id of a tag zone inside a column.
// An empty tagID names the untagged zone.
func ZoneID(columnID, tagID string) string {
	if tagID == "" {
		return "zone-" + columnID + "-" + untaggedZoneSuffix
	}
	return "zone-" + columnID + "-" + tagID
}

// Zone is one tag grouping of a column's cards. Tag is nil for the untagged zone.
type Zone struct {
	ID    string
	Tag   *Tag
	Cards []Card
}

// TagID returns the tag id the zone assigns, empty for the untagged zone
func (z Zone) TagID() string {
	if z.Tag == nil {
		return ""
	}
	return z.Tag.ID
}

// Zones partitions a column's cards by tag without reordering them. The
// untagged zone comes first and also holds cards whose tag no longer exists;
// one zone per board tag follows in tag order, empty zones included.
func Zones(b *Board, col *Column) []Zone {
	zones := make([]Zone, 0, len(b.Tags)+1)
	zones = append(zones, Zone{ID: ZoneID(col.ID, "")})
	index := make(map[string]int, len(b.Tags))
	for i := range b.Tags {
		tag := b.Tags[i]
		index[tag.ID] = len(zones)
		zones = append(zones, Zone{ID: ZoneID(col.ID, tag.ID), Tag: &tag})
	}

	for _, card := range col.Cards {
		zi := 0
		if i, ok := index[card.TagID]; ok && card.TagID != "" {
			zi = i
		}
		zones[zi].Cards = append(zones[zi].Cards, card)
	}
	return zones
}
