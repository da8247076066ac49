package components

import "github.com/thenoetrevino/kanbanned/internal/models"

// Row is one selectable line of a column: a zone header when Card is nil,
// otherwise a card inside Zone.
type Row struct {
	Zone models.Zone
	Card *models.Card
}

// IsZone reports whether the row is a zone header
func (r Row) IsZone() bool {
	return r.Card == nil
}

// ColumnRows lists a column's rows zone by zone: each zone header followed
// by its cards in column order.
func ColumnRows(b *models.Board, col *models.Column) []Row {
	zones := models.Zones(b, col)
	rows := make([]Row, 0, len(zones)+len(col.Cards))
	for _, zone := range zones {
		rows = append(rows, Row{Zone: zone})
		for i := range zone.Cards {
			rows = append(rows, Row{Zone: zone, Card: &zone.Cards[i]})
		}
	}
	return rows
}

// RowOfCard returns the index of the row showing cardID, or -1
func RowOfCard(rows []Row, cardID string) int {
	for i, r := range rows {
		if r.Card != nil && r.Card.ID == cardID {
			return i
		}
	}
	return -1
}
