package models

// Clone returns a deep copy of the data set. Mutations always work on a
// clone so the previous value stays intact for whoever still holds it.
func (d AppData) Clone() AppData {
	out := AppData{Version: d.Version, Boards: make([]Board, len(d.Boards))}
	for i := range d.Boards {
		out.Boards[i] = d.Boards[i].Clone()
	}
	return out
}

// Clone returns a deep copy of the board
func (b Board) Clone() Board {
	out := b
	out.Tags = make([]Tag, len(b.Tags))
	copy(out.Tags, b.Tags)
	out.Columns = make([]Column, len(b.Columns))
	for i := range b.Columns {
		out.Columns[i] = b.Columns[i].Clone()
	}
	return out
}

// Clone returns a deep copy of the column
func (c Column) Clone() Column {
	out := c
	out.Cards = make([]Card, len(c.Cards))
	copy(out.Cards, c.Cards)
	return out
}
