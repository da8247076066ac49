package dnd

// Intent is the resolved meaning of a drop. The concrete types are
// NoOp, DeleteColumn, DeleteCard, ReorderColumns, ReorderCard and MoveCard.
type Intent interface {
	isIntent()
}

// Index sentinels
const (
	// Unchanged keeps a card at its current position
	Unchanged = -1
	// Append places a card after the last card of the target column
	Append = -1
)

// TagAssignment says what happens to a card's tag. The zero value keeps it.
type TagAssignment struct {
	set   bool
	tagID string
}

// KeepTag leaves the card's tag as it is
func KeepTag() TagAssignment {
	return TagAssignment{}
}

// SetTag assigns tagID. An empty tagID clears the tag.
func SetTag(tagID string) TagAssignment {
	return TagAssignment{set: true, tagID: tagID}
}

// ClearTag removes the card's tag
func ClearTag() TagAssignment {
	return SetTag("")
}

// Changes reports whether the assignment writes a tag at all
func (a TagAssignment) Changes() bool {
	return a.set
}

// TagID is the assigned tag, empty for a cleared tag or KeepTag
func (a TagAssignment) TagID() string {
	return a.tagID
}

// Apply returns the tag id a card holding current ends up with
func (a TagAssignment) Apply(current string) string {
	if !a.set {
		return current
	}
	return a.tagID
}

// NoOp means nothing changes
type NoOp struct{}

// DeleteColumn asks to delete a column. It must be confirmed before it
// is applied.
type DeleteColumn struct {
	ColumnID string
}

// DeleteCard deletes a card immediately
type DeleteCard struct {
	CardID string
}

// ReorderColumns moves the column at From to To
type ReorderColumns struct {
	From int
	To   int
}

// ReorderCard repositions and/or retags a card within its own column.
// Index is the destination position or Unchanged.
type ReorderCard struct {
	CardID   string
	ColumnID string
	Index    int
	Tag      TagAssignment
}

// MoveCard moves a card to another column. Index is the insertion
// position in the target column or Append.
type MoveCard struct {
	CardID       string
	FromColumnID string
	ToColumnID   string
	Index        int
	Tag          TagAssignment
}

func (NoOp) isIntent()           {}
func (DeleteColumn) isIntent()   {}
func (DeleteCard) isIntent()     {}
func (ReorderColumns) isIntent() {}
func (ReorderCard) isIntent()    {}
func (MoveCard) isIntent()       {}
