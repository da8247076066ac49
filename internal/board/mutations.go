// Package board applies edits and resolved drops to AppData. The
// functions here are pure: each returns a new AppData and leaves its input
// untouched. Service layers selection, persistence and notifications on top.
package board

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/kanbanned/internal/dnd"
	"github.com/thenoetrevino/kanbanned/internal/models"
	"github.com/thenoetrevino/kanbanned/internal/persistence"
)

// TagPatch holds the tag fields to change. Nil fields are left alone.
type TagPatch struct {
	Name  *string
	Color *string
}

// withBoard clones data and runs fn on the board with the given id
func withBoard(data models.AppData, boardID string, fn func(b *models.Board) error) (models.AppData, error) {
	next := data.Clone()
	b := next.Board(boardID)
	if b == nil {
		return data, fmt.Errorf("%w: %s", models.ErrBoardNotFound, boardID)
	}
	if err := fn(b); err != nil {
		return data, err
	}
	return next, nil
}

func column(b *models.Board, id string) (*models.Column, error) {
	col := b.Column(id)
	if col == nil {
		return nil, fmt.Errorf("%w: %s", models.ErrColumnNotFound, id)
	}
	return col, nil
}

// ============================================================================
// BOARDS
// ============================================================================

// RenameBoard replaces the board name
func RenameBoard(data models.AppData, boardID, name string) (models.AppData, error) {
	return withBoard(data, boardID, func(b *models.Board) error {
		b.Name = name
		return nil
	})
}

// SetBoardEmoji replaces the board emoji. An empty emoji removes it.
func SetBoardEmoji(data models.AppData, boardID, emoji string) (models.AppData, error) {
	return withBoard(data, boardID, func(b *models.Board) error {
		b.Emoji = emoji
		return nil
	})
}

// CreateBoard appends a board built from the default template with fresh
// ids for the board and every column and card in it
func CreateBoard(data models.AppData, ids persistence.IDGenerator) (models.AppData, models.Board) {
	b := models.DefaultBoard()
	b.ID = ids.NewID(models.BoardIDPrefix)
	b.Name = models.NewBoardName
	for i := range b.Columns {
		col := &b.Columns[i]
		col.ID = ids.NewID(models.ColumnIDPrefix)
		for j := range col.Cards {
			col.Cards[j].ID = ids.NewID(models.CardIDPrefix)
		}
	}

	next := data.Clone()
	next.Boards = append(next.Boards, b)
	return next, b.Clone()
}

// ============================================================================
// COLUMNS
// ============================================================================

// AddColumn appends an empty column named "New Column"
func AddColumn(data models.AppData, boardID string, ids persistence.IDGenerator) (models.AppData, models.Column, error) {
	col := models.Column{
		ID:    ids.NewID(models.ColumnIDPrefix),
		Name:  models.DefaultColumnName,
		Cards: []models.Card{},
	}
	next, err := withBoard(data, boardID, func(b *models.Board) error {
		b.Columns = append(b.Columns, col)
		return nil
	})
	return next, col, err
}

// RenameColumn replaces a column name
func RenameColumn(data models.AppData, boardID, columnID, name string) (models.AppData, error) {
	return withBoard(data, boardID, func(b *models.Board) error {
		col, err := column(b, columnID)
		if err != nil {
			return err
		}
		col.Name = name
		return nil
	})
}

// DeleteColumn removes a column and its cards. Tags are board-scoped and
// stay as they are.
func DeleteColumn(data models.AppData, boardID, columnID string) (models.AppData, error) {
	return withBoard(data, boardID, func(b *models.Board) error {
		i := b.ColumnIndex(columnID)
		if i < 0 {
			return fmt.Errorf("%w: %s", models.ErrColumnNotFound, columnID)
		}
		b.Columns = append(b.Columns[:i], b.Columns[i+1:]...)
		return nil
	})
}

// MoveColumn moves the column at from to position to
func MoveColumn(data models.AppData, boardID string, from, to int) (models.AppData, error) {
	return withBoard(data, boardID, func(b *models.Board) error {
		if from < 0 || from >= len(b.Columns) || to < 0 || to >= len(b.Columns) {
			return fmt.Errorf("%w: position out of range", models.ErrColumnNotFound)
		}
		b.Columns = dnd.ArrayMove(b.Columns, from, to)
		return nil
	})
}

// ============================================================================
// CARDS
// ============================================================================

// AddCard appends a card to a column. A leading "[name]" in raw tags the
// card, reusing a tag with that name (any case) or creating one. A title
// that is blank once the prefix is removed adds nothing.
func AddCard(data models.AppData, boardID, columnID, raw string, ids persistence.IDGenerator) (models.AppData, models.Card, error) {
	tagName, title := ParseInlineTag(raw)
	if title == "" {
		return data, models.Card{}, ErrEmptyTitle
	}

	var card models.Card
	next, err := withBoard(data, boardID, func(b *models.Board) error {
		col, err := column(b, columnID)
		if err != nil {
			return err
		}
		card = models.Card{
			ID:          ids.NewID(models.CardIDPrefix),
			Title:       title,
			Description: "",
			Priority:    models.PriorityLow,
		}
		if tagName != "" {
			tag := b.TagByName(tagName)
			if tag == nil {
				b.Tags = append(b.Tags, newTag(b, tagName, ids))
				tag = &b.Tags[len(b.Tags)-1]
			}
			card.TagID = tag.ID
		}
		col.Cards = append(col.Cards, card)
		return nil
	})
	if err != nil {
		return data, models.Card{}, err
	}
	return next, card, nil
}

// EditCard replaces the card with the same id. A blank title becomes
// "Untitled" and an invalid priority becomes medium.
func EditCard(data models.AppData, boardID string, card models.Card) (models.AppData, error) {
	if strings.TrimSpace(card.Title) == "" {
		card.Title = models.UntitledCard
	}
	if !card.Priority.Valid() {
		card.Priority = models.PriorityMedium
	}
	return withBoard(data, boardID, func(b *models.Board) error {
		existing := b.Card(card.ID)
		if existing == nil {
			return fmt.Errorf("%w: %s", models.ErrCardNotFound, card.ID)
		}
		*existing = card
		return nil
	})
}

// DeleteCard removes a card from whichever column holds it
func DeleteCard(data models.AppData, boardID, cardID string) (models.AppData, error) {
	return withBoard(data, boardID, func(b *models.Board) error {
		loc, ok := b.FindCard(cardID)
		if !ok {
			return fmt.Errorf("%w: %s", models.ErrCardNotFound, cardID)
		}
		col := &b.Columns[loc.ColumnIndex]
		col.Cards = append(col.Cards[:loc.CardIndex], col.Cards[loc.CardIndex+1:]...)
		return nil
	})
}

// ReorderCard repositions and/or retags a card within its column
func ReorderCard(data models.AppData, boardID string, in dnd.ReorderCard) (models.AppData, error) {
	return withBoard(data, boardID, func(b *models.Board) error {
		col, err := column(b, in.ColumnID)
		if err != nil {
			return err
		}
		from := col.CardIndex(in.CardID)
		if from < 0 {
			return fmt.Errorf("%w: %s", models.ErrCardNotFound, in.CardID)
		}
		col.Cards[from].TagID = in.Tag.Apply(col.Cards[from].TagID)
		if in.Index != dnd.Unchanged {
			col.Cards = dnd.ArrayMove(col.Cards, from, in.Index)
		}
		return nil
	})
}

// MoveCard takes a card out of one column and inserts it into another
func MoveCard(data models.AppData, boardID string, in dnd.MoveCard) (models.AppData, error) {
	return withBoard(data, boardID, func(b *models.Board) error {
		src, err := column(b, in.FromColumnID)
		if err != nil {
			return err
		}
		dst, err := column(b, in.ToColumnID)
		if err != nil {
			return err
		}
		i := src.CardIndex(in.CardID)
		if i < 0 {
			return fmt.Errorf("%w: %s", models.ErrCardNotFound, in.CardID)
		}
		card := src.Cards[i]
		card.TagID = in.Tag.Apply(card.TagID)
		src.Cards = append(src.Cards[:i], src.Cards[i+1:]...)
		dst.Cards = dnd.Insert(dst.Cards, in.Index, card)
		return nil
	})
}

// ============================================================================
// TAGS
// ============================================================================

func newTag(b *models.Board, name string, ids persistence.IDGenerator) models.Tag {
	return models.Tag{
		ID:    ids.NewID(models.TagIDPrefix),
		Name:  name,
		Color: models.PaletteColor(len(b.Tags)),
	}
}

// CreateTag adds a tag with the next palette color. If a tag with the same
// name (any case) exists it is returned instead, and created is false.
func CreateTag(data models.AppData, boardID, name string, ids persistence.IDGenerator) (next models.AppData, tag models.Tag, created bool, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return data, models.Tag{}, false, ErrEmptyTagName
	}

	b := data.Board(boardID)
	if b == nil {
		return data, models.Tag{}, false, fmt.Errorf("%w: %s", models.ErrBoardNotFound, boardID)
	}
	if existing := b.TagByName(name); existing != nil {
		return data, *existing, false, nil
	}

	next, err = withBoard(data, boardID, func(b *models.Board) error {
		tag = newTag(b, name, ids)
		b.Tags = append(b.Tags, tag)
		return nil
	})
	return next, tag, err == nil, err
}

// UpdateTag merges patch into the tag with the given id
func UpdateTag(data models.AppData, boardID, tagID string, patch TagPatch) (models.AppData, error) {
	return withBoard(data, boardID, func(b *models.Board) error {
		tag := b.Tag(tagID)
		if tag == nil {
			return fmt.Errorf("%w: %s", models.ErrTagNotFound, tagID)
		}
		if patch.Name != nil {
			name := strings.TrimSpace(*patch.Name)
			if name == "" {
				return ErrEmptyTagName
			}
			tag.Name = name
		}
		if patch.Color != nil {
			tag.Color = *patch.Color
		}
		return nil
	})
}

// DeleteTag removes a tag from the board. Cards keep the now dangling id
// and are shown as untagged.
func DeleteTag(data models.AppData, boardID, tagID string) (models.AppData, error) {
	return withBoard(data, boardID, func(b *models.Board) error {
		for i := range b.Tags {
			if b.Tags[i].ID == tagID {
				b.Tags = append(b.Tags[:i], b.Tags[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: %s", models.ErrTagNotFound, tagID)
	})
}

// ============================================================================
// INTENTS
// ============================================================================

// ApplyIntent applies a resolved drop. DeleteColumn is applied directly;
// callers that need confirmation hold it back themselves.
func ApplyIntent(data models.AppData, boardID string, intent dnd.Intent) (models.AppData, error) {
	switch in := intent.(type) {
	case dnd.NoOp:
		return data, nil
	case dnd.DeleteColumn:
		return DeleteColumn(data, boardID, in.ColumnID)
	case dnd.DeleteCard:
		return DeleteCard(data, boardID, in.CardID)
	case dnd.ReorderColumns:
		return MoveColumn(data, boardID, in.From, in.To)
	case dnd.ReorderCard:
		return ReorderCard(data, boardID, in)
	case dnd.MoveCard:
		return MoveCard(data, boardID, in)
	default:
		return data, fmt.Errorf("%w: %T", ErrUnknownIntent, intent)
	}
}
