package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/kanbanned/internal/dnd"
	"github.com/thenoetrevino/kanbanned/internal/models"
	"github.com/thenoetrevino/kanbanned/internal/notify"
	"github.com/thenoetrevino/kanbanned/internal/persistence"
)

// Persister is the part of persistence.Engine the service drives
type Persister interface {
	Save(ctx context.Context, data models.AppData) persistence.SaveResult
	SaveDebounced(data models.AppData, onComplete func(persistence.SaveResult))
}

// Service holds the current AppData and the selected board. Every
// successful mutation replaces the data and schedules a save.
// It is not safe for concurrent use; callers drive it from one goroutine.
type Service struct {
	persister Persister
	ids       persistence.IDGenerator
	sink      notify.Sink
	logger    *slog.Logger

	data          models.AppData
	selectedID    string
	pendingDelete *models.Column
}

// Option configures a Service
type Option func(*Service)

// WithIDs replaces the id generator
func WithIDs(ids persistence.IDGenerator) Option {
	return func(s *Service) {
		s.ids = ids
	}
}

// WithSink sets where notifications go
func WithSink(sink notify.Sink) Option {
	return func(s *Service) {
		s.sink = sink
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a service over data with the first board selected
func NewService(data models.AppData, persister Persister, opts ...Option) *Service {
	s := &Service{
		persister: persister,
		ids:       persistence.RandomIDs,
		sink:      notify.Discard,
		logger:    slog.Default(),
		data:      data,
	}
	for _, opt := range opts {
		opt(s)
	}
	if len(data.Boards) > 0 {
		s.selectedID = data.Boards[0].ID
	}
	return s
}

// Data returns the current data. Callers must not modify it.
func (s *Service) Data() models.AppData {
	return s.data
}

// SelectedBoardID returns the id of the selected board
func (s *Service) SelectedBoardID() string {
	return s.selectedID
}

// SelectedBoard returns the selected board, or nil when there is none.
// The board must not be modified.
func (s *Service) SelectedBoard() *models.Board {
	return s.data.Board(s.selectedID)
}

// SelectBoard changes the selected board. Any pending column deletion is
// dropped since it belongs to the previous board.
func (s *Service) SelectBoard(id string) error {
	if s.data.Board(id) == nil {
		return fmt.Errorf("%w: %s", models.ErrBoardNotFound, id)
	}
	s.selectedID = id
	s.pendingDelete = nil
	return nil
}

// commit replaces the data and schedules a debounced save
func (s *Service) commit(next models.AppData) {
	s.data = next
	s.persister.SaveDebounced(next, s.reportSave)
}

func (s *Service) reportSave(res persistence.SaveResult) {
	if n, ok := SaveFeedback(res); ok {
		s.logger.Warn("save failed", "error", res.Error)
		s.sink.Notify(n.Level, n.Message)
	}
}

func (s *Service) board() (string, error) {
	if s.data.Board(s.selectedID) == nil {
		return "", ErrNoBoardSelected
	}
	return s.selectedID, nil
}

// mutate runs a pure mutation on the selected board and commits the result
func (s *Service) mutate(fn func(data models.AppData, boardID string) (models.AppData, error)) error {
	boardID, err := s.board()
	if err != nil {
		return err
	}
	next, err := fn(s.data, boardID)
	if err != nil {
		return err
	}
	s.commit(next)
	return nil
}

// ============================================================================
// BOARDS
// ============================================================================

// RenameBoard renames the selected board
func (s *Service) RenameBoard(name string) error {
	return s.mutate(func(d models.AppData, id string) (models.AppData, error) {
		return RenameBoard(d, id, name)
	})
}

// SetBoardEmoji sets the selected board's emoji
func (s *Service) SetBoardEmoji(emoji string) error {
	return s.mutate(func(d models.AppData, id string) (models.AppData, error) {
		return SetBoardEmoji(d, id, emoji)
	})
}

// CreateBoard adds a board from the template, selects it and saves
// immediately
func (s *Service) CreateBoard(ctx context.Context) (models.Board, persistence.SaveResult) {
	next, b := CreateBoard(s.data, s.ids)
	s.data = next
	s.selectedID = b.ID
	s.pendingDelete = nil

	res := s.persister.Save(ctx, next)
	s.reportSave(res)
	s.logger.Info("board created", "board_id", b.ID)
	return b, res
}

// ============================================================================
// COLUMNS
// ============================================================================

// AddColumn appends a "New Column" to the selected board
func (s *Service) AddColumn() (models.Column, error) {
	var col models.Column
	err := s.mutate(func(d models.AppData, id string) (models.AppData, error) {
		next, c, err := AddColumn(d, id, s.ids)
		col = c
		return next, err
	})
	return col, err
}

// RenameColumn renames a column on the selected board
func (s *Service) RenameColumn(columnID, name string) error {
	return s.mutate(func(d models.AppData, id string) (models.AppData, error) {
		return RenameColumn(d, id, columnID, name)
	})
}

// DeleteColumn deletes a column right away, without confirmation
func (s *Service) DeleteColumn(columnID string) error {
	return s.mutate(func(d models.AppData, id string) (models.AppData, error) {
		return DeleteColumn(d, id, columnID)
	})
}

// MoveColumn moves the column at from to position to
func (s *Service) MoveColumn(from, to int) error {
	return s.mutate(func(d models.AppData, id string) (models.AppData, error) {
		return MoveColumn(d, id, from, to)
	})
}

// ============================================================================
// CARDS
// ============================================================================

// AddCard adds a card, honouring the "[tag] title" shorthand. A blank
// title returns ErrEmptyTitle and changes nothing.
func (s *Service) AddCard(columnID, raw string) (models.Card, error) {
	var card models.Card
	err := s.mutate(func(d models.AppData, id string) (models.AppData, error) {
		next, c, err := AddCard(d, id, columnID, raw, s.ids)
		card = c
		return next, err
	})
	return card, err
}

// EditCard replaces a card on the selected board
func (s *Service) EditCard(card models.Card) error {
	return s.mutate(func(d models.AppData, id string) (models.AppData, error) {
		return EditCard(d, id, card)
	})
}

// DeleteCard removes a card from the selected board
func (s *Service) DeleteCard(cardID string) error {
	return s.mutate(func(d models.AppData, id string) (models.AppData, error) {
		return DeleteCard(d, id, cardID)
	})
}

// ============================================================================
// TAGS
// ============================================================================

// CreateTag returns the existing tag with that name or creates a new one.
// Nothing is saved when the tag already exists.
func (s *Service) CreateTag(name string) (models.Tag, error) {
	boardID, err := s.board()
	if err != nil {
		return models.Tag{}, err
	}
	next, tag, created, err := CreateTag(s.data, boardID, name, s.ids)
	if err != nil {
		return models.Tag{}, err
	}
	if created {
		s.commit(next)
	}
	return tag, nil
}

// UpdateTag merges patch into a tag
func (s *Service) UpdateTag(tagID string, patch TagPatch) error {
	return s.mutate(func(d models.AppData, id string) (models.AppData, error) {
		return UpdateTag(d, id, tagID, patch)
	})
}

// DeleteTag removes a tag. Cards that used it show as untagged.
func (s *Service) DeleteTag(tagID string) error {
	return s.mutate(func(d models.AppData, id string) (models.AppData, error) {
		return DeleteTag(d, id, tagID)
	})
}

// ============================================================================
// DROPS
// ============================================================================

// Apply applies a resolved drop to the selected board. DeleteColumn is
// held until ConfirmColumnDeletion. A card whose stored tag changes
// produces one notification.
func (s *Service) Apply(intent dnd.Intent) error {
	boardID, err := s.board()
	if err != nil {
		return err
	}
	b := s.data.Board(boardID)

	switch in := intent.(type) {
	case dnd.NoOp:
		return nil

	case dnd.DeleteColumn:
		col := b.Column(in.ColumnID)
		if col == nil {
			return fmt.Errorf("%w: %s", models.ErrColumnNotFound, in.ColumnID)
		}
		c := col.Clone()
		s.pendingDelete = &c
		return nil

	case dnd.DeleteCard, dnd.ReorderColumns:
		next, err := ApplyIntent(s.data, boardID, in)
		if err != nil {
			return err
		}
		s.commit(next)
		return nil

	case dnd.ReorderCard:
		return s.applyCardIntent(b, boardID, in.CardID, in.Tag, in)

	case dnd.MoveCard:
		return s.applyCardIntent(b, boardID, in.CardID, in.Tag, in)

	default:
		return fmt.Errorf("%w: %T", ErrUnknownIntent, intent)
	}
}

func (s *Service) applyCardIntent(b *models.Board, boardID, cardID string, tag dnd.TagAssignment, intent dnd.Intent) error {
	card := b.Card(cardID)
	if card == nil {
		return fmt.Errorf("%w: %s", models.ErrCardNotFound, cardID)
	}
	oldTagID := card.TagID
	newTagID := tag.Apply(oldTagID)
	msg := dnd.TagChangeMessage(b, oldTagID, newTagID)

	next, err := ApplyIntent(s.data, boardID, intent)
	if err != nil {
		return err
	}
	s.commit(next)
	if msg != "" {
		s.sink.Notify(notify.Info, msg)
	}
	return nil
}

// PendingColumnDeletion returns the column awaiting confirmation, or nil
func (s *Service) PendingColumnDeletion() *models.Column {
	return s.pendingDelete
}

// ConfirmColumnDeletion deletes the pending column
func (s *Service) ConfirmColumnDeletion() error {
	if s.pendingDelete == nil {
		return ErrNoPendingDeletion
	}
	id := s.pendingDelete.ID
	s.pendingDelete = nil
	err := s.DeleteColumn(id)
	if errors.Is(err, models.ErrColumnNotFound) {
		s.logger.Warn("pending column vanished before confirmation", "column_id", id)
	}
	return err
}

// CancelColumnDeletion drops the pending deletion
func (s *Service) CancelColumnDeletion() {
	s.pendingDelete = nil
}
