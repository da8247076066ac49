package board

import "errors"

// Mutation errors. Lookup failures use the models package sentinels.
var (
	// ErrEmptyTitle indicates a card title that is blank after trimming
	ErrEmptyTitle = errors.New("card title cannot be empty")

	// ErrEmptyTagName indicates a tag name that is blank after trimming
	ErrEmptyTagName = errors.New("tag name cannot be empty")

	// ErrNoBoardSelected indicates an operation ran with no selected board
	ErrNoBoardSelected = errors.New("no board selected")

	// ErrNoPendingDeletion indicates a confirm with nothing awaiting confirmation
	ErrNoPendingDeletion = errors.New("no column deletion is pending")

	// ErrUnknownIntent indicates an Intent type the mutation layer does not handle
	ErrUnknownIntent = errors.New("unknown intent")
)
