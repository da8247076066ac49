package models

import "errors"

// Lookup errors shared by the mutation layer and the CLI
var (
	// ErrBoardNotFound indicates no board with the requested id exists
	ErrBoardNotFound = errors.New("board not found")

	// ErrColumnNotFound indicates no column with the requested id exists on the board
	ErrColumnNotFound = errors.New("column not found")

	// ErrCardNotFound indicates no card with the requested id exists on the board
	ErrCardNotFound = errors.New("card not found")

	// ErrTagNotFound indicates no tag with the requested id exists on the board
	ErrTagNotFound = errors.New("tag not found")

	// ErrInvalidPriority indicates a priority outside low/medium/high
	ErrInvalidPriority = errors.New("invalid priority (must be: low, medium, high)")
)
