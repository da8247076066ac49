package cli

import (
	"errors"

	"github.com/thenoetrevino/kanbanned/internal/app"
	"github.com/thenoetrevino/kanbanned/internal/board"
	"github.com/thenoetrevino/kanbanned/internal/models"
	"github.com/thenoetrevino/kanbanned/internal/storage"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneral indicates a general error occurred.
	// Use for: storage errors, failed saves, unexpected failures.
	ExitGeneral = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing required flags or arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: board, column, card or tag not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: an unknown storage backend or unreadable configuration.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: empty titles or tag names, invalid priority or color values.
	ExitValidation = 5
)

// ExitError carries the process exit code for a failed command. The error
// has already been reported through the OutputFormatter.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ErrInvalidColor indicates a color that is not #RRGGBB
var ErrInvalidColor = errors.New("color must be in hex format #RRGGBB")

// ErrUsage indicates a command called with missing or conflicting arguments
var ErrUsage = errors.New("invalid usage")

// Classify maps err to an error code string and exit code
func Classify(err error) (code string, exit int) {
	var ee *ExitError
	switch {
	case errors.As(err, &ee):
		return "ERROR", ee.Code
	case errors.Is(err, models.ErrBoardNotFound):
		return "BOARD_NOT_FOUND", ExitNotFound
	case errors.Is(err, models.ErrColumnNotFound):
		return "COLUMN_NOT_FOUND", ExitNotFound
	case errors.Is(err, models.ErrCardNotFound):
		return "CARD_NOT_FOUND", ExitNotFound
	case errors.Is(err, models.ErrTagNotFound):
		return "TAG_NOT_FOUND", ExitNotFound
	case errors.Is(err, board.ErrNoBoardSelected):
		return "NO_BOARD", ExitNotFound
	case errors.Is(err, board.ErrEmptyTitle),
		errors.Is(err, board.ErrEmptyTagName),
		errors.Is(err, models.ErrInvalidPriority),
		errors.Is(err, ErrInvalidColor):
		return "VALIDATION_ERROR", ExitValidation
	case errors.Is(err, ErrUsage):
		return "USAGE_ERROR", ExitUsage
	case errors.Is(err, storage.ErrUnknownBackend):
		return "CONFIG_ERROR", ExitDataErr
	case errors.Is(err, app.ErrSaveFailed):
		return "SAVE_ERROR", ExitGeneral
	default:
		return "ERROR", ExitGeneral
	}
}

// ExitCode returns the process exit code for err, ExitSuccess for nil
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	_, code := Classify(err)
	return code
}
