package maze

import "errors"

var (
	// ErrInvalidDimension is returned when a grid would have fewer than one
	// column or row, or more cells than an int can count.
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrInvalidCell is returned when a cell is out of bounds, or when a
	// search endpoint lies on a wall.
	ErrInvalidCell = errors.New("invalid cell")
	// ErrInvalidGrid is returned by ParseGrid for unknown cell runes.
	ErrInvalidGrid = errors.New("invalid grid text")
	// ErrGenerationInProgress is returned by Begin while the carve stack is
	// not yet empty.
	ErrGenerationInProgress = errors.New("generation in progress")
	// ErrAlreadyGenerated is returned by Begin once a generation has run to
	// completion. A second carve over a finished maze would add cycles.
	ErrAlreadyGenerated = errors.New("maze already generated")
)
