package floorplan

import (
	"errors"
	"fmt"
)

// Validation errors: the request itself is malformed.
var (
	ErrInvalidDimensions = errors.New("width and breadth must be between 1 and 10")
	ErrInvalidRatio      = errors.New("opening ratios must be between 0 and 1")
	ErrUnknownDirection  = errors.New("unknown direction")
	ErrRoomNotFound      = errors.New("room not found")
	ErrObjectNotFound    = errors.New("object not found")
)

// Structural errors: the request is well formed but the plan does not allow it.
var (
	ErrOverlap           = errors.New("room overlaps an existing area of the map")
	ErrNoNeighbour       = errors.New("wall has no neighbouring room")
	ErrHasNeighbour      = errors.New("wall has a neighbouring room")
	ErrInvalidTransition = errors.New("wall cannot change directly between door and window")
	ErrRoomLocked        = errors.New("main room cannot be resized or moved")
	ErrNotMovable        = errors.New("room has more than one neighbour")
	ErrDimensionMismatch = errors.New("room does not match the anchor's wall")
	ErrObjectOutside     = errors.New("object does not fit inside the room")
	ErrObjectOverlap     = errors.New("object overlaps another object")
)

// Internal errors: the graph reached a state it should never be in.
var (
	ErrInconsistentGraph = errors.New("inconsistent room graph")
)

// Kind groups errors by who is at fault.
type Kind int

const (
	KindValidation Kind = iota
	KindStructural
	KindInternal
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindStructural:
		return "structural"
	default:
		return "internal"
	}
}

// KindOf classifies err. Unknown errors are internal.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrInvalidDimensions),
		errors.Is(err, ErrInvalidRatio),
		errors.Is(err, ErrUnknownDirection),
		errors.Is(err, ErrRoomNotFound),
		errors.Is(err, ErrObjectNotFound):
		return KindValidation
	case errors.Is(err, ErrOverlap),
		errors.Is(err, ErrNoNeighbour),
		errors.Is(err, ErrHasNeighbour),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrRoomLocked),
		errors.Is(err, ErrNotMovable),
		errors.Is(err, ErrDimensionMismatch),
		errors.Is(err, ErrObjectOutside),
		errors.Is(err, ErrObjectOverlap):
		return KindStructural
	default:
		return KindInternal
	}
}

// EditError reports a failed plan edit. It unwraps to one of the sentinel
// errors above.
type EditError struct {
	Op     string
	RoomID int
	Err    error
}

func (e *EditError) Error() string {
	if e.RoomID == 0 {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s room %d: %v", e.Op, e.RoomID, e.Err)
}

func (e *EditError) Unwrap() error {
	return e.Err
}

func editError(op string, roomID int, err error) error {
	return &EditError{Op: op, RoomID: roomID, Err: err}
}
