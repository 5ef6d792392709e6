package rectpart

import "errors"

var (
	// ErrMalformedPolygon is returned when the input is not a simple
	// rectilinear polygon in normalized form: fewer than 4 vertices, a
	// zero-length or non axis-aligned edge, two successive edges on the
	// same axis, or zero area.
	ErrMalformedPolygon = errors.New("rectpart: malformed polygon")

	// ErrDegenerateFace is returned when face extraction produces a
	// zero-area face that the backup links cannot repair. It indicates an
	// internal invariant breach, not a user error.
	ErrDegenerateFace = errors.New("rectpart: degenerate face")

	// ErrUnreachableMatching is returned when the alternating-path search
	// meets an unmatched chord that the maximum matching should have
	// augmented. It indicates an internal invariant breach.
	ErrUnreachableMatching = errors.New("rectpart: unreachable matching state")
)
