package ports

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")

	// ErrBadCitizenID guards the programming error of passing citizen ID 0
	// to a schedule accessor.
	ErrBadCitizenID = errors.New("citizen id out of range")
)
