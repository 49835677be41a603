package interfaces

import "errors"

// Repository contract errors. Implementations translate their storage specific
// conditional failures into these.
var (
	ErrVersionConflict = errors.New("version conflict")
	ErrAlreadyExists   = errors.New("item already exists")
)
