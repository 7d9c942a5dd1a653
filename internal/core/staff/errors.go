package staff

import "errors"

var (
	ErrInvalidID         = errors.New("staff: invalid id")
	ErrInvalidCode       = errors.New("staff: invalid code")
	ErrInvalidName       = errors.New("staff: invalid name")
	ErrInvalidStatus     = errors.New("staff: invalid status")
	ErrInvalidRate       = errors.New("staff: invalid rate")
	ErrStaffNotFound     = errors.New("staff: not found")
	ErrCodeAlreadyExists = errors.New("staff: code already exists")
)
