package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrCorrupt  = errors.New("stored data is corrupt")
)
