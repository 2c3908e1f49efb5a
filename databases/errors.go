package databases

import "errors"

// ErrNotFound is returned when no record matches the given id
var ErrNotFound = errors.New("record not found")

// ErrDuplicateUsername is returned when an insert hits the unique username index
var ErrDuplicateUsername = errors.New("username already exists")
