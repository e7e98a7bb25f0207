package repository

import "errors"

// ErrNotFound is returned by all repositories for missing rows; usecases
// translate it into their own sentinels.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a uniqueness constraint would be violated
// (one application per internship, one user per email).
var ErrDuplicate = errors.New("duplicate")
