package domain

import "errors"

// ErrNotFound indicates the requested entity does not exist or is not
// visible to the caller
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists indicates a uniqueness conflict, e.g. subscribing to the
// same feed URL twice
var ErrAlreadyExists = errors.New("already exists")
