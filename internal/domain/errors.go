package domain

import "errors"

// ErrNotFound is returned by repositories when a requested record does not
// exist. Handlers translate it to a 404.
var ErrNotFound = errors.New("not found")

// ErrNoStopsSelected is the precondition violation raised when schedule
// generation is requested for a trip with no selected stops.
var ErrNoStopsSelected = errors.New("no stops selected")
