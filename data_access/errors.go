// Package data_access wraps the MongoDB collections behind repository
// structs. The sentinel errors below let the service and controller layers
// distinguish failure categories without inspecting driver error strings.
package data_access

import "errors"

// ErrNotFound is returned when a lookup matches no document, including
// lookups made with a malformed object id.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when a user insert collides with the unique
// index on email.
var ErrDuplicateEmail = errors.New("a user with the given email already exists")

// ErrNotOwner is returned when a comment update or delete matches no record,
// either because the comment does not exist or because it belongs to a
// different author. The two cases are indistinguishable by design: the
// filter matches on both _id and email in a single atomic operation.
var ErrNotOwner = errors.New("comment does not exist or user is not the original poster")

// ErrInvalidFilter is returned when a faceted search is attempted without
// any cast members to filter by.
var ErrInvalidFilter = errors.New("must specify cast members to filter by")

// ErrResultTooLarge is returned when an aggregation exceeds the server's
// memory limit for a pipeline stage. Callers should ask for a more
// restrictive filter.
var ErrResultTooLarge = errors.New("results too large, be more restrictive in filter")
