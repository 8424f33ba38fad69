// Package domain holds errors shared by every aggregate package.
package domain

import "errors"

// ErrNotFound is wrapped by repositories when no row matches, so the API
// layer can map it to 404 with errors.Is regardless of the aggregate.
var ErrNotFound = errors.New("record not found")

// ErrForbidden is returned when an authenticated account acts outside the
// restaurants it can access.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned on unique-constraint style violations
// (duplicate phone, duplicate slug, staff already assigned).
var ErrConflict = errors.New("conflict")
