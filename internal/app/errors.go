package app

import "errors"

// Sentinel errors for common application errors
var (
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrAlreadySubmitted = errors.New("feedback already submitted")
	ErrUnreachable      = errors.New("backend unreachable")
	ErrInvalidStatus    = errors.New("invalid candidate status")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNotLoggedIn      = errors.New("not logged in")
)
