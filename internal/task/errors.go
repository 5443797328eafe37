package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidTitle       = errors.New("title must be between 1 and 255 characters")
	ErrDescriptionTooLong = errors.New("description must be at most 1000 characters")
	ErrInvalidPriority    = errors.New("priority must be one of low, medium, high, urgent")
	ErrInvalidStatus      = errors.New("status must be one of all, pending, completed")
	ErrInvalidPagination  = errors.New("limit must be between 1 and 100 and offset must not be negative")
	ErrAmbiguousTitle     = errors.New("more than one task matches that title")
	ErrEmptyTitleQuery    = errors.New("task title to look up is empty")
)
