package chat

import "errors"

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrEmptyMessage         = errors.New("message must not be empty")
	ErrMessageTooLong       = errors.New("message must be at most 10000 characters")
	ErrInvalidPagination    = errors.New("limit must be between 1 and 100 and offset must not be negative")
)
