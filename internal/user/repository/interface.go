package repository

import (
	"context"
	"errors"

	"todo-ai-chatbot/internal/model"
)

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrDuplicateEmail = errors.New("duplicate email")
)

type CreateUserOptions struct {
	Email        string
	Name         string
	PasswordHash string
}

// GetOneUserOptions looks a user up by ID or by email; ID wins when both are set.
type GetOneUserOptions struct {
	ID    string
	Email string
}

// Repository is the data store of the user domain.
type Repository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
}
