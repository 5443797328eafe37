package user

import (
	"context"

	"todo-ai-chatbot/internal/model"
)

// UseCase handles registration, login and token refresh.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (AuthOutput, error)
	Refresh(ctx context.Context, refreshToken string) (AuthOutput, error)
	Me(ctx context.Context, sc model.Scope) (model.User, error)
}
