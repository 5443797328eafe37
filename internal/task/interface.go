package task

import (
	"context"

	"todo-ai-chatbot/internal/model"
)

// UseCase defines the business logic interface for the task domain.
// Every method is scoped to sc.UserID; tasks of other users are reported as not found.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Task, error)
	Complete(ctx context.Context, sc model.Scope, input CompleteInput) (model.Task, error)
	Delete(ctx context.Context, sc model.Scope, id string) (model.Task, error)

	// FindByTitle resolves a spoken task name to a stored task.
	FindByTitle(ctx context.Context, sc model.Scope, title string) (model.Task, error)
}
