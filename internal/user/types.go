package user

import (
	"todo-ai-chatbot/internal/model"
	"todo-ai-chatbot/pkg/scope"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 72 // bcrypt input limit
	MaxNameLength     = 100
)

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthOutput is returned by every successful authentication.
type AuthOutput struct {
	User   model.User
	Tokens scope.TokenPair
}
