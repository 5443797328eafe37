package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"todo-ai-chatbot/internal/user"
	"todo-ai-chatbot/internal/user/repository"
	pkgLog "todo-ai-chatbot/pkg/log"
	"todo-ai-chatbot/pkg/scope"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	tokens     scope.Manager
	bcryptCost int
}

// New creates a new user UseCase instance. A zero bcryptCost uses bcrypt.DefaultCost.
func New(l pkgLog.Logger, repo repository.Repository, tokens scope.Manager, bcryptCost int) *implUseCase {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

var _ user.UseCase = (*implUseCase)(nil)
