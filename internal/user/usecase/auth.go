package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"todo-ai-chatbot/internal/model"
	"todo-ai-chatbot/internal/user"
	"todo-ai-chatbot/internal/user/repository"
	"todo-ai-chatbot/pkg/scope"
)

// Register creates an account and signs the new user in.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.AuthOutput, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return user.AuthOutput{}, err
	}
	if n := len(input.Password); n < user.MinPasswordLength || n > user.MaxPasswordLength {
		return user.AuthOutput{}, user.ErrWeakPassword
	}
	name := strings.TrimSpace(input.Name)
	if utf8.RuneCountInString(name) > user.MaxNameLength {
		return user.AuthOutput{}, user.ErrNameTooLong
	}

	existing, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "%s: GetOneUser: %v", LogPrefixRegister, err)
		return user.AuthOutput{}, err
	}
	if existing.ID != "" {
		return user.AuthOutput{}, user.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.bcryptCost)
	if err != nil {
		uc.l.Errorf(ctx, "%s: bcrypt: %v", LogPrefixRegister, err)
		return user.AuthOutput{}, err
	}

	u, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	})
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return user.AuthOutput{}, user.ErrEmailTaken
	}
	if err != nil {
		uc.l.Errorf(ctx, "%s: CreateUser: %v", LogPrefixRegister, err)
		return user.AuthOutput{}, err
	}

	uc.l.Infof(ctx, "%s: registered user %s", LogPrefixRegister, u.ID)
	return uc.issue(ctx, u, LogPrefixRegister)
}

// Login checks credentials and returns a fresh token pair.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	u, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "%s: GetOneUser: %v", LogPrefixLogin, err)
		return user.AuthOutput{}, err
	}
	if u.ID == "" {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}
	if !u.IsActive {
		return user.AuthOutput{}, user.ErrInactiveUser
	}

	return uc.issue(ctx, u, LogPrefixLogin)
}

// Refresh exchanges a refresh token for a new token pair.
func (uc *implUseCase) Refresh(ctx context.Context, refreshToken string) (user.AuthOutput, error) {
	p, err := uc.tokens.Verify(refreshToken, scope.TokenTypeRefresh)
	if err != nil {
		uc.l.Debugf(ctx, "%s: Verify: %v", LogPrefixRefresh, err)
		return user.AuthOutput{}, user.ErrInvalidToken
	}

	u, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{ID: p.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "%s: GetOneUser: %v", LogPrefixRefresh, err)
		return user.AuthOutput{}, err
	}
	if u.ID == "" || !u.IsActive {
		return user.AuthOutput{}, user.ErrInvalidToken
	}

	return uc.issue(ctx, u, LogPrefixRefresh)
}

// Me returns the authenticated user.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (model.User, error) {
	u, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "%s: GetOneUser: %v", LogPrefixMe, err)
		return model.User{}, err
	}
	if u.ID == "" {
		return model.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (uc *implUseCase) issue(ctx context.Context, u model.User, prefix string) (user.AuthOutput, error) {
	pair, err := uc.tokens.GeneratePair(scope.Payload{UserID: u.ID, Email: u.Email})
	if err != nil {
		uc.l.Errorf(ctx, "%s: GeneratePair: %v", prefix, err)
		return user.AuthOutput{}, err
	}
	return user.AuthOutput{User: u, Tokens: pair}, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", user.ErrInvalidEmail
	}
	return email, nil
}
