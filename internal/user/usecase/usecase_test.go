package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"todo-ai-chatbot/internal/model"
	"todo-ai-chatbot/internal/user"
	userSqlite "todo-ai-chatbot/internal/user/repository/sqlite"
	"todo-ai-chatbot/pkg/log"
	"todo-ai-chatbot/pkg/scope"
	pkgSqlite "todo-ai-chatbot/pkg/sqlite"
)

func newTestUseCase(t *testing.T) (*implUseCase, scope.Manager) {
	t.Helper()
	db, err := pkgSqlite.Open(context.Background(), pkgSqlite.Config{Path: pkgSqlite.MemoryPath})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	tokens, err := scope.New(scope.Config{Secret: "test-secret"})
	require.NoError(t, err)
	return New(log.NewNop(), userSqlite.New(db, log.NewNop()), tokens, bcrypt.MinCost), tokens
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	uc, tokens := newTestUseCase(t)

	out, err := uc.Register(ctx, user.RegisterInput{Email: " Ada@Example.com ", Password: "password123", Name: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", out.User.Email)
	assert.NotEqual(t, "password123", out.User.PasswordHash)
	assert.Equal(t, "bearer", out.Tokens.TokenType)

	p, err := tokens.Verify(out.Tokens.AccessToken, scope.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, p.UserID)

	tcs := map[string]struct {
		input user.RegisterInput
		want  error
	}{
		"duplicate email": {user.RegisterInput{Email: "ADA@example.com", Password: "password123"}, user.ErrEmailTaken},
		"short password":  {user.RegisterInput{Email: "b@example.com", Password: "short"}, user.ErrWeakPassword},
		"invalid email":   {user.RegisterInput{Email: "not-an-email", Password: "password123"}, user.ErrInvalidEmail},
		"display name":    {user.RegisterInput{Email: "Bob <b@example.com>", Password: "password123"}, user.ErrInvalidEmail},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Register(ctx, tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t)

	_, err := uc.Register(ctx, user.RegisterInput{Email: "ada@example.com", Password: "password123"})
	require.NoError(t, err)

	out, err := uc.Login(ctx, user.LoginInput{Email: "ADA@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Tokens.AccessToken)

	_, err = uc.Login(ctx, user.LoginInput{Email: "ada@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)

	_, err = uc.Login(ctx, user.LoginInput{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestRefreshAndMe(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t)

	reg, err := uc.Register(ctx, user.RegisterInput{Email: "ada@example.com", Password: "password123"})
	require.NoError(t, err)

	out, err := uc.Refresh(ctx, reg.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, out.User.ID)

	_, err = uc.Refresh(ctx, reg.Tokens.AccessToken)
	assert.ErrorIs(t, err, user.ErrInvalidToken)

	me, err := uc.Me(ctx, model.Scope{UserID: reg.User.ID})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", me.Email)

	_, err = uc.Me(ctx, model.Scope{UserID: "missing"})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
