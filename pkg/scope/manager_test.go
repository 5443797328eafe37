package scope

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *implManager {
	t.Helper()
	m, err := New(Config{Secret: "test-secret", Issuer: "todo-ai-chatbot"})
	require.NoError(t, err)
	return m.(*implManager)
}

func TestNew_RequiresSecret(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestGeneratePairAndVerify(t *testing.T) {
	m := newTestManager(t)

	pair, err := m.GeneratePair(Payload{UserID: "u1", Email: "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, BearerScheme, pair.TokenType)
	assert.Equal(t, int64(3600), pair.ExpiresIn)

	p, err := m.Verify(pair.AccessToken, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, Payload{UserID: "u1", Email: "a@b.c"}, p)

	p, err = m.Verify(pair.RefreshToken, TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, "u1", p.UserID)
}

func TestVerify_Failures(t *testing.T) {
	m := newTestManager(t)
	pair, err := m.GeneratePair(Payload{UserID: "u1"})
	require.NoError(t, err)

	t.Run("wrong type", func(t *testing.T) {
		_, err := m.Verify(pair.RefreshToken, TokenTypeAccess)
		assert.ErrorIs(t, err, ErrWrongTokenType)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Verify("not-a-token", TokenTypeAccess)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other secret", func(t *testing.T) {
		other, err := New(Config{Secret: "other", Issuer: "todo-ai-chatbot"})
		require.NoError(t, err)
		_, err = other.Verify(pair.AccessToken, TokenTypeAccess)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		defer func() { m.now = time.Now }()

		_, err := m.Verify(pair.AccessToken, TokenTypeAccess)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
