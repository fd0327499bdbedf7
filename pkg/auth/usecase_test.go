package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeTokens struct {
	calls []string
	err   error
}

func (f *fakeTokens) Generate(_ context.Context, c Client) (Token, error) {
	f.calls = append(f.calls, c.ID)
	if f.err != nil {
		return Token{}, f.err
	}
	return Token{Value: "tok-" + c.ID, ExpiresAt: time.Unix(0, 0)}, nil
}

func newService(t *testing.T, enabled bool) (AuthUseCase, *fakeTokens) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	tokens := &fakeTokens{}
	store := NewStaticClientStore(Client{ID: "ops", PasswordHash: string(hash)}, Client{ID: ""})
	return NewAuthService(enabled, store, tokens), tokens
}

func TestLogin(t *testing.T) {
	svc, tokens := newService(t, true)
	ctx := context.Background()

	tok, err := svc.Login(ctx, "ops", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "tok-ops", tok.Value)
	assert.Equal(t, []string{"ops"}, tokens.calls)

	for _, tc := range []struct{ id, pw string }{
		{"ops", "wrong"},
		{"nobody", "correct horse"},
		{"", "correct horse"},
		{"ops", ""},
	} {
		_, err := svc.Login(ctx, tc.id, tc.pw)
		assert.ErrorIs(t, err, ErrInvalidCredentials, "%q/%q", tc.id, tc.pw)
	}
	assert.Len(t, tokens.calls, 1)
}

func TestLoginDisabled(t *testing.T) {
	svc, _ := newService(t, false)
	assert.False(t, svc.Enabled())
	_, err := svc.Login(context.Background(), "ops", "correct horse")
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestLoginTokenError(t *testing.T) {
	svc, tokens := newService(t, true)
	tokens.err = errors.New("boom")
	_, err := svc.Login(context.Background(), "ops", "correct horse")
	assert.EqualError(t, err, "boom")
}

func TestIssue(t *testing.T) {
	svc, _ := newService(t, false)
	tok, err := svc.Issue(context.Background(), "ops")
	require.NoError(t, err)
	assert.Equal(t, "tok-ops", tok.Value)

	_, err = svc.Issue(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHashPassword(t *testing.T) {
	h, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h), []byte("s3cret")))

	_, err = HashPassword("")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
