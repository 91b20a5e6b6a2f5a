package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handytechnz-cloud/Blair-Portfolio/internal/domain"
)

type stubKeys struct {
	keys []domain.AccessKey
	err  error
}

func (s *stubKeys) List(context.Context) ([]domain.AccessKey, error) {
	return s.keys, s.err
}

func newTestRegistry(keys *stubKeys) *Registry {
	return NewRegistry("blair-studio-2026", keys, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSignInMasterCredential(t *testing.T) {
	r := newTestRegistry(&stubKeys{})

	token, sess, err := r.SignIn(context.Background(), "blair-studio-2026")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, domain.RoleAdmin, sess.Role)
	assert.Equal(t, "Owner", sess.Label)

	got, ok := r.Get(token)
	require.True(t, ok)
	assert.Equal(t, sess, got)
}

func TestSignInAccessKey(t *testing.T) {
	r := newTestRegistry(&stubKeys{keys: []domain.AccessKey{
		{ID: "1", Label: "Assistant", Role: domain.RoleEditor, Key: "X7K2QD"},
	}})

	_, sess, err := r.SignIn(context.Background(), "X7K2QD")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleEditor, sess.Role)
	assert.Equal(t, "Assistant", sess.Label)
}

func TestSignInSoftGuestPath(t *testing.T) {
	r := newTestRegistry(&stubKeys{})

	_, sess, err := r.SignIn(context.Background(), "wandering visitor")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleGuest, sess.Role)
	assert.Equal(t, "wandering visitor", sess.Label)
}

func TestSignInEmptyCredentialRejected(t *testing.T) {
	r := newTestRegistry(&stubKeys{})

	_, _, err := r.SignIn(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyCredential)
}

func TestSignInKeyLookupFailureFallsBackToGuest(t *testing.T) {
	r := newTestRegistry(&stubKeys{err: errors.New("disk gone")})

	_, sess, err := r.SignIn(context.Background(), "somebody")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleGuest, sess.Role)
}

func TestSignOut(t *testing.T) {
	r := newTestRegistry(&stubKeys{})

	token, _, err := r.SignIn(context.Background(), "blair-studio-2026")
	require.NoError(t, err)

	r.SignOut(token)
	_, ok := r.Get(token)
	assert.False(t, ok)

	// Repeat sign-out is a no-op.
	r.SignOut(token)
}
