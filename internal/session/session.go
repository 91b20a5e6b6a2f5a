// Package session resolves visitor identity from credentials and tracks
// signed-in sessions by bearer token.
package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"

	"github.com/handytechnz-cloud/Blair-Portfolio/internal/domain"
)

// ErrEmptyCredential rejects sign-in with a blank credential; no session is
// created or changed.
var ErrEmptyCredential = errors.New("credential must not be empty")

// OwnerLabel is the display name of the master-credential session.
const OwnerLabel = "Owner"

// sessionTTL bounds how long an idle token stays valid. The original kept
// sessions for the lifetime of a browser tab; a server has to pick a horizon.
const sessionTTL = 12 * time.Hour

// keyResolver is the subset of store.AccessKeyStore the registry requires.
type keyResolver interface {
	List(ctx context.Context) ([]domain.AccessKey, error)
}

// Registry signs visitors in and out and resolves bearer tokens to sessions.
type Registry struct {
	masterKey string
	keys      keyResolver
	tokens    *cache.Cache
	logger    *slog.Logger
}

func NewRegistry(masterKey string, keys keyResolver, logger *slog.Logger) *Registry {
	return &Registry{
		masterKey: masterKey,
		keys:      keys,
		tokens:    cache.New(sessionTTL, 30*time.Minute),
		logger:    logger,
	}
}

// SignIn resolves the credential to a session and returns its bearer token.
// The master credential grants ADMIN as "Owner"; a minted access key code
// grants that key's role and label; any other non-empty credential signs in
// as GUEST using the credential itself as the display label.
func (r *Registry) SignIn(ctx context.Context, credential string) (string, domain.Session, error) {
	if credential == "" {
		return "", domain.Session{}, ErrEmptyCredential
	}

	sess := r.resolve(ctx, credential)

	token := uuid.NewString()
	r.tokens.Set(token, sess, cache.DefaultExpiration)
	r.logger.Info("signed in", "role", sess.Role, "label", sess.Label)
	return token, sess, nil
}

func (r *Registry) resolve(ctx context.Context, credential string) domain.Session {
	if credential == r.masterKey {
		return domain.Session{Role: domain.RoleAdmin, Label: OwnerLabel}
	}

	keys, err := r.keys.List(ctx)
	if err != nil {
		// Key lookup failing must not block the soft guest path.
		r.logger.Warn("access key lookup failed during sign-in", "error", err)
	}
	for _, k := range keys {
		if k.Key == credential {
			return domain.Session{Role: k.Role, Label: k.Label}
		}
	}

	return domain.Session{Role: domain.RoleGuest, Label: credential}
}

// Get resolves a bearer token to its session.
func (r *Registry) Get(token string) (domain.Session, bool) {
	v, ok := r.tokens.Get(token)
	if !ok {
		return domain.Session{}, false
	}
	return v.(domain.Session), true
}

// SignOut clears the token immediately and irreversibly. Unknown tokens are a
// no-op.
func (r *Registry) SignOut(token string) {
	r.tokens.Delete(token)
}
