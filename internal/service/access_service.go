package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/handytechnz-cloud/Blair-Portfolio/internal/domain"
)

var ErrInvalidKey = errors.New("invalid access key request")

// accessKeyRepository is the subset of store.AccessKeyStore that AccessService requires.
type accessKeyRepository interface {
	List(ctx context.Context) ([]domain.AccessKey, error)
	Append(ctx context.Context, key domain.AccessKey) error
	Remove(ctx context.Context, id string) error
}

// AccessService mints and revokes the manually distributed access keys.
type AccessService struct {
	keys   accessKeyRepository
	logger *slog.Logger
}

func NewAccessService(keys accessKeyRepository, logger *slog.Logger) *AccessService {
	return &AccessService{keys: keys, logger: logger}
}

// Mint creates a new access key with a random short code. Owner only. Codes
// are not checked for collisions; they are manual-distribution tokens, not
// global identifiers.
func (s *AccessService) Mint(ctx context.Context, role domain.Role, label string, keyRole domain.Role) (domain.AccessKey, error) {
	if role != domain.RoleAdmin {
		return domain.AccessKey{}, ErrForbidden
	}
	if label == "" {
		return domain.AccessKey{}, fmt.Errorf("%w: label required", ErrInvalidKey)
	}
	if keyRole != domain.RoleAdmin && keyRole != domain.RoleEditor {
		return domain.AccessKey{}, fmt.Errorf("%w: role must be ADMIN or EDITOR", ErrInvalidKey)
	}

	code, err := generateCode()
	if err != nil {
		return domain.AccessKey{}, fmt.Errorf("failed to generate key code: %w", err)
	}

	key := domain.AccessKey{
		ID:        uuid.NewString(),
		Label:     label,
		Role:      keyRole,
		Key:       code,
		CreatedAt: time.Now(),
	}
	if err := s.keys.Append(ctx, key); err != nil {
		return domain.AccessKey{}, err
	}

	s.logger.Info("access key minted", "label", label, "role", keyRole)
	return key, nil
}

// List returns all minted keys. Owner only.
func (s *AccessService) List(ctx context.Context, role domain.Role) ([]domain.AccessKey, error) {
	if role != domain.RoleAdmin {
		return nil, ErrForbidden
	}
	return s.keys.List(ctx)
}

// Revoke removes a key by id. Owner only; absent ids are a no-op.
func (s *AccessService) Revoke(ctx context.Context, role domain.Role, id string) error {
	if role != domain.RoleAdmin {
		return ErrForbidden
	}
	if err := s.keys.Remove(ctx, id); err != nil {
		return err
	}

	s.logger.Info("access key revoked", "id", id)
	return nil
}

const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// generateCode returns a 6-character uppercase base36 code.
func generateCode() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}
