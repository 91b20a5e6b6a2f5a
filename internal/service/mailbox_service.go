package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/handytechnz-cloud/Blair-Portfolio/internal/domain"
)

// inquiryRepository is the subset of store.InquiryStore that MailboxService requires.
type inquiryRepository interface {
	List(ctx context.Context) ([]domain.Inquiry, error)
	Append(ctx context.Context, inquiry domain.Inquiry) error
	Remove(ctx context.Context, id string) error
}

// MailboxService manages the contact inquiries surfaced to the admin panel.
type MailboxService struct {
	inquiries inquiryRepository
	logger    *slog.Logger
	now       func() time.Time
}

func NewMailboxService(inquiries inquiryRepository, logger *slog.Logger) *MailboxService {
	return &MailboxService{inquiries: inquiries, logger: logger, now: time.Now}
}

// Submit records a visitor inquiry at the front of the mailbox. Persistence
// failures are logged, not surfaced; the visitor always sees success.
func (s *MailboxService) Submit(ctx context.Context, name, email, inquiryType, message string) domain.Inquiry {
	inquiry := domain.Inquiry{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Type:      inquiryType,
		Message:   message,
		Timestamp: s.now(),
	}

	if err := s.inquiries.Append(ctx, inquiry); err != nil {
		s.logger.Error("failed to persist inquiry", "id", inquiry.ID, "error", err)
	}
	s.logger.Info("inquiry received", "id", inquiry.ID, "type", inquiry.Type)
	return inquiry
}

// List returns the mailbox, newest first. Owner only.
func (s *MailboxService) List(ctx context.Context, role domain.Role) ([]domain.Inquiry, error) {
	if role != domain.RoleAdmin {
		return nil, ErrForbidden
	}
	return s.inquiries.List(ctx)
}

// Archive removes an inquiry by id. Owner only; repeating an archive is a
// no-op.
func (s *MailboxService) Archive(ctx context.Context, role domain.Role, id string) error {
	if role != domain.RoleAdmin {
		return ErrForbidden
	}
	return s.inquiries.Remove(ctx, id)
}
