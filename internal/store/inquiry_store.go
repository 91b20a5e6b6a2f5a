package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/handytechnz-cloud/Blair-Portfolio/internal/domain"
)

// InquiryStore persists contact inquiries as a single list blob, newest first.
type InquiryStore struct {
	records *RecordStore
}

func NewInquiryStore(records *RecordStore) *InquiryStore {
	return &InquiryStore{records: records}
}

func (s *InquiryStore) List(ctx context.Context) ([]domain.Inquiry, error) {
	blob, err := s.records.Load(ctx, PartitionInquiries)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return nil, nil
	}

	var inquiries []domain.Inquiry
	if err := json.Unmarshal(blob, &inquiries); err != nil {
		return nil, fmt.Errorf("failed to decode inquiries partition: %w", err)
	}

	return inquiries, nil
}

// Append prepends the inquiry so the newest message lists first.
func (s *InquiryStore) Append(ctx context.Context, inquiry domain.Inquiry) error {
	return s.mutateInquiries(ctx, func(inquiries []domain.Inquiry) []domain.Inquiry {
		return append([]domain.Inquiry{inquiry}, inquiries...)
	})
}

// Remove archives the inquiry with the matching id. Removing an absent id is
// a no-op.
func (s *InquiryStore) Remove(ctx context.Context, id string) error {
	return s.mutateInquiries(ctx, func(inquiries []domain.Inquiry) []domain.Inquiry {
		return slices.DeleteFunc(inquiries, func(i domain.Inquiry) bool { return i.ID == id })
	})
}

func (s *InquiryStore) mutateInquiries(ctx context.Context, fn func([]domain.Inquiry) []domain.Inquiry) error {
	return s.records.mutate(ctx, PartitionInquiries, func(blob []byte) ([]byte, error) {
		var inquiries []domain.Inquiry
		if blob != nil {
			if err := json.Unmarshal(blob, &inquiries); err != nil {
				return nil, fmt.Errorf("failed to decode inquiries partition: %w", err)
			}
		}

		out, err := json.Marshal(fn(inquiries))
		if err != nil {
			return nil, fmt.Errorf("failed to encode inquiries: %w", err)
		}
		return out, nil
	})
}
