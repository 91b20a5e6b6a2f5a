package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/handytechnz-cloud/Blair-Portfolio/internal/domain"
)

// AboutStore persists the about-page content as a single blob.
type AboutStore struct {
	records *RecordStore
}

func NewAboutStore(records *RecordStore) *AboutStore {
	return &AboutStore{records: records}
}

// Load returns the stored content, or (nil, nil) if none was ever published.
func (s *AboutStore) Load(ctx context.Context) (*domain.AboutContent, error) {
	blob, err := s.records.Load(ctx, PartitionAbout)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return nil, nil
	}

	content := &domain.AboutContent{}
	if err := json.Unmarshal(blob, content); err != nil {
		return nil, fmt.Errorf("failed to decode about partition: %w", err)
	}

	return content, nil
}

// Save overwrites the content wholesale.
func (s *AboutStore) Save(ctx context.Context, content domain.AboutContent) error {
	blob, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to encode about content: %w", err)
	}

	return s.records.Save(ctx, PartitionAbout, blob)
}
