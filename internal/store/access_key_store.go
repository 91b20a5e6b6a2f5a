package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/handytechnz-cloud/Blair-Portfolio/internal/domain"
)

// AccessKeyStore persists the minted access keys as a single list blob.
type AccessKeyStore struct {
	records *RecordStore
}

func NewAccessKeyStore(records *RecordStore) *AccessKeyStore {
	return &AccessKeyStore{records: records}
}

func (s *AccessKeyStore) List(ctx context.Context) ([]domain.AccessKey, error) {
	blob, err := s.records.Load(ctx, PartitionAccessKeys)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return nil, nil
	}

	var keys []domain.AccessKey
	if err := json.Unmarshal(blob, &keys); err != nil {
		return nil, fmt.Errorf("failed to decode access keys partition: %w", err)
	}

	return keys, nil
}

// Append adds a newly minted key to the end of the list.
func (s *AccessKeyStore) Append(ctx context.Context, key domain.AccessKey) error {
	return s.mutateKeys(ctx, func(keys []domain.AccessKey) []domain.AccessKey {
		return append(keys, key)
	})
}

// Remove revokes the key with the matching id. Removing an absent id is a
// no-op.
func (s *AccessKeyStore) Remove(ctx context.Context, id string) error {
	return s.mutateKeys(ctx, func(keys []domain.AccessKey) []domain.AccessKey {
		return slices.DeleteFunc(keys, func(k domain.AccessKey) bool { return k.ID == id })
	})
}

func (s *AccessKeyStore) mutateKeys(ctx context.Context, fn func([]domain.AccessKey) []domain.AccessKey) error {
	return s.records.mutate(ctx, PartitionAccessKeys, func(blob []byte) ([]byte, error) {
		var keys []domain.AccessKey
		if blob != nil {
			if err := json.Unmarshal(blob, &keys); err != nil {
				return nil, fmt.Errorf("failed to decode access keys partition: %w", err)
			}
		}

		out, err := json.Marshal(fn(keys))
		if err != nil {
			return nil, fmt.Errorf("failed to encode access keys: %w", err)
		}
		return out, nil
	})
}
