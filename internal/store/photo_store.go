package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/handytechnz-cloud/Blair-Portfolio/internal/domain"
)

// PhotoStore persists the full photo collection as one blob in the photos
// partition. Mutations are atomic read-modify-write cycles at the storage
// boundary.
type PhotoStore struct {
	records *RecordStore
}

func NewPhotoStore(records *RecordStore) *PhotoStore {
	return &PhotoStore{records: records}
}

// LoadAll returns the stored collection, or nil if the partition is empty.
func (s *PhotoStore) LoadAll(ctx context.Context) ([]domain.Photo, error) {
	blob, err := s.records.Load(ctx, PartitionPhotos)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return nil, nil
	}

	var photos []domain.Photo
	if err := json.Unmarshal(blob, &photos); err != nil {
		return nil, fmt.Errorf("failed to decode photos partition: %w", err)
	}

	return photos, nil
}

// SaveAll overwrites the collection wholesale.
func (s *PhotoStore) SaveAll(ctx context.Context, photos []domain.Photo) error {
	blob, err := json.Marshal(photos)
	if err != nil {
		return fmt.Errorf("failed to encode photos: %w", err)
	}

	return s.records.Save(ctx, PartitionPhotos, blob)
}

// Add prepends the photo so the newest upload lists first.
func (s *PhotoStore) Add(ctx context.Context, photo domain.Photo) error {
	return s.mutatePhotos(ctx, func(photos []domain.Photo) ([]domain.Photo, error) {
		return append([]domain.Photo{photo}, photos...), nil
	})
}

// Update replaces the photo with the matching id.
func (s *PhotoStore) Update(ctx context.Context, photo domain.Photo) error {
	return s.mutatePhotos(ctx, func(photos []domain.Photo) ([]domain.Photo, error) {
		for i := range photos {
			if photos[i].ID == photo.ID {
				photos[i] = photo
				return photos, nil
			}
		}
		return nil, fmt.Errorf("photo not found")
	})
}

// Remove deletes the photo with the matching id. Removing an absent id is a
// no-op.
func (s *PhotoStore) Remove(ctx context.Context, id string) error {
	return s.mutatePhotos(ctx, func(photos []domain.Photo) ([]domain.Photo, error) {
		return slices.DeleteFunc(photos, func(p domain.Photo) bool { return p.ID == id }), nil
	})
}

// Clear empties the collection.
func (s *PhotoStore) Clear(ctx context.Context) error {
	return s.records.Save(ctx, PartitionPhotos, []byte("[]"))
}

func (s *PhotoStore) mutatePhotos(ctx context.Context, fn func([]domain.Photo) ([]domain.Photo, error)) error {
	return s.records.mutate(ctx, PartitionPhotos, func(blob []byte) ([]byte, error) {
		var photos []domain.Photo
		if blob != nil {
			if err := json.Unmarshal(blob, &photos); err != nil {
				return nil, fmt.Errorf("failed to decode photos partition: %w", err)
			}
		}

		next, err := fn(photos)
		if err != nil {
			return nil, err
		}

		out, err := json.Marshal(next)
		if err != nil {
			return nil, fmt.Errorf("failed to encode photos: %w", err)
		}
		return out, nil
	})
}
