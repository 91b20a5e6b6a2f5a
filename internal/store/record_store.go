package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Partition names. Each holds exactly one serialized blob.
const (
	PartitionPhotos     = "photos"
	PartitionAccessKeys = "access_keys"
	PartitionAbout      = "about_content"
	PartitionInquiries  = "inquiries"
)

// RecordStore is the generic blob-per-partition persistence layer. Partitions
// are independent rows; a corrupt or missing blob in one never affects a load
// from another.
type RecordStore struct {
	db *sql.DB
}

func NewRecordStore(db *sql.DB) *RecordStore {
	return &RecordStore{db: db}
}

// Load returns the partition's blob, or (nil, nil) if the partition has never
// been written.
func (s *RecordStore) Load(ctx context.Context, partition string) ([]byte, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT blob FROM partitions WHERE name = ?
	`, partition).Scan(&blob)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load partition %s: %w", partition, err)
	}

	return blob, nil
}

// Save overwrites the partition's blob.
func (s *RecordStore) Save(ctx context.Context, partition string, blob []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO partitions (name, blob, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET blob = excluded.blob, updated_at = CURRENT_TIMESTAMP
	`, partition, blob)
	if err != nil {
		return fmt.Errorf("failed to save partition %s: %w", partition, err)
	}

	return nil
}

// mutate runs a read-modify-write cycle over one partition inside a single
// transaction, so concurrent list mutations cannot lose updates.
func (s *RecordStore) mutate(ctx context.Context, partition string, fn func(blob []byte) ([]byte, error)) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var blob []byte
	err = tx.QueryRowContext(ctx, `
		SELECT blob FROM partitions WHERE name = ?
	`, partition).Scan(&blob)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to load partition %s: %w", partition, err)
	}

	next, err := fn(blob)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO partitions (name, blob, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET blob = excluded.blob, updated_at = CURRENT_TIMESTAMP
	`, partition, next)
	if err != nil {
		return fmt.Errorf("failed to save partition %s: %w", partition, err)
	}

	return tx.Commit()
}
