package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handytechnz-cloud/Blair-Portfolio/internal/domain"
)

func TestAccessKeyStoreAppendList(t *testing.T) {
	keys := NewAccessKeyStore(NewRecordStore(openTestDB(t)))
	ctx := context.Background()

	require.NoError(t, keys.Append(ctx, domain.AccessKey{
		ID:        "1",
		Label:     "Assistant",
		Role:      domain.RoleEditor,
		Key:       "X7K2QD",
		CreatedAt: time.Now(),
	}))

	got, err := keys.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Assistant", got[0].Label)
	assert.Equal(t, domain.RoleEditor, got[0].Role)
	assert.Equal(t, "X7K2QD", got[0].Key)
}

func TestAccessKeyStoreRemove(t *testing.T) {
	keys := NewAccessKeyStore(NewRecordStore(openTestDB(t)))
	ctx := context.Background()

	require.NoError(t, keys.Append(ctx, domain.AccessKey{ID: "1", Label: "A"}))
	require.NoError(t, keys.Append(ctx, domain.AccessKey{ID: "2", Label: "B"}))

	require.NoError(t, keys.Remove(ctx, "1"))
	// Absent id is a no-op.
	require.NoError(t, keys.Remove(ctx, "missing"))

	got, err := keys.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}
