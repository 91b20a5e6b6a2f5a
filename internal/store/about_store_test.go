package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handytechnz-cloud/Blair-Portfolio/internal/domain"
)

func TestAboutStoreLoadEmpty(t *testing.T) {
	about := NewAboutStore(NewRecordStore(openTestDB(t)))

	got, err := about.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAboutStoreSaveOverwritesWholesale(t *testing.T) {
	about := NewAboutStore(NewRecordStore(openTestDB(t)))
	ctx := context.Background()

	require.NoError(t, about.Save(ctx, domain.AboutContent{
		Name:      "Blair",
		RoleLabel: "Visual Storyteller & Photographer",
		Philosophy: []domain.PhilosophyItem{
			{Title: "Simplicity", Description: "Finding beauty in the essential."},
		},
		Equipment: []string{"Sony A1", "Leica Q3"},
	}))

	require.NoError(t, about.Save(ctx, domain.AboutContent{Name: "Blair", RoleLabel: "Photographer"}))

	got, err := about.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Photographer", got.RoleLabel)
	assert.Empty(t, got.Philosophy)
	assert.Empty(t, got.Equipment)
}
