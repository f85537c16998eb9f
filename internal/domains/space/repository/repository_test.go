package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"studyspot/config"
	otelMocks "studyspot/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogDocument = `[
	{
		"id": 1,
		"name": "The Quiet Corner",
		"location": "Makati",
		"description": "A calm nook for focused work.",
		"price": 150,
		"main_image": "https://example.com/quiet-corner.jpg",
		"amenities": ["WiFi", "Coffee"],
		"time_slots": ["09:00 - 12:00", "13:00 - 16:00"],
		"hours": "9AM - 9PM"
	},
	{
		"id": 2,
		"name": "Brew & Study Cafe",
		"location": "Quezon City",
		"description": "Coffee-first study cafe.",
		"price": 200,
		"main_image": "https://example.com/brew-study.jpg",
		"amenities": ["WiFi"],
		"time_slots": ["09:00 - 12:00"],
		"hours": "8AM - 10PM"
	}
]`

func newCatalog(t *testing.T, contents string) Catalog {
	t.Helper()

	cfg := &config.Config{}
	cfg.Catalog.Path = filepath.Join(t.TempDir(), "spaces.json")

	if contents != "" {
		require.NoError(t, os.WriteFile(cfg.Catalog.Path, []byte(contents), 0o600))
	}

	return New(cfg, otelMocks.NewOtel())
}

func TestGetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := newCatalog(t, catalogDocument)

		spaces, err := repo.GetAll(ctx)

		require.NoError(t, err)
		require.Len(t, spaces, 2)
		assert.Equal(t, "The Quiet Corner", spaces[0].Name)
		assert.Equal(t, []string{"09:00 - 12:00"}, spaces[1].TimeSlots)
	})

	t.Run("missing document serves empty listing", func(t *testing.T) {
		repo := newCatalog(t, "")

		spaces, err := repo.GetAll(ctx)

		require.NoError(t, err)
		assert.Empty(t, spaces)
	})

	t.Run("malformed document serves empty listing", func(t *testing.T) {
		repo := newCatalog(t, "{not json")

		spaces, err := repo.GetAll(ctx)

		require.NoError(t, err)
		assert.Empty(t, spaces)
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	repo := newCatalog(t, catalogDocument)

	t.Run("success", func(t *testing.T) {
		space, ok, err := repo.Get(ctx, 2)

		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Brew & Study Cafe", space.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, ok, err := repo.Get(ctx, 99)

		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestExist(t *testing.T) {
	ctx := context.Background()
	repo := newCatalog(t, catalogDocument)

	ok, err := repo.Exist(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exist(ctx, 99)
	require.NoError(t, err)
	assert.False(t, ok)
}
