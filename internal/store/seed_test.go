package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/omara/internal/db"
)

func TestLoadDefaults(t *testing.T) {
	d, err := LoadDefaults()
	require.NoError(t, err)
	assert.Equal(t, []string{"T-shirts", "Pants", "Shoes", "Outerwear", "Accessories"}, d.Categories)
	assert.Equal(t, []string{"Closet", "Drawer", "Shoe Rack"}, d.Locations)
}

func TestSeedDefaultsRunsOnce(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	d, err := LoadDefaults()
	require.NoError(t, err)

	seeded, err := SeedDefaults(ctx, database)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = SeedDefaults(ctx, database)
	require.NoError(t, err)
	assert.False(t, seeded)

	assert.Equal(t, len(d.Categories), countRows(t, database, "categories"))
	assert.Equal(t, len(d.Locations), countRows(t, database, "locations"))

	sentinel, err := GetMeta(ctx, database, MetaSeeded)
	require.NoError(t, err)
	assert.NotEmpty(t, sentinel)
}

func TestSeedDefaultsDoesNotRestoreDeletedRows(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, err := SeedDefaults(ctx, database)
	require.NoError(t, err)

	locations, err := ListLocations(ctx, database)
	require.NoError(t, err)
	_, err = DeleteLocation(ctx, database, locations[0].ID)
	require.NoError(t, err)

	_, err = SeedDefaults(ctx, database)
	require.NoError(t, err)
	assert.Equal(t, len(locations)-1, countRows(t, database, "locations"))
}

func TestSeedDefaultsConcurrent(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]bool, 4)
	errs := make([]error, 4)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = SeedDefaults(ctx, database)
		}()
	}
	wg.Wait()

	winners := 0
	for i := range results {
		require.NoError(t, errs[i])
		if results[i] {
			winners++
		}
	}
	assert.Equal(t, 1, winners)

	d, err := LoadDefaults()
	require.NoError(t, err)
	assert.Equal(t, len(d.Categories), countRows(t, database, "categories"))
}
