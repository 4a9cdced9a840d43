package catalog

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jonesaica/internal/database"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // in-memory sqlite is per-connection

	require.NoError(t, db.AutoMigrate(&Product{}))
	return db
}

func TestSeedIsIdempotent(t *testing.T) {
	svc := NewService(NewRepository(setupTestDB(t)))
	ctx := context.Background()

	inserted, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(starterProducts()), inserted)

	// second seed is a no-op, not an error
	inserted, err = svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	views, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, views, len(starterProducts()))
}

func TestSeedConcurrentRace(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	svc := NewService(repo)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Seed(ctx)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}

	// exactly one copy of each starter product survived the race
	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(starterProducts())), total)
}

func TestListFiltersByCategory(t *testing.T) {
	svc := NewService(NewRepository(setupTestDB(t)))
	ctx := context.Background()

	_, err := svc.Seed(ctx)
	require.NoError(t, err)

	batteries, err := svc.List(ctx, "batteries")
	require.NoError(t, err)
	assert.Len(t, batteries, 9)
	for _, v := range batteries {
		assert.Equal(t, CategoryBatteries, v.Category)
	}

	panels, err := svc.List(ctx, "panels")
	require.NoError(t, err)
	assert.Len(t, panels, 2)

	// no matches is an empty slice, not an error
	others, err := svc.List(ctx, "others")
	require.NoError(t, err)
	assert.Empty(t, others)

	_, err = svc.List(ctx, "bicycles")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestListKeepsCatalogOrder(t *testing.T) {
	svc := NewService(NewRepository(setupTestDB(t)))
	ctx := context.Background()

	_, err := svc.Seed(ctx)
	require.NoError(t, err)

	views, err := svc.List(ctx, "")
	require.NoError(t, err)

	starter := starterProducts()
	require.Len(t, views, len(starter))
	for i, v := range views {
		assert.Equal(t, starter[i].Name, v.Name)
	}
}

func TestGetProduct(t *testing.T) {
	svc := NewService(NewRepository(setupTestDB(t)))
	ctx := context.Background()

	_, err := svc.Seed(ctx)
	require.NoError(t, err)

	views, err := svc.List(ctx, "inverters")
	require.NoError(t, err)
	require.NotEmpty(t, views)

	got, err := svc.Get(ctx, views[0].ID)
	require.NoError(t, err)
	assert.Equal(t, views[0].Name, got.Name)
	assert.Equal(t, 2, got.DiscountPercent)
	assert.Equal(t, "J$250,000", got.RegularPriceDisplay)

	_, err = svc.Get(ctx, "nonexistent-id")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestMissingIDs(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Seed(ctx)
	require.NoError(t, err)

	views, err := svc.List(ctx, "")
	require.NoError(t, err)

	missing, err := repo.MissingIDs(ctx, []string{views[0].ID, "ghost-1", views[1].ID, "ghost-2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ghost-1", "ghost-2"}, missing)

	missing, err = repo.MissingIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, missing)
}
