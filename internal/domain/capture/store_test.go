package capture

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jonesaica/internal/database"
)

func TestGormFlagStore(t *testing.T) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&VisitorFlag{}))

	store := NewGormFlagStore(db)
	ctx := context.Background()

	seen, err := store.Seen(ctx, "visitor-1")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, store.MarkSeen(ctx, "visitor-1"))

	seen, err = store.Seen(ctx, "visitor-1")
	require.NoError(t, err)
	assert.True(t, seen)

	// marking twice is fine
	require.NoError(t, store.MarkSeen(ctx, "visitor-1"))

	seen, err = store.Seen(ctx, "visitor-2")
	require.NoError(t, err)
	assert.False(t, seen)
}
