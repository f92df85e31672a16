package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SnapshotReuse(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir)

	cache := NewCache(dir, nil)
	ctx := context.Background()

	first, err := cache.Snapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)

	// Cleaned data: join happened, delivered rows carry derived fields.
	assert.Len(t, first.Sales, 3)
	require.Len(t, first.Delivered, 2)
	assert.Equal(t, 2023, first.Delivered[0].Year)
	require.NotNil(t, first.Delivered[0].DeliveryDays)
	assert.Equal(t, 7, *first.Delivered[0].DeliveryDays)

	// Unchanged files: the same snapshot comes back without a reload.
	second, err := cache.Snapshot(ctx)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestCache_InvalidatesOnFileChange(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir)

	cache := NewCache(dir, nil)
	ctx := context.Background()

	first, err := cache.Snapshot(ctx)
	require.NoError(t, err)

	// Rewrite the items file with a new row and a bumped mod time.
	itemsPath := filepath.Join(dir, OrderItemsFile)
	content, err := os.ReadFile(itemsPath)
	require.NoError(t, err)
	content = append(content, []byte("o1,3,p2,s1,2023-01-07 00:00:00,20.00,2.00\n")...)
	require.NoError(t, os.WriteFile(itemsPath, content, 0644))
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(itemsPath, future, future))

	second, err := cache.Snapshot(ctx)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Len(t, second.Sales, 4)
}

func TestCache_Invalidate(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir)

	cache := NewCache(dir, nil)
	ctx := context.Background()

	first, err := cache.Snapshot(ctx)
	require.NoError(t, err)

	cache.Invalidate()

	second, err := cache.Snapshot(ctx)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}
