package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderdomain "github.com/ghuser/carbuilder/services/order/domain"
	"github.com/ghuser/carbuilder/services/order/domain/models"
)

var sel = models.Selection{PaintID: 1, InteriorID: 2, TechnologyID: 3, WheelID: 4}

func fixedClock(r *OrderRepository, t time.Time) {
	r.now = func() time.Time { return t }
}

func TestOrderRepository_InsertAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	fixedClock(repo, at)

	first, err := repo.Insert(ctx, models.NewOrder(sel))
	require.NoError(t, err)
	second, err := repo.Insert(ctx, models.NewOrder(sel))
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, at, first.CreatedAt)
	assert.Equal(t, sel, first.Selection)
}

func TestOrderRepository_InsertIgnoresClientIDAndComplete(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()

	o := models.NewOrder(sel)
	o.ID = 99
	o.Complete = true
	saved, err := repo.Insert(ctx, o)
	require.NoError(t, err)

	assert.Equal(t, 1, saved.ID)
	assert.False(t, saved.Complete)
}

func TestOrderRepository_AllPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	for range 3 {
		_, err := repo.Insert(ctx, models.NewOrder(sel))
		require.NoError(t, err)
	}
	all, err = repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, o := range all {
		assert.Equal(t, i+1, o.ID)
	}
}

func TestOrderRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()
	_, err := repo.Insert(ctx, models.NewOrder(sel))
	require.NoError(t, err)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	all[0].Complete = true
	all[0].PaintID = 42

	got, found, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.False(t, got.Complete)
	assert.Equal(t, 1, got.PaintID)
}

func TestOrderRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()
	_, err := repo.Insert(ctx, models.NewOrder(sel))
	require.NoError(t, err)

	_, found, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, found)

	_, found, err = repo.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestOrderRepository_MarkComplete(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()
	_, err := repo.Insert(ctx, models.NewOrder(sel))
	require.NoError(t, err)

	o, changed, err := repo.MarkComplete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, o.Complete)
	assert.True(t, changed)

	o, changed, err = repo.MarkComplete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, o.Complete)
	assert.False(t, changed, "second fulfill is a no-op")

	got, _, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.Complete)
}

func TestOrderRepository_MarkCompleteUnknown(t *testing.T) {
	_, _, err := NewOrderRepository().MarkComplete(context.Background(), 7)
	assert.ErrorIs(t, err, orderdomain.ErrOrderNotFound)
}

func TestOrderRepository_ConcurrentInsertsGetUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()

	const n = 100
	ids := make(chan int, n)
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o, err := repo.Insert(ctx, models.NewOrder(sel))
			if err == nil {
				ids <- o.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	for id := 1; id <= n; id++ {
		assert.True(t, seen[id], "missing id %d", id)
	}
}
