package admin

import (
	"context"
	"testing"

	"mineshop/models"
	"mineshop/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStatsRevenueCountsCompletedOnly(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, st, store.KeyOrders, []models.Order{
		{OrderID: "1", Total: 300, Status: models.OrderCompleted},
		{OrderID: "2", Total: 500, Status: models.OrderCancelled},
		{OrderID: "3", Total: 200, Status: models.OrderCompleted},
	}))
	require.NoError(t, store.Save(ctx, st, store.KeyUsers, []models.User{
		{UserID: "u1"}, {UserID: "u2"},
	}))

	s := BuildStats(ctx, st)
	assert.Equal(t, 500, s.Revenue)
	assert.Equal(t, 2, s.OrderCount, "cancelled orders count for neither revenue nor volume")
	assert.Equal(t, 2, s.UserCount)
	assert.Equal(t, 8, s.ProductCount, "catalog falls back to the seeded defaults")
}

func TestBuildStatsTopProducts(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	s := BuildStats(ctx, st)
	require.Len(t, s.TopProducts, 5)
	assert.Equal(t, "Strength Potion", s.TopProducts[0].Name, "489 sold leads the defaults")
	for i := 1; i < len(s.TopProducts); i++ {
		assert.GreaterOrEqual(t, s.TopProducts[i-1].Sold, s.TopProducts[i].Sold)
	}
}

func TestBuildStatsRecentOrdersNewestFirst(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	saved := []models.Order{}
	for _, id := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		saved = append(saved, models.Order{OrderID: id, Status: models.OrderCompleted})
	}
	require.NoError(t, store.Save(ctx, st, store.KeyOrders, saved))

	s := BuildStats(ctx, st)
	require.Len(t, s.RecentOrders, 5)
	assert.Equal(t, "7", s.RecentOrders[0].OrderID)
	assert.Equal(t, "3", s.RecentOrders[4].OrderID)
}

func TestBuildStatsEmptyStore(t *testing.T) {
	s := BuildStats(context.Background(), store.NewMemory())
	assert.Zero(t, s.Revenue)
	assert.Zero(t, s.OrderCount)
	assert.Zero(t, s.UserCount)
	assert.Empty(t, s.RecentOrders)
}
