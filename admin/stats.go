// Package admin holds the console endpoints: dashboard stats, product and
// promo management, and the user list. Role enforcement happens in routing.
package admin

import (
	"context"
	"sort"

	"mineshop/models"
	"mineshop/store"
)

// Stats is the dashboard summary. Revenue and the order count cover
// completed orders only; the recent list shows everything.
type Stats struct {
	Revenue      int              `json:"revenue"`
	OrderCount   int              `json:"orderCount"`
	UserCount    int              `json:"userCount"`
	ProductCount int              `json:"productCount"`
	TopProducts  []models.Product `json:"topProducts"`  // up to five, by sold
	RecentOrders []models.Order   `json:"recentOrders"` // up to five, newest first
}

// BuildStats computes the dashboard numbers from the current collections.
func BuildStats(ctx context.Context, st store.Store) Stats {
	orders := store.Load(ctx, st, store.KeyOrders, []models.Order{})
	users := store.Load(ctx, st, store.KeyUsers, []models.User{})
	products := store.Load(ctx, st, store.KeyProducts, store.DefaultProducts())

	s := Stats{
		UserCount:    len(users),
		ProductCount: len(products),
	}

	for _, o := range orders {
		if o.Status == models.OrderCompleted {
			s.Revenue += o.Total
			s.OrderCount++
		}
	}

	ranked := make([]models.Product, len(products))
	copy(ranked, products)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Sold > ranked[j].Sold })
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	s.TopProducts = ranked

	recent := []models.Order{}
	for i := len(orders) - 1; i >= 0 && len(recent) < 5; i-- {
		recent = append(recent, orders[i])
	}
	s.RecentOrders = recent

	return s
}
