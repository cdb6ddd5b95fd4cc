// Package orders implements checkout and order history.
package orders

import (
	"context"
	"time"

	"mineshop/apperr"
	"mineshop/cart"
	"mineshop/models"
	"mineshop/promos"
	"mineshop/store"
	"mineshop/utils"
)

// CheckoutInput describes one purchase attempt. Buyer may be nil for a
// guest checkout.
type CheckoutInput struct {
	Buyer         *models.User
	Items         []models.CartItem
	PromoCode     string
	PaymentMethod string
}

// Checkout commits a purchase: it prices the items, consumes a promo use,
// records the order, bumps sold counters and credits the buyer's purchase
// history. Each collection is written back whole as it changes.
//
// A promo failure other than "not entered" aborts the checkout; the caller
// should surface it so the shopper can fix or drop the code.
func Checkout(ctx context.Context, st store.Store, in CheckoutInput) (models.Order, error) {
	if len(in.Items) == 0 {
		return models.Order{}, apperr.Validationf("cart is empty")
	}
	for _, it := range in.Items {
		if it.Qty < 1 {
			return models.Order{}, apperr.Validationf("invalid quantity")
		}
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = "card"
	}

	subtotal := cart.Subtotal(in.Items)
	total := subtotal
	discount := 0
	promoCode := ""

	if in.PromoCode != "" {
		codes := store.Load(ctx, st, store.KeyPromos, store.DefaultPromos())
		d, t, promo, err := promos.Apply(codes, in.PromoCode, subtotal)
		if err != nil {
			return models.Order{}, err
		}
		discount, total, promoCode = d, t, promo.Code

		promo.UsedCount++
		if err := store.Save(ctx, st, store.KeyPromos, codes); err != nil {
			return models.Order{}, err
		}
	}

	userID, username := models.GuestUserID, models.GuestUsername
	if in.Buyer != nil {
		userID, username = in.Buyer.UserID, in.Buyer.Username
	}

	order := models.Order{
		OrderID:       utils.NewID(),
		UserID:        userID,
		Username:      username,
		Items:         in.Items,
		Total:         total,
		Promo:         promoCode,
		Discount:      discount,
		PaymentMethod: in.PaymentMethod,
		Date:          time.Now().Format(time.RFC3339),
		Status:        models.OrderCompleted,
	}

	existing := store.Load(ctx, st, store.KeyOrders, []models.Order{})
	if err := store.Save(ctx, st, store.KeyOrders, append(existing, order)); err != nil {
		return models.Order{}, err
	}

	if err := bumpSoldCounters(ctx, st, in.Items); err != nil {
		return models.Order{}, err
	}

	if in.Buyer != nil {
		if err := creditPurchases(ctx, st, in.Buyer.UserID, in.Items); err != nil {
			return models.Order{}, err
		}
	}

	return order, nil
}

func bumpSoldCounters(ctx context.Context, st store.Store, items []models.CartItem) error {
	products := store.Load(ctx, st, store.KeyProducts, store.DefaultProducts())
	for _, it := range items {
		for i := range products {
			if products[i].ProductID == it.Product.ProductID {
				products[i].Sold += it.Qty
				break
			}
		}
	}
	return store.Save(ctx, st, store.KeyProducts, products)
}

// creditPurchases appends one product id per cart line (not per unit) to
// the buyer's history.
func creditPurchases(ctx context.Context, st store.Store, userID string, items []models.CartItem) error {
	users := store.Load(ctx, st, store.KeyUsers, []models.User{})
	for i := range users {
		if users[i].UserID != userID {
			continue
		}
		for _, it := range items {
			users[i].Purchases = append(users[i].Purchases, it.Product.ProductID)
		}
		return store.Save(ctx, st, store.KeyUsers, users)
	}
	return nil
}

// ByUser lists the orders placed by userID, newest last.
func ByUser(ctx context.Context, st store.Store, userID string) []models.Order {
	all := store.Load(ctx, st, store.KeyOrders, []models.Order{})
	out := []models.Order{}
	for _, o := range all {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// ByID finds an order by id.
func ByID(ctx context.Context, st store.Store, orderID string) (models.Order, error) {
	all := store.Load(ctx, st, store.KeyOrders, []models.Order{})
	for _, o := range all {
		if o.OrderID == orderID {
			return o, nil
		}
	}
	return models.Order{}, apperr.NotFoundf("order not found")
}
