// Package cart keeps per-user shopping carts in process memory. Carts are
// scratch state: they never touch the store and vanish on restart.
package cart

import (
	"sync"

	"mineshop/models"
)

// Manager owns every live cart, keyed by user id.
type Manager struct {
	mu    sync.Mutex
	carts map[string][]models.CartItem
}

func NewManager() *Manager {
	return &Manager{carts: make(map[string][]models.CartItem)}
}

// Get returns a copy of the user's cart lines.
func (m *Manager) Get(userID string) []models.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := m.carts[userID]
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}

// Add puts one unit of p in the cart: an existing line for the same product
// grows by one, otherwise a new line with quantity one is appended.
func (m *Manager) Add(userID string, p models.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := m.carts[userID]
	for i := range items {
		if items[i].Product.ProductID == p.ProductID {
			items[i].Qty++
			return
		}
	}
	m.carts[userID] = append(items, models.CartItem{Product: p, Qty: 1})
}

// Update shifts the quantity of productID's line by delta. The quantity
// clamps at zero, and a zero line is removed from the cart.
func (m *Manager) Update(userID, productID string, delta int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := m.carts[userID]
	for i := range items {
		if items[i].Product.ProductID != productID {
			continue
		}
		items[i].Qty += delta
		if items[i].Qty <= 0 {
			m.carts[userID] = append(items[:i], items[i+1:]...)
		}
		return
	}
}

// Remove drops productID's line entirely.
func (m *Manager) Remove(userID, productID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := m.carts[userID]
	for i := range items {
		if items[i].Product.ProductID == productID {
			m.carts[userID] = append(items[:i], items[i+1:]...)
			return
		}
	}
}

// Clear empties the user's cart.
func (m *Manager) Clear(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, userID)
}

// Subtotal is the undiscounted sum over the cart lines.
func Subtotal(items []models.CartItem) int {
	total := 0
	for _, it := range items {
		total += it.Product.Price * it.Qty
	}
	return total
}

// Count is the total number of units across all lines.
func Count(items []models.CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Qty
	}
	return n
}
