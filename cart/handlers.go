package cart

import (
	"encoding/json"
	"net/http"

	"mineshop/catalog"
	"mineshop/store"
	"mineshop/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

// TokenHeader carries the guest cart token. Anonymous clients get one minted
// on their first cart request and must echo it on subsequent requests; it is
// what keeps one guest's cart invisible to every other guest.
const TokenHeader = "X-Cart-Token"

type Handler struct {
	Store store.Store
	Carts *Manager
}

func NewHandler(st store.Store, carts *Manager) *Handler {
	return &Handler{Store: st, Carts: carts}
}

// ClientKey identifies the caller's cart: the JWT user id when
// authenticated, otherwise a per-client guest token. A guest with no token
// yet gets a fresh one, returned in the response header either way.
func ClientKey(w http.ResponseWriter, r *http.Request) string {
	if userID := utils.GetUserIDFromRequest(r); userID != "" {
		return userID
	}

	tok := r.Header.Get(TokenHeader)
	if tok == "" {
		tok = uuid.NewString()
	}
	w.Header().Set(TokenHeader, tok)
	return "guest:" + tok
}

// GET /api/cart
func (h *Handler) Get(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	key := ClientKey(w, r)
	items := h.Carts.Get(key)

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"items":    items,
		"count":    Count(items),
		"subtotal": Subtotal(items),
	})
}

// POST /api/cart/items
func (h *Handler) Add(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	products := store.Load(r.Context(), h.Store, store.KeyProducts, store.DefaultProducts())
	p, ok := catalog.ByID(products, input.ProductID)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if !p.InStock {
		utils.RespondWithError(w, http.StatusConflict, "Product is out of stock")
		return
	}

	key := ClientKey(w, r)
	h.Carts.Add(key, p)

	items := h.Carts.Get(key)
	utils.SendResponse(w, http.StatusOK, map[string]any{
		"items":    items,
		"count":    Count(items),
		"subtotal": Subtotal(items),
	}, "Added to cart", nil)
}

// PATCH /api/cart/items/:id
func (h *Handler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	key := ClientKey(w, r)
	h.Carts.Update(key, ps.ByName("id"), input.Delta)

	items := h.Carts.Get(key)
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"items":    items,
		"count":    Count(items),
		"subtotal": Subtotal(items),
	})
}

// DELETE /api/cart/items/:id
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	key := ClientKey(w, r)
	h.Carts.Remove(key, ps.ByName("id"))

	items := h.Carts.Get(key)
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"items":    items,
		"count":    Count(items),
		"subtotal": Subtotal(items),
	})
}

// DELETE /api/cart
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	key := ClientKey(w, r)
	h.Carts.Clear(key)
	utils.SendResponse(w, http.StatusOK, nil, "Cart cleared", nil)
}
