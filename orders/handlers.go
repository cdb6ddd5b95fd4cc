package orders

import (
	"encoding/json"
	"net/http"

	"mineshop/apperr"
	"mineshop/cart"
	"mineshop/catalog"
	"mineshop/models"
	"mineshop/mq"
	"mineshop/session"
	"mineshop/store"
	"mineshop/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Store   store.Store
	Carts   *cart.Manager
	Emitter *mq.Emitter
}

func NewHandler(st store.Store, carts *cart.Manager, em *mq.Emitter) *Handler {
	return &Handler{Store: st, Carts: carts, Emitter: em}
}

// POST /api/checkout
//
// Buys the caller's current cart. The cart is cleared only after the order
// commits.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		PromoCode     string `json:"promoCode"`
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	buyer := h.resolveBuyer(r)
	// Same cart identity the cart endpoints use: JWT user id, or the
	// caller's guest token.
	cartKey := cart.ClientKey(w, r)

	items := h.Carts.Get(cartKey)
	order, err := Checkout(r.Context(), h.Store, CheckoutInput{
		Buyer:         buyer,
		Items:         items,
		PromoCode:     input.PromoCode,
		PaymentMethod: input.PaymentMethod,
	})
	if err != nil {
		utils.RespondWithError(w, apperr.Status(err), err.Error())
		return
	}

	h.Carts.Clear(cartKey)
	h.Emitter.Emit(r.Context(), "order-completed", models.Index{
		EntityType: "order", EntityId: order.OrderID, Method: "POST", ItemType: "order",
	})

	utils.SendResponse(w, http.StatusCreated, order, "Order placed", nil)
}

// POST /api/checkout/buy/:id
//
// Buy-now: a single unit of one product, bypassing the cart.
func (h *Handler) BuyNow(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		PromoCode     string `json:"promoCode"`
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	products := store.Load(r.Context(), h.Store, store.KeyProducts, store.DefaultProducts())
	p, ok := catalog.ByID(products, ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if !p.InStock {
		utils.RespondWithError(w, http.StatusConflict, "Product is out of stock")
		return
	}

	buyer := h.resolveBuyer(r)
	order, err := Checkout(r.Context(), h.Store, CheckoutInput{
		Buyer:         buyer,
		Items:         []models.CartItem{{Product: p, Qty: 1}},
		PromoCode:     input.PromoCode,
		PaymentMethod: input.PaymentMethod,
	})
	if err != nil {
		utils.RespondWithError(w, apperr.Status(err), err.Error())
		return
	}

	h.Emitter.Emit(r.Context(), "order-completed", models.Index{
		EntityType: "order", EntityId: order.OrderID, Method: "POST", ItemType: "order",
	})
	utils.SendResponse(w, http.StatusCreated, order, "Order placed", nil)
}

// GET /api/orders — the caller's own orders.
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ByUser(r.Context(), h.Store, userID))
}

// GET /api/admin/orders — every order, admin only (enforced in routing).
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	all := store.Load(r.Context(), h.Store, store.KeyOrders, []models.Order{})
	utils.RespondWithJSON(w, http.StatusOK, all)
}

// resolveBuyer identifies who the purchase belongs to. A request carrying a
// token identity is resolved from the token alone — a stale token never
// falls through to the shared session key, which another client may have
// written since. Only fully anonymous requests consult the session key, so
// browser-only flows still attribute purchases.
func (h *Handler) resolveBuyer(r *http.Request) *models.User {
	if userID := utils.GetUserIDFromRequest(r); userID != "" {
		users := store.Load(r.Context(), h.Store, store.KeyUsers, []models.User{})
		for i := range users {
			if users[i].UserID == userID {
				return &users[i]
			}
		}
		return nil
	}
	return session.Resolve(r.Context(), h.Store)
}
