package catalog

import (
	"net/http"

	"mineshop/store"
	"mineshop/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Store store.Store
}

func NewHandler(st store.Store) *Handler {
	return &Handler{Store: st}
}

// GET /api/products?category=Ranks&q=vip
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	products := store.Load(r.Context(), h.Store, store.KeyProducts, store.DefaultProducts())

	q := r.URL.Query()
	filtered := Filter(products, q.Get("category"), q.Get("q"))

	utils.RespondWithJSON(w, http.StatusOK, filtered)
}

// GET /api/products/:id
func (h *Handler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	products := store.Load(r.Context(), h.Store, store.KeyProducts, store.DefaultProducts())

	p, ok := ByID(products, ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}

// GET /api/categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	products := store.Load(r.Context(), h.Store, store.KeyProducts, store.DefaultProducts())
	utils.RespondWithJSON(w, http.StatusOK, Categories(products))
}
