package admin

import (
	"encoding/json"
	"net/http"
	"strings"

	"mineshop/apperr"
	"mineshop/models"
	"mineshop/mq"
	"mineshop/store"
	"mineshop/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Store   store.Store
	Emitter *mq.Emitter
}

func NewHandler(st store.Store, em *mq.Emitter) *Handler {
	return &Handler{Store: st, Emitter: em}
}

// GET /api/admin/stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, BuildStats(r.Context(), h.Store))
}

// GET /api/admin/users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	users := store.Load(r.Context(), h.Store, store.KeyUsers, []models.User{})

	out := make([]map[string]any, 0, len(users))
	for _, u := range users {
		out = append(out, map[string]any{
			"id":           u.UserID,
			"username":     u.Username,
			"email":        u.Email,
			"isAdmin":      u.IsAdmin,
			"purchases":    len(u.Purchases),
			"registeredAt": u.RegisteredAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

type productInput struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       int           `json:"price"`
	Emoji       string        `json:"emoji"`
	Rarity      models.Rarity `json:"rarity"`
	Category    string        `json:"category"`
	InStock     bool          `json:"inStock"`
}

func (in productInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return apperr.Validationf("product name is required")
	}
	if in.Price < 0 {
		return apperr.Validationf("price cannot be negative")
	}
	if !in.Rarity.Valid() {
		return apperr.Validationf("unknown rarity %q", in.Rarity)
	}
	if strings.TrimSpace(in.Category) == "" {
		return apperr.Validationf("category is required")
	}
	return nil
}

// POST /api/admin/products
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in productInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if err := in.validate(); err != nil {
		utils.RespondWithError(w, apperr.Status(err), err.Error())
		return
	}

	products := store.Load(r.Context(), h.Store, store.KeyProducts, store.DefaultProducts())
	p := models.Product{
		ProductID:   utils.NewID(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Emoji:       in.Emoji,
		Rarity:      in.Rarity,
		Category:    in.Category,
		InStock:     in.InStock,
		Sold:        0,
	}
	if err := store.Save(r.Context(), h.Store, store.KeyProducts, append(products, p)); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save product")
		return
	}

	h.Emitter.Emit(r.Context(), "product-created", models.Index{
		EntityType: "product", EntityId: p.ProductID, Method: "POST", ItemType: "product",
	})
	utils.SendResponse(w, http.StatusCreated, p, "Product created", nil)
}

// PUT /api/admin/products/:id
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var in productInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if err := in.validate(); err != nil {
		utils.RespondWithError(w, apperr.Status(err), err.Error())
		return
	}

	id := ps.ByName("id")
	products := store.Load(r.Context(), h.Store, store.KeyProducts, store.DefaultProducts())

	for i := range products {
		if products[i].ProductID != id {
			continue
		}
		// Sold survives edits; everything else is replaced.
		products[i].Name = in.Name
		products[i].Description = in.Description
		products[i].Price = in.Price
		products[i].Emoji = in.Emoji
		products[i].Rarity = in.Rarity
		products[i].Category = in.Category
		products[i].InStock = in.InStock

		if err := store.Save(r.Context(), h.Store, store.KeyProducts, products); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save product")
			return
		}
		h.Emitter.Emit(r.Context(), "product-updated", models.Index{
			EntityType: "product", EntityId: id, Method: "PUT", ItemType: "product",
		})
		utils.SendResponse(w, http.StatusOK, products[i], "Product updated", nil)
		return
	}
	utils.RespondWithError(w, http.StatusNotFound, "Product not found")
}

// DELETE /api/admin/products/:id
//
// Past orders keep their product snapshots, so deletion never rewrites
// history.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	products := store.Load(r.Context(), h.Store, store.KeyProducts, store.DefaultProducts())

	for i := range products {
		if products[i].ProductID != id {
			continue
		}
		remaining := append(products[:i], products[i+1:]...)
		if err := store.Save(r.Context(), h.Store, store.KeyProducts, remaining); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save products")
			return
		}
		h.Emitter.Emit(r.Context(), "product-deleted", models.Index{
			EntityType: "product", EntityId: id, Method: "DELETE", ItemType: "product",
		})
		utils.SendResponse(w, http.StatusOK, nil, "Product deleted", nil)
		return
	}
	utils.RespondWithError(w, http.StatusNotFound, "Product not found")
}

// PATCH /api/admin/products/:id/stock
func (h *Handler) ToggleStock(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	products := store.Load(r.Context(), h.Store, store.KeyProducts, store.DefaultProducts())

	for i := range products {
		if products[i].ProductID != id {
			continue
		}
		products[i].InStock = !products[i].InStock
		if err := store.Save(r.Context(), h.Store, store.KeyProducts, products); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save products")
			return
		}
		utils.SendResponse(w, http.StatusOK, products[i], "Stock flag toggled", nil)
		return
	}
	utils.RespondWithError(w, http.StatusNotFound, "Product not found")
}
