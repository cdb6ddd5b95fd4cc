package promos

import (
	"encoding/json"
	"net/http"

	"mineshop/apperr"
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

// POST /api/promos/validate
//
// Validation is a dry run: it prices the given subtotal against the code but
// does not consume a use. Consumption happens only at checkout.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Code     string `json:"code"`
		Subtotal int    `json:"subtotal"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	codes := store.Load(r.Context(), h.Store, store.KeyPromos, store.DefaultPromos())
	discount, total, promo, err := Apply(codes, input.Code, input.Subtotal)
	if err != nil {
		utils.RespondWithError(w, apperr.Status(err), err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"code":     promo.Code,
		"percent":  promo.Discount,
		"discount": discount,
		"total":    total,
	})
}
