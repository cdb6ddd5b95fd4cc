package admin

import (
	"encoding/json"
	"net/http"

	"mineshop/apperr"
	"mineshop/models"
	"mineshop/promos"
	"mineshop/store"
	"mineshop/utils"

	"github.com/julienschmidt/httprouter"
)

// GET /api/admin/promos
func (h *Handler) ListPromos(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	codes := store.Load(r.Context(), h.Store, store.KeyPromos, store.DefaultPromos())
	utils.RespondWithJSON(w, http.StatusOK, codes)
}

// POST /api/admin/promos
func (h *Handler) CreatePromo(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Code       string `json:"code"`
		Discount   int    `json:"discount"`
		UsageLimit int    `json:"usageLimit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	promo, err := promos.Create(input.Code, input.Discount, input.UsageLimit)
	if err != nil {
		utils.RespondWithError(w, apperr.Status(err), err.Error())
		return
	}

	codes := store.Load(r.Context(), h.Store, store.KeyPromos, store.DefaultPromos())
	if err := store.Save(r.Context(), h.Store, store.KeyPromos, append(codes, promo)); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save promo codes")
		return
	}

	h.Emitter.Emit(r.Context(), "promo-created", models.Index{
		EntityType: "promo", EntityId: promo.Code, Method: "POST", ItemType: "promo",
	})
	utils.SendResponse(w, http.StatusCreated, promo, "Promo code created", nil)
}

// PATCH /api/admin/promos/:code — flip the active flag.
func (h *Handler) TogglePromo(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	code := ps.ByName("code")
	codes := store.Load(r.Context(), h.Store, store.KeyPromos, store.DefaultPromos())

	if !promos.Toggle(codes, code) {
		utils.RespondWithError(w, http.StatusNotFound, "Promo code not found")
		return
	}
	if err := store.Save(r.Context(), h.Store, store.KeyPromos, codes); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save promo codes")
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Promo code toggled", nil)
}

// DELETE /api/admin/promos/:code
func (h *Handler) DeletePromo(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	code := ps.ByName("code")
	codes := store.Load(r.Context(), h.Store, store.KeyPromos, store.DefaultPromos())

	remaining, ok := promos.Delete(codes, code)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Promo code not found")
		return
	}
	if err := store.Save(r.Context(), h.Store, store.KeyPromos, remaining); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save promo codes")
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Promo code deleted", nil)
}
