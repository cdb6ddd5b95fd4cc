// Package settings stores the site-wide configuration record.
package settings

import (
	"context"
	"encoding/json"
	"net/http"

	"mineshop/models"
	"mineshop/mq"
	"mineshop/store"
	"mineshop/utils"

	"github.com/julienschmidt/httprouter"
)

// Get returns the current settings, falling back to the defaults when the
// record is missing or unreadable.
func Get(ctx context.Context, st store.Store) models.SiteSettings {
	return store.Load(ctx, st, store.KeySettings, store.DefaultSettings())
}

// Replace overwrites the whole settings record. There is no field-level
// merge and no field validation: callers send the full desired state.
func Replace(ctx context.Context, st store.Store, s models.SiteSettings) error {
	return store.Save(ctx, st, store.KeySettings, s)
}

type Handler struct {
	Store   store.Store
	Emitter *mq.Emitter
}

func NewHandler(st store.Store, em *mq.Emitter) *Handler {
	return &Handler{Store: st, Emitter: em}
}

// GET /api/settings
func (h *Handler) Get(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, Get(r.Context(), h.Store))
}

// PUT /api/settings — admin only (enforced in routing).
func (h *Handler) Update(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var s models.SiteSettings
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if err := Replace(r.Context(), h.Store, s); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	h.Emitter.Emit(r.Context(), "settings-updated", models.Index{
		EntityType: "settings", Method: "PUT", ItemType: "settings",
	})
	utils.SendResponse(w, http.StatusOK, s, "Settings updated", nil)
}
