// Package support takes contact-form tickets and lists them for admins.
package support

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"mineshop/apperr"
	"mineshop/models"
	"mineshop/store"
	"mineshop/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Store store.Store
}

func NewHandler(st store.Store) *Handler {
	return &Handler{Store: st}
}

// POST /api/support
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Name    string `json:"name"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Message) == "" {
		err := apperr.Validationf("name and message are required")
		utils.RespondWithError(w, apperr.Status(err), err.Error())
		return
	}

	ticket := models.SupportTicket{
		TicketID:  uuid.NewString(),
		Name:      input.Name,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: time.Now().Format(time.RFC3339),
	}

	tickets := store.Load(r.Context(), h.Store, store.KeySupport, []models.SupportTicket{})
	if err := store.Save(r.Context(), h.Store, store.KeySupport, append(tickets, ticket)); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save ticket")
		return
	}

	utils.SendResponse(w, http.StatusCreated, ticket, "Ticket submitted", nil)
}

// GET /api/admin/support — admin only (enforced in routing).
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	tickets := store.Load(r.Context(), h.Store, store.KeySupport, []models.SupportTicket{})
	utils.RespondWithJSON(w, http.StatusOK, tickets)
}
